package signal

import "sync"

// Promise is a cache-and-replay state holder fed by whole signals.
// Installing a new source cancels the previous one; every value the
// source produces updates the cache and fans out to the currently
// registered subscribers. Promise never errors.
type Promise[T any] struct {
	mu          sync.Mutex
	hasValue    bool
	value       T
	subscribers Bag[func(T)]
	source      *MetaDisposable
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{source: NewMetaDisposable()}
}

// NewPromiseWithValue seeds the cache so the first Get replays
// immediately.
func NewPromiseWithValue[T any](value T) *Promise[T] {
	return &Promise[T]{
		hasValue: true,
		value:    value,
		source:   NewMetaDisposable(),
	}
}

// Set installs s as the active source. The previously active source is
// cancelled first, so none of its values can land after Set returns.
func (p *Promise[T]) Set(s Signal[T, NoError]) {
	p.source.Set(nil)
	p.source.Set(s.StartNext(p.sendNext))
}

func (p *Promise[T]) sendNext(value T) {
	p.mu.Lock()
	p.hasValue = true
	p.value = value
	subscribers := p.subscribers.Copy()
	p.mu.Unlock()

	for _, f := range subscribers {
		f(value)
	}
}

// Get returns a signal that replays the cached value synchronously on
// subscription (if one exists) and then follows every future value.
func (p *Promise[T]) Get() Signal[T, NoError] {
	return NewSignal(func(subscriber *Subscriber[T, NoError]) Disposable {
		p.mu.Lock()
		hasValue := p.hasValue
		value := p.value
		key := p.subscribers.Add(subscriber.PutNext)
		p.mu.Unlock()

		if hasValue {
			subscriber.PutNext(value)
		}
		return ActionDisposable(func() {
			p.mu.Lock()
			p.subscribers.Remove(key)
			p.mu.Unlock()
		})
	})
}

// ValuePromise is a Promise fed by plain values instead of signals. With
// dedupe enabled, setting a value equal to the cached one is suppressed.
// The comparable constraint is the explicit equality capability dedupe
// relies on; wrap values without natural equality before using it.
type ValuePromise[T comparable] struct {
	mu          sync.Mutex
	hasValue    bool
	value       T
	dedupe      bool
	subscribers Bag[func(T)]
}

func NewValuePromise[T comparable](dedupe bool) *ValuePromise[T] {
	return &ValuePromise[T]{dedupe: dedupe}
}

func NewValuePromiseWithValue[T comparable](value T, dedupe bool) *ValuePromise[T] {
	return &ValuePromise[T]{
		hasValue: true,
		value:    value,
		dedupe:   dedupe,
	}
}

// Set updates the cache and fans out, unless dedupe suppresses it.
func (p *ValuePromise[T]) Set(value T) {
	p.mu.Lock()
	if p.dedupe && p.hasValue && p.value == value {
		p.mu.Unlock()
		return
	}
	p.hasValue = true
	p.value = value
	subscribers := p.subscribers.Copy()
	p.mu.Unlock()

	for _, f := range subscribers {
		f(value)
	}
}

// Get returns a signal that replays the cached value synchronously on
// subscription (if one exists) and then follows every future value.
func (p *ValuePromise[T]) Get() Signal[T, NoError] {
	return NewSignal(func(subscriber *Subscriber[T, NoError]) Disposable {
		p.mu.Lock()
		hasValue := p.hasValue
		value := p.value
		key := p.subscribers.Add(subscriber.PutNext)
		p.mu.Unlock()

		if hasValue {
			subscriber.PutNext(value)
		}
		return ActionDisposable(func() {
			p.mu.Lock()
			p.subscribers.Remove(key)
			p.mu.Unlock()
		})
	})
}
