// Package signal implements cold, generic event streams with explicit
// cancellation, plus the disposables, mutable sources and operators that
// compose them.
//
// A Signal does no work until Start is called; every Start runs the
// generator independently with its own Subscriber. Each execution
// delivers zero or more values followed by at most one terminal event
// (error or completion). Disposing the subscription is the third way an
// execution ends: it is silent, invoking no callback at all.
package signal

import "sync"

// NoError is the error channel of signals that cannot fail, such as
// those produced by the Promise family.
type NoError struct{}

// Signal is a cold stream: a generator that, given a Subscriber, begins
// producing values and returns the Disposable that cancels production.
// A Signal value itself owns no resources and may be started any number
// of times; the executions are fully independent.
type Signal[T, E any] struct {
	generator func(*Subscriber[T, E]) Disposable
}

// NewSignal wraps a generator. The generator must return a non-nil
// Disposable; return EmptyDisposable when there is nothing to cancel.
func NewSignal[T, E any](generator func(*Subscriber[T, E]) Disposable) Signal[T, E] {
	if generator == nil {
		panic("signal: NewSignal requires a generator")
	}
	return Signal[T, E]{generator: generator}
}

// Start runs the generator with a fresh Subscriber built from the three
// callbacks; any of them may be nil. The returned Disposable cancels the
// execution: the upstream is disposed and the subscriber is terminated
// silently, without any callback firing.
func (s Signal[T, E]) Start(next func(T), err func(E), completed func()) Disposable {
	subscriber := newSubscriber[T, E](next, err, completed)
	upstream := s.generator(subscriber)
	subscriber.assignDisposable(upstream)
	return &startDisposable[T, E]{subscriber: subscriber, upstream: upstream}
}

// StartNext is Start with only a value callback.
func (s Signal[T, E]) StartNext(next func(T)) Disposable {
	return s.Start(next, nil, nil)
}

// startDisposable is the externally visible handle for one execution.
// The first Dispose nils both references so the subscriber's closures
// (and anything they capture) become collectable immediately; the
// subscriber itself is terminated silently.
type startDisposable[T, E any] struct {
	mu         sync.Mutex
	subscriber *Subscriber[T, E]
	upstream   Disposable
}

func (d *startDisposable[T, E]) Dispose() {
	d.mu.Lock()
	subscriber := d.subscriber
	upstream := d.upstream
	d.subscriber = nil
	d.upstream = nil
	d.mu.Unlock()

	if subscriber != nil {
		subscriber.markTerminatedWithoutAction()
	}
	if upstream != nil {
		upstream.Dispose()
	}
}

// Single emits one value, then completes.
func Single[T, E any](value T) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		subscriber.PutNext(value)
		subscriber.PutCompletion()
		return EmptyDisposable
	})
}

// Complete completes immediately without emitting.
func Complete[T, E any]() Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		subscriber.PutCompletion()
		return EmptyDisposable
	})
}

// Fail fails immediately with err.
func Fail[T, E any](err E) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		subscriber.PutError(err)
		return EmptyDisposable
	})
}

// Never neither emits nor terminates; a placeholder for work awaiting
// external activation. Only disposal ends it.
func Never[T, E any]() Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		return EmptyDisposable
	})
}
