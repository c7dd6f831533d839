package signal

import "sync"

// ValuePipe fans values out to current subscribers without caching.
// Subscribing after a push yields nothing until the next push.
type ValuePipe[T any] struct {
	mu          sync.Mutex
	subscribers Bag[func(T)]
}

func NewValuePipe[T any]() *ValuePipe[T] {
	return &ValuePipe[T]{}
}

// PutNext delivers value to every subscriber registered at this moment.
func (p *ValuePipe[T]) PutNext(value T) {
	p.mu.Lock()
	subscribers := p.subscribers.Copy()
	p.mu.Unlock()

	for _, f := range subscribers {
		f(value)
	}
}

// Signal returns the stream of future pushes. It never terminates; only
// disposal ends a subscription.
func (p *ValuePipe[T]) Signal() Signal[T, NoError] {
	return NewSignal(func(subscriber *Subscriber[T, NoError]) Disposable {
		p.mu.Lock()
		key := p.subscribers.Add(subscriber.PutNext)
		p.mu.Unlock()

		return ActionDisposable(func() {
			p.mu.Lock()
			p.subscribers.Remove(key)
			p.mu.Unlock()
		})
	})
}
