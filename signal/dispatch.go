package signal

import (
	"sync/atomic"

	"github.com/hiDandelion/signalkit/queue"
)

// DeliverOn replays every event of s through q.Dispatch, confining
// delivery to the queue. Because Dispatch takes the identity fast path,
// events produced on q itself are delivered synchronously with no hop.
func DeliverOn[T, E any](s Signal[T, E], q *queue.Queue) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		return s.Start(func(value T) {
			q.Dispatch(func() {
				subscriber.PutNext(value)
			})
		}, func(err E) {
			q.Dispatch(func() {
				subscriber.PutError(err)
			})
		}, func() {
			q.Dispatch(func() {
				subscriber.PutCompletion()
			})
		})
	})
}

// RunOn defers only the subscription (the generator invocation) to q.
// Events are delivered wherever the source produces them. Disposing
// before the hop lands cancels the subscription without starting it.
func RunOn[T, E any](s Signal[T, E], q *queue.Queue) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		var cancelled atomic.Bool
		started := NewMetaDisposable()
		q.Dispatch(func() {
			if cancelled.Load() {
				return
			}
			started.Set(s.Start(subscriber.PutNext, subscriber.PutError, subscriber.PutCompletion))
		})
		return ActionDisposable(func() {
			cancelled.Store(true)
			started.Dispose()
		})
	})
}
