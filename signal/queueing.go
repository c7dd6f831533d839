package signal

import "sync"

// Queue and Throttle share one state machine over a signal of signals.
// Inner signals run strictly one at a time; the difference is what
// happens to inner signals that arrive while one is executing. Queue
// buffers all of them in order; Throttle keeps only the most recent.
//
// Disposal mid-execution discards any buffered inner signals; they are
// never started.

// Queue runs inner signals sequentially, buffering later arrivals.
func Queue[T, E any](s Signal[Signal[T, E], E]) Signal[T, E] {
	return queued(s, false)
}

// Throttle runs inner signals sequentially, but an arrival while one is
// executing replaces whatever else was waiting.
func Throttle[T, E any](s Signal[Signal[T, E], E]) Signal[T, E] {
	return queued(s, true)
}

func queued[T, E any](s Signal[Signal[T, E], E], keepOnlyLatest bool) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		var (
			mu        sync.Mutex
			waiting   []Signal[T, E]
			executing bool
			outerDone bool
			// trampoline bookkeeping for inner signals that
			// complete synchronously inside their own Start
			starting        bool
			pendingNext     *Signal[T, E]
			pendingComplete bool
		)
		current := NewMetaDisposable()

		var runLoop func(inner Signal[T, E])

		onInnerComplete := func() {
			var next *Signal[T, E]
			complete := false
			deferred := false
			mu.Lock()
			if len(waiting) > 0 {
				n := waiting[0]
				waiting = waiting[1:]
				next = &n
			} else {
				executing = false
				complete = outerDone
			}
			if starting {
				pendingNext = next
				pendingComplete = complete
				deferred = true
			}
			mu.Unlock()

			if deferred {
				return
			}
			if next != nil {
				runLoop(*next)
			} else if complete {
				subscriber.PutCompletion()
			}
		}

		runLoop = func(inner Signal[T, E]) {
			for {
				mu.Lock()
				starting = true
				pendingNext = nil
				pendingComplete = false
				mu.Unlock()

				d := inner.Start(subscriber.PutNext, subscriber.PutError, onInnerComplete)
				current.Set(d)

				mu.Lock()
				starting = false
				next := pendingNext
				complete := pendingComplete
				pendingNext = nil
				pendingComplete = false
				mu.Unlock()

				if next != nil {
					inner = *next
					continue
				}
				if complete {
					subscriber.PutCompletion()
				}
				return
			}
		}

		outer := s.Start(func(inner Signal[T, E]) {
			execute := false
			mu.Lock()
			if executing {
				if keepOnlyLatest {
					waiting = waiting[:0]
				}
				waiting = append(waiting, inner)
			} else {
				executing = true
				execute = true
			}
			mu.Unlock()

			if execute {
				runLoop(inner)
			}
		}, subscriber.PutError, func() {
			mu.Lock()
			outerDone = true
			complete := !executing
			mu.Unlock()

			if complete {
				subscriber.PutCompletion()
			}
		})

		set := NewDisposableSet()
		set.Add(outer)
		set.Add(current)
		return set
	})
}
