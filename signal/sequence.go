package signal

// Then emits all of s's values and, on s's completion (not error),
// subscribes to next and forwards its values and termination.
func Then[T, E any](s Signal[T, E], next Signal[T, E]) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		set := NewDisposableSet()
		set.Add(s.Start(subscriber.PutNext, subscriber.PutError, func() {
			set.Add(next.Start(subscriber.PutNext, subscriber.PutError, subscriber.PutCompletion))
		}))
		return set
	})
}

// Take forwards up to count values, then synthesizes completion, which
// also disposes the upstream subscription.
func Take[T, E any](s Signal[T, E], count int) Signal[T, E] {
	if count <= 0 {
		panic("signal: Take requires count > 0")
	}
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		taken := NewAtomic(0)
		return s.Start(func(value T) {
			deliver := false
			complete := false
			taken.Modify(func(n int) int {
				if n < count {
					deliver = true
					n++
					complete = n == count
				}
				return n
			})
			if deliver {
				subscriber.PutNext(value)
			}
			if complete {
				subscriber.PutCompletion()
			}
		}, subscriber.PutError, subscriber.PutCompletion)
	})
}

// Catch subscribes to f(err) on upstream error instead of forwarding
// the error.
func Catch[T, E any](s Signal[T, E], f func(E) Signal[T, E]) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		set := NewDisposableSet()
		set.Add(s.Start(subscriber.PutNext, func(err E) {
			set.Add(f(err).Start(subscriber.PutNext, subscriber.PutError, subscriber.PutCompletion))
		}, subscriber.PutCompletion))
		return set
	})
}

type restartState struct {
	stopped  bool
	starting bool
	rerun    bool
}

// Restart re-subscribes to s every time it completes, until disposed.
// An error is forwarded and ends the cycle.
func Restart[T, E any](s Signal[T, E]) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		state := NewAtomic(restartState{})
		current := NewMetaDisposable()

		// Completions arriving while Start is still on the stack are
		// absorbed by the loop below instead of recursing, so a source
		// that completes synchronously cannot overflow the stack.
		var start func()
		start = func() {
			for {
				state.Modify(func(r restartState) restartState {
					r.starting = true
					r.rerun = false
					return r
				})
				d := s.Start(subscriber.PutNext, subscriber.PutError, func() {
					restartNow := false
					state.Modify(func(r restartState) restartState {
						if r.stopped {
							return r
						}
						if r.starting {
							r.rerun = true
						} else {
							restartNow = true
						}
						return r
					})
					if restartNow {
						start()
					}
				})
				current.Set(d)

				again := false
				state.Modify(func(r restartState) restartState {
					r.starting = false
					again = r.rerun && !r.stopped
					r.rerun = false
					return r
				})
				if !again {
					return
				}
			}
		}
		start()

		return ActionDisposable(func() {
			state.Modify(func(r restartState) restartState {
				r.stopped = true
				return r
			})
			current.Dispose()
		})
	})
}
