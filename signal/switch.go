package signal

type switchState struct {
	outerDone   bool
	innerActive bool
}

// SwitchToLatest flattens a signal of signals by always following the
// most recent inner signal: each outer value cancels the running inner
// subscription and subscribes to the new one. Completion reaches
// downstream only once the outer signal and the last inner signal have
// both completed.
func SwitchToLatest[T, E any](s Signal[Signal[T, E], E]) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		state := NewAtomic(switchState{})
		inner := NewMetaDisposable()

		outer := s.Start(func(innerSignal Signal[T, E]) {
			state.Modify(func(st switchState) switchState {
				st.innerActive = true
				return st
			})
			inner.Set(innerSignal.Start(subscriber.PutNext, subscriber.PutError, func() {
				complete := false
				state.Modify(func(st switchState) switchState {
					st.innerActive = false
					complete = st.outerDone
					return st
				})
				if complete {
					subscriber.PutCompletion()
				}
			}))
		}, subscriber.PutError, func() {
			complete := false
			state.Modify(func(st switchState) switchState {
				st.outerDone = true
				complete = !st.innerActive
				return st
			})
			if complete {
				subscriber.PutCompletion()
			}
		})

		set := NewDisposableSet()
		set.Add(outer)
		set.Add(inner)
		return set
	})
}

// MapToSignal maps every value to a signal and follows the latest one.
func MapToSignal[T, R, E any](s Signal[T, E], f func(T) Signal[R, E]) Signal[R, E] {
	return SwitchToLatest(Map(s, f))
}
