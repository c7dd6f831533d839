package signal

import "sync"

// combineLatestAny is the machinery behind the typed CombineLatestN
// functions and CombineLatestList. It buffers the latest value per
// input, emits combine(latest...) once every input has produced at
// least one value and again on every later value, completes when all
// inputs have completed, and fails as soon as any input fails.
func combineLatestAny[R, E any](signals []Signal[any, E], combine func([]any) R) Signal[R, E] {
	if len(signals) == 0 {
		return Complete[R, E]()
	}
	return NewSignal(func(subscriber *Subscriber[R, E]) Disposable {
		var (
			mu        sync.Mutex
			values    = make([]any, len(signals))
			hasValue  = make([]bool, len(signals))
			ready     int
			completed int
		)
		n := len(signals)
		set := NewDisposableSet()
		for i, s := range signals {
			i := i
			set.Add(s.Start(func(value any) {
				var snapshot []any
				mu.Lock()
				if !hasValue[i] {
					hasValue[i] = true
					ready++
				}
				values[i] = value
				if ready == n {
					snapshot = append([]any(nil), values...)
				}
				mu.Unlock()

				if snapshot != nil {
					subscriber.PutNext(combine(snapshot))
				}
			}, subscriber.PutError, func() {
				mu.Lock()
				completed++
				complete := completed == n
				mu.Unlock()

				if complete {
					subscriber.PutCompletion()
				}
			}))
		}
		return set
	})
}

// CombineLatestList is the homogeneous form of CombineLatestN: it emits
// a slice with the latest value of every input.
func CombineLatestList[T, E any](signals []Signal[T, E]) Signal[[]T, E] {
	erased := make([]Signal[any, E], len(signals))
	for i, s := range signals {
		erased[i] = toAny(s)
	}
	return combineLatestAny(erased, func(values []any) []T {
		out := make([]T, len(values))
		for i, v := range values {
			out[i] = v.(T)
		}
		return out
	})
}

func toAny[T, E any](s Signal[T, E]) Signal[any, E] {
	return Map(s, func(value T) any { return value })
}
