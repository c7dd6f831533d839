package signal

// Merge forwards every value from every input as it arrives. It
// completes once all inputs have completed and fails as soon as any
// input fails. Merge of nothing completes immediately.
func Merge[T, E any](signals ...Signal[T, E]) Signal[T, E] {
	if len(signals) == 0 {
		return Complete[T, E]()
	}
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		remaining := NewAtomic(len(signals))
		set := NewDisposableSet()
		for _, s := range signals {
			set.Add(s.Start(subscriber.PutNext, subscriber.PutError, func() {
				if remaining.Modify(func(n int) int { return n - 1 }) == 0 {
					subscriber.PutCompletion()
				}
			}))
		}
		return set
	})
}
