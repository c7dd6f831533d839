package signal

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Map transforms every value with f. Errors and completion pass through.
func Map[T, R, E any](s Signal[T, E], f func(T) R) Signal[R, E] {
	return NewSignal(func(subscriber *Subscriber[R, E]) Disposable {
		return s.Start(func(value T) {
			subscriber.PutNext(f(value))
		}, subscriber.PutError, subscriber.PutCompletion)
	})
}

// Filter drops values for which keep returns false.
func Filter[T, E any](s Signal[T, E], keep func(T) bool) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		return s.Start(func(value T) {
			if keep(value) {
				subscriber.PutNext(value)
			}
		}, subscriber.PutError, subscriber.PutCompletion)
	})
}

type lastValue[T any] struct {
	has   bool
	value T
}

// DistinctUntilChangedFunc suppresses a value equal (per equal) to the
// previously emitted one. State is per execution, as with all operators.
func DistinctUntilChangedFunc[T, E any](s Signal[T, E], equal func(a, b T) bool) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		last := NewAtomic(lastValue[T]{})
		return s.Start(func(value T) {
			deliver := false
			last.Modify(func(l lastValue[T]) lastValue[T] {
				if l.has && equal(l.value, value) {
					return l
				}
				deliver = true
				return lastValue[T]{has: true, value: value}
			})
			if deliver {
				subscriber.PutNext(value)
			}
		}, subscriber.PutError, subscriber.PutCompletion)
	})
}

// DistinctUntilChanged is DistinctUntilChangedFunc with ==.
func DistinctUntilChanged[T comparable, E any](s Signal[T, E]) Signal[T, E] {
	return DistinctUntilChangedFunc(s, func(a, b T) bool { return a == b })
}

// Distinct forwards only the first occurrence of each value within one
// execution.
func Distinct[T comparable, E any](s Signal[T, E]) Signal[T, E] {
	return NewSignal(func(subscriber *Subscriber[T, E]) Disposable {
		seen := mapset.NewSet[T]()
		return s.Start(func(value T) {
			if seen.Add(value) {
				subscriber.PutNext(value)
			}
		}, subscriber.PutError, subscriber.PutCompletion)
	})
}
