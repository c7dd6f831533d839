package signal

import "sync"

// Atomic is a mutex-protected value box. The lock is held only across
// the supplied computation; the computation must not call back into the
// same box (the mutex is not recursive).
type Atomic[T any] struct {
	mu    sync.Mutex
	value T
}

func NewAtomic[T any](value T) *Atomic[T] {
	return &Atomic[T]{value: value}
}

// Load returns the current value.
func (a *Atomic[T]) Load() T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Store replaces the current value.
func (a *Atomic[T]) Store(value T) {
	a.mu.Lock()
	a.value = value
	a.mu.Unlock()
}

// Modify stores f(current) and returns the new value.
func (a *Atomic[T]) Modify(f func(T) T) T {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.value = f(a.value)
	return a.value
}

// Swap exchanges the stored value for new and returns the old one.
func (a *Atomic[T]) Swap(new T) T {
	a.mu.Lock()
	defer a.mu.Unlock()
	old := a.value
	a.value = new
	return old
}

// With observes the value under the lock and returns f's result.
// A free function because Go methods cannot introduce type parameters.
func With[T, R any](a *Atomic[T], f func(T) R) R {
	a.mu.Lock()
	defer a.mu.Unlock()
	return f(a.value)
}
