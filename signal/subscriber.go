package signal

import "sync"

// Subscriber receives the events of one Signal execution and enforces
// at-most-one terminal event. Values may be pushed from any goroutine.
//
// The lock is held only across the terminated check and slot handling,
// never across a callback, so a callback may safely re-enter the
// subscriber (or dispose its own subscription) without deadlocking.
type Subscriber[T, E any] struct {
	mu         sync.Mutex
	next       func(T)
	error      func(E)
	completed  func()
	terminated bool
	upstream   Disposable
}

func newSubscriber[T, E any](next func(T), err func(E), completed func()) *Subscriber[T, E] {
	return &Subscriber[T, E]{
		next:      next,
		error:     err,
		completed: completed,
	}
}

// assignDisposable hands the subscriber its upstream link so terminal
// events can tear it down. If the subscriber terminated before the
// generator returned, the upstream is disposed immediately instead.
func (s *Subscriber[T, E]) assignDisposable(d Disposable) {
	s.mu.Lock()
	terminated := s.terminated
	if !terminated {
		s.upstream = d
	}
	s.mu.Unlock()

	if terminated && d != nil {
		d.Dispose()
	}
}

// markTerminatedWithoutAction terminates the subscriber silently: the
// callback slots are released but none of them fires. Used by external
// disposal, which is neither an error nor a completion. The upstream
// slot is cleared without disposing it; the disposer owns that.
func (s *Subscriber[T, E]) markTerminatedWithoutAction() {
	s.mu.Lock()
	if !s.terminated {
		s.terminated = true
		s.next = nil
		s.error = nil
		s.completed = nil
		s.upstream = nil
	}
	s.mu.Unlock()
}

// PutNext delivers a value. No-op once the subscriber is terminated.
func (s *Subscriber[T, E]) PutNext(value T) {
	s.mu.Lock()
	next := s.next
	s.mu.Unlock()

	if next != nil {
		next(value)
	}
}

// PutError delivers the terminal error and disposes the upstream.
// No-op if a terminal event was already delivered.
func (s *Subscriber[T, E]) PutError(err E) {
	s.mu.Lock()
	var (
		errFn    func(E)
		upstream Disposable
	)
	if !s.terminated {
		s.terminated = true
		errFn = s.error
		s.next = nil
		s.error = nil
		s.completed = nil
		upstream = s.upstream
		s.upstream = nil
	}
	s.mu.Unlock()

	if errFn != nil {
		errFn(err)
	}
	if upstream != nil {
		upstream.Dispose()
	}
}

// PutCompletion delivers completion and disposes the upstream.
// No-op if a terminal event was already delivered.
func (s *Subscriber[T, E]) PutCompletion() {
	s.mu.Lock()
	var (
		completed func()
		upstream  Disposable
	)
	if !s.terminated {
		s.terminated = true
		completed = s.completed
		s.next = nil
		s.error = nil
		s.completed = nil
		upstream = s.upstream
		s.upstream = nil
	}
	s.mu.Unlock()

	if completed != nil {
		completed()
	}
	if upstream != nil {
		upstream.Dispose()
	}
}
