package signal

import "sync"

// Disposable is a one-shot cancellation token. Dispose must be safe to
// call any number of times, from any goroutine, with the same observable
// effect as calling it once.
type Disposable interface {
	Dispose()
}

type emptyDisposable struct{}

func (emptyDisposable) Dispose() {}

// EmptyDisposable does nothing when disposed.
var EmptyDisposable Disposable = emptyDisposable{}

type actionDisposable struct {
	mu     sync.Mutex
	action func()
}

// ActionDisposable wraps a callback that runs exactly once, on the first
// Dispose. A nil action is allowed and equivalent to EmptyDisposable.
func ActionDisposable(action func()) Disposable {
	return &actionDisposable{action: action}
}

func (d *actionDisposable) Dispose() {
	d.mu.Lock()
	action := d.action
	d.action = nil
	d.mu.Unlock()

	// Run outside the lock; the action may dispose other disposables
	// that call back into this one.
	if action != nil {
		action()
	}
}

// MetaDisposable holds at most one child disposable. Setting a new child
// disposes the previous one, so the two are never live concurrently.
// Once the MetaDisposable itself is disposed, every later Set disposes
// its argument immediately.
type MetaDisposable struct {
	mu       sync.Mutex
	disposed bool
	child    Disposable
}

func NewMetaDisposable() *MetaDisposable {
	return &MetaDisposable{}
}

// Set installs d as the current child, disposing whichever child was
// there before. Passing nil clears the slot.
func (m *MetaDisposable) Set(d Disposable) {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		if d != nil {
			d.Dispose()
		}
		return
	}
	previous := m.child
	m.child = d
	m.mu.Unlock()

	if previous != nil {
		previous.Dispose()
	}
}

func (m *MetaDisposable) Dispose() {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	child := m.child
	m.child = nil
	m.mu.Unlock()

	if child != nil {
		child.Dispose()
	}
}

// DisposableSet collects disposables and tears them all down together.
type DisposableSet struct {
	mu       sync.Mutex
	disposed bool
	children []Disposable
}

func NewDisposableSet() *DisposableSet {
	return &DisposableSet{}
}

// Add registers d for disposal with the set. If the set was already
// disposed, d is disposed immediately instead.
func (s *DisposableSet) Add(d Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		d.Dispose()
		return
	}
	s.children = append(s.children, d)
	s.mu.Unlock()
}

// Remove drops d from the set without disposing it.
func (s *DisposableSet) Remove(d Disposable) {
	s.mu.Lock()
	for i, child := range s.children {
		if child == d {
			s.children = append(s.children[:i], s.children[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}

func (s *DisposableSet) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	children := s.children
	s.children = nil
	s.mu.Unlock()

	for _, child := range children {
		child.Dispose()
	}
}

// DisposableDict holds one disposable per key. Setting a key disposes
// the previous occupant of that key.
type DisposableDict[K comparable] struct {
	mu       sync.Mutex
	disposed bool
	children map[K]Disposable
}

func NewDisposableDict[K comparable]() *DisposableDict[K] {
	return &DisposableDict[K]{children: make(map[K]Disposable)}
}

func (dd *DisposableDict[K]) Set(key K, d Disposable) {
	dd.mu.Lock()
	if dd.disposed {
		dd.mu.Unlock()
		if d != nil {
			d.Dispose()
		}
		return
	}
	previous := dd.children[key]
	if d != nil {
		dd.children[key] = d
	} else {
		delete(dd.children, key)
	}
	dd.mu.Unlock()

	if previous != nil {
		previous.Dispose()
	}
}

// DisposeKey disposes and removes the disposable stored under key.
func (dd *DisposableDict[K]) DisposeKey(key K) {
	dd.mu.Lock()
	previous := dd.children[key]
	delete(dd.children, key)
	dd.mu.Unlock()

	if previous != nil {
		previous.Dispose()
	}
}

func (dd *DisposableDict[K]) Dispose() {
	dd.mu.Lock()
	if dd.disposed {
		dd.mu.Unlock()
		return
	}
	dd.disposed = true
	children := dd.children
	dd.children = nil
	dd.mu.Unlock()

	for _, child := range children {
		child.Dispose()
	}
}
