// Package queue provides execution contexts for thread-confined work.
//
// A Queue wraps a dedicated worker goroutine with an unbounded FIFO of
// submitted work. Its distinguishing feature is the identity fast path:
// work submitted from the goroutine the queue already runs on is executed
// synchronously in place instead of being re-queued. Callers already
// serialized on the queue therefore pay no dispatch overhead, and
// ordering relative to the surrounding work item is preserved.
//
// Submission never blocks and there is no backpressure; if producers
// outrun the worker the pending list grows. Bound hot spots externally
// if that matters.
package queue

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Queue is a serial (or concurrent, see Concurrent) execution context.
type Queue struct {
	name       string
	concurrent bool

	mu      sync.Mutex
	cond    *sync.Cond
	pending []func()
	closed  bool

	// goroutine id of the worker, 0 until the worker has started.
	workerID atomic.Int64
}

// New creates a serial queue and starts its worker goroutine.
func New(name string) *Queue {
	q := &Queue{name: name}
	q.cond = sync.NewCond(&q.mu)
	started := make(chan struct{})
	go q.run(started)
	<-started
	return q
}

// Concurrent creates a queue that runs every submitted item on its own
// goroutine. IsCurrent is always false for a concurrent queue, so
// Dispatch never takes the fast path.
func Concurrent(name string) *Queue {
	return &Queue{name: name, concurrent: true}
}

// Name returns the name the queue was created with.
func (q *Queue) Name() string {
	return q.name
}

func (q *Queue) run(started chan<- struct{}) {
	q.workerID.Store(goroutineID())
	close(started)
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		for _, f := range batch {
			f()
		}
	}
}

// IsCurrent reports whether the caller is already running on this queue's
// worker goroutine.
func (q *Queue) IsCurrent() bool {
	if q.concurrent {
		return false
	}
	return q.workerID.Load() == goroutineID()
}

// Dispatch submits f with the identity fast path: if the caller is
// already on this queue, f runs synchronously before Dispatch returns.
// Otherwise f is enqueued asynchronously.
func (q *Queue) Dispatch(f func()) {
	if q.IsCurrent() {
		f()
		return
	}
	q.Async(f)
}

// Async always enqueues f, even when called from the queue itself.
// Work submitted after Close is dropped.
func (q *Queue) Async(f func()) {
	q.enqueue(f)
}

// Sync submits f and waits for it to finish. On the queue itself it runs
// f in place. Sync on a closed queue returns without running f.
func (q *Queue) Sync(f func()) {
	if q.IsCurrent() {
		f()
		return
	}
	done := make(chan struct{})
	if !q.enqueue(func() {
		defer close(done)
		f()
	}) {
		return
	}
	<-done
}

func (q *Queue) enqueue(f func()) bool {
	if q.concurrent {
		go f()
		return true
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, f)
	q.cond.Signal()
	q.mu.Unlock()
	return true
}

// Close stops the worker after the already-pending work has drained.
// Later submissions are dropped. Close is idempotent.
func (q *Queue) Close() {
	if q.concurrent {
		return
	}
	q.mu.Lock()
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the caller's goroutine id out of the first line of
// runtime.Stack output ("goroutine 42 [running]:"). There is no public
// runtime API for this; the stack header format has been stable since
// Go 1.0 and this is the standard trick for goroutine-confined identity.
func goroutineID() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	rest := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	i := bytes.IndexByte(rest, ' ')
	if i < 0 {
		return -1
	}
	id, err := strconv.ParseInt(string(rest[:i]), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
