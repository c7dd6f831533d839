//go:build leakcheck

package signal

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

type strictDisposable struct {
	inner    Disposable
	site     string
	disposed atomic.Bool
}

// Strict wraps d so that collecting the wrapper without a prior Dispose
// panics with the call site that created it. Development aid only; the
// regular build returns d unchanged.
func Strict(d Disposable) Disposable {
	_, file, line, _ := runtime.Caller(1)
	s := &strictDisposable{
		inner: d,
		site:  fmt.Sprintf("%s:%d", file, line),
	}
	runtime.SetFinalizer(s, func(s *strictDisposable) {
		if !s.disposed.Load() {
			panic("signal: leaked disposable created at " + s.site)
		}
	})
	return s
}

func (s *strictDisposable) Dispose() {
	s.disposed.Store(true)
	s.inner.Dispose()
}
