package signal_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hiDandelion/signalkit/signal"
	"github.com/stretchr/testify/assert"
)

func TestActionDisposableRunsOnce(t *testing.T) {
	count := 0
	d := signal.ActionDisposable(func() { count++ })
	d.Dispose()
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, count)
}

func TestActionDisposableConcurrentDispose(t *testing.T) {
	var count atomic.Int64
	d := signal.ActionDisposable(func() { count.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispose()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), count.Load())
}

func TestActionDisposableNilAction(t *testing.T) {
	d := signal.ActionDisposable(nil)
	assert.NotPanics(t, d.Dispose)
}

func TestMetaDisposableReplacesPrevious(t *testing.T) {
	d1Count, d2Count := 0, 0
	m := signal.NewMetaDisposable()

	m.Set(signal.ActionDisposable(func() { d1Count++ }))
	m.Set(signal.ActionDisposable(func() { d2Count++ }))
	assert.Equal(t, 1, d1Count, "previous child must be disposed exactly once")
	assert.Equal(t, 0, d2Count, "current child must stay alive")

	m.Dispose()
	assert.Equal(t, 1, d1Count)
	assert.Equal(t, 1, d2Count)

	m.Dispose()
	assert.Equal(t, 1, d2Count, "dispose must be idempotent")
}

func TestMetaDisposableSetAfterDispose(t *testing.T) {
	m := signal.NewMetaDisposable()
	m.Dispose()

	count := 0
	m.Set(signal.ActionDisposable(func() { count++ }))
	assert.Equal(t, 1, count, "set after dispose must dispose the argument immediately")
}

func TestDisposableSetTearsDownAllChildren(t *testing.T) {
	counts := make([]int, 3)
	s := signal.NewDisposableSet()
	for i := range counts {
		i := i
		s.Add(signal.ActionDisposable(func() { counts[i]++ }))
	}

	s.Dispose()
	s.Dispose()
	for i, c := range counts {
		assert.Equal(t, 1, c, "child %d", i)
	}

	late := 0
	s.Add(signal.ActionDisposable(func() { late++ }))
	assert.Equal(t, 1, late, "add after dispose must dispose the argument immediately")
}

func TestDisposableSetRemove(t *testing.T) {
	count := 0
	d := signal.ActionDisposable(func() { count++ })

	s := signal.NewDisposableSet()
	s.Add(d)
	s.Remove(d)
	s.Dispose()
	assert.Equal(t, 0, count, "removed child must not be disposed by the set")
}

func TestDisposableDictReplacesPerKey(t *testing.T) {
	aCount, bCount := 0, 0
	dd := signal.NewDisposableDict[string]()

	dd.Set("k", signal.ActionDisposable(func() { aCount++ }))
	dd.Set("k", signal.ActionDisposable(func() { bCount++ }))
	assert.Equal(t, 1, aCount, "previous occupant of the key must be disposed")
	assert.Equal(t, 0, bCount)

	dd.DisposeKey("k")
	assert.Equal(t, 1, bCount)

	dd.Dispose()
	assert.Equal(t, 1, bCount)

	late := 0
	dd.Set("other", signal.ActionDisposable(func() { late++ }))
	assert.Equal(t, 1, late, "set after dispose must dispose the argument immediately")
}

func TestStrictDelegates(t *testing.T) {
	count := 0
	d := signal.Strict(signal.ActionDisposable(func() { count++ }))
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, count)
}
