package signal_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/hiDandelion/signalkit/signal"
	"github.com/stretchr/testify/assert"
)

func TestThenRunsSecondAfterFirstCompletes(t *testing.T) {
	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Then(fromSlice([]int{1, 2}), fromSlice([]int{3, 4})).Start(next, errFn, completed)

	values, _, completions := r.snapshot()
	assert.Equal(t, []int{1, 2, 3, 4}, values)
	assert.Equal(t, 1, completions)
}

func TestThenSkipsSecondOnError(t *testing.T) {
	boom := errors.New("boom")
	var started atomic.Bool
	second := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		started.Store(true)
		subscriber.PutCompletion()
		return signal.EmptyDisposable
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Then(signal.Fail[int](boom), second).Start(next, errFn, completed)

	_, errs, completions := r.snapshot()
	assert.Equal(t, []error{boom}, errs)
	assert.Zero(t, completions)
	assert.False(t, started.Load())
}

func TestTakeCompletesEarlyAndStopsUpstream(t *testing.T) {
	var disposed atomic.Bool
	var upstream *signal.Subscriber[int, error]
	source := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		upstream = subscriber
		return signal.ActionDisposable(func() { disposed.Store(true) })
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Take(source, 2).Start(next, errFn, completed)

	upstream.PutNext(1)
	upstream.PutNext(2)
	upstream.PutNext(3)

	values, _, completions := r.snapshot()
	assert.Equal(t, []int{1, 2}, values)
	assert.Equal(t, 1, completions)
	assert.True(t, disposed.Load(), "reaching the count tears down the source")
}

func TestTakePassesShortStreamsThrough(t *testing.T) {
	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Take(fromSlice([]int{1}), 5).Start(next, errFn, completed)

	values, _, completions := r.snapshot()
	assert.Equal(t, []int{1}, values)
	assert.Equal(t, 1, completions)
}

func TestTakePanicsOnNonPositiveCount(t *testing.T) {
	assert.Panics(t, func() {
		signal.Take(signal.Never[int, error](), 0)
	})
}

func TestCatchRecoversWithFallback(t *testing.T) {
	boom := errors.New("boom")
	failing := signal.Then(fromSlice([]int{1}), signal.Fail[int](boom))

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Catch(failing, func(err error) signal.Signal[int, error] {
		assert.Equal(t, boom, err)
		return fromSlice([]int{9})
	}).Start(next, errFn, completed)

	values, errs, completions := r.snapshot()
	assert.Equal(t, []int{1, 9}, values)
	assert.Empty(t, errs)
	assert.Equal(t, 1, completions)
}

func TestCatchForwardsFallbackError(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Catch(signal.Fail[int](first), func(error) signal.Signal[int, error] {
		return signal.Fail[int](second)
	}).Start(next, errFn, completed)

	_, errs, _ := r.snapshot()
	assert.Equal(t, []error{second}, errs)
}

func TestRestartResubscribesOnCompletion(t *testing.T) {
	var runs atomic.Int64
	source := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		n := runs.Add(1)
		subscriber.PutNext(int(n))
		if n < 3 {
			// The first runs complete synchronously and are restarted
			// without recursion. The last run stays open.
			subscriber.PutCompletion()
		}
		return signal.EmptyDisposable
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Restart(source).Start(next, errFn, completed)

	values, _, completions := r.snapshot()
	assert.Equal(t, []int{1, 2, 3}, values)
	assert.Zero(t, completions)
	assert.EqualValues(t, 3, runs.Load())
}

func TestRestartStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var runs atomic.Int64
	source := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		if runs.Add(1) == 1 {
			subscriber.PutCompletion()
		} else {
			subscriber.PutError(boom)
		}
		return signal.EmptyDisposable
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Restart(source).Start(next, errFn, completed)

	_, errs, _ := r.snapshot()
	assert.Equal(t, []error{boom}, errs)
	assert.EqualValues(t, 2, runs.Load())
}

func TestRestartDisposalPreventsFurtherRuns(t *testing.T) {
	var runs atomic.Int64
	var current atomic.Pointer[signal.Subscriber[int, error]]
	source := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		runs.Add(1)
		current.Store(subscriber)
		return signal.EmptyDisposable
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	d := signal.Restart(source).Start(next, errFn, completed)

	assert.EqualValues(t, 1, runs.Load())
	d.Dispose()
	current.Load().PutCompletion()

	assert.EqualValues(t, 1, runs.Load(), "no restart after disposal")
}
