package signal_test

import (
	"errors"
	"testing"

	"github.com/hiDandelion/signalkit/signal"
	"github.com/stretchr/testify/assert"
)

func TestMergeInterleavesSources(t *testing.T) {
	var a, b *signal.Subscriber[int, error]
	sa := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		a = subscriber
		return signal.EmptyDisposable
	})
	sb := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		b = subscriber
		return signal.EmptyDisposable
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Merge(sa, sb).Start(next, errFn, completed)

	a.PutNext(1)
	b.PutNext(2)
	a.PutNext(3)

	values, _, _ := r.snapshot()
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestMergeCompletesAfterAllSources(t *testing.T) {
	var a, b *signal.Subscriber[int, error]
	sa := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		a = subscriber
		return signal.EmptyDisposable
	})
	sb := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		b = subscriber
		return signal.EmptyDisposable
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Merge(sa, sb).Start(next, errFn, completed)

	a.PutCompletion()
	_, _, completions := r.snapshot()
	assert.Zero(t, completions, "one source still running")

	b.PutNext(5)
	b.PutCompletion()

	values, _, completions := r.snapshot()
	assert.Equal(t, []int{5}, values)
	assert.Equal(t, 1, completions)
}

func TestMergePropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	var b *signal.Subscriber[int, error]
	sb := signal.NewSignal(func(subscriber *signal.Subscriber[int, error]) signal.Disposable {
		b = subscriber
		return signal.EmptyDisposable
	})

	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Merge(signal.Fail[int](boom), sb).Start(next, errFn, completed)

	b.PutNext(1)

	values, errs, completions := r.snapshot()
	assert.Empty(t, values, "error tears down the other source")
	assert.Equal(t, []error{boom}, errs)
	assert.Zero(t, completions)
}

func TestMergeOfNothingCompletesImmediately(t *testing.T) {
	r := &recorder[int, error]{}
	next, errFn, completed := r.callbacks()
	signal.Merge[int, error]().Start(next, errFn, completed)

	_, _, completions := r.snapshot()
	assert.Equal(t, 1, completions)
}
