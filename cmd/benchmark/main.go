package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hiDandelion/signalkit/signal"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPipelines(true)
	benchmarkFanOut(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func addOne(v int) int {
	return v + 1
}

func benchmarkPipelines(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Pipeline Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			pipe := signal.NewValuePipe[int]()
			branches := make([]signal.Signal[int, signal.NoError], w)
			for i := 0; i < w; i++ {
				branch := pipe.Signal()
				for j := 0; j < h; j++ {
					branch = signal.Map(branch, addOne)
				}
				branches[i] = branch
			}

			sink := 0
			d := signal.Merge(branches...).StartNext(func(v int) {
				sink += v
			})

			for i := 0; i < iters; i++ {
				start := time.Now()
				pipe.PutNext(i)
				tach.AddTime(time.Since(start))
			}
			d.Dispose()

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkFanOut(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Promise Fan-Out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		promise := signal.NewValuePromiseWithValue(0, true)
		set := signal.NewDisposableSet()
		sink := 0
		for i := 0; i < w; i++ {
			set.Add(signal.DistinctUntilChanged(promise.Get()).StartNext(func(v int) {
				sink += v
			}))
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			promise.Set(i + 1)
			tach.AddTime(time.Since(start))
		}
		set.Dispose()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("fan-out: %d", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
