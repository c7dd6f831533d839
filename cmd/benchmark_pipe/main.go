package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/hiDandelion/signalkit/signal"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting signalkit pipe benchmark, please wait...")
	defer log.Print("Finished signalkit pipe benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:        "narrow shallow",
			width:       2,
			totalLayers: 4,
			iterations:  200_000,
		},
		{
			name:        "wide",
			width:       64,
			totalLayers: 4,
			iterations:  20_000,
		},
		{
			name:        "deep",
			width:       4,
			totalLayers: 64,
			iterations:  10_000,
		},
		{
			name:        "wide deep",
			width:       32,
			totalLayers: 16,
			iterations:  5_000,
		},
	}

	type results struct {
		count    int64
		checksum uint64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"size", "nTimes", "test", "time", "updateRate", "checksum",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		bestResult := &results{duration: time.Hour}
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, testRepeats)

			graph := benchmarkMakeGraph(cfg.width, cfg.totalLayers)
			start := time.Now()
			count, checksum := benchmarkRunGraph(graph, cfg.iterations)
			duration := time.Since(start)
			graph.dispose()

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.count = count
				bestResult.checksum = checksum
			}
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))
		table.Append([]string{
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			humanize.Comma(cfg.iterations),
			cfg.name,
			fmt.Sprint(bestResult.duration),
			humanize.Comma(int64(updateRate)),
			fmt.Sprintf("%016x", bestResult.checksum),
		})
	}
	table.Render()
}

type benchmarkTestConfig struct {
	name        string // friendly name for the test, should be unique
	width       int    // nodes per layer
	totalLayers int    // depth of the combine graph
	iterations  int64  // writes into the source promises
}

type benchmarkGraph struct {
	sources []*signal.ValuePromise[int]
	count   *int64
	digest  *xxhash.Digest
	sink    signal.Disposable
}

func (g *benchmarkGraph) dispose() {
	g.sink.Dispose()
}

// benchmarkMakeGraph builds width sources and totalLayers-1 layers of
// pairwise CombineLatest2 sums on top, merged into one counting,
// checksumming sink.
func benchmarkMakeGraph(width, totalLayers int) *benchmarkGraph {
	sources := make([]*signal.ValuePromise[int], width)
	prev := make([]signal.Signal[int, signal.NoError], width)
	for i := range sources {
		sources[i] = signal.NewValuePromiseWithValue(i, false)
		prev[i] = sources[i].Get()
	}

	for l := 1; l < totalLayers; l++ {
		row := make([]signal.Signal[int, signal.NoError], width)
		for i := 0; i < width; i++ {
			left := prev[i]
			right := prev[(i+1)%width]
			row[i] = signal.CombineLatest2(left, right, func(a, b int) int {
				return a + b
			})
		}
		prev = row
	}

	g := &benchmarkGraph{
		sources: sources,
		count:   new(int64),
		digest:  xxhash.New(),
	}
	var buf [8]byte
	g.sink = signal.Merge(prev...).StartNext(func(v int) {
		*g.count++
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		g.digest.Write(buf[:])
	})
	return g
}

func benchmarkRunGraph(g *benchmarkGraph, iterations int64) (count int64, checksum uint64) {
	for i := int64(0); i < iterations; i++ {
		sourceDex := int(i) % len(g.sources)
		g.sources[sourceDex].Set(int(i) + sourceDex)
	}
	return *g.count, g.digest.Sum64()
}
