// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/algoviz/avl"
	"github.com/cockroachdb/algoviz/bst"
	"github.com/cockroachdb/algoviz/graph"
	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/sorting"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

const (
	minBenchLatency = time.Nanosecond
	maxBenchLatency = time.Minute
)

// benchGenerator prepares a random input of size n and returns the function
// whose execution is measured.
type benchGenerator struct {
	name    string
	prepare func(rng *rand.Rand, n int) func() (*trace.Trace, error)
}

var benchGenerators = []benchGenerator{
	{name: "bubble", prepare: prepareSort(sorting.BubbleSort)},
	{name: "selection", prepare: prepareSort(sorting.SelectionSort)},
	{name: "insertion", prepare: prepareSort(sorting.InsertionSort)},
	{name: "bst-insert", prepare: prepareTree(bst.Insert)},
	{name: "avl-insert", prepare: prepareTree(avl.Insert)},
	{name: "dijkstra", prepare: func(rng *rand.Rand, n int) func() (*trace.Trace, error) {
		g := randomGraph(rng, n)
		return func() (*trace.Trace, error) { return graph.Dijkstra(g, "n0") }
	}},
	{name: "kruskal", prepare: func(rng *rand.Rand, n int) func() (*trace.Trace, error) {
		g := randomGraph(rng, n)
		return func() (*trace.Trace, error) { return graph.Kruskal(g) }
	}},
}

func prepareSort(gen func([]int) *trace.Trace) func(*rand.Rand, int) func() (*trace.Trace, error) {
	return func(rng *rand.Rand, n int) func() (*trace.Trace, error) {
		values := rng.Perm(n)
		return func() (*trace.Trace, error) { return gen(values), nil }
	}
}

func prepareTree(gen func([]int, int) *trace.Trace) func(*rand.Rand, int) func() (*trace.Trace, error) {
	return func(rng *rand.Rand, n int) func() (*trace.Trace, error) {
		keys := rng.Perm(n + 1)
		return func() (*trace.Trace, error) { return gen(keys[:n], keys[n]), nil }
	}
}

// randomGraph returns a connected undirected graph on n nodes: a path through
// all nodes plus n random chords, with weights in [1, 9].
func randomGraph(rng *rand.Rand, n int) *graph.Graph {
	g := graph.New(false)
	id := func(i int) string { return fmt.Sprintf("n%d", i) }
	_, _ = g.AddNode(id(0))
	for i := 1; i < n; i++ {
		_ = g.AddEdge(id(i-1), id(i), float64(1+rng.Intn(9)))
	}
	for i := 0; n > 1 && i < n; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		_ = g.AddEdge(id(a), id(b), float64(1+rng.Intn(9)))
	}
	return g
}

// benchT implements the bench command, which measures trace generation,
// snapshot copies included.
type benchT struct {
	Root *cobra.Command

	sizes intList
	runs  int
	seed  uint64
	only  []string
}

func newBench() *benchT {
	b := &benchT{sizes: intList{16, 64, 256}}
	b.Root = &cobra.Command{
		Use:   "bench",
		Short: "measure trace generation latency",
		Long: `
Generate traces for random inputs of every --sizes and report the
distribution of generation latencies along with the number of steps.
Every step holds a full copy of the structure, so the cost of a trace
grows with both its length and the size of the input.
`,
		Args: cobra.NoArgs,
		RunE: b.run,
	}
	b.Root.Flags().Var(&b.sizes, "sizes", "input sizes")
	b.Root.Flags().IntVar(&b.runs, "runs", 10, "number of runs per generator and size")
	b.Root.Flags().Uint64Var(&b.seed, "seed", 1, "random seed")
	b.Root.Flags().StringSliceVar(&b.only, "generators", nil, "generators to run (default all)")
	return b
}

func (b *benchT) run(cmd *cobra.Command, args []string) error {
	if b.runs <= 0 {
		return errors.Newf("--runs must be positive, got %d", b.runs)
	}
	gens, err := b.generators()
	if err != nil {
		return err
	}
	results := make([]benchResult, 0, len(gens)*len(b.sizes))
	for _, gen := range gens {
		for _, n := range b.sizes {
			if n <= 0 {
				return errors.Newf("size %d is not positive", n)
			}
			res, err := benchOne(gen, n, b.runs, b.seed)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}
	writeBenchResults(cmd.OutOrStdout(), results)
	return nil
}

func (b *benchT) generators() ([]benchGenerator, error) {
	if len(b.only) == 0 {
		return benchGenerators, nil
	}
	var res []benchGenerator
	for _, name := range b.only {
		found := false
		for _, g := range benchGenerators {
			if g.name == name {
				res = append(res, g)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Newf("unknown generator %q", name)
		}
	}
	return res, nil
}

type benchResult struct {
	name  string
	size  int
	steps int
	hist  *hdrhistogram.Histogram
}

func newBenchRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func benchOne(gen benchGenerator, n, runs int, seed uint64) (benchResult, error) {
	rng := newBenchRand(seed)
	res := benchResult{
		name: gen.name,
		size: n,
		hist: hdrhistogram.New(minBenchLatency.Nanoseconds(), maxBenchLatency.Nanoseconds(), 2),
	}
	for i := 0; i < runs; i++ {
		fn := gen.prepare(rng, n)
		sw := base.MakeStopwatch()
		tr, err := fn()
		elapsed := sw.Elapsed()
		if err != nil {
			return benchResult{}, errors.Wrapf(err, "%s n=%d", gen.name, n)
		}
		res.steps = max(res.steps, tr.Len())
		_ = res.hist.RecordValue(min(max(elapsed, minBenchLatency), maxBenchLatency).Nanoseconds())
	}
	return res, nil
}

func writeBenchResults(w io.Writer, results []benchResult) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Generator", "Size", "Steps", "p50", "p95", "p99", "pMax"})
	quantile := func(h *hdrhistogram.Histogram, q float64) string {
		return time.Duration(h.ValueAtQuantile(q)).String()
	}
	for _, r := range results {
		tbl.Append([]string{
			r.name,
			fmt.Sprint(r.size),
			string(crhumanize.Count(int64(r.steps), crhumanize.Compact)),
			quantile(r.hist, 50),
			quantile(r.hist, 95),
			quantile(r.hist, 99),
			quantile(r.hist, 100),
		})
	}
	tbl.Render()
}
