// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/algoviz"
	"github.com/cockroachdb/algoviz/sorting"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	play    bool
	speed   float64
	step    int
	summary bool
	plot    bool

	// maxDepth limits how deep tree snapshots are drawn; 0 uses the default.
	maxDepth int
}

// plotHeight is the number of rows of a --plot chart.
const plotHeight = 6

// summarizer prints a table describing the final step of a trace.
type summarizer func(w io.Writer, last trace.Step)

// emit prints or plays back tr according to the render flags.
func (t *T) emit(cmd *cobra.Command, tr *trace.Trace, summary summarizer) error {
	w := cmd.OutOrStdout()
	if t.render.step < 0 || t.render.step > tr.Len() {
		return errors.Newf("--step %d is out of range [1, %d]", t.render.step, tr.Len())
	}
	if t.render.play {
		return t.play(w, cmd.ErrOrStderr(), tr)
	}
	if t.render.step > 0 {
		t.printStep(w, tr, t.render.step-1)
		return nil
	}
	for i := range tr.All() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		t.printStep(w, tr, i)
	}
	fmt.Fprintf(w, "\n%s\n", tr)
	if t.render.summary && summary != nil {
		summary(w, tr.Last())
	}
	return nil
}

func (t *T) printStep(w io.Writer, tr *trace.Trace, i int) {
	step := tr.At(i)
	fmt.Fprintf(w, "step %d/%d: %s\n", i+1, tr.Len(), step)
	switch s := step.Snapshot().(type) {
	case *tree.Snapshot:
		fmt.Fprintf(w, "%s\n", strings.TrimRight(s.Render(t.render.maxDepth), "\n"))
	case fmt.Stringer:
		fmt.Fprintf(w, "%s\n", strings.TrimRight(s.String(), "\n"))
	}
	if t.render.plot {
		if s, ok := step.Snapshot().(*sorting.Snapshot); ok && len(s.Values) > 0 {
			fmt.Fprintf(w, "%s\n", plotValues(s.Values))
		}
	}
}

func plotValues(values []int) string {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data, asciigraph.Height(plotHeight))
}

// play drives tr through a Player, printing every step the playback reaches.
// It returns once the last step has been printed.
func (t *T) play(w, errW io.Writer, tr *trace.Trace) error {
	listener := algoviz.EventListener{}
	if t.cfg.LogEvents {
		listener = algoviz.MakeLoggingEventListener(&writerLogger{w: errW})
	}
	opts := (&algoviz.Options{
		Clock:         t.clock,
		EventListener: &listener,
		DefaultSpeed:  t.render.speed,
	}).EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}
	p := algoviz.NewPlayer(opts)
	defer p.Close()

	start := max(t.render.step-1, 0)
	var mu sync.Mutex
	last := start - 1
	done := make(chan struct{})
	var once sync.Once
	unsubscribe := p.Subscribe(func(s algoviz.State) {
		if !s.Loaded() {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		// Deliveries from consecutive ticks may arrive out of order; print
		// everything up to the reported index.
		for ; last < s.Index; last++ {
			if last >= start {
				fmt.Fprintln(w)
			}
			t.printStep(w, tr, last+1)
		}
		if last == tr.Len()-1 {
			once.Do(func() { close(done) })
		}
	})
	defer unsubscribe()

	if err := p.Load(tr); err != nil {
		return err
	}
	if start > 0 {
		p.Seek(start)
	}
	p.Play()
	<-done

	m := p.Metrics()
	fmt.Fprintf(w, "\n%s\n%s", tr, m.String())
	return nil
}

// writerLogger is an algoviz.Logger writing to w. Events are delivered from
// the goroutines driving playback, so writes are serialized.
type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

var _ algoviz.Logger = (*writerLogger)(nil)

func (l *writerLogger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *writerLogger) Errorf(format string, args ...interface{}) {
	l.Infof(format, args...)
}

func (l *writerLogger) Fatalf(format string, args ...interface{}) {
	panic(errors.Newf("%s", fmt.Sprintf(format, args...)))
}
