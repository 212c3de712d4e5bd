// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/algoviz/bst"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// testSnapshot is a minimal trace payload.
type testSnapshot struct {
	n int
}

func (s *testSnapshot) Kind() trace.Kind { return trace.KindArray }

func (s *testSnapshot) Clone() trace.Snapshot {
	c := *s
	return &c
}

func makeTrace(tag trace.Tag, n int) *trace.Trace {
	b := trace.NewBuilder(tag)
	for i := 0; i < n-1; i++ {
		b.Emitf(trace.OpUpdate, &testSnapshot{n: i}, "step %d", i+1)
	}
	b.Completef(trace.OpDone, &testSnapshot{n: n - 1}, "step %d", n)
	return b.Finish()
}

func newTestPlayer(t *testing.T) (*Player, *manualClock, *InMemLogger) {
	clock := &manualClock{}
	logger := &InMemLogger{}
	el := MakeLoggingEventListener(logger)
	p := NewPlayer(&Options{
		Clock:         clock,
		Logger:        logger,
		EventListener: &el,
	})
	t.Cleanup(func() { _ = p.Close() })
	return p, clock, logger
}

func TestPlayer(t *testing.T) {
	var p *Player
	var clock *manualClock
	var logger *InMemLogger
	datadriven.RunTest(t, "testdata/player", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "init":
			p, clock, logger = newTestPlayer(t)
		case "load":
			var n int
			var tag string
			td.ScanArgs(t, "steps", &n)
			td.ScanArgs(t, "tag", &tag)
			require.NoError(t, p.Load(makeTrace(trace.Tag(tag), n)))
		case "forward":
			if !p.StepForward() {
				logger.Infof("no-op")
			}
		case "backward":
			if !p.StepBackward() {
				logger.Infof("no-op")
			}
		case "seek":
			var i int
			td.ScanArgs(t, "i", &i)
			p.Seek(i)
		case "play":
			p.Play()
		case "pause":
			p.Pause()
		case "toggle":
			p.TogglePlay()
		case "speed":
			var x float64
			td.ScanArgs(t, "x", &x)
			if err := p.SetSpeed(x); err != nil {
				logger.Infof("error: %v", err)
			}
		case "advance":
			var d string
			td.ScanArgs(t, "d", &d)
			dur, err := time.ParseDuration(d)
			require.NoError(t, err)
			clock.Advance(dur)
		case "reset":
			p.Reset()
		case "clear":
			p.Clear()
		case "close":
			if err := p.Close(); err != nil {
				logger.Infof("error: %v", err)
			}
		case "metrics":
			m := p.Metrics()
			return m.String()
		case "state":
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
		}
		var buf strings.Builder
		buf.WriteString(logger.String())
		logger.Reset()
		fmt.Fprintf(&buf, "%s\n", p.State())
		if n := clock.Pending(); n > 0 {
			fmt.Fprintf(&buf, "pending ticks: %d\n", n)
		}
		return buf.String()
	})
}

func TestNoTraceLoaded(t *testing.T) {
	p, clock, _ := newTestPlayer(t)
	var notified int
	p.Subscribe(func(State) { notified++ })
	require.False(t, p.StepForward())
	require.False(t, p.StepBackward())
	p.Seek(3)
	p.Play()
	p.TogglePlay()
	p.Pause()
	p.Reset()
	p.Clear()
	clock.Advance(time.Minute)

	s := p.State()
	require.False(t, s.Loaded())
	require.False(t, s.Playing)
	require.Equal(t, 0, s.Index)
	require.Equal(t, 0, s.Len())
	_, ok := s.Step()
	require.False(t, ok)
	require.False(t, s.Matches(trace.Any()))
	require.Equal(t, 0, notified)
	require.Equal(t, 0, clock.Pending())
}

func TestLoadErrors(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	require.ErrorIs(t, p.Load(nil), ErrEmptyTrace)
	require.ErrorIs(t, p.LoadSteps(nil, trace.TagBubbleSort), ErrEmptyTrace)
	require.False(t, p.State().Loaded())

	step := trace.NewStep("only step", trace.OpDone, &testSnapshot{})
	require.NoError(t, p.LoadSteps([]trace.Step{step}, trace.TagBubbleSort))
	s := p.State()
	require.True(t, s.Loaded())
	require.Equal(t, trace.TagBubbleSort, s.Tag)
	require.True(t, s.AtEnd())

	// Playing a single step trace is a no-op.
	p.Play()
	require.False(t, p.State().Playing)

	require.NoError(t, p.Close())
	require.ErrorIs(t, p.Close(), ErrClosed)
	require.ErrorIs(t, p.Load(makeTrace(trace.TagBubbleSort, 2)), ErrClosed)
	require.ErrorIs(t, p.SetSpeed(2), ErrClosed)
}

func TestStepInverse(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 5)))
	for i := 1; i < 4; i++ {
		p.Seek(i)
		require.True(t, p.StepForward())
		require.True(t, p.StepBackward())
		require.Equal(t, i, p.State().Index)
		require.True(t, p.StepBackward())
		require.True(t, p.StepForward())
		require.Equal(t, i, p.State().Index)
	}
	p.Seek(0)
	require.False(t, p.StepBackward())
	require.Equal(t, 0, p.State().Index)
	p.Seek(4)
	require.False(t, p.StepForward())
	require.Equal(t, 4, p.State().Index)
}

func TestSeek(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 5)))
	for _, tc := range []struct{ seek, want int }{
		{-3, 0}, {0, 0}, {2, 2}, {4, 4}, {5, 4}, {100, 4},
	} {
		p.Seek(tc.seek)
		first := p.State()
		p.Seek(tc.seek)
		require.Equal(t, first, p.State())
		require.Equal(t, tc.want, first.Index)
	}
}

func TestLoadResetsPlayback(t *testing.T) {
	p, clock, _ := newTestPlayer(t)
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 5)))
	p.Seek(2)
	p.Play()
	require.Equal(t, 1, clock.Pending())
	stale := clock.Last()

	require.NoError(t, p.Load(makeTrace(trace.TagDijkstra, 3)))
	s := p.State()
	require.Equal(t, 0, s.Index)
	require.False(t, s.Playing)
	require.Equal(t, trace.TagDijkstra, s.Tag)
	require.Equal(t, 0, clock.Pending())

	// A tick that was already on its way when the trace was replaced is
	// discarded.
	stale.f()
	require.Equal(t, s, p.State())
}

func TestStaleTickAfterPause(t *testing.T) {
	p, clock, _ := newTestPlayer(t)
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 5)))
	p.Play()
	stale := clock.Last()
	p.Pause()
	p.Play()
	require.Equal(t, 1, clock.Pending())
	stale.f()
	require.Equal(t, 0, p.State().Index)
	clock.Advance(time.Second)
	require.Equal(t, 1, p.State().Index)
}

func TestSpeedAppliesFromNextTick(t *testing.T) {
	p, clock, _ := newTestPlayer(t)
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 10)))
	p.Play()
	require.NoError(t, p.SetSpeed(4))
	clock.Advance(999 * time.Millisecond)
	require.Equal(t, 0, p.State().Index)
	clock.Advance(time.Millisecond)
	require.Equal(t, 1, p.State().Index)
	clock.Advance(250 * time.Millisecond)
	require.Equal(t, 2, p.State().Index)

	err := p.SetSpeed(3)
	require.ErrorIs(t, err, ErrInvalidSpeed)
	require.Equal(t, 4.0, p.State().Speed)
}

func TestSubscribe(t *testing.T) {
	p, clock, _ := newTestPlayer(t)
	var states []State
	unsubscribe := p.Subscribe(func(s State) { states = append(states, s) })
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 3)))
	p.StepForward()
	p.StepForward()
	p.StepForward() // no-op
	p.Seek(0)
	p.Play()
	clock.Advance(2 * time.Second)
	unsubscribe()
	p.Reset()

	var got []string
	for _, s := range states {
		got = append(got, s.String())
	}
	require.Equal(t, []string{
		"bst-insert: step 1/3, paused, speed 1x",
		"bst-insert: step 2/3, paused, speed 1x",
		"bst-insert: step 3/3, paused, speed 1x",
		"bst-insert: step 1/3, paused, speed 1x",
		"bst-insert: step 1/3, playing, speed 1x",
		"bst-insert: step 2/3, playing, speed 1x",
		"bst-insert: step 3/3, paused, speed 1x",
	}, got)
}

// TestSubscriberCallsBack checks that subscribers run outside the lock and may
// call into the Player.
func TestSubscriberCallsBack(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	var seen []int
	p.Subscribe(func(s State) {
		seen = append(seen, s.Index)
		if s.Index == 1 {
			p.StepForward()
		}
	})
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 4)))
	p.StepForward()
	require.Equal(t, []int{0, 1, 2}, seen)
	require.Equal(t, 2, p.State().Index)
}

func TestMatches(t *testing.T) {
	p, _, _ := newTestPlayer(t)
	require.NoError(t, p.Load(bst.Insert([]int{50, 30}, 40)))
	s := p.State()
	require.True(t, s.Matches(trace.Prefix("bst-")))
	require.True(t, s.Matches(trace.Exact(trace.TagBSTInsert)))
	require.False(t, s.Matches(trace.Prefix("graph-")))
	step, ok := s.Step()
	require.True(t, ok)
	require.Equal(t, "Insert 40", step.Description())
}

func TestAutoplayTicksCounter(t *testing.T) {
	clock := &manualClock{}
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "ticks"})
	p := NewPlayer(&Options{Clock: clock, AutoplayTicks: counter, Logger: &InMemLogger{}})
	defer p.Close()
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 4)))
	p.Play()
	clock.Advance(10 * time.Second)
	require.True(t, p.State().AtEnd())

	var m dto.Metric
	require.NoError(t, counter.Write(&m))
	require.Equal(t, 3.0, m.GetCounter().GetValue())
	require.Equal(t, int64(3), p.Metrics().Ticks)
}

func TestInvalidOptions(t *testing.T) {
	require.Panics(t, func() { NewPlayer(&Options{DefaultSpeed: 3}) })
	require.Panics(t, func() { NewPlayer(&Options{Speeds: []float64{1, -1}}) })
	o := &Options{Speeds: []float64{1, 3}, DefaultSpeed: 3}
	require.NoError(t, o.EnsureDefaults().Validate())
}

func TestTeeEventListener(t *testing.T) {
	var a, b InMemLogger
	el := TeeEventListener(MakeLoggingEventListener(&a), MakeLoggingEventListener(&b))
	p := NewPlayer(&Options{Clock: &manualClock{}, EventListener: &el})
	defer p.Close()
	require.NoError(t, p.Load(makeTrace(trace.TagQueue, 2)))
	require.Equal(t, "trace linear-queue loaded: 2 steps\n", a.String())
	require.Equal(t, a.String(), b.String())
}

// TestRealClock runs autoplay on the default clock and checks that no timer
// goroutine outlives the Player.
func TestRealClock(t *testing.T) {
	defer leaktest.AfterTest(t)()
	p := NewPlayer(&Options{Logger: &InMemLogger{}})
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 3)))
	require.NoError(t, p.SetSpeed(4))
	done := make(chan struct{})
	var once sync.Once
	p.Subscribe(func(s State) {
		if s.AtEnd() && !s.Playing {
			once.Do(func() { close(done) })
		}
	})
	p.Play()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("autoplay did not reach the end")
	}
	require.NoError(t, p.Close())
	require.True(t, errors.Is(p.Close(), ErrClosed))
}

// TestConcurrentControl drives a Player from several goroutines while
// autoplay runs; run with -race.
func TestConcurrentControl(t *testing.T) {
	defer leaktest.AfterTest(t)()
	p := NewPlayer(&Options{Logger: &InMemLogger{}})
	require.NoError(t, p.Load(makeTrace(trace.TagBSTInsert, 50)))
	require.NoError(t, p.SetSpeed(4))
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				switch (g + i) % 5 {
				case 0:
					p.StepForward()
				case 1:
					p.StepBackward()
				case 2:
					p.Seek(i % 50)
				case 3:
					p.TogglePlay()
				case 4:
					if s := p.State(); s.Index < 0 || s.Index >= 50 {
						t.Errorf("index %d out of bounds", s.Index)
					}
				}
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, p.Close())
	require.False(t, p.State().Playing)
}
