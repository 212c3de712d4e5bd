// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import (
	"sync"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrEmptyTrace is returned when loading a nil trace or an empty step list.
var ErrEmptyTrace = trace.ErrEmptyTrace

// ErrClosed is returned by operations on a closed Player.
var ErrClosed = errors.New("algoviz: player closed")

// State is an immutable view of a Player.
type State struct {
	// Trace is nil when no trace is loaded.
	Trace *trace.Trace
	// Index is the current step, in [0, Trace.Len()).
	Index   int
	Playing bool
	Speed   float64
	Tag     trace.Tag
}

// Loaded returns true if a trace is loaded.
func (s State) Loaded() bool { return s.Trace != nil }

// Len returns the number of steps of the loaded trace, or 0.
func (s State) Len() int {
	if s.Trace == nil {
		return 0
	}
	return s.Trace.Len()
}

// Step returns the current step.
func (s State) Step() (trace.Step, bool) {
	if s.Trace == nil {
		return trace.Step{}, false
	}
	return s.Trace.At(s.Index), true
}

// AtEnd returns true if the current step is the last one.
func (s State) AtEnd() bool {
	return s.Trace != nil && s.Index == s.Trace.Len()-1
}

// Matches returns true if a trace is loaded and its tag satisfies m.
func (s State) Matches(m trace.Matcher) bool {
	return s.Trace != nil && m(s.Tag)
}

func (s State) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s State) SafeFormat(w redact.SafePrinter, _ rune) {
	if s.Trace == nil {
		w.Printf("no trace loaded (speed %gx)", redact.Safe(s.Speed))
		return
	}
	mode := redact.SafeString("paused")
	if s.Playing {
		mode = "playing"
	}
	w.Printf("%s: step %d/%d, %s, speed %gx",
		redact.SafeString(s.Tag), redact.Safe(s.Index+1), redact.Safe(s.Trace.Len()), mode, redact.Safe(s.Speed))
}

// Player holds at most one trace and a cursor into it. It is the only owner of
// playback state: all mutation goes through its methods, each of which is
// applied atomically under the Player's mutex.
type Player struct {
	opts *Options
	mu   struct {
		sync.Mutex
		closed  bool
		trace   *trace.Trace
		index   int
		playing bool
		speed   float64
		// gen is bumped every time the autoplay tick is scheduled or
		// cancelled. A tick carrying another generation is stale.
		gen   uint64
		timer Timer
		// playTime measures the current autoplay run.
		playTime base.Stopwatch
		metrics  Metrics
		subs     []subscriber
		nextSub  uint64
		// events holds event listener calls to be run after unlocking.
		events []func()
	}
}

type subscriber struct {
	id uint64
	fn func(State)
}

// NewPlayer returns a Player with no trace loaded. A nil opts uses defaults.
// It panics if the options are invalid.
func NewPlayer(opts *Options) *Player {
	opts = opts.EnsureDefaults()
	if err := opts.Validate(); err != nil {
		panic(errors.Wrap(err, "algoviz: invalid options"))
	}
	p := &Player{opts: opts}
	p.mu.speed = opts.DefaultSpeed
	return p
}

// apply runs fn under the lock. If fn reports a change, subscribers receive
// the new State after the lock is released. Event listener calls queued by fn
// are run first.
func (p *Player) apply(fn func() bool) bool {
	p.mu.Lock()
	changed := fn()
	var st State
	var subs []subscriber
	if changed {
		st = p.stateLocked()
		subs = append(subs, p.mu.subs...)
	}
	events := p.mu.events
	p.mu.events = nil
	p.mu.Unlock()

	for _, ev := range events {
		ev()
	}
	for _, s := range subs {
		s.fn(st)
	}
	return changed
}

func (p *Player) stateLocked() State {
	s := State{
		Trace:   p.mu.trace,
		Index:   p.mu.index,
		Playing: p.mu.playing,
		Speed:   p.mu.speed,
	}
	if p.mu.trace != nil {
		s.Tag = p.mu.trace.Tag()
	}
	return s
}

func (p *Player) lastIndexLocked() int {
	return p.mu.trace.Len() - 1
}

// Load replaces the current trace with t and moves to its first step, paused.
// A nil or empty trace returns ErrEmptyTrace and leaves the Player unchanged.
func (p *Player) Load(t *trace.Trace) error {
	if t == nil || t.Len() == 0 {
		return ErrEmptyTrace
	}
	var err error
	p.apply(func() bool {
		if p.mu.closed {
			err = ErrClosed
			return false
		}
		p.stopLocked(StopReplaced)
		p.mu.trace = t
		p.mu.index = 0
		p.mu.metrics.TracesLoaded++
		info := TraceInfo{Tag: t.Tag(), Steps: t.Len(), Loaded: true}
		p.queueEvent(func() { p.opts.EventListener.TraceLoaded(info) })
		return true
	})
	return err
}

// LoadSteps builds a trace from steps and loads it.
func (p *Player) LoadSteps(steps []trace.Step, tag trace.Tag) error {
	t, err := trace.NewTrace(tag, steps)
	if err != nil {
		return err
	}
	return p.Load(t)
}

// Clear drops the loaded trace.
func (p *Player) Clear() {
	p.apply(func() bool {
		if p.mu.trace == nil {
			return false
		}
		p.stopLocked(StopCleared)
		info := TraceInfo{Tag: p.mu.trace.Tag(), Steps: p.mu.trace.Len()}
		p.mu.trace = nil
		p.mu.index = 0
		p.queueEvent(func() { p.opts.EventListener.TraceCleared(info) })
		return true
	})
}

// StepForward moves to the next step. It returns false at the last step or
// without a trace.
func (p *Player) StepForward() bool {
	return p.apply(func() bool {
		if p.mu.trace == nil || p.mu.index >= p.lastIndexLocked() {
			return false
		}
		p.moveLocked(p.mu.index + 1)
		return true
	})
}

// StepBackward moves to the previous step. It returns false at the first step
// or without a trace.
func (p *Player) StepBackward() bool {
	return p.apply(func() bool {
		if p.mu.trace == nil || p.mu.index == 0 {
			return false
		}
		p.moveLocked(p.mu.index - 1)
		return true
	})
}

// Seek moves to step i, clamped to the trace bounds.
func (p *Player) Seek(i int) {
	p.apply(func() bool {
		if p.mu.trace == nil {
			return false
		}
		p.mu.metrics.Seeks++
		i = max(0, min(i, p.lastIndexLocked()))
		if i == p.mu.index {
			return false
		}
		p.moveLocked(i)
		return true
	})
}

// moveLocked sets the index and stops autoplay if the last step is reached.
func (p *Player) moveLocked(i int) {
	if i > p.mu.index {
		p.mu.metrics.StepsForward += int64(i - p.mu.index)
	} else {
		p.mu.metrics.StepsBackward += int64(p.mu.index - i)
	}
	p.mu.index = i
	if p.mu.playing && i == p.lastIndexLocked() {
		p.stopLocked(StopEnd)
	}
}

// Play starts autoplay. It is a no-op without a trace, when already playing
// or at the last step.
func (p *Player) Play() {
	p.apply(p.playLocked)
}

// Pause stops autoplay.
func (p *Player) Pause() {
	p.apply(func() bool {
		return p.stopLocked(StopPaused)
	})
}

// TogglePlay pauses if playing and plays otherwise.
func (p *Player) TogglePlay() {
	p.apply(func() bool {
		if p.mu.playing {
			return p.stopLocked(StopPaused)
		}
		return p.playLocked()
	})
}

// SetSpeed sets the autoplay speed multiplier, which must be one of the
// configured presets. A pending tick keeps its interval; the new speed applies
// from the next tick.
func (p *Player) SetSpeed(speed float64) error {
	if err := validateSpeed(p.opts.Speeds, speed); err != nil {
		return err
	}
	var err error
	p.apply(func() bool {
		if p.mu.closed {
			err = ErrClosed
			return false
		}
		if p.mu.speed == speed {
			return false
		}
		info := SpeedInfo{From: p.mu.speed, To: speed}
		p.mu.speed = speed
		p.mu.metrics.SpeedChanges++
		p.queueEvent(func() { p.opts.EventListener.SpeedChanged(info) })
		return true
	})
	return err
}

// Reset moves to the first step and stops autoplay, keeping the trace.
func (p *Player) Reset() {
	p.apply(func() bool {
		if p.mu.trace == nil {
			return false
		}
		stopped := p.stopLocked(StopReset)
		moved := p.mu.index != 0
		p.mu.index = 0
		return stopped || moved
	})
}

// State returns the current state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// Subscribe registers fn to be called with the new State after every change.
// The returned function unregisters it. fn runs outside the Player's lock;
// when changes race, deliveries may arrive out of order.
func (p *Player) Subscribe(fn func(State)) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mu.nextSub++
	id := p.mu.nextSub
	p.mu.subs = append(p.mu.subs, subscriber{id: id, fn: fn})
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i := range p.mu.subs {
			if p.mu.subs[i].id == id {
				p.mu.subs = append(p.mu.subs[:i:i], p.mu.subs[i+1:]...)
				return
			}
		}
	}
}

// Metrics returns a snapshot of the Player's counters.
func (p *Player) Metrics() Metrics {
	p.mu.Lock()
	defer p.mu.Unlock()
	m := p.mu.metrics
	if p.mu.playing {
		m.PlayingTime += p.mu.playTime.Elapsed()
	}
	return m
}

// Close stops autoplay and releases subscribers. Later calls to Load,
// LoadSteps and SetSpeed return ErrClosed; other methods keep working on the
// retained state but autoplay can no longer start.
func (p *Player) Close() error {
	var err error
	p.apply(func() bool {
		if p.mu.closed {
			err = ErrClosed
			return false
		}
		p.stopLocked(StopClosed)
		p.mu.closed = true
		p.mu.subs = nil
		return false
	})
	return err
}

func (p *Player) queueEvent(ev func()) {
	p.mu.events = append(p.mu.events, ev)
}
