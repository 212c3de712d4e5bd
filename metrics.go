// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import (
	"time"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// Metrics holds counters describing how a Player has been used.
type Metrics struct {
	// TracesLoaded counts successful Load and LoadSteps calls.
	TracesLoaded int64
	// StepsForward and StepsBackward count index moves, manual or automatic.
	StepsForward  int64
	StepsBackward int64
	// Seeks counts Seek calls on a loaded trace.
	Seeks int64
	// Plays counts the times autoplay started.
	Plays int64
	// Ticks counts autoplay ticks that advanced a trace.
	Ticks int64
	// SpeedChanges counts successful SetSpeed calls that changed the speed.
	SpeedChanges int64
	// PlayingTime is the total time autoplay has been running.
	PlayingTime time.Duration
}

// String pretty-prints the metrics.
func (m *Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter. PlayingTime is not included so
// that the output is stable.
func (m *Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("traces: %d loaded\n", redact.Safe(m.TracesLoaded))
	w.Printf("steps: %d forward, %d backward, %d seeks\n",
		redact.Safe(m.StepsForward), redact.Safe(m.StepsBackward), redact.Safe(m.Seeks))
	w.Printf("autoplay: %s plays, %s ticks, %d speed changes\n",
		crhumanize.Count(m.Plays, crhumanize.Compact), crhumanize.Count(m.Ticks, crhumanize.Compact), redact.Safe(m.SpeedChanges))
}
