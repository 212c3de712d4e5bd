// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"time"

	"github.com/cockroachdb/crlib/crtime"
)

// Stopwatch measures elapsed time from a monotonic start point.
type Stopwatch struct {
	startTime crtime.Mono
}

// MakeStopwatch returns a Stopwatch started now.
func MakeStopwatch() Stopwatch {
	return Stopwatch{startTime: crtime.NowMono()}
}

// Elapsed returns the time since the stopwatch was started.
func (w Stopwatch) Elapsed() time.Duration {
	return w.startTime.Elapsed()
}
