// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import "time"

// Clock abstracts the scheduling of autoplay ticks. Tests substitute a manual
// clock to advance playback deterministically.
type Clock interface {
	// AfterFunc arranges for f to be called in its own goroutine after d.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending call scheduled by a Clock.
type Timer interface {
	// Stop prevents the call from firing. It returns false if the call has
	// already fired or been stopped.
	Stop() bool
}

// defaultClock is a Clock using the time package.
type defaultClock struct{}

var _ Clock = defaultClock{}

func (defaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
