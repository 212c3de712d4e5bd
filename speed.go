// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrInvalidSpeed is returned by SetSpeed for a multiplier that is not one of
// the configured presets.
var ErrInvalidSpeed = errors.New("algoviz: invalid playback speed")

// DefaultSpeeds are the playback speed multipliers offered by default.
var DefaultSpeeds = []float64{0.25, 0.5, 0.75, 1, 1.5, 2, 4}

// BaseTickInterval is the interval between autoplay ticks at speed 1.
const BaseTickInterval = time.Second

// TickInterval returns the interval between autoplay ticks at the given
// speed.
func TickInterval(speed float64) time.Duration {
	return time.Duration(float64(BaseTickInterval) / speed)
}

func validateSpeed(speeds []float64, speed float64) error {
	if !slices.Contains(speeds, speed) {
		return errors.Wrapf(ErrInvalidSpeed, "%gx is not one of %v", speed, speeds)
	}
	return nil
}
