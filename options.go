// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import (
	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// InMemLogger is a Logger writing to an in-memory buffer.
type InMemLogger = base.InMemLogger

// Options holds the optional parameters for a Player.
type Options struct {
	// Clock schedules autoplay ticks. The default uses time.AfterFunc.
	Clock Clock

	// Logger used by the default logging EventListener.
	Logger Logger

	// EventListener receives playback lifecycle notifications. Nil callbacks
	// are replaced by no-ops.
	EventListener *EventListener

	// Speeds lists the accepted playback speed multipliers. Defaults to
	// DefaultSpeeds.
	Speeds []float64

	// DefaultSpeed is the initial playback speed; it must be one of Speeds.
	// Defaults to 1.
	DefaultSpeed float64

	// AutoplayTicks is incremented on every autoplay tick that advances a
	// trace. The default is an unregistered counter.
	AutoplayTicks prometheus.Counter
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Clock == nil {
		o.Clock = defaultClock{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	if o.EventListener == nil {
		o.EventListener = &EventListener{}
	}
	o.EventListener.EnsureDefaults(o.Logger)
	if len(o.Speeds) == 0 {
		o.Speeds = DefaultSpeeds
	}
	if o.DefaultSpeed == 0 {
		o.DefaultSpeed = 1
	}
	if o.AutoplayTicks == nil {
		o.AutoplayTicks = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "algoviz_autoplay_ticks_total",
			Help: "Number of autoplay ticks that advanced a trace.",
		})
	}
	return o
}

// Validate verifies that the options are mutually consistent.
func (o *Options) Validate() error {
	for _, s := range o.Speeds {
		if !(s > 0) {
			return errors.Wrapf(ErrInvalidSpeed, "speed %g is not positive", s)
		}
	}
	if err := validateSpeed(o.Speeds, o.DefaultSpeed); err != nil {
		return errors.Wrap(err, "default speed")
	}
	return nil
}
