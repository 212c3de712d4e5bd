// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import (
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/redact"
)

// TraceInfo contains the info for a trace loaded or cleared event.
type TraceInfo struct {
	Tag   trace.Tag
	Steps int
	// Loaded is false for a cleared trace.
	Loaded bool
}

func (i TraceInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i TraceInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	if !i.Loaded {
		w.Printf("trace %s cleared", redact.SafeString(i.Tag))
		return
	}
	w.Printf("trace %s loaded: %d steps", redact.SafeString(i.Tag), redact.Safe(i.Steps))
}

// StopReason explains why autoplay stopped.
type StopReason uint8

const (
	// StopPaused is an explicit Pause or TogglePlay.
	StopPaused StopReason = iota
	// StopEnd is reaching the last step.
	StopEnd
	// StopReset is a Reset.
	StopReset
	// StopCleared is a Clear.
	StopCleared
	// StopReplaced is loading another trace.
	StopReplaced
	// StopClosed is closing the Player.
	StopClosed
)

// SafeFormat implements redact.SafeFormatter.
func (r StopReason) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString(redact.SafeString(r.String()))
}

func (r StopReason) String() string {
	switch r {
	case StopPaused:
		return "paused"
	case StopEnd:
		return "reached the end"
	case StopReset:
		return "reset"
	case StopCleared:
		return "cleared"
	case StopReplaced:
		return "replaced"
	case StopClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// PlaybackInfo contains the info for playback started and stopped events.
type PlaybackInfo struct {
	Tag   trace.Tag
	Index int
	Steps int
	Speed float64
	// Reason is set for stopped playback.
	Reason  StopReason
	Started bool
}

func (i PlaybackInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i PlaybackInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	if i.Started {
		w.Printf("playback of %s started at step %d/%d (speed %gx)",
			redact.SafeString(i.Tag), redact.Safe(i.Index+1), redact.Safe(i.Steps), redact.Safe(i.Speed))
		return
	}
	w.Printf("playback of %s stopped at step %d/%d: %s",
		redact.SafeString(i.Tag), redact.Safe(i.Index+1), redact.Safe(i.Steps), i.Reason)
}

// SpeedInfo contains the info for a speed change event.
type SpeedInfo struct {
	From, To float64
}

func (i SpeedInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i SpeedInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("speed changed from %gx to %gx", redact.Safe(i.From), redact.Safe(i.To))
}

// EventListener contains a set of functions that will be invoked when various
// playback events occur. The callbacks run after the Player's lock is
// released and may call back into the Player.
type EventListener struct {
	// TraceLoaded is invoked after a trace is loaded.
	TraceLoaded func(TraceInfo)

	// TraceCleared is invoked after the trace is dropped by Clear.
	TraceCleared func(TraceInfo)

	// PlaybackStarted is invoked when autoplay starts.
	PlaybackStarted func(PlaybackInfo)

	// PlaybackStopped is invoked when autoplay stops, whatever the reason.
	PlaybackStopped func(PlaybackInfo)

	// SpeedChanged is invoked after a successful SetSpeed.
	SpeedChanged func(SpeedInfo)
}

// EnsureDefaults ensures that event listener callbacks are non-nil.
func (l *EventListener) EnsureDefaults(logger Logger) {
	if l.TraceLoaded == nil {
		l.TraceLoaded = func(info TraceInfo) {}
	}
	if l.TraceCleared == nil {
		l.TraceCleared = func(info TraceInfo) {}
	}
	if l.PlaybackStarted == nil {
		l.PlaybackStarted = func(info PlaybackInfo) {}
	}
	if l.PlaybackStopped == nil {
		l.PlaybackStopped = func(info PlaybackInfo) {}
	}
	if l.SpeedChanged == nil {
		l.SpeedChanged = func(info SpeedInfo) {}
	}
}

// MakeLoggingEventListener creates an EventListener that logs all events to the
// specified logger.
func MakeLoggingEventListener(logger Logger) EventListener {
	if logger == nil {
		logger = DefaultLogger{}
	}
	return EventListener{
		TraceLoaded: func(info TraceInfo) {
			logger.Infof("%s", info)
		},
		TraceCleared: func(info TraceInfo) {
			logger.Infof("%s", info)
		},
		PlaybackStarted: func(info PlaybackInfo) {
			logger.Infof("%s", info)
		},
		PlaybackStopped: func(info PlaybackInfo) {
			logger.Infof("%s", info)
		},
		SpeedChanged: func(info SpeedInfo) {
			logger.Infof("%s", info)
		},
	}
}

// TeeEventListener wraps two EventListeners, forwarding all events to both.
func TeeEventListener(a, b EventListener) EventListener {
	a.EnsureDefaults(nil)
	b.EnsureDefaults(nil)
	return EventListener{
		TraceLoaded: func(info TraceInfo) {
			a.TraceLoaded(info)
			b.TraceLoaded(info)
		},
		TraceCleared: func(info TraceInfo) {
			a.TraceCleared(info)
			b.TraceCleared(info)
		},
		PlaybackStarted: func(info PlaybackInfo) {
			a.PlaybackStarted(info)
			b.PlaybackStarted(info)
		},
		PlaybackStopped: func(info PlaybackInfo) {
			a.PlaybackStopped(info)
			b.PlaybackStopped(info)
		},
		SpeedChanged: func(info SpeedInfo) {
			a.SpeedChanged(info)
			b.SpeedChanged(info)
		},
	}
}
