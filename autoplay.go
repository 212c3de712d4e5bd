// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package algoviz

import "github.com/cockroachdb/algoviz/internal/base"

// playLocked starts autoplay if there is a step to advance to.
func (p *Player) playLocked() bool {
	if p.mu.closed || p.mu.trace == nil || p.mu.playing || p.mu.index >= p.lastIndexLocked() {
		return false
	}
	p.mu.playing = true
	p.mu.playTime = base.MakeStopwatch()
	p.mu.metrics.Plays++
	info := p.playbackInfoLocked()
	info.Started = true
	p.queueEvent(func() { p.opts.EventListener.PlaybackStarted(info) })
	p.scheduleLocked()
	return true
}

// stopLocked stops autoplay and cancels the pending tick. It returns false if
// autoplay was not running.
func (p *Player) stopLocked(reason StopReason) bool {
	p.cancelLocked()
	if !p.mu.playing {
		return false
	}
	p.mu.playing = false
	p.mu.metrics.PlayingTime += p.mu.playTime.Elapsed()
	info := p.playbackInfoLocked()
	info.Reason = reason
	p.queueEvent(func() { p.opts.EventListener.PlaybackStopped(info) })
	return true
}

func (p *Player) playbackInfoLocked() PlaybackInfo {
	return PlaybackInfo{
		Tag:   p.mu.trace.Tag(),
		Index: p.mu.index,
		Steps: p.mu.trace.Len(),
		Speed: p.mu.speed,
	}
}

// scheduleLocked arms the next tick at the current speed, replacing any
// pending one.
func (p *Player) scheduleLocked() {
	p.cancelLocked()
	gen := p.mu.gen
	p.mu.timer = p.opts.Clock.AfterFunc(TickInterval(p.mu.speed), func() {
		p.tick(gen)
	})
}

// cancelLocked invalidates the pending tick, if any. The timer is stopped, but
// a tick that already fired and is waiting for the lock is recognized by its
// generation and discarded.
func (p *Player) cancelLocked() {
	p.mu.gen++
	if p.mu.timer != nil {
		p.mu.timer.Stop()
		p.mu.timer = nil
	}
}

func (p *Player) tick(gen uint64) {
	p.apply(func() bool {
		if gen != p.mu.gen {
			return false
		}
		p.mu.timer = nil
		p.mu.metrics.Ticks++
		p.opts.AutoplayTicks.Inc()
		// moveLocked stops autoplay when the last step is reached.
		p.moveLocked(p.mu.index + 1)
		if p.mu.playing {
			p.scheduleLocked()
		}
		return true
	})
}
