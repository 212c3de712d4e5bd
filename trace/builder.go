// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package trace

import (
	"fmt"

	"github.com/cockroachdb/algoviz/internal/invariants"
	"github.com/cockroachdb/errors"
)

// Builder accumulates the steps of one run. Generators create a Builder,
// emit a step at every semantically meaningful point and call Finish once.
//
//	b := trace.NewBuilder(trace.TagBubbleSort)
//	b.Emitf(trace.OpStart, snap, "sorting %d values", n)
//	...
//	b.Completef(trace.OpDone, snap, "sorted")
//	return b.Finish()
type Builder struct {
	tag      Tag
	steps    []Step
	finished bool

	// closeChecker catches a second Finish in invariant builds.
	closeChecker invariants.CloseChecker
}

// NewBuilder returns a Builder for a trace with the given tag.
func NewBuilder(tag Tag) *Builder {
	return &Builder{tag: tag}
}

// Tag returns the tag the trace will carry.
func (b *Builder) Tag() Tag { return b.tag }

// Len returns the number of steps emitted so far.
func (b *Builder) Len() int { return len(b.steps) }

// Emitf records a step. The snapshot is cloned immediately.
func (b *Builder) Emitf(op Op, snap Snapshot, format string, args ...any) {
	b.add(NewStep(fmt.Sprintf(format, args...), op, snap))
}

// Failf records a terminal step reporting a domain error (not found, already
// present, overflow, ...).
func (b *Builder) Failf(op Op, snap Snapshot, format string, args ...any) {
	b.add(NewStep(fmt.Sprintf(format, args...), op, snap).WithError())
}

// Completef records the terminal step of a successful run.
func (b *Builder) Completef(op Op, snap Snapshot, format string, args ...any) {
	b.add(NewStep(fmt.Sprintf(format, args...), op, snap).WithCompleted())
}

func (b *Builder) add(s Step) {
	if b.finished {
		panic(errors.AssertionFailedf("step %q added to finished %q trace", s.description, b.tag))
	}
	b.steps = append(b.steps, s)
}

// Finish returns the recorded trace. A generator that emitted no step is a
// programming error.
func (b *Builder) Finish() *Trace {
	if len(b.steps) == 0 {
		panic(errors.AssertionFailedf("%q trace finished without steps", b.tag))
	}
	b.closeChecker.Close()
	b.finished = true
	return &Trace{tag: b.tag, steps: b.steps}
}
