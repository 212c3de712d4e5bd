// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package trace

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Step is one immutable point-in-time record of an algorithm's state.
type Step struct {
	description string
	op          Op
	snapshot    Snapshot
	err         bool
	completed   bool
}

// NewStep constructs a Step. The snapshot is cloned, so the caller may keep
// mutating whatever it references.
//
// An empty description or a nil snapshot is a programming error and panics.
func NewStep(description string, op Op, snapshot Snapshot) Step {
	if description == "" {
		panic(errors.AssertionFailedf("step %q has an empty description", op))
	}
	if snapshot == nil {
		panic(errors.AssertionFailedf("step %q (%s) has no snapshot", op, description))
	}
	return Step{
		description: description,
		op:          op,
		snapshot:    snapshot.Clone(),
	}
}

// WithError returns a copy of the step with the error flag set.
func (s Step) WithError() Step {
	s.err = true
	return s
}

// WithCompleted returns a copy of the step with the completed flag set.
func (s Step) WithCompleted() Step {
	s.completed = true
	return s
}

// Description returns the human-readable description of the step.
func (s Step) Description() string { return s.description }

// Op returns the operation tag of the step.
func (s Step) Op() Op { return s.op }

// Snapshot returns the payload. It must not be modified.
func (s Step) Snapshot() Snapshot { return s.snapshot }

// IsError returns true if the step reports a domain error (not found, already
// exists, stack overflow, ...).
func (s Step) IsError() bool { return s.err }

// IsCompleted returns true if the step marks the successful end of the run.
func (s Step) IsCompleted() bool { return s.completed }

// SafeFormat implements redact.SafeFormatter.
func (s Step) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] %s", redact.SafeString(s.op), s.description)
	if s.err {
		w.SafeString(" (error)")
	}
	if s.completed {
		w.SafeString(" (completed)")
	}
}

// String implements fmt.Stringer.
func (s Step) String() string {
	return redact.StringWithoutMarkers(s)
}
