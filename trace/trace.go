// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package trace

import (
	"iter"

	"github.com/cockroachdb/algoviz/internal/invariants"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrEmptyTrace is returned when a trace without steps is constructed or
// loaded.
var ErrEmptyTrace = errors.New("algoviz: trace has no steps")

// Trace is the ordered, non-empty sequence of Steps recorded during one run of
// an algorithm.
type Trace struct {
	tag   Tag
	steps []Step
}

// NewTrace returns a Trace over a copy of steps.
func NewTrace(tag Tag, steps []Step) (*Trace, error) {
	if len(steps) == 0 {
		return nil, errors.Wrapf(ErrEmptyTrace, "tag %q", tag)
	}
	for i := range steps {
		if steps[i].description == "" || steps[i].snapshot == nil {
			return nil, errors.Newf("step %d of %q was not built with NewStep", i, tag)
		}
	}
	return &Trace{tag: tag, steps: append([]Step(nil), steps...)}, nil
}

// Tag returns the context tag of the trace.
func (t *Trace) Tag() Tag { return t.tag }

// Len returns the number of steps; always at least 1.
func (t *Trace) Len() int { return len(t.steps) }

// At returns the i'th step.
func (t *Trace) At(i int) Step {
	invariants.CheckBounds(i, len(t.steps))
	return t.steps[i]
}

// Last returns the final step of the run.
func (t *Trace) Last() Step {
	return t.steps[len(t.steps)-1]
}

// All returns an iterator over the steps and their indexes.
func (t *Trace) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i := range t.steps {
			if !yield(i, t.steps[i]) {
				return
			}
		}
	}
}

// Steps returns a copy of the steps.
func (t *Trace) Steps() []Step {
	return append([]Step(nil), t.steps...)
}

// SafeFormat implements redact.SafeFormatter.
func (t *Trace) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s: %d steps", redact.SafeString(t.tag), redact.Safe(len(t.steps)))
	last := t.Last()
	switch {
	case last.err:
		w.SafeString(", ended with error")
	case last.completed:
		w.SafeString(", completed")
	}
}

// String implements fmt.Stringer.
func (t *Trace) String() string {
	return redact.StringWithoutMarkers(t)
}
