// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package linear

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/cockroachdb/algoviz/internal/ascii"
	"github.com/cockroachdb/algoviz/trace"
)

// Structure identifies the linear structure a snapshot shows.
type Structure uint8

const (
	// StackStructure is a LIFO stack; the top is the last value.
	StackStructure Structure = iota
	// QueueStructure is a FIFO queue; the front is the first value.
	QueueStructure
	// ArrayStructure is a bounded array.
	ArrayStructure
)

func (s Structure) String() string {
	switch s {
	case StackStructure:
		return "stack"
	case QueueStructure:
		return "queue"
	case ArrayStructure:
		return "array"
	default:
		return fmt.Sprintf("Structure(%d)", uint8(s))
	}
}

// Snapshot is the trace payload for stacks, queues and arrays.
type Snapshot struct {
	Structure Structure
	Values    []int
	Capacity  int
	// Highlight is the index touched by the step, or -1.
	Highlight int
	// Result is the value returned by pop, dequeue, peek or access.
	Result    int
	HasResult bool
	// Shifts counts the values moved so far by an array insert or delete.
	Shifts int
}

var _ trace.Snapshot = (*Snapshot)(nil)

// Kind implements trace.Snapshot.
func (s *Snapshot) Kind() trace.Kind { return trace.KindLinear }

// Clone implements trace.Snapshot.
func (s *Snapshot) Clone() trace.Snapshot {
	c := *s
	c.Values = slices.Clone(s.Values)
	return &c
}

// String draws the values as a row of boxes.
func (s *Snapshot) String() string {
	cells := make([]ascii.Cell, len(s.Values))
	for i, v := range s.Values {
		cells[i] = ascii.Cell{
			Text:   strconv.Itoa(v),
			Label:  s.label(i),
			Marked: i == s.Highlight,
		}
	}
	board := ascii.Make(1, 1)
	cur := ascii.Cells(board.At(0, 0), cells)
	cur = cur.Printf("%s %d/%d", s.Structure, len(s.Values), s.Capacity)
	if s.Shifts > 0 {
		cur.Printf(", %d shifts", s.Shifts)
	}
	if s.HasResult {
		board.At(cur.Row()+1, 0).Printf("result: %d", s.Result)
	}
	return board.String() + "\n"
}

func (s *Snapshot) label(i int) string {
	n := len(s.Values)
	switch s.Structure {
	case StackStructure:
		if i == n-1 {
			return "top"
		}
	case QueueStructure:
		switch {
		case n == 1:
			return "front/rear"
		case i == 0:
			return "front"
		case i == n-1:
			return "rear"
		}
	default:
		return strconv.Itoa(i)
	}
	return ""
}

// recorder wraps a Builder and the working snapshot of one operation.
type recorder struct {
	b *trace.Builder
	s Snapshot
}

func newRecorder(tag trace.Tag, structure Structure, values []int, capacity int) *recorder {
	return &recorder{
		b: trace.NewBuilder(tag),
		s: Snapshot{
			Structure: structure,
			Values:    values,
			Capacity:  capacity,
			Highlight: -1,
		},
	}
}

func (r *recorder) emitf(op trace.Op, format string, args ...any) {
	r.b.Emitf(op, &r.s, format, args...)
}

func (r *recorder) failf(op trace.Op, format string, args ...any) *trace.Trace {
	r.b.Failf(op, &r.s, format, args...)
	return r.b.Finish()
}

func (r *recorder) completef(op trace.Op, format string, args ...any) *trace.Trace {
	r.b.Completef(op, &r.s, format, args...)
	return r.b.Finish()
}

func (r *recorder) result(v int) {
	r.s.Result = v
	r.s.HasResult = true
}
