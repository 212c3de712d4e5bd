// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package linear contains bounded stacks, queues and arrays whose operations
// are recorded as traces. Overflow, underflow and out of bounds accesses end
// the trace with an error step and leave the structure unchanged.
package linear

import (
	"slices"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/trace"
)

type bounded struct {
	values   []int
	capacity int
}

func makeBounded(kind string, capacity int, values []int) (bounded, error) {
	if capacity <= 0 {
		return bounded{}, base.MalformedInputErrorf("%s capacity must be positive, got %d", kind, capacity)
	}
	if len(values) > capacity {
		return bounded{}, base.MalformedInputErrorf("%d initial values exceed the %s capacity %d", len(values), kind, capacity)
	}
	return bounded{values: slices.Clone(values), capacity: capacity}, nil
}

// Values returns a copy of the values.
func (b *bounded) Values() []int { return slices.Clone(b.values) }

// Len returns the number of values.
func (b *bounded) Len() int { return len(b.values) }

// Cap returns the capacity.
func (b *bounded) Cap() int { return b.capacity }

// Stack is a bounded LIFO stack.
type Stack struct {
	bounded
}

// NewStack returns a stack holding values, the last one on top.
func NewStack(capacity int, values ...int) (*Stack, error) {
	b, err := makeBounded("stack", capacity, values)
	if err != nil {
		return nil, err
	}
	return &Stack{bounded: b}, nil
}

func (s *Stack) recorder() *recorder {
	return newRecorder(trace.TagStack, StackStructure, s.values, s.capacity)
}

// Push records pushing v on top of the stack.
func (s *Stack) Push(v int) *trace.Trace {
	r := s.recorder()
	r.emitf(trace.OpStart, "Push %d (size %d of %d)", v, len(s.values), s.capacity)
	if len(s.values) == s.capacity {
		return r.failf(trace.OpError, "Stack overflow: cannot push %d onto a full stack", v)
	}
	s.values = append(s.values, v)
	r.s.Values = s.values
	r.s.Highlight = len(s.values) - 1
	return r.completef(trace.OpPush, "Push %d at index %d: %d is the new top", v, len(s.values)-1, v)
}

// Pop records removing the top of the stack.
func (s *Stack) Pop() *trace.Trace {
	r := s.recorder()
	r.emitf(trace.OpStart, "Pop (size %d of %d)", len(s.values), s.capacity)
	n := len(s.values)
	if n == 0 {
		return r.failf(trace.OpError, "Stack underflow: nothing to pop from an empty stack")
	}
	top := s.values[n-1]
	r.s.Highlight = n - 1
	r.emitf(trace.OpPeek, "Top is %d at index %d", top, n-1)
	s.values = s.values[:n-1]
	r.s.Values = s.values
	r.s.Highlight = -1
	r.result(top)
	if n == 1 {
		return r.completef(trace.OpPop, "Pop %d: the stack is now empty", top)
	}
	r.s.Highlight = n - 2
	return r.completef(trace.OpPop, "Pop %d: %d is the new top", top, s.values[n-2])
}

// Peek records reading the top of the stack.
func (s *Stack) Peek() *trace.Trace {
	r := s.recorder()
	r.emitf(trace.OpStart, "Peek (size %d of %d)", len(s.values), s.capacity)
	n := len(s.values)
	if n == 0 {
		return r.failf(trace.OpError, "Stack is empty: nothing to peek at")
	}
	r.s.Highlight = n - 1
	r.result(s.values[n-1])
	return r.completef(trace.OpPeek, "Top is %d", s.values[n-1])
}

// Queue is a bounded FIFO queue.
type Queue struct {
	bounded
}

// NewQueue returns a queue holding values, the first one at the front.
func NewQueue(capacity int, values ...int) (*Queue, error) {
	b, err := makeBounded("queue", capacity, values)
	if err != nil {
		return nil, err
	}
	return &Queue{bounded: b}, nil
}

func (q *Queue) recorder() *recorder {
	return newRecorder(trace.TagQueue, QueueStructure, q.values, q.capacity)
}

// Enqueue records adding v at the rear of the queue.
func (q *Queue) Enqueue(v int) *trace.Trace {
	r := q.recorder()
	r.emitf(trace.OpStart, "Enqueue %d (size %d of %d)", v, len(q.values), q.capacity)
	if len(q.values) == q.capacity {
		return r.failf(trace.OpError, "Queue overflow: cannot enqueue %d into a full queue", v)
	}
	q.values = append(q.values, v)
	r.s.Values = q.values
	r.s.Highlight = len(q.values) - 1
	return r.completef(trace.OpEnqueue, "Enqueue %d at the rear", v)
}

// Dequeue records removing the front of the queue.
func (q *Queue) Dequeue() *trace.Trace {
	r := q.recorder()
	r.emitf(trace.OpStart, "Dequeue (size %d of %d)", len(q.values), q.capacity)
	if len(q.values) == 0 {
		return r.failf(trace.OpError, "Queue underflow: nothing to dequeue from an empty queue")
	}
	front := q.values[0]
	r.s.Highlight = 0
	r.emitf(trace.OpPeek, "Front is %d", front)
	q.values = append(q.values[:0], q.values[1:]...)
	r.s.Values = q.values
	r.s.Highlight = -1
	r.result(front)
	if len(q.values) == 0 {
		return r.completef(trace.OpDequeue, "Dequeue %d: the queue is now empty", front)
	}
	r.s.Highlight = 0
	return r.completef(trace.OpDequeue, "Dequeue %d: %d is the new front", front, q.values[0])
}

// Peek records reading the front of the queue.
func (q *Queue) Peek() *trace.Trace {
	r := q.recorder()
	r.emitf(trace.OpStart, "Peek (size %d of %d)", len(q.values), q.capacity)
	if len(q.values) == 0 {
		return r.failf(trace.OpError, "Queue is empty: nothing to peek at")
	}
	r.s.Highlight = 0
	r.result(q.values[0])
	return r.completef(trace.OpPeek, "Front is %d", q.values[0])
}

// Array is a bounded array supporting positional insertion and deletion.
type Array struct {
	bounded
}

// NewArray returns an array holding values.
func NewArray(capacity int, values ...int) (*Array, error) {
	b, err := makeBounded("array", capacity, values)
	if err != nil {
		return nil, err
	}
	return &Array{bounded: b}, nil
}

func (a *Array) recorder() *recorder {
	return newRecorder(trace.TagArray, ArrayStructure, a.values, a.capacity)
}

// InsertAt records inserting v at index i, shifting later values right one at
// a time. i may equal the length to append.
func (a *Array) InsertAt(i, v int) *trace.Trace {
	r := a.recorder()
	r.emitf(trace.OpStart, "Insert %d at index %d (size %d of %d)", v, i, len(a.values), a.capacity)
	n := len(a.values)
	if n == a.capacity {
		return r.failf(trace.OpError, "Array is full: cannot insert %d", v)
	}
	if i < 0 || i > n {
		return r.failf(trace.OpError, "Index %d is out of bounds [0, %d]", i, n)
	}
	a.values = append(a.values, 0)
	r.s.Values = a.values
	for j := n; j > i; j-- {
		a.values[j] = a.values[j-1]
		r.s.Highlight = j
		r.s.Shifts++
		r.emitf(trace.OpUpdate, "Shift %d from index %d to %d", a.values[j], j-1, j)
	}
	a.values[i] = v
	r.s.Highlight = i
	return r.completef(trace.OpInsert, "Write %d at index %d", v, i)
}

// DeleteAt records removing the value at index i, shifting later values left
// one at a time.
func (a *Array) DeleteAt(i int) *trace.Trace {
	r := a.recorder()
	r.emitf(trace.OpStart, "Delete index %d (size %d of %d)", i, len(a.values), a.capacity)
	if t := a.checkIndex(r, i, "delete"); t != nil {
		return t
	}
	n := len(a.values)
	removed := a.values[i]
	r.s.Highlight = i
	r.result(removed)
	r.emitf(trace.OpDelete, "Remove %d from index %d", removed, i)
	for j := i; j < n-1; j++ {
		a.values[j] = a.values[j+1]
		r.s.Highlight = j
		r.s.Shifts++
		r.emitf(trace.OpUpdate, "Shift %d from index %d to %d", a.values[j], j+1, j)
	}
	a.values = a.values[:n-1]
	r.s.Values = a.values
	r.s.Highlight = -1
	return r.completef(trace.OpDone, "Deleted %d: size %d of %d", removed, n-1, a.capacity)
}

// Update records replacing the value at index i with v.
func (a *Array) Update(i, v int) *trace.Trace {
	r := a.recorder()
	r.emitf(trace.OpStart, "Update index %d to %d", i, v)
	if t := a.checkIndex(r, i, "update"); t != nil {
		return t
	}
	old := a.values[i]
	a.values[i] = v
	r.s.Highlight = i
	return r.completef(trace.OpUpdate, "Replace %d with %d at index %d", old, v, i)
}

// Get records reading the value at index i.
func (a *Array) Get(i int) *trace.Trace {
	r := a.recorder()
	r.emitf(trace.OpStart, "Access index %d", i)
	if t := a.checkIndex(r, i, "access"); t != nil {
		return t
	}
	r.s.Highlight = i
	r.result(a.values[i])
	return r.completef(trace.OpFound, "Value at index %d is %d", i, a.values[i])
}

// checkIndex ends the trace with an error step if i does not address a value.
func (a *Array) checkIndex(r *recorder, i int, verb string) *trace.Trace {
	switch n := len(a.values); {
	case n == 0:
		return r.failf(trace.OpError, "Array is empty: nothing to %s", verb)
	case i < 0 || i >= n:
		return r.failf(trace.OpError, "Index %d is out of bounds [0, %d]", i, n-1)
	}
	return nil
}
