// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package linear

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLinear(t *testing.T) {
	var stack *Stack
	var queue *Queue
	var array *Array
	datadriven.RunTest(t, "testdata/linear", func(t *testing.T, td *datadriven.TestData) string {
		var capacity, i, v int
		var values []int
		td.MaybeScanArgs(t, "cap", &capacity)
		td.MaybeScanArgs(t, "values", &values)
		td.MaybeScanArgs(t, "i", &i)
		td.MaybeScanArgs(t, "v", &v)

		var tr *trace.Trace
		var err error
		switch td.Cmd {
		case "stack":
			stack, err = NewStack(capacity, values...)
			queue, array = nil, nil
		case "queue":
			queue, err = NewQueue(capacity, values...)
			stack, array = nil, nil
		case "array":
			array, err = NewArray(capacity, values...)
			stack, queue = nil, nil
		case "push":
			tr = stack.Push(v)
		case "pop":
			tr = stack.Pop()
		case "enqueue":
			tr = queue.Enqueue(v)
		case "dequeue":
			tr = queue.Dequeue()
		case "peek":
			if stack != nil {
				tr = stack.Peek()
			} else {
				tr = queue.Peek()
			}
		case "insert":
			tr = array.InsertAt(i, v)
		case "delete":
			tr = array.DeleteAt(i)
		case "update":
			tr = array.Update(i, v)
		case "get":
			tr = array.Get(i)
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
		}
		if err != nil {
			return fmt.Sprintf("error: %v\n", err)
		}
		if tr == nil {
			return "ok\n"
		}
		var buf strings.Builder
		for _, s := range tr.All() {
			fmt.Fprintf(&buf, "%s\n", s)
		}
		if td.HasArg("show") {
			buf.WriteString(tr.Last().Snapshot().(*Snapshot).String())
		}
		return buf.String()
	})
}

func TestMalformed(t *testing.T) {
	_, err := NewStack(0)
	require.True(t, base.IsMalformedInput(err))
	_, err = NewQueue(1, 1, 2)
	require.True(t, base.IsMalformedInput(err))
	_, err = NewArray(-1)
	require.True(t, base.IsMalformedInput(err))
}

// TestFailedOperationsLeaveStateUnchanged checks that overflow, underflow and
// out of bounds accesses do not modify the structure.
func TestFailedOperationsLeaveStateUnchanged(t *testing.T) {
	s, err := NewStack(1, 7)
	require.NoError(t, err)
	require.True(t, s.Push(8).Last().IsError())
	require.Equal(t, []int{7}, s.Values())

	a, err := NewArray(3, 1, 2)
	require.NoError(t, err)
	require.True(t, a.InsertAt(5, 9).Last().IsError())
	require.True(t, a.DeleteAt(-1).Last().IsError())
	require.True(t, a.Update(2, 9).Last().IsError())
	require.Equal(t, []int{1, 2}, a.Values())

	e, err := NewArray(2)
	require.NoError(t, err)
	tr := e.Get(0)
	require.Equal(t, "Array is empty: nothing to access", tr.Last().Description())
}

func TestStepsDoNotAlias(t *testing.T) {
	q, err := NewQueue(4, 1, 2, 3)
	require.NoError(t, err)
	tr := q.Dequeue()
	require.Equal(t, []int{1, 2, 3}, tr.At(0).Snapshot().(*Snapshot).Values)
	require.Equal(t, []int{2, 3}, tr.Last().Snapshot().(*Snapshot).Values)
	q.Enqueue(4)
	q.Enqueue(5)
	require.Equal(t, []int{1, 2, 3}, tr.At(0).Snapshot().(*Snapshot).Values)
}

// TestAgainstSlices runs random operations against a slice model.
func TestAgainstSlices(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const capacity = 5
	s, _ := NewStack(capacity)
	q, _ := NewQueue(capacity)
	a, _ := NewArray(capacity)
	var sm, qm, am []int
	for iter := 0; iter < 500; iter++ {
		v := rng.Intn(100)
		switch rng.Intn(3) {
		case 0:
			tr := s.Push(v)
			if len(sm) < capacity {
				sm = append(sm, v)
				require.True(t, tr.Last().IsCompleted())
			}
			tr = q.Enqueue(v)
			if len(qm) < capacity {
				qm = append(qm, v)
				require.True(t, tr.Last().IsCompleted())
			}
		case 1:
			tr := s.Pop()
			if len(sm) > 0 {
				snap := tr.Last().Snapshot().(*Snapshot)
				require.Equal(t, sm[len(sm)-1], snap.Result)
				sm = sm[:len(sm)-1]
			} else {
				require.True(t, tr.Last().IsError())
			}
			tr = q.Dequeue()
			if len(qm) > 0 {
				require.Equal(t, qm[0], tr.Last().Snapshot().(*Snapshot).Result)
				qm = qm[1:]
			} else {
				require.True(t, tr.Last().IsError())
			}
		case 2:
			i := rng.Intn(len(am) + 2)
			tr := a.InsertAt(i, v)
			if len(am) < capacity && i <= len(am) {
				am = append(am[:i], append([]int{v}, am[i:]...)...)
				require.True(t, tr.Last().IsCompleted())
			} else {
				require.True(t, tr.Last().IsError())
			}
			if len(am) > 0 && rng.Intn(2) == 0 {
				j := rng.Intn(len(am))
				require.True(t, a.DeleteAt(j).Last().IsCompleted())
				am = append(am[:j], am[j+1:]...)
			}
		}
		require.Equal(t, nilIfEmpty(sm), nilIfEmpty(s.Values()))
		require.Equal(t, nilIfEmpty(qm), nilIfEmpty(q.Values()))
		require.Equal(t, nilIfEmpty(am), nilIfEmpty(a.Values()))
	}
}

func nilIfEmpty(v []int) []int {
	if len(v) == 0 {
		return nil
	}
	return v
}

func TestArrayShifts(t *testing.T) {
	a, err := NewArray(6, 1, 2, 3, 4)
	require.NoError(t, err)

	shifts := func(tr *trace.Trace) []int {
		var res []int
		for _, s := range tr.All() {
			res = append(res, s.Snapshot().(*Snapshot).Shifts)
		}
		return res
	}
	// Inserting at index 1 moves the three values after it.
	require.Equal(t, []int{0, 1, 2, 3, 3}, shifts(a.InsertAt(1, 9)))
	// Appending moves nothing.
	require.Equal(t, []int{0, 0}, shifts(a.InsertAt(5, 7)))
	// Deleting index 4 moves the single value after it.
	require.Equal(t, []int{0, 0, 1, 1}, shifts(a.DeleteAt(4)))
	require.Equal(t, []int{1, 9, 2, 3, 7}, a.Values())
	require.Equal(t, []int{0, 0}, shifts(a.Update(0, 5)))
}
