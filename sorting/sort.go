// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package sorting contains the trace generators for array sorting and
// searching. Every comparison and every swap is a step, and the snapshots
// carry running comparison and swap counters.
package sorting

import "github.com/cockroachdb/algoviz/trace"

// BubbleSort records a bubble sort of values, which are not modified. A pass
// without swaps ends the sort early.
func BubbleSort(values []int) *trace.Trace {
	r := newRecorder(trace.TagBubbleSort, values)
	n := len(values)
	if n == 0 {
		r.failf(trace.OpError, "Array is empty: nothing to sort")
		return r.b.Finish()
	}
	r.emitf(trace.OpStart, "Bubble sort %d values", n)
	v := r.s.Values
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			if r.compare(j, j+1) {
				r.emitf(trace.OpCompare, "%d > %d: swap", v[j], v[j+1])
				r.swap(j, j+1)
				r.emitf(trace.OpSwap, "Swap positions %d and %d", j, j+1)
				swapped = true
			} else {
				r.emitf(trace.OpCompare, "%d ≤ %d: no swap", v[j], v[j+1])
			}
		}
		r.clearMarks()
		if !swapped {
			r.markAllSorted()
			r.emitf(trace.OpUpdate, "No swaps in pass %d: the array is sorted", pass+1)
			break
		}
		r.s.Sorted[n-1-pass] = true
		r.emitf(trace.OpUpdate, "Pass %d done: %d is in its final position", pass+1, v[n-1-pass])
	}
	r.markAllSorted()
	r.completef(trace.OpDone, "Sorted with %d comparisons and %d swaps", r.s.Comparisons, r.s.Swaps)
	return r.b.Finish()
}

// SelectionSort records a selection sort of values, which are not modified.
func SelectionSort(values []int) *trace.Trace {
	r := newRecorder(trace.TagSelectionSort, values)
	n := len(values)
	if n == 0 {
		r.failf(trace.OpError, "Array is empty: nothing to sort")
		return r.b.Finish()
	}
	r.emitf(trace.OpStart, "Selection sort %d values", n)
	v := r.s.Values
	for i := 0; i < n-1; i++ {
		minIdx := i
		r.clearMarks()
		r.emitf(trace.OpSelect, "Find the minimum of positions %d to %d, starting with %d", i, n-1, v[i])
		for j := i + 1; j < n; j++ {
			if r.compare(minIdx, j) {
				r.emitf(trace.OpCompare, "%d < %d: new minimum at position %d", v[j], v[minIdx], j)
				minIdx = j
			} else {
				r.emitf(trace.OpCompare, "%d ≥ %d: keep the minimum at position %d", v[j], v[minIdx], minIdx)
			}
		}
		if minIdx != i {
			r.swap(i, minIdx)
			r.s.Sorted[i] = true
			r.emitf(trace.OpSwap, "Swap the minimum %d into position %d", v[i], i)
		} else {
			r.clearMarks()
			r.s.Sorted[i] = true
			r.emitf(trace.OpUpdate, "%d is already in position %d", v[i], i)
		}
	}
	r.clearMarks()
	r.markAllSorted()
	r.completef(trace.OpDone, "Sorted with %d comparisons and %d swaps", r.s.Comparisons, r.s.Swaps)
	return r.b.Finish()
}

// InsertionSort records an insertion sort of values, which are not modified.
// Each element is moved left by adjacent swaps until it is not smaller than
// its left neighbor.
func InsertionSort(values []int) *trace.Trace {
	r := newRecorder(trace.TagInsertionSort, values)
	n := len(values)
	if n == 0 {
		r.failf(trace.OpError, "Array is empty: nothing to sort")
		return r.b.Finish()
	}
	r.s.Sorted[0] = true
	r.emitf(trace.OpStart, "Insertion sort %d values", n)
	v := r.s.Values
	for i := 1; i < n; i++ {
		r.clearMarks()
		r.emitf(trace.OpSelect, "Insert %d into the sorted prefix", v[i])
		for j := i; j > 0; j-- {
			if !r.compare(j-1, j) {
				r.emitf(trace.OpCompare, "%d ≤ %d: %d stays at position %d", v[j-1], v[j], v[j], j)
				break
			}
			r.emitf(trace.OpCompare, "%d > %d: shift %d left", v[j-1], v[j], v[j])
			r.swap(j-1, j)
			r.emitf(trace.OpSwap, "Swap positions %d and %d", j-1, j)
		}
		for k := 0; k <= i; k++ {
			r.s.Sorted[k] = true
		}
	}
	r.clearMarks()
	r.completef(trace.OpDone, "Sorted with %d comparisons and %d swaps", r.s.Comparisons, r.s.Swaps)
	return r.b.Finish()
}
