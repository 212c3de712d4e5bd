// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sorting

import (
	"slices"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/trace"
)

// LinearSearch records a scan of values for target, stopping at the first
// match.
func LinearSearch(values []int, target int) *trace.Trace {
	r := newRecorder(trace.TagLinearSearch, values)
	if len(values) == 0 {
		r.failf(trace.OpNotFound, "Array is empty: %d not found", target)
		return r.b.Finish()
	}
	r.emitf(trace.OpStart, "Search for %d in %d values", target, len(values))
	for i, v := range values {
		r.s.Compare = append(r.s.Compare[:0], i)
		r.s.Comparisons++
		if v == target {
			r.s.Found = i
			r.completef(trace.OpFound, "Found %d at index %d after %d comparisons", target, i, r.s.Comparisons)
			return r.b.Finish()
		}
		r.emitf(trace.OpCompare, "%d ≠ %d at index %d", v, target, i)
	}
	r.clearMarks()
	r.failf(trace.OpNotFound, "%d not found after %d comparisons", target, r.s.Comparisons)
	return r.b.Finish()
}

// BinarySearch records a binary search of the sorted values for target.
// Unsorted input is rejected as malformed.
func BinarySearch(values []int, target int) (*trace.Trace, error) {
	if !slices.IsSorted(values) {
		return nil, base.MalformedInputErrorf("binary search needs sorted input, got %v", values)
	}
	r := newRecorder(trace.TagBinarySearch, values)
	if len(values) == 0 {
		r.failf(trace.OpNotFound, "Array is empty: %d not found", target)
		return r.b.Finish(), nil
	}
	r.markAllSorted()
	r.emitf(trace.OpStart, "Binary search for %d in %d sorted values", target, len(values))
	low, high := 0, len(values)-1
	for low <= high {
		mid := low + (high-low)/2
		r.s.Low, r.s.Mid, r.s.High = low, mid, high
		r.s.Compare = append(r.s.Compare[:0], mid)
		r.s.Comparisons++
		switch v := values[mid]; {
		case v == target:
			r.s.Found = mid
			r.completef(trace.OpFound, "Found %d at index %d after %d comparisons", target, mid, r.s.Comparisons)
			return r.b.Finish(), nil
		case v < target:
			r.emitf(trace.OpCompare, "%d < %d at index %d: search the right half", v, target, mid)
			low = mid + 1
		default:
			r.emitf(trace.OpCompare, "%d > %d at index %d: search the left half", v, target, mid)
			high = mid - 1
		}
	}
	r.clearMarks()
	r.s.Low, r.s.Mid, r.s.High = -1, -1, -1
	r.failf(trace.OpNotFound, "%d not found after %d comparisons", target, r.s.Comparisons)
	return r.b.Finish(), nil
}
