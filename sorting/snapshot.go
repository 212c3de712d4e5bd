// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sorting

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/algoviz/trace"
)

// Snapshot is the trace payload for sorting and searching. Index fields are
// -1 when unused.
type Snapshot struct {
	Values []int
	// Compare holds the indexes being compared.
	Compare []int
	// Swapped holds the indexes exchanged by the step.
	Swapped []int
	// Sorted marks the positions known to hold their final value.
	Sorted []bool
	// Low, Mid and High delimit the binary search window.
	Low, Mid, High int
	// Found is the index where the target was found.
	Found       int
	Comparisons int
	Swaps       int
}

var _ trace.Snapshot = (*Snapshot)(nil)

// Kind implements trace.Snapshot.
func (s *Snapshot) Kind() trace.Kind { return trace.KindArray }

// Clone implements trace.Snapshot.
func (s *Snapshot) Clone() trace.Snapshot {
	c := *s
	c.Values = slices.Clone(s.Values)
	c.Compare = slices.Clone(s.Compare)
	c.Swapped = slices.Clone(s.Swapped)
	c.Sorted = slices.Clone(s.Sorted)
	return &c
}

// String renders the array and the step's markers.
//
//	values: 7 34 23
//	compare: 1 2
//	comparisons: 2, swaps: 1
func (s *Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "values: %s\n", joinInts(s.Values))
	if len(s.Compare) > 0 {
		fmt.Fprintf(&b, "compare: %s\n", joinInts(s.Compare))
	}
	if len(s.Swapped) > 0 {
		fmt.Fprintf(&b, "swapped: %s\n", joinInts(s.Swapped))
	}
	var sorted []int
	for i, ok := range s.Sorted {
		if ok {
			sorted = append(sorted, i)
		}
	}
	if len(sorted) > 0 && len(sorted) < len(s.Values) {
		fmt.Fprintf(&b, "sorted: %s\n", joinInts(sorted))
	} else if len(sorted) > 0 {
		b.WriteString("sorted: all\n")
	}
	if s.Mid >= 0 {
		fmt.Fprintf(&b, "window: low=%d mid=%d high=%d\n", s.Low, s.Mid, s.High)
	}
	if s.Found >= 0 {
		fmt.Fprintf(&b, "found: %d\n", s.Found)
	}
	fmt.Fprintf(&b, "comparisons: %d, swaps: %d\n", s.Comparisons, s.Swaps)
	return b.String()
}

func joinInts(vals []int) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = fmt.Sprint(v)
	}
	return strings.Join(strs, " ")
}

// recorder wraps a Builder and the working snapshot of one run.
type recorder struct {
	b *trace.Builder
	s Snapshot
}

func newRecorder(tag trace.Tag, values []int) *recorder {
	return &recorder{
		b: trace.NewBuilder(tag),
		s: Snapshot{
			Values: slices.Clone(values),
			Sorted: make([]bool, len(values)),
			Low:    -1,
			Mid:    -1,
			High:   -1,
			Found:  -1,
		},
	}
}

// compare marks i and j as compared, counts the comparison and returns
// whether values[i] > values[j].
func (r *recorder) compare(i, j int) bool {
	r.s.Compare = append(r.s.Compare[:0], i, j)
	r.s.Swapped = r.s.Swapped[:0]
	r.s.Comparisons++
	return r.s.Values[i] > r.s.Values[j]
}

func (r *recorder) swap(i, j int) {
	v := r.s.Values
	v[i], v[j] = v[j], v[i]
	r.s.Swapped = append(r.s.Swapped[:0], i, j)
	r.s.Swaps++
}

func (r *recorder) clearMarks() {
	r.s.Compare = r.s.Compare[:0]
	r.s.Swapped = r.s.Swapped[:0]
}

func (r *recorder) markAllSorted() {
	for i := range r.s.Sorted {
		r.s.Sorted[i] = true
	}
}

func (r *recorder) emitf(op trace.Op, format string, args ...any) {
	r.b.Emitf(op, &r.s, format, args...)
}

func (r *recorder) failf(op trace.Op, format string, args ...any) {
	r.b.Failf(op, &r.s, format, args...)
}

func (r *recorder) completef(op trace.Op, format string, args ...any) {
	r.b.Completef(op, &r.s, format, args...)
}
