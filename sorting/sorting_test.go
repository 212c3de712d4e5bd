// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sorting

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/internal/strparse"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSorting(t *testing.T) {
	datadriven.RunTest(t, "testdata/sorting", func(t *testing.T, td *datadriven.TestData) string {
		values, err := strparse.Ints(td.Input)
		require.NoError(t, err)
		var target int
		td.MaybeScanArgs(t, "target", &target)
		var tr *trace.Trace
		switch td.Cmd {
		case "bubble":
			tr = BubbleSort(values)
		case "selection":
			tr = SelectionSort(values)
		case "insertion":
			tr = InsertionSort(values)
		case "linear":
			tr = LinearSearch(values, target)
		case "binary":
			tr, err = BinarySearch(values, target)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
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

func TestLinearSearchScenario(t *testing.T) {
	values := []int{34, 7, 23, 32, 5, 62, 32, 12, 9, 45}
	tr := LinearSearch(values, 32)
	last := tr.Last()
	require.True(t, last.IsCompleted())
	s := last.Snapshot().(*Snapshot)
	require.Equal(t, 3, s.Found)
	require.Equal(t, 4, s.Comparisons)
	// The input is not modified.
	require.Equal(t, []int{34, 7, 23, 32, 5, 62, 32, 12, 9, 45}, values)
}

func TestSortsAgainstSlicesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	sorts := map[string]func([]int) *trace.Trace{
		"bubble":    BubbleSort,
		"selection": SelectionSort,
		"insertion": InsertionSort,
	}
	for iter := 0; iter < 100; iter++ {
		values := make([]int, 1+rng.Intn(20))
		for i := range values {
			values[i] = rng.Intn(50) - 10
		}
		want := slices.Clone(values)
		slices.Sort(want)
		for name, fn := range sorts {
			tr := fn(values)
			last := tr.Last()
			require.True(t, last.IsCompleted(), name)
			s := last.Snapshot().(*Snapshot)
			require.Equal(t, want, s.Values, name)

			// The counters grow by at most one per step.
			prev := tr.At(0).Snapshot().(*Snapshot)
			for i := 1; i < tr.Len(); i++ {
				cur := tr.At(i).Snapshot().(*Snapshot)
				require.LessOrEqual(t, cur.Comparisons-prev.Comparisons, 1, name)
				require.LessOrEqual(t, cur.Swaps-prev.Swaps, 1, name)
				prev = cur
			}
		}
	}
}

func TestBinarySearchAgainstLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 200; iter++ {
		values := make([]int, rng.Intn(16))
		for i := range values {
			values[i] = rng.Intn(30)
		}
		slices.Sort(values)
		target := rng.Intn(32)
		tr, err := BinarySearch(values, target)
		require.NoError(t, err)
		last := tr.Last()
		s := last.Snapshot().(*Snapshot)
		if slices.Contains(values, target) {
			require.True(t, last.IsCompleted())
			require.Equal(t, target, values[s.Found])
		} else {
			require.True(t, last.IsError())
			require.Equal(t, -1, s.Found)
		}
		// At most floor(log2(n))+1 probes.
		maxProbes := 0
		for n := len(values); n > 0; n /= 2 {
			maxProbes++
		}
		require.LessOrEqual(t, s.Comparisons, maxProbes)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, tr := range []*trace.Trace{
		BubbleSort(nil),
		SelectionSort(nil),
		InsertionSort(nil),
		LinearSearch(nil, 3),
	} {
		require.Equal(t, 1, tr.Len())
		require.True(t, tr.Last().IsError())
	}
	tr, err := BinarySearch(nil, 3)
	require.NoError(t, err)
	require.Equal(t, 1, tr.Len())

	_, err = BinarySearch([]int{2, 1}, 1)
	require.True(t, base.IsMalformedInput(err))
}
