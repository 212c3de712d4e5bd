// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package avl

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestAVL(t *testing.T) {
	var avl *Tree
	datadriven.RunTest(t, "testdata/avl", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "init":
			var keys []int
			for _, f := range strings.Fields(td.Input) {
				k, err := strconv.Atoi(f)
				require.NoError(t, err)
				keys = append(keys, k)
			}
			avl = New(keys...)
			return (&tree.Snapshot{Root: avl.root, ShowBalance: true}).String()

		case "insert", "search":
			var v int
			td.ScanArgs(t, "v", &v)
			var tr *trace.Trace
			if td.Cmd == "insert" {
				tr = avl.Insert(v)
			} else {
				tr = avl.Search(v)
			}
			var buf strings.Builder
			for _, s := range tr.All() {
				fmt.Fprintf(&buf, "%s\n", s)
			}
			if td.HasArg("show") {
				buf.WriteString(tr.Last().Snapshot().(*tree.Snapshot).String())
			}
			return buf.String()

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}

func TestRotationCases(t *testing.T) {
	testCases := []struct {
		keys     []int
		rotation string
		root     int
	}{
		{keys: []int{10, 20, 30}, rotation: "RR", root: 20},
		{keys: []int{30, 20, 10}, rotation: "LL", root: 20},
		{keys: []int{30, 10, 20}, rotation: "LR", root: 20},
		{keys: []int{10, 30, 20}, rotation: "RL", root: 20},
	}
	for _, tc := range testCases {
		t.Run(tc.rotation, func(t *testing.T) {
			tr := Insert(tc.keys[:2], tc.keys[2])
			var rotations []string
			for _, s := range tr.All() {
				if r := s.Snapshot().(*tree.Snapshot).Rotation; r != "" && !slices.Contains(rotations, r) {
					rotations = append(rotations, r)
				}
			}
			require.Equal(t, []string{tc.rotation}, rotations)
			last := tr.Last().Snapshot().(*tree.Snapshot)
			require.Equal(t, tc.root, last.Root.Key)
			require.Equal(t, 0, tree.BalanceFactor(last.Root))
			require.Equal(t, []int{10, 20, 30}, last.InOrder())
			require.True(t, tr.Last().IsCompleted())
		})
	}
}

// TestScenarioRR checks the classic 10, 20, 30 sequence: inserting 30 makes
// 10 right-heavy, which a single left rotation fixes.
func TestScenarioRR(t *testing.T) {
	a := New()
	a.Insert(10)
	a.Insert(20)
	tr := a.Insert(30)

	var rotateSteps []string
	for _, s := range tr.All() {
		if s.Op() == trace.OpRotate {
			rotateSteps = append(rotateSteps, s.Description())
		}
	}
	require.Equal(t, []string{
		"Node 10 is right-heavy and 30 > 20: RR case, rotate left at 10",
		"Before left rotation at 10: 20 moves up",
		"After left rotation: 20 is the subtree root with balance factor 0",
	}, rotateSteps)
	root := a.Root()
	require.Equal(t, 20, root.Key)
	require.Equal(t, 0, tree.BalanceFactor(root))
	require.Equal(t, 2, root.Height)
}

// TestBalancedAfterEveryInsert inserts random keys and checks the AVL
// property and the in-order sequence after each insertion, on every step's
// snapshot that follows the rebalancing.
func TestBalancedAfterEveryInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := New()
	present := map[int]bool{}
	for range 300 {
		v := rng.Intn(1000)
		before := a.InOrder()
		tr := a.Insert(v)
		require.GreaterOrEqual(t, tr.Len(), 1)
		last := tr.Last().Snapshot().(*tree.Snapshot)
		require.True(t, tree.IsBalanced(last.Root))
		require.True(t, tree.IsBalanced(a.root))
		if present[v] {
			require.True(t, tr.Last().IsError())
			require.Equal(t, before, last.InOrder())
			continue
		}
		present[v] = true
		want := append(slices.Clone(before), v)
		slices.Sort(want)
		require.Equal(t, want, last.InOrder())
	}
	// Sorted insertion would produce a list in a plain BST; the AVL tree stays
	// logarithmic.
	s := New()
	for i := range 127 {
		s.Insert(i)
	}
	require.Equal(t, 7, s.root.Height)
}

func TestSearch(t *testing.T) {
	tr := Search([]int{10, 20, 30, 40}, 40)
	require.Equal(t, trace.TagAVLSearch, tr.Tag())
	require.True(t, tr.Last().IsCompleted())
	require.Equal(t, []int{20, 30, 40}, tr.Last().Snapshot().(*tree.Snapshot).Path)

	tr = Search(nil, 1)
	require.Equal(t, 2, tr.Len())
	require.True(t, tr.Last().IsError())
}

func TestAssertBalanced(t *testing.T) {
	// 1 -> 2 -> 3 is a right-leaning chain: the root has balance -2.
	root := tree.NewNode(1)
	root.Right = tree.NewNode(2)
	root.Right.Right = tree.NewNode(3)
	tree.RecomputeHeights(root)

	func() {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			require.True(t, errors.HasAssertionFailure(err))
			require.ErrorContains(t, err, "tree unbalanced after inserting 3")
		}()
		assertBalanced(root, 3)
	}()

	require.NotPanics(t, func() { assertBalanced(New(1, 2, 3).Root(), 3) })
}
