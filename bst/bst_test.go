// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBST(t *testing.T) {
	datadriven.RunTest(t, "testdata/bst", func(t *testing.T, td *datadriven.TestData) string {
		var keys []int
		var v int
		for _, arg := range td.CmdArgs {
			switch arg.Key {
			case "keys":
				for _, s := range arg.Vals {
					k, err := strconv.Atoi(s)
					require.NoError(t, err)
					keys = append(keys, k)
				}
			case "v":
				var err error
				v, err = strconv.Atoi(arg.Vals[0])
				require.NoError(t, err)
			}
		}
		var tr *trace.Trace
		switch td.Cmd {
		case "insert":
			tr = Insert(keys, v)
		case "search":
			tr = Search(keys, v)
		case "delete":
			tr = Delete(keys, v)
		case "traverse":
			tr = Traverse(keys, tree.PreOrderTraversal)
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
		}
		var buf strings.Builder
		for _, s := range tr.All() {
			fmt.Fprintf(&buf, "%s\n", s)
		}
		last := tr.Last().Snapshot().(*tree.Snapshot)
		fmt.Fprintf(&buf, "in-order: %v\n", last.InOrder())
		if td.HasArg("show") {
			buf.WriteString(last.String())
		}
		return buf.String()
	})
}

func TestInsertScenario(t *testing.T) {
	bt := New()
	for _, k := range []int{50, 30, 70, 20, 40} {
		tr := bt.Insert(k)
		require.True(t, tr.Last().IsCompleted())
		require.Equal(t, trace.TagBSTInsert, tr.Tag())
	}
	require.Equal(t, []int{20, 30, 40, 50, 70}, bt.InOrder())
	require.Equal(t, 5, bt.Len())
	root := bt.Root()
	require.Equal(t, 50, root.Key)
	require.Equal(t, 30, root.Left.Key)
	require.Equal(t, 3, root.Height)
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	bt := New(50, 30, 70)
	tr := bt.Insert(20)
	first := tr.At(0).Snapshot().(*tree.Snapshot)
	require.Equal(t, []int{30, 50, 70}, first.InOrder())

	// Later operations on the working tree leave recorded steps untouched.
	bt.Delete(50)
	bt.Insert(10)
	require.Equal(t, []int{30, 50, 70}, first.InOrder())
	require.Equal(t, []int{20, 30, 50, 70}, tr.Last().Snapshot().(*tree.Snapshot).InOrder())
}

// TestInsertKeepsOrder checks that inserting a new key yields the previous
// in-order sequence with the key added in sorted position.
func TestInsertKeepsOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bt := New()
	var keys []int
	for range 200 {
		v := rng.Intn(500)
		before := bt.InOrder()
		tr := bt.Insert(v)
		require.GreaterOrEqual(t, tr.Len(), 1)
		got := tr.Last().Snapshot().(*tree.Snapshot).InOrder()
		if slices.Contains(keys, v) {
			require.True(t, tr.Last().IsError())
			require.Equal(t, before, got)
			continue
		}
		keys = append(keys, v)
		want := append(slices.Clone(before), v)
		slices.Sort(want)
		require.Equal(t, want, got)
		require.True(t, tree.IsSearchTree(bt.root))
	}
}

func TestDeleteCases(t *testing.T) {
	testCases := []struct {
		name    string
		keys    []int
		v       int
		want    []int
		wantErr bool
	}{
		{name: "leaf", keys: []int{50, 30, 70}, v: 30, want: []int{50, 70}},
		{name: "one child", keys: []int{50, 30, 20}, v: 30, want: []int{20, 50}},
		{name: "two children", keys: []int{50, 30, 70, 60, 80, 65}, v: 50, want: []int{30, 60, 65, 70, 80}},
		{name: "root leaf", keys: []int{50}, v: 50, want: nil},
		{name: "missing", keys: []int{50, 30}, v: 40, want: []int{30, 50}, wantErr: true},
		{name: "empty", v: 1, want: nil, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bt := New(tc.keys...)
			tr := bt.Delete(tc.v)
			require.Equal(t, tc.wantErr, tr.Last().IsError())
			require.Equal(t, !tc.wantErr, tr.Last().IsCompleted())
			require.Equal(t, tc.want, bt.InOrder())
			require.Equal(t, tc.want, tr.Last().Snapshot().(*tree.Snapshot).InOrder())
			require.True(t, tree.IsSearchTree(bt.root))
			if bt.root != nil {
				require.Equal(t, bt.root.Height, tree.RecomputeHeights(bt.root.Clone()))
			}
		})
	}
}

func TestSearchPath(t *testing.T) {
	tr := Search([]int{50, 30, 70, 20, 40}, 40)
	require.True(t, tr.Last().IsCompleted())
	require.Equal(t, trace.OpFound, tr.Last().Op())
	last := tr.Last().Snapshot().(*tree.Snapshot)
	require.Equal(t, []int{50, 30, 40}, last.Path)
	require.Equal(t, []int{40}, last.Highlight)
}

func TestTraverse(t *testing.T) {
	for _, order := range []tree.Traversal{tree.InOrderTraversal, tree.PreOrderTraversal, tree.PostOrderTraversal} {
		keys := []int{50, 30, 70, 20, 40}
		tr := Traverse(keys, order)
		var want []int
		tree.Walk(New(keys...).root, order, func(n *tree.Node) { want = append(want, n.Key) })
		require.Equal(t, want, tr.Last().Snapshot().(*tree.Snapshot).Output)
		// start + one visit per node + done
		require.Equal(t, len(keys)+2, tr.Len())
	}
	require.True(t, Traverse(nil, tree.InOrderTraversal).Last().IsError())
}
