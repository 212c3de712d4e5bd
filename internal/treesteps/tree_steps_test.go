// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// SumTree is a binary tree that tracks the sum of values in each subtree.
type SumTree struct {
	Value int
	Sum   int
	Left  *SumTree
	Right *SumTree
}

var _ Node = (*SumTree)(nil)

// TreeStepsNode implements the Node interface.
func (t *SumTree) TreeStepsNode() NodeInfo {
	info := NodeInfof("n%d", t.Value)
	info.AddPropf("sum", "%d", t.Sum)
	if t.Left != nil || t.Right != nil {
		info.AddChildOrPlaceholder(t.Left, "nil")
		info.AddChildOrPlaceholder(t.Right, "nil")
	}
	return info
}

func TestBuildIsIndependent(t *testing.T) {
	root := &SumTree{Value: 5, Sum: 12, Right: &SumTree{Value: 7, Sum: 7}}
	built := Build(root)
	require.Equal(t, "n5", built.Name)
	require.Len(t, built.Children, 2)
	require.Equal(t, "nil", built.Children[0].Name)

	// Mutating the source must not leak into the materialized copy.
	root.Right.Sum = 100
	root.Right.Left = &SumTree{Value: 6}
	require.Equal(t, [][2]string{{"sum", "7"}}, built.Children[1].Properties)
	require.Empty(t, built.Children[1].Children)
}

func TestTreeToString(t *testing.T) {
	root := &SumTree{
		Value: 5, Sum: 15,
		Left:  &SumTree{Value: 3, Sum: 3},
		Right: &SumTree{Value: 7, Sum: 7},
	}
	expected := "n5 (sum=15)\n" +
		" ├── n3 (sum=3)\n" +
		" └── n7 (sum=7)\n"
	require.Equal(t, expected, TreeToString(root))

	require.Equal(t, "n5 (sum=15)\n ├── ...\n └── ...\n", TreeToString(root, MaxTreeDepth(0)))
	require.Equal(t, "(empty)\n", TreeToString((*SumTree)(nil)))
}

func TestMarks(t *testing.T) {
	info := NodeInfof("x")
	info.AddMark("current")
	info.AddChildren(nil, (*SumTree)(nil))
	n := TreeNode{Name: "x", Marks: []string{"current"}}
	require.Equal(t, "x <current>\n", n.String())
	require.Empty(t, info.children)
}
