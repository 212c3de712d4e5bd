// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tree

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/algoviz/internal/treesteps"
	"github.com/cockroachdb/algoviz/trace"
)

// Snapshot is the trace payload for binary tree operations.
type Snapshot struct {
	// Root is a deep copy of the tree at the time of the step.
	Root *Node
	// Current is the key of the node being examined, if HasCurrent.
	Current    int
	HasCurrent bool
	// Path holds the keys visited from the root, in order.
	Path []int
	// Highlight holds keys of nodes singled out by the step (inserted,
	// found, successor, ...).
	Highlight []int
	// Rotation names the rebalancing case being applied ("LL", "RR", "LR",
	// "RL"), if any.
	Rotation string
	// Output holds keys emitted so far by a traversal.
	Output []int
	// ShowBalance renders heights and balance factors (AVL trees).
	ShowBalance bool
}

var _ trace.Snapshot = (*Snapshot)(nil)

// Kind implements trace.Snapshot.
func (s *Snapshot) Kind() trace.Kind { return trace.KindTree }

// Clone implements trace.Snapshot.
func (s *Snapshot) Clone() trace.Snapshot {
	c := *s
	c.Root = s.Root.Clone()
	c.Path = slices.Clone(s.Path)
	c.Highlight = slices.Clone(s.Highlight)
	c.Output = slices.Clone(s.Output)
	return &c
}

// InOrder returns the keys of the snapshot's tree in sorted order.
func (s *Snapshot) InOrder() []int {
	return InOrder(s.Root)
}

// String renders the tree with the step's decorations.
func (s *Snapshot) String() string {
	return s.Render(0)
}

// Render is like String, but nodes deeper than maxDepth are drawn as "...".
// A maxDepth of 0 uses the default limit of treesteps.Build.
func (s *Snapshot) Render(maxDepth int) string {
	var opts []treesteps.BuildOption
	if maxDepth > 0 {
		opts = append(opts, treesteps.MaxTreeDepth(maxDepth))
	}
	str := treesteps.TreeToString(s.view(s.Root), opts...)
	if s.Rotation != "" {
		str += fmt.Sprintf("rotation: %s\n", s.Rotation)
	}
	if len(s.Output) > 0 {
		str += fmt.Sprintf("output: %v\n", s.Output)
	}
	return str
}

func (s *Snapshot) view(n *Node) treesteps.Node {
	if n == nil {
		return nil
	}
	return &nodeView{n: n, s: s}
}

// nodeView decorates a Node with the marks of the snapshot it belongs to.
type nodeView struct {
	n *Node
	s *Snapshot
}

// TreeStepsNode implements treesteps.Node.
func (v *nodeView) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("%d", v.n.Key)
	if v.s.ShowBalance {
		info.AddPropf("h", "%d", v.n.Height)
		info.AddPropf("bf", "%d", BalanceFactor(v.n))
	}
	if v.s.HasCurrent && v.s.Current == v.n.Key {
		info.AddMark("current")
	}
	if slices.Contains(v.s.Highlight, v.n.Key) {
		info.AddMark("highlight")
	}
	if v.n.Left != nil || v.n.Right != nil {
		info.AddChildOrPlaceholder(v.s.view(v.n.Left), "·")
		info.AddChildOrPlaceholder(v.s.view(v.n.Right), "·")
	}
	return info
}
