// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package avl generates traces for AVL tree insertion.
//
// Insertion follows the binary search tree path down to an empty slot. On the
// way back up, every ancestor gets its height and balance factor
// (height(left) - height(right)) recomputed. The first ancestor with a balance
// factor outside [-1, 1] is rebalanced by one of four rotations, chosen by
// comparing the inserted key against the key of the heavy child:
//
//	LL: left-heavy, key < left child    -> rotate right
//	RR: right-heavy, key > right child  -> rotate left
//	LR: left-heavy, key > left child    -> rotate left at child, then right
//	RL: right-heavy, key < right child  -> rotate right at child, then left
//
// Each rotation is recorded with a step before and a step after it.
package avl

import (
	"github.com/cockroachdb/algoviz/bst"
	"github.com/cockroachdb/algoviz/internal/invariants"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
	"github.com/cockroachdb/errors"
)

// Tree is an AVL tree with distinct integer keys.
type Tree struct {
	root *tree.Node
}

// New returns a tree holding keys, inserted in order. Duplicates are ignored.
func New(keys ...int) *Tree {
	t := &Tree{}
	for _, k := range keys {
		insert(nil, &t.root, k)
	}
	return t
}

// InOrder returns the keys of the tree in sorted order.
func (t *Tree) InOrder() []int {
	return tree.InOrder(t.root)
}

// Root returns a copy of the tree.
func (t *Tree) Root() *tree.Node {
	return t.root.Clone()
}

// Insert adds v and rebalances, recording each step.
func (t *Tree) Insert(v int) *trace.Trace {
	r := tree.NewRecorder(trace.TagAVLInsert, &t.root, true)
	r.Emitf(trace.OpStart, "Insert %d", v)
	if t.root == nil {
		t.root = tree.NewNode(v)
		r.Highlight(v)
		r.Completef(trace.OpInsert, "Tree is empty: %d becomes the root", v)
		return r.Finish()
	}
	if !insert(r, &t.root, v) {
		r.Failf(trace.OpError, "%d already exists in the tree", v)
		return r.Finish()
	}
	if invariants.Enabled {
		assertBalanced(t.root, v)
	}
	r.ClearCurrent()
	r.SetRotation("")
	r.Highlight(v)
	r.Completef(trace.OpDone, "Inserted %d; tree is balanced", v)
	return r.Finish()
}

// Search looks v up; AVL trees are searched exactly like binary search trees.
func (t *Tree) Search(v int) *trace.Trace {
	r := tree.NewRecorder(trace.TagAVLSearch, &t.root, true)
	bst.RecordSearch(r, t.root, v)
	return r.Finish()
}

// Insert returns the trace of inserting v into an AVL tree built from
// initial.
func Insert(initial []int, v int) *trace.Trace {
	return New(initial...).Insert(v)
}

// Search returns the trace of searching for v in an AVL tree built from
// initial.
func Search(initial []int, v int) *trace.Trace {
	return New(initial...).Search(v)
}

// insert adds v below *link and rebalances on the way back up. It returns
// false if v is already present.
func insert(r *tree.Recorder, link **tree.Node, v int) bool {
	n := *link
	if n == nil {
		*link = tree.NewNode(v)
		r.Highlight(v)
		return true
	}
	r.Visit(n.Key)
	var childLink **tree.Node
	switch {
	case v < n.Key:
		childLink = &n.Left
		if n.Left == nil {
			r.Emitf(trace.OpCompare, "%d < %d and %d has no left child", v, n.Key, n.Key)
		} else {
			r.Emitf(trace.OpCompare, "%d < %d: go left", v, n.Key)
		}
	case v > n.Key:
		childLink = &n.Right
		if n.Right == nil {
			r.Emitf(trace.OpCompare, "%d > %d and %d has no right child", v, n.Key, n.Key)
		} else {
			r.Emitf(trace.OpCompare, "%d > %d: go right", v, n.Key)
		}
	default:
		r.Highlight(n.Key)
		r.Emitf(trace.OpCompare, "%d = %d", v, n.Key)
		return false
	}
	wasEmpty := *childLink == nil
	if !insert(r, childLink, v) {
		return false
	}
	if wasEmpty {
		side := "left"
		if childLink == &n.Right {
			side = "right"
		}
		r.Emitf(trace.OpInsert, "Insert %d as the %s child of %d", v, side, n.Key)
	}

	n.Update()
	bf := tree.BalanceFactor(n)
	r.SetCurrent(n.Key)
	r.Highlight(n.Key)
	r.Emitf(trace.OpUpdate, "Node %d: height %d, balance factor %d", n.Key, n.Height, bf)
	if bf >= -1 && bf <= 1 {
		return true
	}
	rebalance(r, link, v)
	return true
}

// rebalance restores the balance of *link, which has a balance factor of +2
// or -2 after v was inserted below it.
func rebalance(r *tree.Recorder, link **tree.Node, v int) {
	n := *link
	bf := tree.BalanceFactor(n)
	if bf > 1 {
		if v < n.Left.Key {
			r.SetRotation("LL")
			r.Emitf(trace.OpRotate, "Node %d is left-heavy and %d < %d: LL case, rotate right at %d",
				n.Key, v, n.Left.Key, n.Key)
			rotateRight(r, link)
		} else {
			r.SetRotation("LR")
			r.Emitf(trace.OpRotate, "Node %d is left-heavy and %d > %d: LR case, rotate left at %d then right at %d",
				n.Key, v, n.Left.Key, n.Left.Key, n.Key)
			rotateLeft(r, &n.Left)
			n.Update()
			rotateRight(r, link)
		}
	} else {
		if v > n.Right.Key {
			r.SetRotation("RR")
			r.Emitf(trace.OpRotate, "Node %d is right-heavy and %d > %d: RR case, rotate left at %d",
				n.Key, v, n.Right.Key, n.Key)
			rotateLeft(r, link)
		} else {
			r.SetRotation("RL")
			r.Emitf(trace.OpRotate, "Node %d is right-heavy and %d < %d: RL case, rotate right at %d then left at %d",
				n.Key, v, n.Right.Key, n.Right.Key, n.Key)
			rotateRight(r, &n.Right)
			n.Update()
			rotateLeft(r, link)
		}
	}
	r.SetRotation("")
}

// rotateLeft rotates the subtree at *link to the left: its right child
// becomes the subtree root.
func rotateLeft(r *tree.Recorder, link **tree.Node) {
	x := *link
	y := x.Right
	r.SetCurrent(x.Key)
	r.Highlight(x.Key, y.Key)
	r.Emitf(trace.OpRotate, "Before left rotation at %d: %d moves up", x.Key, y.Key)
	x.Right = y.Left
	y.Left = x
	x.Update()
	y.Update()
	*link = y
	r.SetCurrent(y.Key)
	r.Emitf(trace.OpRotate, "After left rotation: %d is the subtree root with balance factor %d",
		y.Key, tree.BalanceFactor(y))
}

// rotateRight rotates the subtree at *link to the right: its left child
// becomes the subtree root.
func rotateRight(r *tree.Recorder, link **tree.Node) {
	x := *link
	y := x.Left
	r.SetCurrent(x.Key)
	r.Highlight(x.Key, y.Key)
	r.Emitf(trace.OpRotate, "Before right rotation at %d: %d moves up", x.Key, y.Key)
	x.Left = y.Right
	y.Right = x
	x.Update()
	y.Update()
	*link = y
	r.SetCurrent(y.Key)
	r.Emitf(trace.OpRotate, "After right rotation: %d is the subtree root with balance factor %d",
		y.Key, tree.BalanceFactor(y))
}

// assertBalanced panics if a node under root has a balance factor outside
// [-1, 1] after v was inserted.
func assertBalanced(root *tree.Node, v int) {
	if !tree.IsBalanced(root) {
		panic(errors.AssertionFailedf("tree unbalanced after inserting %d:\n%s",
			v, (&tree.Snapshot{Root: root, ShowBalance: true}).String()))
	}
}
