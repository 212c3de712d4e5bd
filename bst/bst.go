// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bst generates traces for binary search tree insert, search, delete
// and traversal.
//
// A Tree is the working structure owned by the caller: each operation mutates
// it and returns the Trace of that single operation. The package-level
// functions build a throwaway Tree from initial keys (without recording) and
// run one operation on it.
package bst

import (
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
)

// Tree is an unbalanced binary search tree with distinct integer keys.
type Tree struct {
	root *tree.Node
}

// New returns a tree holding keys, inserted in order. Duplicates are ignored.
func New(keys ...int) *Tree {
	t := &Tree{}
	for _, k := range keys {
		t.insert(nil, &t.root, k)
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

// Len returns the number of keys.
func (t *Tree) Len() int {
	return tree.Size(t.root)
}

// Insert adds v to the tree, recording every comparison and the final link.
// Inserting a key that is already present records an error step and leaves
// the tree unchanged.
func (t *Tree) Insert(v int) *trace.Trace {
	r := tree.NewRecorder(trace.TagBSTInsert, &t.root, false)
	r.Emitf(trace.OpStart, "Insert %d", v)
	if t.root == nil {
		t.root = tree.NewNode(v)
		r.Highlight(v)
		r.Completef(trace.OpInsert, "Tree is empty: %d becomes the root", v)
		return r.Finish()
	}
	if !t.insert(r, &t.root, v) {
		r.Failf(trace.OpError, "%d already exists in the tree", v)
		return r.Finish()
	}
	r.ClearCurrent()
	r.Highlight(v)
	r.Completef(trace.OpDone, "Inserted %d", v)
	return r.Finish()
}

// insert descends from *link recursively. It returns false if v is already
// present.
func (t *Tree) insert(r *tree.Recorder, link **tree.Node, v int) bool {
	n := *link
	if n == nil {
		*link = tree.NewNode(v)
		return true
	}
	r.Visit(n.Key)
	var inserted bool
	switch {
	case v < n.Key:
		if n.Left == nil {
			r.Emitf(trace.OpCompare, "%d < %d and %d has no left child", v, n.Key, n.Key)
			n.Left = tree.NewNode(v)
			r.Highlight(v)
			r.Emitf(trace.OpInsert, "Insert %d as the left child of %d", v, n.Key)
			inserted = true
		} else {
			r.Emitf(trace.OpCompare, "%d < %d: go left", v, n.Key)
			inserted = t.insert(r, &n.Left, v)
		}
	case v > n.Key:
		if n.Right == nil {
			r.Emitf(trace.OpCompare, "%d > %d and %d has no right child", v, n.Key, n.Key)
			n.Right = tree.NewNode(v)
			r.Highlight(v)
			r.Emitf(trace.OpInsert, "Insert %d as the right child of %d", v, n.Key)
			inserted = true
		} else {
			r.Emitf(trace.OpCompare, "%d > %d: go right", v, n.Key)
			inserted = t.insert(r, &n.Right, v)
		}
	default:
		r.Highlight(n.Key)
		r.Emitf(trace.OpCompare, "%d = %d", v, n.Key)
		return false
	}
	n.Update()
	return inserted
}

// Search looks v up, recording every comparison.
func (t *Tree) Search(v int) *trace.Trace {
	r := tree.NewRecorder(trace.TagBSTSearch, &t.root, false)
	RecordSearch(r, t.root, v)
	return r.Finish()
}

// RecordSearch records a binary search tree lookup of v below n into r. It is
// shared with the AVL generator, which searches the same way.
func RecordSearch(r *tree.Recorder, n *tree.Node, v int) {
	r.Emitf(trace.OpStart, "Search for %d", v)
	if n == nil {
		r.Failf(trace.OpNotFound, "Tree is empty: %d not found", v)
		return
	}
	search(r, n, v)
}

func search(r *tree.Recorder, n *tree.Node, v int) {
	r.Visit(n.Key)
	switch {
	case v == n.Key:
		r.Highlight(n.Key)
		r.Completef(trace.OpFound, "Found %d", v)
	case v < n.Key:
		if n.Left == nil {
			r.Failf(trace.OpNotFound, "%d < %d and %d has no left child: %d not found", v, n.Key, n.Key, v)
			return
		}
		r.Emitf(trace.OpCompare, "%d < %d: go left", v, n.Key)
		search(r, n.Left, v)
	default:
		if n.Right == nil {
			r.Failf(trace.OpNotFound, "%d > %d and %d has no right child: %d not found", v, n.Key, n.Key, v)
			return
		}
		r.Emitf(trace.OpCompare, "%d > %d: go right", v, n.Key)
		search(r, n.Right, v)
	}
}

// Insert returns the trace of inserting v into a tree built from initial.
func Insert(initial []int, v int) *trace.Trace {
	return New(initial...).Insert(v)
}

// Search returns the trace of searching for v in a tree built from initial.
func Search(initial []int, v int) *trace.Trace {
	return New(initial...).Search(v)
}

// Delete returns the trace of deleting v from a tree built from initial.
func Delete(initial []int, v int) *trace.Trace {
	return New(initial...).Delete(v)
}

// Traverse returns the trace of walking a tree built from initial.
func Traverse(initial []int, order tree.Traversal) *trace.Trace {
	return New(initial...).Traverse(order)
}
