// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
)

// Delete removes v from the tree. A node with two children is replaced by its
// in-order successor (the leftmost node of its right subtree).
func (t *Tree) Delete(v int) *trace.Trace {
	r := tree.NewRecorder(trace.TagBSTDelete, &t.root, false)
	r.Emitf(trace.OpStart, "Delete %d", v)
	if t.root == nil {
		r.Failf(trace.OpNotFound, "Tree is empty: %d not found", v)
		return r.Finish()
	}

	// Find the link pointing at the node to delete.
	link := &t.root
	for *link != nil && (*link).Key != v {
		n := *link
		r.Visit(n.Key)
		if v < n.Key {
			if n.Left == nil {
				r.Failf(trace.OpNotFound, "%d < %d and %d has no left child: %d not found", v, n.Key, n.Key, v)
				return r.Finish()
			}
			r.Emitf(trace.OpCompare, "%d < %d: go left", v, n.Key)
			link = &n.Left
		} else {
			if n.Right == nil {
				r.Failf(trace.OpNotFound, "%d > %d and %d has no right child: %d not found", v, n.Key, n.Key, v)
				return r.Finish()
			}
			r.Emitf(trace.OpCompare, "%d > %d: go right", v, n.Key)
			link = &n.Right
		}
	}
	target := *link
	r.Visit(target.Key)
	r.Highlight(target.Key)
	r.Emitf(trace.OpFound, "Found %d", v)

	switch {
	case target.Left == nil && target.Right == nil:
		r.Emitf(trace.OpDelete, "%d is a leaf: remove it", v)
		*link = nil
	case target.Left == nil || target.Right == nil:
		child := target.Left
		if child == nil {
			child = target.Right
		}
		r.Highlight(target.Key, child.Key)
		r.Emitf(trace.OpDelete, "%d has one child: replace it with %d", v, child.Key)
		*link = child
	default:
		deleteWithSuccessor(r, target)
	}
	tree.RecomputeHeights(t.root)
	r.ClearCurrent()
	r.Highlight()
	r.Completef(trace.OpDone, "Deleted %d", v)
	return r.Finish()
}

// deleteWithSuccessor handles the two-children case: the in-order successor's
// key is copied into target and the successor node is unlinked.
func deleteWithSuccessor(r *tree.Recorder, target *tree.Node) {
	r.Emitf(trace.OpSelect, "%d has two children: find its in-order successor", target.Key)
	link := &target.Right
	r.Visit((*link).Key)
	r.Emitf(trace.OpVisit, "Go right to %d", (*link).Key)
	for (*link).Left != nil {
		link = &(*link).Left
		r.Visit((*link).Key)
		r.Emitf(trace.OpVisit, "Go left to %d", (*link).Key)
	}
	succ := *link
	r.Highlight(target.Key, succ.Key)
	r.Emitf(trace.OpSelect, "In-order successor of %d is %d", target.Key, succ.Key)

	old := target.Key
	target.Key = succ.Key
	*link = succ.Right
	r.SetCurrent(target.Key)
	r.Highlight(target.Key)
	r.Emitf(trace.OpUpdate, "Replace %d with %d and remove the successor node", old, succ.Key)
}
