// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/algoviz/tree"
)

// Traverse records a depth-first walk of the tree. Every visit appends the key
// to the snapshot's Output.
func (t *Tree) Traverse(order tree.Traversal) *trace.Trace {
	r := tree.NewRecorder(trace.TagBSTTraverse, &t.root, false)
	r.Emitf(trace.OpStart, "Start %s traversal", order)
	if t.root == nil {
		r.Failf(trace.OpError, "Tree is empty: nothing to traverse")
		return r.Finish()
	}
	tree.Walk(t.root, order, func(n *tree.Node) {
		r.SetCurrent(n.Key)
		r.Output(n.Key)
		r.Emitf(trace.OpVisit, "Visit %d", n.Key)
	})
	r.ClearCurrent()
	r.Completef(trace.OpDone, "%s traversal visited %d nodes", order, t.Len())
	return r.Finish()
}
