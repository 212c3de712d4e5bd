// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tree

import "github.com/cockroachdb/algoviz/trace"

// Recorder emits tree steps for one operation. It tracks the decorations
// (current node, path, highlights) that accompany each snapshot and reads the
// live tree through a pointer to its root, so rotations and deletions that
// replace the root are always reflected.
//
// A nil *Recorder records nothing; generators use that to replay the initial
// keys of a tree silently.
type Recorder struct {
	b    *trace.Builder
	root **Node
	snap Snapshot
}

// NewRecorder starts recording an operation on the tree rooted at *root.
func NewRecorder(tag trace.Tag, root **Node, showBalance bool) *Recorder {
	return &Recorder{
		b:    trace.NewBuilder(tag),
		root: root,
		snap: Snapshot{ShowBalance: showBalance},
	}
}

// Visit makes key the current node and appends it to the path.
func (r *Recorder) Visit(key int) {
	if r == nil {
		return
	}
	r.snap.Current = key
	r.snap.HasCurrent = true
	r.snap.Path = append(r.snap.Path, key)
}

// SetCurrent makes key the current node without extending the path.
func (r *Recorder) SetCurrent(key int) {
	if r == nil {
		return
	}
	r.snap.Current = key
	r.snap.HasCurrent = true
}

// ClearCurrent removes the current node marker.
func (r *Recorder) ClearCurrent() {
	if r == nil {
		return
	}
	r.snap.HasCurrent = false
}

// Highlight replaces the set of highlighted keys.
func (r *Recorder) Highlight(keys ...int) {
	if r == nil {
		return
	}
	r.snap.Highlight = append(r.snap.Highlight[:0], keys...)
}

// SetRotation records the rebalancing case in progress ("" clears it).
func (r *Recorder) SetRotation(rotation string) {
	if r == nil {
		return
	}
	r.snap.Rotation = rotation
}

// Output appends key to the traversal output.
func (r *Recorder) Output(key int) {
	if r == nil {
		return
	}
	r.snap.Output = append(r.snap.Output, key)
}

// Emitf records a step with the current tree state.
func (r *Recorder) Emitf(op trace.Op, format string, args ...any) {
	if r == nil {
		return
	}
	r.b.Emitf(op, r.snapshot(), format, args...)
}

// Failf records a terminal error step.
func (r *Recorder) Failf(op trace.Op, format string, args ...any) {
	if r == nil {
		return
	}
	r.b.Failf(op, r.snapshot(), format, args...)
}

// Completef records the terminal step of a successful operation.
func (r *Recorder) Completef(op trace.Op, format string, args ...any) {
	if r == nil {
		return
	}
	r.b.Completef(op, r.snapshot(), format, args...)
}

// Finish returns the recorded trace, or nil for a nil Recorder.
func (r *Recorder) Finish() *trace.Trace {
	if r == nil {
		return nil
	}
	return r.b.Finish()
}

// snapshot returns a view of the live tree; the builder clones it.
func (r *Recorder) snapshot() *Snapshot {
	s := r.snap
	s.Root = *r.root
	return &s
}
