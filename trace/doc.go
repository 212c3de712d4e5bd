// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package trace defines the Step and Trace types produced by the algorithm
// generators.
//
// A Trace is the ordered record of one complete run of an algorithm. Each Step
// carries a description, an operation tag, two flags (error and completed)
// and a Snapshot: an algorithm-specific payload describing the state of the
// data structure at that point.
//
// # Snapshot ownership
//
// NewStep clones the snapshot it is given. Generators are free to pass a
// snapshot that aliases their working structures and keep mutating those
// structures afterwards; the Step holds its own copy. This is what makes it
// possible to seek backwards through a Trace and see the past, not the
// future.
//
// Steps and Traces must be treated as read-only by consumers.
//
// # Context tags
//
// Every Trace carries a Tag naming the algorithm family that produced it (for
// example "bst-insert" or "graph-bfs"). Renderers decide whether a loaded
// Trace is relevant to them with a Matcher, either by exact match (Exact) or
// by prefix (Prefix).
package trace
