// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package trace

import "fmt"

// Kind identifies the payload variant of a Snapshot.
type Kind uint8

const (
	// KindTree is a binary tree payload (BST, AVL).
	KindTree Kind = iota + 1
	// KindGraph is a weighted graph payload (traversals, shortest paths, MST).
	KindGraph
	// KindArray is an array payload (sorting and searching).
	KindArray
	// KindLinear is a stack, queue or array-operation payload.
	KindLinear
)

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindGraph:
		return "graph"
	case KindArray:
		return "array"
	case KindLinear:
		return "linear"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Snapshot is the algorithm-specific payload of a Step.
//
// Clone must return a deep copy: the result may not share any mutable memory
// (slices, maps, pointers to nodes) with the receiver.
type Snapshot interface {
	Kind() Kind
	Clone() Snapshot
}
