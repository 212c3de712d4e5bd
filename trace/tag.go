// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package trace

import "strings"

// Tag labels the algorithm or operation family that produced a Trace.
type Tag string

// Tags produced by the generators in this module.
const (
	TagBSTInsert     Tag = "bst-insert"
	TagBSTSearch     Tag = "bst-search"
	TagBSTDelete     Tag = "bst-delete"
	TagBSTTraverse   Tag = "bst-traverse"
	TagAVLInsert     Tag = "avl-insert"
	TagAVLSearch     Tag = "avl-search"
	TagGraphBFS      Tag = "graph-bfs"
	TagGraphDFS      Tag = "graph-dfs"
	TagDijkstra      Tag = "graph-dijkstra"
	TagKruskal       Tag = "graph-mst-kruskal"
	TagPrim          Tag = "graph-mst-prim"
	TagBubbleSort    Tag = "sorting-bubble"
	TagSelectionSort Tag = "sorting-selection"
	TagInsertionSort Tag = "sorting-insertion"
	TagLinearSearch  Tag = "searching-linear"
	TagBinarySearch  Tag = "searching-binary"
	TagStack         Tag = "linear-stack"
	TagQueue         Tag = "linear-queue"
	TagArray         Tag = "linear-array"
)

// HasPrefix returns true if the tag starts with prefix.
func (t Tag) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(t), prefix)
}

// Matcher decides whether a tag is relevant to a consumer.
type Matcher func(Tag) bool

// Exact returns a Matcher that accepts only tag.
func Exact(tag Tag) Matcher {
	return func(t Tag) bool { return t == tag }
}

// Prefix returns a Matcher that accepts any tag starting with prefix.
func Prefix(prefix string) Matcher {
	return func(t Tag) bool { return t.HasPrefix(prefix) }
}

// Any returns a Matcher that accepts a tag accepted by any of ms.
func Any(ms ...Matcher) Matcher {
	return func(t Tag) bool {
		for _, m := range ms {
			if m(t) {
				return true
			}
		}
		return false
	}
}
