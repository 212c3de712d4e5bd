// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treeprinter renders hierarchies as indented text trees:
//
//	root
//	 ├── left
//	 │    └── leaf
//	 └── right
package treeprinter

import (
	"fmt"
	"strings"
)

const (
	edgeLink = " │    "
	edgeMid  = " ├── "
	edgeLast = " └── "
	edgeNone = "      "
)

// Node is a handle on a node of the tree being built. The zero Node is not
// usable; use New.
type Node struct {
	tree *tree
	idx  int
}

type tree struct {
	nodes []entry
}

type entry struct {
	text     string
	children []int
}

// New creates a tree printer and returns the (invisible) root node. Children
// of the root are printed without indentation.
func New() Node {
	t := &tree{nodes: []entry{{}}}
	return Node{tree: t, idx: 0}
}

// Child adds a child node with the given text and returns it.
func (n Node) Child(text string) Node {
	t := n.tree
	t.nodes = append(t.nodes, entry{text: text})
	idx := len(t.nodes) - 1
	t.nodes[n.idx].children = append(t.nodes[n.idx].children, idx)
	return Node{tree: t, idx: idx}
}

// Childf adds a child node with formatted text and returns it.
func (n Node) Childf(format string, args ...interface{}) Node {
	return n.Child(fmt.Sprintf(format, args...))
}

// String renders the entire tree that n belongs to.
func (n Node) String() string {
	var buf strings.Builder
	for _, c := range n.tree.nodes[0].children {
		n.tree.format(&buf, c, "", "")
	}
	return buf.String()
}

func (t *tree) format(buf *strings.Builder, idx int, first, rest string) {
	e := &t.nodes[idx]
	buf.WriteString(first)
	buf.WriteString(e.text)
	buf.WriteByte('\n')
	for i, c := range e.children {
		if i == len(e.children)-1 {
			t.format(buf, c, rest+edgeLast, rest+edgeNone)
		} else {
			t.format(buf, c, rest+edgeMid, rest+edgeLink)
		}
	}
}
