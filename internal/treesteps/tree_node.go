// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"strings"

	"github.com/cockroachdb/algoviz/internal/treeprinter"
)

// TreeNode is a materialized node: a plain value that does not reference the
// hierarchy it was built from.
type TreeNode struct {
	Name       string
	Properties [][2]string
	Marks      []string
	Children   []TreeNode
}

// BuildOption is an optional argument to Build and TreeToString.
type BuildOption func(*buildConfig)

type buildConfig struct {
	maxTreeDepth int
}

// MaxTreeDepth configures Build to only descend to a certain depth. Children
// below that depth show up as "...".
func MaxTreeDepth(maxTreeDepth int) BuildOption {
	return func(c *buildConfig) {
		c.maxTreeDepth = maxTreeDepth
	}
}

// Build materializes the hierarchy rooted at n.
func Build(n Node, opts ...BuildOption) TreeNode {
	cfg := buildConfig{maxTreeDepth: 20}
	for _, o := range opts {
		o(&cfg)
	}
	return build(n, 0, &cfg)
}

func build(n Node, depth int, cfg *buildConfig) TreeNode {
	info := n.TreeStepsNode()
	t := TreeNode{Name: info.name}
	if len(info.properties) > 0 {
		t.Properties = append([][2]string(nil), info.properties...)
	}
	if len(info.marks) > 0 {
		t.Marks = append([]string(nil), info.marks...)
	}
	if depth < cfg.maxTreeDepth {
		for i := range info.children {
			t.Children = append(t.Children, build(info.children[i], depth+1, cfg))
		}
	} else {
		for range info.children {
			t.Children = append(t.Children, TreeNode{Name: "..."})
		}
	}
	return t
}

// String renders the node and its descendants.
func (t TreeNode) String() string {
	tp := treeprinter.New()
	t.print(tp)
	return tp.String()
}

func (t TreeNode) print(tp treeprinter.Node) {
	n := tp.Child(t.label())
	for i := range t.Children {
		t.Children[i].print(n)
	}
}

func (t TreeNode) label() string {
	var buf strings.Builder
	buf.WriteString(t.Name)
	if len(t.Properties) > 0 {
		buf.WriteString(" (")
		for i, p := range t.Properties {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(p[0])
			buf.WriteString("=")
			buf.WriteString(p[1])
		}
		buf.WriteString(")")
	}
	for _, m := range t.Marks {
		buf.WriteString(" <")
		buf.WriteString(m)
		buf.WriteString(">")
	}
	return buf.String()
}

// TreeToString returns a string representation of the current state of a Node
// tree.
func TreeToString(n Node, opts ...BuildOption) string {
	if isNil(n) {
		return "(empty)\n"
	}
	return Build(n, opts...).String()
}
