// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"fmt"
	"reflect"
)

// Node must be implemented by every node in the hierarchy.
type Node interface {
	TreeStepsNode() NodeInfo
}

// NodeInfo contains the information that we present for each node.
type NodeInfo struct {
	name       string
	properties [][2]string
	marks      []string
	children   []Node
}

// NodeInfof returns a NodeInfo with the name initialized with a formatted
// string.
func NodeInfof(format string, args ...any) NodeInfo {
	return NodeInfo{name: fmt.Sprintf(format, args...)}
}

// AddPropf adds a property to the NodeInfo.
func (ni *NodeInfo) AddPropf(key string, format string, args ...any) {
	ni.properties = append(ni.properties, [2]string{key, fmt.Sprintf(format, args...)})
}

// AddMark adds a mark, shown after the properties.
func (ni *NodeInfo) AddMark(mark string) {
	ni.marks = append(ni.marks, mark)
}

// AddChildren adds one or more children to the NodeInfo.
//
// Any nil children are ignored (this includes nil pointers of any type).
func (ni *NodeInfo) AddChildren(nodes ...Node) {
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		ni.children = append(ni.children, n)
	}
}

// AddChildOrPlaceholder adds n as a child, or a leaf named placeholder if n is
// nil. Binary trees use it so that a lone child still shows which side it is
// on.
func (ni *NodeInfo) AddChildOrPlaceholder(n Node, placeholder string) {
	if isNil(n) {
		n = Leaf(placeholder)
	}
	ni.children = append(ni.children, n)
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	val := reflect.ValueOf(n)
	return val.Kind() == reflect.Ptr && val.IsNil()
}

// Leaf returns a Node without properties or children.
func Leaf(name string) Node {
	return leaf(name)
}

type leaf string

func (l leaf) TreeStepsNode() NodeInfo {
	return NodeInfo{name: string(l)}
}
