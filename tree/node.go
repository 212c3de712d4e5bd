// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tree holds the binary tree node and snapshot types shared by the
// bst and avl generators.
package tree

// Node is a binary search tree node. Height counts nodes on the longest path
// down to a leaf, so a leaf has height 1 and an empty subtree height 0.
type Node struct {
	Key    int
	Height int
	Left   *Node
	Right  *Node
}

// NewNode returns a leaf node.
func NewNode(key int) *Node {
	return &Node{Key: key, Height: 1}
}

// Height returns the height of n, 0 for nil.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// BalanceFactor returns height(left) - height(right).
func BalanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}

// Update recomputes the height of n from its children.
func (n *Node) Update() {
	n.Height = 1 + max(Height(n.Left), Height(n.Right))
}

// ChildCount returns the number of non-nil children.
func (n *Node) ChildCount() int {
	c := 0
	if n.Left != nil {
		c++
	}
	if n.Right != nil {
		c++
	}
	return c
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Key:    n.Key,
		Height: n.Height,
		Left:   n.Left.Clone(),
		Right:  n.Right.Clone(),
	}
}

// RecomputeHeights fixes the heights of every node in the subtree.
func RecomputeHeights(n *Node) int {
	if n == nil {
		return 0
	}
	n.Height = 1 + max(RecomputeHeights(n.Left), RecomputeHeights(n.Right))
	return n.Height
}

// InOrder returns the keys of the subtree in sorted (left, node, right) order.
func InOrder(n *Node) []int {
	var keys []int
	Walk(n, InOrderTraversal, func(n *Node) { keys = append(keys, n.Key) })
	return keys
}

// Size returns the number of nodes in the subtree.
func Size(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + Size(n.Left) + Size(n.Right)
}

// Find returns the node holding key, or nil.
func Find(n *Node, key int) *Node {
	for n != nil {
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}

// Traversal is a depth-first visiting order.
type Traversal uint8

const (
	// InOrderTraversal visits left, node, right.
	InOrderTraversal Traversal = iota
	// PreOrderTraversal visits node, left, right.
	PreOrderTraversal
	// PostOrderTraversal visits left, right, node.
	PostOrderTraversal
)

func (o Traversal) String() string {
	switch o {
	case InOrderTraversal:
		return "in-order"
	case PreOrderTraversal:
		return "pre-order"
	case PostOrderTraversal:
		return "post-order"
	default:
		return "unknown"
	}
}

// Walk calls fn for every node of the subtree in the given order.
func Walk(n *Node, order Traversal, fn func(*Node)) {
	if n == nil {
		return
	}
	if order == PreOrderTraversal {
		fn(n)
	}
	Walk(n.Left, order, fn)
	if order == InOrderTraversal {
		fn(n)
	}
	Walk(n.Right, order, fn)
	if order == PostOrderTraversal {
		fn(n)
	}
}

// IsBalanced returns true if every node in the subtree has a balance factor
// in [-1, 1] and a correct height.
func IsBalanced(n *Node) bool {
	if n == nil {
		return true
	}
	if n.Height != 1+max(Height(n.Left), Height(n.Right)) {
		return false
	}
	if bf := BalanceFactor(n); bf < -1 || bf > 1 {
		return false
	}
	return IsBalanced(n.Left) && IsBalanced(n.Right)
}

// IsSearchTree returns true if the subtree satisfies the binary search tree
// ordering with distinct keys.
func IsSearchTree(n *Node) bool {
	keys := InOrder(n)
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return false
		}
	}
	return true
}
