// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package unionfind implements a disjoint-set forest with path compression
// and union by rank.
package unionfind

// UnionFind partitions the integers [0, n) into disjoint sets.
type UnionFind struct {
	parent []int
	rank   []int
	sets   int
}

// New returns a UnionFind where every element of [0, n) is its own set.
func New(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// Find returns the representative of x's set, compressing the path from x to
// the representative.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// Union merges the sets of a and b. It returns false if they were already in
// the same set.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
	u.sets--
	return true
}

// Connected returns true if a and b are in the same set.
func (u *UnionFind) Connected(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// Sets returns the number of disjoint sets.
func (u *UnionFind) Sets() int {
	return u.sets
}

// Representatives returns the representative of every element.
func (u *UnionFind) Representatives() []int {
	reps := make([]int, len(u.parent))
	for i := range reps {
		reps[i] = u.Find(i)
	}
	return reps
}
