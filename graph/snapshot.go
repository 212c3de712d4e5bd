// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/algoviz/trace"
)

// NodeState is the state of a node in a graph snapshot.
type NodeState uint8

const (
	// Unvisited nodes have not been reached.
	Unvisited NodeState = iota
	// Frontier nodes are discovered but not processed: queued, stacked, or
	// holding a tentative distance.
	Frontier
	// Current is the node being processed.
	Current
	// Visited nodes are done (or belong to the spanning tree).
	Visited
)

func (s NodeState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Frontier:
		return "frontier"
	case Current:
		return "current"
	case Visited:
		return "visited"
	default:
		return fmt.Sprintf("NodeState(%d)", uint8(s))
	}
}

// EdgeState is the state of an edge in a graph snapshot.
type EdgeState uint8

const (
	// EdgeIdle edges have not been looked at.
	EdgeIdle EdgeState = iota
	// EdgeConsidered is the edge under examination (or, for Prim, an edge
	// leaving the tree).
	EdgeConsidered
	// EdgeTree edges belong to the traversal tree or spanning tree.
	EdgeTree
	// EdgeRejected edges were examined and discarded.
	EdgeRejected
	// EdgePath edges lie on a reconstructed path.
	EdgePath
)

func (s EdgeState) String() string {
	switch s {
	case EdgeIdle:
		return "idle"
	case EdgeConsidered:
		return "considered"
	case EdgeTree:
		return "tree"
	case EdgeRejected:
		return "rejected"
	case EdgePath:
		return "path"
	default:
		return fmt.Sprintf("EdgeState(%d)", uint8(s))
	}
}

// Snapshot is the trace payload for graph algorithms. Per-node slices are
// aligned with Nodes and per-edge slices with Edges.
type Snapshot struct {
	Directed   bool
	Nodes      []string
	Edges      []Edge
	NodeStates []NodeState
	EdgeStates []EdgeState
	// Distances holds tentative distances (Dijkstra only); +Inf means
	// unreachable so far.
	Distances []float64
	// Parents holds the predecessor of each node, or "".
	Parents []string
	// Frontier holds the queue (BFS) or stack (DFS) contents, front or top
	// first.
	Frontier []string
	// Order holds node IDs in visit order.
	Order []string
	// Path holds a reconstructed path, source first.
	Path []string
	// Weight is the total weight of the spanning tree built so far.
	Weight float64
	// Components holds the Union-Find representative of each node (Kruskal
	// only).
	Components []string
}

var _ trace.Snapshot = (*Snapshot)(nil)

// Kind implements trace.Snapshot.
func (s *Snapshot) Kind() trace.Kind { return trace.KindGraph }

// Clone implements trace.Snapshot.
func (s *Snapshot) Clone() trace.Snapshot {
	c := *s
	c.Nodes = slices.Clone(s.Nodes)
	c.Edges = slices.Clone(s.Edges)
	c.NodeStates = slices.Clone(s.NodeStates)
	c.EdgeStates = slices.Clone(s.EdgeStates)
	c.Distances = slices.Clone(s.Distances)
	c.Parents = slices.Clone(s.Parents)
	c.Frontier = slices.Clone(s.Frontier)
	c.Order = slices.Clone(s.Order)
	c.Path = slices.Clone(s.Path)
	c.Components = slices.Clone(s.Components)
	return &c
}

// TreeEdges returns the edges in the EdgeTree or EdgePath state.
func (s *Snapshot) TreeEdges() []Edge {
	var res []Edge
	for i, st := range s.EdgeStates {
		if st == EdgeTree || st == EdgePath {
			res = append(res, s.Edges[i])
		}
	}
	return res
}

// Distance returns the distance recorded for the given node.
func (s *Snapshot) Distance(id string) (float64, bool) {
	i := slices.Index(s.Nodes, id)
	if i < 0 || s.Distances == nil {
		return 0, false
	}
	return s.Distances[i], true
}

// String renders the snapshot, one line per node and per non-idle edge.
//
//	A visited d=0
//	B frontier d=1 parent=A
//	A-B:1 tree
//	frontier: [C]
func (s *Snapshot) String() string {
	var b strings.Builder
	for i, id := range s.Nodes {
		fmt.Fprintf(&b, "%s %s", id, s.NodeStates[i])
		if s.Distances != nil {
			fmt.Fprintf(&b, " d=%s", formatDistance(s.Distances[i]))
		}
		if s.Parents != nil && s.Parents[i] != "" {
			fmt.Fprintf(&b, " parent=%s", s.Parents[i])
		}
		if s.Components != nil {
			fmt.Fprintf(&b, " set=%s", s.Components[i])
		}
		b.WriteString("\n")
	}
	for i, e := range s.Edges {
		if s.EdgeStates[i] != EdgeIdle {
			fmt.Fprintf(&b, "%s %s\n", edgeString(e, s.Directed), s.EdgeStates[i])
		}
	}
	if len(s.Frontier) > 0 {
		fmt.Fprintf(&b, "frontier: [%s]\n", strings.Join(s.Frontier, " "))
	}
	if len(s.Order) > 0 {
		fmt.Fprintf(&b, "order: %s\n", strings.Join(s.Order, " "))
	}
	if len(s.Path) > 0 {
		fmt.Fprintf(&b, "path: %s\n", strings.Join(s.Path, " → "))
	}
	if s.Weight != 0 {
		fmt.Fprintf(&b, "weight: %s\n", formatWeight(s.Weight))
	}
	return b.String()
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}
	return formatWeight(d)
}
