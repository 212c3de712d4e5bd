// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import (
	"slices"
	"strings"

	"github.com/cockroachdb/algoviz/trace"
)

// recorder holds the working snapshot of one graph algorithm run. The
// builder clones the snapshot at every step, so generators mutate r.s in
// place.
type recorder struct {
	g *Graph
	b *trace.Builder
	s Snapshot
	// parentEdge[i] is the edge through which node i was reached, or -1.
	parentEdge []int
}

func newRecorder(g *Graph, tag trace.Tag) *recorder {
	r := &recorder{
		g: g,
		b: trace.NewBuilder(tag),
		s: Snapshot{
			Directed:   g.directed,
			Nodes:      g.nodes,
			Edges:      g.edges,
			NodeStates: make([]NodeState, len(g.nodes)),
			EdgeStates: make([]EdgeState, len(g.edges)),
		},
		parentEdge: make([]int, len(g.nodes)),
	}
	for i := range r.parentEdge {
		r.parentEdge[i] = -1
	}
	return r
}

func (r *recorder) id(i int) string { return r.g.nodes[i] }

func (r *recorder) emitf(op trace.Op, format string, args ...any) {
	r.b.Emitf(op, &r.s, format, args...)
}

func (r *recorder) failf(op trace.Op, format string, args ...any) {
	r.b.Failf(op, &r.s, format, args...)
}

func (r *recorder) completef(op trace.Op, format string, args ...any) {
	r.b.Completef(op, &r.s, format, args...)
}

func (r *recorder) finish() *trace.Trace {
	return r.b.Finish()
}

// setParent records that node v was reached from u through edge e.
func (r *recorder) setParent(v, u, e int) {
	if r.s.Parents == nil {
		r.s.Parents = make([]string, len(r.g.nodes))
	}
	r.parentEdge[v] = e
	r.s.Parents[v] = r.id(u)
}

// setFrontier replaces the displayed frontier with the given nodes.
func (r *recorder) setFrontier(nodes []int) {
	r.s.Frontier = r.s.Frontier[:0]
	for _, i := range nodes {
		r.s.Frontier = append(r.s.Frontier, r.id(i))
	}
}

func (r *recorder) visit(i int) {
	r.s.NodeStates[i] = Current
	r.s.Order = append(r.s.Order, r.id(i))
}

// markPath follows parent edges back from dst, marks the edges as EdgePath
// and returns the node IDs from the source to dst.
func (r *recorder) markPath(dst int) []string {
	path := []string{r.id(dst)}
	for v := dst; r.parentEdge[v] >= 0; {
		e := r.parentEdge[v]
		r.s.EdgeStates[e] = EdgePath
		v = r.g.neighbor(e, v)
		path = append(path, r.id(v))
	}
	slices.Reverse(path)
	return path
}

func joinPath(path []string) string {
	return strings.Join(path, " → ")
}

// edgeName names an edge in step descriptions.
func (g *Graph) edgeName(e int) string {
	if g.directed {
		return g.edges[e].From + "→" + g.edges[e].To
	}
	return g.edges[e].From + "-" + g.edges[e].To
}
