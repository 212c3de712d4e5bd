// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import (
	"slices"
	"strings"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/internal/unionfind"
	"github.com/cockroachdb/algoviz/trace"
)

// Kruskal records Kruskal's minimum spanning tree algorithm. Edges are
// considered by increasing weight, ties in insertion order; an edge is
// accepted when its endpoints are in different Union-Find sets. The run stops
// once V-1 edges are accepted. A disconnected graph ends with an error step
// reporting the spanning forest.
func Kruskal(g *Graph) (*trace.Trace, error) {
	if g.directed {
		return nil, base.MalformedInputErrorf("minimum spanning trees need an undirected graph")
	}
	r := newRecorder(g, trace.TagKruskal)
	n := g.Len()
	if n == 0 {
		r.failf(trace.OpError, "Graph is empty: no spanning tree")
		return r.finish(), nil
	}
	uf := unionfind.New(n)
	r.setComponents(uf)

	order := make([]int, len(g.edges))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch wa, wb := g.edges[a].Weight, g.edges[b].Weight; {
		case wa < wb:
			return -1
		case wa > wb:
			return +1
		default:
			return 0
		}
	})
	sorted := make([]string, len(order))
	for i, e := range order {
		sorted[i] = g.edgeName(e) + "(" + formatWeight(g.edges[e].Weight) + ")"
	}
	r.emitf(trace.OpStart, "Sort %d edges by weight: %s", len(order), strings.Join(sorted, " "))

	accepted := 0
	for _, e := range order {
		if accepted == n-1 {
			break
		}
		from, to := g.endpoints(e)
		w := g.edges[e].Weight
		r.s.EdgeStates[e] = EdgeConsidered
		r.emitf(trace.OpCompare, "Consider %s (weight %s)", g.edgeName(e), formatWeight(w))
		if !uf.Union(from, to) {
			r.s.EdgeStates[e] = EdgeRejected
			r.emitf(trace.OpReject, "%s and %s are already connected: reject %s",
				r.id(from), r.id(to), g.edgeName(e))
			continue
		}
		accepted++
		r.s.EdgeStates[e] = EdgeTree
		r.s.NodeStates[from] = Visited
		r.s.NodeStates[to] = Visited
		r.s.Weight += w
		r.setComponents(uf)
		r.emitf(trace.OpAccept, "Accept %s: total weight %s", g.edgeName(e), formatWeight(r.s.Weight))
	}
	if accepted < n-1 {
		r.failf(trace.OpError, "Graph is not connected: spanning forest of %d edges with total weight %s in %d components",
			accepted, formatWeight(r.s.Weight), uf.Sets())
	} else {
		r.completef(trace.OpDone, "Minimum spanning tree has %d edges with total weight %s",
			accepted, formatWeight(r.s.Weight))
	}
	return r.finish(), nil
}

func (r *recorder) setComponents(uf *unionfind.UnionFind) {
	reps := uf.Representatives()
	if r.s.Components == nil {
		r.s.Components = make([]string, len(reps))
	}
	for i, rep := range reps {
		r.s.Components[i] = r.id(rep)
	}
}

// Prim records Prim's minimum spanning tree algorithm grown from start. At
// every step the lightest edge leaving the tree is selected, ties in insertion
// order. A disconnected graph ends with an error step once the frontier is
// empty.
func Prim(g *Graph, start string) (*trace.Trace, error) {
	if g.directed {
		return nil, base.MalformedInputErrorf("minimum spanning trees need an undirected graph")
	}
	src, err := g.lookup(start)
	if err != nil {
		return nil, err
	}
	r := newRecorder(g, trace.TagPrim)
	n := g.Len()
	inTree := make([]bool, n)
	inTree[src] = true
	r.s.NodeStates[src] = Visited
	r.s.Order = append(r.s.Order, start)
	r.refreshFrontier(inTree)
	r.emitf(trace.OpStart, "Start Prim from %s", start)

	for added := 1; added < n; added++ {
		best := -1
		for e, st := range r.s.EdgeStates {
			if st == EdgeConsidered && (best < 0 || g.edges[e].Weight < g.edges[best].Weight) {
				best = e
			}
		}
		if best < 0 {
			r.failf(trace.OpError, "Graph is not connected: only %d of %d nodes reachable from %s, total weight %s",
				added, n, start, formatWeight(r.s.Weight))
			return r.finish(), nil
		}
		from, to := g.endpoints(best)
		v := to
		if inTree[to] {
			v = from
		}
		r.s.NodeStates[v] = Current
		r.emitf(trace.OpSelect, "Select %s (weight %s), the lightest edge leaving the tree",
			g.edgeName(best), formatWeight(g.edges[best].Weight))

		inTree[v] = true
		r.s.NodeStates[v] = Visited
		r.s.EdgeStates[best] = EdgeTree
		r.s.Weight += g.edges[best].Weight
		r.s.Order = append(r.s.Order, r.id(v))
		r.refreshFrontier(inTree)
		r.emitf(trace.OpAccept, "Add %s to the tree: total weight %s", r.id(v), formatWeight(r.s.Weight))
	}
	r.completef(trace.OpDone, "Minimum spanning tree has %d edges with total weight %s",
		n-1, formatWeight(r.s.Weight))
	return r.finish(), nil
}

// refreshFrontier marks the edges leaving the tree as considered. Frontier
// edges that now join two tree nodes are marked rejected.
func (r *recorder) refreshFrontier(inTree []bool) {
	for e, st := range r.s.EdgeStates {
		if st == EdgeTree {
			continue
		}
		from, to := r.g.endpoints(e)
		switch {
		case inTree[from] != inTree[to]:
			r.s.EdgeStates[e] = EdgeConsidered
		case st == EdgeConsidered && inTree[from]:
			r.s.EdgeStates[e] = EdgeRejected
		}
	}
}
