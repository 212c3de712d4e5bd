// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/trace"
)

// Dijkstra records the single-source shortest path computation from start.
// The closest unvisited node is found by a linear scan (ties go to the node
// added first). The run stops when no unvisited node has a finite distance,
// and the final step lists the shortest path to every node.
//
// Negative weights are rejected as malformed input.
func Dijkstra(g *Graph, start string) (*trace.Trace, error) {
	src, err := g.lookup(start)
	if err != nil {
		return nil, err
	}
	for i, e := range g.edges {
		if e.Weight < 0 {
			return nil, base.MalformedInputErrorf("negative weight %s on edge %s", formatWeight(e.Weight), g.edgeName(i))
		}
	}

	r := newRecorder(g, trace.TagDijkstra)
	dist := make([]float64, g.Len())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	r.s.Distances = dist
	r.s.NodeStates[src] = Frontier
	r.emitf(trace.OpStart, "Initialize distances: %s = 0, all others ∞", start)

	visited := make([]bool, g.Len())
	for {
		u := -1
		for i := range dist {
			if !visited[i] && !math.IsInf(dist[i], 1) && (u < 0 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u < 0 {
			break
		}
		visited[u] = true
		r.visit(u)
		r.emitf(trace.OpSelect, "Select %s, the closest unvisited node (distance %s)",
			r.id(u), formatDistance(dist[u]))

		for _, e := range g.adj[u] {
			v := g.neighbor(e, u)
			if visited[v] {
				continue
			}
			w := g.edges[e].Weight
			nd := dist[u] + w
			if nd < dist[v] {
				old := dist[v]
				if pe := r.parentEdge[v]; pe >= 0 {
					r.s.EdgeStates[pe] = EdgeRejected
				}
				dist[v] = nd
				r.setParent(v, u, e)
				r.s.NodeStates[v] = Frontier
				r.s.EdgeStates[e] = EdgeTree
				r.emitf(trace.OpRelax, "Relax %s→%s: %s + %s = %s < %s, update %s",
					r.id(u), r.id(v), formatDistance(dist[u]), formatWeight(w),
					formatDistance(nd), formatDistance(old), r.id(v))
			} else {
				r.s.EdgeStates[e] = EdgeRejected
				r.emitf(trace.OpCompare, "Check %s→%s: %s + %s = %s ≥ %s, keep %s",
					r.id(u), r.id(v), formatDistance(dist[u]), formatWeight(w),
					formatDistance(nd), formatDistance(dist[v]), r.id(v))
			}
		}
		r.s.NodeStates[u] = Visited
	}

	var parts []string
	for v := range dist {
		if v == src {
			continue
		}
		if math.IsInf(dist[v], 1) {
			parts = append(parts, fmt.Sprintf("%s unreachable", r.id(v)))
			continue
		}
		path := r.markPath(v)
		parts = append(parts, fmt.Sprintf("%s=%s (%s)", r.id(v), formatDistance(dist[v]), joinPath(path)))
	}
	if len(parts) == 0 {
		r.completef(trace.OpPath, "%s has no other nodes to reach", start)
	} else {
		r.completef(trace.OpPath, "Shortest paths from %s: %s", start, strings.Join(parts, ", "))
	}
	return r.finish(), nil
}
