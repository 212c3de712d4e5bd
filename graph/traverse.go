// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package graph

import (
	"strings"

	"github.com/cockroachdb/algoviz/trace"
)

// BFS records a breadth-first traversal from start. If target is not empty the
// traversal stops when target is dequeued and the path to it is
// reconstructed; a target that is never reached ends the trace with an error
// step.
func BFS(g *Graph, start, target string) (*trace.Trace, error) {
	src, dst, err := g.startAndTarget(start, target)
	if err != nil {
		return nil, err
	}
	r := newRecorder(g, trace.TagGraphBFS)
	discovered := make([]bool, g.Len())
	discovered[src] = true
	queue := []int{src}
	r.s.NodeStates[src] = Frontier
	r.setFrontier(queue)
	r.emitf(trace.OpStart, "Start BFS from %s%s", start, lookingFor(target))

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		r.setFrontier(queue)
		r.visit(u)
		r.emitf(trace.OpVisit, "Dequeue and visit %s", r.id(u))
		if u == dst {
			r.s.Path = r.markPath(dst)
			r.completef(trace.OpPath, "Found %s: path %s", target, joinPath(r.s.Path))
			return r.finish(), nil
		}
		for _, e := range g.adj[u] {
			v := g.neighbor(e, u)
			if discovered[v] {
				continue
			}
			discovered[v] = true
			queue = append(queue, v)
			r.setFrontier(queue)
			r.setParent(v, u, e)
			r.s.NodeStates[v] = Frontier
			r.s.EdgeStates[e] = EdgeTree
			r.emitf(trace.OpEnqueue, "Enqueue %s, discovered from %s", r.id(v), r.id(u))
		}
		r.s.NodeStates[u] = Visited
	}
	return r.finishTraversal("BFS", start, target), nil
}

// DFS records an iterative depth-first traversal from start. Neighbors are
// pushed in reverse order so that they are visited in insertion order, the
// same order as a recursive traversal. Target handling is as for BFS.
func DFS(g *Graph, start, target string) (*trace.Trace, error) {
	src, dst, err := g.startAndTarget(start, target)
	if err != nil {
		return nil, err
	}
	type entry struct {
		node, edge int
	}
	r := newRecorder(g, trace.TagGraphDFS)
	visited := make([]bool, g.Len())
	stack := []entry{{node: src, edge: -1}}
	showStack := func() {
		nodes := make([]int, 0, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			nodes = append(nodes, stack[i].node)
		}
		r.setFrontier(nodes)
	}
	r.s.NodeStates[src] = Frontier
	showStack()
	r.emitf(trace.OpStart, "Start DFS from %s%s", start, lookingFor(target))

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		u := top.node
		if visited[u] {
			continue
		}
		visited[u] = true
		showStack()
		r.visit(u)
		if top.edge >= 0 {
			from := g.neighbor(top.edge, u)
			r.setParent(u, from, top.edge)
			r.s.EdgeStates[top.edge] = EdgeTree
			r.emitf(trace.OpVisit, "Pop and visit %s, reached from %s", r.id(u), r.id(from))
		} else {
			r.emitf(trace.OpVisit, "Pop and visit %s", r.id(u))
		}
		if u == dst {
			r.s.Path = r.markPath(dst)
			r.completef(trace.OpPath, "Found %s: path %s", target, joinPath(r.s.Path))
			return r.finish(), nil
		}
		var next []int
		for _, e := range g.adj[u] {
			if !visited[g.neighbor(e, u)] {
				next = append(next, e)
			}
		}
		for i := len(next) - 1; i >= 0; i-- {
			e := next[i]
			v := g.neighbor(e, u)
			stack = append(stack, entry{node: v, edge: e})
			showStack()
			r.s.NodeStates[v] = Frontier
			r.emitf(trace.OpPush, "Push %s (neighbor of %s)", r.id(v), r.id(u))
		}
		r.s.NodeStates[u] = Visited
	}
	return r.finishTraversal("DFS", start, target), nil
}

func (r *recorder) finishTraversal(name, start, target string) *trace.Trace {
	if target != "" {
		r.failf(trace.OpNotFound, "%s is not reachable from %s", target, start)
	} else {
		r.completef(trace.OpDone, "%s from %s visited %d nodes: %s",
			name, start, len(r.s.Order), strings.Join(r.s.Order, " "))
	}
	return r.finish()
}

// startAndTarget resolves the start and optional target nodes. The target
// index is -1 when target is empty.
func (g *Graph) startAndTarget(start, target string) (src, dst int, err error) {
	if src, err = g.lookup(start); err != nil {
		return 0, 0, err
	}
	dst = -1
	if target != "" {
		if dst, err = g.lookup(target); err != nil {
			return 0, 0, err
		}
	}
	return src, dst, nil
}

func lookingFor(target string) string {
	if target == "" {
		return ""
	}
	return ", looking for " + target
}
