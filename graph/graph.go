// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package graph contains weighted graphs and the trace generators for graph
// algorithms: breadth and depth first search, Dijkstra's shortest paths and
// the Kruskal and Prim minimum spanning trees.
package graph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/internal/strparse"
	"github.com/cockroachdb/swiss"
)

// Edge is a weighted edge between two nodes, identified by their IDs.
type Edge struct {
	From, To string
	Weight   float64
}

// Graph is a weighted graph with nodes kept in insertion order. Node and edge
// indexes are stable, which lets snapshots describe state with slices aligned
// to them.
type Graph struct {
	directed bool
	nodes    []string
	index    *swiss.Map[string, int]
	edges    []Edge
	// adj[i] lists the indexes of the edges leaving node i, in insertion
	// order. Undirected edges appear in the lists of both endpoints.
	adj [][]int
}

// New returns an empty graph.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		index:    swiss.New[string, int](8),
	}
}

// Directed returns true if edges have a direction.
func (g *Graph) Directed() bool { return g.directed }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the node IDs in insertion order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Index returns the index of the node with the given ID.
func (g *Graph) Index(id string) (int, bool) {
	return g.index.Get(id)
}

// AddNode adds a node if it does not exist yet and returns its index.
func (g *Graph) AddNode(id string) (int, error) {
	if i, ok := g.index.Get(id); ok {
		return i, nil
	}
	if id == "" {
		return 0, base.MalformedInputErrorf("empty node ID")
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.adj = append(g.adj, nil)
	g.index.Put(id, i)
	return i, nil
}

// AddEdge adds an edge, creating its endpoints as needed.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == to {
		return base.MalformedInputErrorf("self-loop on %s", from)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return base.MalformedInputErrorf("edge %s-%s has non-finite weight %g", from, to, weight)
	}
	f, err := g.AddNode(from)
	if err != nil {
		return err
	}
	t, err := g.AddNode(to)
	if err != nil {
		return err
	}
	e := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adj[f] = append(g.adj[f], e)
	if !g.directed {
		g.adj[t] = append(g.adj[t], e)
	}
	return nil
}

// neighbor returns the node at the other end of edge e, seen from node i.
func (g *Graph) neighbor(e, i int) int {
	from, _ := g.index.Get(g.edges[e].From)
	if from != i {
		return from
	}
	to, _ := g.index.Get(g.edges[e].To)
	return to
}

func (g *Graph) endpoints(e int) (from, to int) {
	from, _ = g.index.Get(g.edges[e].From)
	to, _ = g.index.Get(g.edges[e].To)
	return from, to
}

func (g *Graph) lookup(id string) (int, error) {
	i, ok := g.index.Get(id)
	if !ok {
		return 0, base.MalformedInputErrorf("unknown node %q", id)
	}
	return i, nil
}

// Parse parses a graph from a list of edges separated by whitespace or
// commas. Undirected edges are written "A-B:3", directed ones "A>B:3"; the
// weight defaults to 1. A lone ID adds an isolated node. A graph cannot mix
// both kinds of edges.
//
//	A-B:1 A-C:4, B-C:2 D
func Parse(input string) (*Graph, error) {
	var g *Graph
	err := strparse.Parse("-:>,", input, func(p *strparse.Parser) {
		var nodes []string
		var edges []Edge
		kind := ""
		for !p.Done() {
			if p.TryNext(",") {
				continue
			}
			from := p.Ident()
			sep := p.Peek()
			if sep != "-" && sep != ">" {
				nodes = append(nodes, from)
				continue
			}
			p.Next()
			if kind == "" {
				kind = sep
			} else if kind != sep {
				p.Errf("cannot mix directed and undirected edges")
			}
			to := p.Ident()
			weight := 1.0
			if p.TryNext(":") {
				weight = p.Float()
			}
			edges = append(edges, Edge{From: from, To: to, Weight: weight})
			nodes = append(nodes, from, to)
		}
		g = New(kind == ">")
		for _, id := range nodes {
			if _, err := g.AddNode(id); err != nil {
				p.Errf("%v", err)
			}
		}
		for _, e := range edges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				p.Errf("%v", err)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// String returns the graph in the format accepted by Parse.
func (g *Graph) String() string {
	var parts []string
	connected := make([]bool, len(g.nodes))
	for i := range g.edges {
		f, t := g.endpoints(i)
		connected[f], connected[t] = true, true
		parts = append(parts, g.edgeString(i))
	}
	for i, id := range g.nodes {
		if !connected[i] {
			parts = append(parts, id)
		}
	}
	return strings.Join(parts, " ")
}

func (g *Graph) edgeString(e int) string {
	return edgeString(g.edges[e], g.directed)
}

func edgeString(e Edge, directed bool) string {
	sep := "-"
	if directed {
		sep = ">"
	}
	return fmt.Sprintf("%s%s%s:%s", e.From, sep, e.To, formatWeight(e.Weight))
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
