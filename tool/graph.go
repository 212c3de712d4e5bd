// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/algoviz/graph"
	"github.com/cockroachdb/algoviz/internal/base"
	"github.com/cockroachdb/algoviz/trace"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// graphT implements the graph algorithm commands.
type graphT struct {
	Root     *cobra.Command
	BFS      *cobra.Command
	DFS      *cobra.Command
	Dijkstra *cobra.Command
	Kruskal  *cobra.Command
	Prim     *cobra.Command
	Export   *cobra.Command

	t      *T
	edges  string
	file   string
	start  string
	target string
}

func newGraph(t *T) *graphT {
	g := &graphT{t: t}

	g.Root = &cobra.Command{
		Use:   "graph",
		Short: "graph algorithm traces",
		Long: `
Trace graph algorithms. The graph is given either with --edges, a list of
edges such as "A-B:1 B-C:2" (undirected) or "A>B:1 B>C:2" (directed), or
with --file, a YAML document:

  directed: false
  nodes: [E]
  edges:
    - {from: A, to: B, weight: 1}
    - {from: B, to: C}
`,
	}
	g.BFS = &cobra.Command{
		Use:   "bfs",
		Short: "trace a breadth-first search from --start",
		Args:  cobra.NoArgs,
		RunE: g.run(func(gr *graph.Graph) (*trace.Trace, error) {
			return graph.BFS(gr, g.start, g.target)
		}, nil),
	}
	g.DFS = &cobra.Command{
		Use:   "dfs",
		Short: "trace a depth-first search from --start",
		Args:  cobra.NoArgs,
		RunE: g.run(func(gr *graph.Graph) (*trace.Trace, error) {
			return graph.DFS(gr, g.start, g.target)
		}, nil),
	}
	g.Dijkstra = &cobra.Command{
		Use:   "dijkstra",
		Short: "trace Dijkstra's shortest paths from --start",
		Args:  cobra.NoArgs,
		RunE: g.run(func(gr *graph.Graph) (*trace.Trace, error) {
			return graph.Dijkstra(gr, g.start)
		}, distanceTable),
	}
	g.Kruskal = &cobra.Command{
		Use:   "kruskal",
		Short: "trace Kruskal's minimum spanning tree",
		Args:  cobra.NoArgs,
		RunE:  g.run(graph.Kruskal, spanningTreeTable),
	}
	g.Prim = &cobra.Command{
		Use:   "prim",
		Short: "trace Prim's minimum spanning tree from --start",
		Args:  cobra.NoArgs,
		RunE: g.run(func(gr *graph.Graph) (*trace.Trace, error) {
			return graph.Prim(gr, g.start)
		}, spanningTreeTable),
	}

	g.Export = &cobra.Command{
		Use:   "export",
		Short: "print the graph as a YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gr, err := g.load()
			if err != nil {
				return err
			}
			return writeGraph(cmd.OutOrStdout(), gr)
		},
	}

	g.Root.AddCommand(g.BFS, g.DFS, g.Dijkstra, g.Kruskal, g.Prim, g.Export)
	t.addRenderFlags(g.Root)
	g.Root.PersistentFlags().StringVar(
		&g.edges, "edges", "", "the graph as a list of edges")
	g.Root.PersistentFlags().StringVar(
		&g.file, "file", "", "read the graph from a YAML file")
	for _, cmd := range []*cobra.Command{g.BFS, g.DFS, g.Dijkstra, g.Prim} {
		cmd.Flags().StringVar(&g.start, "start", "", "the start node")
		_ = cmd.MarkFlagRequired("start")
	}
	for _, cmd := range []*cobra.Command{g.BFS, g.DFS} {
		cmd.Flags().StringVar(&g.target, "target", "", "stop when this node is reached")
	}
	return g
}

func (g *graphT) run(
	gen func(*graph.Graph) (*trace.Trace, error), summary summarizer,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		gr, err := g.load()
		if err != nil {
			return err
		}
		tr, err := gen(gr)
		if err != nil {
			return err
		}
		return g.t.emit(cmd, tr, summary)
	}
}

func (g *graphT) load() (*graph.Graph, error) {
	switch {
	case g.edges != "" && g.file != "":
		return nil, errors.New("--edges and --file are mutually exclusive")
	case g.file != "":
		f, err := os.Open(g.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		gr, err := readGraph(f)
		return gr, errors.Wrapf(err, "%s", g.file)
	case g.edges != "":
		return graph.Parse(g.edges)
	default:
		return nil, errors.New("one of --edges or --file is required")
	}
}

// graphFile is the YAML representation of a graph.
type graphFile struct {
	Directed bool        `yaml:"directed"`
	Nodes    []string    `yaml:"nodes,omitempty"`
	Edges    []graphEdge `yaml:"edges"`
}

type graphEdge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// readGraph decodes a YAML graph. Edges without a weight get weight 1. Nodes
// listed under nodes are added before the edges, in order.
func readGraph(r io.Reader) (*graph.Graph, error) {
	var doc graphFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, base.MalformedInputErrorf("empty graph document")
		}
		return nil, base.MarkMalformedInput(err)
	}
	gr := graph.New(doc.Directed)
	for _, id := range doc.Nodes {
		if _, err := gr.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		if err := gr.AddEdge(e.From, e.To, w); err != nil {
			return nil, err
		}
	}
	return gr, nil
}

// writeGraph encodes gr in the format read by readGraph.
func writeGraph(w io.Writer, gr *graph.Graph) error {
	var doc graphFile
	doc.Directed = gr.Directed()
	connected := make(map[string]bool)
	for _, e := range gr.Edges() {
		weight := e.Weight
		doc.Edges = append(doc.Edges, graphEdge{From: e.From, To: e.To, Weight: &weight})
		connected[e.From], connected[e.To] = true, true
	}
	for _, id := range gr.Nodes() {
		if !connected[id] {
			doc.Nodes = append(doc.Nodes, id)
		}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// distanceTable prints the final distance and predecessor of every node.
func distanceTable(w io.Writer, last trace.Step) {
	s, ok := last.Snapshot().(*graph.Snapshot)
	if !ok || s.Distances == nil {
		return
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Node", "Distance", "Parent"})
	for i, id := range s.Nodes {
		tbl.Append([]string{id, formatFloat(s.Distances[i]), s.Parents[i]})
	}
	tbl.Render()
}

// spanningTreeTable prints the edges of the final spanning tree or forest.
func spanningTreeTable(w io.Writer, last trace.Step) {
	s, ok := last.Snapshot().(*graph.Snapshot)
	if !ok {
		return
	}
	sep := "-"
	if s.Directed {
		sep = ">"
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Edge", "Weight"})
	for _, e := range s.TreeEdges() {
		tbl.Append([]string{strings.Join([]string{e.From, e.To}, sep), formatFloat(e.Weight)})
	}
	tbl.SetFooter([]string{"Total", formatFloat(s.Weight)})
	tbl.Render()
}
