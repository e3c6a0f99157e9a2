package reach

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Graph is a directed file-reference graph. Nodes are canonical absolute
// paths; an edge means the source file textually references the target.
// Duplicate edges collapse. Immutable once the builder is done with it.
type Graph struct {
	g     *simple.DirectedGraph
	ids   map[string]int64
	paths map[int64]string
	// self records files that reference themselves; gonum's simple graph
	// rejects self-loops, so they are tracked separately to keep length-1
	// cycles harmless.
	self  map[string]bool
	edges int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		g:     simple.NewDirectedGraph(),
		ids:   make(map[string]int64),
		paths: make(map[int64]string),
		self:  make(map[string]bool),
	}
}

func (g *Graph) ensure(path string) graph.Node {
	if id, ok := g.ids[path]; ok {
		return g.g.Node(id)
	}
	n := g.g.NewNode()
	g.g.AddNode(n)
	g.ids[path] = n.ID()
	g.paths[n.ID()] = path
	return n
}

// AddNode registers a file with no edges yet.
func (g *Graph) AddNode(path string) {
	g.ensure(path)
}

// AddEdge records that from references to. Self-references are recorded but
// contribute nothing to reachability.
func (g *Graph) AddEdge(from, to string) {
	if from == to {
		g.ensure(from)
		if !g.self[from] {
			g.self[from] = true
			g.edges++
		}
		return
	}
	a := g.ensure(from)
	b := g.ensure(to)
	if g.g.HasEdgeFromTo(a.ID(), b.ID()) {
		return
	}
	g.g.SetEdge(g.g.NewEdge(a, b))
	g.edges++
}

// HasEdge reports whether from references to.
func (g *Graph) HasEdge(from, to string) bool {
	if from == to {
		return g.self[from]
	}
	a, ok := g.ids[from]
	if !ok {
		return false
	}
	b, ok := g.ids[to]
	if !ok {
		return false
	}
	return g.g.HasEdgeFromTo(a, b)
}

// Targets returns the sorted list of files referenced by from.
func (g *Graph) Targets(from string) []string {
	id, ok := g.ids[from]
	if !ok {
		return nil
	}
	var out []string
	if g.self[from] {
		out = append(out, from)
	}
	it := g.g.From(id)
	for it.Next() {
		out = append(out, g.paths[it.Node().ID()])
	}
	sort.Strings(out)
	return out
}

// NodeCount returns the number of files in the graph.
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of distinct edges, self-references included.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// ReachableFrom computes the set of files reachable from the roots by a
// breadth-first walk. Every root is trivially reachable, even one with no
// outgoing edges or one absent from the graph entirely.
func (g *Graph) ReachableFrom(roots []string) map[string]bool {
	seen := make(map[string]bool)
	var bf traverse.BreadthFirst
	for _, root := range roots {
		if seen[root] {
			continue
		}
		id, ok := g.ids[root]
		if !ok {
			seen[root] = true
			continue
		}
		// The walker shares its visited set across roots, so overlapping
		// subtrees are traversed once.
		bf.Walk(g.g, g.g.Node(id), func(n graph.Node, _ int) bool {
			seen[g.paths[n.ID()]] = true
			return false
		})
	}
	return seen
}

// Result is the outcome of a reachability analysis. Reachable and
// Unreachable partition Files; Reachable may additionally contain explicit
// roots that lie outside the scanned file set.
type Result struct {
	Files       []string
	Roots       []string
	Graph       *Graph
	Reachable   map[string]bool
	Unreachable []string
}

// IsReachable reports whether a file was reached from the roots.
func (r *Result) IsReachable(path string) bool {
	return r.Reachable[path]
}

// Used returns the sorted reachable file list.
func (r *Result) Used() []string {
	out := make([]string, 0, len(r.Reachable))
	for path, ok := range r.Reachable {
		if ok {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}
