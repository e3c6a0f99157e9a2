package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphEdgesCollapse(t *testing.T) {
	g := NewGraph()
	g.AddEdge("/a", "/b")
	g.AddEdge("/a", "/b")
	g.AddEdge("/a", "/c")

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, []string{"/b", "/c"}, g.Targets("/a"))
	assert.True(t, g.HasEdge("/a", "/b"))
	assert.False(t, g.HasEdge("/b", "/a"))
}

func TestGraphSelfReference(t *testing.T) {
	g := NewGraph()
	g.AddEdge("/a", "/a")
	g.AddEdge("/a", "/a")

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("/a", "/a"))
	assert.Equal(t, []string{"/a"}, g.Targets("/a"))

	seen := g.ReachableFrom([]string{"/a"})
	assert.Equal(t, map[string]bool{"/a": true}, seen)
}

func TestReachableFromIncludesRoots(t *testing.T) {
	g := NewGraph()
	g.AddNode("/isolated")

	seen := g.ReachableFrom([]string{"/isolated", "/not-in-graph"})
	assert.True(t, seen["/isolated"], "a root with no edges is still reachable")
	assert.True(t, seen["/not-in-graph"], "roots outside the graph are trivially reachable")
}

func TestReachableFromTransitive(t *testing.T) {
	g := NewGraph()
	g.AddEdge("/a", "/b")
	g.AddEdge("/b", "/c")
	g.AddEdge("/x", "/y") // disconnected

	seen := g.ReachableFrom([]string{"/a"})
	assert.True(t, seen["/a"])
	assert.True(t, seen["/b"])
	assert.True(t, seen["/c"])
	assert.False(t, seen["/x"])
	assert.False(t, seen["/y"])
}

func TestReachableFromCycle(t *testing.T) {
	g := NewGraph()
	g.AddEdge("/a", "/b")
	g.AddEdge("/b", "/c")
	g.AddEdge("/c", "/a")

	seen := g.ReachableFrom([]string{"/a"})
	assert.Len(t, seen, 3, "cycles terminate and include every member")
}

func TestReachableFromMultipleRootsSharedSubtree(t *testing.T) {
	g := NewGraph()
	g.AddEdge("/a", "/shared")
	g.AddEdge("/b", "/shared")
	g.AddEdge("/shared", "/leaf")

	seen := g.ReachableFrom([]string{"/a", "/b"})
	assert.Len(t, seen, 4)
}

func TestGraphOrderIndependence(t *testing.T) {
	build := func(edges [][2]string) *Graph {
		g := NewGraph()
		for _, e := range edges {
			g.AddEdge(e[0], e[1])
		}
		return g
	}

	forward := build([][2]string{{"/a", "/b"}, {"/b", "/c"}, {"/a", "/c"}})
	backward := build([][2]string{{"/a", "/c"}, {"/b", "/c"}, {"/a", "/b"}})

	assert.Equal(t, forward.EdgeCount(), backward.EdgeCount())
	assert.Equal(t, forward.Targets("/a"), backward.Targets("/a"))
	assert.Equal(t, forward.ReachableFrom([]string{"/a"}), backward.ReachableFrom([]string{"/a"}))
}
