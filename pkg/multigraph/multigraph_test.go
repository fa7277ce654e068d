package multigraph

import (
	"errors"
	"slices"
	"testing"
)

func TestAddVertexAndEdge(t *testing.T) {
	g := New[string, int]()

	a := g.AddVertex("a")
	b := g.AddVertex("b")
	if a == b {
		t.Fatalf("handles not unique: %d == %d", a, b)
	}

	e, err := g.AddEdge(a, b, 7)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	src, dst, err := g.Endpoints(e)
	if err != nil {
		t.Fatalf("Endpoints: %v", err)
	}
	if src != a || dst != b {
		t.Errorf("endpoints = (%d, %d), want (%d, %d)", src, dst, a, b)
	}

	if got := g.VertexCount(); got != 2 {
		t.Errorf("VertexCount = %d, want 2", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1", got)
	}
}

func TestAddEdgeUnknownEndpoint(t *testing.T) {
	g := New[string, int]()
	a := g.AddVertex("a")

	if _, err := g.AddEdge(a, Vertex(99), 0); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("err = %v, want ErrVertexNotFound", err)
	}
	if _, err := g.AddEdge(Vertex(99), a, 0); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("err = %v, want ErrVertexNotFound", err)
	}
}

func TestParallelEdges(t *testing.T) {
	g := New[string, int]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	e1, _ := g.AddEdge(a, b, 1)
	e2, _ := g.AddEdge(a, b, 2)
	e3, _ := g.AddEdge(b, a, 3)

	if e1 == e2 {
		t.Fatal("parallel edges share a handle")
	}

	out, err := g.OutEdges(a)
	if err != nil {
		t.Fatalf("OutEdges: %v", err)
	}
	if !slices.Equal(out, []Edge{e1, e2}) {
		t.Errorf("OutEdges(a) = %v, want [%d %d]", out, e1, e2)
	}

	// FindEdge prefers the earliest handle.
	found, ok := g.FindEdge(a, b)
	if !ok || found != e1 {
		t.Errorf("FindEdge(a,b) = %d,%v, want %d,true", found, ok, e1)
	}
	if found, ok := g.FindEdge(b, a); !ok || found != e3 {
		t.Errorf("FindEdge(b,a) = %d,%v, want %d,true", found, ok, e3)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New[string, int]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	e, _ := g.AddEdge(a, b, 0)

	if err := g.RemoveEdge(e); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if g.HasEdge(a, b) {
		t.Error("edge still present after removal")
	}
	if _, err := g.Source(e); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Source after removal: err = %v, want ErrEdgeNotFound", err)
	}
	if err := g.RemoveEdge(e); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("double remove: err = %v, want ErrEdgeNotFound", err)
	}
}

func TestClearAndRemoveVertex(t *testing.T) {
	g := New[string, int]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	g.AddEdge(a, b, 0)
	g.AddEdge(b, a, 0)
	g.AddEdge(c, a, 0)

	// Removal before clearing is refused.
	if err := g.RemoveVertex(a); !errors.Is(err, ErrVertexInUse) {
		t.Fatalf("RemoveVertex uncleaned: err = %v, want ErrVertexInUse", err)
	}

	if err := g.ClearVertex(a); err != nil {
		t.Fatalf("ClearVertex: %v", err)
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount after clear = %d, want 0", got)
	}
	if got := g.Degree(b); got != 0 {
		t.Errorf("Degree(b) = %d, want 0", got)
	}

	if err := g.RemoveVertex(a); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if g.HasVertex(a) {
		t.Error("vertex still present after removal")
	}

	// The handle is not reused.
	d := g.AddVertex("d")
	if d == a {
		t.Errorf("handle %d reused after removal", a)
	}
}

func TestDegrees(t *testing.T) {
	g := New[string, int]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	g.AddEdge(a, b, 0)
	g.AddEdge(a, b, 0)
	g.AddEdge(b, a, 0)

	if got := g.OutDegree(a); got != 2 {
		t.Errorf("OutDegree(a) = %d, want 2", got)
	}
	if got := g.Degree(a); got != 3 {
		t.Errorf("Degree(a) = %d, want 3", got)
	}
	if got := g.Degree(Vertex(99)); got != 0 {
		t.Errorf("Degree(stale) = %d, want 0", got)
	}
}

func TestDataAccess(t *testing.T) {
	g := New[string, int]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	e, _ := g.AddEdge(a, b, 7)

	vd, ok := g.VertexData(a)
	if !ok || *vd != "a" {
		t.Fatalf("VertexData(a) = %v,%v", vd, ok)
	}
	*vd = "renamed"
	if vd2, _ := g.VertexData(a); *vd2 != "renamed" {
		t.Error("vertex payload mutation not visible")
	}

	ed, ok := g.EdgeData(e)
	if !ok || *ed != 7 {
		t.Fatalf("EdgeData = %v,%v", ed, ok)
	}
	*ed = 9
	if ed2, _ := g.EdgeData(e); *ed2 != 9 {
		t.Error("edge payload mutation not visible")
	}

	if _, ok := g.VertexData(Vertex(42)); ok {
		t.Error("VertexData(stale) reported ok")
	}
	if _, ok := g.EdgeData(Edge(42)); ok {
		t.Error("EdgeData(stale) reported ok")
	}
}

func TestVerticesAndEdgesSorted(t *testing.T) {
	g := New[string, int]()
	var vs []Vertex
	for i := 0; i < 5; i++ {
		vs = append(vs, g.AddVertex("v"))
	}
	g.AddEdge(vs[0], vs[1], 0)
	g.AddEdge(vs[1], vs[2], 0)

	if got := g.Vertices(); !slices.IsSorted(got) || len(got) != 5 {
		t.Errorf("Vertices() = %v, want 5 sorted handles", got)
	}
	if got := g.Edges(); !slices.IsSorted(got) || len(got) != 2 {
		t.Errorf("Edges() = %v, want 2 sorted handles", got)
	}
}
