package multigraph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrVertexNotFound is returned when a vertex handle does not refer to a
	// live vertex, either because it was never issued or because the vertex
	// has been removed.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrEdgeNotFound is returned when an edge handle does not refer to a
	// live edge.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrVertexInUse is returned by [Graph.RemoveVertex] when the vertex
	// still has incident edges. Call [Graph.ClearVertex] first.
	ErrVertexInUse = errors.New("vertex has incident edges")
)

// Vertex is an opaque handle to a vertex. Handles are issued by
// [Graph.AddVertex] and are never reused after removal.
type Vertex int

// Edge is an opaque handle to a directed edge. Handles are issued by
// [Graph.AddEdge] and are never reused after removal.
type Edge int

type vertexRec[V any] struct {
	data V
	out  []Edge // outgoing edges in insertion order
	in   []Edge // incoming edges in insertion order
}

type edgeRec[E any] struct {
	src, dst Vertex
	data     E
}

// Graph is a directed multigraph with payloads of type V on vertices and E
// on edges. The zero value is not usable - use [New].
//
// Graph is not safe for concurrent mutation.
type Graph[V, E any] struct {
	vertices map[Vertex]*vertexRec[V]
	edges    map[Edge]*edgeRec[E]
	nextV    Vertex
	nextE    Edge
}

// New creates an empty graph.
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vertices: make(map[Vertex]*vertexRec[V]),
		edges:    make(map[Edge]*edgeRec[E]),
	}
}

// AddVertex adds a vertex carrying the given payload and returns its handle.
func (g *Graph[V, E]) AddVertex(data V) Vertex {
	v := g.nextV
	g.nextV++
	g.vertices[v] = &vertexRec[V]{data: data}
	return v
}

// AddEdge adds a directed edge src→dst carrying the given payload.
// Returns ErrVertexNotFound if either endpoint does not exist. Parallel
// edges between the same endpoints are allowed.
func (g *Graph[V, E]) AddEdge(src, dst Vertex, data E) (Edge, error) {
	sr, ok := g.vertices[src]
	if !ok {
		return 0, ErrVertexNotFound
	}
	dr, ok := g.vertices[dst]
	if !ok {
		return 0, ErrVertexNotFound
	}
	e := g.nextE
	g.nextE++
	g.edges[e] = &edgeRec[E]{src: src, dst: dst, data: data}
	sr.out = append(sr.out, e)
	dr.in = append(dr.in, e)
	return e, nil
}

// RemoveEdge removes the edge and unregisters it from both endpoints.
// Returns ErrEdgeNotFound if the handle is stale.
func (g *Graph[V, E]) RemoveEdge(e Edge) error {
	rec, ok := g.edges[e]
	if !ok {
		return ErrEdgeNotFound
	}
	if sr, ok := g.vertices[rec.src]; ok {
		sr.out = slices.DeleteFunc(sr.out, func(x Edge) bool { return x == e })
	}
	if dr, ok := g.vertices[rec.dst]; ok {
		dr.in = slices.DeleteFunc(dr.in, func(x Edge) bool { return x == e })
	}
	delete(g.edges, e)
	return nil
}

// ClearVertex removes every edge incident to v, incoming and outgoing.
// Returns ErrVertexNotFound if the handle is stale.
func (g *Graph[V, E]) ClearVertex(v Vertex) error {
	rec, ok := g.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}
	for _, e := range slices.Clone(rec.out) {
		_ = g.RemoveEdge(e)
	}
	for _, e := range slices.Clone(rec.in) {
		_ = g.RemoveEdge(e)
	}
	return nil
}

// RemoveVertex removes a vertex that has no incident edges.
// Returns ErrVertexInUse if edges are still attached - remove them first
// with [Graph.ClearVertex].
func (g *Graph[V, E]) RemoveVertex(v Vertex) error {
	rec, ok := g.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}
	if len(rec.out) > 0 || len(rec.in) > 0 {
		return ErrVertexInUse
	}
	delete(g.vertices, v)
	return nil
}

// Source returns the source vertex of an edge.
func (g *Graph[V, E]) Source(e Edge) (Vertex, error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return rec.src, nil
}

// Target returns the target vertex of an edge.
func (g *Graph[V, E]) Target(e Edge) (Vertex, error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return rec.dst, nil
}

// Endpoints returns both endpoints of an edge in source, target order.
func (g *Graph[V, E]) Endpoints(e Edge) (src, dst Vertex, err error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, 0, ErrEdgeNotFound
	}
	return rec.src, rec.dst, nil
}

// OutEdges returns the outgoing edges of v in insertion order.
// The returned slice is a copy and can be modified freely.
func (g *Graph[V, E]) OutEdges(v Vertex) ([]Edge, error) {
	rec, ok := g.vertices[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return slices.Clone(rec.out), nil
}

// InEdges returns the incoming edges of v in insertion order.
// The returned slice is a copy and can be modified freely.
func (g *Graph[V, E]) InEdges(v Vertex) ([]Edge, error) {
	rec, ok := g.vertices[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return slices.Clone(rec.in), nil
}

// OutDegree returns the number of outgoing edges of v, or 0 if v is stale.
func (g *Graph[V, E]) OutDegree(v Vertex) int {
	rec, ok := g.vertices[v]
	if !ok {
		return 0
	}
	return len(rec.out)
}

// Degree returns the total number of incident edges (incoming plus
// outgoing), or 0 if v is stale.
func (g *Graph[V, E]) Degree(v Vertex) int {
	rec, ok := g.vertices[v]
	if !ok {
		return 0
	}
	return len(rec.out) + len(rec.in)
}

// FindEdge returns the first edge src→dst by handle order, if one exists.
// With parallel edges present, the edge added earliest wins.
func (g *Graph[V, E]) FindEdge(src, dst Vertex) (Edge, bool) {
	rec, ok := g.vertices[src]
	if !ok {
		return 0, false
	}
	found := Edge(-1)
	for _, e := range rec.out {
		if g.edges[e].dst == dst && (found < 0 || e < found) {
			found = e
		}
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}

// HasEdge reports whether at least one edge src→dst exists.
func (g *Graph[V, E]) HasEdge(src, dst Vertex) bool {
	_, ok := g.FindEdge(src, dst)
	return ok
}

// HasVertex reports whether the handle refers to a live vertex.
func (g *Graph[V, E]) HasVertex(v Vertex) bool {
	_, ok := g.vertices[v]
	return ok
}

// Vertices returns all vertex handles in ascending order.
func (g *Graph[V, E]) Vertices() []Vertex {
	return slices.Sorted(maps.Keys(g.vertices))
}

// Edges returns all edge handles in ascending order.
func (g *Graph[V, E]) Edges() []Edge {
	return slices.Sorted(maps.Keys(g.edges))
}

// VertexCount returns the number of live vertices.
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of live edges.
func (g *Graph[V, E]) EdgeCount() int { return len(g.edges) }

// VertexData returns a pointer to the payload of v, so callers can mutate it
// in place. Returns false if the handle is stale.
func (g *Graph[V, E]) VertexData(v Vertex) (*V, bool) {
	rec, ok := g.vertices[v]
	if !ok {
		return nil, false
	}
	return &rec.data, true
}

// EdgeData returns a pointer to the payload of e, so callers can mutate it
// in place. Returns false if the handle is stale.
func (g *Graph[V, E]) EdgeData(e Edge) (*E, bool) {
	rec, ok := g.edges[e]
	if !ok {
		return nil, false
	}
	return &rec.data, true
}
