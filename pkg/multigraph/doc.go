// Package multigraph provides a directed multigraph with opaque integer
// handles, used as the storage engine underneath the half-edge diagram.
//
// # Overview
//
// The graph stores vertices and directed edges together with caller-supplied
// payloads. Both are addressed through opaque handles ([Vertex], [Edge]) that
// are issued by the graph and never reused, so a handle to a removed entity
// stays invalid for the lifetime of the graph instead of silently aliasing a
// newer one.
//
// Parallel edges are allowed: two vertices may be connected by any number of
// directed edges in either direction. This is what the half-edge layer relies
// on, since every undirected edge of a planar subdivision is represented as a
// pair of oppositely-directed half-edges.
//
// # Basic Usage
//
// Create a graph with [New], add vertices with [Graph.AddVertex], and connect
// them with [Graph.AddEdge]:
//
//	g := multigraph.New[string, int]()
//	a := g.AddVertex("a")
//	b := g.AddVertex("b")
//	e, _ := g.AddEdge(a, b, 7)
//
// Adjacency is queried with [Graph.OutEdges], [Graph.FindEdge], and
// [Graph.HasEdge]. Payloads are exposed as pointers ([Graph.VertexData],
// [Graph.EdgeData]) so callers can mutate them in place.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Read-only queries may
// run concurrently with each other but never with a writer.
package multigraph
