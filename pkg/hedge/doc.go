// Package hedge provides a half-edge diagram (doubly-connected edge list)
// for representing and mutating planar subdivisions.
//
// # Overview
//
// A half-edge diagram stores every undirected edge of a planar subdivision as
// a pair of oppositely-directed half-edges. Each half-edge knows its twin
// (the opposite direction), its next edge (continuing counter-clockwise
// around the boundary of the face on its left), and the face it borders.
// Faces store one reference half-edge from which their whole boundary can be
// recovered by following next pointers.
//
// This is the structure underneath Voronoi-diagram and mesh-offset
// algorithms: those algorithms decide which vertices, edges, and faces to
// create; this package keeps the cross-referencing consistent while they do.
//
// # Basic Usage
//
// Create a diagram with [New], add vertices with [Diagram.AddVertex], and
// connect them with [Diagram.AddTwinPair]. Boundaries are assembled with
// [Diagram.CloseCycle] from edges listed in traversal order:
//
//	d := hedge.New[string, string, string]()
//	a, b, c := d.AddVertex("a"), d.AddVertex("b"), d.AddVertex("c")
//	ab, _, _ := d.AddTwinPair(a, b, "", "")
//	bc, _, _ := d.AddTwinPair(b, c, "", "")
//	ca, _, _ := d.AddTwinPair(c, a, "", "")
//	f := d.AddFace("interior")
//	d.CloseCycle([]hedge.Edge{ab, bc, ca}, f, 1)
//
// Traverse with [Diagram.FaceVertices] and [Diagram.FaceEdges], and split
// edges with [Diagram.InsertVertex], which inserts a vertex into the interior
// of an edge and its twin while re-establishing all four twin pairs and both
// face references.
//
// # Invariants
//
// After every completed mutation the following hold:
//
//  1. Twin(Twin(e)) == e for every half-edge e
//  2. Source(Twin(e)) == Target(e) and vice versa
//  3. FaceOf(Next(e)) == FaceOf(e) - next never crosses a face boundary
//  4. Following Next from any half-edge returns to it after exactly the
//     face's boundary length
//  5. Each face's reference edge lies on that face's boundary cycle
//  6. Face indices are append-only; faces are never removed or renumbered
//
// [Diagram.Validate] sweeps the whole diagram and reports the first
// violation.
//
// # Corruption Defense
//
// Boundary walks are plain bounded loops. A next chain that never closes is
// reported as a CORRUPT_TOPOLOGY error carrying the step count and a prefix
// of the partial walk ([WalkError]) instead of looping forever. The bound
// defaults to [DefaultWalkLimit] and is configurable with [WithWalkLimit].
//
// # Payloads
//
// The diagram is generic over vertex, edge, and face payload types. Payloads
// are opaque to the topology logic; [Metadata] is a convenient choice when
// arbitrary key-value data is needed (it is what the IO layer uses).
//
// # Concurrency
//
// Diagram instances are not safe for concurrent mutation. Read-only
// traversal may run concurrently with other reads but never with a writer,
// since mutation briefly leaves invariants unrepaired.
package hedge
