// Package pkg provides the core libraries for hedi planar subdivision editing.
//
// # Overview
//
// Hedi stores planar subdivisions as half-edge (doubly connected edge list)
// structures: every undirected edge appears as two directed half-edges that
// are twins of each other, and every face knows one half-edge on its boundary.
// The pkg directory is organized into five main areas:
//
//  1. [hedge] - Half-edge diagram: topology, traversal, mutation, builders
//  2. [multigraph] - Generic directed multigraph underneath the diagram
//  3. [hedgeio] - JSON document format with validation on import
//  4. [store] - Document persistence (memory, file, Redis)
//  5. [render] - Graphviz DOT and SVG rendering
//
// # Architecture
//
// The typical data flow through hedi:
//
//	JSON document
//	     ↓
//	[hedgeio] package (decode, remap handles, validate)
//	     ↓
//	[hedge] package (traverse, mutate, validate)
//	     ↓
//	[render] package (DOT, SVG) or [store] package (persist)
//
// # Quick Start
//
// Build a triangle with an interior and an outer face:
//
//	d := hedge.New[hedge.Metadata, hedge.Metadata, hedge.Metadata]()
//	a, b, c := d.AddVertex(nil), d.AddVertex(nil), d.AddVertex(nil)
//	ab, ba, _ := d.AddTwinPair(a, b, nil, nil)
//	bc, cb, _ := d.AddTwinPair(b, c, nil, nil)
//	ca, ac, _ := d.AddTwinPair(c, a, nil, nil)
//	inner, outer := d.AddFace(nil), d.AddFace(nil)
//	_ = d.CloseCycle([]hedge.Edge{ab, bc, ca}, inner, 1)
//	_ = d.CloseCycle([]hedge.Edge{ac, cb, ba}, outer, -1)
//
// Walk a face boundary and split an edge:
//
//	boundary, _ := d.FaceEdges(inner)
//	v := d.AddVertex(nil)
//	split, _ := d.InsertVertex(v, ab)
//
// # Main Packages
//
// [hedge] - The half-edge diagram. Generic over vertex, edge, and face
// payloads. Provides twin pairing, face-boundary traversal with a walk
// limit, vertex insertion on edges, cycle and chain builders, and a full
// consistency check via Validate.
//
// [multigraph] - Directed multigraph with dense integer handles and payload
// storage. The diagram embeds it; it is usable on its own.
//
// [hedgeio] - Document encoding. A Document couples a string ID with a
// diagram; JSON round-trips preserve handles, twins, successors, faces,
// k tags, and metadata. Imported documents are always validated.
//
// [store] - Store interface with memory, file, and Redis backends plus an
// Open factory driven by configuration.
//
// [render] - Schematic Graphviz rendering. ToDOT emits the whole diagram,
// FaceToDOT a single face boundary; RenderSVG rasterizes DOT to SVG.
//
// [errors] - Structured error codes shared by all packages.
//
// [observability] - Pluggable hooks for store and HTTP instrumentation.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/hedge/...    # Specific package
//
// [hedge]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/hedge
// [multigraph]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/multigraph
// [hedgeio]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/hedgeio
// [store]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/store
// [render]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hedi/pkg/buildinfo
package pkg
