// Package hedgeio provides JSON import and export for half-edge diagrams.
//
// # Overview
//
// This package serializes diagrams with metadata payloads to and from a
// simple JSON document format. The format is designed for:
//
//   - Persisting diagrams between tool invocations
//   - Integration with external tools that produce or consume topology data
//   - Round-trip preservation: import, mutate, export, and re-import
//
// # JSON Format
//
// A document has an identifier plus three arrays:
//
//	{
//	  "id": "9f2d...",
//	  "vertices": [{"handle": 0}, {"handle": 1}],
//	  "edges": [
//	    {"handle": 0, "source": 0, "target": 1, "twin": 1, "next": 0, "face": 0, "k": 1}
//	  ],
//	  "faces": [{"edge": 0}]
//	}
//
// Handles in the file are those of the exporting diagram; import remaps them
// to freshly issued handles while preserving all topology references.
// Unset references are encoded as -1.
//
// Vertices, edges, and faces each take an optional "meta" object with
// arbitrary key-value pairs, preserved verbatim across a round trip.
//
// # Validation
//
// Import rebuilds the diagram and then verifies the half-edge invariants
// (mutual twins, closed face boundaries). Documents describing incomplete or
// inconsistent topology are rejected with an INVALID_DOCUMENT error, so a
// successfully imported diagram is always safe to traverse.
//
// # Usage
//
//	doc, err := hedgeio.ImportJSON("floor.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... mutate doc.Diagram ...
//	err = hedgeio.ExportJSON(doc, "floor.json")
package hedgeio
