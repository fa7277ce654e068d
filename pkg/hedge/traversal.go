package hedge

import (
	"fmt"
	"slices"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/observability"
)

// walkErrorPrefix bounds how much of a failed walk is kept for diagnosis.
const walkErrorPrefix = 32

// WalkError reports a boundary walk that failed to close into a cycle.
// It is carried as the cause of a CORRUPT_TOPOLOGY error.
type WalkError struct {
	Face    Face   // face whose boundary was walked (NoFace for edge-relative walks)
	Steps   int    // iterations performed before giving up
	Partial []Edge // prefix of the walk, capped at a small fixed length
}

// Error implements the error interface.
func (e *WalkError) Error() string {
	return fmt.Sprintf("boundary walk did not close after %d steps (partial %v)", e.Steps, e.Partial)
}

// FaceVertices returns the vertices on the boundary of f in traversal
// order, starting from the target of the face's reference edge. The result
// length equals the boundary's edge count.
//
// The walk follows next pointers and is capped at the diagram's walk limit;
// a chain that never returns to the reference edge is reported as a
// CORRUPT_TOPOLOGY error rather than looping forever.
func (d *Diagram[V, E, F]) FaceVertices(f Face) ([]Vertex, error) {
	edges, err := d.FaceEdges(f)
	if err != nil {
		return nil, err
	}
	verts := make([]Vertex, len(edges))
	for i, e := range edges {
		verts[i], _ = d.g.Target(e)
	}
	return verts, nil
}

// FaceEdges returns the half-edges on the boundary of f in traversal order,
// starting from the face's reference edge. Every returned edge borders f.
//
// Same walk-limit behavior as [Diagram.FaceVertices].
func (d *Diagram[V, E, F]) FaceEdges(f Face) ([]Edge, error) {
	if !d.hasFace(f) {
		return nil, herrors.New(herrors.ErrCodeInvalidHandle, "face %d not in diagram", f)
	}
	start := d.faces[f].Edge
	if start == NoEdge {
		return nil, herrors.New(herrors.ErrCodeTopologyInconsistency, "face %d has no reference edge", f)
	}

	var out []Edge
	current := start
	for steps := 0; ; steps++ {
		if steps >= d.walkLimit {
			return nil, d.walkFailed(f, steps, out)
		}
		he, err := d.topo(current)
		if err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeCorruptTopology, err,
				"face %d boundary references a removed edge", f)
		}
		if he.Face != f {
			return nil, herrors.Wrap(herrors.ErrCodeCorruptTopology,
				&WalkError{Face: f, Steps: steps, Partial: clipWalk(out)},
				"edge %d on face %d boundary belongs to face %d", current, f, he.Face)
		}
		out = append(out, current)
		if he.Next == NoEdge {
			return nil, herrors.Wrap(herrors.ErrCodeCorruptTopology,
				&WalkError{Face: f, Steps: steps, Partial: clipWalk(out)},
				"edge %d on face %d boundary has no successor", current, f)
		}
		current = he.Next
		if current == start {
			return out, nil
		}
	}
}

// BoundaryLength returns the number of half-edges on the boundary of f.
func (d *Diagram[V, E, F]) BoundaryLength(f Face) (int, error) {
	edges, err := d.FaceEdges(f)
	if err != nil {
		return 0, err
	}
	return len(edges), nil
}

// PreviousEdge returns the unique half-edge p on the same face boundary
// with Next(p) == e, found by walking forward from Next(e).
//
// No predecessor pointer is maintained; the lookup is linear in the boundary
// length. Callers needing frequent predecessor lookups should cache results.
func (d *Diagram[V, E, F]) PreviousEdge(e Edge) (Edge, error) {
	he, err := d.topo(e)
	if err != nil {
		return NoEdge, err
	}
	if he.Next == NoEdge {
		return NoEdge, herrors.New(herrors.ErrCodeCorruptTopology,
			"edge %d has no successor; boundary is not closed", e)
	}

	var partial []Edge
	previous := he.Next
	for steps := 0; ; steps++ {
		if steps >= d.walkLimit {
			return NoEdge, d.walkFailed(he.Face, steps, partial)
		}
		phe, err := d.topo(previous)
		if err != nil {
			return NoEdge, herrors.Wrap(herrors.ErrCodeCorruptTopology, err,
				"boundary of edge %d references a removed edge", e)
		}
		if phe.Next == e {
			return previous, nil
		}
		if phe.Next == NoEdge {
			return NoEdge, herrors.Wrap(herrors.ErrCodeCorruptTopology,
				&WalkError{Face: phe.Face, Steps: steps, Partial: clipWalk(partial)},
				"edge %d on boundary of edge %d has no successor", previous, e)
		}
		if len(partial) < walkErrorPrefix {
			partial = append(partial, previous)
		}
		previous = phe.Next
	}
}

// AdjacentVertices returns the targets of all half-edges leaving v, in
// out-edge order. Duplicates are preserved when parallel edges exist.
func (d *Diagram[V, E, F]) AdjacentVertices(v Vertex) ([]Vertex, error) {
	out, err := d.g.OutEdges(v)
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "vertex %d", v)
	}
	verts := make([]Vertex, len(out))
	for i, e := range out {
		verts[i], _ = d.g.Target(e)
	}
	return verts, nil
}

// AdjacentFaces returns the distinct faces bordered by half-edges leaving v,
// in ascending index order. Edges with no face assigned are skipped.
func (d *Diagram[V, E, F]) AdjacentFaces(v Vertex) ([]Face, error) {
	out, err := d.g.OutEdges(v)
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "vertex %d", v)
	}
	seen := make(map[Face]struct{}, len(out))
	for _, e := range out {
		he, _ := d.g.EdgeData(e)
		if he.Face != NoFace {
			seen[he.Face] = struct{}{}
		}
	}
	faces := make([]Face, 0, len(seen))
	for f := range seen {
		faces = append(faces, f)
	}
	slices.Sort(faces)
	return faces, nil
}

// HasEdge reports whether at least one half-edge v1→v2 exists.
func (d *Diagram[V, E, F]) HasEdge(v1, v2 Vertex) bool {
	return d.g.HasEdge(v1, v2)
}

// FindEdge returns the first half-edge v1→v2 by handle order, if one exists.
func (d *Diagram[V, E, F]) FindEdge(v1, v2 Vertex) (Edge, bool) {
	return d.g.FindEdge(v1, v2)
}

func (d *Diagram[V, E, F]) walkFailed(f Face, steps int, partial []Edge) error {
	observability.Topology().OnWalkLimitExceeded(int(f), steps)
	return herrors.Wrap(herrors.ErrCodeCorruptTopology,
		&WalkError{Face: f, Steps: steps, Partial: clipWalk(partial)},
		"boundary walk exceeded limit of %d steps", d.walkLimit)
}

func clipWalk(walk []Edge) []Edge {
	if len(walk) > walkErrorPrefix {
		walk = walk[:walkErrorPrefix]
	}
	return slices.Clone(walk)
}
