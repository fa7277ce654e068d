package hedge

import (
	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/observability"
)

// Split describes the four half-edges produced by [Diagram.InsertVertex].
// E1 and E2 replace the split edge on its face; TwinE1 and TwinE2 replace
// its twin on the opposite face.
type Split struct {
	E1, E2         Edge
	TwinE1, TwinE2 Edge
}

// InsertVertex inserts the already-created vertex v into the interior of
// half-edge e and its twin, retiring both and producing four new half-edges:
//
//	                 face
//	                 e1   e2
//	prev → src  ───→ v ───→ trg → next
//	       tw_trg ←─ v ←─── tw_src ← twin_prev
//	                 te2  te1
//	                 twin_face
//
// The two new edges on one side pair with the two on the other side in
// reversed order (e1/te2 and e2/te1), because splitting swaps which half
// borders which neighbor. Both faces' reference edges are repaired, next
// chains are relinked on both boundaries, and the retired pair is removed
// from the graph store. The new edges inherit the face, scalar tag, and
// payload of the edge they replace.
//
// Preconditions: e must have a linked twin lying on a well-formed closed
// boundary, and v must be a live vertex. A twin whose endpoints do not
// mirror e's is reported as TOPOLOGY_INCONSISTENCY; an unclosed boundary
// surfaces as CORRUPT_TOPOLOGY from the predecessor lookup.
func (d *Diagram[V, E, F]) InsertVertex(v Vertex, e Edge) (Split, error) {
	var none Split

	if !d.g.HasVertex(v) {
		return none, herrors.New(herrors.ErrCodeInvalidHandle, "vertex %d not in graph", v)
	}
	he, err := d.topo(e)
	if err != nil {
		return none, err
	}
	if he.Twin == NoEdge {
		return none, herrors.New(herrors.ErrCodeTopologyInconsistency, "edge %d has no twin", e)
	}
	twin := he.Twin
	the, err := d.topo(twin)
	if err != nil {
		return none, herrors.Wrap(herrors.ErrCodeCorruptTopology, err, "twin of edge %d", e)
	}

	src, trg, _ := d.g.Endpoints(e)
	twinSrc, twinTrg, _ := d.g.Endpoints(twin)
	if src != twinTrg || trg != twinSrc {
		return none, herrors.New(herrors.ErrCodeTopologyInconsistency,
			"edge %d→%d and twin %d→%d do not share endpoints", src, trg, twinSrc, twinTrg)
	}

	face := he.Face
	twinFace := the.Face

	// Predecessors are looked up before the boundaries are touched.
	prev, err := d.PreviousEdge(e)
	if err != nil {
		return none, err
	}
	twinPrev, err := d.PreviousEdge(twin)
	if err != nil {
		return none, err
	}

	nextOld := he.Next
	twinNextOld := the.Next
	k, twinK := he.K, the.K
	data, twinData := he.Data, the.Data

	e1, err := d.AddEdge(src, v, data)
	if err != nil {
		return none, err
	}
	e2, err := d.AddEdge(v, trg, data)
	if err != nil {
		return none, err
	}
	te1, err := d.AddEdge(twinSrc, v, twinData)
	if err != nil {
		return none, err
	}
	te2, err := d.AddEdge(v, twinTrg, twinData)
	if err != nil {
		return none, err
	}

	he1, _ := d.g.EdgeData(e1)
	he2, _ := d.g.EdgeData(e2)
	the1, _ := d.g.EdgeData(te1)
	the2, _ := d.g.EdgeData(te2)

	// Preserve the left/right face link and the scalar tag.
	he1.Face, he2.Face = face, face
	he1.K, he2.K = k, k
	the1.Face, the2.Face = twinFace, twinFace
	the1.K, the2.K = twinK, twinK

	// Relink both boundaries. prev may equal twin (and twinPrev may equal
	// e) on two-edge cycles, so the retired edges' records are still live
	// here; their next pointers are about to be discarded with them.
	hePrev, _ := d.g.EdgeData(prev)
	hePrev.Next = e1
	he1.Next = e2
	he2.Next = nextOld

	heTwinPrev, _ := d.g.EdgeData(twinPrev)
	heTwinPrev.Next = te1
	the1.Next = te2
	the2.Next = twinNextOld

	// Twinning: the indices cross, see the diagram above.
	he1.Twin, the2.Twin = te2, e1
	he2.Twin, the1.Twin = te1, e2

	// Re-point both face references at a replacement half; the old
	// reference may have been one of the retired edges.
	if face != NoFace {
		d.faces[face].Edge = e1
	}
	if twinFace != NoFace {
		d.faces[twinFace].Edge = te1
	}

	_ = d.g.RemoveEdge(e)
	_ = d.g.RemoveEdge(twin)

	observability.Topology().OnSplit(int(face), int(twinFace))
	return Split{E1: e1, E2: e2, TwinE1: te1, TwinE2: te2}, nil
}

// DeleteVertex removes all half-edges incident to v, then removes v.
//
// Caveat: faces whose reference edge was among the removed half-edges are
// not repaired and are left pointing at a dangling reference. Callers must
// repair such references (for example with [Diagram.SetFaceEdge]) before
// deleting a vertex that is an endpoint of a face's reference edge.
func (d *Diagram[V, E, F]) DeleteVertex(v Vertex) error {
	if err := d.g.ClearVertex(v); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "vertex %d", v)
	}
	if err := d.g.RemoveVertex(v); err != nil {
		return herrors.Wrap(herrors.ErrCodeInternal, err, "remove vertex %d", v)
	}
	observability.Topology().OnDeleteVertex(int(v))
	return nil
}

// RemoveEdge removes one half-edge from the graph store.
//
// The next and face linkage of neighboring edges is not repaired; callers
// are responsible for relinking before removal, or accept a broken boundary.
func (d *Diagram[V, E, F]) RemoveEdge(e Edge) error {
	if err := d.g.RemoveEdge(e); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "edge %d", e)
	}
	return nil
}

// RemoveEdgeBetween removes the first half-edge v1→v2. Same caveats as
// [Diagram.RemoveEdge].
func (d *Diagram[V, E, F]) RemoveEdgeBetween(v1, v2 Vertex) error {
	e, ok := d.g.FindEdge(v1, v2)
	if !ok {
		return herrors.New(herrors.ErrCodeInvalidHandle, "no edge %d→%d", v1, v2)
	}
	return d.RemoveEdge(e)
}
