package hedge

import (
	herrors "github.com/matzehuels/hedi/pkg/errors"
)

// CloseCycle wires the given edges into a closed face boundary:
// next(edges[i]) = edges[i+1], wrapping the last edge back to the first.
// Every edge is tagged with the face and scalar k, and the face's reference
// edge is set to the first element.
//
// The edges must be listed in traversal order - each edge's target is the
// next edge's source - or the underlying [Diagram.SetNext] precondition
// fails with TOPOLOGY_INCONSISTENCY.
func (d *Diagram[V, E, F]) CloseCycle(edges []Edge, f Face, k float64) error {
	return d.wireChain(edges, f, k, true)
}

// Chain is [Diagram.CloseCycle] without the final wrap: the last edge's
// next pointer is left untouched. Used when a boundary is assembled
// incrementally before being closed by a later call, or never closed if the
// chain is a fragment.
func (d *Diagram[V, E, F]) Chain(edges []Edge, f Face, k float64) error {
	return d.wireChain(edges, f, k, false)
}

// LinkChain wires only the next pointers of an open chain, leaving face
// references and scalar tags alone.
func (d *Diagram[V, E, F]) LinkChain(edges []Edge) error {
	for i := 0; i+1 < len(edges); i++ {
		if err := d.SetNext(edges[i], edges[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Diagram[V, E, F]) wireChain(edges []Edge, f Face, k float64, close bool) error {
	if len(edges) == 0 {
		return herrors.New(herrors.ErrCodeInvalidInput, "edge list is empty")
	}
	if !d.hasFace(f) {
		return herrors.New(herrors.ErrCodeInvalidHandle, "face %d not in diagram", f)
	}

	for i, e := range edges {
		if i+1 < len(edges) {
			if err := d.SetNext(e, edges[i+1]); err != nil {
				return err
			}
		} else if close {
			if err := d.SetNext(e, edges[0]); err != nil {
				return err
			}
		}
		he, err := d.topo(e)
		if err != nil {
			return err
		}
		he.Face = f
		he.K = k
	}

	d.faces[f].Edge = edges[0]
	return nil
}
