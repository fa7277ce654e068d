package hedge

import (
	herrors "github.com/matzehuels/hedi/pkg/errors"
)

// Validate sweeps the whole diagram and returns the first invariant
// violation found, or nil if the structure is consistent:
//
//   - every half-edge has a twin, twins are mutual, and their endpoints are
//     crossed
//   - every half-edge has a successor on the same face
//   - every face has a reference edge whose boundary closes into a finite
//     cycle of edges all bordering that face
//
// Violations are reported as TOPOLOGY_INCONSISTENCY or CORRUPT_TOPOLOGY
// errors. Validate never mutates the diagram; repair is a caller concern.
func (d *Diagram[V, E, F]) Validate() error {
	for _, e := range d.g.Edges() {
		if err := d.validateEdge(e); err != nil {
			return err
		}
	}
	for f := range d.faces {
		if _, err := d.FaceEdges(Face(f)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Diagram[V, E, F]) validateEdge(e Edge) error {
	he, _ := d.g.EdgeData(e)

	if he.Twin == NoEdge {
		return herrors.New(herrors.ErrCodeTopologyInconsistency, "edge %d has no twin", e)
	}
	the, ok := d.g.EdgeData(he.Twin)
	if !ok {
		return herrors.New(herrors.ErrCodeCorruptTopology, "twin of edge %d was removed", e)
	}
	if the.Twin != e {
		return herrors.New(herrors.ErrCodeTopologyInconsistency,
			"twin link of edge %d is not mutual (twin %d points at %d)", e, he.Twin, the.Twin)
	}

	src, trg, _ := d.g.Endpoints(e)
	tsrc, ttrg, _ := d.g.Endpoints(he.Twin)
	if src != ttrg || trg != tsrc {
		return herrors.New(herrors.ErrCodeTopologyInconsistency,
			"edge %d→%d and twin %d→%d do not share endpoints", src, trg, tsrc, ttrg)
	}

	if he.Next == NoEdge {
		return herrors.New(herrors.ErrCodeTopologyInconsistency, "edge %d has no successor", e)
	}
	nhe, ok := d.g.EdgeData(he.Next)
	if !ok {
		return herrors.New(herrors.ErrCodeCorruptTopology, "successor of edge %d was removed", e)
	}
	if nhe.Face != he.Face {
		return herrors.New(herrors.ErrCodeTopologyInconsistency,
			"next link of edge %d crosses from face %d to face %d", e, he.Face, nhe.Face)
	}
	nsrc, _, _ := d.g.Endpoints(he.Next)
	if trg != nsrc {
		return herrors.New(herrors.ErrCodeTopologyInconsistency,
			"edge %d (target %d) chains to edge %d (source %d)", e, trg, he.Next, nsrc)
	}
	return nil
}
