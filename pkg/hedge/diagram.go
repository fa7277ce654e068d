package hedge

import (
	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/multigraph"
)

// Vertex is an opaque handle to a diagram vertex, issued by the underlying
// graph store and never reused.
type Vertex = multigraph.Vertex

// Edge is an opaque handle to a directed half-edge.
type Edge = multigraph.Edge

// Face identifies a face by its dense, append-only index. Face indices are
// issued by [Diagram.AddFace] starting at 0 and are never reused or
// renumbered.
type Face int

// Sentinels for unset topology references.
const (
	NoEdge Edge = -1
	NoFace Face = -1
)

// Metadata stores arbitrary key-value pairs attached to vertices, edges, or
// faces. It is the payload type used by the IO layer; library callers may
// use any payload type instead.
type Metadata = map[string]any

// DefaultWalkLimit caps boundary walks. A well-formed boundary closes long
// before this; exceeding it means the next chain is corrupt.
const DefaultWalkLimit = 3_000_000

// halfEdge is the topology record attached to every directed edge in the
// graph store, alongside the caller's payload.
type halfEdge[E any] struct {
	Twin Edge
	Next Edge
	Face Face
	K    float64
	Data E
}

// faceRec is the per-face record: one reference half-edge on the boundary
// plus the caller's payload.
type faceRec[F any] struct {
	Edge Edge
	Data F
}

// Diagram is a half-edge diagram generic over vertex, edge, and face payload
// types. The zero value is not usable - use [New].
//
// Diagram is not safe for concurrent mutation.
type Diagram[V, E, F any] struct {
	g         *multigraph.Graph[V, halfEdge[E]]
	faces     []faceRec[F]
	walkLimit int
}

// Option configures a Diagram at construction time.
type Option func(*options)

type options struct {
	walkLimit int
}

// WithWalkLimit overrides the boundary-walk safety bound.
// Values below 1 are ignored.
func WithWalkLimit(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.walkLimit = n
		}
	}
}

// New creates an empty diagram.
func New[V, E, F any](opts ...Option) *Diagram[V, E, F] {
	o := options{walkLimit: DefaultWalkLimit}
	for _, opt := range opts {
		opt(&o)
	}
	return &Diagram[V, E, F]{
		g:         multigraph.New[V, halfEdge[E]](),
		walkLimit: o.walkLimit,
	}
}

// WalkLimit returns the boundary-walk safety bound.
func (d *Diagram[V, E, F]) WalkLimit() int { return d.walkLimit }

// AddVertex adds a vertex carrying the given payload. No topology invariant
// is touched.
func (d *Diagram[V, E, F]) AddVertex(data V) Vertex {
	return d.g.AddVertex(data)
}

// AddEdge creates one directed half-edge src→dst. Its twin, next, and face
// references are left unset - the caller must complete them with
// [Diagram.LinkTwins], [Diagram.SetNext], and the cycle builders. Prefer
// [Diagram.AddTwinPair] when both directions are needed.
func (d *Diagram[V, E, F]) AddEdge(src, dst Vertex, data E) (Edge, error) {
	e, err := d.g.AddEdge(src, dst, halfEdge[E]{Twin: NoEdge, Next: NoEdge, Face: NoFace, Data: data})
	if err != nil {
		return NoEdge, herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "add edge %d→%d", src, dst)
	}
	return e, nil
}

// AddTwinPair creates src→dst and dst→src and links them as twins.
func (d *Diagram[V, E, F]) AddTwinPair(src, dst Vertex, dataOut, dataIn E) (out, in Edge, err error) {
	out, err = d.AddEdge(src, dst, dataOut)
	if err != nil {
		return NoEdge, NoEdge, err
	}
	in, err = d.AddEdge(dst, src, dataIn)
	if err != nil {
		return NoEdge, NoEdge, err
	}
	if err := d.LinkTwins(out, in); err != nil {
		return NoEdge, NoEdge, err
	}
	return out, in, nil
}

// LinkTwins makes e1 the twin of e2 and vice versa.
//
// The edges must share endpoints in crossed orientation:
// Target(e1) == Source(e2) and Source(e1) == Target(e2). A violation means
// the caller passed an already-broken structure and is reported as a
// TOPOLOGY_INCONSISTENCY error; the operation refuses to proceed.
func (d *Diagram[V, E, F]) LinkTwins(e1, e2 Edge) error {
	s1, t1, err := d.g.Endpoints(e1)
	if err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "edge %d", e1)
	}
	s2, t2, err := d.g.Endpoints(e2)
	if err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "edge %d", e2)
	}
	if t1 != s2 || s1 != t2 {
		return herrors.New(herrors.ErrCodeTopologyInconsistency,
			"cannot twin %d→%d with %d→%d: endpoints must be crossed", s1, t1, s2, t2)
	}
	he1, _ := d.g.EdgeData(e1)
	he2, _ := d.g.EdgeData(e2)
	he1.Twin = e2
	he2.Twin = e1
	return nil
}

// SetNext makes e2 the successor of e1 on its face boundary.
//
// The edges must be connected: Target(e1) == Source(e2). A violation is
// reported as a TOPOLOGY_INCONSISTENCY error.
func (d *Diagram[V, E, F]) SetNext(e1, e2 Edge) error {
	_, t1, err := d.g.Endpoints(e1)
	if err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "edge %d", e1)
	}
	s2, _, err := d.g.Endpoints(e2)
	if err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "edge %d", e2)
	}
	if t1 != s2 {
		return herrors.New(herrors.ErrCodeTopologyInconsistency,
			"cannot chain edge %d (target %d) to edge %d (source %d)", e1, t1, e2, s2)
	}
	he1, _ := d.g.EdgeData(e1)
	he1.Next = e2
	return nil
}

// AddFace appends a new face with no reference edge set and returns its
// dense index. Faces are never removed.
func (d *Diagram[V, E, F]) AddFace(data F) Face {
	d.faces = append(d.faces, faceRec[F]{Edge: NoEdge, Data: data})
	return Face(len(d.faces) - 1)
}

// SetFaceEdge sets the face's reference half-edge.
func (d *Diagram[V, E, F]) SetFaceEdge(f Face, e Edge) error {
	if !d.hasFace(f) {
		return herrors.New(herrors.ErrCodeInvalidHandle, "face %d not in diagram", f)
	}
	if _, ok := d.g.EdgeData(e); !ok {
		return herrors.New(herrors.ErrCodeInvalidHandle, "edge %d not in graph", e)
	}
	d.faces[f].Edge = e
	return nil
}

// FaceEdgeRef returns the face's reference half-edge, or NoEdge if it has
// not been set yet.
func (d *Diagram[V, E, F]) FaceEdgeRef(f Face) (Edge, error) {
	if !d.hasFace(f) {
		return NoEdge, herrors.New(herrors.ErrCodeInvalidHandle, "face %d not in diagram", f)
	}
	return d.faces[f].Edge, nil
}

// Twin returns the twin of e, or NoEdge if it has not been linked yet.
func (d *Diagram[V, E, F]) Twin(e Edge) (Edge, error) {
	he, err := d.topo(e)
	if err != nil {
		return NoEdge, err
	}
	return he.Twin, nil
}

// Next returns the successor of e on its face boundary, or NoEdge if it has
// not been chained yet.
func (d *Diagram[V, E, F]) Next(e Edge) (Edge, error) {
	he, err := d.topo(e)
	if err != nil {
		return NoEdge, err
	}
	return he.Next, nil
}

// FaceOf returns the face to the left of e, or NoFace if unassigned.
func (d *Diagram[V, E, F]) FaceOf(e Edge) (Face, error) {
	he, err := d.topo(e)
	if err != nil {
		return NoFace, err
	}
	return he.Face, nil
}

// SetFace assigns f as the face to the left of e. Pass NoFace to clear.
func (d *Diagram[V, E, F]) SetFace(e Edge, f Face) error {
	if f != NoFace && !d.hasFace(f) {
		return herrors.New(herrors.ErrCodeInvalidHandle, "face %d not in diagram", f)
	}
	he, err := d.topo(e)
	if err != nil {
		return err
	}
	he.Face = f
	return nil
}

// K returns the caller-defined scalar tag of e.
func (d *Diagram[V, E, F]) K(e Edge) (float64, error) {
	he, err := d.topo(e)
	if err != nil {
		return 0, err
	}
	return he.K, nil
}

// SetK sets the caller-defined scalar tag of e.
func (d *Diagram[V, E, F]) SetK(e Edge, k float64) error {
	he, err := d.topo(e)
	if err != nil {
		return err
	}
	he.K = k
	return nil
}

// Source returns the source vertex of e.
func (d *Diagram[V, E, F]) Source(e Edge) (Vertex, error) {
	v, err := d.g.Source(e)
	if err != nil {
		return 0, herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "edge %d", e)
	}
	return v, nil
}

// Target returns the target vertex of e.
func (d *Diagram[V, E, F]) Target(e Edge) (Vertex, error) {
	v, err := d.g.Target(e)
	if err != nil {
		return 0, herrors.Wrap(herrors.ErrCodeInvalidHandle, err, "edge %d", e)
	}
	return v, nil
}

// VertexData returns a pointer to the payload of v.
func (d *Diagram[V, E, F]) VertexData(v Vertex) (*V, error) {
	data, ok := d.g.VertexData(v)
	if !ok {
		return nil, herrors.New(herrors.ErrCodeInvalidHandle, "vertex %d not in graph", v)
	}
	return data, nil
}

// EdgeData returns a pointer to the caller payload of e.
func (d *Diagram[V, E, F]) EdgeData(e Edge) (*E, error) {
	he, err := d.topo(e)
	if err != nil {
		return nil, err
	}
	return &he.Data, nil
}

// FaceData returns a pointer to the payload of f.
func (d *Diagram[V, E, F]) FaceData(f Face) (*F, error) {
	if !d.hasFace(f) {
		return nil, herrors.New(herrors.ErrCodeInvalidHandle, "face %d not in diagram", f)
	}
	return &d.faces[f].Data, nil
}

// Vertices returns all vertex handles in ascending order.
func (d *Diagram[V, E, F]) Vertices() []Vertex { return d.g.Vertices() }

// Edges returns all half-edge handles in ascending order.
func (d *Diagram[V, E, F]) Edges() []Edge { return d.g.Edges() }

// Faces returns all face indices in ascending order.
func (d *Diagram[V, E, F]) Faces() []Face {
	fs := make([]Face, len(d.faces))
	for i := range fs {
		fs[i] = Face(i)
	}
	return fs
}

// VertexCount returns the number of live vertices.
func (d *Diagram[V, E, F]) VertexCount() int { return d.g.VertexCount() }

// EdgeCount returns the number of live half-edges.
func (d *Diagram[V, E, F]) EdgeCount() int { return d.g.EdgeCount() }

// FaceCount returns the number of faces ever created.
func (d *Diagram[V, E, F]) FaceCount() int { return len(d.faces) }

// Degree returns the total number of half-edges incident to v.
func (d *Diagram[V, E, F]) Degree(v Vertex) int { return d.g.Degree(v) }

// OutDegree returns the number of half-edges leaving v.
func (d *Diagram[V, E, F]) OutDegree(v Vertex) int { return d.g.OutDegree(v) }

// HasVertex reports whether the handle refers to a live vertex.
func (d *Diagram[V, E, F]) HasVertex(v Vertex) bool { return d.g.HasVertex(v) }

func (d *Diagram[V, E, F]) hasFace(f Face) bool {
	return f >= 0 && int(f) < len(d.faces)
}

// topo returns the topology record of e, converting a stale handle into an
// INVALID_HANDLE error.
func (d *Diagram[V, E, F]) topo(e Edge) (*halfEdge[E], error) {
	he, ok := d.g.EdgeData(e)
	if !ok {
		return nil, herrors.New(herrors.ErrCodeInvalidHandle, "edge %d not in graph", e)
	}
	return he, nil
}
