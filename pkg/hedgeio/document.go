package hedgeio

import (
	"github.com/google/uuid"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedge"
)

// Diagram is the metadata-carrying diagram instantiation used by the IO,
// store, and CLI layers.
type Diagram = hedge.Diagram[hedge.Metadata, hedge.Metadata, hedge.Metadata]

// Document pairs a diagram with a stable identifier used by the store and
// HTTP layers.
type Document struct {
	ID      string
	Diagram *Diagram
}

// NewDocument wraps a diagram in a document with a fresh random identifier.
func NewDocument(d *Diagram) *Document {
	return &Document{ID: uuid.NewString(), Diagram: d}
}

// wire-level records; handles are the exporting diagram's, -1 means unset.

type document struct {
	ID       string   `json:"id"`
	Vertices []vertex `json:"vertices"`
	Edges    []edge   `json:"edges"`
	Faces    []face   `json:"faces"`
}

type vertex struct {
	Handle int            `json:"handle"`
	Meta   hedge.Metadata `json:"meta,omitempty"`
}

type edge struct {
	Handle int            `json:"handle"`
	Source int            `json:"source"`
	Target int            `json:"target"`
	Twin   int            `json:"twin"`
	Next   int            `json:"next"`
	Face   int            `json:"face"`
	K      float64        `json:"k"`
	Meta   hedge.Metadata `json:"meta,omitempty"`
}

type face struct {
	Edge int            `json:"edge"`
	Meta hedge.Metadata `json:"meta,omitempty"`
}

func encode(doc *Document) (*document, error) {
	if doc.Diagram == nil {
		return nil, herrors.New(herrors.ErrCodeInvalidDocument, "document has no diagram")
	}
	if err := herrors.ValidateDocumentID(doc.ID); err != nil {
		return nil, err
	}
	d := doc.Diagram

	out := &document{
		ID:       doc.ID,
		Vertices: make([]vertex, 0, d.VertexCount()),
		Edges:    make([]edge, 0, d.EdgeCount()),
		Faces:    make([]face, 0, d.FaceCount()),
	}

	for _, v := range d.Vertices() {
		meta, err := d.VertexData(v)
		if err != nil {
			return nil, err
		}
		out.Vertices = append(out.Vertices, vertex{Handle: int(v), Meta: *meta})
	}

	for _, e := range d.Edges() {
		src, err := d.Source(e)
		if err != nil {
			return nil, err
		}
		trg, _ := d.Target(e)
		twin, _ := d.Twin(e)
		next, _ := d.Next(e)
		f, _ := d.FaceOf(e)
		k, _ := d.K(e)
		meta, _ := d.EdgeData(e)
		out.Edges = append(out.Edges, edge{
			Handle: int(e),
			Source: int(src),
			Target: int(trg),
			Twin:   int(twin),
			Next:   int(next),
			Face:   int(f),
			K:      k,
			Meta:   *meta,
		})
	}

	for _, f := range d.Faces() {
		ref, err := d.FaceEdgeRef(f)
		if err != nil {
			return nil, err
		}
		meta, _ := d.FaceData(f)
		out.Faces = append(out.Faces, face{Edge: int(ref), Meta: *meta})
	}

	return out, nil
}

// decode rebuilds a diagram from wire records. File handles are remapped to
// freshly issued ones; topology references are resolved in a second pass
// once every edge exists.
func decode(data *document, opts ...hedge.Option) (*Document, error) {
	if err := herrors.ValidateDocumentID(data.ID); err != nil {
		return nil, err
	}
	d := hedge.New[hedge.Metadata, hedge.Metadata, hedge.Metadata](opts...)

	vmap := make(map[int]hedge.Vertex, len(data.Vertices))
	for _, v := range data.Vertices {
		if _, dup := vmap[v.Handle]; dup {
			return nil, herrors.New(herrors.ErrCodeInvalidDocument, "duplicate vertex handle %d", v.Handle)
		}
		vmap[v.Handle] = d.AddVertex(v.Meta)
	}

	emap := make(map[int]hedge.Edge, len(data.Edges))
	for _, e := range data.Edges {
		if _, dup := emap[e.Handle]; dup {
			return nil, herrors.New(herrors.ErrCodeInvalidDocument, "duplicate edge handle %d", e.Handle)
		}
		src, ok := vmap[e.Source]
		if !ok {
			return nil, herrors.New(herrors.ErrCodeInvalidDocument,
				"edge %d references unknown vertex %d", e.Handle, e.Source)
		}
		trg, ok := vmap[e.Target]
		if !ok {
			return nil, herrors.New(herrors.ErrCodeInvalidDocument,
				"edge %d references unknown vertex %d", e.Handle, e.Target)
		}
		added, err := d.AddEdge(src, trg, e.Meta)
		if err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeInvalidDocument, err, "edge %d", e.Handle)
		}
		emap[e.Handle] = added
	}

	fmap := make(map[int]hedge.Face, len(data.Faces))
	for i, f := range data.Faces {
		fmap[i] = d.AddFace(f.Meta)
	}

	resolveEdge := func(handle int) (hedge.Edge, bool) {
		if handle < 0 {
			return hedge.NoEdge, true
		}
		e, ok := emap[handle]
		return e, ok
	}

	for _, e := range data.Edges {
		self := emap[e.Handle]

		twin, ok := resolveEdge(e.Twin)
		if !ok {
			return nil, herrors.New(herrors.ErrCodeInvalidDocument,
				"edge %d references unknown twin %d", e.Handle, e.Twin)
		}
		// Twins are mutual; link each unordered pair once.
		if twin != hedge.NoEdge && e.Handle < e.Twin {
			if err := d.LinkTwins(self, twin); err != nil {
				return nil, herrors.Wrap(herrors.ErrCodeInvalidDocument, err, "edge %d", e.Handle)
			}
		}

		next, ok := resolveEdge(e.Next)
		if !ok {
			return nil, herrors.New(herrors.ErrCodeInvalidDocument,
				"edge %d references unknown successor %d", e.Handle, e.Next)
		}
		if next != hedge.NoEdge {
			if err := d.SetNext(self, next); err != nil {
				return nil, herrors.Wrap(herrors.ErrCodeInvalidDocument, err, "edge %d", e.Handle)
			}
		}

		if e.Face >= 0 {
			f, ok := fmap[e.Face]
			if !ok {
				return nil, herrors.New(herrors.ErrCodeInvalidDocument,
					"edge %d references unknown face %d", e.Handle, e.Face)
			}
			if err := d.SetFace(self, f); err != nil {
				return nil, herrors.Wrap(herrors.ErrCodeInvalidDocument, err, "edge %d", e.Handle)
			}
		}
		if err := d.SetK(self, e.K); err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeInvalidDocument, err, "edge %d", e.Handle)
		}
	}

	for i, f := range data.Faces {
		ref, ok := resolveEdge(f.Edge)
		if !ok {
			return nil, herrors.New(herrors.ErrCodeInvalidDocument,
				"face %d references unknown edge %d", i, f.Edge)
		}
		if ref != hedge.NoEdge {
			if err := d.SetFaceEdge(fmap[i], ref); err != nil {
				return nil, herrors.Wrap(herrors.ErrCodeInvalidDocument, err, "face %d", i)
			}
		}
	}

	if err := d.Validate(); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidDocument, err, "document %s", data.ID)
	}

	return &Document{ID: data.ID, Diagram: d}, nil
}
