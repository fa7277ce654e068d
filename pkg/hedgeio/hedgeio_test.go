package hedgeio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedge"
)

// buildDiagram returns a triangle with two closed faces and metadata on one
// element of each kind.
func buildDiagram(t *testing.T) *Diagram {
	t.Helper()
	d := hedge.New[hedge.Metadata, hedge.Metadata, hedge.Metadata]()

	a := d.AddVertex(hedge.Metadata{"label": "a"})
	b := d.AddVertex(nil)
	c := d.AddVertex(nil)

	ab, ba, err := d.AddTwinPair(a, b, hedge.Metadata{"weight": 2.5}, nil)
	if err != nil {
		t.Fatalf("AddTwinPair: %v", err)
	}
	bc, cb, err := d.AddTwinPair(b, c, nil, nil)
	if err != nil {
		t.Fatalf("AddTwinPair: %v", err)
	}
	ca, ac, err := d.AddTwinPair(c, a, nil, nil)
	if err != nil {
		t.Fatalf("AddTwinPair: %v", err)
	}

	inner := d.AddFace(hedge.Metadata{"name": "interior"})
	outer := d.AddFace(nil)

	if err := d.CloseCycle([]hedge.Edge{ab, bc, ca}, inner, 1); err != nil {
		t.Fatalf("CloseCycle: %v", err)
	}
	if err := d.CloseCycle([]hedge.Edge{ac, cb, ba}, outer, -1); err != nil {
		t.Fatalf("CloseCycle: %v", err)
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	doc := NewDocument(buildDiagram(t))

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got.ID != doc.ID {
		t.Errorf("ID = %q, want %q", got.ID, doc.ID)
	}
	d := got.Diagram
	if d.VertexCount() != 3 || d.EdgeCount() != 6 || d.FaceCount() != 2 {
		t.Errorf("counts = %d/%d/%d, want 3/6/2",
			d.VertexCount(), d.EdgeCount(), d.FaceCount())
	}
	for _, f := range d.Faces() {
		n, err := d.BoundaryLength(f)
		if err != nil {
			t.Fatalf("BoundaryLength(%d): %v", f, err)
		}
		if n != 3 {
			t.Errorf("BoundaryLength(%d) = %d, want 3", f, n)
		}
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// Metadata survives the round trip.
	v0 := d.Vertices()[0]
	meta, _ := d.VertexData(v0)
	if (*meta)["label"] != "a" {
		t.Errorf("vertex meta = %v, want label=a", *meta)
	}
	fmeta, _ := d.FaceData(hedge.Face(0))
	if (*fmeta)["name"] != "interior" {
		t.Errorf("face meta = %v, want name=interior", *fmeta)
	}
	e0 := d.Edges()[0]
	emeta, _ := d.EdgeData(e0)
	if (*emeta)["weight"] != 2.5 {
		t.Errorf("edge meta = %v, want weight=2.5", *emeta)
	}
	if k, _ := d.K(e0); k != 1 {
		t.Errorf("K = %v, want 1", k)
	}
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	doc := NewDocument(buildDiagram(t))

	b, err := MarshalDocument(doc)
	if err != nil {
		t.Fatalf("MarshalDocument: %v", err)
	}
	got, err := UnmarshalDocument(b)
	if err != nil {
		t.Fatalf("UnmarshalDocument: %v", err)
	}
	if got.ID != doc.ID || got.Diagram.EdgeCount() != 6 {
		t.Errorf("round trip = %q/%d edges, want %q/6", got.ID, got.Diagram.EdgeCount(), doc.ID)
	}
}

func TestExportImportFile(t *testing.T) {
	doc := NewDocument(buildDiagram(t))
	path := filepath.Join(t.TempDir(), "triangle.json")

	if err := ExportJSON(doc, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.ID != doc.ID {
		t.Errorf("ID = %q, want %q", got.ID, doc.ID)
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !herrors.Is(err, herrors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode herrors.Code
	}{
		{
			name:     "malformed json",
			input:    `{"id": "x", "vertices": [`,
			wantCode: herrors.ErrCodeInvalidFormat,
		},
		{
			name:     "bad id",
			input:    `{"id": "../escape", "vertices": [], "edges": [], "faces": []}`,
			wantCode: herrors.ErrCodeInvalidDocument,
		},
		{
			name: "dangling vertex reference",
			input: `{"id": "doc", "vertices": [{"handle": 0}],
				"edges": [{"handle": 0, "source": 0, "target": 7, "twin": -1, "next": -1, "face": -1, "k": 0}],
				"faces": []}`,
			wantCode: herrors.ErrCodeInvalidDocument,
		},
		{
			name: "duplicate edge handle",
			input: `{"id": "doc", "vertices": [{"handle": 0}, {"handle": 1}],
				"edges": [
					{"handle": 0, "source": 0, "target": 1, "twin": -1, "next": -1, "face": -1, "k": 0},
					{"handle": 0, "source": 1, "target": 0, "twin": -1, "next": -1, "face": -1, "k": 0}
				],
				"faces": []}`,
			wantCode: herrors.ErrCodeInvalidDocument,
		},
		{
			name: "inconsistent topology",
			input: `{"id": "doc", "vertices": [{"handle": 0}, {"handle": 1}],
				"edges": [{"handle": 0, "source": 0, "target": 1, "twin": -1, "next": -1, "face": -1, "k": 0}],
				"faces": []}`,
			wantCode: herrors.ErrCodeInvalidDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !herrors.Is(err, tt.wantCode) {
				t.Errorf("err = %v, want %s", err, tt.wantCode)
			}
		})
	}
}
