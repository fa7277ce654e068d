package hedge

import (
	"slices"
	"testing"

	herrors "github.com/matzehuels/hedi/pkg/errors"
)

func TestInsertVertex(t *testing.T) {
	tr := buildTriangle(t)
	v := tr.d.AddVertex("v")

	sp, err := tr.d.InsertVertex(v, tr.ab)
	if err != nil {
		t.Fatalf("InsertVertex: %v", err)
	}

	// Both boundaries grow by one edge.
	if n, _ := tr.d.BoundaryLength(tr.inner); n != 4 {
		t.Errorf("interior boundary length = %d, want 4", n)
	}
	if n, _ := tr.d.BoundaryLength(tr.out); n != 4 {
		t.Errorf("outer boundary length = %d, want 4", n)
	}

	// The inserted vertex sits between the split endpoints.
	if got := tr.d.OutDegree(v); got != 2 {
		t.Errorf("OutDegree(v) = %d, want 2", got)
	}
	if got := tr.d.Degree(v); got != 4 {
		t.Errorf("Degree(v) = %d, want 4", got)
	}

	// Replacement edges run src→v→trg on the original face and
	// twinSrc→v→twinTrg on the opposite face.
	checkEndpoints := func(e Edge, src, trg Vertex) {
		t.Helper()
		s, _ := tr.d.Source(e)
		g, _ := tr.d.Target(e)
		if s != src || g != trg {
			t.Errorf("edge %d runs %d→%d, want %d→%d", e, s, g, src, trg)
		}
	}
	checkEndpoints(sp.E1, tr.a, v)
	checkEndpoints(sp.E2, v, tr.b)
	checkEndpoints(sp.TwinE1, tr.b, v)
	checkEndpoints(sp.TwinE2, v, tr.a)

	// Twins cross: e1/te2 and e2/te1.
	if tw, _ := tr.d.Twin(sp.E1); tw != sp.TwinE2 {
		t.Errorf("Twin(E1) = %d, want %d", tw, sp.TwinE2)
	}
	if tw, _ := tr.d.Twin(sp.E2); tw != sp.TwinE1 {
		t.Errorf("Twin(E2) = %d, want %d", tw, sp.TwinE1)
	}

	// Face and scalar tag carry over from the retired pair.
	if f, _ := tr.d.FaceOf(sp.E1); f != tr.inner {
		t.Errorf("FaceOf(E1) = %d, want %d", f, tr.inner)
	}
	if f, _ := tr.d.FaceOf(sp.TwinE1); f != tr.out {
		t.Errorf("FaceOf(TwinE1) = %d, want %d", f, tr.out)
	}
	if k, _ := tr.d.K(sp.E1); k != 1 {
		t.Errorf("K(E1) = %v, want 1", k)
	}
	if k, _ := tr.d.K(sp.TwinE2); k != -1 {
		t.Errorf("K(TwinE2) = %v, want -1", k)
	}

	// Face references point at the replacement edges.
	if ref, _ := tr.d.FaceEdgeRef(tr.inner); ref != sp.E1 {
		t.Errorf("FaceEdgeRef(interior) = %d, want %d", ref, sp.E1)
	}
	if ref, _ := tr.d.FaceEdgeRef(tr.out); ref != sp.TwinE1 {
		t.Errorf("FaceEdgeRef(outer) = %d, want %d", ref, sp.TwinE1)
	}

	// The retired pair is gone.
	if _, err := tr.d.EdgeData(tr.ab); !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
		t.Errorf("retired edge lookup: err = %v, want INVALID_HANDLE", err)
	}
	if _, err := tr.d.EdgeData(tr.ba); !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
		t.Errorf("retired twin lookup: err = %v, want INVALID_HANDLE", err)
	}

	// The whole structure is still consistent.
	if err := tr.d.Validate(); err != nil {
		t.Errorf("Validate after split: %v", err)
	}

	// Boundary order: prev → e1 → e2 → old next.
	edges, err := tr.d.FaceEdges(tr.inner)
	if err != nil {
		t.Fatalf("FaceEdges: %v", err)
	}
	want := []Edge{sp.E1, sp.E2, tr.bc, tr.ca}
	if !slices.Equal(edges, want) {
		t.Errorf("interior boundary = %v, want %v", edges, want)
	}
}

func TestInsertVertexRepeated(t *testing.T) {
	tr := buildTriangle(t)

	// Splitting the same side twice keeps the structure consistent.
	v1 := tr.d.AddVertex("v1")
	sp, err := tr.d.InsertVertex(v1, tr.ab)
	if err != nil {
		t.Fatalf("first InsertVertex: %v", err)
	}
	v2 := tr.d.AddVertex("v2")
	if _, err := tr.d.InsertVertex(v2, sp.E2); err != nil {
		t.Fatalf("second InsertVertex: %v", err)
	}

	if n, _ := tr.d.BoundaryLength(tr.inner); n != 5 {
		t.Errorf("interior boundary length = %d, want 5", n)
	}
	if err := tr.d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestInsertVertexPreconditions(t *testing.T) {
	tr := buildTriangle(t)
	v := tr.d.AddVertex("v")

	t.Run("stale vertex", func(t *testing.T) {
		_, err := tr.d.InsertVertex(Vertex(99), tr.ab)
		if !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
			t.Errorf("err = %v, want INVALID_HANDLE", err)
		}
	})

	t.Run("stale edge", func(t *testing.T) {
		_, err := tr.d.InsertVertex(v, Edge(99))
		if !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
			t.Errorf("err = %v, want INVALID_HANDLE", err)
		}
	})

	t.Run("no twin", func(t *testing.T) {
		d := New[string, string, string]()
		a := d.AddVertex("a")
		b := d.AddVertex("b")
		w := d.AddVertex("w")
		ab, _ := d.AddEdge(a, b, "")

		_, err := d.InsertVertex(w, ab)
		if !herrors.Is(err, herrors.ErrCodeTopologyInconsistency) {
			t.Errorf("err = %v, want TOPOLOGY_INCONSISTENCY", err)
		}
	})
}

func TestDeleteVertex(t *testing.T) {
	tr := buildTriangle(t)

	// DeleteVertex does not repair neighboring boundaries or face
	// references; only the removal itself is checked here.
	if err := tr.d.DeleteVertex(tr.a); err != nil {
		t.Fatalf("DeleteVertex: %v", err)
	}

	if tr.d.HasVertex(tr.a) {
		t.Error("vertex still live after DeleteVertex")
	}
	if got := tr.d.VertexCount(); got != 2 {
		t.Errorf("VertexCount = %d, want 2", got)
	}
	// All four half-edges incident to a are gone with it.
	if got := tr.d.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d, want 2", got)
	}

	if err := tr.d.DeleteVertex(tr.a); !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
		t.Errorf("second delete: err = %v, want INVALID_HANDLE", err)
	}
}

func TestRemoveEdge(t *testing.T) {
	tr := buildTriangle(t)

	if err := tr.d.RemoveEdge(tr.ab); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if _, err := tr.d.EdgeData(tr.ab); !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
		t.Errorf("removed edge lookup: err = %v, want INVALID_HANDLE", err)
	}
	if err := tr.d.RemoveEdge(tr.ab); !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
		t.Errorf("second remove: err = %v, want INVALID_HANDLE", err)
	}
}

func TestRemoveEdgeBetween(t *testing.T) {
	tr := buildTriangle(t)

	if err := tr.d.RemoveEdgeBetween(tr.a, tr.b); err != nil {
		t.Fatalf("RemoveEdgeBetween: %v", err)
	}
	if tr.d.HasEdge(tr.a, tr.b) {
		t.Error("edge a→b still present")
	}
	// The reverse half-edge is untouched.
	if !tr.d.HasEdge(tr.b, tr.a) {
		t.Error("edge b→a removed too")
	}

	if err := tr.d.RemoveEdgeBetween(tr.a, tr.b); !herrors.Is(err, herrors.ErrCodeInvalidHandle) {
		t.Errorf("missing edge: err = %v, want INVALID_HANDLE", err)
	}
}
