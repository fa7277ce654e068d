package hedge

import (
	"testing"

	herrors "github.com/matzehuels/hedi/pkg/errors"
)

func TestCloseCycle(t *testing.T) {
	d := New[string, string, string]()
	a := d.AddVertex("a")
	b := d.AddVertex("b")
	c := d.AddVertex("c")

	e1, _ := d.AddEdge(a, b, "")
	e2, _ := d.AddEdge(b, c, "")
	e3, _ := d.AddEdge(c, a, "")
	f := d.AddFace("f")

	if err := d.CloseCycle([]Edge{e1, e2, e3}, f, 1.5); err != nil {
		t.Fatalf("CloseCycle: %v", err)
	}

	wantNext := map[Edge]Edge{e1: e2, e2: e3, e3: e1}
	for e, want := range wantNext {
		if nx, _ := d.Next(e); nx != want {
			t.Errorf("Next(%d) = %d, want %d", e, nx, want)
		}
		if fc, _ := d.FaceOf(e); fc != f {
			t.Errorf("FaceOf(%d) = %d, want %d", e, fc, f)
		}
		if k, _ := d.K(e); k != 1.5 {
			t.Errorf("K(%d) = %v, want 1.5", e, k)
		}
	}

	if ref, _ := d.FaceEdgeRef(f); ref != e1 {
		t.Errorf("FaceEdgeRef = %d, want %d", ref, e1)
	}
	if n, _ := d.BoundaryLength(f); n != 3 {
		t.Errorf("BoundaryLength = %d, want 3", n)
	}
}

func TestCloseCycleSingleEdge(t *testing.T) {
	// A self-loop closes into a one-edge boundary.
	d := New[string, string, string]()
	a := d.AddVertex("a")
	loop, _ := d.AddEdge(a, a, "")
	f := d.AddFace("loop")

	if err := d.CloseCycle([]Edge{loop}, f, 0); err != nil {
		t.Fatalf("CloseCycle: %v", err)
	}
	if nx, _ := d.Next(loop); nx != loop {
		t.Errorf("Next(loop) = %d, want %d", nx, loop)
	}
	if n, _ := d.BoundaryLength(f); n != 1 {
		t.Errorf("BoundaryLength = %d, want 1", n)
	}
}

func TestChainLeavesLastOpen(t *testing.T) {
	d := New[string, string, string]()
	a := d.AddVertex("a")
	b := d.AddVertex("b")
	c := d.AddVertex("c")

	e1, _ := d.AddEdge(a, b, "")
	e2, _ := d.AddEdge(b, c, "")
	f := d.AddFace("f")

	if err := d.Chain([]Edge{e1, e2}, f, 2); err != nil {
		t.Fatalf("Chain: %v", err)
	}

	if nx, _ := d.Next(e1); nx != e2 {
		t.Errorf("Next(e1) = %d, want %d", nx, e2)
	}
	if nx, _ := d.Next(e2); nx != NoEdge {
		t.Errorf("Next(e2) = %d, want NoEdge", nx)
	}
	for _, e := range []Edge{e1, e2} {
		if fc, _ := d.FaceOf(e); fc != f {
			t.Errorf("FaceOf(%d) = %d, want %d", e, fc, f)
		}
		if k, _ := d.K(e); k != 2 {
			t.Errorf("K(%d) = %v, want 2", e, k)
		}
	}
	if ref, _ := d.FaceEdgeRef(f); ref != e1 {
		t.Errorf("FaceEdgeRef = %d, want %d", ref, e1)
	}
}

func TestLinkChain(t *testing.T) {
	d := New[string, string, string]()
	a := d.AddVertex("a")
	b := d.AddVertex("b")
	c := d.AddVertex("c")

	e1, _ := d.AddEdge(a, b, "")
	e2, _ := d.AddEdge(b, c, "")

	if err := d.LinkChain([]Edge{e1, e2}); err != nil {
		t.Fatalf("LinkChain: %v", err)
	}
	if nx, _ := d.Next(e1); nx != e2 {
		t.Errorf("Next(e1) = %d, want %d", nx, e2)
	}
	// Face and k stay untouched.
	if fc, _ := d.FaceOf(e1); fc != NoFace {
		t.Errorf("FaceOf(e1) = %d, want NoFace", fc)
	}
	if k, _ := d.K(e1); k != 0 {
		t.Errorf("K(e1) = %v, want 0", k)
	}
}

func TestBuilderErrors(t *testing.T) {
	d := New[string, string, string]()
	a := d.AddVertex("a")
	b := d.AddVertex("b")
	c := d.AddVertex("c")

	ab, _ := d.AddEdge(a, b, "")
	ca, _ := d.AddEdge(c, a, "")
	f := d.AddFace("f")

	tests := []struct {
		name     string
		err      error
		wantCode herrors.Code
	}{
		{"empty list", d.CloseCycle(nil, f, 0), herrors.ErrCodeInvalidInput},
		{"stale face", d.CloseCycle([]Edge{ab}, Face(99), 0), herrors.ErrCodeInvalidHandle},
		{"disconnected", d.Chain([]Edge{ab, ca}, f, 0), herrors.ErrCodeTopologyInconsistency},
		{"stale edge", d.LinkChain([]Edge{ab, Edge(99)}), herrors.ErrCodeInvalidHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !herrors.Is(tt.err, tt.wantCode) {
				t.Errorf("err = %v, want %s", tt.err, tt.wantCode)
			}
		})
	}
}
