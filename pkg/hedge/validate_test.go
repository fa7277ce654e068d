package hedge

import (
	"testing"

	herrors "github.com/matzehuels/hedi/pkg/errors"
)

func TestValidateConsistent(t *testing.T) {
	tr := buildTriangle(t)
	if err := tr.d.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}

	// Empty diagrams are trivially consistent.
	if err := New[string, string, string]().Validate(); err != nil {
		t.Errorf("Validate(empty) = %v, want nil", err)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name     string
		corrupt  func(t *testing.T, tr *triangle)
		wantCode herrors.Code
	}{
		{
			name: "missing twin",
			corrupt: func(t *testing.T, tr *triangle) {
				he, _ := tr.d.topo(tr.ab)
				he.Twin = NoEdge
			},
			wantCode: herrors.ErrCodeTopologyInconsistency,
		},
		{
			name: "non-mutual twin",
			corrupt: func(t *testing.T, tr *triangle) {
				he, _ := tr.d.topo(tr.ba)
				he.Twin = tr.cb
			},
			wantCode: herrors.ErrCodeTopologyInconsistency,
		},
		{
			name: "twin removed",
			corrupt: func(t *testing.T, tr *triangle) {
				if err := tr.d.g.RemoveEdge(tr.ba); err != nil {
					t.Fatalf("RemoveEdge: %v", err)
				}
			},
			wantCode: herrors.ErrCodeCorruptTopology,
		},
		{
			name: "missing successor",
			corrupt: func(t *testing.T, tr *triangle) {
				he, _ := tr.d.topo(tr.bc)
				he.Next = NoEdge
			},
			wantCode: herrors.ErrCodeTopologyInconsistency,
		},
		{
			name: "successor on other face",
			corrupt: func(t *testing.T, tr *triangle) {
				he, _ := tr.d.topo(tr.ab)
				he.Next = tr.ba
			},
			wantCode: herrors.ErrCodeTopologyInconsistency,
		},
		{
			name: "unset face reference",
			corrupt: func(t *testing.T, tr *triangle) {
				tr.d.faces[tr.inner].Edge = NoEdge
			},
			wantCode: herrors.ErrCodeTopologyInconsistency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := buildTriangle(t)
			tt.corrupt(t, tr)

			err := tr.d.Validate()
			if !herrors.Is(err, tt.wantCode) {
				t.Errorf("Validate = %v, want %s", err, tt.wantCode)
			}
		})
	}
}
