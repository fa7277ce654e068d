package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hedi/pkg/hedge"
	"github.com/matzehuels/hedi/pkg/hedgeio"
	"github.com/matzehuels/hedi/pkg/store"
)

func testAPI(t *testing.T) *httptest.Server {
	t.Helper()

	d := hedge.New[hedge.Metadata, hedge.Metadata, hedge.Metadata]()
	a := d.AddVertex(nil)
	b := d.AddVertex(nil)
	c := d.AddVertex(nil)
	ab, ba, _ := d.AddTwinPair(a, b, nil, nil)
	bc, cb, _ := d.AddTwinPair(b, c, nil, nil)
	ca, ac, _ := d.AddTwinPair(c, a, nil, nil)
	inner := d.AddFace(nil)
	outer := d.AddFace(nil)
	if err := d.CloseCycle([]hedge.Edge{ab, bc, ca}, inner, 1); err != nil {
		t.Fatalf("CloseCycle: %v", err)
	}
	if err := d.CloseCycle([]hedge.Edge{ac, cb, ba}, outer, -1); err != nil {
		t.Fatalf("CloseCycle: %v", err)
	}

	s := store.NewMemoryStore()
	if err := s.Set(context.Background(), &hedgeio.Document{ID: "tri", Diagram: d}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	api := &apiServer{store: s, logger: log.New(io.Discard)}
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)
	return srv
}

func TestServeList(t *testing.T) {
	srv := testAPI(t)

	resp, err := http.Get(srv.URL + "/v1/diagrams")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Diagrams []string `json:"diagrams"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Diagrams) != 1 || body.Diagrams[0] != "tri" {
		t.Errorf("diagrams = %v, want [tri]", body.Diagrams)
	}
}

func TestServeGet(t *testing.T) {
	srv := testAPI(t)

	resp, err := http.Get(srv.URL + "/v1/diagrams/tri")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		ID    string `json:"id"`
		Edges []any  `json:"edges"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ID != "tri" || len(body.Edges) != 6 {
		t.Errorf("body = %q with %d edges, want tri with 6", body.ID, len(body.Edges))
	}
}

func TestServeStats(t *testing.T) {
	srv := testAPI(t)

	resp, err := http.Get(srv.URL + "/v1/diagrams/tri/stats")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Vertices int `json:"vertices"`
		Edges    int `json:"edges"`
		Faces    []struct {
			Boundary int     `json:"boundary"`
			K        float64 `json:"k"`
		} `json:"faces"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Vertices != 3 || body.Edges != 6 || len(body.Faces) != 2 {
		t.Errorf("stats = %+v, want 3/6/2", body)
	}
	for _, f := range body.Faces {
		if f.Boundary != 3 {
			t.Errorf("boundary = %d, want 3", f.Boundary)
		}
	}
}

func TestServeSVG(t *testing.T) {
	srv := testAPI(t)

	resp, err := http.Get(srv.URL + "/v1/diagrams/tri/svg")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
}

func TestServeNotFound(t *testing.T) {
	srv := testAPI(t)

	resp, err := http.Get(srv.URL + "/v1/diagrams/missing")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Code, "NOT_FOUND") {
		t.Errorf("code = %q, want a NOT_FOUND code", body.Code)
	}
}
