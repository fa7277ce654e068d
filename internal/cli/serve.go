package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedgeio"
	"github.com/matzehuels/hedi/pkg/observability"
	"github.com/matzehuels/hedi/pkg/render"
	"github.com/matzehuels/hedi/pkg/store"
)

// newServeCmd creates the serve command, a read-only HTTP API over the
// configured store backend.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored diagram documents over HTTP",
		Long: `Serve exposes the configured store backend as a read-only HTTP API:

  GET /v1/diagrams            list stored document IDs
  GET /v1/diagrams/{id}       full document JSON
  GET /v1/diagrams/{id}/stats element counts and boundary lengths
  GET /v1/diagrams/{id}/svg   Graphviz rendering

The server performs no mutation; use push/pull to change stored documents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

func runServe(ctx context.Context, addr string) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	if addr == "" {
		addr = cfg.Serve.Addr
	}

	s, err := store.Open(ctx, cfg.storeConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	api := &apiServer{store: s, logger: logger}
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("Serving on %s (%s backend)", addr, cfg.Store.Backend)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// apiServer holds the request handlers and their dependencies.
type apiServer struct {
	store  store.Store
	logger *log.Logger
}

func (a *apiServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(a.observe)

	r.Route("/v1/diagrams", func(r chi.Router) {
		r.Get("/", a.handleList)
		r.Get("/{id}", a.handleGet)
		r.Get("/{id}/stats", a.handleStats)
		r.Get("/{id}/svg", a.handleSVG)
	})
	return r
}

// observe logs each request and fires the HTTP observability hooks.
func (a *apiServer) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, elapsed)
		a.logger.Debugf("%s %s %d (%s)", r.Method, r.URL.Path, sw.status, elapsed.Round(time.Millisecond))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (a *apiServer) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := a.store.List(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	a.writeJSON(w, map[string]any{"diagrams": ids})
}

func (a *apiServer) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := a.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	b, err := hedgeio.MarshalDocument(doc)
	if err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func (a *apiServer) handleStats(w http.ResponseWriter, r *http.Request) {
	doc, err := a.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	d := doc.Diagram

	type faceStats struct {
		Face     int     `json:"face"`
		Boundary int     `json:"boundary"`
		K        float64 `json:"k"`
	}
	faces := make([]faceStats, 0, d.FaceCount())
	for _, f := range d.Faces() {
		boundary, err := d.FaceEdges(f)
		if err != nil {
			a.writeError(w, err)
			return
		}
		k, _ := d.K(boundary[0])
		faces = append(faces, faceStats{Face: int(f), Boundary: len(boundary), K: k})
	}

	a.writeJSON(w, map[string]any{
		"id":       doc.ID,
		"vertices": d.VertexCount(),
		"edges":    d.EdgeCount(),
		"faces":    faces,
	})
}

func (a *apiServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	doc, err := a.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	dot, err := render.ToDOT(doc.Diagram, render.Options{})
	if err != nil {
		a.writeError(w, err)
		return
	}
	svg, err := render.RenderSVG(dot)
	if err != nil {
		a.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (a *apiServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("encode response: %v", err)
	}
}

// writeError maps structured error codes to HTTP status codes.
func (a *apiServer) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch herrors.GetCode(err) {
	case herrors.ErrCodeDocumentNotFound, herrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case herrors.ErrCodeInvalidDocument, herrors.ErrCodeInvalidInput, herrors.ErrCodeInvalidHandle:
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  string(herrors.GetCode(err)),
		"error": herrors.UserMessage(err),
	})
}
