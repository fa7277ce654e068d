// Package store persists diagram documents across tool invocations.
//
// Three backends share one interface:
//   - memory: in-process storage for tests and throwaway work
//   - file: one JSON file per document in a directory, the CLI default
//   - redis: shared storage for multi-instance deployments
//
// Documents are validated on the way in (by the IO layer's encoder) and on
// the way out (the decoder re-checks the half-edge invariants), so a
// document read from any backend is always safe to traverse.
package store

import (
	"context"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedgeio"
)

// Store is the interface for document storage backends.
type Store interface {
	// Get retrieves a document by ID.
	// Returns a DOCUMENT_NOT_FOUND error if no document has that ID.
	Get(ctx context.Context, id string) (*hedgeio.Document, error)

	// Set stores a document under its ID, overwriting any previous version.
	Set(ctx context.Context, doc *hedgeio.Document) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored documents in unspecified order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	// Backend is one of "memory", "file", or "redis".
	Backend string

	// Dir is the document directory for the file backend.
	Dir string

	// RedisAddr, RedisPassword, and RedisDB configure the redis backend.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open creates the backend named by cfg.Backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Dir)
	case "redis":
		return NewRedisStore(ctx, cfg)
	default:
		return nil, herrors.New(herrors.ErrCodeUnsupported, "unknown store backend %q", cfg.Backend)
	}
}
