package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedgeio"
	"github.com/matzehuels/hedi/pkg/observability"
)

// FileStore persists one JSON file per document in a directory. It is the
// CLI default backend.
//
// Document IDs are validated before becoming file names, which rules out
// path separators and traversal sequences.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := herrors.ValidatePath(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidPath, err, "create %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

const fileBackend = "file"

// Get retrieves a document by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*hedgeio.Document, error) {
	if err := herrors.ValidateDocumentID(id); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		observability.Store().OnGet(ctx, fileBackend, id, false)
		return nil, herrors.New(herrors.ErrCodeDocumentNotFound, "document %q not found", id)
	}
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "read document %q", id)
	}

	observability.Store().OnGet(ctx, fileBackend, id, true)
	return hedgeio.UnmarshalDocument(b)
}

// Set stores a document, overwriting any previous version.
func (s *FileStore) Set(ctx context.Context, doc *hedgeio.Document) error {
	b, err := hedgeio.MarshalDocument(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(doc.ID), b, 0644); err != nil {
		return herrors.Wrap(herrors.ErrCodeInternal, err, "write document %q", doc.ID)
	}
	observability.Store().OnSet(ctx, fileBackend, doc.ID, len(b))
	return nil
}

// Delete removes a document.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := herrors.ValidateDocumentID(id); err != nil {
		return err
	}
	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return herrors.Wrap(herrors.ErrCodeInternal, err, "delete document %q", id)
	}
	observability.Store().OnDelete(ctx, fileBackend, id)
	return nil
}

// List returns all stored document IDs.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "read %s", s.dir)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
