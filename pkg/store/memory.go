package store

import (
	"context"
	"sync"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedgeio"
	"github.com/matzehuels/hedi/pkg/observability"
)

// MemoryStore keeps documents in process memory. Intended for tests and
// short-lived tooling; contents are lost when the process exits.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

const memoryBackend = "memory"

// Get retrieves a document by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*hedgeio.Document, error) {
	if err := herrors.ValidateDocumentID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	b, ok := s.docs[id]
	s.mu.RUnlock()

	observability.Store().OnGet(ctx, memoryBackend, id, ok)
	if !ok {
		return nil, herrors.New(herrors.ErrCodeDocumentNotFound, "document %q not found", id)
	}
	return hedgeio.UnmarshalDocument(b)
}

// Set stores a document, overwriting any previous version.
func (s *MemoryStore) Set(ctx context.Context, doc *hedgeio.Document) error {
	b, err := hedgeio.MarshalDocument(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs[doc.ID] = b
	s.mu.Unlock()

	observability.Store().OnSet(ctx, memoryBackend, doc.ID, len(b))
	return nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := herrors.ValidateDocumentID(id); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()

	observability.Store().OnDelete(ctx, memoryBackend, id)
	return nil
}

// List returns all stored document IDs.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
