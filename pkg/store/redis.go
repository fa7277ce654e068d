package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedgeio"
	"github.com/matzehuels/hedi/pkg/observability"
)

// RedisStore persists documents in redis, shared across instances.
// Documents are stored without expiry under the "hedi:doc:" prefix.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "connect to redis at %s", cfg.RedisAddr)
	}
	return &RedisStore{client: client}, nil
}

const (
	redisBackend   = "redis"
	redisKeyPrefix = "hedi:doc:"
)

// Get retrieves a document by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*hedgeio.Document, error) {
	if err := herrors.ValidateDocumentID(id); err != nil {
		return nil, err
	}

	b, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		observability.Store().OnGet(ctx, redisBackend, id, false)
		return nil, herrors.New(herrors.ErrCodeDocumentNotFound, "document %q not found", id)
	}
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "read document %q", id)
	}

	observability.Store().OnGet(ctx, redisBackend, id, true)
	return hedgeio.UnmarshalDocument(b)
}

// Set stores a document, overwriting any previous version.
func (s *RedisStore) Set(ctx context.Context, doc *hedgeio.Document) error {
	b, err := hedgeio.MarshalDocument(doc)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+doc.ID, b, 0).Err(); err != nil {
		return herrors.Wrap(herrors.ErrCodeInternal, err, "write document %q", doc.ID)
	}
	observability.Store().OnSet(ctx, redisBackend, doc.ID, len(b))
	return nil
}

// Delete removes a document.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := herrors.ValidateDocumentID(id); err != nil {
		return err
	}
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return herrors.Wrap(herrors.ErrCodeInternal, err, "delete document %q", id)
	}
	observability.Store().OnDelete(ctx, redisBackend, id)
	return nil
}

// List returns all stored document IDs using SCAN, so large keyspaces do
// not block the server.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(redisKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "scan documents")
	}
	return ids, nil
}

// Close closes the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
