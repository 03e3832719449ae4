package cache

import (
	"context"
	"fmt"
	"time"
)

// Record holds the revalidation state from the last successful fetch.
// ETag and LastModified are sent back upstream as conditional request
// headers; either may be empty.
type Record struct {
	ETag         string    `json:"etag"`
	LastModified string    `json:"last_modified"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// IsZero reports whether the record carries no validators.
func (r Record) IsZero() bool {
	return r.ETag == "" && r.LastModified == "" && r.FetchedAt.IsZero()
}

// Store persists a single revalidation record.
//
// Load never fails the caller: a missing or unreadable record degrades to
// an empty Record, which simply means the next fetch is unconditional.
// Save errors are returned so the caller can log them, but the cache is an
// optimization and callers are expected to carry on without it.
type Store interface {
	Load(ctx context.Context) Record
	Save(ctx context.Context, rec Record) error
	Close() error
}

// NewStore creates a store for the given cache type
func NewStore(cacheType, filePath, bucketName string) (Store, error) {
	switch cacheType {
	case "file":
		return NewFileStore(filePath), nil
	case "memory":
		return NewMemoryStore(), nil
	case "cloud-storage":
		store, err := NewCloudStorageStore(bucketName)
		if err != nil {
			return nil, fmt.Errorf("creating cloud storage store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cacheType)
	}
}
