package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

const revalidationObject = "revalidation.json"

// CloudStorageStore keeps the record as a single JSON object in a Google
// Cloud Storage bucket, for deployments without a persistent disk.
type CloudStorageStore struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageStore creates a new Cloud Storage backed store
func NewCloudStorageStore(bucketName string) (*CloudStorageStore, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &CloudStorageStore{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Load reads the record object. Any error (missing object, transport
// failure, bad JSON) yields an empty record.
func (s *CloudStorageStore) Load(ctx context.Context) Record {
	obj := s.client.Bucket(s.bucketName).Object(revalidationObject)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return Record{}
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return Record{}
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}
	}
	return rec
}

// Save writes the record object
func (s *CloudStorageStore) Save(ctx context.Context, rec Record) error {
	obj := s.client.Bucket(s.bucketName).Object(revalidationObject)

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	writer := obj.NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("writing record object: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing record writer: %w", err)
	}

	return nil
}

// Close closes the Cloud Storage client
func (s *CloudStorageStore) Close() error {
	return s.client.Close()
}
