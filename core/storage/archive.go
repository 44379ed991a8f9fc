package storage

import (
	"bytes"
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

// Archiver writes raw upstream documents into an object bucket.
type Archiver struct {
	client Client
	bucket string
}

// NewArchiver creates an archiver and ensures the bucket exists.
func NewArchiver(ctx context.Context, client Client, bucket string) (*Archiver, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", bucket, err)
		}
	}
	return &Archiver{client: client, bucket: bucket}, nil
}

// Archive stores one detail document under raw/<resource>/<index>.json.
func (a *Archiver) Archive(ctx context.Context, resource, index string, doc map[string]any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", resource, index, err)
	}

	objectName := fmt.Sprintf("raw/%s/%s.json", resource, index)
	_, err = a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("storing %s: %w", objectName, err)
	}
	return nil
}
