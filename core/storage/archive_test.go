package storage_test

import (
	"context"
	"testing"

	"srd-mirror/core/storage"
	"srd-mirror/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewArchiver_CreatesMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "srd-raw").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "srd-raw", mock.Anything).Return(nil)

	_, err := storage.NewArchiver(context.Background(), client, "srd-raw")
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchive(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "srd-raw").Return(true, nil)
	client.On("PutObject", mock.Anything, "srd-raw", "raw/skills/acrobatics.json",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	archiver, err := storage.NewArchiver(context.Background(), client, "srd-raw")
	require.NoError(t, err)

	err = archiver.Archive(context.Background(), "skills", "acrobatics", map[string]any{
		"index": "acrobatics",
	})
	assert.NoError(t, err)
	client.AssertExpectations(t)
}
