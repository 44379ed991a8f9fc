package mocks

import (
	"context"

	"srd-mirror/core/remote"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of remote.Client
type Client struct {
	mock.Mock
}

func (m *Client) List(ctx context.Context, resource string) ([]remote.Ref, error) {
	args := m.Called(ctx, resource)
	if refs, ok := args.Get(0).([]remote.Ref); ok {
		return refs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Refs(ctx context.Context, path string) ([]remote.Ref, error) {
	args := m.Called(ctx, path)
	if refs, ok := args.Get(0).([]remote.Ref); ok {
		return refs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Get(ctx context.Context, path string) (map[string]any, error) {
	args := m.Called(ctx, path)
	if doc, ok := args.Get(0).(map[string]any); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetList(ctx context.Context, path string) ([]map[string]any, error) {
	args := m.Called(ctx, path)
	if docs, ok := args.Get(0).([]map[string]any); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}
