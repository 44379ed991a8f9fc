package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

var (
	// ErrUnavailable indicates a network/transport failure or an unexpected
	// HTTP status from the upstream API.
	ErrUnavailable = errors.New("remote: upstream unavailable")
	// ErrMalformed indicates a response body that could not be decoded into
	// the expected document shape.
	ErrMalformed = errors.New("remote: malformed response")
)

// Ref is a lightweight index entry pointing at one item's detail document.
type Ref struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// Client defines the read operations the sync engine needs from the upstream API.
type Client interface {
	// List fetches the index of a top-level resource (GET /api/<resource>).
	List(ctx context.Context, resource string) ([]Ref, error)
	// Refs fetches a {count, results} reference list at an arbitrary path
	// embedded in a detail document (e.g. a class's spell list).
	Refs(ctx context.Context, path string) ([]Ref, error)
	// Get fetches one detail document.
	Get(ctx context.Context, path string) (map[string]any, error)
	// GetList fetches an endpoint whose body is a JSON array of documents
	// (e.g. a class's level progression).
	GetList(ctx context.Context, path string) ([]map[string]any, error)
}

// HTTPClient is the production Client backed by net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the configured API base URL.
func NewClient(cfg Config) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// indexResponse is the wire shape of every reference-list endpoint.
type indexResponse struct {
	Count   int   `json:"count"`
	Results []Ref `json:"results"`
}

func (c *HTTPClient) List(ctx context.Context, resource string) ([]Ref, error) {
	return c.Refs(ctx, "/api/"+resource)
}

func (c *HTTPClient) Refs(ctx context.Context, path string) ([]Ref, error) {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	var idx indexResponse
	if err := json.Unmarshal(body, &idx); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, path, err)
	}
	return idx.Results, nil
}

func (c *HTTPClient) Get(ctx context.Context, path string) (map[string]any, error) {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, path, err)
	}
	return doc, nil
}

func (c *HTTPClient) GetList(ctx context.Context, path string) ([]map[string]any, error) {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	var docs []map[string]any
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, path, err)
	}
	return docs, nil
}

// fetch performs one GET and returns the raw body. Each call is a fresh
// request; the upstream API is treated as a snapshot source.
func (c *HTTPClient) fetch(ctx context.Context, path string) ([]byte, error) {
	url := path
	if strings.HasPrefix(path, "/") {
		url = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrUnavailable, path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}
	return body, nil
}
