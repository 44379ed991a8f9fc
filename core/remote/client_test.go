package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*HTTPClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(Config{BaseURL: srv.URL, TimeoutSeconds: 5})
	return client, srv
}

func TestList(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/skills", r.URL.Path)
		w.Write([]byte(`{"count":1,"results":[{"index":"acrobatics","name":"Acrobatics","url":"/api/skills/acrobatics"}]}`))
	}))
	defer srv.Close()

	refs, err := client.List(context.Background(), "skills")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "acrobatics", refs[0].Index)
	assert.Equal(t, "/api/skills/acrobatics", refs[0].URL)
}

func TestGet(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"index":"acrobatics","name":"Acrobatics","desc":["para1","para2"]}`))
	}))
	defer srv.Close()

	doc, err := client.Get(context.Background(), "/api/skills/acrobatics")
	require.NoError(t, err)
	assert.Equal(t, "Acrobatics", doc["name"])
}

func TestGetList(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"level":1,"prof_bonus":2},{"level":2,"prof_bonus":2}]`))
	}))
	defer srv.Close()

	docs, err := client.GetList(context.Background(), "/api/classes/wizard/levels")
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestGet_Malformed(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := client.Get(context.Background(), "/api/skills/acrobatics")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestGet_ServerError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.Get(context.Background(), "/api/skills/acrobatics")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGet_Unreachable(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	_, err := client.Get(context.Background(), "/api/skills/acrobatics")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRefs_AbsoluteURL(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"results":[]}`))
	}))
	defer srv.Close()

	// Absolute URLs are used as-is rather than joined to the base URL.
	refs, err := client.Refs(context.Background(), srv.URL+"/api/classes/wizard/spells")
	require.NoError(t, err)
	assert.Empty(t, refs)
}
