package mediastore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFolder_BuildsPublicURLs(t *testing.T) {
	var gotPath string
	var gotReq listRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode([]listObject{
			{Name: "02.jpg"},
			{Name: "01.jpg"},
			{Name: ""},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "property-media", "https://cdn.example.com")

	urls, err := c.ListFolder(context.Background(), "prop-42")
	require.NoError(t, err)

	assert.Equal(t, "/object/list/property-media", gotPath)
	assert.Equal(t, "prop-42", gotReq.Prefix)
	assert.Equal(t, 100, gotReq.Limit)
	assert.Equal(t, listSortBy{Column: "name", Order: "asc"}, gotReq.SortBy)

	// empty names skipped, output name-ordered
	assert.Equal(t, []string{
		"https://cdn.example.com/property-media/prop-42/01.jpg",
		"https://cdn.example.com/property-media/prop-42/02.jpg",
	}, urls)
}

func TestListFolder_EmptyFolder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]listObject{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "property-media", "https://cdn.example.com")

	urls, err := c.ListFolder(context.Background(), "prop-7")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestListFolder_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "missing-bucket", "https://cdn.example.com")

	urls, err := c.ListFolder(context.Background(), "prop-7")
	require.Error(t, err)
	assert.Nil(t, urls)
	assert.Contains(t, err.Error(), "404")
}

func TestListFolder_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "property-media", "https://cdn.example.com")

	_, err := c.ListFolder(context.Background(), "prop-7")
	assert.Error(t, err)
}

func TestListFolder_TrailingSlashesTrimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]listObject{{Name: "a.jpg"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "property-media", "https://cdn.example.com/")

	urls, err := c.ListFolder(context.Background(), "prop-9")
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "https://cdn.example.com/property-media/prop-9/a.jpg", urls[0])
}
