package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageReturnsBody(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>listings</body></html>"))
	}))
	defer server.Close()

	body, err := New(0).Page(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, body, "listings")
	assert.Contains(t, gotUA, "Mozilla/5.0")
}

func TestPageNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := New(0).Page(context.Background(), server.URL)

	assert.Error(t, err)
}

func TestPageConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := New(0).Page(context.Background(), server.URL)

	assert.Error(t, err)
}
