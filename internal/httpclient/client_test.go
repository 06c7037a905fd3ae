package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts Options) *Client {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("Accept"))
		w.Write([]byte("<html><body>jobs</body></html>"))
	}))
	defer srv.Close()

	c := newTestClient(t, Options{})
	body, err := c.Fetch(context.Background(), srv.URL+"/jobs/")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>jobs</body></html>", body)
}

func TestFetch_CustomUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := newTestClient(t, Options{UserAgent: "test-agent"})
	_, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, Options{})
	_, err := c.Fetch(context.Background(), srv.URL+"/jobs/page-9/")
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, srv.URL+"/jobs/page-9/", fe.URL)
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := newTestClient(t, Options{})
	_, err := c.Fetch(context.Background(), addr)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 0, fe.StatusCode)
	assert.Equal(t, addr, fe.URL)
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, Options{Timeout: 50 * time.Millisecond})
	_, err := c.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 0, fe.StatusCode)
}

func TestFetch_MalformedURL(t *testing.T) {
	c := newTestClient(t, Options{})
	_, err := c.Fetch(context.Background(), "://not a url")

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
}

func TestNew_InvalidProxy(t *testing.T) {
	_, err := New(Options{ProxyURL: "://bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid proxy URL")
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, DefaultUserAgent, o.UserAgent)
	assert.Equal(t, 10*time.Second, o.Timeout)
}
