package gphotos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"photo-manager/core/library"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestClient points a client at a local test server and records sleeps
// instead of performing them.
func newTestClient(t *testing.T, cfg Config, handler http.Handler) (*Client, *[]time.Duration) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	slept := &[]time.Duration{}
	client := NewClient(srv.Client(), cfg, zap.NewNop())
	client.baseURL = srv.URL
	client.sleep = func(d time.Duration) {
		*slept = append(*slept, d)
	}
	return client, slept
}

func TestListAlbums_Pagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))

		switch r.URL.Query().Get("pageToken") {
		case "":
			fmt.Fprint(w, `{
				"albums": [
					{"id": "a1", "title": "Vacation 2023", "mediaItemsCount": "47"},
					{"id": "a2", "title": "Family", "mediaItemsCount": "103"}
				],
				"nextPageToken": "page-2"
			}`)
		case "page-2":
			fmt.Fprint(w, `{
				"albums": [
					{"id": "a3", "title": "Work Events", "mediaItemsCount": "8"}
				]
			}`)
		default:
			t.Errorf("unexpected pageToken %q", r.URL.Query().Get("pageToken"))
		}
	})

	client, _ := newTestClient(t, Config{PageSize: 2}, mux)

	albums, err := client.ListAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 3)

	assert.Equal(t, "Vacation 2023", albums[0].Name)
	assert.Equal(t, 47, albums[0].ItemCount)
	assert.Equal(t, library.SourceRemote, albums[0].Source)
	assert.Equal(t, "Work Events", albums[2].Name)
	assert.Equal(t, 8, albums[2].ItemCount)
}

func TestListAlbums_SharedAppended(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"albums": [{"id": "a1", "title": "Owned", "mediaItemsCount": "1"}]}`)
	})
	mux.HandleFunc("/sharedAlbums", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sharedAlbums": [{"id": "s1", "title": "Shared Family", "mediaItemsCount": "23"}]}`)
	})

	client, _ := newTestClient(t, Config{IncludeShared: true}, mux)

	albums, err := client.ListAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "Owned", albums[0].Name)
	assert.Equal(t, "Shared Family", albums[1].Name)
	assert.Equal(t, 23, albums[1].ItemCount)
}

func TestListAlbums_SharedDisabled(t *testing.T) {
	sharedCalled := false

	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"albums": [{"id": "a1", "title": "Owned", "mediaItemsCount": "1"}]}`)
	})
	mux.HandleFunc("/sharedAlbums", func(w http.ResponseWriter, r *http.Request) {
		sharedCalled = true
		fmt.Fprint(w, `{"sharedAlbums": []}`)
	})

	client, _ := newTestClient(t, Config{IncludeShared: false}, mux)

	albums, err := client.ListAlbums(context.Background())
	require.NoError(t, err)
	assert.Len(t, albums, 1)
	assert.False(t, sharedCalled)
}

func TestListAlbums_UntitledDefault(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"albums": [{"id": "a1", "mediaItemsCount": "5"}]}`)
	})

	client, _ := newTestClient(t, Config{}, mux)

	albums, err := client.ListAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Untitled", albums[0].Name)
}

func TestListAlbums_NumericCountTolerated(t *testing.T) {
	// The documented format is a string, but a number should not break the scan.
	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"albums": [{"id": "a1", "title": "Loose", "mediaItemsCount": 12}]}`)
	})

	client, _ := newTestClient(t, Config{}, mux)

	albums, err := client.ListAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, 12, albums[0].ItemCount)
}

func TestListAlbums_AuthFailureNotRetried(t *testing.T) {
	var requests atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	client, slept := newTestClient(t, Config{MaxRetries: 3}, mux)

	_, err := client.ListAlbums(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, library.ErrAuth))
	assert.Equal(t, int32(1), requests.Load())
	assert.Empty(t, *slept)
}

func TestListAlbums_TransientRetriedThenSucceeds(t *testing.T) {
	var requests atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"albums": [{"id": "a1", "title": "Recovered", "mediaItemsCount": "3"}]}`)
	})

	client, slept := newTestClient(t, Config{MaxRetries: 3}, mux)

	albums, err := client.ListAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Recovered", albums[0].Name)

	assert.Equal(t, int32(3), requests.Load())
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, *slept)
}

func TestListAlbums_RetriesExhausted(t *testing.T) {
	var requests atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	client, _ := newTestClient(t, Config{MaxRetries: 2}, mux)

	_, err := client.ListAlbums(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, library.ErrTransient))
	// Initial attempt plus two retries.
	assert.Equal(t, int32(3), requests.Load())
}

func TestScanner_Metadata(t *testing.T) {
	scanner := NewScanner(NewClient(http.DefaultClient, Config{}, zap.NewNop()))
	assert.Equal(t, "google", scanner.Name())
	assert.Equal(t, library.SourceRemote, scanner.Source())
}
