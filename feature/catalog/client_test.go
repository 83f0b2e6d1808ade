package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"botc-assets/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchAll_WalksPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/scripts/", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `{"count": 3, "next": "/api/scripts/?format=json&page=2", "results": [
				{"pk": 178, "name": "Trouble Brewing", "author": "TPI", "version": "1", "content": [{"id": "_meta", "name": "TB"}, "washerwoman", {"id": "imp"}]},
				{"pk": 19, "name": "Sects & Violets", "author": "TPI", "content": ["clockmaker"]}
			]}`)
		case "2":
			fmt.Fprint(w, `{"count": 3, "next": null, "results": [
				{"pk": 1000000, "name": "", "content": [{"id": "_meta", "name": "Meta Title", "author": "Meta Author"}]}
			]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	records, err := NewClient(srv.URL, srv.Client(), zap.NewNop()).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, record.Key("178"), records[0].PK)
	assert.Equal(t, "Trouble Brewing", records[0].Title)
	assert.Equal(t, []string{"washerwoman", "imp"}, records[0].Characters)
	assert.Equal(t, record.SourceRemote, records[0].Source)
	assert.Equal(t, "1", records[0].Meta["version"])

	assert.Equal(t, record.Key("1000000"), records[2].PK)
	assert.Equal(t, "Meta Title", records[2].Title)
	assert.Equal(t, "Meta Author", records[2].Author)
}

func TestFetchAll_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) }},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) { fmt.Fprint(w, `{"results": [`) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL, srv.Client(), nil).FetchAll(context.Background())
			var unavailable *SourceUnavailableError
			assert.True(t, errors.As(err, &unavailable))
		})
	}
}

func TestFetchAll_IgnoresBogusCount(t *testing.T) {
	for _, count := range []string{"-1", "1e18", `"many"`} {
		t.Run(count, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"count": %s, "next": null, "results": [{"pk": 7, "name": "Seven"}]}`, count)
			}))
			defer srv.Close()

			records, err := NewClient(srv.URL, srv.Client(), nil).FetchAll(context.Background())
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, record.Key("7"), records[0].PK)
		})
	}
}

func TestFetchAll_EmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 0, "next": null, "results": []}`)
	}))
	defer srv.Close()

	records, err := NewClient(srv.URL, srv.Client(), nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFetchAll_RejectsMissingKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 1, "next": null, "results": [{"name": "No Key"}]}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client(), nil).FetchAll(context.Background())
	var invalid *record.ValidationError
	assert.True(t, errors.As(err, &invalid))
}

func TestFetchOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/scripts/178/":
			fmt.Fprint(w, `{"pk": 178, "name": "Trouble Brewing", "content": ["imp"]}`)
		case "/api/scripts/500/":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	c := NewClient(srv.URL+"/", srv.Client(), nil)

	rec, err := c.FetchRecord(context.Background(), "178")
	require.NoError(t, err)
	assert.Equal(t, "Trouble Brewing", rec.Title)
	assert.Equal(t, []string{"imp"}, rec.Characters)

	_, err = c.FetchOne(context.Background(), "9")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.FetchOne(context.Background(), "500")
	var unavailable *SourceUnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestFetchOne_CollapsesConcurrentCalls(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-release
		fmt.Fprint(w, `{"pk": 1}`)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, srv.Client(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, err := c.FetchOne(context.Background(), "1")
			assert.NoError(t, err)
			assert.JSONEq(t, `{"pk": 1}`, string(body))
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetchOne_CancelledCallerDoesNotFailOthers(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		<-release
		fmt.Fprint(w, `{"pk": 2}`)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, srv.Client(), nil)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.FetchOne(first, "2")
		firstErr <- err
	}()
	<-entered

	second := make(chan []byte, 1)
	go func() {
		body, err := c.FetchOne(context.Background(), "2")
		assert.NoError(t, err)
		second <- body
	}()
	time.Sleep(100 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.JSONEq(t, `{"pk": 2}`, string(<-second))
}
