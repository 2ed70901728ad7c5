package icons

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

const svg = `<svg xmlns="http://www.w3.org/2000/svg"><circle r="4"/></svg>`

// The cache janitor lives as long as its cache.
func leakOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreCurrent(),
		goleak.IgnoreAnyFunction("github.com/patrickmn/go-cache.(*janitor).Run"),
	}
}

func newTestInliner(t *testing.T, opts Options) *Inliner {
	t.Helper()
	transport := &http.Transport{}
	t.Cleanup(transport.CloseIdleConnections)
	opts.Client = &http.Client{Transport: transport}
	return NewInliner(opts)
}

func TestInliner_FetchesAndCaches(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions()...)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/icons/1.svg":
			w.Header().Set("Content-Type", "image/svg+xml")
			_, _ = w.Write([]byte(svg))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	in := newTestInliner(t, Options{})
	ok := srv.URL + "/icons/1.svg"
	missing := srv.URL + "/icons/2.svg"

	got := in.Inline(context.Background(), []string{ok, missing, ok})
	assert.Equal(t, map[string]string{ok: svg}, got)
	assert.Equal(t, int32(2), hits.Load())

	got = in.Inline(context.Background(), []string{ok})
	assert.Equal(t, svg, got[ok])
	assert.Equal(t, int32(2), hits.Load(), "second call served from cache")

	in.client.CloseIdleConnections()
}

func TestInliner_RejectsOversizeBody(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions()...)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	in := newTestInliner(t, Options{MaxBytes: 16})
	got := in.Inline(context.Background(), []string{srv.URL + "/big.svg"})
	assert.Empty(t, got)

	in.client.CloseIdleConnections()
}

func TestInliner_CancelledWithRequest(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions()...)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	in := newTestInliner(t, Options{Timeout: 10 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	got := in.Inline(ctx, []string{srv.URL + "/slow-1.svg", srv.URL + "/slow-2.svg"})

	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 5*time.Second)

	in.client.CloseIdleConnections()
}

func TestInliner_PerIconTimeout(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions()...)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fast.svg" {
			_, _ = w.Write([]byte(svg))
			return
		}
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	in := newTestInliner(t, Options{Timeout: 100 * time.Millisecond})
	got := in.Inline(context.Background(), []string{srv.URL + "/fast.svg", srv.URL + "/slow.svg"})

	assert.Equal(t, map[string]string{srv.URL + "/fast.svg": svg}, got)

	in.client.CloseIdleConnections()
}
