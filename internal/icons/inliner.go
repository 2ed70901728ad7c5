// Package icons fetches category icon markup so it can be inlined into the
// landing page.
package icons

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout     = 2 * time.Second
	defaultConcurrency = 8
	defaultCacheTTL    = time.Hour
	// DefaultMaxBytes caps a single icon body.
	DefaultMaxBytes = 256 << 10
)

// Options configures an Inliner. Zero values pick defaults.
type Options struct {
	Client      *http.Client
	Timeout     time.Duration
	Concurrency int
	CacheTTL    time.Duration
	MaxBytes    int64
}

// Inliner fetches icon markup by URL with an in-process cache.
type Inliner struct {
	client      *http.Client
	timeout     time.Duration
	concurrency int
	maxBytes    int64
	cache       *gocache.Cache
	logger      *zap.Logger
}

// NewInliner builds an Inliner.
func NewInliner(opts Options) *Inliner {
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 15 * time.Second}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}

	return &Inliner{
		client:      opts.Client,
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
		maxBytes:    opts.MaxBytes,
		cache:       gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
		logger:      zap.L().Named("icons"),
	}
}

// Inline fetches every URL and returns the markup keyed by URL. Failed
// fetches are logged and left out. All fetches stop when ctx ends; if ctx is
// already done when they finish, nothing is returned so a finished request
// never receives late icons.
func (i *Inliner) Inline(ctx context.Context, urls []string) map[string]string {
	out := make(map[string]string, len(urls))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}

		if cached, ok := i.cache.Get(u); ok {
			out[u] = cached.(string)
			continue
		}

		u := u
		g.Go(func() error {
			markup, err := i.fetch(gctx, u)
			if err != nil {
				i.logger.Warn("icon fetch failed", zap.String("url", u), zap.Error(err))
				return nil
			}
			i.cache.Set(u, markup, gocache.DefaultExpiration)

			mu.Lock()
			out[u] = markup
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	if ctx.Err() != nil {
		return map[string]string{}
	}
	return out
}

func (i *Inliner) fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create icon request: %w", err)
	}
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute icon request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, i.maxBytes))
		return "", fmt.Errorf("icon request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, i.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read icon body: %w", err)
	}
	if int64(len(body)) > i.maxBytes {
		return "", fmt.Errorf("icon body exceeds %d bytes", i.maxBytes)
	}

	return string(body), nil
}
