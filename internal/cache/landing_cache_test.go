package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/brandslanding/internal/brandslanding"
)

type countingSource struct {
	calls int
	data  *brandslanding.Data
	err   error
}

func (s *countingSource) LoadLanding(_ context.Context, _ string) (*brandslanding.Data, error) {
	s.calls++
	return s.data, s.err
}

// unreachableClient points at a port nothing listens on.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestKey(t *testing.T) {
	assert.Equal(t, "brandslanding:landing:nike", Key("nike"))
}

func TestLandingCache_NilClientPassesThrough(t *testing.T) {
	src := &countingSource{data: &brandslanding.Data{Brand: &brandslanding.Brand{Value: "Nike"}}}
	c := NewLandingCache(src, nil, time.Minute)

	data, err := c.LoadLanding(context.Background(), "nike")
	require.NoError(t, err)
	assert.Equal(t, "Nike", data.Brand.Value)
	assert.Equal(t, 1, src.calls)

	c.Invalidate(context.Background(), "nike")
}

func TestLandingCache_RedisDownFallsBack(t *testing.T) {
	src := &countingSource{data: &brandslanding.Data{Brand: &brandslanding.Brand{Value: "Nike"}}}
	c := NewLandingCache(src, unreachableClient(t), time.Minute)

	data, err := c.LoadLanding(context.Background(), "nike")
	require.NoError(t, err)
	assert.Equal(t, "Nike", data.Brand.Value)
	assert.Equal(t, 1, src.calls)
}

func TestLandingCache_SourceErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	c := NewLandingCache(&countingSource{err: boom}, unreachableClient(t), time.Minute)

	_, err := c.LoadLanding(context.Background(), "nike")
	assert.ErrorIs(t, err, boom)
}

func TestNewClient_EmptyURL(t *testing.T) {
	client, err := NewClient(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, client)
}
