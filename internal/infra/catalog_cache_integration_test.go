//go:build integration

package infra

// Run with: go test -tags integration ./internal/infra/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newTestCache(t *testing.T) *CatalogCache {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(context.Background()) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	rdb, err := NewRedis(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return NewCatalogCache(rdb, time.Minute)
}

func TestCatalogCache_ReadThrough(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var got []string
	hit, gen := c.Get(ctx, CatalogKeyCategories, &got)
	require.False(t, hit)
	c.Set(ctx, CatalogKeyCategories, gen, []string{"epp", "calzado"})

	hit, _ = c.Get(ctx, CatalogKeyCategories, &got)
	require.True(t, hit)
	assert.Equal(t, []string{"epp", "calzado"}, got)
	require.NoError(t, c.Ping(ctx))
}

func TestCatalogCache_WriteDuringReadIsNotCached(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	// A reader misses and loads the catalog from the store...
	var got []string
	hit, gen := c.Get(ctx, CatalogKeyProducts, &got)
	require.False(t, hit)

	// ...an admin save commits and invalidates...
	c.Invalidate(ctx)

	// ...and the reader stores what it loaded before the save.
	c.Set(ctx, CatalogKeyProducts, gen, []string{"old"})

	hit, gen = c.Get(ctx, CatalogKeyProducts, &got)
	assert.False(t, hit, "payload loaded before the write must not be served")

	c.Set(ctx, CatalogKeyProducts, gen, []string{"new"})
	hit, _ = c.Get(ctx, CatalogKeyProducts, &got)
	require.True(t, hit)
	assert.Equal(t, []string{"new"}, got)
}
