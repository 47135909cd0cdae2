package infra

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const catalogKeyPrefix = "calo:catalog:"

// Cache keys for the two public read models.
const (
	CatalogKeyProducts   = catalogKeyPrefix + "products"
	CatalogKeyCategories = catalogKeyPrefix + "categories"

	catalogKeyGeneration = catalogKeyPrefix + "gen"
)

// noGeneration tells Set not to store anything.
const noGeneration int64 = -1

// CatalogCache is a best-effort read-through cache for the public catalog
// payloads. A nil *CatalogCache is valid and caches nothing, which is how the
// server runs when REDIS_URL is empty. Redis errors never fail a request.
//
// Entries are stored under the catalog generation read before the store was
// queried. Invalidate bumps the generation, so a reader that loaded the old
// catalog before a write can only store it under a generation nobody reads.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	if rdb == nil {
		return nil
	}
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

// Get decodes the cached value for key into dst and reports whether it hit.
// On a miss the returned generation must be passed to Set.
func (c *CatalogCache) Get(ctx context.Context, key string, dst interface{}) (bool, int64) {
	if c == nil {
		return false, noGeneration
	}
	gen, err := c.rdb.Get(ctx, catalogKeyGeneration).Int64()
	if err != nil && err != redis.Nil {
		log.Warn().Err(err).Msg("catalog cache: generation lookup failed")
		return false, noGeneration
	}

	b, err := c.rdb.Get(ctx, entryKey(key, gen)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("catalog cache: get failed")
		}
		return false, gen
	}
	return json.Unmarshal(b, dst) == nil, gen
}

// Set stores v for the generation returned by the Get that missed.
func (c *CatalogCache) Set(ctx context.Context, key string, gen int64, v interface{}) {
	if c == nil || gen == noGeneration {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, entryKey(key, gen), b, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache: set failed")
	}
}

// Invalidate moves the catalog to a new generation. Called after any
// successful write so the next public read goes to the store; old entries
// expire with their TTL.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, catalogKeyGeneration).Err(); err != nil {
		log.Error().Err(err).Msg("catalog cache: invalidate failed")
	}
}

// Ping reports Redis reachability for the health endpoint.
func (c *CatalogCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func entryKey(key string, gen int64) string {
	return key + ":" + strconv.FormatInt(gen, 10)
}
