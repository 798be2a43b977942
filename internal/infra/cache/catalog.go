package cache

import (
	"context"
	"encoding/json"
	"time"

	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const packagesKey = "cache:packages"

// CatalogCache keeps the full package list in Redis as one JSON blob.
// The catalog is small and read often, so whole-list caching beats
// per-package keys.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) GetPackages(ctx context.Context) ([]*queries.PackageView, error) {
	raw, err := c.client.Get(ctx, packagesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read package cache")
	}

	views, err := decodePackages(raw)
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode package cache")
	}
	return views, nil
}

func (c *CatalogCache) SetPackages(ctx context.Context, packages []*queries.PackageView) error {
	raw, err := encodePackages(packages)
	if err != nil {
		return errs.Wrap(err, "failed to encode package cache")
	}
	if err := c.client.Set(ctx, packagesKey, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write package cache")
	}
	return nil
}

// encodePackages stores an empty catalog as [] rather than null so a
// cached empty list still reads back as a hit.
func encodePackages(packages []*queries.PackageView) ([]byte, error) {
	if packages == nil {
		packages = []*queries.PackageView{}
	}
	return json.Marshal(packages)
}

func decodePackages(raw []byte) ([]*queries.PackageView, error) {
	views := []*queries.PackageView{}
	if err := json.Unmarshal(raw, &views); err != nil {
		return nil, err
	}
	if views == nil {
		views = []*queries.PackageView{}
	}
	return views, nil
}

var _ queries.CatalogCache = (*CatalogCache)(nil)
