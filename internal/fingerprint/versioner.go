package fingerprint

import (
	"context"
	"errors"

	"github.com/opmodel/bundler/internal/asset"
	"github.com/opmodel/bundler/internal/output"
)

// Versioner serves tokens from a Cache, computing misses with a Generator.
type Versioner struct {
	gen   *Generator
	cache *Cache
}

// NewVersioner composes gen and cache. A nil cache gets a fresh one.
func NewVersioner(gen *Generator, cache *Cache) *Versioner {
	if cache == nil {
		cache = NewCache()
	}
	return &Versioner{gen: gen, cache: cache}
}

// FileVersion returns the memoized token for a single file.
func (v *Versioner) FileVersion(ctx context.Context, path string) (Token, error) {
	return v.cached(ctx, path, func(ctx context.Context) (Token, error) {
		tok, err := v.gen.FileVersion(ctx, path)
		if err == nil {
			output.Debug("file version computed", "path", path, "token", tok)
		}
		return tok, err
	})
}

// AssetVersion returns the memoized token for an asset's combined artifact,
// keyed by route.
func (v *Versioner) AssetVersion(ctx context.Context, a asset.Asset) (Token, error) {
	return v.cached(ctx, a.Route, func(ctx context.Context) (Token, error) {
		tok, err := v.gen.AssetVersion(ctx, a)
		if err == nil {
			output.Debug("bundle version computed", "route", a.Route, "token", tok)
		}
		return tok, err
	})
}

// cached runs compute through the cache with the caller's context. A shared
// computation can fail because the context of the caller that started it was
// cancelled; while ctx is still live such a result is retried.
func (v *Versioner) cached(ctx context.Context, key string, compute func(context.Context) (Token, error)) (Token, error) {
	for {
		tok, err := v.cache.GetOrCompute(key, func() (Token, error) {
			return compute(ctx)
		})
		if err != nil && isContextError(err) && ctx.Err() == nil {
			output.Debug("retrying version after cancelled shared computation", "key", key)
			continue
		}
		return tok, err
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Cache returns the underlying cache.
func (v *Versioner) Cache() *Cache {
	return v.cache
}
