package cache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// GetOrCompute wraps an expensive read with cache-aside semantics: a live
// entry under key is returned as-is; otherwise compute runs, its result is
// stored under key for ttl, and the fresh value is returned.
//
// compute may be arbitrarily expensive and issue several store queries of its
// own; only its final result is cached. A compute failure propagates to the
// caller and nothing is cached for it. Two concurrent callers that both miss
// will both run compute; their results are equivalent, so the duplicated work
// is accepted rather than paying for a distributed lock.
func GetOrCompute[T any](ctx context.Context, store Store, log *zap.Logger, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if store != nil {
		payload, err := store.Get(ctx, key)
		switch {
		case err == nil:
			var cached T
			derr := Decode(payload, &cached)
			if derr == nil {
				return cached, nil
			}
			log.Warn("cache entry undecodable, recomputing",
				zap.String("key", key), zap.Error(derr))
		case !errors.Is(err, ErrMiss):
			// Cache is a soft dependency: fall back to computing.
			log.Warn("cache read failed, computing directly",
				zap.String("key", key), zap.Error(err))
		}
	}

	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if store != nil {
		if payload, merr := Encode(value); merr != nil {
			log.Warn("cache encode failed, returning uncached result",
				zap.String("key", key), zap.Error(merr))
		} else if serr := store.Set(ctx, key, payload, ttl); serr != nil {
			log.Warn("cache write failed, returning uncached result",
				zap.String("key", key), zap.Error(serr))
		}
	}
	return value, nil
}
