package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"clinic/infras/otel"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatchSize         = 100
	generationSuffix      = "gen"
	generationTTL         = 24 * time.Hour
	Nil                   = redis.Nil
)

var errStaleGeneration = errors.New("cache generation moved")

// RedisCache stores JSON encoded values with a TTL expressed in seconds.
//
// Keys written with SaveIfGeneration carry a generation counter that Invalidate bumps. A reader
// takes the generation before loading from storage and only stores its result if no invalidation
// happened in between.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, durationSeconds int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Generation(ctx context.Context, key string) (int64, error)
	SaveIfGeneration(ctx context.Context, key string, generation int64, value any, durationSeconds int) (bool, error)
	Invalidate(ctx context.Context, keys ...string) error
	Increment(ctx context.Context, key string, windowSeconds int) (int64, error)
	Clear(ctx context.Context, pattern string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear deletes every key matching pattern, scanning in batches.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	iter := cache.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())

		if len(batch) == scanBatchSize {
			if err = cache.client.Unlink(ctx, batch...).Err(); err != nil {
				log.Error().Err(err).Str("pattern", pattern).Str("RedisCache", "Clear").Msg("failed to unlink cache keys")

				return fmt.Errorf("failed to delete cache values: %w", err)
			}

			batch = batch[:0]
		}
	}

	if err = iter.Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Str("RedisCache", "Clear").Msg("failed to scan cache keys")

		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if len(batch) > 0 {
		if err = cache.client.Unlink(ctx, batch...).Err(); err != nil {
			log.Error().Err(err).Str("pattern", pattern).Str("RedisCache", "Clear").Msg("failed to unlink cache keys")

			return fmt.Errorf("failed to delete cache values: %w", err)
		}
	}

	return nil
}

// Invalidate deletes keys and bumps their generation in one transaction.
func (cache *redisCache) Invalidate(ctx context.Context, keys ...string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Invalidate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(keys) == 0 {
		return nil
	}

	scope.SetAttribute(otelCacheKeyAttribute, keys)

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)

		for _, key := range keys {
			pipe.Incr(ctx, generationKey(key))
			pipe.Expire(ctx, generationKey(key), generationTTL)
		}

		return nil
	})
	if err != nil {
		log.Error().Strs("keys", keys).Err(err).Str("RedisCache", "Invalidate").Msg("failed to invalidate cache")

		return fmt.Errorf("failed to invalidate cache value: %w", err)
	}

	return nil
}

// Generation returns the invalidation counter of key, zero when it was never invalidated.
func (cache *redisCache) Generation(ctx context.Context, key string) (generation int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Generation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	generation, err = cache.client.Get(ctx, generationKey(key)).Int64()
	if errors.Is(err, Nil) {
		return 0, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Generation").Msg("failed to read cache generation")

		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}

	return generation, nil
}

// SaveIfGeneration stores value only while the generation of key still equals generation. It
// reports false without error when an invalidation won the race.
func (cache *redisCache) SaveIfGeneration(ctx context.Context, key string, generation int64, value any, durationSeconds int) (stored bool, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".SaveIfGeneration")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "SaveIfGeneration").Msg("failed to marshal cache")

		return false, err
	}

	genKey := generationKey(key)

	err = cache.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, Nil) {
			return err //nolint:wrapcheck
		}

		if current != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, time.Second*time.Duration(durationSeconds))

			return nil
		})

		return err //nolint:wrapcheck
	}, genKey)

	switch {
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		log.Debug().Str("key", key).Int64("generation", generation).Msg("skipped caching a value invalidated during load")

		return false, nil
	case err != nil:
		log.Error().Err(err).Str("key", key).Str("RedisCache", "SaveIfGeneration").Msg("failed to set cache")

		return false, fmt.Errorf("failed to set cache value: %w", err)
	}

	return true, nil
}

// Increment adds one to the counter at key. The window starts with the first increment and is
// not extended by later ones.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var incr *redis.IntCmd

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, time.Second*time.Duration(windowSeconds))

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment cache counter: %w", err)
	}

	return incr.Val(), nil
}

// Get loads key into value. A miss is reported as an error wrapping Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cacheValue, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, Nil) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if v, ok := value.(*string); ok {
		*v = cacheValue

		return nil
	}

	if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Get").Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

// Save implements RedisCache.
func (cache *redisCache) Save(ctx context.Context, key string, value any, durationSeconds int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to marshal cache")

		return err
	}

	err = cache.client.Set(ctx, key, raw, time.Second*time.Duration(durationSeconds)).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("RedisCache", "Save").Str("key", key).Msg("success to set cache")

	return nil
}

func encode(value any) ([]byte, error) {
	if v, ok := value.(string); ok {
		return []byte(v), nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return raw, nil
}

func generationKey(key string) string {
	return key + ":" + generationSuffix
}
