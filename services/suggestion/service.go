package suggestion

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"medibook/utils"
)

// CitySource provides location suggestions from the care API.
type CitySource interface {
	SearchCities(ctx context.Context, query string) ([]string, error)
}

// Cache stores suggestion lists keyed by query prefix.
type Cache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, values []string, ttl time.Duration) error
	Clear(ctx context.Context) error
}

// Service is the process-wide city suggestion provider shared by the
// registration and search forms. Results are cached per query prefix
// and can be cleared wholesale when the upstream location set changes.
type Service struct {
	Source CitySource
	Cache  Cache
	TTL    time.Duration
}

func NewService(source CitySource, cache Cache) *Service {
	return &Service{Source: source, Cache: cache, TTL: utils.SuggestionCacheTTL}
}

// Suggest returns suggestions for a query prefix, serving from cache when
// possible. Upstream failure is returned as-is; there is no retry.
func (s *Service) Suggest(ctx context.Context, query string) ([]string, error) {
	if cached, ok := s.Cache.Get(ctx, query); ok {
		return cached, nil
	}

	cities, err := s.Source.SearchCities(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, query, cities, s.TTL); err != nil {
		utils.GetLogger().Warn("suggestion: failed to cache result",
			zap.String("query", query), zap.Error(err))
	}
	return cities, nil
}

// Clear drops all cached suggestions.
func (s *Service) Clear(ctx context.Context) error {
	return s.Cache.Clear(ctx)
}

// RedisCache is the production Cache backed by the generic cache DB.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func suggestionKey(query string) string {
	return utils.SuggestionCachePrefix + query
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]string, bool) {
	data, err := c.client.Get(ctx, suggestionKey(key)).Result()
	if err != nil {
		return nil, false
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, false
	}
	return values, true
}

func (c *RedisCache) Set(ctx context.Context, key string, values []string, ttl time.Duration) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, suggestionKey(key), data, ttl).Err()
}

func (c *RedisCache) Clear(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, utils.SuggestionCachePrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
