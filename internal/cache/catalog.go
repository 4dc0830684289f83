package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

const (
	catalogKey      = "catalog:products"
	defaultCacheTTL = 5 * time.Minute
)

// CatalogCache caches the product catalog between upstream fetches.
type CatalogCache interface {
	Get(ctx context.Context) ([]models.Product, error)
	Set(ctx context.Context, products []models.Product) error
	Invalidate(ctx context.Context) error
}

// RedisCatalogCache implements CatalogCache using Redis.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCatalogCache(cfg config.RedisConfig, logger *slog.Logger) *RedisCatalogCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &RedisCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached catalog, or nil on a miss.
func (c *RedisCatalogCache) Get(ctx context.Context) ([]models.Product, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("catalog cache miss")
		return nil, nil
	}
	if err != nil {
		c.logger.Error("catalog cache get error", "error", err)
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	c.logger.Debug("catalog cache hit", "count", len(products))
	return products, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		c.logger.Error("catalog cache set error", "error", err)
		return err
	}

	c.logger.Debug("catalog cached", "count", len(products), "ttl", c.ttl.String())
	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
