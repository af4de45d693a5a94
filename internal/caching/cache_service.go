package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"homeport/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService fronts the listing queries with a per-broker Redis cache.
type CacheService interface {
	// GetListings returns (nil, nil) on a cache miss.
	GetListings(ctx context.Context, brokerName string) ([]models.HouseListing, error)
	SetListings(ctx context.Context, brokerName string, listings []models.HouseListing, ttl time.Duration) error
	InvalidateBroker(ctx context.Context, brokerName string) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func listingsKey(brokerName string) string {
	return fmt.Sprintf("listings:broker:%s", strings.ToLower(brokerName))
}

func (s *redisCacheService) GetListings(ctx context.Context, brokerName string) ([]models.HouseListing, error) {
	data, err := s.client.Get(ctx, listingsKey(brokerName)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listing cache: %w", err)
	}

	var listings []models.HouseListing
	if err := json.Unmarshal([]byte(data), &listings); err != nil {
		return nil, fmt.Errorf("failed to decode cached listings: %w", err)
	}
	return listings, nil
}

func (s *redisCacheService) SetListings(ctx context.Context, brokerName string, listings []models.HouseListing, ttl time.Duration) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to encode listings: %w", err)
	}
	return s.client.Set(ctx, listingsKey(brokerName), data, ttl).Err()
}

func (s *redisCacheService) InvalidateBroker(ctx context.Context, brokerName string) error {
	return s.client.Del(ctx, listingsKey(brokerName)).Err()
}

func (s *redisCacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
