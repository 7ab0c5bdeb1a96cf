// Package cache holds Redis-backed stores. The deployment runs without Redis
// by default; constructors accept a nil client and degrade to pass-through.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gymcore/internal/application/member/dto"
)

// CheckInInfoStore caches front-desk lookups by dni. The TTL is deliberately
// short: the lookup's status text is derived from the renewal date, and a
// renewal or confirmed payment must become visible at the desk quickly.
type CheckInInfoStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCheckInInfoStore(client *redis.Client, ttl time.Duration) *CheckInInfoStore {
	return &CheckInInfoStore{
		client: client,
		prefix: "checkin:info:",
		ttl:    ttl,
	}
}

// Get returns the cached lookup or (nil, nil) on a miss.
func (s *CheckInInfoStore) Get(ctx context.Context, dni string) (*dto.CheckInInfoDTO, error) {
	if s.client == nil {
		return nil, nil
	}

	data, err := s.client.Get(ctx, s.buildKey(dni)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read check-in info from redis: %w", err)
	}

	var info dto.CheckInInfoDTO
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check-in info: %w", err)
	}
	return &info, nil
}

func (s *CheckInInfoStore) Set(ctx context.Context, dni string, info *dto.CheckInInfoDTO) error {
	if s.client == nil {
		return nil
	}

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal check-in info: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(dni), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store check-in info in redis: %w", err)
	}
	return nil
}

// Invalidate drops the cached lookup; called after renewals and confirmed
// payments so the desk never shows a pre-renewal snapshot for the TTL window.
func (s *CheckInInfoStore) Invalidate(ctx context.Context, dni string) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Del(ctx, s.buildKey(dni)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate check-in info in redis: %w", err)
	}
	return nil
}

func (s *CheckInInfoStore) buildKey(dni string) string {
	return s.prefix + dni
}
