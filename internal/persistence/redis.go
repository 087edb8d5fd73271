package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-hrm/internal/domain"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "hrm:snapshot"

// RedisSink keeps the serialized snapshot under a single key.
type RedisSink struct {
	rdb *redis.Client
	key string
}

func NewRedisSink(rdb *redis.Client, key string) *RedisSink {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSink{rdb: rdb, key: key}
}

func (r *RedisSink) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot from redis: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot from redis: %w", err)
	}
	return &snap, nil
}

func (r *RedisSink) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot to redis: %w", err)
	}
	return nil
}
