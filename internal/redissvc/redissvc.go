package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb      *redis.Client
	ctx      context.Context
	cooldown time.Duration
}

func NewRedisService(rdb *redis.Client, ctx context.Context, cooldown time.Duration) *RedisService {
	return &RedisService{
		rdb:      rdb,
		ctx:      ctx,
		cooldown: cooldown,
	}
}

// Allow reports whether an alert for the item may fire, opening the
// cooldown window when it does. Redis errors fail open so an unreachable
// cache never suppresses an alert.
func (s *RedisService) Allow(itemID int64) bool {
	key := fmt.Sprintf("alert:cooldown:%d", itemID)
	ok, err := s.rdb.SetNX(s.ctx, key, 1, s.cooldown).Result()
	if err != nil {
		return true
	}
	return ok
}
