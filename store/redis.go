package store

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// NewRedis connects the feed cache client and verifies the server
// is reachable before handing it out.
func NewRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	log.Info().Str("addr", addr).Msg("redis connected")
	return rdb, nil
}
