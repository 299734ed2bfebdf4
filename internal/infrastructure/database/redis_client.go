package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 2 * time.Second

// ConnectRedis returns a client for addr. An unreachable server is logged,
// not fatal: draft persistence degrades to logged write failures.
func ConnectRedis(ctx context.Context, addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  redisPingTimeout,
		ReadTimeout:  redisPingTimeout,
		WriteTimeout: redisPingTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[database][redis] ping failed addr=%s err=%v", addr, err)
	} else {
		log.Printf("[database][redis] client ready addr=%s", addr)
	}
	return client
}
