package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis returns a client for a process-wide miniredis server.
func NewRedis() (*redis.Client, *miniredis.Miniredis) {
	redisConnOnce.Do(
		func() {
			redisConn, redisServer = openRedisConn()
		},
	)

	return redisConn, redisServer
}

func openRedisConn() (*redis.Client, *miniredis.Miniredis) {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return conn, miniRedis
}

func ClearRedis(redis *redis.Client) error {
	return redis.FlushAll(context.TODO()).Err()
}
