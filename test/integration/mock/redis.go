package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis bundles a miniredis server with a connected client.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts an in-process Redis server and connects a client to it.
func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic("failed to start test redis: " + err.Error())
	}

	client := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})

	return &Redis{
		Server: server,
		Client: client,
	}
}

// Close shuts down the client and server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
