// Package redis implements the checkpoint, delivery guard and enrichment
// stores on top of Redis.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

const clientName = "taowatch"

// client is a single connection pool serving every store of the process.
type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the server at addr and checks it answers.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:       addr,
		Username:   username,
		Password:   password,
		DB:         db,
		ClientName: clientName,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &client{conn: conn}, nil
}
