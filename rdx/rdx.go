// Package rdx is a thin, best-effort Redis wrapper. Every failure is logged
// and swallowed; Redis going away must never take a request down with it.
package rdx

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

const sessionsKey = "admin:sessions"

type Client struct {
	conn *redis.Client
}

// Connect parses url and returns a client. An empty url returns a disabled
// client whose methods are no-ops.
func Connect(url string) *Client {
	if url == "" {
		return &Client{}
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("rdx: bad REDIS_URL, running without redis: %v", err)
		return &Client{}
	}
	return &Client{conn: redis.NewClient(opts)}
}

// SetSession mirrors an issued session token, keyed by account id.
func (c *Client) SetSession(ctx context.Context, accountID, token string) {
	if c.conn == nil {
		return
	}
	if err := c.conn.HSet(ctx, sessionsKey, accountID, token).Err(); err != nil {
		log.Printf("rdx: session cache failed: %v", err)
	}
}

// DelSession drops the mirrored token on logout.
func (c *Client) DelSession(ctx context.Context, accountID string) {
	if c.conn == nil {
		return
	}
	if err := c.conn.HDel(ctx, sessionsKey, accountID).Err(); err != nil {
		log.Printf("rdx: session remove failed: %v", err)
	}
}

func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
