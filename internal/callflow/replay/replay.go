package replay

import (
	"context"
	"errors"
	"time"

	"ivr-server/internal/clients/redis"
	"ivr-server/internal/observability"
)

const keyPrefix = "ivr:replay:"

// Cache remembers the markup returned for a recording so that a callback retried
// by Twilio with the same RecordingSid is answered without being processed again.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

// New creates a Cache. With a disabled client every lookup misses and nothing is stored.
func New(client *redis.Client, ttl time.Duration, logger *observability.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Lookup returns the markup previously stored for recordingSid.
func (c *Cache) Lookup(ctx context.Context, recordingSid string) (string, bool) {
	if recordingSid == "" || !c.client.IsEnabled() {
		return "", false
	}

	doc, err := c.client.Get(ctx, keyPrefix+recordingSid)
	if err != nil {
		if !errors.Is(err, redis.ErrKeyNotFound) {
			// a cache outage must not block the call
			c.logger.Error(ctx, "failed to read replay cache", err)
		}
		return "", false
	}
	return doc, true
}

// Remember stores doc as the answer for recordingSid.
func (c *Cache) Remember(ctx context.Context, recordingSid, doc string) {
	if recordingSid == "" || !c.client.IsEnabled() {
		return
	}

	if err := c.client.Set(ctx, keyPrefix+recordingSid, doc, c.ttl); err != nil {
		c.logger.Error(ctx, "failed to write replay cache", err)
	}
}
