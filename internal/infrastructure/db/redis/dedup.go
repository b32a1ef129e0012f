package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zerosmoke/health-portal/internal/api/metrics"
)

const defaultDedupWindow = time.Hour

// ContactDedup remembers contact-form fingerprints for a fixed window so a
// resubmitted form maps back to the message it already created.
// Key format: dedup:contact:<fingerprint>
type ContactDedup struct {
	client *redis.Client
	window time.Duration
}

// NewContactDedup wraps client. A non-positive window uses one hour.
func NewContactDedup(client *redis.Client, window time.Duration) *ContactDedup {
	if window <= 0 {
		window = defaultDedupWindow
	}
	return &ContactDedup{client: client, window: window}
}

// Lookup returns the message ID stored for fingerprint, or "" when unseen.
func (d *ContactDedup) Lookup(ctx context.Context, fingerprint string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := d.client.Get(ctx, contactKey(fingerprint)).Result()
	if errors.Is(err, redis.Nil) {
		metrics.ContactDedupTotal.WithLabelValues("miss").Inc()
		return "", nil
	}
	if err != nil {
		metrics.ContactDedupTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("dedup lookup: %w", err)
	}
	metrics.ContactDedupTotal.WithLabelValues("hit").Inc()
	return id, nil
}

// Mark records messageID under fingerprint until the window expires.
func (d *ContactDedup) Mark(ctx context.Context, fingerprint, messageID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := d.client.Set(ctx, contactKey(fingerprint), messageID, d.window).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func contactKey(fingerprint string) string {
	return "dedup:contact:" + fingerprint
}
