package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"account-storefront/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PaymentCache implements ports.PaymentCache. Records are stored as JSON under payment:{trxId}.
type PaymentCache struct {
	client goredis.Cmdable
	prefix string
}

// NewPaymentCache creates a new Redis-backed payment record cache.
func NewPaymentCache(client goredis.Cmdable) *PaymentCache {
	return &PaymentCache{
		client: client,
		prefix: "payment:",
	}
}

// Get returns nil, nil on a miss.
func (c *PaymentCache) Get(ctx context.Context, trxID string) (*domain.PaymentRecord, error) {
	val, err := c.client.Get(ctx, c.prefix+trxID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis payment get: %w", err)
	}

	var rec domain.PaymentRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("decode cached payment: %w", err)
	}
	return &rec, nil
}

func (c *PaymentCache) Set(ctx context.Context, rec *domain.PaymentRecord, ttl time.Duration) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode payment: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+rec.TrxID, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis payment set: %w", err)
	}
	return nil
}

func (c *PaymentCache) Delete(ctx context.Context, trxID string) error {
	if err := c.client.Del(ctx, c.prefix+trxID).Err(); err != nil {
		return fmt.Errorf("redis payment del: %w", err)
	}
	return nil
}
