package service

import (
	"context"
	"time"

	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports"

	"github.com/rs/zerolog"
)

const paymentCacheTTL = 10 * time.Minute

// CachedTransactionStore puts a PaymentCache in front of a TransactionStore.
// The cache is best-effort: its failures are logged and the backing store answers.
// Only PAID records are cached; a PENDING read can race a callback's invalidation.
type CachedTransactionStore struct {
	store ports.TransactionStore
	cache ports.PaymentCache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedTransactionStore creates a cached store. A zero ttl uses the default.
func NewCachedTransactionStore(store ports.TransactionStore, cache ports.PaymentCache, ttl time.Duration, log zerolog.Logger) *CachedTransactionStore {
	if ttl <= 0 {
		ttl = paymentCacheTTL
	}
	return &CachedTransactionStore{store: store, cache: cache, ttl: ttl, log: log}
}

func (s *CachedTransactionStore) RecordPending(ctx context.Context, record *domain.PaymentRecord) error {
	if err := s.store.RecordPending(ctx, record); err != nil {
		return err
	}
	s.invalidate(ctx, record.TrxID)
	return nil
}

func (s *CachedTransactionStore) RecordPayment(ctx context.Context, record *domain.PaymentRecord) (bool, error) {
	recorded, err := s.store.RecordPayment(ctx, record)
	if err != nil {
		return false, err
	}
	s.invalidate(ctx, record.TrxID)
	return recorded, nil
}

func (s *CachedTransactionStore) GetByTrxID(ctx context.Context, trxID string) (*domain.PaymentRecord, error) {
	// Layer 1: Redis
	cached, err := s.cache.Get(ctx, trxID)
	if err != nil {
		s.log.Warn().Err(err).Str("trx_id", trxID).Msg("payment cache lookup failed, falling through to store")
	}
	if cached != nil {
		return cached, nil
	}

	// Layer 2: backing store
	rec, err := s.store.GetByTrxID(ctx, trxID)
	if err != nil || rec == nil || !rec.IsPaid() {
		return rec, err
	}

	if err := s.cache.Set(ctx, rec, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("trx_id", trxID).Msg("failed to cache payment record")
	}
	return rec, nil
}

func (s *CachedTransactionStore) invalidate(ctx context.Context, trxID string) {
	if err := s.cache.Delete(ctx, trxID); err != nil {
		s.log.Warn().Err(err).Str("trx_id", trxID).Msg("failed to invalidate payment cache")
	}
}
