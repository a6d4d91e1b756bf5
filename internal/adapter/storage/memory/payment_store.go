package memory

import (
	"context"
	"sync"

	"account-storefront/internal/core/domain"
)

// PaymentStore is the process-local ports.TransactionStore used when no database is configured.
// Records are lost on restart.
type PaymentStore struct {
	mu      sync.RWMutex
	records map[string]*domain.PaymentRecord
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{records: make(map[string]*domain.PaymentRecord)}
}

func (s *PaymentStore) RecordPending(ctx context.Context, rec *domain.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[rec.TrxID]; ok {
		return nil
	}
	s.records[rec.TrxID] = clone(rec)
	return nil
}

// RecordPayment returns false when trxId is already PAID.
// A PENDING record keeps the fields set at creation: ExternalID, Channel,
// Amount, Currency and CreatedAt. This matches the Postgres upsert.
func (s *PaymentStore) RecordPayment(ctx context.Context, rec *domain.PaymentRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[rec.TrxID]
	if !ok {
		s.records[rec.TrxID] = clone(rec)
		return true, nil
	}
	if existing.IsPaid() {
		return false, nil
	}

	updated := clone(rec)
	updated.ExternalID = existing.ExternalID
	updated.Channel = existing.Channel
	updated.Amount = existing.Amount
	updated.Currency = existing.Currency
	updated.CreatedAt = existing.CreatedAt
	s.records[rec.TrxID] = updated
	return true, nil
}

func (s *PaymentStore) GetByTrxID(ctx context.Context, trxID string) (*domain.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[trxID]
	if !ok {
		return nil, nil
	}
	return clone(rec), nil
}

// clone keeps callers from mutating stored state.
func clone(rec *domain.PaymentRecord) *domain.PaymentRecord {
	c := *rec
	if rec.PaidAt != nil {
		paidAt := *rec.PaidAt
		c.PaidAt = &paidAt
	}
	return &c
}
