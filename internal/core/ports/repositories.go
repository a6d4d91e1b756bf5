package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"account-storefront/internal/core/domain"
)

// TransactionStore records VA payment state keyed by trxId.
// Implementations live outside the core; the core only calls this port.
type TransactionStore interface {
	// RecordPending stores a freshly created VA. An existing record is left untouched.
	RecordPending(ctx context.Context, record *domain.PaymentRecord) error
	// RecordPayment marks trxId as paid. Returns false if it was already paid.
	RecordPayment(ctx context.Context, record *domain.PaymentRecord) (bool, error)
	// GetByTrxID returns nil, nil when trxId is unknown.
	GetByTrxID(ctx context.Context, trxID string) (*domain.PaymentRecord, error)
}

// PaymentCache is the Redis fast path in front of a TransactionStore.
type PaymentCache interface {
	Get(ctx context.Context, trxID string) (*domain.PaymentRecord, error) // Returns nil, nil on miss
	Set(ctx context.Context, record *domain.PaymentRecord, ttl time.Duration) error
	Delete(ctx context.Context, trxID string) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
