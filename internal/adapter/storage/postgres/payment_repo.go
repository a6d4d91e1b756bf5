package postgres

import (
	"context"
	"errors"
	"fmt"

	"account-storefront/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const paymentColumns = `trx_id, external_id, virtual_account_no, channel, amount, currency, status,
	payment_request_id, reference_no, contract_id, paid_at, created_at, updated_at`

// PaymentRepo implements ports.TransactionStore on the payment_records table.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// RecordPending inserts a PENDING record. An existing row for trxId is kept as is.
func (r *PaymentRepo) RecordPending(ctx context.Context, rec *domain.PaymentRecord) error {
	query := `INSERT INTO payment_records (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (trx_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, paymentArgs(rec)...)
	if err != nil {
		return fmt.Errorf("insert pending payment: %w", err)
	}
	return nil
}

// RecordPayment upserts a PAID record in one statement. The conditional update
// skips rows that are already PAID, so a replayed callback returns false.
func (r *PaymentRepo) RecordPayment(ctx context.Context, rec *domain.PaymentRecord) (bool, error) {
	query := `INSERT INTO payment_records (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (trx_id) DO UPDATE SET
			virtual_account_no = EXCLUDED.virtual_account_no,
			status             = EXCLUDED.status,
			payment_request_id = EXCLUDED.payment_request_id,
			reference_no       = EXCLUDED.reference_no,
			contract_id        = EXCLUDED.contract_id,
			paid_at            = EXCLUDED.paid_at,
			updated_at         = EXCLUDED.updated_at
		WHERE payment_records.status <> 'PAID'
		RETURNING trx_id`

	var trxID string
	err := r.pool.QueryRow(ctx, query, paymentArgs(rec)...).Scan(&trxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("upsert paid payment: %w", err)
	}
	return true, nil
}

// GetByTrxID fetches a record. Returns nil, nil when not found.
func (r *PaymentRepo) GetByTrxID(ctx context.Context, trxID string) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_records WHERE trx_id = $1`

	rec := &domain.PaymentRecord{}
	var status string
	err := r.pool.QueryRow(ctx, query, trxID).Scan(
		&rec.TrxID, &rec.ExternalID, &rec.VirtualAccountNo, &rec.Channel,
		&rec.Amount, &rec.Currency, &status,
		&rec.PaymentRequestID, &rec.ReferenceNo, &rec.ContractID,
		&rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by trx id: %w", err)
	}
	rec.Status = domain.PaymentStatus(status)
	return rec, nil
}

func paymentArgs(rec *domain.PaymentRecord) []any {
	return []any{
		rec.TrxID, rec.ExternalID, rec.VirtualAccountNo, rec.Channel,
		rec.Amount, rec.Currency, string(rec.Status),
		rec.PaymentRequestID, rec.ReferenceNo, rec.ContractID,
		rec.PaidAt, rec.CreatedAt, rec.UpdatedAt,
	}
}
