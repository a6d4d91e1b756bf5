package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"account-storefront/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaidRecord() *domain.PaymentRecord {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PaymentRecord{
		TrxID:            "TRX-1",
		ExternalID:       "EXT-1714532700000-abc",
		VirtualAccountNo: "  8808001",
		Channel:          "BCA",
		Amount:           "150000.00",
		Currency:         "IDR",
		Status:           domain.PaymentStatusPaid,
		PaymentRequestID: "PR-1",
		ReferenceNo:      "REF-1",
		ContractID:       "C-1",
		PaidAt:           &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func paymentColumnNames() []string {
	return []string{"trx_id", "external_id", "virtual_account_no", "channel", "amount", "currency", "status",
		"payment_request_id", "reference_no", "contract_id", "paid_at", "created_at", "updated_at"}
}

func expectPaymentArgs(rec *domain.PaymentRecord) []any {
	return []any{
		rec.TrxID, rec.ExternalID, rec.VirtualAccountNo, rec.Channel,
		rec.Amount, rec.Currency, string(rec.Status),
		rec.PaymentRequestID, rec.ReferenceNo, rec.ContractID,
		rec.PaidAt, rec.CreatedAt, rec.UpdatedAt,
	}
}

func TestPaymentRepo_RecordPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := &domain.PaymentRecord{
		TrxID: "TRX-2", ExternalID: "EXT-2", Channel: "BCA",
		Amount: "10000.00", Currency: "IDR", Status: domain.PaymentStatusPending,
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO payment_records .+ ON CONFLICT \\(trx_id\\) DO NOTHING").
		WithArgs(expectPaymentArgs(rec)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.RecordPending(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_RecordPending_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	rec := newTestPaidRecord()

	mock.ExpectExec("INSERT INTO payment_records").
		WithArgs(expectPaymentArgs(rec)...).
		WillReturnError(errors.New("connection refused"))

	err = repo.RecordPending(context.Background(), rec)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert pending payment")
}

func TestPaymentRepo_RecordPayment_FirstTime(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	rec := newTestPaidRecord()

	mock.ExpectQuery("INSERT INTO payment_records .+ WHERE payment_records.status <> 'PAID'\\s+RETURNING trx_id").
		WithArgs(expectPaymentArgs(rec)...).
		WillReturnRows(pgxmock.NewRows([]string{"trx_id"}).AddRow("TRX-1"))

	recorded, err := repo.RecordPayment(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, recorded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_RecordPayment_AlreadyPaid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	rec := newTestPaidRecord()

	mock.ExpectQuery("INSERT INTO payment_records").
		WithArgs(expectPaymentArgs(rec)...).
		WillReturnRows(pgxmock.NewRows([]string{"trx_id"}))

	recorded, err := repo.RecordPayment(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, recorded, "replayed callback must not count as a new payment")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_RecordPayment_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	rec := newTestPaidRecord()

	mock.ExpectQuery("INSERT INTO payment_records").
		WithArgs(expectPaymentArgs(rec)...).
		WillReturnError(errors.New("deadlock detected"))

	_, err = repo.RecordPayment(context.Background(), rec)
	assert.Error(t, err)
}

func TestPaymentRepo_GetByTrxID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	rec := newTestPaidRecord()

	mock.ExpectQuery("SELECT .+ FROM payment_records WHERE trx_id").
		WithArgs("TRX-1").
		WillReturnRows(pgxmock.NewRows(paymentColumnNames()).AddRow(
			rec.TrxID, rec.ExternalID, rec.VirtualAccountNo, rec.Channel,
			rec.Amount, rec.Currency, "PAID",
			rec.PaymentRequestID, rec.ReferenceNo, rec.ContractID,
			rec.PaidAt, rec.CreatedAt, rec.UpdatedAt,
		))

	got, err := repo.GetByTrxID(context.Background(), "TRX-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.PaymentStatusPaid, got.Status)
	assert.Equal(t, "PR-1", got.PaymentRequestID)
	assert.Equal(t, "C-1", got.ContractID)
	assert.True(t, got.IsPaid())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByTrxID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_records WHERE trx_id").
		WithArgs("TRX-X").
		WillReturnRows(pgxmock.NewRows(paymentColumnNames()))

	got, err := repo.GetByTrxID(context.Background(), "TRX-X")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS payment_records").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS audit_logs").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_audit_logs_resource").WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS payment_records").WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), mock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "apply schema")
}

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT 1").WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	hc := NewHealthCheck(mock)
	assert.NoError(t, hc.Ping(context.Background()))
	assert.Equal(t, "postgresql", hc.Name())
}
