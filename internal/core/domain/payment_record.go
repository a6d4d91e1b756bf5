package domain

import "time"

// PaymentStatus represents the lifecycle state of a VA payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// PaymentRecord is what a TransactionStore keeps per trxId.
type PaymentRecord struct {
	TrxID            string        `json:"trx_id"`
	ExternalID       string        `json:"external_id"`
	VirtualAccountNo string        `json:"virtual_account_no,omitempty"`
	Channel          string        `json:"channel"`
	Amount           string        `json:"amount"`
	Currency         string        `json:"currency"`
	Status           PaymentStatus `json:"status"`
	PaymentRequestID string        `json:"payment_request_id,omitempty"`
	ReferenceNo      string        `json:"reference_no,omitempty"`
	ContractID       string        `json:"contract_id,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// IsPaid returns true once a verified callback has been recorded.
func (r *PaymentRecord) IsPaid() bool {
	return r.Status == PaymentStatusPaid
}

// NewPendingRecord builds the record written after a successful create-va call.
func NewPendingRecord(req *VirtualAccountRequest, externalID string, now time.Time) *PaymentRecord {
	return &PaymentRecord{
		TrxID:      req.TrxID,
		ExternalID: externalID,
		Channel:    req.AdditionalInfo.Channel,
		Amount:     req.TotalAmount.Value,
		Currency:   req.TotalAmount.Currency,
		Status:     PaymentStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewPaidRecord builds the record written after an accepted payment callback.
func NewPaidRecord(cb *VirtualAccountCallback, externalID string, now time.Time) *PaymentRecord {
	return &PaymentRecord{
		TrxID:            cb.TrxID,
		ExternalID:       externalID,
		VirtualAccountNo: cb.VirtualAccountNo,
		Channel:          cb.AdditionalInfo.Channel,
		Amount:           cb.PaidAmount.Value,
		Currency:         cb.PaidAmount.Currency,
		Status:           PaymentStatusPaid,
		PaymentRequestID: cb.PaymentRequestID,
		ReferenceNo:      cb.ReferenceNo,
		ContractID:       cb.AdditionalInfo.ContractID,
		PaidAt:           &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
