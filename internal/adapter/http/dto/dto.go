package dto

import (
	"time"

	"account-storefront/internal/core/domain"
)

// TrxIDParam binds the :trxId path segment.
type TrxIDParam struct {
	TrxID string `uri:"trxId" binding:"required,max=64,safe_id"`
}

// CategoryParam binds the :category path segment of the marketplace proxy.
type CategoryParam struct {
	Category string `uri:"category" binding:"required,max=64,safe_id"`
}

// PaymentStatusResponse is the body of GET /api/v1/va/:trxId.
type PaymentStatusResponse struct {
	TrxID            string  `json:"trxId"`
	ExternalID       string  `json:"externalId"`
	VirtualAccountNo string  `json:"virtualAccountNo,omitempty"`
	Channel          string  `json:"channel,omitempty"`
	Amount           string  `json:"amount"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	PaymentRequestID string  `json:"paymentRequestId,omitempty"`
	ReferenceNo      string  `json:"referenceNo,omitempty"`
	PaidAt           *string `json:"paidAt,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// NewPaymentStatusResponse renders times in RFC 3339.
func NewPaymentStatusResponse(rec *domain.PaymentRecord) PaymentStatusResponse {
	resp := PaymentStatusResponse{
		TrxID:            rec.TrxID,
		ExternalID:       rec.ExternalID,
		VirtualAccountNo: rec.VirtualAccountNo,
		Channel:          rec.Channel,
		Amount:           rec.Amount,
		Currency:         rec.Currency,
		Status:           string(rec.Status),
		PaymentRequestID: rec.PaymentRequestID,
		ReferenceNo:      rec.ReferenceNo,
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.PaidAt != nil {
		s := rec.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &s
	}
	return resp
}
