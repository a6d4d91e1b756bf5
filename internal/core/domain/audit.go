package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateVA        AuditAction = "CREATE_VA"
	AuditActionPaymentCallback AuditAction = "PAYMENT_CALLBACK"
)

// AuditLog records one payment-path decision. Callbacks are audited whatever
// their outcome; VA creation only when it succeeds.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Status       int         `json:"status"`
	ResponseCode string      `json:"response_code,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
