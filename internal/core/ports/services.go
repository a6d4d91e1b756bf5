package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"net/url"
	"time"

	"account-storefront/internal/core/domain"
)

// SignatureService builds canonical strings and signs/verifies them.
// Outbound (colon-delimited, RSA) and callback (newline-delimited, HMAC) forms are separate methods.
type SignatureService interface {
	BuildStringToSign(method, path string, body interface{}, timestamp string) (string, error)
	SignAsymmetric(stringToSign string, privateKey string) (string, error)
	VerifyAsymmetric(stringToSign string, signature string, publicKey string) bool
	BuildCallbackStringToSign(path string, body []byte, timestamp string) (string, error)
	SignSymmetric(secret string, stringToSign string) string
	VerifyCallback(body []byte, timestamp string, signature string, secret string, path string) bool
}

// IdentifierGenerator produces transaction identifiers and gateway timestamps.
type IdentifierGenerator interface {
	TrxID() string
	ExternalID() string
	Timestamp() string
	Expiry(hours int) string
}

// UpstreamResponse is a raw upstream reply relayed to callers unchanged.
type UpstreamResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsSuccess reports a 2xx upstream status.
func (r *UpstreamResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// PaymentGateway posts pre-signed requests to the payment gateway.
type PaymentGateway interface {
	Post(ctx context.Context, path string, headers map[string]string, body []byte) (*UpstreamResponse, error)
}

// MarketplaceAPI issues authenticated GETs against the marketplace catalogue.
type MarketplaceAPI interface {
	Get(ctx context.Context, path string, query url.Values, token string) (*UpstreamResponse, error)
}

// ResponseCache stores upstream bodies for short periods.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PaymentMetrics records payment-path outcomes.
type PaymentMetrics interface {
	ObserveCallback(responseCode string)
	ObserveGatewayCall(outcome string, elapsed time.Duration)
}

// AuditService records payment-path decisions without blocking the request.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// CreateVARequest is the caller's payment intent.
type CreateVARequest struct {
	CustomerNo            string         `json:"customerNo"`
	VirtualAccountName    string         `json:"virtualAccountName" validate:"required,notblank"`
	TrxID                 string         `json:"trxId" validate:"required,notblank"`
	TotalAmount           *domain.Amount `json:"totalAmount" validate:"required"`
	VirtualAccountTrxType string         `json:"virtualAccountTrxType" validate:"required,notblank"`
	ExpiredDate           string         `json:"expiredDate"`
	Channel               string         `json:"channel"`
}

// VirtualAccountService creates VAs at the gateway and reports their state.
type VirtualAccountService interface {
	CreateVirtualAccount(ctx context.Context, req CreateVARequest) (*UpstreamResponse, error)
	GetPaymentStatus(ctx context.Context, trxID string) (*domain.PaymentRecord, error)
}

// CallbackResult is the acknowledgement returned to the gateway.
type CallbackResult struct {
	HTTPStatus      int
	ResponseCode    string
	ResponseMessage string
}

// CallbackService verifies and acknowledges gateway payment callbacks.
type CallbackService interface {
	HandlePayment(ctx context.Context, headers domain.CallbackHeaders, body []byte) CallbackResult
}

// MarketplaceService proxies catalogue reads.
type MarketplaceService interface {
	Fetch(ctx context.Context, category string, query url.Values) (*UpstreamResponse, error)
}
