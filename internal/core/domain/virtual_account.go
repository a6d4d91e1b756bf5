package domain

// Gateway header names, shared by the outbound create-va call and the inbound payment callback.
const (
	HeaderTimestamp  = "X-Timestamp"
	HeaderPartnerID  = "X-Partner-ID"
	HeaderSignature  = "X-Signature"
	HeaderExternalID = "X-External-ID"
	HeaderChannelID  = "Channel-ID"
)

// Gateway endpoint paths. They are part of the string-to-sign on both sides.
const (
	PathCreateVA        = "/v1.0/transfer-va/create-va"
	PathPaymentCallback = "/v1.0/transfer-va/payment"
)

const (
	DefaultChannel  = "BCA"
	DefaultCurrency = "IDR"
)

// Amount is a gateway money value; Value carries two decimals, e.g. "150000.00".
type Amount struct {
	Value    string `json:"value" validate:"required,notblank"`
	Currency string `json:"currency"`
}

// VAAdditionalInfo is the nested additionalInfo object of create-va.
type VAAdditionalInfo struct {
	Channel string `json:"channel"`
}

// VirtualAccountRequest is the create-va body sent upstream.
// Field order is the serialization order and therefore part of the signed bytes.
type VirtualAccountRequest struct {
	CustomerNo            string           `json:"customerNo,omitempty"`
	VirtualAccountName    string           `json:"virtualAccountName"`
	TrxID                 string           `json:"trxId"`
	TotalAmount           Amount           `json:"totalAmount"`
	VirtualAccountTrxType string           `json:"virtualAccountTrxType"`
	ExpiredDate           string           `json:"expiredDate,omitempty"`
	AdditionalInfo        VAAdditionalInfo `json:"additionalInfo"`
}
