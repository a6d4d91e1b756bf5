package domain

// CallbackAdditionalInfo carries the channel and the gateway contract ID.
type CallbackAdditionalInfo struct {
	Channel    string `json:"channel"`
	ContractID string `json:"contractId"`
}

// VirtualAccountCallback is the payment notification pushed by the gateway.
type VirtualAccountCallback struct {
	PartnerServiceID   string                 `json:"partnerServiceId"`
	CustomerNo         string                 `json:"customerNo"`
	VirtualAccountNo   string                 `json:"virtualAccountNo"`
	VirtualAccountName string                 `json:"virtualAccountName"`
	TrxID              string                 `json:"trxId"`
	PaymentRequestID   string                 `json:"paymentRequestId"`
	PaidAmount         Amount                 `json:"paidAmount"`
	TrxDateTime        string                 `json:"trxDateTime"`
	ReferenceNo        string                 `json:"referenceNo"`
	AdditionalInfo     CallbackAdditionalInfo `json:"additionalInfo"`
}

// CallbackHeaders are the gateway headers accompanying a callback.
// ChannelID is optional; the other four are mandatory.
type CallbackHeaders struct {
	Timestamp  string
	PartnerID  string
	Signature  string
	ExternalID string
	ChannelID  string
}

// Missing returns the names of absent mandatory headers, in a fixed order.
func (h CallbackHeaders) Missing() []string {
	var missing []string
	if h.Timestamp == "" {
		missing = append(missing, HeaderTimestamp)
	}
	if h.PartnerID == "" {
		missing = append(missing, HeaderPartnerID)
	}
	if h.Signature == "" {
		missing = append(missing, HeaderSignature)
	}
	if h.ExternalID == "" {
		missing = append(missing, HeaderExternalID)
	}
	return missing
}

// Complete reports whether every mandatory header is present.
func (h CallbackHeaders) Complete() bool {
	return len(h.Missing()) == 0
}
