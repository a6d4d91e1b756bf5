package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackHeaders_Missing(t *testing.T) {
	full := CallbackHeaders{Timestamp: "ts", PartnerID: "p", Signature: "s", ExternalID: "e"}

	tests := []struct {
		name    string
		mutate  func(h *CallbackHeaders)
		missing []string
	}{
		{"complete", func(h *CallbackHeaders) {}, nil},
		{"no timestamp", func(h *CallbackHeaders) { h.Timestamp = "" }, []string{HeaderTimestamp}},
		{"no partner", func(h *CallbackHeaders) { h.PartnerID = "" }, []string{HeaderPartnerID}},
		{"no signature", func(h *CallbackHeaders) { h.Signature = "" }, []string{HeaderSignature}},
		{"no external id", func(h *CallbackHeaders) { h.ExternalID = "" }, []string{HeaderExternalID}},
		{"channel optional", func(h *CallbackHeaders) { h.ChannelID = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := full
			tt.mutate(&h)
			assert.Equal(t, tt.missing, h.Missing())
			assert.Equal(t, tt.missing == nil, h.Complete())
		})
	}
}

func TestVirtualAccountRequest_WireShape(t *testing.T) {
	req := VirtualAccountRequest{
		VirtualAccountName:    "John Doe",
		TrxID:                 "TRX-1",
		TotalAmount:           Amount{Value: "150000.00", Currency: "IDR"},
		VirtualAccountTrxType: "c",
		AdditionalInfo:        VAAdditionalInfo{Channel: "BCA"},
	}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t,
		`{"virtualAccountName":"John Doe","trxId":"TRX-1","totalAmount":{"value":"150000.00","currency":"IDR"},"virtualAccountTrxType":"c","additionalInfo":{"channel":"BCA"}}`,
		string(b))
}

func TestNewPaidRecord(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cb := &VirtualAccountCallback{
		VirtualAccountNo: "8808123",
		TrxID:            "TRX-9",
		PaymentRequestID: "PR-1",
		PaidAmount:       Amount{Value: "150000.00", Currency: "IDR"},
		ReferenceNo:      "REF-1",
		AdditionalInfo:   CallbackAdditionalInfo{Channel: "BRI", ContractID: "C-1"},
	}

	rec := NewPaidRecord(cb, "EXT-1", now)

	assert.True(t, rec.IsPaid())
	assert.Equal(t, "TRX-9", rec.TrxID)
	assert.Equal(t, "EXT-1", rec.ExternalID)
	assert.Equal(t, "BRI", rec.Channel)
	assert.Equal(t, "C-1", rec.ContractID)
	require.NotNil(t, rec.PaidAt)
	assert.Equal(t, now, *rec.PaidAt)
}

func TestNewPendingRecord(t *testing.T) {
	now := time.Now()
	req := &VirtualAccountRequest{
		TrxID:          "TRX-2",
		TotalAmount:    Amount{Value: "10000.00", Currency: "IDR"},
		AdditionalInfo: VAAdditionalInfo{Channel: "BCA"},
	}

	rec := NewPendingRecord(req, "EXT-2", now)

	assert.False(t, rec.IsPaid())
	assert.Equal(t, PaymentStatusPending, rec.Status)
	assert.Equal(t, "10000.00", rec.Amount)
	assert.Nil(t, rec.PaidAt)
}
