package handler

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"account-storefront/config"
	"account-storefront/internal/adapter/gateway"
	"account-storefront/internal/adapter/storage/memory"
	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports"
	"account-storefront/internal/core/ports/mocks"
	"account-storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	e2ePartnerID = "PARTNER-1"
	e2eSecret    = "callback-secret"
	e2eTimestamp = "2024-05-01T10:05:00+07:00"
)

// capturedRequest is what the fake gateway saw.
type capturedRequest struct {
	header http.Header
	body   []byte
}

type e2eEnv struct {
	router  *gin.Engine
	sigSvc  *service.GatewaySignatureService
	pubPEM  string
	mu      sync.Mutex
	gateway []capturedRequest
}

func (e *e2eEnv) gatewayRequests() []capturedRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]capturedRequest(nil), e.gateway...)
}

func generatePEMKeys(t *testing.T) (privatePEM, publicPEM string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
		string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
}

// setupE2E wires real services against a fake gateway and an in-memory store.
func setupE2E(t *testing.T, sigOverride ports.SignatureService, auditSvc ports.AuditService) *e2eEnv {
	t.Helper()
	env := &e2eEnv{sigSvc: service.NewSignatureService()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		env.mu.Lock()
		env.gateway = append(env.gateway, capturedRequest{header: r.Header.Clone(), body: body})
		env.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseCode":"2002700","responseMessage":"Successful","virtualAccountData":{"virtualAccountNo":"  8808001"}}`))
	}))
	t.Cleanup(srv.Close)

	privPEM, pubPEM := generatePEMKeys(t)
	env.pubPEM = pubPEM

	cfg := config.GatewayConfig{
		BaseURL:        srv.URL,
		PartnerID:      e2ePartnerID,
		ChannelID:      "95221",
		PrivateKey:     privPEM,
		ClientSecret:   e2eSecret,
		DefaultChannel: "BCA",
		ExpiryHours:    24,
	}

	var sigSvc ports.SignatureService = env.sigSvc
	if sigOverride != nil {
		sigSvc = sigOverride
	}

	store := memory.NewPaymentStore()
	log := zerolog.Nop()
	vaSvc := service.NewVAService(cfg, env.sigSvc, service.NewIdentifierService(), gateway.NewClient(cfg.BaseURL, srv.Client()), store, nil, log)
	callbackSvc := service.NewCallbackService(cfg, sigSvc, store, nil, log)

	env.router = SetupRouter(RouterDeps{
		VASvc:       vaSvc,
		CallbackSvc: callbackSvc,
		AuditSvc:    auditSvc,
		Logger:      log,
		Mode:        gin.TestMode,
	})
	return env
}

func (e *e2eEnv) signedCallbackHeaders(t *testing.T, body string) map[string]string {
	t.Helper()
	sts, err := e.sigSvc.BuildCallbackStringToSign(domain.PathPaymentCallback, []byte(body), e2eTimestamp)
	require.NoError(t, err)
	return map[string]string{
		"Content-Type":          "application/json",
		domain.HeaderTimestamp:  e2eTimestamp,
		domain.HeaderPartnerID:  e2ePartnerID,
		domain.HeaderSignature:  e.sigSvc.SignSymmetric(e2eSecret, sts),
		domain.HeaderExternalID: "CB-1",
		domain.HeaderChannelID:  "95221",
	}
}

const e2eCallbackBody = `{
  "partnerServiceId": "  8808",
  "customerNo": "001",
  "virtualAccountNo": "  8808001",
  "virtualAccountName": "John Doe",
  "trxId": "TRX-1",
  "paymentRequestId": "PR-1",
  "paidAmount": {"value": "150000.00", "currency": "IDR"},
  "trxDateTime": "2024-05-01T10:04:59+07:00",
  "referenceNo": "REF-1",
  "additionalInfo": {"channel": "BCA", "contractId": "C-1"}
}`

func TestE2E_CreateVASignsExactBody(t *testing.T) {
	env := setupE2E(t, nil, nil)
	body := `{"virtualAccountName":"John Doe","trxId":"TRX-1","totalAmount":{"value":"150000.00","currency":"IDR"},"virtualAccountTrxType":"c","channel":"BCA"}`

	w := doRequest(env.router, http.MethodPost, "/api/v1/va", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "2002700")

	reqs := env.gatewayRequests()
	require.Len(t, reqs, 1)
	sent := reqs[0]

	assert.Equal(t, e2ePartnerID, sent.header.Get(domain.HeaderPartnerID))
	assert.Equal(t, "95221", sent.header.Get(domain.HeaderChannelID))
	assert.Regexp(t, `^EXT-\d{13}-[0-9a-z]{13}$`, sent.header.Get(domain.HeaderExternalID))
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\+07:00$`, sent.header.Get(domain.HeaderTimestamp))

	sts, err := env.sigSvc.BuildStringToSign(http.MethodPost, domain.PathCreateVA, sent.body, sent.header.Get(domain.HeaderTimestamp))
	require.NoError(t, err)
	assert.True(t, env.sigSvc.VerifyAsymmetric(sts, sent.header.Get(domain.HeaderSignature), env.pubPEM),
		"signature must verify against the exact bytes sent")

	var outbound map[string]interface{}
	require.NoError(t, json.Unmarshal(sent.body, &outbound))
	assert.Equal(t, "TRX-1", outbound["trxId"])
	assert.Equal(t, map[string]interface{}{"channel": "BCA"}, outbound["additionalInfo"])
	assert.NotEmpty(t, outbound["expiredDate"])
}

func TestE2E_MissingMandatoryFieldNeverReachesGateway(t *testing.T) {
	env := setupE2E(t, nil, nil)
	body := `{"trxId":"TRX-1","totalAmount":{"value":"150000.00","currency":"IDR"},"virtualAccountTrxType":"c"}`

	w := doRequest(env.router, http.MethodPost, "/api/v1/va", body, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"responseCode":"4002702","responseMessage":"Invalid Mandatory Field virtualAccountName"}`, w.Body.String())
	assert.Empty(t, env.gatewayRequests())
}

func TestE2E_Callback_ValidSignatureAcknowledged(t *testing.T) {
	env := setupE2E(t, nil, nil)

	w := doRequest(env.router, http.MethodPost, domain.PathPaymentCallback, e2eCallbackBody, env.signedCallbackHeaders(t, e2eCallbackBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"responseCode":"2002500","responseMessage":"Successful"}`, w.Body.String())
}

func TestE2E_Callback_PartnerMismatch(t *testing.T) {
	env := setupE2E(t, nil, nil)
	headers := env.signedCallbackHeaders(t, e2eCallbackBody)
	headers[domain.HeaderPartnerID] = "PARTNER-2"

	w := doRequest(env.router, http.MethodPost, domain.PathPaymentCallback, e2eCallbackBody, headers)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"responseCode":"4010001","responseMessage":"Unauthorized. Unknown partner"}`, w.Body.String())
}

func TestE2E_Callback_MissingSignatureNoCrypto(t *testing.T) {
	ctrl := gomock.NewController(t)
	sig := mocks.NewMockSignatureService(ctrl)
	// No expectations: any signature call fails the test.
	env := setupE2E(t, sig, nil)

	headers := env.signedCallbackHeaders(t, e2eCallbackBody)
	delete(headers, domain.HeaderSignature)

	w := doRequest(env.router, http.MethodPost, domain.PathPaymentCallback, e2eCallbackBody, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"responseCode":"4000000"`)
}

func TestE2E_Callback_TamperedBodyRejected(t *testing.T) {
	env := setupE2E(t, nil, nil)
	headers := env.signedCallbackHeaders(t, e2eCallbackBody)
	tampered := `{"trxId":"TRX-1","paidAmount":{"value":"1.00","currency":"IDR"}}`

	w := doRequest(env.router, http.MethodPost, domain.PathPaymentCallback, tampered, headers)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"responseCode":"4010000"`)
}

func TestE2E_PaymentLifecycle(t *testing.T) {
	env := setupE2E(t, nil, nil)

	status := func() string {
		w := doRequest(env.router, http.MethodGet, "/api/v1/va/TRX-1", "", nil)
		if w.Code != http.StatusOK {
			return w.Body.String()
		}
		var payload struct {
			Data struct {
				Status string `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		return payload.Data.Status
	}

	assert.Contains(t, status(), "4042701")

	create := `{"virtualAccountName":"John Doe","trxId":"TRX-1","totalAmount":{"value":"150000.00","currency":"IDR"},"virtualAccountTrxType":"c"}`
	require.Equal(t, http.StatusOK, doRequest(env.router, http.MethodPost, "/api/v1/va", create, nil).Code)
	assert.Equal(t, "PENDING", status())

	headers := env.signedCallbackHeaders(t, e2eCallbackBody)
	for i := 0; i < 2; i++ {
		w := doRequest(env.router, http.MethodPost, domain.PathPaymentCallback, e2eCallbackBody, headers)
		assert.Equal(t, `{"responseCode":"2002500","responseMessage":"Successful"}`, w.Body.String(), "attempt %d", i+1)
	}
	assert.Equal(t, "PAID", status())
}

func TestE2E_CallbackAudited(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditService(ctrl)

	done := make(chan *domain.AuditLog, 1)
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		done <- entry
	})

	env := setupE2E(t, nil, audit)
	headers := env.signedCallbackHeaders(t, e2eCallbackBody)
	headers[domain.HeaderPartnerID] = "PARTNER-2"
	doRequest(env.router, http.MethodPost, domain.PathPaymentCallback, e2eCallbackBody, headers)

	select {
	case entry := <-done:
		assert.Equal(t, domain.AuditActionPaymentCallback, entry.Action)
		assert.Equal(t, "CB-1", entry.ResourceID)
		assert.Equal(t, "4010001", entry.ResponseCode)
		assert.Equal(t, http.StatusUnauthorized, entry.Status)
	case <-time.After(time.Second):
		t.Fatal("audit not called")
	}
}
