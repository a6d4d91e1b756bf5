package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"account-storefront/internal/core/domain"
	"account-storefront/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func auditRouter(auditSvc *mocks.MockAuditService, status int, code string) *gin.Engine {
	r := gin.New()
	r.Use(AuditLog(auditSvc))
	h := func(c *gin.Context) {
		c.Set(CtxResourceID, "EXT-1")
		c.Set(CtxResponseCode, code)
		c.JSON(status, gin.H{"responseCode": code})
	}
	r.POST("/api/v1/va", h)
	r.POST(domain.PathPaymentCallback, h)
	r.GET("/api/v1/va/:trxId", h)
	return r
}

func TestAuditLog_CreateVASuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	done := make(chan struct{})
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionCreateVA, entry.Action)
			assert.Equal(t, "virtual_account", entry.ResourceType)
			assert.Equal(t, "EXT-1", entry.ResourceID)
			assert.Equal(t, http.StatusOK, entry.Status)
			assert.Contains(t, entry.Details, `"path":"/api/v1/va"`)
			close(done)
		},
	)

	w := httptest.NewRecorder()
	auditRouter(mockAudit, http.StatusOK, "2002700").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/va", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("audit not called")
	}
}

func TestAuditLog_CreateVAFailureSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations - Log should NOT be called for 4xx

	w := httptest.NewRecorder()
	auditRouter(mockAudit, http.StatusBadRequest, "4002702").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/va", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditLog_RejectedCallbackAudited(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	var got *domain.AuditLog
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		got = entry
	})

	w := httptest.NewRecorder()
	auditRouter(mockAudit, http.StatusUnauthorized, "4010000").
		ServeHTTP(w, httptest.NewRequest(http.MethodPost, domain.PathPaymentCallback, nil))

	if assert.NotNil(t, got) {
		assert.Equal(t, domain.AuditActionPaymentCallback, got.Action)
		assert.Equal(t, "4010000", got.ResponseCode)
		assert.Equal(t, http.StatusUnauthorized, got.Status)
	}
}

func TestAuditLog_SkipsGET(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations - Log should NOT be called for GET

	w := httptest.NewRecorder()
	auditRouter(mockAudit, http.StatusOK, "2000000").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/va/TRX-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
