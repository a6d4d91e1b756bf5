package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ObserveCallback(t *testing.T) {
	svc := NewService(prometheus.NewRegistry())

	svc.ObserveCallback("2002500")
	svc.ObserveCallback("2002500")
	svc.ObserveCallback("4010000")

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.callbacksTotal.WithLabelValues("2002500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.callbacksTotal.WithLabelValues("4010000")))
}

func TestService_ObserveGatewayCall(t *testing.T) {
	svc := NewService(prometheus.NewRegistry())

	svc.ObserveGatewayCall("success", 120*time.Millisecond)
	svc.ObserveGatewayCall("signing_error", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(svc.gatewayCallsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.gatewayCallsTotal.WithLabelValues("signing_error")))
	assert.Equal(t, 1, testutil.CollectAndCount(svc.gatewayCallDuration), "signing errors never reach the wire")
}

func TestService_Handler(t *testing.T) {
	svc := NewService(prometheus.NewRegistry())
	svc.ObserveHTTPRequest(http.MethodPost, "/api/v1/va", http.StatusOK, 30*time.Millisecond)

	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `asf_http_requests_total{method="POST",route="/api/v1/va",status="200"} 1`)
	assert.Contains(t, string(body), "asf_http_request_duration_seconds_bucket")
}
