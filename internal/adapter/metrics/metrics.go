package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service provides Prometheus metrics for the storefront.
// It implements ports.PaymentMetrics and middleware.HTTPMetrics.
type Service struct {
	gatherer prometheus.Gatherer

	// HTTP Metrics
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// Payment Metrics
	callbacksTotal      *prometheus.CounterVec
	gatewayCallDuration *prometheus.HistogramVec
	gatewayCallsTotal   *prometheus.CounterVec
}

// NewService registers all collectors on reg. Pass prometheus.NewRegistry() in tests.
func NewService(reg *prometheus.Registry) *Service {
	f := promauto.With(reg)
	return &Service{
		gatherer: reg,
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asf_http_requests_total",
				Help: "Total number of HTTP requests by method, route, status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "asf_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		callbacksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asf_payment_callbacks_total",
				Help: "Payment callbacks by acknowledgement responseCode",
			},
			[]string{"response_code"},
		),
		gatewayCallDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "asf_gateway_call_duration_seconds",
				Help:    "Latency of create-va calls to the payment gateway",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"outcome"},
		),
		gatewayCallsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asf_gateway_calls_total",
				Help: "Create-va attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (s *Service) ObserveCallback(responseCode string) {
	s.callbacksTotal.WithLabelValues(responseCode).Inc()
}

// ObserveGatewayCall counts every attempt; latency is only recorded when a request was sent.
func (s *Service) ObserveGatewayCall(outcome string, elapsed time.Duration) {
	s.gatewayCallsTotal.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		s.gatewayCallDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	}
}

func (s *Service) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	s.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})
}
