package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"account-storefront/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maxResponseBytes caps how much of an upstream reply is buffered for relay.
// A larger reply is an error rather than a truncated relay.
const maxResponseBytes = 4 << 20

// ErrResponseTooLarge is returned when the gateway reply exceeds maxResponseBytes.
var ErrResponseTooLarge = errors.New("gateway response exceeds size limit")

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.PaymentGateway over HTTP. It makes exactly one attempt per call.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	tracer     trace.Tracer
}

// NewClient creates a gateway client rooted at baseURL.
func NewClient(baseURL string, httpClient HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tracer:     otel.Tracer("account-storefront/gateway"),
	}
}

// Post sends body as-is. The body must be the exact bytes that were signed.
func (c *Client) Post(ctx context.Context, path string, headers map[string]string, body []byte) (*ports.UpstreamResponse, error) {
	ctx, span := c.tracer.Start(ctx, "gateway.Post",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodPost),
			attribute.String("gateway.path", path),
		))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, fmt.Errorf("build gateway request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	out, err := readUpstream(resp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if out.IsSuccess() {
		span.SetStatus(codes.Ok, http.StatusText(resp.StatusCode))
	} else {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	return out, nil
}

func readUpstream(resp *http.Response) (*ports.UpstreamResponse, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, ErrResponseTooLarge
	}
	return &ports.UpstreamResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
