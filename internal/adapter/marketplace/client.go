package marketplace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"account-storefront/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 8 << 20

// ErrResponseTooLarge is returned instead of relaying a truncated body.
var ErrResponseTooLarge = errors.New("marketplace response exceeds size limit")

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.MarketplaceAPI.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	tracer     trace.Tracer
}

func NewClient(baseURL string, httpClient HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tracer:     otel.Tracer("account-storefront/marketplace"),
	}
}

// Get issues an authenticated GET and returns the reply unchanged.
func (c *Client) Get(ctx context.Context, path string, query url.Values, token string) (*ports.UpstreamResponse, error) {
	ctx, span := c.tracer.Start(ctx, "marketplace.Get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("marketplace.path", path)))
	defer span.End()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, fmt.Errorf("build marketplace request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, fmt.Errorf("marketplace request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, fmt.Errorf("read marketplace response: %w", err)
	}
	if len(body) > maxResponseBytes {
		span.RecordError(ErrResponseTooLarge)
		span.SetStatus(codes.Error, "read body")
		return nil, ErrResponseTooLarge
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	return &ports.UpstreamResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
