package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"account-storefront/config"
	"account-storefront/internal/core/ports"
	"account-storefront/pkg/apperror"

	"github.com/rs/zerolog"
)

// categoryGames returns a bare JSON array upstream; it is wrapped as {"data":[...]}.
const categoryGames = "games"

// MarketplaceServiceImpl implements ports.MarketplaceService.
// It is a pass-through: no signing and no reshaping apart from the games list.
type MarketplaceServiceImpl struct {
	cfg   config.MarketplaceConfig
	api   ports.MarketplaceAPI
	cache ports.ResponseCache
	log   zerolog.Logger
}

// NewMarketplaceService creates a new MarketplaceServiceImpl. cache may be nil.
func NewMarketplaceService(cfg config.MarketplaceConfig, api ports.MarketplaceAPI, cache ports.ResponseCache, log zerolog.Logger) *MarketplaceServiceImpl {
	return &MarketplaceServiceImpl{cfg: cfg, api: api, cache: cache, log: log}
}

// Fetch forwards GET /{category}?{query} with the configured bearer token.
func (s *MarketplaceServiceImpl) Fetch(ctx context.Context, category string, query url.Values) (*ports.UpstreamResponse, error) {
	if s.cfg.Token == "" {
		return nil, apperror.ErrMissingConfig("marketplace.token")
	}

	filtered := compactQuery(query)
	key := cacheKey(category, filtered)

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("marketplace cache lookup failed")
		}
		if cached != nil {
			return &ports.UpstreamResponse{StatusCode: http.StatusOK, ContentType: "application/json", Body: cached}, nil
		}
	}

	resp, err := s.api.Get(ctx, "/"+url.PathEscape(category), filtered, s.cfg.Token)
	if err != nil {
		s.log.Error().Err(err).Str("category", category).Msg("marketplace request failed")
		return nil, apperror.ErrUpstreamUnavailable(err)
	}
	if !resp.IsSuccess() {
		s.log.Warn().Str("category", category).Int("status", resp.StatusCode).Msg("marketplace returned non-2xx")
		return resp, nil
	}

	if category == categoryGames {
		resp.Body = wrapBareArray(resp.Body)
	}

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if err := s.cache.Set(ctx, key, resp.Body, s.cfg.CacheTTL); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to cache marketplace response")
		}
	}

	return resp, nil
}

// compactQuery drops empty filter values so upstream never sees "?foo=".
func compactQuery(query url.Values) url.Values {
	out := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			if v != "" {
				out.Add(k, v)
			}
		}
	}
	return out
}

// cacheKey is stable because url.Values.Encode sorts by key.
func cacheKey(category string, query url.Values) string {
	return fmt.Sprintf("marketplace:%s?%s", category, query.Encode())
}

func wrapBareArray(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return body
	}
	out := make([]byte, 0, len(trimmed)+9)
	out = append(out, `{"data":`...)
	out = append(out, trimmed...)
	out = append(out, '}')
	return out
}
