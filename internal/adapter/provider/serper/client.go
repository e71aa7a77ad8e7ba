// Package serper implements the places-search provider backed by the
// Serper maps API.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/kceleski/ava-care-compass/internal/config"
	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/provider"
)

const maxResponseBytes = 4 << 20

// Client calls the maps search endpoint. Outbound calls are throttled by a
// shared token bucket; failures are reported once and never retried.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewClient creates a Client from SerperConfig.
func NewClient(cfg config.SerperConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1)),
		log:        logger.With("adapter", "serper"),
	}
}

// SearchPlaces runs one maps search. Any transport error, non-2xx status or
// undecodable body is returned wrapped in domain.ErrProvider.
func (c *Client) SearchPlaces(ctx context.Context, query, placeType string, num int) (provider.PlacesResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return provider.PlacesResult{}, fmt.Errorf("serper: rate limit wait: %w", err)
	}

	body, err := json.Marshal(mapsRequest{Q: query, Type: placeType, Num: num})
	if err != nil {
		return provider.PlacesResult{}, fmt.Errorf("serper: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/maps", bytes.NewReader(body))
	if err != nil {
		return provider.PlacesResult{}, fmt.Errorf("serper: create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "serper request", slog.String("query", query), slog.Int("num", num))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "serper request failed", slog.String("query", query), slog.String("error", err.Error()))
		return provider.PlacesResult{}, domain.NewProviderError("serper", "request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return provider.PlacesResult{}, domain.NewProviderError("serper", "read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WarnContext(ctx, "serper error status", slog.Int("status", resp.StatusCode))
		return provider.PlacesResult{}, &domain.ProviderError{Provider: "serper", Op: "maps search", Status: resp.StatusCode}
	}

	var decoded mapsResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return provider.PlacesResult{}, domain.NewProviderError("serper", "decode json", err)
	}

	c.log.DebugContext(ctx, "serper response",
		slog.Int("status", resp.StatusCode),
		slog.Int("places", len(decoded.Places)),
	)

	places := make([]provider.PlaceResult, 0, len(decoded.Places))
	for _, p := range decoded.Places {
		places = append(places, p.toResult())
	}

	return provider.PlacesResult{Places: places, Raw: raw}, nil
}
