package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/estateview/estateview/internal/models"
)

const defaultProviderTimeout = 10 * time.Second

// HTTPProviderConfig captures connection parameters for the AI content endpoint.
type HTTPProviderConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPProvider calls an external content-generation API over HTTP. Every
// request carries a bounded timeout so a slow provider cannot stall the
// caller indefinitely.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider validates the configuration and builds the provider.
func NewHTTPProvider(cfg HTTPProviderConfig) (*HTTPProvider, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("content provider: base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("content provider: invalid base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	return &HTTPProvider{
		baseURL: base,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// FetchCityNews requests a city-specific investment news ticker.
func (p *HTTPProvider) FetchCityNews(ctx context.Context, city string) (string, error) {
	return p.generate(ctx, models.KindDailyNews, city)
}

// FetchTrendingNews requests market-wide trending investment news.
func (p *HTTPProvider) FetchTrendingNews(ctx context.Context) (string, error) {
	return p.generate(ctx, models.KindTrendingNews, "")
}

// FetchCityInvestmentInfo requests an investment summary for a city.
func (p *HTTPProvider) FetchCityInvestmentInfo(ctx context.Context, city string) (string, error) {
	return p.generate(ctx, models.KindInvestmentInfo, city)
}

type generateRequest struct {
	Kind string `json:"kind"`
	City string `json:"city,omitempty"`
}

type generateResponse struct {
	Content string `json:"content"`
}

func (p *HTTPProvider) generate(ctx context.Context, kind models.ContentKind, city string) (string, error) {
	if p == nil {
		return "", errors.New("content provider: not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := json.Marshal(generateRequest{Kind: string(kind), City: city})
	if err != nil {
		return "", &FetchError{Kind: kind, City: city, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", &FetchError{Kind: kind, City: city, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &FetchError{Kind: kind, City: city, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &FetchError{Kind: kind, City: city, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &FetchError{Kind: kind, City: city, Err: fmt.Errorf("decode response: %w", err)}
	}

	return payload.Content, nil
}
