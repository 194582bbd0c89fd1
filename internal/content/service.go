package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/estateview/estateview/internal/models"
	"github.com/estateview/estateview/pkg/logger"
	"github.com/estateview/estateview/pkg/metrics"
)

// ErrReservedCity rejects the sentinel city value when supplied by callers,
// so trending content can never be shadowed by a crafted city name.
var ErrReservedCity = errors.New("content service: city name is reserved")

// Service orchestrates the cache store and the content provider. Reads hit
// the store first; on a miss the provider is called exactly once and the
// result persisted. Provider failures degrade to empty content, storage
// failures propagate.
type Service struct {
	store    *Store
	provider Provider
	log      *zap.Logger
}

// NewService constructs the caching content service.
func NewService(store *Store, provider Provider) (*Service, error) {
	if store == nil {
		return nil, errors.New("content service: store is required")
	}
	if provider == nil {
		return nil, errors.New("content service: provider is required")
	}
	return &Service{
		store:    store,
		provider: provider,
		log:      logger.WithModule("content"),
	}, nil
}

// CityNews returns the cached daily news ticker for a city, fetching and
// caching it on first request. An empty city falls back to trending news,
// matching the portal's behaviour when no city filter is selected.
func (s *Service) CityNews(ctx context.Context, city string) (string, error) {
	if s == nil {
		return "", errors.New("content service: not initialised")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return s.TrendingNews(ctx)
	}
	if city == models.TrendingCitySentinel {
		return "", ErrReservedCity
	}

	return s.lookup(ctx, city, models.KindDailyNews, func(ctx context.Context) (string, error) {
		return s.provider.FetchCityNews(ctx, city)
	})
}

// TrendingNews returns the cached market-wide news ticker, keyed under the
// reserved no-city sentinel.
func (s *Service) TrendingNews(ctx context.Context) (string, error) {
	if s == nil {
		return "", errors.New("content service: not initialised")
	}

	return s.lookup(ctx, models.TrendingCitySentinel, models.KindTrendingNews, func(ctx context.Context) (string, error) {
		return s.provider.FetchTrendingNews(ctx)
	})
}

// CityInvestmentInfo returns the cached investment summary for a city.
func (s *Service) CityInvestmentInfo(ctx context.Context, city string) (string, error) {
	if s == nil {
		return "", errors.New("content service: not initialised")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return "", errors.New("content service: city is required")
	}
	if city == models.TrendingCitySentinel {
		return "", ErrReservedCity
	}

	return s.lookup(ctx, city, models.KindInvestmentInfo, func(ctx context.Context) (string, error) {
		return s.provider.FetchCityInvestmentInfo(ctx, city)
	})
}

// Invalidate drops cached entries for a city, or for the trending sentinel
// when city is empty. This is the only refresh path: cached content has no
// implicit expiry.
func (s *Service) Invalidate(ctx context.Context, city string, kinds ...models.ContentKind) error {
	if s == nil {
		return errors.New("content service: not initialised")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		city = models.TrendingCitySentinel
	}
	return s.store.Invalidate(ctx, city, kinds...)
}

func (s *Service) lookup(ctx context.Context, city string, kind models.ContentKind, fetch func(context.Context) (string, error)) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	entry, found, err := s.store.Get(ctx, city, kind)
	if err != nil {
		return "", err
	}
	if found {
		metrics.ContentCacheLookups.WithLabelValues(string(kind), "hit").Inc()
		return entry.Content, nil
	}
	metrics.ContentCacheLookups.WithLabelValues(string(kind), "miss").Inc()

	start := time.Now()
	text, err := fetch(ctx)
	metrics.ProviderLatency.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderFailures.WithLabelValues(string(kind)).Inc()
		s.log.Warn("provider fetch failed, serving empty content",
			zap.String("city", city),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return "", nil
	}

	if _, err := s.store.Upsert(ctx, city, kind, text); err != nil {
		return "", err
	}

	return text, nil
}
