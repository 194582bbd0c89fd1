package content

import (
	"context"
	"fmt"

	"github.com/estateview/estateview/internal/models"
)

// Provider produces fresh AI-generated text for a city and content kind.
// Implementations may be slow and may fail; callers decide how to degrade.
type Provider interface {
	FetchCityNews(ctx context.Context, city string) (string, error)
	FetchTrendingNews(ctx context.Context) (string, error)
	FetchCityInvestmentInfo(ctx context.Context, city string) (string, error)
}

// FetchError marks a failure that originated in the content provider rather
// than in local storage. The caching service swallows these and serves empty
// content; any other error propagates.
type FetchError struct {
	Kind models.ContentKind
	City string
	Err  error
}

func (e *FetchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.City == "" {
		return fmt.Sprintf("content provider: fetch %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("content provider: fetch %s for %q: %v", e.Kind, e.City, e.Err)
}

func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
