package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHTTPProviderRequiresBaseURL(t *testing.T) {
	_, err := NewHTTPProvider(HTTPProviderConfig{})
	require.Error(t, err)
}

func TestHTTPProviderFetchCityNews(t *testing.T) {
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/generate", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(generateResponse{Content: "Mumbai market steady"})
	}))
	defer srv.Close()

	provider, err := NewHTTPProvider(HTTPProviderConfig{BaseURL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)

	text, err := provider.FetchCityNews(context.Background(), "Mumbai")
	require.NoError(t, err)
	require.Equal(t, "Mumbai market steady", text)
	require.Equal(t, "daily_news", gotReq.Kind)
	require.Equal(t, "Mumbai", gotReq.City)
}

func TestHTTPProviderTrendingOmitsCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "trending_news", req.Kind)
		require.Equal(t, "", req.City)

		_ = json.NewEncoder(w).Encode(generateResponse{Content: "Market up 5%"})
	}))
	defer srv.Close()

	provider, err := NewHTTPProvider(HTTPProviderConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := provider.FetchTrendingNews(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Market up 5%", text)
}

func TestHTTPProviderNonOKStatusIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider, err := NewHTTPProvider(HTTPProviderConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = provider.FetchCityInvestmentInfo(context.Background(), "Pune")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "Pune", fetchErr.City)
}

func TestHTTPProviderTimeoutIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	provider, err := NewHTTPProvider(HTTPProviderConfig{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = provider.FetchCityNews(context.Background(), "Mumbai")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
