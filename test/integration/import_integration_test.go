//go:build integration

package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

// testClientConfig returns fast retry settings for a local downstream.
func testClientConfig() config.ClientConfig {
	return config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     time.Second,
		},
	}
}

func newRemoteSource(t *testing.T, a *testApp, baseURL string, count int) *app.RemoteSource {
	t.Helper()

	client, err := clients.New("quotable", baseURL, testClientConfig(), a.logger)
	require.NoError(t, err)

	return app.NewRemoteSource(acl.NewQuoteClient(client, a.logger), "quotable", count, 2, a.logger)
}

func seedQuote(t *testing.T, a *testApp, text string) {
	t.Helper()

	_, err := a.services.Quotes.Create(context.Background(), domain.QuoteFields{Text: text})
	require.NoError(t, err)
}

func TestRemoteImport_ReplacesCatalog(t *testing.T) {
	a, err := newTestApp(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.close)

	seedQuote(t, a, "replaced by the import")

	var calls atomic.Int64
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random", r.URL.Path)

		n := calls.Add(1)
		// The first call fails transiently and is retried by the client.
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"_id":"r%d","content":"Remote quote %d","author":"Remote Author","dateAdded":"2021-03-04"}`, n, n)
	}))
	t.Cleanup(api.Close)

	summary, err := a.importer().Import(context.Background(), newRemoteSource(t, a, api.URL, 3))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Quotes)
	assert.Equal(t, 1, summary.Authors)
	assert.Equal(t, int64(1), summary.RemovedQuotes)
	assert.Equal(t, int64(4), calls.Load())

	quotes, err := a.services.Quotes.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	for _, q := range quotes {
		require.NotNil(t, q.Author)
		assert.Equal(t, "Remote Author", q.Author.FullName())
		assert.Equal(t, 2021, q.DateCreated.Year())
	}
}

func TestRemoteImport_DownstreamFailureKeepsCatalog(t *testing.T) {
	a, err := newTestApp(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.close)

	seedQuote(t, a, "still here")

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(api.Close)

	_, err = a.importer().Import(context.Background(), newRemoteSource(t, a, api.URL, 2))
	require.Error(t, err)

	quotes, err := a.services.Quotes.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "still here", quotes[0].Text)
}

func TestRemoteImport_DuplicatesDropped(t *testing.T) {
	a, err := newTestApp(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.close)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"same","content":"Always the same","author":""}`))
	}))
	t.Cleanup(api.Close)

	summary, err := a.importer().Import(context.Background(), newRemoteSource(t, a, api.URL, 4))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Quotes)
	assert.Equal(t, 0, summary.Authors)
}
