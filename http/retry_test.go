package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scrapper "github.com/roman28tc/pricing-scrapper"
	scraphttp "github.com/roman28tc/pricing-scrapper/http"
	"github.com/roman28tc/pricing-scrapper/mock"
)

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns first successful result without retrying", func(t *testing.T) {
		t.Parallel()

		var calls int
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "<html>ok</html>", nil
			},
		}

		fetcher := scraphttp.NewRetryFetcher(next, []time.Duration{time.Millisecond})

		html, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until an attempt succeeds", func(t *testing.T) {
		t.Parallel()

		var calls int
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls < 3 {
					return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "HTTP 503 for %s", url)
				}
				return "<html>eventually</html>", nil
			},
		}

		fetcher := scraphttp.NewRetryFetcher(next, []time.Duration{time.Millisecond, time.Millisecond})

		html, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html>eventually</html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		var calls int
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "HTTP 500 for %s", url)
			},
		}

		fetcher := scraphttp.NewRetryFetcher(next, []time.Duration{time.Millisecond, time.Millisecond})

		_, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, scrapper.EUNAVAILABLE, scrapper.ErrorCode(err))
		assert.Equal(t, 3, calls)
	})

	t.Run("empty delay slice disables retries", func(t *testing.T) {
		t.Parallel()

		var calls int
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "HTTP 500 for %s", url)
			},
		}

		fetcher := scraphttp.NewRetryFetcher(next, []time.Duration{})

		_, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when context is cancelled", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "HTTP 500 for %s", url)
			},
		}

		fetcher := scraphttp.NewRetryFetcher(next, []time.Duration{time.Minute})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := fetcher.Fetch(ctx, "https://example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestRetryFetcher_Close_delegates(t *testing.T) {
	t.Parallel()

	var closed bool
	next := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	fetcher := scraphttp.NewRetryFetcher(next, nil)
	require.NoError(t, fetcher.Close())
	assert.True(t, closed)
}
