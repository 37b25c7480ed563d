package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scrapper "github.com/roman28tc/pricing-scrapper"
	"github.com/roman28tc/pricing-scrapper/mock"
	"github.com/roman28tc/pricing-scrapper/slog"
)

func newLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
}

func TestFetcher_logs_successful_fetches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html>ok</html>", nil
		},
	}

	fetcher := slog.NewFetcher(next, newLogger(&buf))

	html, err := fetcher.Fetch(context.Background(), "https://example.com/products")
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", html)

	log := buf.String()
	assert.Contains(t, log, "url=https://example.com/products")
	assert.Contains(t, log, "bytes=15")
}

func TestFetcher_logs_errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", scrapper.Errorf(scrapper.EUNAVAILABLE, "HTTP 503 for %s", url)
		},
	}

	fetcher := slog.NewFetcher(next, newLogger(&buf))

	_, err := fetcher.Fetch(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "HTTP 503")
}

func TestFetcher_Close_delegates(t *testing.T) {
	t.Parallel()

	var closed bool
	next := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	fetcher := slog.NewFetcher(next, newLogger(&bytes.Buffer{}))
	require.NoError(t, fetcher.Close())
	assert.True(t, closed)
}

func TestDetector_logs_the_detected_platform(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.Detector{
		DetectFn: func(html string) scrapper.Platform {
			return scrapper.PlatformProm
		},
	}

	detector := slog.NewDetector(next, newLogger(&buf))

	assert.Equal(t, scrapper.PlatformProm, detector.Detect("<html></html>"))
	assert.Contains(t, buf.String(), "platform=prom")
}
