package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman28tc/pricing-scrapper/crawl"
)

func TestDomainLimiter_paces_requests_to_one_host(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(100) // 10ms between requests

	start := time.Now()
	for range 3 {
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
	}
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDomainLimiter_hosts_are_independent(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(1) // 1 rps would make same-host waits visible

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))
	require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
	require.NoError(t, limiter.Wait(context.Background(), "c.example.com"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDomainLimiter_respects_context_cancellation(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(0.001)
	require.NoError(t, limiter.Wait(context.Background(), "example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx, "example.com")
	assert.Error(t, err)
}
