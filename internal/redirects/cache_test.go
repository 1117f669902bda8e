package redirects

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetcher is a FetchFunc with a controllable outcome and a call count.
type countingFetcher struct {
	mu    sync.Mutex
	calls int
	rules []Rule
	err   error
}

func (f *countingFetcher) fetch(ctx context.Context) ([]Rule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.rules, f.err
}

func (f *countingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *countingFetcher) set(rules []Rule, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = rules
	f.err = err
}

// newTestCache builds a cache with a manually advanced clock.
func newTestCache(fetcher *countingFetcher, ttl time.Duration) (*Cache, *time.Time) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache(fetcher.fetch, ttl)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCacheServesFreshWithoutRefetch(t *testing.T) {
	fetcher := &countingFetcher{rules: []Rule{{Source: "/old", Destination: "/new"}}}
	c, now := newTestCache(fetcher, 10*time.Minute)

	res := c.Rules(context.Background())
	require.NoError(t, res.Err)
	assert.False(t, res.Cached)
	assert.Equal(t, 1, fetcher.callCount())

	*now = now.Add(5 * time.Minute)
	res = c.Rules(context.Background())
	require.NoError(t, res.Err)
	assert.True(t, res.Cached)
	assert.False(t, res.Stale)
	assert.Len(t, res.Rules, 1)
	assert.Equal(t, 1, fetcher.callCount())
}

func TestCacheRefetchesAfterTTL(t *testing.T) {
	fetcher := &countingFetcher{rules: []Rule{{Source: "/a", Destination: "/b"}}}
	c, now := newTestCache(fetcher, 10*time.Minute)

	first := c.Rules(context.Background())
	fetcher.set([]Rule{{Source: "/a", Destination: "/c"}}, nil)

	*now = now.Add(10*time.Minute + time.Second)
	second := c.Rules(context.Background())

	assert.Equal(t, 2, fetcher.callCount())
	assert.Equal(t, "/c", second.Rules[0].Destination)
	assert.True(t, second.FilledAt.After(first.FilledAt))
}

func TestCacheServesStaleOnRefillFailure(t *testing.T) {
	fetcher := &countingFetcher{rules: []Rule{{Source: "/old", Destination: "/new"}}}
	c, now := newTestCache(fetcher, 10*time.Minute)

	first := c.Rules(context.Background())
	require.NoError(t, first.Err)

	fetcher.set(nil, errors.New("upstream down"))
	*now = now.Add(11 * time.Minute)

	res := c.Rules(context.Background())
	assert.True(t, res.Stale)
	assert.Error(t, res.Err)
	assert.Len(t, res.Rules, 1)
	// Stale serving keeps the original fill time; it does not pretend the set
	// is fresh.
	assert.Equal(t, first.FilledAt, res.FilledAt)

	// The failure is not cached as a success: the next read tries again.
	c.Rules(context.Background())
	assert.Equal(t, 3, fetcher.callCount())
}

func TestCacheColdStartFailureYieldsEmptySet(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("upstream down")}
	c, _ := newTestCache(fetcher, 10*time.Minute)

	res := c.Rules(context.Background())
	require.NotNil(t, res.Rules)
	assert.Empty(t, res.Rules)
	assert.Error(t, res.Err)
	assert.True(t, res.FilledAt.IsZero())

	// Recovery on the next read once the upstream is back.
	fetcher.set([]Rule{{Source: "/x", Destination: "/y"}}, nil)
	res = c.Rules(context.Background())
	require.NoError(t, res.Err)
	assert.Len(t, res.Rules, 1)
}

func TestCacheNilFetchResultBecomesEmptySet(t *testing.T) {
	fetcher := &countingFetcher{}
	c, _ := newTestCache(fetcher, 10*time.Minute)

	res := c.Rules(context.Background())
	require.NoError(t, res.Err)
	require.NotNil(t, res.Rules)
	assert.Empty(t, res.Rules)
}

func TestInvalidateForcesRefetchButKeepsStaleFallback(t *testing.T) {
	fetcher := &countingFetcher{rules: []Rule{{Source: "/old", Destination: "/new"}}}
	c, _ := newTestCache(fetcher, 10*time.Minute)

	c.Rules(context.Background())
	c.Invalidate()

	res := c.Rules(context.Background())
	assert.Equal(t, 2, fetcher.callCount())
	require.NoError(t, res.Err)

	// After invalidation a failing refetch still has the old rules to serve.
	c.Invalidate()
	fetcher.set(nil, errors.New("upstream down"))
	res = c.Rules(context.Background())
	assert.True(t, res.Stale)
	assert.Len(t, res.Rules, 1)
}

func TestConcurrentRefillsCollapseToOneFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	fetch := func(ctx context.Context) ([]Rule, error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-release
		}
		return []Rule{{Source: "/a", Destination: "/b"}}, nil
	}

	c := NewCache(fetch, 10*time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := c.Rules(context.Background())
			assert.Len(t, res.Rules, 1)
		}()
	}

	<-started
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}
