package duckduckgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hH-13/tilde/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestClient_FetchPhrases(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "go lang", r.URL.Query().Get("q"))
		assert.Contains(t, r.Header.Get("User-Agent"), "tilde")
		_, _ = w.Write([]byte(`[{"phrase":"golang"},{"phrase":""},{"phrase":"golang tutorial"}]`))
	})

	c, err := NewClient(Config{Endpoint: srv.URL + "/ac/", Timeout: time.Second})
	require.NoError(t, err)

	phrases, err := c.FetchPhrases(testContext(), "go lang")
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "golang tutorial"}, phrases)
}

func TestClient_KeepsEndpointQuery(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "list", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`["zi",["zig","zinc"]]`))
	})

	c, err := NewClient(Config{Endpoint: srv.URL + "/ac/?type=list"})
	require.NoError(t, err)

	phrases, err := c.FetchPhrases(testContext(), "zi")
	require.NoError(t, err)
	assert.Equal(t, []string{"zig", "zinc"}, phrases)
}

func TestClient_Errors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv, _ := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		c, err := NewClient(Config{Endpoint: srv.URL})
		require.NoError(t, err)

		_, err = c.FetchPhrases(testContext(), "x")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("bad body", func(t *testing.T) {
		srv, _ := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"phrase":"not an array"}`))
		})
		c, err := NewClient(Config{Endpoint: srv.URL})
		require.NoError(t, err)

		_, err = c.FetchPhrases(testContext(), "x")
		assert.ErrorContains(t, err, "failed to decode response")
	})

	t.Run("timeout", func(t *testing.T) {
		srv, _ := newServer(t, func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		c, err := NewClient(Config{Endpoint: srv.URL, Timeout: 20 * time.Millisecond})
		require.NoError(t, err)

		_, err = c.FetchPhrases(testContext(), "x")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		_, err := NewClient(Config{Endpoint: "not a url"})
		assert.Error(t, err)
	})
}

func TestClient_CacheExpires(t *testing.T) {
	srv, hits := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"phrase":"cached"}]`))
	})

	clock := clockwork.NewFakeClock()
	c, err := NewClient(Config{Endpoint: srv.URL, CacheTTL: time.Minute}, WithClock(clock))
	require.NoError(t, err)

	ctx := testContext()
	for range 3 {
		phrases, err := c.FetchPhrases(ctx, "q")
		require.NoError(t, err)
		assert.Equal(t, []string{"cached"}, phrases)
	}
	assert.Equal(t, int32(1), hits.Load())

	clock.Advance(time.Minute)
	_, err = c.FetchPhrases(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_CacheDisabled(t *testing.T) {
	srv, hits := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	c, err := NewClient(Config{Endpoint: srv.URL})
	require.NoError(t, err)

	for range 2 {
		phrases, err := c.FetchPhrases(testContext(), "q")
		require.NoError(t, err)
		assert.Empty(t, phrases)
	}
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	srv, hits := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	c, err := NewClient(Config{Endpoint: srv.URL, RatePerSecond: 0.001, Burst: 1})
	require.NoError(t, err)

	_, err = c.FetchPhrases(testContext(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(testContext(), 20*time.Millisecond)
	defer cancel()
	_, err = c.FetchPhrases(ctx, "second")
	assert.ErrorContains(t, err, "rate limit wait")
	assert.Equal(t, int32(1), hits.Load())
}

func TestPhraseCache_Eviction(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := newPhraseCache(clock, time.Second)

	for i := range maxCacheEntries {
		cache.put(string(rune('a'+i%26))+string(rune(i)), []string{"x"})
	}
	require.Equal(t, maxCacheEntries, cache.len())

	cache.put("overflow", []string{"y"})
	assert.Equal(t, 1, cache.len())

	got, ok := cache.get("overflow")
	require.True(t, ok)
	assert.Equal(t, []string{"y"}, got)
}
