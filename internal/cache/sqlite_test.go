package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/model"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "bars.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func testBars(n int) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		p := 100 + float64(i)
		bars[i] = model.OHLCV{
			Time:   base.AddDate(0, 0, i),
			Open:   p - 0.5,
			High:   p + 1,
			Low:    p - 1,
			Close:  p,
			Volume: 1000 * float64(i+1),
		}
	}
	return bars
}

func TestSQLiteCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	bars := testBars(5)
	require.NoError(t, c.PutBars("AAPL", bars))

	got, ok := c.GetBars("AAPL", time.Hour)
	require.True(t, ok)
	require.Len(t, got, 5)
	for i := range bars {
		assert.Equal(t, bars[i].Time.Unix(), got[i].Time.Unix())
		assert.Equal(t, bars[i].Close, got[i].Close)
		assert.Equal(t, bars[i].Volume, got[i].Volume)
	}
}

func TestSQLiteCache_MissUnknownSymbol(t *testing.T) {
	c := newTestCache(t)
	_, ok := c.GetBars("MSFT", time.Hour)
	assert.False(t, ok)
}

func TestSQLiteCache_TTLExpiry(t *testing.T) {
	c := newTestCache(t)
	require.NoError(t, c.PutBars("AAPL", testBars(3)))

	_, ok := c.GetBars("AAPL", time.Nanosecond)
	assert.False(t, ok, "entry should be stale with a nanosecond TTL")
}

func TestSQLiteCache_PutReplaces(t *testing.T) {
	c := newTestCache(t)
	require.NoError(t, c.PutBars("AAPL", testBars(5)))
	require.NoError(t, c.PutBars("AAPL", testBars(2)))

	got, ok := c.GetBars("AAPL", time.Hour)
	require.True(t, ok)
	assert.Len(t, got, 2)
}

func TestSQLiteCache_FundamentalsRoundTrip(t *testing.T) {
	c := newTestCache(t)
	data := &model.FundamentalData{
		Profile: &model.CompanyProfile{CompanyName: "Apple Inc.", Sector: "Technology"},
		Metrics: &model.KeyMetrics{PERatio: 28.5},
	}
	require.NoError(t, c.PutFundamentals("AAPL", data))

	got, ok := c.GetFundamentals("AAPL", time.Hour)
	require.True(t, ok)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Apple Inc.", got.Profile.CompanyName)
	require.NotNil(t, got.Metrics)
	assert.Equal(t, 28.5, got.Metrics.PERatio)

	_, ok = c.GetFundamentals("AAPL", time.Nanosecond)
	assert.False(t, ok, "entry should be stale with a nanosecond TTL")

	_, ok = c.GetFundamentals("MSFT", time.Hour)
	assert.False(t, ok)
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	assert.NoError(t, c.PutBars("AAPL", testBars(2)))
	_, ok := c.GetBars("AAPL", time.Hour)
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}
