// Package cache layers a TTL store around the market-data fetchers.
// The analysis core never caches anything itself; this sits strictly
// outside the pure functions.
package cache

import (
	"time"

	"StockScope/internal/model"
)

// Cache stores fetched price bars and provider fundamentals per symbol
// with their fetch time.
type Cache interface {
	GetBars(symbol string, maxAge time.Duration) ([]model.OHLCV, bool)
	PutBars(symbol string, bars []model.OHLCV) error
	GetFundamentals(symbol string, maxAge time.Duration) (*model.FundamentalData, bool)
	PutFundamentals(symbol string, data *model.FundamentalData) error
	Close() error
}

// NoopCache is used when no cache path is configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) GetBars(_ string, _ time.Duration) ([]model.OHLCV, bool) { return nil, false }
func (n *NoopCache) PutBars(_ string, _ []model.OHLCV) error                 { return nil }
func (n *NoopCache) GetFundamentals(_ string, _ time.Duration) (*model.FundamentalData, bool) {
	return nil, false
}
func (n *NoopCache) PutFundamentals(_ string, _ *model.FundamentalData) error { return nil }
func (n *NoopCache) Close() error                                             { return nil }
