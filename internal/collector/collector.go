package collector

import (
	"fmt"
	"log"
	"time"

	"StockScope/internal/cache"
	"StockScope/internal/model"
)

// Collector fetches price history through an optional TTL cache and
// assembles the read-only series handed to the analysis core.
type Collector struct {
	Fetcher  Fetcher
	Cache    cache.Cache
	Lookback int // days of history to request
	TTL      time.Duration
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, c cache.Cache, lookback int, ttl time.Duration) *Collector {
	if c == nil {
		c = cache.NewNoopCache()
	}
	return &Collector{Fetcher: fetcher, Cache: c, Lookback: lookback, TTL: ttl}
}

// CollectSeries returns the daily price series for a symbol, serving
// from cache when fresh enough.
func (c *Collector) CollectSeries(symbol string) (*model.PriceSeries, error) {
	if bars, ok := c.Cache.GetBars(symbol, c.TTL); ok {
		return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
	}

	bars, err := c.Fetcher.FetchDailyBars(symbol, c.Lookback)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	if err := c.Cache.PutBars(symbol, bars); err != nil {
		log.Printf("[WARN] cache store %s: %v", symbol, err)
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

// CollectFundamentals returns provider fundamentals through the TTL
// cache. A nil or disabled client yields nil; fundamentals are optional.
func (c *Collector) CollectFundamentals(fmp *FMPClient, symbol string) *model.FundamentalData {
	if fmp == nil || !fmp.Enabled() {
		return nil
	}
	if data, ok := c.Cache.GetFundamentals(symbol, c.TTL); ok {
		return data
	}
	data := fmp.FetchAll(symbol)
	if err := c.Cache.PutFundamentals(symbol, data); err != nil {
		log.Printf("[WARN] cache fundamentals %s: %v", symbol, err)
	}
	return data
}
