package collector

import (
	"time"

	"StockScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return GenerateBars(m.Price, days), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	if len(m.DailyData) > 0 {
		return m.DailyData[len(m.DailyData)-1].Close, nil
	}
	return m.Price, nil
}

// GenerateBars produces a gently trending synthetic series around a
// base price.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
