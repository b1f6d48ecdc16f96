package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"StockScope/internal/model"
)

const defaultFMPBaseURL = "https://financialmodelingprep.com/api/v3"

// gradeSample caps how many recent analyst grades feed the consensus.
const gradeSample = 5

// FMPClient fetches fundamental data from the Financial Modeling Prep
// REST API. Every method degrades to nil on failure: fundamentals are
// optional and must never abort an analysis.
type FMPClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewFMPClient creates a client with optional proxy support. An empty
// API key yields a client whose fetches all return nil.
func NewFMPClient(baseURL, apiKey, proxyURL string) *FMPClient {
	if baseURL == "" {
		baseURL = defaultFMPBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FMPClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *FMPClient) Enabled() bool { return c.APIKey != "" }

// FetchAll gathers every fundamental data set for a ticker. Individual
// failures are logged and leave their field nil.
func (c *FMPClient) FetchAll(symbol string) *model.FundamentalData {
	return &model.FundamentalData{
		Profile:  c.FetchProfile(symbol),
		Metrics:  c.FetchKeyMetrics(symbol),
		News:     c.FetchNews(symbol, 5),
		Ratings:  c.FetchRatings(symbol),
		Earnings: c.FetchEarnings(symbol),
	}
}

// FetchProfile returns the company profile, or nil.
func (c *FMPClient) FetchProfile(symbol string) *model.CompanyProfile {
	var profiles []model.CompanyProfile
	if err := c.getJSON(fmt.Sprintf("/profile/%s", url.PathEscape(symbol)), nil, &profiles); err != nil {
		log.Printf("[WARN] fmp profile %s: %v", symbol, err)
		return nil
	}
	if len(profiles) == 0 {
		return nil
	}
	return &profiles[0]
}

// FetchKeyMetrics returns the latest key metrics row, or nil.
func (c *FMPClient) FetchKeyMetrics(symbol string) *model.KeyMetrics {
	var metrics []model.KeyMetrics
	if err := c.getJSON(fmt.Sprintf("/key-metrics/%s", url.PathEscape(symbol)), url.Values{"limit": {"1"}}, &metrics); err != nil {
		log.Printf("[WARN] fmp key metrics %s: %v", symbol, err)
		return nil
	}
	if len(metrics) == 0 {
		return nil
	}
	return &metrics[0]
}

// FetchNews returns the latest articles for a ticker.
func (c *FMPClient) FetchNews(symbol string, limit int) []model.NewsArticle {
	var news []model.NewsArticle
	params := url.Values{"tickers": {symbol}, "limit": {fmt.Sprintf("%d", limit)}}
	if err := c.getJSON("/stock_news", params, &news); err != nil {
		log.Printf("[WARN] fmp news %s: %v", symbol, err)
		return nil
	}
	return news
}

// FetchRatings buckets the most recent analyst grades into
// buy/hold/sell counts, or returns nil when no grades exist.
func (c *FMPClient) FetchRatings(symbol string) *model.RatingCounts {
	var grades []model.AnalystGrade
	if err := c.getJSON(fmt.Sprintf("/grade/%s", url.PathEscape(symbol)), url.Values{"limit": {"10"}}, &grades); err != nil {
		log.Printf("[WARN] fmp ratings %s: %v", symbol, err)
		return nil
	}
	if len(grades) == 0 {
		return nil
	}

	counts := &model.RatingCounts{}
	for i, g := range grades {
		if i >= gradeSample {
			break
		}
		grade := strings.ToLower(g.NewGrade)
		switch {
		case strings.Contains(grade, "buy") || strings.Contains(grade, "outperform"):
			counts.Buy++
		case strings.Contains(grade, "hold") || strings.Contains(grade, "neutral"):
			counts.Hold++
		case strings.Contains(grade, "sell") || strings.Contains(grade, "underperform"):
			counts.Sell++
		}
		counts.Recent = append(counts.Recent, g)
	}
	return counts
}

// FetchEarnings returns the next earnings calendar entry, or nil.
func (c *FMPClient) FetchEarnings(symbol string) *model.EarningsEvent {
	var events []model.EarningsEvent
	if err := c.getJSON("/earnings-calendar", url.Values{"symbol": {symbol}}, &events); err != nil {
		log.Printf("[WARN] fmp earnings %s: %v", symbol, err)
		return nil
	}
	if len(events) == 0 {
		return nil
	}
	return &events[0]
}

func (c *FMPClient) getJSON(path string, params url.Values, out interface{}) error {
	if !c.Enabled() {
		return fmt.Errorf("fmp api key not configured")
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.APIKey)

	endpoint := fmt.Sprintf("%s%s?%s", c.BaseURL, path, params.Encode())
	resp, err := c.Client.Get(endpoint)
	if err != nil {
		return fmt.Errorf("fmp fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fmp: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fmp decode: %w", err)
	}
	return nil
}
