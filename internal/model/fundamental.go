package model

// CompanyProfile is the provider's company description. Field names
// follow the FMP response; any field may be absent.
type CompanyProfile struct {
	CompanyName string  `json:"companyName"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	MktCap      float64 `json:"mktCap"`
	Description string  `json:"description"`
	CEO         string  `json:"ceo"`
	Website     string  `json:"website"`
	Exchange    string  `json:"exchangeShortName"`
	Country     string  `json:"country"`
	Employees   string  `json:"fullTimeEmployees"`
}

// KeyMetrics carries the valuation and health ratios used for banding.
// Zero means the provider did not report the ratio.
type KeyMetrics struct {
	PERatio      float64 `json:"peRatio"`
	PBRatio      float64 `json:"pbRatio"`
	DebtToEquity float64 `json:"debtToEquity"`
	ROE          float64 `json:"roe"` // fraction, not percent
	ROA          float64 `json:"roa"`
	CurrentRatio float64 `json:"currentRatio"`
}

// NewsArticle is one provider news item.
type NewsArticle struct {
	Title         string `json:"title"`
	PublishedDate string `json:"publishedDate"`
	Site          string `json:"site"`
	URL           string `json:"url"`
}

// AnalystGrade is a single analyst rating change.
type AnalystGrade struct {
	GradingCompany string `json:"gradingCompany"`
	NewGrade       string `json:"newGrade"`
	Date           string `json:"date"`
}

// RatingCounts buckets recent analyst grades.
type RatingCounts struct {
	Buy    int            `json:"buy"`
	Hold   int            `json:"hold"`
	Sell   int            `json:"sell"`
	Recent []AnalystGrade `json:"recent"`
}

// EarningsEvent is the next scheduled earnings report.
type EarningsEvent struct {
	Date             string   `json:"date"`
	EPSEstimated     *float64 `json:"epsEstimated"`
	RevenueEstimated *float64 `json:"revenueEstimated"`
}

// FundamentalData bundles everything fetched from the fundamentals
// provider. Any field may be nil/empty when the provider has no data.
type FundamentalData struct {
	Profile  *CompanyProfile `json:"profile"`
	Metrics  *KeyMetrics     `json:"metrics"`
	News     []NewsArticle   `json:"news"`
	Ratings  *RatingCounts   `json:"ratings"`
	Earnings *EarningsEvent  `json:"earnings"`
}

// ProfileAnalysis is the interpreted company profile.
type ProfileAnalysis struct {
	Available          bool    `json:"available"`
	CompanyName        string  `json:"company_name,omitempty"`
	Sector             string  `json:"sector,omitempty"`
	Industry           string  `json:"industry,omitempty"`
	MarketCap          float64 `json:"market_cap,omitempty"`
	MarketCapFormatted string  `json:"market_cap_formatted,omitempty"`
	Description        string  `json:"description,omitempty"`
	CEO                string  `json:"ceo,omitempty"`
	Website            string  `json:"website,omitempty"`
	Exchange           string  `json:"exchange,omitempty"`
	Country            string  `json:"country,omitempty"`
	Employees          string  `json:"employees,omitempty"`
}

// MetricsAnalysis is the banded interpretation of the key ratios.
// Nil ratio pointers mean the provider did not report the value; the
// interpretation label is "N/A" in that case.
type MetricsAnalysis struct {
	Available bool `json:"available"`

	PERatio          *float64 `json:"pe_ratio"`
	PEInterpretation string   `json:"pe_interpretation"`
	PBRatio          *float64 `json:"pb_ratio"`
	PBInterpretation string   `json:"pb_interpretation"`

	ROEPct            *float64 `json:"roe"` // percent
	ROEInterpretation string   `json:"roe_interpretation"`
	ROAPct            *float64 `json:"roa"`

	DebtToEquity            *float64 `json:"debt_to_equity"`
	DebtInterpretation      string   `json:"debt_interpretation"`
	CurrentRatio            *float64 `json:"current_ratio"`
	LiquidityInterpretation string   `json:"liquidity_interpretation"`
}

// NewsAnalysis trims the news feed to the most recent articles.
type NewsAnalysis struct {
	Available  bool          `json:"available"`
	Count      int           `json:"count,omitempty"`
	Articles   []NewsArticle `json:"articles"`
	LatestDate string        `json:"latest_date,omitempty"`
}

// RatingsAnalysis is the analyst consensus derived from grade counts.
type RatingsAnalysis struct {
	Available     bool           `json:"available"`
	Buy           int            `json:"buy,omitempty"`
	Hold          int            `json:"hold,omitempty"`
	Sell          int            `json:"sell,omitempty"`
	Total         int            `json:"total,omitempty"`
	Consensus     string         `json:"consensus,omitempty"`
	BuyPercentage float64        `json:"buy_percentage,omitempty"`
	Recent        []AnalystGrade `json:"recent_ratings,omitempty"`
}

// EarningsAnalysis is the interpreted earnings calendar entry.
type EarningsAnalysis struct {
	Available        bool     `json:"available"`
	Date             string   `json:"date,omitempty"`
	EPSEstimated     *float64 `json:"eps_estimated,omitempty"`
	RevenueEstimated *float64 `json:"revenue_estimated,omitempty"`
}

// FundamentalSummary is the complete fundamental analysis result.
type FundamentalSummary struct {
	Profile  ProfileAnalysis  `json:"profile"`
	Metrics  MetricsAnalysis  `json:"metrics"`
	News     NewsAnalysis     `json:"news"`
	Ratings  RatingsAnalysis  `json:"ratings"`
	Earnings EarningsAnalysis `json:"earnings"`
}
