// Package fundamental interprets provider fundamental data into banded
// qualitative labels. Everything here is stateless and tolerant of
// missing fields: absent data yields an availability flag or "N/A",
// never an error.
package fundamental

import (
	"fmt"

	"StockScope/internal/model"
)

const maxRecentArticles = 5

// Summarize interprets everything the provider returned.
func Summarize(data *model.FundamentalData) *model.FundamentalSummary {
	if data == nil {
		data = &model.FundamentalData{}
	}
	return &model.FundamentalSummary{
		Profile:  AnalyzeProfile(data.Profile),
		Metrics:  AnalyzeMetrics(data.Metrics),
		News:     AnalyzeNews(data.News),
		Ratings:  AnalyzeRatings(data.Ratings),
		Earnings: AnalyzeEarnings(data.Earnings),
	}
}

// AnalyzeProfile interprets the company profile.
func AnalyzeProfile(profile *model.CompanyProfile) model.ProfileAnalysis {
	if profile == nil {
		return model.ProfileAnalysis{}
	}
	desc := profile.Description
	if len(desc) > 200 {
		desc = desc[:200] + "..."
	}
	return model.ProfileAnalysis{
		Available:          true,
		CompanyName:        orNA(profile.CompanyName),
		Sector:             orNA(profile.Sector),
		Industry:           orNA(profile.Industry),
		MarketCap:          profile.MktCap,
		MarketCapFormatted: FormatMarketCap(profile.MktCap),
		Description:        orNA(desc),
		CEO:                orNA(profile.CEO),
		Website:            orNA(profile.Website),
		Exchange:           orNA(profile.Exchange),
		Country:            orNA(profile.Country),
		Employees:          orNA(profile.Employees),
	}
}

// AnalyzeMetrics bands the key ratios. A zero ratio is treated as
// unreported and labeled "N/A".
func AnalyzeMetrics(metrics *model.KeyMetrics) model.MetricsAnalysis {
	if metrics == nil {
		return model.MetricsAnalysis{
			PEInterpretation:        "N/A",
			PBInterpretation:        "N/A",
			ROEInterpretation:       "N/A",
			DebtInterpretation:      "N/A",
			LiquidityInterpretation: "N/A",
		}
	}
	out := model.MetricsAnalysis{
		Available:               true,
		PEInterpretation:        InterpretPE(metrics.PERatio),
		PBInterpretation:        InterpretPB(metrics.PBRatio),
		ROEInterpretation:       InterpretROE(metrics.ROE),
		DebtInterpretation:      InterpretDebt(metrics.DebtToEquity),
		LiquidityInterpretation: InterpretLiquidity(metrics.CurrentRatio),
	}
	out.PERatio = nonZero(metrics.PERatio)
	out.PBRatio = nonZero(metrics.PBRatio)
	out.DebtToEquity = nonZero(metrics.DebtToEquity)
	out.CurrentRatio = nonZero(metrics.CurrentRatio)
	out.ROEPct = nonZero(metrics.ROE * 100)
	out.ROAPct = nonZero(metrics.ROA * 100)
	return out
}

// AnalyzeNews trims the feed to the most recent articles.
func AnalyzeNews(news []model.NewsArticle) model.NewsAnalysis {
	if len(news) == 0 {
		return model.NewsAnalysis{Articles: []model.NewsArticle{}}
	}
	recent := news
	if len(recent) > maxRecentArticles {
		recent = recent[:maxRecentArticles]
	}
	return model.NewsAnalysis{
		Available:  true,
		Count:      len(news),
		Articles:   recent,
		LatestDate: news[0].PublishedDate,
	}
}

// AnalyzeRatings derives the analyst consensus from grade counts.
// Zero total ratings means no consensus is available.
func AnalyzeRatings(ratings *model.RatingCounts) model.RatingsAnalysis {
	if ratings == nil {
		return model.RatingsAnalysis{}
	}
	total := ratings.Buy + ratings.Hold + ratings.Sell
	if total == 0 {
		return model.RatingsAnalysis{}
	}

	buyFrac := float64(ratings.Buy) / float64(total)
	sellFrac := float64(ratings.Sell) / float64(total)
	consensus := "Hold"
	switch {
	case buyFrac > 0.6:
		consensus = "Strong Buy"
	case buyFrac > 0.4:
		consensus = "Buy"
	case sellFrac > 0.6:
		consensus = "Strong Sell"
	case sellFrac > 0.4:
		consensus = "Sell"
	}

	recent := ratings.Recent
	if len(recent) > 3 {
		recent = recent[:3]
	}
	return model.RatingsAnalysis{
		Available:     true,
		Buy:           ratings.Buy,
		Hold:          ratings.Hold,
		Sell:          ratings.Sell,
		Total:         total,
		Consensus:     consensus,
		BuyPercentage: float64(int(buyFrac*1000+0.5)) / 10,
		Recent:        recent,
	}
}

// AnalyzeEarnings interprets the next earnings calendar entry.
func AnalyzeEarnings(earnings *model.EarningsEvent) model.EarningsAnalysis {
	if earnings == nil {
		return model.EarningsAnalysis{}
	}
	return model.EarningsAnalysis{
		Available:        true,
		Date:             orNA(earnings.Date),
		EPSEstimated:     earnings.EPSEstimated,
		RevenueEstimated: earnings.RevenueEstimated,
	}
}

// FormatMarketCap renders a market cap with a T/B/M suffix.
func FormatMarketCap(marketCap float64) string {
	switch {
	case marketCap >= 1e12:
		return fmt.Sprintf("$%.2fT", marketCap/1e12)
	case marketCap >= 1e9:
		return fmt.Sprintf("$%.2fB", marketCap/1e9)
	case marketCap >= 1e6:
		return fmt.Sprintf("$%.2fM", marketCap/1e6)
	default:
		return fmt.Sprintf("$%.0f", marketCap)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
