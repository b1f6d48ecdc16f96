package server

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"StockScope/internal/fundamental"
	"StockScope/internal/model"
	"StockScope/internal/signal"
)

func (s *Server) technicalSummary(symbol string) (*model.TechnicalSummary, error) {
	series, err := s.collector.CollectSeries(symbol)
	if err != nil {
		return nil, err
	}
	return signal.Summarize(series)
}

func (s *Server) fundamentalSummary(symbol string) *model.FundamentalSummary {
	return fundamental.Summarize(s.collector.CollectFundamentals(s.fmp, symbol))
}

func (s *Server) handleTechnical(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	sum, err := s.technicalSummary(symbol)
	if err != nil {
		abortAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) handleFundamentals(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	c.JSON(http.StatusOK, s.fundamentalSummary(symbol))
}

func (s *Server) handleAnalysis(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	technical, err := s.technicalSummary(symbol)
	if err != nil {
		abortAnalysisError(c, err)
		return
	}
	fundamentals := s.fundamentalSummary(symbol)

	resp := gin.H{
		"symbol":      symbol,
		"technical":   technical,
		"fundamental": fundamentals,
	}
	if c.Query("advice") == "true" && s.advisor != nil {
		advice, err := s.advisor.Analyze(c.Request.Context(), symbol, technical, fundamentals)
		if err != nil {
			resp["advice_error"] = err.Error()
		} else {
			resp["advice"] = advice
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleAdvice(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	if s.advisor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "advisor not configured"})
		return
	}
	technical, err := s.technicalSummary(symbol)
	if err != nil {
		abortAnalysisError(c, err)
		return
	}
	advice, err := s.advisor.Analyze(c.Request.Context(), symbol, technical, s.fundamentalSummary(symbol))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, advice)
}

// watchlistEntry is one row of the watchlist response.
type watchlistEntry struct {
	Symbol  string              `json:"symbol"`
	Price   float64             `json:"price,omitempty"`
	Trend   string              `json:"trend,omitempty"`
	Signals *model.SignalResult `json:"signals,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func (s *Server) scanWatchlist() []watchlistEntry {
	entries := make([]watchlistEntry, 0, len(s.watchlist))
	for _, symbol := range s.watchlist {
		entry := watchlistEntry{Symbol: symbol}
		sum, err := s.technicalSummary(symbol)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Price = sum.CurrentPrice
			entry.Trend = sum.Trend
			entry.Signals = &sum.Signals
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *Server) handleWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"watchlist": s.scanWatchlist()})
}

func (s *Server) handleDashboard(c *gin.Context) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>StockScope</title></head><body>")
	b.WriteString("<h1>StockScope</h1><table border=\"1\" cellpadding=\"6\">")
	b.WriteString("<tr><th>Symbol</th><th>Price</th><th>Trend</th><th>Signal</th><th>Strength</th></tr>")
	for _, e := range s.scanWatchlist() {
		if e.Error != "" {
			fmt.Fprintf(&b, "<tr><td>%s</td><td colspan=\"4\">%s</td></tr>",
				html.EscapeString(e.Symbol), html.EscapeString(e.Error))
			continue
		}
		fmt.Fprintf(&b, "<tr><td><a href=\"/api/v1/analysis/%s\">%s</a></td><td>%.2f</td><td>%s</td><td>%s</td><td>%+d</td></tr>",
			html.EscapeString(e.Symbol), html.EscapeString(e.Symbol), e.Price,
			html.EscapeString(e.Trend), e.Signals.Overall, e.Signals.Strength)
	}
	b.WriteString("</table></body></html>")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

func abortAnalysisError(c *gin.Context, err error) {
	if errors.Is(err, signal.ErrInsufficientData) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
