// Package server exposes the analysis pipeline over HTTP: a JSON API
// plus a minimal HTML dashboard for the watchlist.
package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"StockScope/internal/advisor"
	"StockScope/internal/collector"
)

// Server wires the collectors and advisor behind a gin engine.
type Server struct {
	engine    *gin.Engine
	collector *collector.Collector
	fmp       *collector.FMPClient
	advisor   advisor.Advisor
	watchlist []string
}

// New creates the HTTP server and registers all routes.
func New(col *collector.Collector, fmp *collector.FMPClient, adv advisor.Advisor, watchlist []string, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		engine:    gin.Default(),
		collector: col,
		fmp:       fmp,
		advisor:   adv,
		watchlist: watchlist,
	}

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/", s.handleDashboard)

	api := s.engine.Group("/api/v1")
	{
		api.GET("/technical/:symbol", s.handleTechnical)
		api.GET("/fundamentals/:symbol", s.handleFundamentals)
		api.GET("/analysis/:symbol", s.handleAnalysis)
		api.GET("/advice/:symbol", s.handleAdvice)
		api.GET("/watchlist", s.handleWatchlist)
	}

	return s
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	log.Printf("[INFO] http server listening on %s", addr)
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.engine }
