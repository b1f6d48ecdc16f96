package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/notifier"
	"StockScope/internal/signal"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic watchlist scans and answers Telegram commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register registers the scan task on the given cron spec.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger / SCAN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

// scanTask analyzes every watchlist symbol and alerts on strong signals.
func (s *Scheduler) scanTask() {
	log.Printf("[INFO] scanning %d watchlist symbols", len(s.Watchlist))
	for _, symbol := range s.Watchlist {
		sum, err := s.analyze(symbol)
		if err != nil {
			log.Printf("[ERROR] scan %s: %v", symbol, err)
			continue
		}
		if sum.Signals.Overall == model.StrongBuy || sum.Signals.Overall == model.StrongSell {
			log.Printf("[INFO] strong signal on %s: %s (%+d)", symbol, sum.Signals.Overall, sum.Signals.Strength)
			s.trySend(notifier.FormatAnalysisReport(sum))
		}
	}
}

func (s *Scheduler) analyze(symbol string) (*model.TechnicalSummary, error) {
	series, err := s.Collector.CollectSeries(symbol)
	if err != nil {
		return nil, err
	}
	return signal.Summarize(series)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		sum, err := s.analyze(symbol)
		if err != nil {
			if errors.Is(err, signal.ErrInsufficientData) {
				return fmt.Sprintf("Not enough history to analyze %s.", symbol)
			}
			return fmt.Sprintf("Analysis failed for %s: %v", symbol, err)
		}
		return notifier.FormatAnalysisReport(sum)
	case "/watchlist":
		if len(s.Watchlist) == 0 {
			return "Watchlist is empty."
		}
		return "Watchlist: " + strings.Join(s.Watchlist, ", ")
	case "/scan":
		go s.scanTask()
		return "Scan started."
	default:
		return "Commands:\n• /analyze SYMBOL\n• /watchlist\n• /scan"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
