package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockScope/internal/advisor"
	"StockScope/internal/cache"
	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/notifier"
	"StockScope/internal/scheduler"
	"StockScope/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init cache
	var barCache cache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := cache.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite cache failed, using noop: %v", err)
			barCache = cache.NewNoopCache()
		} else {
			barCache = sc
			defer sc.Close()
		}
	} else {
		barCache = cache.NewNoopCache()
	}

	// Init market data collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, barCache, cfg.Analysis.LookbackDays,
		time.Duration(cfg.Cache.TTLMinutes)*time.Minute)

	// Init fundamentals client
	fmp := collector.NewFMPClient(cfg.FMP.BaseURL, cfg.FMP.APIKey, cfg.Proxy)
	if !fmp.Enabled() {
		log.Println("[WARN] FMP_API_KEY not set, fundamental data disabled")
	}

	// Init AI advisor
	var adv advisor.Advisor
	if cfg.Gemini.APIKey != "" {
		ga, err := advisor.NewGeminiAdvisor(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model,
			cfg.Gemini.Temperature, cfg.Gemini.MaxTokens)
		if err != nil {
			log.Printf("[WARN] init gemini advisor failed, using stub: %v", err)
			adv = advisor.NewStubAdvisor()
		} else {
			adv = ga
		}
	} else {
		log.Println("[WARN] GEMINI_API_KEY not set, using stub advisor")
		adv = advisor.NewStubAdvisor()
	}
	log.Printf("[INFO] advisor: %s", adv.Name())

	// Init Telegram notifier and scheduler
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}
	sched := scheduler.NewScheduler(ctx, col, tn, cfg.Analysis.Watchlist)
	if len(cfg.Analysis.Watchlist) > 0 {
		if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
			log.Fatalf("[FATAL] register cron tasks: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if os.Getenv("SCAN_ON_START") == "true" {
		log.Println("[INFO] SCAN_ON_START enabled, scanning watchlist now")
		go sched.RunScanNow()
	}

	// Start HTTP server
	srv := server.New(col, fmp, adv, cfg.Analysis.Watchlist, os.Getenv("GIN_DEBUG") == "true")
	go func() {
		if err := srv.Run(cfg.Server.Addr); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] StockScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockScope stopped")
}
