package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FMP_API_KEY", "GEMINI_API_KEY", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
		"HTTPS_PROXY", "SERVER_ADDR", "WATCHLIST", "SQLITE_PATH", "SCAN_CRON", "LOOKBACK_DAYS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvOverrides(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Analysis.LookbackDays != 365 {
		t.Errorf("expected default lookback 365, got %d", cfg.Analysis.LookbackDays)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected default model %q", cfg.Gemini.Model)
	}
	if cfg.Cache.TTLMinutes != 30 {
		t.Errorf("expected default TTL 30, got %d", cfg.Cache.TTLMinutes)
	}
	if cfg.Schedule.ScanCron == "" {
		t.Error("expected a default scan cron")
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnvOverrides(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
analysis:
  watchlist: [AAPL, NVDA]
  lookback_days: 180
fmp:
  api_key: file-key
cache:
  ttl_minutes: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.Server.Addr)
	}
	if len(cfg.Analysis.Watchlist) != 2 || cfg.Analysis.Watchlist[0] != "AAPL" {
		t.Errorf("unexpected watchlist %v", cfg.Analysis.Watchlist)
	}
	if cfg.Analysis.LookbackDays != 180 {
		t.Errorf("expected lookback 180, got %d", cfg.Analysis.LookbackDays)
	}
	if cfg.FMP.APIKey != "file-key" {
		t.Errorf("expected file-key, got %q", cfg.FMP.APIKey)
	}
	if cfg.Cache.TTLMinutes != 10 {
		t.Errorf("expected TTL 10, got %d", cfg.Cache.TTLMinutes)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv("FMP_API_KEY", "env-key")
	t.Setenv("WATCHLIST", "TSLA,AMD")
	t.Setenv("LOOKBACK_DAYS", "90")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FMP.APIKey != "env-key" {
		t.Errorf("expected env-key, got %q", cfg.FMP.APIKey)
	}
	if len(cfg.Analysis.Watchlist) != 2 || cfg.Analysis.Watchlist[1] != "AMD" {
		t.Errorf("unexpected watchlist %v", cfg.Analysis.Watchlist)
	}
	if cfg.Analysis.LookbackDays != 90 {
		t.Errorf("expected lookback 90, got %d", cfg.Analysis.LookbackDays)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{}
	valid.Server.Addr = ":8080"
	valid.Analysis.LookbackDays = 365
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	shortLookback := &Config{}
	shortLookback.Server.Addr = ":8080"
	shortLookback.Analysis.LookbackDays = 10
	if err := shortLookback.Validate(); err == nil {
		t.Error("expected error for lookback below 50")
	}

	missingChat := &Config{}
	missingChat.Server.Addr = ":8080"
	missingChat.Analysis.LookbackDays = 365
	missingChat.Telegram.BotToken = "token"
	if err := missingChat.Validate(); err == nil {
		t.Error("expected error for bot token without chat id")
	}
}
