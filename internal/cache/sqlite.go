package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
)

// SQLiteCache persists fetched price bars to a SQLite database so
// repeated analyses within the TTL skip the network round trip.
type SQLiteCache struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteCache opens (or creates) the SQLite database and runs migrations.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block scheduled writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite cache opened: %s", dbPath)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_bars (
			symbol   TEXT NOT NULL,
			bar_time INTEGER NOT NULL,
			open     REAL,
			high     REAL,
			low      REAL,
			close    REAL,
			volume   REAL,
			PRIMARY KEY (symbol, bar_time)
		)`,
		`CREATE TABLE IF NOT EXISTS fetch_meta (
			symbol     TEXT PRIMARY KEY,
			fetched_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS fundamentals (
			symbol     TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// GetBars returns the cached series for a symbol when it was fetched
// within maxAge.
func (c *SQLiteCache) GetBars(symbol string, maxAge time.Duration) ([]model.OHLCV, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fetchedAt int64
	err := c.db.QueryRow(`SELECT fetched_at FROM fetch_meta WHERE symbol = ?`, symbol).Scan(&fetchedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false
	}

	rows, err := c.db.Query(`SELECT bar_time, open, high, low, close, volume
		FROM price_bars WHERE symbol = ? ORDER BY bar_time`, symbol)
	if err != nil {
		log.Printf("[WARN] cache read %s: %v", symbol, err)
		return nil, false
	}
	defer rows.Close()

	var bars []model.OHLCV
	for rows.Next() {
		var ts int64
		var b model.OHLCV
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			log.Printf("[WARN] cache scan %s: %v", symbol, err)
			return nil, false
		}
		b.Time = time.Unix(ts, 0)
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil || len(bars) == 0 {
		return nil, false
	}
	return bars, true
}

// PutBars replaces the cached series for a symbol.
func (c *SQLiteCache) PutBars(symbol string, bars []model.OHLCV) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM price_bars WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("clear bars: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO price_bars
		(symbol, bar_time, open, high, low, close, volume) VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, b := range bars {
		if _, err := stmt.Exec(symbol, b.Time.Unix(), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("insert bar: %w", err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO fetch_meta (symbol, fetched_at) VALUES (?,?)
		ON CONFLICT(symbol) DO UPDATE SET fetched_at = excluded.fetched_at`,
		symbol, time.Now().Unix()); err != nil {
		return fmt.Errorf("update meta: %w", err)
	}
	return tx.Commit()
}

// GetFundamentals returns the cached fundamentals for a symbol when
// they were fetched within maxAge.
func (c *SQLiteCache) GetFundamentals(symbol string, maxAge time.Duration) (*model.FundamentalData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var payload string
	var fetchedAt int64
	err := c.db.QueryRow(`SELECT payload, fetched_at FROM fundamentals WHERE symbol = ?`, symbol).
		Scan(&payload, &fetchedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false
	}

	var data model.FundamentalData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		log.Printf("[WARN] cache decode fundamentals %s: %v", symbol, err)
		return nil, false
	}
	return &data, true
}

// PutFundamentals replaces the cached fundamentals for a symbol.
func (c *SQLiteCache) PutFundamentals(symbol string, data *model.FundamentalData) error {
	if data == nil {
		return nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode fundamentals: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err = c.db.Exec(`INSERT INTO fundamentals (symbol, payload, fetched_at) VALUES (?,?,?)
		ON CONFLICT(symbol) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		symbol, string(payload), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("store fundamentals: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Close() error {
	log.Println("[INFO] closing sqlite cache")
	return c.db.Close()
}
