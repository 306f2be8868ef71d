package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"report-srv/config"

	_ "modernc.org/sqlite"
)

var (
	instance *sql.DB
	mu       sync.Mutex
)

// Connect opens the embedded archive database. SQLite allows a single writer, so the pool is
// capped at one connection.
func Connect(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	instance = db
	return instance, nil
}

// Disconnect closes the embedded database.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
