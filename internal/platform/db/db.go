package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a pooled postgres connection through the pgx stdlib driver. Pool
// sizing is tuned for a small number of concurrent optimizations, each of
// which touches the leg cache and saved-route tables.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}
