package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"database/sql"

	_ "github.com/lib/pq"
)

// Open connects and verifies the connection. The bot cannot do anything
// useful without the comment store, so callers treat a failure as fatal.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("database dsn is empty")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
