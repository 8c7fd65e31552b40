package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	sqlOpen        = sql.Open
	connectRetries = 30
	retryDelay     = 2 * time.Second
	pingTimeout    = 2 * time.Second
	sleep          = time.Sleep
)

// Open opens a pgx-backed pool for dsn and waits until the database answers
// a ping, so the server can start before Postgres is ready.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	var lastErr error
	for i := 0; i < connectRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()
		if lastErr == nil {
			return db, nil
		}
		if ctx.Err() != nil {
			break
		}
		sleep(retryDelay)
	}

	_ = db.Close()
	return nil, fmt.Errorf("db ping retries exhausted: %w", lastErr)
}
