package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// DB is the process-wide Postgres pool. It is safe for concurrent use.
type DB struct {
	*sql.DB
}

// Open connects to Postgres and verifies the connection once. A failed
// ping is returned as an error so startup can abort.
func Open(ctx context.Context, dsn string, maxConns int) (*DB, error) {
	sqlDB, err := open(dsn, maxConns)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{DB: sqlDB}, nil
}

func open(dsn string, maxConns int) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(maxConns)
		sqlDB.SetMaxIdleConns(maxConns)
	}

	return sqlDB, nil
}
