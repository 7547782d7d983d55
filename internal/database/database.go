// Package database centralises sqlx connection helpers.  The driver is
// go-sql-driver/mysql, which also covers MariaDB when configured for the
// MySQL wire protocol.
//
// Open sizes the pool from DatabaseConfig and pings before returning so
// callers fail fast during bootstrap.  Callers should Close() the returned
// *sqlx.DB when no longer needed.
package database

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/yanizio/authd/internal/config"
)

// Open returns a ready *sqlx.DB or the first connection error.
func Open(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", cfg.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxConnections / 2)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.PoolTimeout)*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
