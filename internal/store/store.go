package store

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"

	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

// Gateway mediates all reads and writes against the relational store.
// It holds a bounded connection pool; every operation scopes its own
// connection from it and releases it on exit, so no two concurrent
// operations ever share one.
type Gateway struct {
	db *sql.DB
}

// NewDB opens the MySQL pool. The pool is bounded by maxOpen; idle
// connections are kept so repeated operations do not pay the handshake
// each time.
func NewDB(dsn string, maxOpen int) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	return db, nil
}

func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

// Migrate creates the bottle and location tables if they do not exist.
// The location table is created second because of its foreign key.
func (g *Gateway) Migrate(ctx context.Context) error {
	for _, q := range []string{queryCreateBottleTable, queryCreateLocationTable} {
		if _, err := g.db.ExecContext(ctx, q); err != nil {
			return srvErrors.NewQueryError("migrate", err)
		}
	}
	return nil
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

// conn acquires a dedicated connection from the pool. Failure here means
// the store is unreachable, which callers must be able to tell apart
// from an empty result.
func (g *Gateway) conn(ctx context.Context) (*sql.Conn, error) {
	c, err := g.db.Conn(ctx)
	if err != nil {
		return nil, srvErrors.NewConnectionError(err)
	}
	return c, nil
}
