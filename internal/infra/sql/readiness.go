package sql

import (
	"context"
	"fmt"
)

// Database is a raw connection held outside the ORM.
type Database interface {
	Open() error
	Close()
	Ping(ctx context.Context) error
}

// WaitReady opens db, pings it and releases the connection. Callers use it to
// fail at startup before the ORM takes over the DSN.
func WaitReady(ctx context.Context, db Database) error {
	if err := db.Open(); err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("checking database: %w", err)
	}
	return nil
}
