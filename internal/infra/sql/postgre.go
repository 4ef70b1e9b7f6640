package sql

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
	_maxRetries   = 5
	_retryDelay   = 2 * time.Second
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var _ Database = (*PostgreDatabase)(nil)

func withPassword(dsn string) string {
	if pass, ok := os.LookupEnv("INVENTORY_SERVER_DATABASE_PASSWORD"); ok {
		return fmt.Sprintf("%s password=%s", dsn, pass)
	}
	return dsn
}

func NewPostgreORM(dsn string) (*DB, error) {
	gormDB, err := gorm.Open(postgres.Open(withPassword(dsn)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _queryTimeout,
	}, nil
}

func NewPostgreDatabase(dsn string) *PostgreDatabase {
	return &PostgreDatabase{url: withPassword(dsn)}
}

func (d *PostgreDatabase) Open() error {
	var lastErr error
	for attempt := range _maxRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			d.Conn = conn
			return nil
		}

		lastErr = err
		slog.Warn("postgres connection failed, retrying",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
		time.Sleep(_retryDelay)
	}

	return fmt.Errorf("impossible to connect to database after %d retries: %w", _maxRetries, lastErr)
}

func (d *PostgreDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

func (d *PostgreDatabase) Ping(ctx context.Context) error {
	if d.Conn == nil {
		return fmt.Errorf("postgres pool not open")
	}

	pingCtx, cancel := context.WithTimeout(ctx, _queryTimeout)
	defer cancel()

	if err := d.Conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}
