package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/brucethesloth/TradingAgents/internal/config"
	"github.com/brucethesloth/TradingAgents/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// postgresConstraint returns the name of the violated constraint for a
// PostgreSQL integrity error, or "" if err is not a driver error.
// Used to tell a username collision from an email collision on insert.
func postgresConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// wrapDBError normalises a raw driver error: transient failures (connection
// loss, serialization, deadlock) are wrapped in [ErrStoreUnavailable] so the
// transport layer can answer with a retriable status; everything else is
// reported as an unexpected DB error.
func (db *DB) wrapDBError(err error) error {
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
