package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	migratorpg "github.com/diegoclair/morning-club-bot/migrator/postgres"
	migratorsqlite "github.com/diegoclair/morning-club-bot/migrator/sqlite"
)

// Dialect selects the SQL backend.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// dbConn interface allows repositories to work with both *sqlx.DB and *sqlx.Tx
type dbConn interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type DB struct {
	conn    *sqlx.DB
	dialect Dialect
	pool    *pgxpool.Pool
}

// NewSQLite opens the SQLite database at dbPath, creating its directory if needed.
func NewSQLite(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dbPath)
	conn, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite is a single-writer engine
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{conn: conn, dialect: SQLite}, nil
}

// NewPostgres builds a pgx pool for databaseURL and exposes it through database/sql.
func NewPostgres(ctx context.Context, databaseURL string, maxConns int32) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn := sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
	return &DB{conn: conn, dialect: Postgres, pool: pool}, nil
}

// Migrate applies the embedded migrations for the DB dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case Postgres:
		return migratorpg.Migrate(db.conn.DB)
	default:
		return migratorsqlite.Migrate(db.conn.DB)
	}
}

// VerifySchema probes every table the repositories rely on.
func (db *DB) VerifySchema(ctx context.Context) error {
	probes := []string{
		"SELECT id, start_time, end_time, weekends, active FROM members WHERE 1 = 0",
		"SELECT member_id, day, woke_up, notified FROM attendance WHERE 1 = 0",
		"SELECT text_channel_id, voice_channel_id FROM config WHERE 1 = 0",
	}
	for _, probe := range probes {
		rows, err := db.conn.QueryContext(ctx, probe)
		if err != nil {
			return fmt.Errorf("schema mismatch: %w", err)
		}
		rows.Close()
	}
	return nil
}

func (db *DB) DB() *sql.DB {
	return db.conn.DB
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) Close() error {
	err := db.conn.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}

func (db *DB) Begin(ctx context.Context) (*sqlx.Tx, error) {
	return db.conn.BeginTxx(ctx, nil)
}

// builder returns a statement builder using the placeholder style of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
