package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/migrations"
)

// Dialect is the SQL flavour behind a DB.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// placeholder returns the bind variable format of the dialect.
func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// goose returns the goose dialect name.
func (d Dialect) goose() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite3"
}

// DialectFromDSN picks the dialect of dsn and returns the DSN the driver
// expects. postgres:// and postgresql:// URLs select PostgreSQL; anything
// else is a SQLite path, optionally prefixed with sqlite://.
func DialectFromDSN(dsn string) (Dialect, string, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.Contains(dsn, "://"):
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	default:
		return DialectSQLite, dsn, nil
	}
}

// DB is a database handle together with its dialect and error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open connects to the database named by cfg.DSN.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := DialectFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("cannot pick database driver")
		return nil, err
	}

	cfg.DSN = dsn
	if dialect == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Dialect returns the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.goose())
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder())
}

// classify wraps retryable driver errors with ErrTemporarilyUnavailable.
func (db *DB) classify(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	}
	return err
}

func (db *DB) isDuplicate(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsDuplicate(err)
}
