package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// Connection parameters appended to every SQLite DSN. Immediate transactions
// take the write lock up front so a read-then-write session cannot deadlock
// against another writer.
var sqliteParams = []string{
	"_busy_timeout=5000",
	"_foreign_keys=on",
	"_txlock=immediate",
}

// NewConnectSQLite opens a go-sqlite3 pool for a sqlite://, file: or bare
// path DSN. The parent directory of the database file is created if missing.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	source := cfg.DataSource()

	if err := createLocalDBDirIfNotExists(source); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(source))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	configurePool(conn, cfg)
	if isMemorySource(source) {
		// every connection to :memory: is a separate empty database
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxIdleTime(0)
		conn.SetConnMaxLifetime(0)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

// sqliteDSN appends the connection parameters the caller did not set.
func sqliteDSN(source string) string {
	var b strings.Builder
	b.WriteString(source)

	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}

	for _, param := range sqliteParams {
		key, _, _ := strings.Cut(param, "=")
		if strings.Contains(source, key+"=") {
			continue
		}
		b.WriteString(sep)
		b.WriteString(param)
		sep = "&"
	}

	return b.String()
}

// isMemorySource reports whether source names an in-memory database.
func isMemorySource(source string) bool {
	path, query, _ := strings.Cut(strings.TrimPrefix(source, "file:"), "?")
	return path == "" || path == ":memory:" || strings.Contains(query, "mode=memory")
}

func createLocalDBDirIfNotExists(source string) error {
	if isMemorySource(source) {
		return nil
	}
	path, _, _ := strings.Cut(strings.TrimPrefix(source, "file:"), "?")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory %s: %w", dir, err)
	}

	return nil
}
