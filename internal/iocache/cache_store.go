// Package iocache is for caching elevation lookups.
package iocache

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/schema"
)

// coordPrecision rounds cache keys to ~11m of coordinate resolution, so
// repeated lookups in the same neighborhood hit the same row.
const coordPrecision = 4

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// CacheStoreImpl handles durable elevation storage using various database backends.
type CacheStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.CacheBackend
	driverName string
	connStr    string
}

var _ contract.CacheStore = &CacheStoreImpl{} // Compile-time check

// NewCacheStore initializes and returns a new CacheStore based on the backend type.
func NewCacheStore(tableName string, backend schema.CacheBackend, connStr string) (contract.CacheStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite3"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite cache at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL cache: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL cache: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled caching
		return &CacheStoreImpl{
			db:         nil,
			tableName:  tableName,
			backend:    backend,
			driverName: "",
			connStr:    connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &CacheStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// validateTableName rejects table names that could carry SQL injection.
func validateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s", name)
	}
	return nil
}

// quoteTableName quotes the table name for the given backend.
func quoteTableName(name string, backend schema.CacheBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "`" + name + "`"
	default: // SQLite and PostgreSQL
		return `"` + name + `"`
	}
}

// cacheKey builds the rounded-coordinate primary key for a lookup.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.*f:%.*f", coordPrecision, lat, coordPrecision, lon)
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.CacheBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key VARCHAR(64) PRIMARY KEY,
				lat DOUBLE NOT NULL,
				lon DOUBLE NOT NULL,
				elevation DOUBLE NOT NULL,
				created_at BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				lat DOUBLE PRECISION NOT NULL,
				lon DOUBLE PRECISION NOT NULL,
				elevation DOUBLE PRECISION NOT NULL,
				created_at BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				elevation REAL NOT NULL,
				created_at INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// Get retrieves a cached elevation sample by coordinate. A nil result with a
// nil error means the coordinate has never been cached.
func (ps *CacheStoreImpl) Get(lat, lon float64) (*float64, error) {
	// Cache miss for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	placeholder := ps.getPlaceholder()
	query := fmt.Sprintf(`SELECT elevation FROM %s WHERE cache_key = %s`, quotedTableName, placeholder)
	row := ps.db.QueryRow(query, cacheKey(lat, lon))

	var elevation float64
	if err := row.Scan(&elevation); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &elevation, nil
}

// Set inserts or replaces an elevation sample in the store.
func (ps *CacheStoreImpl) Set(lat, lon, elevation float64, timestamp int64) error {
	// Skip for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	// Use backend-specific UPSERT
	query := ps.getUpsertQuery()
	_, err := ps.db.Exec(query, cacheKey(lat, lon), lat, lon, elevation, timestamp)
	return err
}

// Entries returns all cached elevation samples. Callers use this to warm
// in-memory proximity indexes.
func (ps *CacheStoreImpl) Entries() ([]contract.CacheEntry, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	query := fmt.Sprintf(`SELECT lat, lon, elevation, created_at FROM %s`, quotedTableName)
	rows, err := ps.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []contract.CacheEntry
	for rows.Next() {
		var e contract.CacheEntry
		if err := rows.Scan(&e.Lat, &e.Lon, &e.Elevation, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all cached samples from the store.
func (ps *CacheStoreImpl) Clear() error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}
	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	_, err := ps.db.Exec(fmt.Sprintf("DELETE FROM %s", quotedTableName))
	return err
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ps *CacheStoreImpl) getPlaceholder() string {
	switch ps.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *CacheStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, lat, lon, elevation, created_at) VALUES (?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE lat = new.lat, lon = new.lon, elevation = new.elevation, created_at = new.created_at`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, lat, lon, elevation, created_at) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (cache_key) DO UPDATE SET lat = EXCLUDED.lat, lon = EXCLUDED.lon, elevation = EXCLUDED.elevation, created_at = EXCLUDED.created_at`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, lat, lon, elevation, created_at) VALUES (?, ?, ?, ?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ps *CacheStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// Status returns status information about the cache store.
func (ps *CacheStoreImpl) Status() (contract.CacheStatus, error) {
	status := contract.CacheStatus{
		Backend: string(ps.backend),
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := ps.db.QueryRow(countQuery)
	if err := row.Scan(&status.Entries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	return status, nil
}

// Timestamp returns the current cache timestamp value.
func Timestamp() int64 {
	return time.Now().Unix()
}
