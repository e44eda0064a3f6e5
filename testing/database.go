// Package testing provides test utilities and database setup for integration tests
package testing

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDBConfig holds test database configuration
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	SSLMode  string
}

func testDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5432"),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		SSLMode:  getEnv("TEST_DB_SSL_MODE", "disable"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TestDB wraps a per-test database together with its teardown state
type TestDB struct {
	DB     *gorm.DB
	dbName string
	cfg    TestDBConfig
}

// SetupTestDB creates a dedicated database for the test, runs migrations
// and returns a connected gorm handle. Tests are skipped when no Postgres
// server is reachable so the suite stays green on machines without one.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	cfg := testDBConfig()

	adminDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.SSLMode)

	admin, err := sql.Open("postgres", adminDSN)
	if err != nil {
		t.Skipf("skipping: cannot open admin connection: %v", err)
	}
	defer admin.Close()

	if err := admin.Ping(); err != nil {
		t.Skipf("skipping: test database unreachable: %v", err)
	}

	dbName := fmt.Sprintf("kosmoport_test_%d_%d", time.Now().UnixNano(), rand.Intn(10000))
	if _, err := admin.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	testDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, dbName, cfg.SSLMode)

	gormDB, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := runMigrations(gormDB); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	tdb := &TestDB{DB: gormDB, dbName: dbName, cfg: cfg}
	t.Cleanup(func() { tdb.Teardown(t) })
	return tdb
}

// Teardown closes the connection and drops the per-test database
func (tdb *TestDB) Teardown(t *testing.T) {
	t.Helper()

	if sqlDB, err := tdb.DB.DB(); err == nil {
		sqlDB.Close()
	}

	adminDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		tdb.cfg.Host, tdb.cfg.Port, tdb.cfg.User, tdb.cfg.Password, tdb.cfg.SSLMode)

	admin, err := sql.Open("postgres", adminDSN)
	if err != nil {
		t.Logf("teardown: cannot open admin connection: %v", err)
		return
	}
	defer admin.Close()

	if _, err := admin.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", tdb.dbName)); err != nil {
		t.Logf("teardown: failed to drop test database %s: %v", tdb.dbName, err)
	}
}

func runMigrations(db *gorm.DB) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", dir)
	}

	for _, file := range files {
		contents, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if err := db.Exec(string(contents)).Error; err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}
	return nil
}

// migrationsDir resolves the migrations directory relative to this source
// file so tests work regardless of the package they run from.
func migrationsDir() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("cannot determine caller location")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "migrations"), nil
}
