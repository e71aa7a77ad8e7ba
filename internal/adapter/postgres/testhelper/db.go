// Package testhelper provides a migrated PostgreSQL database for integration tests.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kceleski/ava-care-compass/migrations"
)

const (
	// DSNEnv points the tests at an existing database instead of a container.
	DSNEnv = "AVA_TEST_DATABASE_DSN"
	// ImageEnv overrides the PostgreSQL image used for the container.
	ImageEnv = "AVA_TEST_POSTGRES_IMAGE"

	defaultImage = "postgres:17-alpine"
)

var (
	once     sync.Once
	dsn      string
	setupErr error
)

// SetupTestDB returns a pool on a database with all migrations applied.
// The database is prepared once per test binary; each call gets its own
// pool, closed when the test ends.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() { dsn, setupErr = prepare() })
	if setupErr != nil {
		t.Fatalf("testhelper: prepare database: %v", setupErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func prepare() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	target := os.Getenv(DSNEnv)
	if target == "" {
		var err error
		if target, err = startContainer(ctx); err != nil {
			return "", err
		}
	}
	if err := migrate(ctx, target); err != nil {
		return "", err
	}
	return target, nil
}

func startContainer(ctx context.Context) (string, error) {
	image := os.Getenv(ImageEnv)
	if image == "" {
		image = defaultImage
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "ava",
				"POSTGRES_PASSWORD": "ava",
				"POSTGRES_DB":       "ava_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}
	return fmt.Sprintf("postgres://ava:ava@%s:%s/ava_test?sslmode=disable", host, port.Port()), nil
}

func migrate(ctx context.Context, target string) error {
	db, err := sql.Open("pgx", target)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
