package postgres_test

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"
	"time"

	root "foodgram"
	"foodgram/pkg/storage/postgres"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "foodgram"
	pgPassword = "foodgram"
	pgDatabase = "foodgram_test"
)

// startPostgres runs a throwaway postgres container and returns the address
// it listens on.
func startPostgres(ctx context.Context, t *testing.T) (testcontainers.Container, string, int) {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			// postgres restarts once after running its init scripts
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return container, host, port.Int()
}

func migrate(ctx context.Context, t *testing.T, db *sql.DB) {
	t.Helper()

	migrations, err := fs.Sub(root.Migrations, "migrations")
	require.NoError(t, err)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	require.NoError(t, err)
	_, err = provider.Up(ctx)
	require.NoError(t, err)
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	container, host, port := startPostgres(ctx, t)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           pgUser,
		Password:           pgPassword,
		Host:               host,
		Port:               port,
		Database:           pgDatabase,
		SslMode:            "disable",
		MaxOpenConnections: 4,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, pg.Ping(ctx))

	migrate(ctx, t, pg.DB.(*sql.DB))

	return pg, func() {
		_ = pg.Close()
		_ = container.Terminate(ctx)
	}
}
