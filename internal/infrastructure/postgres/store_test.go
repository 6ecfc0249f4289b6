package postgres

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"mappins/internal/domain/repository/blobstore"
)

const (
	TestUser     = "pins"
	TestPassword = "pins"
	TestDB       = "pins"
)

func setupPostgres(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     TestUser,
			"POSTGRES_PASSWORD": TestPassword,
			"POSTGRES_DB":       TestDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	uri := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		TestUser, TestPassword, net.JoinHostPort(host, port.Port()), TestDB)

	return uri, func() {
		_ = container.Terminate(ctx)
	}
}

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	uri, cleanUp := setupPostgres(t)
	defer cleanUp()

	ctx := context.Background()
	cfg := Config{URI: uri, Timeout: 10000}

	siteA, err := Connect(ctx, cfg, blobstore.Namespace("map-pins", "a"))
	require.NoError(t, err)
	defer siteA.Close()

	siteB, err := Connect(ctx, cfg, blobstore.Namespace("map-pins", "b"))
	require.NoError(t, err)
	defer siteB.Close()

	_, err = siteA.Get(ctx, "pins")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, siteA.Set(ctx, "pins", []byte(`[]`)))
	require.NoError(t, siteA.Set(ctx, "pins", []byte(`[{"id":"1","lat":0,"lng":5}]`)))
	require.NoError(t, siteB.Set(ctx, "pins", []byte(`[{"id":"2"}]`)))

	got, err := siteA.Get(ctx, "pins")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","lat":0,"lng":5}]`, string(got))

	got, err = siteB.Get(ctx, "pins")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2"}]`, string(got))

	// Documents are stored verbatim, escaped NUL characters included.
	withNUL := []byte(`[{"id":"3","lat":1,"lng":2,"message":"a\u0000b"}]`)
	require.NoError(t, siteA.Set(ctx, "pins", withNUL))

	got, err = siteA.Get(ctx, "pins")
	require.NoError(t, err)
	assert.Equal(t, string(withNUL), string(got))
}
