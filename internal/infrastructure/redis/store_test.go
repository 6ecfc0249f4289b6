package redis

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"mappins/internal/domain/repository/blobstore"
)

func setupRedis(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Redis container host: %v", err)
	}

	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get Redis container port: %v", err)
	}

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port())), func() {
		_ = redisC.Terminate(ctx)
	}
}

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	uri, terminate := setupRedis(t)
	defer terminate()

	ctx := context.Background()
	cfg := Config{URI: uri, Timeout: 2000}

	siteA, err := NewStore(cfg, blobstore.Namespace("map-pins", "a"))
	require.NoError(t, err)
	defer siteA.Close()

	siteB, err := NewStore(cfg, blobstore.Namespace("map-pins", "b"))
	require.NoError(t, err)
	defer siteB.Close()

	_, err = siteA.Get(ctx, "pins")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, siteA.Set(ctx, "pins", []byte(`[{"id":"1"}]`)))

	got, err := siteA.Get(ctx, "pins")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	_, err = siteB.Get(ctx, "pins")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	raw, err := siteA.redis.Get(ctx, "map-pins/a/pins").Result()
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, raw)
}

func TestNewStore_InvalidURI(t *testing.T) {
	t.Parallel()

	_, err := NewStore(Config{URI: "not-a-url", Timeout: 100}, "ns")
	assert.Error(t, err)
}
