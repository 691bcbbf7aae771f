package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	cacheredis "accounts/pkg/cache/redis"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestRedis(t *testing.T) *cacheredis.Redis {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379"},
		WaitingFor:   wait.ForListeningPort("6379"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	r, err := cacheredis.New(ctx, cacheredis.Options{
		Addr: fmt.Sprintf("%s:%d", host, mappedPort.Int()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func TestRedis_SetGetDelete(t *testing.T) {
	r := setupTestRedis(t)
	ctx := context.Background()

	// miss on unknown key
	_, found, err := r.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	// set and read back
	require.NoError(t, r.Set(ctx, "k", "v", time.Minute))
	val, found, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "v", val)

	// delete existing
	deleted, err := r.Delete(ctx, "k")
	require.NoError(t, err)
	require.True(t, deleted)

	// delete missing
	deleted, err = r.Delete(ctx, "k")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestRedis_Expiration(t *testing.T) {
	r := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "ttl", "v", 500*time.Millisecond))

	_, found, err := r.Get(ctx, "ttl")
	require.NoError(t, err)
	require.True(t, found)

	require.Eventually(t, func() bool {
		_, found, err := r.Get(ctx, "ttl")

		return err == nil && !found
	}, 5*time.Second, 100*time.Millisecond)
}
