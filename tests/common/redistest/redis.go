//go:build e2e

// Package redistest starts one Redis container per test binary.
package redistest

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisPort = "6379/tcp"

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

// Start returns the address of a shared Redis container, starting it on first use.
func Start(t *testing.T) ContainerInfo {
	t.Helper()
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{redisPort},
				Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
				WaitingFor:   wait.ForListeningPort(nat.Port(redisPort)).WithStartupTimeout(60 * time.Second),
				Labels:       map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "failed to start redis container")

	ctx := context.Background()
	port, err := container.MappedPort(ctx, nat.Port(redisPort))
	require.NoError(t, err, "failed to read redis port")
	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to read redis host")

	info := ContainerInfo{Host: host, Port: port}
	slog.Debug("redis container ready", "addr", info.Addr())
	return info
}

// Client connects to the shared container and closes the client when the test ends.
func Client(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: Start(t).Addr()})
	require.NoError(t, client.Ping(context.Background()).Err(), "redis ping failed")
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	})
	return client
}
