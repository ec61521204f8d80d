//go:build e2e

// Package redistest starts one Redis container per test process.
package redistest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	containerURL  string
	containerErr  error
)

// NewURL returns the redis:// URL of the shared container. Tests that need
// isolation should use keys of their own.
func NewURL(t *testing.T) string {
	t.Helper()
	containerOnce.Do(func() {
		containerURL, containerErr = start()
	})
	require.NoError(t, containerErr, "start redis container")
	return containerURL
}

func start() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")),
			Labels:       map[string]string{"purpose": "field-booking-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return "", err
	}

	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := c.MappedPort(ctx, "6379/tcp")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("redis://%s:%s/0", host, port.Port()), nil
}
