package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestResendCooldownRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewResendCooldownRepository(rdb, 2*time.Second)

	t.Run("first call claims the window", func(t *testing.T) {
		allowed, err := repo.Allow(ctx, "somchai@example.com")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("second call inside the window is denied", func(t *testing.T) {
		allowed, err := repo.Allow(ctx, "somchai@example.com")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("other emails are unaffected", func(t *testing.T) {
		allowed, err := repo.Allow(ctx, "other@example.com")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("window expires", func(t *testing.T) {
		time.Sleep(2500 * time.Millisecond)

		allowed, err := repo.Allow(ctx, "somchai@example.com")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})
}
