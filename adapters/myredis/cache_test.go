package myredis

import (
	"context"
	"testing"
	"time"

	"myrendezvous/domain"
	"myrendezvous/helpers"
	"myrendezvous/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"
const testPrefix = "rendezvous-test"

// setupTestRedis connects to a local redis and skips the test when none is running.
func setupTestRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	client, err := NewRedisUniversalClient(testRedisAddr, WithPoolSize(2))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis not available at %s: %v", testRedisAddr, err)
	}

	flush := func() {
		keys, _ := client.Keys(context.Background(), testPrefix+":*").Result()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
	}
	flush()
	t.Cleanup(func() {
		flush()
		_ = client.Close()
	})
	return client
}

func testPublication(port int) domain.Publication {
	return domain.Publication{
		ServiceURL:  domain.NewServiceAddress("myhost", port).String(),
		Hostname:    "myhost",
		Port:        port,
		PublishedAt: helpers.TestNow(),
	}
}

func TestCache_WriteReadDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewJSONCache[domain.Publication](setupTestRedis(t), testPrefix)

	pub := testPublication(9000)
	require.NoError(t, cache.WriteValue(ctx, "myhost:9000", pub, 60000))

	got, err := cache.ReadValue(ctx, "myhost:9000")
	require.NoError(t, err)
	assert.Equal(t, pub.ServiceURL, got.ServiceURL)
	assert.True(t, pub.PublishedAt.Equal(got.PublishedAt))

	require.NoError(t, cache.DeleteValue(ctx, "myhost:9000"))
	_, err = cache.ReadValue(ctx, "myhost:9000")
	assert.True(t, service.IsEntityNotFound(err))
}

func TestCache_ListAllValues(t *testing.T) {
	ctx := context.Background()
	cache := NewJSONCache[domain.Publication](setupTestRedis(t), testPrefix)

	_, err := cache.ListAllValues(ctx)
	assert.True(t, service.IsEntityNotFound(err), "empty cache")

	require.NoError(t, cache.WriteValue(ctx, "myhost:9001", testPublication(9001), 60000))
	require.NoError(t, cache.WriteValue(ctx, "myhost:9000", testPublication(9000), 60000))

	items, err := cache.ListAllValues(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 9000, items[0].Port)
	assert.Equal(t, 9001, items[1].Port)
}

func TestCache_TTL(t *testing.T) {
	ctx := context.Background()
	cache := NewJSONCache[domain.Publication](setupTestRedis(t), testPrefix)

	require.NoError(t, cache.WriteValue(ctx, "short", testPublication(1), 50))
	assert.Eventually(t, func() bool {
		_, err := cache.ReadValue(ctx, "short")
		return service.IsEntityNotFound(err)
	}, 2*time.Second, 20*time.Millisecond)
}

func TestCache_ClosedClient(t *testing.T) {
	ctx := context.Background()
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	cache := NewJSONCache[domain.Publication](client, testPrefix)
	assert.True(t, service.IsInternalServerError(cache.WriteValue(ctx, "k", testPublication(1), 1000)))
	_, err = cache.ReadValue(ctx, "k")
	assert.True(t, service.IsInternalServerError(err))
	assert.True(t, service.IsInternalServerError(cache.DeleteValue(ctx, "k")))
	_, err = cache.ListAllValues(ctx)
	assert.True(t, service.IsInternalServerError(err))
}

func TestNewRedisUniversalClient_BadURL(t *testing.T) {
	_, err := NewRedisUniversalClient("not a url")
	assert.Error(t, err)
}
