package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string `json:"name"`
	Seats int    `json:"seats"`
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestCacheHelper_SetGet(t *testing.T) {
	mr, client := setupRedis(t)
	helper := NewCacheHelper(client, "class:", time.Minute)
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "list:approved", []item{{Name: "Soccer", Seats: 10}}))
	assert.True(t, mr.Exists("class:list:approved"))
	assert.Equal(t, time.Minute, mr.TTL("class:list:approved"))

	var got []item
	require.NoError(t, helper.Get(ctx, "list:approved", &got))
	assert.Equal(t, []item{{Name: "Soccer", Seats: 10}}, got)

	err := helper.Get(ctx, "list:missing", &got)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheHelper_NilClientIsNoop(t *testing.T) {
	helper := NewCacheHelper(nil, "class:", time.Minute)
	ctx := context.Background()

	assert.NoError(t, helper.Set(ctx, "k", 1))
	assert.NoError(t, helper.Delete(ctx, "k"))
	assert.NoError(t, helper.InvalidatePattern(ctx, "*"))

	var v int
	assert.ErrorIs(t, helper.Get(ctx, "k", &v), ErrCacheNotAvailable)
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	_, client := setupRedis(t)
	helper := NewCacheHelper(client, "instructor:", time.Minute)
	ctx := context.Background()

	fetches := 0
	fetch := func() (interface{}, error) {
		fetches++
		return []item{{Name: "Coach Carter", Seats: 3}}, nil
	}

	for i := 0; i < 3; i++ {
		var got []item
		require.NoError(t, helper.CacheOrExecute(ctx, "list:popular", &got, fetch))
		assert.Equal(t, "Coach Carter", got[0].Name)
	}
	assert.Equal(t, 1, fetches)

	boom := errors.New("db down")
	var got []item
	err := helper.CacheOrExecute(ctx, "list:other", &got, func() (interface{}, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestInvalidateClassCache(t *testing.T) {
	mr, client := setupRedis(t)
	cm := NewCacheManager(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cm.Class.Set(ctx, "list:a", 1))
	require.NoError(t, cm.Class.Set(ctx, "list:b", 2))
	require.NoError(t, cm.Instructor.Set(ctx, "list:a", 3))

	InvalidateClassCache(ctx, cm)

	assert.False(t, mr.Exists("class:list:a"))
	assert.False(t, mr.Exists("class:list:b"))
	assert.True(t, mr.Exists("instructor:list:a"))
}

func TestCacheManager_HealthCheck(t *testing.T) {
	_, client := setupRedis(t)
	assert.NoError(t, NewCacheManager(client, time.Minute).HealthCheck(context.Background()))
	assert.ErrorIs(t, NewCacheManager(nil, time.Minute).HealthCheck(context.Background()), ErrCacheNotAvailable)
	assert.False(t, NewCacheManager(nil, time.Minute).Enabled())
}
