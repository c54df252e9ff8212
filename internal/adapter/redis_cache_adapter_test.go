package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"course-planner/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_CourseLifecycle(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "courseplanner:course:doc:01J0000000000000000000000A"
	doc := `{"id":"01J0000000000000000000000A","data":{"className":"AI 自學力"}}`

	mock.ExpectGet(key).SetErr(redis.Nil)
	_, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	mock.ExpectSet(key, doc, 10*time.Minute).SetVal("OK")
	require.NoError(t, c.Set(ctx, key, doc, 10*time.Minute))

	mock.ExpectGet(key).SetVal(doc)
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, c.Delete(ctx, key))

	// Deleting an absent key is not an error.
	mock.ExpectDel(key).SetVal(0)
	require.NoError(t, c.Delete(ctx, key))

	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, c.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_PropagatesRedisErrors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "courseplanner:generation:class_names:3f2a9c"
	refused := errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

	mock.ExpectGet(key).SetErr(refused)
	val, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, refused)
	assert.Empty(t, val)

	mock.ExpectSet(key, `["A","B","C"]`, time.Hour).SetErr(refused)
	assert.ErrorIs(t, c.Set(ctx, key, `["A","B","C"]`, time.Hour), refused)

	mock.ExpectDel(key).SetErr(refused)
	assert.ErrorIs(t, c.Delete(ctx, key), refused)

	mock.ExpectPing().SetErr(refused)
	assert.ErrorIs(t, c.Ping(ctx), refused)

	assert.NoError(t, mock.ExpectationsWereMet())
}
