package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedStats struct {
	Hotel string  `json:"hotel"`
	Total float64 `json:"total"`
}

func TestGetFromRedisHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("dashboard:1:2026-08-29").SetVal(`{"hotel":"Sunrise Inn","total":42000}`)

	var stats cachedStats
	hit, err := GetFromRedis(context.Background(), rdb, "dashboard:1:2026-08-29", &stats)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Sunrise Inn", stats.Hotel)
	assert.Equal(t, 42000.0, stats.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFromRedisMissLeavesTargetUntouched(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("dashboard:1:2026-08-29").RedisNil()

	stats := cachedStats{Hotel: "unchanged"}
	hit, err := GetFromRedis(context.Background(), rdb, "dashboard:1:2026-08-29", &stats)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "unchanged", stats.Hotel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFromRedisCorruptPayload(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("dashboard:1:2026-08-29").SetVal(`not json`)

	var stats cachedStats
	hit, err := GetFromRedis(context.Background(), rdb, "dashboard:1:2026-08-29", &stats)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestSetToRedis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	payload := []byte(`{"hotel":"Sunrise Inn","total":42000}`)
	mock.ExpectSet("dashboard:1:2026-08-29", payload, 5*time.Minute).SetVal("OK")

	err := SetToRedis(context.Background(), rdb, "dashboard:1:2026-08-29",
		cachedStats{Hotel: "Sunrise Inn", Total: 42000}, 5*time.Minute)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFromRedis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("availability:1:a", "availability:1:b").SetVal(2)

	err := DeleteFromRedis(context.Background(), rdb, "availability:1:a", "availability:1:b")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFromRedisNoKeysIsNoop(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	err := DeleteFromRedis(context.Background(), rdb)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
