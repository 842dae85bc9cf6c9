package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
	"github.com/finance-tracker/wallet/internal/integration/cache"
)

func newCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestSummaryCache_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	server, client := newCache(t)
	c := cache.NewSummaryCache(client, time.Minute)

	userID := uuid.New()
	month, err := valueobject.ParseMonthKey("2024-11")
	require.NoError(t, err)

	got, err := c.Get(ctx, userID, month)
	require.NoError(t, err)
	assert.Nil(t, got, "miss returns nil")

	updated := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	summary := entity.EmptySummary(userID, month)
	summary.TotalIncome = decimal.RequireFromString("1000.50")
	summary.Balance = decimal.RequireFromString("880.25")
	summary.Saving = 20
	summary.SavingRate = 75
	summary.LastUpdated = &updated

	require.NoError(t, c.Set(ctx, summary))
	assert.True(t, server.Exists(cache.Key(userID, month)))
	assert.Equal(t, time.Minute, server.TTL(cache.Key(userID, month)))

	got, err = c.Get(ctx, userID, month)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, month, got.Month)
	assert.Equal(t, "November 2024", got.Label)
	assert.True(t, summary.TotalIncome.Equal(got.TotalIncome))
	assert.True(t, summary.Balance.Equal(got.Balance))
	assert.Equal(t, 20, got.Saving)
	assert.Equal(t, 75, got.SavingRate)
	require.NotNil(t, got.LastUpdated)
	assert.True(t, updated.Equal(*got.LastUpdated))

	require.NoError(t, c.Invalidate(ctx, userID, month))
	got, err = c.Get(ctx, userID, month)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSummaryCache_Expires(t *testing.T) {
	ctx := context.Background()
	server, client := newCache(t)
	c := cache.NewSummaryCache(client, time.Minute)

	userID := uuid.New()
	month, _ := valueobject.ParseMonthKey("2024-12")
	require.NoError(t, c.Set(ctx, entity.EmptySummary(userID, month)))

	server.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, userID, month)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSummaryCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	server, client := newCache(t)
	c := cache.NewSummaryCache(client, time.Minute)

	userID := uuid.New()
	month, _ := valueobject.ParseMonthKey("2024-12")
	require.NoError(t, server.Set(cache.Key(userID, month), "{not json"))

	_, err := c.Get(ctx, userID, month)
	assert.Error(t, err)
}

func TestSummaryCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	server, client := newCache(t)
	c := cache.NewSummaryCache(client, time.Minute)
	server.Close()

	month, _ := valueobject.ParseMonthKey("2024-12")
	_, err := c.Get(ctx, uuid.New(), month)
	assert.Error(t, err)
}
