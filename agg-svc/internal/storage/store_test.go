package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-saas/agg-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewStore(db, rdb), sqlMock, mr
}

func TestStore_OrderLines(t *testing.T) {
	store, sqlMock, _ := newStore(t)

	sqlMock.ExpectQuery("SELECT menu_item_name, SUM\\(quantity\\), SUM\\(quantity \\* price\\)").
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"menu_item_name", "sum", "sum"}).
			AddRow("Croissant", 1, 3.25).
			AddRow("Latte", 2, 9.0))

	lines, err := store.OrderLines(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemLine{
		{Name: "Croissant", Quantity: 1, Revenue: 3.25},
		{Name: "Latte", Quantity: 2, Revenue: 9},
	}, lines)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_OrderLinesError(t *testing.T) {
	store, sqlMock, _ := newStore(t)

	sqlMock.ExpectQuery("SELECT menu_item_name").
		WithArgs("o1").
		WillReturnError(errors.New("connection lost"))

	_, err := store.OrderLines(context.Background(), "o1")
	assert.Error(t, err)
}

func TestStore_RecordCompletion(t *testing.T) {
	store, _, mr := newStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

	first := domain.OrderEvent{OrderID: "o1", RestaurantID: "r1", Total: 12.25, Timestamp: day}
	require.NoError(t, store.RecordCompletion(ctx, first, []domain.ItemLine{
		{Name: "Croissant", Quantity: 1, Revenue: 3.25},
		{Name: "Latte", Quantity: 2, Revenue: 9},
	}))
	second := domain.OrderEvent{OrderID: "o2", RestaurantID: "r1", Total: 4.5, Timestamp: day}
	require.NoError(t, store.RecordCompletion(ctx, second, []domain.ItemLine{
		{Name: "Latte", Quantity: 1, Revenue: 4.5},
	}))

	assert.Equal(t, "2", mr.HGet(OrdersKey("r1"), "count"))
	assert.Equal(t, "16.75", mr.HGet(OrdersKey("r1"), "revenue"))

	latteCount, err := mr.ZScore(ItemCountKey("r1"), "Latte")
	require.NoError(t, err)
	assert.Equal(t, 3.0, latteCount)
	latteRevenue, err := mr.ZScore(ItemRevenueKey("r1"), "Latte")
	require.NoError(t, err)
	assert.Equal(t, 13.5, latteRevenue)

	dailyKey := "analytics:daily:2026-03-14:r1"
	assert.Equal(t, dailyKey, DailyKey(day, "r1"))
	croissants, err := mr.ZScore(dailyKey, "Croissant")
	require.NoError(t, err)
	assert.Equal(t, 1.0, croissants)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(dailyKey))
}

func TestStore_RecordCompletionOnce(t *testing.T) {
	store, _, mr := newStore(t)
	ctx := context.Background()
	event := domain.OrderEvent{OrderID: "o1", RestaurantID: "r1", Total: 4.5}
	lines := []domain.ItemLine{{Name: "Latte", Quantity: 1, Revenue: 4.5}}

	require.NoError(t, store.RecordCompletion(ctx, event, lines))
	err := store.RecordCompletion(ctx, event, lines)
	assert.ErrorIs(t, err, ErrAlreadyRecorded)

	assert.Equal(t, "1", mr.HGet(OrdersKey("r1"), "count"))
	count, err := mr.ZScore(ItemCountKey("r1"), "Latte")
	require.NoError(t, err)
	assert.Equal(t, 1.0, count)
}

func TestStore_RecordCompletionRedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()
	store := NewStore(nil, rdb)

	err := store.RecordCompletion(context.Background(), domain.OrderEvent{OrderID: "o1", RestaurantID: "r1"}, nil)
	assert.Error(t, err)
}
