package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restaurant-saas/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ErrAlreadyRecorded is returned when an order's completion was counted before.
var ErrAlreadyRecorded = errors.New("order already recorded")

const (
	processedTTL = 7 * 24 * time.Hour
	dailyTTL     = 7 * 24 * time.Hour
)

func OrdersKey(restaurantID string) string {
	return "analytics:orders:" + restaurantID
}

func ItemCountKey(restaurantID string) string {
	return "analytics:items:" + restaurantID + ":count"
}

func ItemRevenueKey(restaurantID string) string {
	return "analytics:items:" + restaurantID + ":revenue"
}

func DailyKey(day time.Time, restaurantID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", day.UTC().Format("2006-01-02"), restaurantID)
}

func processedKey(orderID string) string {
	return "analytics:processed:" + orderID
}

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// OrderLines returns the snapshotted lines of an order, merged per item name.
func (s *Store) OrderLines(ctx context.Context, orderID string) ([]domain.ItemLine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT menu_item_name, SUM(quantity), SUM(quantity * price)
		FROM order_items
		WHERE order_id = $1
		GROUP BY menu_item_name
		ORDER BY menu_item_name
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.ItemLine
	for rows.Next() {
		var line domain.ItemLine
		if err := rows.Scan(&line.Name, &line.Quantity, &line.Revenue); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// RecordCompletion adds a completed order to the restaurant counters. Each
// order is counted once; a redelivered event yields ErrAlreadyRecorded.
func (s *Store) RecordCompletion(ctx context.Context, event domain.OrderEvent, lines []domain.ItemLine) error {
	fresh, err := s.rdb.SetNX(ctx, processedKey(event.OrderID), event.RestaurantID, processedTTL).Result()
	if err != nil {
		return err
	}
	if !fresh {
		return ErrAlreadyRecorded
	}

	rid := event.RestaurantID
	day := event.Timestamp
	if day.IsZero() {
		day = time.Now()
	}
	dailyKey := DailyKey(day, rid)

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, OrdersKey(rid), "count", 1)
		pipe.HIncrByFloat(ctx, OrdersKey(rid), "revenue", event.Total)
		for _, line := range lines {
			pipe.ZIncrBy(ctx, ItemCountKey(rid), float64(line.Quantity), line.Name)
			pipe.ZIncrBy(ctx, ItemRevenueKey(rid), line.Revenue, line.Name)
			pipe.ZIncrBy(ctx, dailyKey, float64(line.Quantity), line.Name)
		}
		pipe.Expire(ctx, dailyKey, dailyTTL)
		return nil
	})
	if err != nil {
		s.rdb.Del(ctx, processedKey(event.OrderID))
		return err
	}
	return nil
}
