package storage

import (
	"context"
	"errors"
	"strconv"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// AnalyticsSummary aggregates completed orders straight from the tables.
func (r *PostgresRepository) AnalyticsSummary(ctx context.Context, restaurantID string, topN int) (*domain.AnalyticsSummary, error) {
	summary := &domain.AnalyticsSummary{RestaurantID: restaurantID, TopItems: []domain.TopItem{}}
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE restaurant_id = $1 AND status = 'COMPLETED'
	`, restaurantID).Scan(&summary.TotalOrders, &summary.Revenue); err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.menu_item_name, SUM(oi.quantity) AS count, SUM(oi.quantity * oi.price) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.restaurant_id = $1 AND o.status = 'COMPLETED'
		GROUP BY oi.menu_item_name
		ORDER BY count DESC, oi.menu_item_name
		LIMIT $2
	`, restaurantID, topN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.TopItem
		if err := rows.Scan(&item.Name, &item.Count, &item.Revenue); err != nil {
			return nil, err
		}
		summary.TopItems = append(summary.TopItems, item)
	}
	return summary, rows.Err()
}

func OrdersKey(restaurantID string) string {
	return "analytics:orders:" + restaurantID
}

func ItemCountKey(restaurantID string) string {
	return "analytics:items:" + restaurantID + ":count"
}

func ItemRevenueKey(restaurantID string) string {
	return "analytics:items:" + restaurantID + ":revenue"
}

// RedisAnalytics reads the counters agg-svc maintains.
type RedisAnalytics struct {
	Client *redis.Client
}

func NewRedisAnalytics(client *redis.Client) *RedisAnalytics {
	return &RedisAnalytics{Client: client}
}

func (a *RedisAnalytics) Summary(ctx context.Context, restaurantID string, topN int) (*domain.AnalyticsSummary, error) {
	totals, err := a.Client.HGetAll(ctx, OrdersKey(restaurantID)).Result()
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, nil
	}

	count, _ := strconv.Atoi(totals["count"])
	revenue, _ := strconv.ParseFloat(totals["revenue"], 64)
	summary := &domain.AnalyticsSummary{
		RestaurantID: restaurantID,
		TotalOrders:  count,
		Revenue:      domain.RoundMoney(revenue),
		TopItems:     []domain.TopItem{},
	}
	if count > 0 {
		summary.AverageOrder = domain.RoundMoney(revenue / float64(count))
	}

	top, err := a.Client.ZRevRangeWithScores(ctx, ItemCountKey(restaurantID), 0, int64(topN-1)).Result()
	if err != nil {
		return nil, err
	}
	for _, z := range top {
		name, _ := z.Member.(string)
		itemRevenue, err := a.Client.ZScore(ctx, ItemRevenueKey(restaurantID), name).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, err
		}
		summary.TopItems = append(summary.TopItems, domain.TopItem{
			Name:    name,
			Count:   int(z.Score),
			Revenue: domain.RoundMoney(itemRevenue),
		})
	}
	return summary, nil
}
