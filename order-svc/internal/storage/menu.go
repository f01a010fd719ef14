package storage

import (
	"context"
	"database/sql"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	category.ID = uuid.NewString()
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO categories (id, restaurant_id, name, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, category.ID, category.RestaurantID, category.Name, category.SortOrder).Scan(&category.CreatedAt)
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, sort_order, created_at
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY sort_order, name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	item.ID = uuid.NewString()
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (id, restaurant_id, category_id, name, description, price, image_url, available, sold_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, item.ID, item.RestaurantID, item.CategoryID, item.Name, item.Description, item.Price, item.ImageURL, item.Available, item.SoldOut).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

const menuItemColumns = "id, restaurant_id, category_id, name, description, price, image_url, available, sold_out, created_at, updated_at"

func scanMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	defer rows.Close()
	items := []domain.MenuItem{}
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.CategoryID, &m.Name, &m.Description, &m.Price,
			&m.ImageURL, &m.Available, &m.SoldOut, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID string, onlyAvailable bool) ([]domain.MenuItem, error) {
	query := "SELECT " + menuItemColumns + " FROM menu_items WHERE restaurant_id = $1"
	if onlyAvailable {
		query += " AND available AND NOT sold_out"
	}
	rows, err := r.DB.QueryContext(ctx, query+" ORDER BY name", restaurantID)
	if err != nil {
		return nil, err
	}
	return scanMenuItems(rows)
}

// GetMenuItems loads the given items of one restaurant keyed by id. Ids from
// another restaurant are simply absent from the result.
func (r *PostgresRepository) GetMenuItems(ctx context.Context, restaurantID string, ids []string) (map[string]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE restaurant_id = $1 AND id = ANY($2)",
		restaurantID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	items, err := scanMenuItems(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.MenuItem, len(items))
	for _, m := range items {
		byID[m.ID] = m
	}
	return byID, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET category_id = $1, name = $2, description = $3, price = $4, image_url = $5,
			available = $6, sold_out = $7, updated_at = NOW()
		WHERE id = $8 AND restaurant_id = $9
		RETURNING created_at, updated_at
	`, item.CategoryID, item.Name, item.Description, item.Price, item.ImageURL, item.Available, item.SoldOut,
		item.ID, item.RestaurantID).Scan(&item.CreatedAt, &item.UpdatedAt)
	return notFound(err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, restaurantID, itemID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1 AND restaurant_id = $2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
