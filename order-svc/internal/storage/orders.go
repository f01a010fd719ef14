package storage

import (
	"context"
	"database/sql"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreateOrder inserts the order and its lines in one transaction. The order
// starts at version 1.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	order.ID = uuid.NewString()
	order.Version = 1
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, restaurant_id, table_id, customer_session, status, total, special_instructions, version, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING created_at, updated_at
	`, order.ID, order.RestaurantID, order.TableID, order.CustomerSession, order.Status, order.Total,
		order.SpecialInstructions, order.Version, order.CreatedBy).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.ID = uuid.NewString()
		item.OrderID = order.ID
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, menu_item_id, menu_item_name, quantity, price, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, item.ID, item.OrderID, item.MenuItemID, item.MenuItemName, item.Quantity, item.Price, item.SpecialInstructions); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `o.id, o.restaurant_id, o.table_id, COALESCE(t.name, ''), o.customer_session, o.status, o.total,
	o.special_instructions, o.version, o.created_by, o.updated_by, o.created_at, o.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o       domain.Order
		tableID sql.NullString
	)
	if err := row.Scan(&o.ID, &o.RestaurantID, &tableID, &o.TableName, &o.CustomerSession, &o.Status, &o.Total,
		&o.SpecialInstructions, &o.Version, &o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if tableID.Valid {
		o.TableID = &tableID.String
	}
	o.Items = []domain.OrderItem{}
	return &o, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, restaurantID, orderID string) (*domain.Order, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN tables t ON t.id = o.table_id
		WHERE o.id = $1 AND o.restaurant_id = $2
	`, orderID, restaurantID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, notFound(err)
	}

	items, err := r.loadItems(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = append(order.Items, items[order.ID]...)
	return order, nil
}

// ListOrders returns the restaurant's orders in the given statuses, oldest
// first, with their lines.
func (r *PostgresRepository) ListOrders(ctx context.Context, restaurantID string, statuses []domain.Status) ([]domain.Order, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN tables t ON t.id = o.table_id
		WHERE o.restaurant_id = $1 AND o.status = ANY($2)
		ORDER BY o.created_at
	`, restaurantID, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	var ids []string
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = append(orders[i].Items, items[orders[i].ID]...)
	}
	return orders, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, menu_item_name, quantity, price, special_instructions
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY menu_item_name, id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := map[string][]domain.OrderItem{}
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.MenuItemName, &it.Quantity, &it.Price, &it.SpecialInstructions); err != nil {
			return nil, err
		}
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, rows.Err()
}

// UpdateStatus writes the new status only if the order still has the
// expected status and version, and records the transition.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, change domain.StatusChange) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, version = version + 1, updated_by = $2, updated_at = NOW()
		WHERE id = $3 AND restaurant_id = $4 AND status = $5 AND version = $6
	`, change.To, change.ChangedBy, change.OrderID, change.RestaurantID, change.From, change.ExpectedVersion)
	if err != nil {
		return err
	}
	if err := casResult(ctx, tx, res, change.RestaurantID, change.OrderID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_status_history (id, order_id, old_status, new_status, changed_by)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), change.OrderID, change.From, change.To, change.ChangedBy); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateItem changes one line of an active order and recomputes the total in
// the same transaction.
func (r *PostgresRepository) UpdateItem(ctx context.Context, edit domain.ItemEdit) error {
	return r.editItem(ctx, edit, `
		UPDATE order_items SET quantity = $1, special_instructions = $2
		WHERE id = $3 AND order_id = $4
	`, edit.Quantity, edit.SpecialInstructions, edit.ItemID, edit.OrderID)
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, edit domain.ItemEdit) error {
	return r.editItem(ctx, edit, "DELETE FROM order_items WHERE id = $1 AND order_id = $2", edit.ItemID, edit.OrderID)
}

func (r *PostgresRepository) editItem(ctx context.Context, edit domain.ItemEdit, stmt string, args ...any) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET version = version + 1, updated_by = $1, updated_at = NOW()
		WHERE id = $2 AND restaurant_id = $3 AND version = $4
			AND status IN ('PENDING', 'PREPARING', 'READY')
	`, edit.ChangedBy, edit.OrderID, edit.RestaurantID, edit.ExpectedVersion)
	if err != nil {
		return err
	}
	if err := casResult(ctx, tx, res, edit.RestaurantID, edit.OrderID); err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	if err := expectRow(res); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET total = COALESCE((SELECT SUM(price * quantity) FROM order_items WHERE order_id = $1), 0)
		WHERE id = $1
	`, edit.OrderID); err != nil {
		return err
	}

	return tx.Commit()
}

// casResult tells a lost compare-and-swap apart from a missing order.
func casResult(ctx context.Context, tx *sql.Tx, res sql.Result, restaurantID, orderID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1 AND restaurant_id = $2)",
		orderID, restaurantID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}
