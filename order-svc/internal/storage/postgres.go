package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			owner_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL CHECK (role IN ('OWNER', 'KITCHEN', 'WAITSTAFF', 'BARTENDER')),
			restaurant_id TEXT REFERENCES restaurants(id),
			auth_user_id TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			category_id TEXT NOT NULL REFERENCES categories(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			image_url TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			sold_out BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tables (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			token TEXT NOT NULL DEFAULT '',
			qr_code BYTEA,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			table_id TEXT REFERENCES tables(id),
			customer_session TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING'
				CHECK (status IN ('PENDING', 'PREPARING', 'READY', 'COMPLETED', 'CANCELLED')),
			total NUMERIC(10, 2) NOT NULL DEFAULT 0,
			special_instructions TEXT NOT NULL DEFAULT '',
			version INT NOT NULL DEFAULT 1,
			created_by TEXT NOT NULL DEFAULT '',
			updated_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id TEXT NOT NULL,
			menu_item_name TEXT NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			price NUMERIC(10, 2) NOT NULL,
			special_instructions TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS order_status_history (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			old_status TEXT NOT NULL,
			new_status TEXT NOT NULL,
			changed_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_orders_restaurant_status ON orders (restaurant_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func duplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, pqErr.Constraint)
	}
	return err
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	rest.ID = uuid.NewString()
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (id, name, slug, description, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, rest.ID, rest.Name, rest.Slug, rest.Description, rest.OwnerID).Scan(&rest.CreatedAt, &rest.UpdatedAt)
	return duplicate(err)
}

const restaurantColumns = "id, name, slug, description, owner_id, created_at, updated_at"

func (r *PostgresRepository) getRestaurantWhere(ctx context.Context, where string, arg string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants WHERE "+where, arg).
		Scan(&rest.ID, &rest.Name, &rest.Slug, &rest.Description, &rest.OwnerID, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	return r.getRestaurantWhere(ctx, "id = $1", id)
}

func (r *PostgresRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	return r.getRestaurantWhere(ctx, "slug = $1", slug)
}

// GetOwnedRestaurant finds the restaurant an auth user registered.
func (r *PostgresRepository) GetOwnedRestaurant(ctx context.Context, ownerID string) (*domain.Restaurant, error) {
	return r.getRestaurantWhere(ctx, "owner_id = $1 ORDER BY created_at LIMIT 1", ownerID)
}

func (r *PostgresRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	table.ID = uuid.NewString()
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO tables (id, restaurant_id, name, active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, table.ID, table.RestaurantID, table.Name, table.Active).Scan(&table.CreatedAt, &table.UpdatedAt)
}

func (r *PostgresRepository) ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, token, active, created_at, updated_at
		FROM tables
		WHERE restaurant_id = $1
		ORDER BY name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.Name, &t.Token, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(ctx context.Context, restaurantID, tableID string) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, token, qr_code, active, created_at, updated_at
		FROM tables
		WHERE id = $1 AND restaurant_id = $2
	`, tableID, restaurantID).Scan(&t.ID, &t.RestaurantID, &t.Name, &t.Token, &t.QRCode, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *PostgresRepository) SaveTableToken(ctx context.Context, restaurantID, tableID, token string, qr []byte) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE tables SET token = $1, qr_code = $2, updated_at = NOW()
		WHERE id = $3 AND restaurant_id = $4
	`, token, qr, tableID, restaurantID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
