package storage

import (
	"context"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/google/uuid"
)

const userColumns = "id, email, name, role, COALESCE(restaurant_id, ''), auth_user_id, created_at, updated_at"

func (r *PostgresRepository) CreateUserProfile(ctx context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, email, name, role, restaurant_id, auth_user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, user.ID, user.Email, user.Name, user.Role, user.RestaurantID, user.AuthUserID).Scan(&user.CreatedAt, &user.UpdatedAt)
	return duplicate(err)
}

func (r *PostgresRepository) GetUserProfile(ctx context.Context, authUserID string) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE auth_user_id = $1", authUserID).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.RestaurantID, &u.AuthUserID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PostgresRepository) ListStaff(ctx context.Context, restaurantID string) ([]domain.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE restaurant_id = $1 ORDER BY role, name", restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.RestaurantID, &u.AuthUserID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
