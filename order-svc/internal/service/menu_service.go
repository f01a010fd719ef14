package service

import (
	"context"
	"errors"
	"strings"

	"restaurant-saas/order-svc/internal/domain"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) CreateCategory(ctx context.Context, category *domain.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if err := domain.ValidateCategory(*category); err != nil {
		return err
	}
	return s.repo.CreateCategory(ctx, category)
}

func (s *MenuService) ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx, restaurantID)
}

func (s *MenuService) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if err := domain.ValidateMenuItem(*item); err != nil {
		return err
	}
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) ListItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, restaurantID, false)
}

// UpdateItem changes the live menu only. Prices already snapshotted on order
// lines stay as they were.
func (s *MenuService) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if err := domain.ValidateMenuItem(*item); err != nil {
		return err
	}
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrMenuItemUnavailable
		}
		return err
	}
	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, restaurantID, itemID string) (int64, error) {
	return s.repo.DeleteMenuItem(ctx, restaurantID, itemID)
}

var _ MenuServiceInterface = (*MenuService)(nil)
