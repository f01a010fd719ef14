package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-saas/order-svc/internal/domain"
)

type RestaurantService struct {
	repo   RestaurantRepository
	menu   MenuRepository
	tables TableRepository
	codec  *TokenCodec
}

func NewRestaurantService(repo RestaurantRepository, menu MenuRepository, tables TableRepository, codec *TokenCodec) *RestaurantService {
	return &RestaurantService{repo: repo, menu: menu, tables: tables, codec: codec}
}

func (s *RestaurantService) Create(ctx context.Context, owner *domain.Principal, rest *domain.Restaurant) error {
	if owner == nil || owner.AuthUserID == "" {
		return ErrForbidden
	}
	rest.Name = strings.TrimSpace(rest.Name)
	rest.Slug = strings.TrimSpace(rest.Slug)
	rest.Description = strings.TrimSpace(rest.Description)
	if err := domain.ValidateRestaurant(*rest); err != nil {
		return err
	}
	rest.OwnerID = owner.AuthUserID

	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

func (s *RestaurantService) PublicMenu(ctx context.Context, slug string) (*domain.Menu, error) {
	rest, err := s.repo.GetRestaurantBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.loadMenu(ctx, rest)
}

// OrderPage resolves a scanned table code into the table identity and the
// menu the customer orders from.
func (s *RestaurantService) OrderPage(ctx context.Context, token string) (*domain.OrderPage, error) {
	payload, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	table, err := s.tables.GetTable(ctx, payload.RestaurantID, payload.TableID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !table.Active) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	rest, err := s.repo.GetRestaurant(ctx, payload.RestaurantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	menu, err := s.loadMenu(ctx, rest)
	if err != nil {
		return nil, err
	}
	return &domain.OrderPage{Table: *payload, Menu: *menu}, nil
}

func (s *RestaurantService) loadMenu(ctx context.Context, rest *domain.Restaurant) (*domain.Menu, error) {
	categories, err := s.menu.ListCategories(ctx, rest.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.menu.ListMenuItems(ctx, rest.ID, true)
	if err != nil {
		return nil, err
	}
	return &domain.Menu{Restaurant: *rest, Categories: categories, Items: items}, nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
