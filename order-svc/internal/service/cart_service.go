package service

import (
	"context"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/google/uuid"
)

const customerSessionPrefix = "customer_"

func NewCustomerSessionID() string {
	return customerSessionPrefix + uuid.NewString()
}

// CartService keeps one cart per customer session. The cart is bound to the
// table code it was opened from; prices are taken from the live menu when an
// item is added.
type CartService struct {
	store CartStore
	menu  MenuRepository
	codec *TokenCodec
}

func NewCartService(store CartStore, menu MenuRepository, codec *TokenCodec) *CartService {
	return &CartService{store: store, menu: menu, codec: codec}
}

// Bind attaches the session to a table. An empty session id starts a new
// session. Switching to another restaurant's table empties the cart.
func (s *CartService) Bind(ctx context.Context, sessionID, token string) (*domain.Cart, error) {
	payload, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		sessionID = NewCustomerSessionID()
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.TableToken != "" {
		if previous, err := s.codec.Decode(cart.TableToken); err != nil || previous.RestaurantID != payload.RestaurantID {
			cart.Clear()
		}
	}
	cart.TableToken = token

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.store.Load(ctx, sessionID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, line domain.OrderLine) (*domain.Cart, error) {
	if err := domain.ValidateLines([]domain.OrderLine{line}); err != nil {
		return nil, err
	}
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.TableToken == "" {
		return nil, ErrCartNotBound
	}
	payload, err := s.codec.Decode(cart.TableToken)
	if err != nil {
		return nil, err
	}

	items, err := s.menu.GetMenuItems(ctx, payload.RestaurantID, []string{line.MenuItemID})
	if err != nil {
		return nil, err
	}
	item, ok := items[line.MenuItemID]
	if !ok || !item.Orderable() {
		return nil, ErrMenuItemUnavailable
	}

	cart.Add(domain.CartItem{MenuItem: item, Quantity: line.Quantity, SpecialInstructions: line.SpecialInstructions})
	return cart, s.store.Save(ctx, cart)
}

func (s *CartService) SetQuantity(ctx context.Context, sessionID, menuItemID string, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) bool {
		return c.SetQuantity(menuItemID, quantity)
	})
}

func (s *CartService) UpdateInstructions(ctx context.Context, sessionID, menuItemID, instructions string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) bool {
		return c.UpdateInstructions(menuItemID, instructions)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, menuItemID string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) bool {
		c.Remove(menuItemID)
		return true
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *CartService) mutate(ctx context.Context, sessionID string, apply func(*domain.Cart) bool) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !apply(cart) {
		return nil, ErrItemNotFound
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// cartLines converts the cart into order lines for placement.
func cartLines(cart *domain.Cart) []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, domain.OrderLine{
			MenuItemID:          item.MenuItem.ID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	return lines
}

var _ CartServiceInterface = (*CartService)(nil)
