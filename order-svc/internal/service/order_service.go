package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const tabSessionPrefix = "bar_tab_"

type OrderService struct {
	repo      OrderRepository
	menu      MenuRepository
	tables    TableRepository
	codec     *TokenCodec
	carts     CartStore
	notifier  ChangeNotifier
	publisher EventPublisher
}

func NewOrderService(
	repo OrderRepository,
	menu MenuRepository,
	tables TableRepository,
	codec *TokenCodec,
	carts CartStore,
	notifier ChangeNotifier,
	publisher EventPublisher,
) *OrderService {
	return &OrderService{
		repo:      repo,
		menu:      menu,
		tables:    tables,
		codec:     codec,
		carts:     carts,
		notifier:  notifier,
		publisher: publisher,
	}
}

// PlaceOrder creates a customer order for the table the token names. Lines
// come from the request, or from the session cart when the request has none.
func (s *OrderService) PlaceOrder(ctx context.Context, token string, req domain.PlaceOrderRequest) (*domain.Order, error) {
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

	lines := req.Items
	fromCart := false
	if len(lines) == 0 && req.SessionID != "" && s.carts != nil {
		cart, err := s.carts.Load(ctx, req.SessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load cart: %w", err)
		}
		lines = cartLines(cart)
		fromCart = true
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := domain.ValidateLines(lines); err != nil {
		return nil, err
	}

	items, total, err := s.priceLines(ctx, payload.RestaurantID, lines)
	if err != nil {
		return nil, err
	}

	session := req.SessionID
	if session == "" {
		session = NewCustomerSessionID()
	}
	tableID := payload.TableID
	order := &domain.Order{
		RestaurantID:        payload.RestaurantID,
		TableID:             &tableID,
		TableName:           table.Name,
		CustomerSession:     session,
		Status:              domain.StatusPending,
		Total:               total,
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		Items:               items,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if fromCart {
		if err := s.carts.Delete(ctx, req.SessionID); err != nil {
			log.Warn().Err(err).Str("session_id", req.SessionID).Msg("failed to clear cart")
		}
	}
	s.created(ctx, order)
	return order, nil
}

// CreateManualOrder is staff order entry. Without a table id the order opens
// a tab keyed by a fresh bar_tab_ session.
func (s *OrderService) CreateManualOrder(ctx context.Context, principal *domain.Principal, restaurantID string, req domain.ManualOrderRequest) (*domain.Order, error) {
	if !principal.InScope(restaurantID) || !domain.CanAccess(principal.Role, domain.RoleWaitstaff, domain.RoleBartender) {
		return nil, ErrForbidden
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := domain.ValidateLines(req.Items); err != nil {
		return nil, err
	}

	order := &domain.Order{
		RestaurantID:        restaurantID,
		Status:              domain.StatusPending,
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		CreatedBy:           principal.AuthUserID,
	}
	if req.TableID != "" {
		table, err := s.tables.GetTable(ctx, restaurantID, req.TableID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		if err != nil {
			return nil, err
		}
		order.TableID = &table.ID
		order.TableName = table.Name
		order.CustomerSession = NewCustomerSessionID()
	} else {
		order.CustomerSession = tabSessionPrefix + uuid.NewString()
		if name := strings.TrimSpace(req.TabName); name != "" {
			note := "Bar tab for " + name
			if order.SpecialInstructions != "" {
				note += "; " + order.SpecialInstructions
			}
			order.SpecialInstructions = note
		}
	}

	items, total, err := s.priceLines(ctx, restaurantID, req.Items)
	if err != nil {
		return nil, err
	}
	order.Items = items
	order.Total = total

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.created(ctx, order)
	return order, nil
}

// ChangeStatus moves an order one step through its lifecycle. The step must
// be legal, allowed for the caller's role, and based on the current version.
func (s *OrderService) ChangeStatus(ctx context.Context, principal *domain.Principal, restaurantID, orderID string, target domain.Status, expectedVersion int) (*domain.Order, error) {
	if !principal.InScope(restaurantID) {
		return nil, ErrForbidden
	}
	order, err := s.Get(ctx, restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	if !target.Valid() || !domain.CanTransition(from, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
	}
	if !domain.RoleCanTransition(principal.Role, from, target) {
		return nil, fmt.Errorf("%w: %s cannot move %s -> %s", ErrTransitionNotAllowed, principal.Role, from, target)
	}
	version, err := resolveVersion(order, expectedVersion)
	if err != nil {
		return nil, err
	}

	err = s.repo.UpdateStatus(ctx, domain.StatusChange{
		RestaurantID:    restaurantID,
		OrderID:         orderID,
		From:            from,
		To:              target,
		ExpectedVersion: version,
		ChangedBy:       principal.AuthUserID,
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Status = target
	order.Version = version + 1
	order.UpdatedBy = principal.AuthUserID

	s.notify(ctx, restaurantID, domain.CollectionOrders, domain.ActionUpdate, orderID)
	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderStatusChanged,
		OrderID:      orderID,
		RestaurantID: restaurantID,
		OldStatus:    from,
		NewStatus:    target,
		Total:        order.Total,
		ChangedBy:    principal.AuthUserID,
		Timestamp:    time.Now().UTC(),
	})
	return order, nil
}

// UpdateItem edits one line of an active order. A quantity of zero or less
// removes the line.
func (s *OrderService) UpdateItem(ctx context.Context, principal *domain.Principal, restaurantID, orderID, itemID string, req domain.ItemUpdateRequest) (*domain.Order, error) {
	if req.Quantity <= 0 {
		return s.RemoveItem(ctx, principal, restaurantID, orderID, itemID, req.Version)
	}
	edit, err := s.prepareEdit(ctx, principal, restaurantID, orderID, itemID, req.Version)
	if err != nil {
		return nil, err
	}
	edit.Quantity = req.Quantity
	edit.SpecialInstructions = strings.TrimSpace(req.SpecialInstructions)

	if err := s.repo.UpdateItem(ctx, *edit); err != nil {
		return nil, s.editError(err)
	}
	s.notify(ctx, restaurantID, domain.CollectionOrderItems, domain.ActionUpdate, orderID)
	return s.Get(ctx, restaurantID, orderID)
}

func (s *OrderService) RemoveItem(ctx context.Context, principal *domain.Principal, restaurantID, orderID, itemID string, expectedVersion int) (*domain.Order, error) {
	edit, err := s.prepareEdit(ctx, principal, restaurantID, orderID, itemID, expectedVersion)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteItem(ctx, *edit); err != nil {
		return nil, s.editError(err)
	}
	s.notify(ctx, restaurantID, domain.CollectionOrderItems, domain.ActionDelete, orderID)
	return s.Get(ctx, restaurantID, orderID)
}

func (s *OrderService) Get(ctx context.Context, restaurantID, orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, restaurantID, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListActive returns orders still in the kitchen, bar or wait flow.
func (s *OrderService) ListActive(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, restaurantID, domain.ActiveStatuses)
}

func (s *OrderService) prepareEdit(ctx context.Context, principal *domain.Principal, restaurantID, orderID, itemID string, expectedVersion int) (*domain.ItemEdit, error) {
	if !principal.InScope(restaurantID) || !domain.CanAccess(principal.Role, domain.RoleWaitstaff) {
		return nil, ErrForbidden
	}
	order, err := s.Get(ctx, restaurantID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.Active() {
		return nil, ErrOrderClosed
	}
	found := false
	for _, item := range order.Items {
		if item.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}
	version, err := resolveVersion(order, expectedVersion)
	if err != nil {
		return nil, err
	}
	return &domain.ItemEdit{
		RestaurantID:    restaurantID,
		OrderID:         orderID,
		ItemID:          itemID,
		ExpectedVersion: version,
		ChangedBy:       principal.AuthUserID,
	}, nil
}

func (s *OrderService) editError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}

// priceLines snapshots live menu prices onto order lines.
func (s *OrderService) priceLines(ctx context.Context, restaurantID string, lines []domain.OrderLine) ([]domain.OrderItem, float64, error) {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.MenuItemID)
	}
	menu, err := s.menu.GetMenuItems(ctx, restaurantID, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load menu items: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(lines))
	total := 0.0
	for _, l := range lines {
		m, ok := menu[l.MenuItemID]
		if !ok || !m.Orderable() {
			return nil, 0, fmt.Errorf("%w: %s", ErrMenuItemUnavailable, l.MenuItemID)
		}
		item := domain.OrderItem{
			MenuItemID:          m.ID,
			MenuItemName:        m.Name,
			Quantity:            l.Quantity,
			Price:               m.Price,
			SpecialInstructions: strings.TrimSpace(l.SpecialInstructions),
		}
		total += item.Subtotal()
		items = append(items, item)
	}
	return items, domain.RoundMoney(total), nil
}

func (s *OrderService) created(ctx context.Context, order *domain.Order) {
	s.notify(ctx, order.RestaurantID, domain.CollectionOrders, domain.ActionInsert, order.ID)
	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		NewStatus:    order.Status,
		Total:        order.Total,
		ChangedBy:    order.CreatedBy,
		Timestamp:    time.Now().UTC(),
	})
}

func (s *OrderService) notify(ctx context.Context, restaurantID, collection, action, orderID string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.NotifyChange(ctx, domain.ChangeEvent{
		RestaurantID: restaurantID,
		Collection:   collection,
		Action:       action,
		OrderID:      orderID,
		At:           time.Now().UTC(),
	})
	if err != nil {
		log.Warn().Err(err).Str("restaurant_id", restaurantID).Str("order_id", orderID).Msg("change notification failed")
	}
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Warn().Err(err).Str("order_id", event.OrderID).Str("type", event.Type).Msg("order event publish failed")
	}
}

// resolveVersion picks the version the write is conditioned on. A caller
// that saw an older version loses immediately.
func resolveVersion(order *domain.Order, expected int) (int, error) {
	if expected == 0 {
		return order.Version, nil
	}
	if expected != order.Version {
		return 0, ErrVersionConflict
	}
	return expected, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
