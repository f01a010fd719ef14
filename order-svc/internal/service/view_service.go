package service

import (
	"context"
	"errors"
	"fmt"

	"restaurant-saas/order-svc/internal/domain"
)

var (
	ErrUnknownView = errors.New("unknown view")
	ErrFeedClosed  = errors.New("change feed closed")
)

// ViewService builds the kitchen, bar and wait boards. Every refresh is a
// full refetch; change events only say that something happened.
type ViewService struct {
	orders OrderRepository
	tables TableRepository
	feed   ChangeSubscriber
}

func NewViewService(orders OrderRepository, tables TableRepository, feed ChangeSubscriber) *ViewService {
	return &ViewService{orders: orders, tables: tables, feed: feed}
}

func (s *ViewService) Snapshot(ctx context.Context, restaurantID string, view domain.View) (*domain.ViewSnapshot, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, view)
	}
	orders, err := s.orders.ListOrders(ctx, restaurantID, domain.ActiveStatuses)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	snapshot := &domain.ViewSnapshot{View: view, Orders: orders}
	switch view {
	case domain.ViewBar:
		snapshot.Tabs = domain.GroupTabs(orders)
	case domain.ViewWait:
		tables, err := s.tables.ListTables(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		snapshot.Tables = domain.TableStatuses(tables, orders)
	}
	return snapshot, nil
}

// Watch emits a snapshot now and after every change notification until ctx
// ends or emit fails. The subscription is released on return.
func (s *ViewService) Watch(ctx context.Context, restaurantID string, view domain.View, emit func(*domain.ViewSnapshot) error) error {
	if !view.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownView, view)
	}
	sub, err := s.feed.Subscribe(ctx, restaurantID)
	if err != nil {
		return err
	}
	defer sub.Close()

	if err := s.refresh(ctx, restaurantID, view, emit); err != nil {
		return err
	}

	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return ErrFeedClosed
			}
			drain(events)
			if err := s.refresh(ctx, restaurantID, view, emit); err != nil {
				return err
			}
		}
	}
}

func (s *ViewService) refresh(ctx context.Context, restaurantID string, view domain.View, emit func(*domain.ViewSnapshot) error) error {
	snapshot, err := s.Snapshot(ctx, restaurantID, view)
	if err != nil {
		return err
	}
	return emit(snapshot)
}

// drain swallows events already queued; one refetch covers them all.
func drain(events <-chan domain.ChangeEvent) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

var _ ViewServiceInterface = (*ViewService)(nil)
