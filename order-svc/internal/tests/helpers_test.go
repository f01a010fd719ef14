package tests

import (
	"context"
	"sync"
	"time"

	"restaurant-saas/order-svc/internal/domain"
	"restaurant-saas/order-svc/internal/service"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newCodec() *service.TokenCodec {
	codec := service.NewTokenCodec(time.Hour)
	codec.Now = func() time.Time { return fixedNow }
	return codec
}

func mustToken(codec *service.TokenCodec, tableID, restaurantID, tableName string) string {
	token, err := codec.Encode(tableID, restaurantID, tableName)
	if err != nil {
		panic(err)
	}
	return token
}

func strPtr(s string) *string { return &s }

// memCartStore keeps carts in a map, copying on the way in and out.
type memCartStore struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]domain.Cart{}}
}

func (m *memCartStore) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[sessionID]
	if !ok {
		return &domain.Cart{SessionID: sessionID}, nil
	}
	cart.Items = append([]domain.CartItem(nil), cart.Items...)
	return &cart, nil
}

func (m *memCartStore) Save(_ context.Context, cart *domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *cart
	stored.Items = append([]domain.CartItem(nil), cart.Items...)
	m.carts[cart.SessionID] = stored
	return nil
}

func (m *memCartStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}

// fakeSubscription is a change feed driven by the test.
type fakeSubscription struct {
	events chan domain.ChangeEvent
	once   sync.Once
	closed chan struct{}
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{events: make(chan domain.ChangeEvent, 8), closed: make(chan struct{})}
}

func (s *fakeSubscription) Events() <-chan domain.ChangeEvent { return s.events }

func (s *fakeSubscription) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}
