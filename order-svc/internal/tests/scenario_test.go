package tests

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"restaurant-saas/order-svc/internal/domain"
	"restaurant-saas/order-svc/internal/realtime"
	"restaurant-saas/order-svc/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the postgres repository with the
// same compare-and-swap rules on orders.
type memStore struct {
	mu          sync.Mutex
	seq         int
	restaurants map[string]domain.Restaurant
	tables      map[string]domain.Table
	categories  []domain.Category
	items       map[string]domain.MenuItem
	orders      map[string]domain.Order
	history     []domain.StatusHistory
}

func newMemStore() *memStore {
	return &memStore{
		restaurants: map[string]domain.Restaurant{},
		tables:      map[string]domain.Table{},
		items:       map[string]domain.MenuItem{},
		orders:      map[string]domain.Order{},
	}
}

func (m *memStore) id(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memStore) CreateRestaurant(_ context.Context, rest *domain.Restaurant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.restaurants {
		if r.Slug == rest.Slug {
			return domain.ErrDuplicate
		}
	}
	rest.ID = m.id("r")
	m.restaurants[rest.ID] = *rest
	return nil
}

func (m *memStore) GetRestaurant(_ context.Context, id string) (*domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.restaurants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) GetRestaurantBySlug(_ context.Context, slug string) (*domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.restaurants {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) CreateTable(_ context.Context, table *domain.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	table.ID = m.id("t")
	m.tables[table.ID] = *table
	return nil
}

func (m *memStore) ListTables(_ context.Context, restaurantID string) ([]domain.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tables := []domain.Table{}
	for _, t := range m.tables {
		if t.RestaurantID == restaurantID {
			tables = append(tables, t)
		}
	}
	return tables, nil
}

func (m *memStore) GetTable(_ context.Context, restaurantID, tableID string) (*domain.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tables[tableID]
	if !ok || t.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) SaveTableToken(_ context.Context, restaurantID, tableID, token string, qr []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tables[tableID]
	if !ok || t.RestaurantID != restaurantID {
		return domain.ErrNotFound
	}
	t.Token, t.QRCode = token, qr
	m.tables[tableID] = t
	return nil
}

func (m *memStore) CreateCategory(_ context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	category.ID = m.id("c")
	m.categories = append(m.categories, *category)
	return nil
}

func (m *memStore) ListCategories(_ context.Context, restaurantID string) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Category
	for _, c := range m.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) CreateMenuItem(_ context.Context, item *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.id("m")
	m.items[item.ID] = *item
	return nil
}

func (m *memStore) ListMenuItems(_ context.Context, restaurantID string, onlyAvailable bool) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.MenuItem
	for _, it := range m.items {
		if it.RestaurantID == restaurantID && (!onlyAvailable || it.Orderable()) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) GetMenuItems(_ context.Context, restaurantID string, ids []string) (map[string]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]domain.MenuItem{}
	for _, id := range ids {
		if it, ok := m.items[id]; ok && it.RestaurantID == restaurantID {
			out[id] = it
		}
	}
	return out, nil
}

func (m *memStore) UpdateMenuItem(_ context.Context, item *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.items[item.ID]; !ok || existing.RestaurantID != item.RestaurantID {
		return domain.ErrNotFound
	}
	m.items[item.ID] = *item
	return nil
}

func (m *memStore) DeleteMenuItem(_ context.Context, restaurantID, itemID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.items[itemID]; !ok || it.RestaurantID != restaurantID {
		return 0, nil
	}
	delete(m.items, itemID)
	return 1, nil
}

func (m *memStore) CreateOrder(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = m.id("o")
	order.Version = 1
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = m.id("i")
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	m.orders[order.ID] = stored
	return nil
}

func (m *memStore) GetOrder(_ context.Context, restaurantID, orderID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok || o.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound
	}
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return &o, nil
}

func (m *memStore) ListOrders(_ context.Context, restaurantID string, statuses []domain.Status) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := map[domain.Status]bool{}
	for _, s := range statuses {
		want[s] = true
	}
	out := []domain.Order{}
	for _, o := range m.orders {
		if o.RestaurantID == restaurantID && want[o.Status] {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) UpdateStatus(_ context.Context, change domain.StatusChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[change.OrderID]
	if !ok || o.RestaurantID != change.RestaurantID {
		return domain.ErrNotFound
	}
	if o.Status != change.From || o.Version != change.ExpectedVersion {
		return domain.ErrVersionConflict
	}
	o.Status = change.To
	o.Version++
	o.UpdatedBy = change.ChangedBy
	m.orders[o.ID] = o
	m.history = append(m.history, domain.StatusHistory{OrderID: o.ID, OldStatus: change.From, NewStatus: change.To, ChangedBy: change.ChangedBy})
	return nil
}

func (m *memStore) UpdateItem(_ context.Context, edit domain.ItemEdit) error {
	return m.editItem(edit, func(items []domain.OrderItem, i int) []domain.OrderItem {
		items[i].Quantity = edit.Quantity
		items[i].SpecialInstructions = edit.SpecialInstructions
		return items
	})
}

func (m *memStore) DeleteItem(_ context.Context, edit domain.ItemEdit) error {
	return m.editItem(edit, func(items []domain.OrderItem, i int) []domain.OrderItem {
		return append(items[:i], items[i+1:]...)
	})
}

func (m *memStore) editItem(edit domain.ItemEdit, apply func([]domain.OrderItem, int) []domain.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[edit.OrderID]
	if !ok || o.RestaurantID != edit.RestaurantID {
		return domain.ErrNotFound
	}
	if o.Version != edit.ExpectedVersion || !o.Status.Active() {
		return domain.ErrVersionConflict
	}
	for i, it := range o.Items {
		if it.ID == edit.ItemID {
			o.Items = apply(append([]domain.OrderItem(nil), o.Items...), i)
			total := 0.0
			for _, it := range o.Items {
				total += it.Subtotal()
			}
			o.Total = domain.RoundMoney(total)
			o.Version++
			m.orders[o.ID] = o
			return nil
		}
	}
	return domain.ErrNotFound
}

func waitSnapshot(t *testing.T, snapshots <-chan *domain.ViewSnapshot) *domain.ViewSnapshot {
	t.Helper()
	select {
	case s := <-snapshots:
		return s
	case <-time.After(3 * time.Second):
		t.Fatal("no view refresh")
		return nil
	}
}

func TestScenario_TableOrderThroughKitchen(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	codec := newCodec()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	hub := realtime.NewHub(rdb)

	restaurants := service.NewRestaurantService(store, store, store, codec)
	menu := service.NewMenuService(store)
	tables := service.NewTableService(store, codec, service.DefaultQRGenerator{BaseURL: "https://eat.test"})
	orders := service.NewOrderService(store, store, store, codec, newMemCartStore(), hub, nil)
	views := service.NewViewService(store, store, hub)

	owner := &domain.Principal{AuthUserID: "auth-owner"}
	rest := &domain.Restaurant{Name: "Cafe Test", Slug: "cafe-test"}
	require.NoError(t, restaurants.Create(ctx, owner, rest))
	owner.Role, owner.RestaurantID = domain.RoleOwner, rest.ID

	category := &domain.Category{RestaurantID: rest.ID, Name: "Coffee"}
	require.NoError(t, menu.CreateCategory(ctx, category))
	latte := &domain.MenuItem{RestaurantID: rest.ID, CategoryID: category.ID, Name: "Latte", Price: 4.5, Available: true}
	require.NoError(t, menu.CreateItem(ctx, latte))
	croissant := &domain.MenuItem{RestaurantID: rest.ID, CategoryID: category.ID, Name: "Croissant", Price: 3.25, Available: true}
	require.NoError(t, menu.CreateItem(ctx, croissant))

	table, err := tables.Create(ctx, rest.ID, "T1")
	require.NoError(t, err)
	require.NotEmpty(t, table.QRCode)

	payload, err := codec.Decode(table.Token)
	require.NoError(t, err)
	assert.Equal(t, table.ID, payload.TableID)
	assert.Equal(t, rest.ID, payload.RestaurantID)
	assert.Equal(t, "T1", payload.TableName)

	page, err := restaurants.OrderPage(ctx, table.Token)
	require.NoError(t, err)
	assert.Equal(t, "cafe-test", page.Menu.Restaurant.Slug)
	require.Len(t, page.Menu.Items, 2)

	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()
	snapshots := make(chan *domain.ViewSnapshot, 16)
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- views.Watch(watchCtx, rest.ID, domain.ViewKitchen, func(s *domain.ViewSnapshot) error {
			snapshots <- s
			return nil
		})
	}()
	assert.Empty(t, waitSnapshot(t, snapshots).Orders)

	order, err := orders.PlaceOrder(ctx, table.Token, domain.PlaceOrderRequest{
		Items: []domain.OrderLine{
			{MenuItemID: latte.ID, Quantity: 2},
			{MenuItemID: croissant.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 12.25, order.Total)

	kitchenView := waitSnapshot(t, snapshots)
	require.Len(t, kitchenView.Orders, 1)
	assert.Equal(t, domain.StatusPending, kitchenView.Orders[0].Status)

	// a menu price change does not touch the placed order
	latte.Price = 6
	require.NoError(t, menu.UpdateItem(ctx, latte))

	kitchen := &domain.Principal{AuthUserID: "auth-k", Role: domain.RoleKitchen, RestaurantID: rest.ID}
	waiter := &domain.Principal{AuthUserID: "auth-w", Role: domain.RoleWaitstaff, RestaurantID: rest.ID}

	_, err = orders.ChangeStatus(ctx, waiter, rest.ID, order.ID, domain.StatusPreparing, 0)
	assert.ErrorIs(t, err, service.ErrTransitionNotAllowed)

	order, err = orders.ChangeStatus(ctx, kitchen, rest.ID, order.ID, domain.StatusPreparing, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, waitSnapshot(t, snapshots).Orders[0].Status)

	_, err = orders.ChangeStatus(ctx, kitchen, rest.ID, order.ID, domain.StatusReady, 1)
	assert.ErrorIs(t, err, service.ErrVersionConflict)

	order, err = orders.ChangeStatus(ctx, kitchen, rest.ID, order.ID, domain.StatusReady, order.Version)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, waitSnapshot(t, snapshots).Orders[0].Status)

	order, err = orders.ChangeStatus(ctx, waiter, rest.ID, order.ID, domain.StatusCompleted, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, order.Version)
	assert.Empty(t, waitSnapshot(t, snapshots).Orders)

	stored, err := store.GetOrder(ctx, rest.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.25, stored.Total)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 4.5, stored.Items[0].Price)
	assert.Len(t, store.history, 3)

	_, err = orders.ChangeStatus(ctx, owner, rest.ID, order.ID, domain.StatusCancelled, 0)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	stopWatching()
	select {
	case err := <-watchDone:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestScenario_BarTabsAndWaitBoard(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	codec := newCodec()

	restaurants := service.NewRestaurantService(store, store, store, codec)
	menu := service.NewMenuService(store)
	tables := service.NewTableService(store, codec, service.DefaultQRGenerator{BaseURL: "https://eat.test"})
	orders := service.NewOrderService(store, store, store, codec, nil, nil, nil)
	views := service.NewViewService(store, store, nil)

	rest := &domain.Restaurant{Name: "Bar Test", Slug: "bar-test"}
	require.NoError(t, restaurants.Create(ctx, &domain.Principal{AuthUserID: "auth-owner"}, rest))
	category := &domain.Category{RestaurantID: rest.ID, Name: "Drinks"}
	require.NoError(t, menu.CreateCategory(ctx, category))
	beer := &domain.MenuItem{RestaurantID: rest.ID, CategoryID: category.ID, Name: "Beer", Price: 5.5, Available: true}
	require.NoError(t, menu.CreateItem(ctx, beer))
	t1, err := tables.Create(ctx, rest.ID, "T1")
	require.NoError(t, err)
	_, err = tables.Create(ctx, rest.ID, "T2")
	require.NoError(t, err)

	bartender := &domain.Principal{AuthUserID: "auth-b", Role: domain.RoleBartender, RestaurantID: rest.ID}
	_, err = orders.CreateManualOrder(ctx, bartender, rest.ID, domain.ManualOrderRequest{
		TabName: "Alex", Items: []domain.OrderLine{{MenuItemID: beer.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	tableOrder, err := orders.CreateManualOrder(ctx, bartender, rest.ID, domain.ManualOrderRequest{
		TableID: t1.ID, Items: []domain.OrderLine{{MenuItemID: beer.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	bar, err := views.Snapshot(ctx, rest.ID, domain.ViewBar)
	require.NoError(t, err)
	require.Len(t, bar.Tabs, 2)
	totals := map[float64]bool{}
	for _, tab := range bar.Tabs {
		totals[tab.TotalAmount] = true
	}
	assert.Equal(t, map[float64]bool{5.5: true, 11: true}, totals)

	_, err = orders.ChangeStatus(ctx, bartender, rest.ID, tableOrder.ID, domain.StatusPreparing, 0)
	require.NoError(t, err)
	tableOrder, err = orders.ChangeStatus(ctx, bartender, rest.ID, tableOrder.ID, domain.StatusReady, 0)
	require.NoError(t, err)

	wait, err := views.Snapshot(ctx, rest.ID, domain.ViewWait)
	require.NoError(t, err)
	require.Len(t, wait.Tables, 2)
	assert.Equal(t, "T1", wait.Tables[0].Table.Name)
	assert.Equal(t, domain.TableReady, wait.Tables[0].State)
	assert.Equal(t, domain.TableEmpty, wait.Tables[1].State)

	waiter := &domain.Principal{AuthUserID: "auth-w", Role: domain.RoleWaitstaff, RestaurantID: rest.ID}
	edited, err := orders.UpdateItem(ctx, waiter, rest.ID, tableOrder.ID, tableOrder.Items[0].ID, domain.ItemUpdateRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 16.5, edited.Total)
	assert.Equal(t, tableOrder.Version+1, edited.Version)
}
