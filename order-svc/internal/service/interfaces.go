package service

import (
	"context"

	"restaurant-saas/order-svc/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
}

type TableRepository interface {
	CreateTable(ctx context.Context, table *domain.Table) error
	ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error)
	GetTable(ctx context.Context, restaurantID, tableID string) (*domain.Table, error)
	SaveTableToken(ctx context.Context, restaurantID, tableID, token string, qr []byte) error
}

type MenuRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantID string, onlyAvailable bool) ([]domain.MenuItem, error)
	GetMenuItems(ctx context.Context, restaurantID string, ids []string) (map[string]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, restaurantID, itemID string) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, restaurantID, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, restaurantID string, statuses []domain.Status) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, change domain.StatusChange) error
	UpdateItem(ctx context.Context, edit domain.ItemEdit) error
	DeleteItem(ctx context.Context, edit domain.ItemEdit) error
}

type StaffRepository interface {
	CreateUserProfile(ctx context.Context, user *domain.User) error
	GetUserProfile(ctx context.Context, authUserID string) (*domain.User, error)
	ListStaff(ctx context.Context, restaurantID string) ([]domain.User, error)
}

type AnalyticsRepository interface {
	AnalyticsSummary(ctx context.Context, restaurantID string, topN int) (*domain.AnalyticsSummary, error)
}

// AnalyticsReader returns nil without error when nothing was aggregated yet.
type AnalyticsReader interface {
	Summary(ctx context.Context, restaurantID string, topN int) (*domain.AnalyticsSummary, error)
}

type CartStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type ChangeNotifier interface {
	NotifyChange(ctx context.Context, event domain.ChangeEvent) error
}

type ChangeSubscriber interface {
	Subscribe(ctx context.Context, restaurantID string) (domain.Subscription, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// AuthProvider manages principals in the external auth service.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password string, metadata map[string]string) (string, error)
	DeleteUser(ctx context.Context, authUserID string) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, owner *domain.Principal, rest *domain.Restaurant) error
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	PublicMenu(ctx context.Context, slug string) (*domain.Menu, error)
	OrderPage(ctx context.Context, token string) (*domain.OrderPage, error)
}

type MenuServiceInterface interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	ListItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, restaurantID, itemID string) (int64, error)
}

type TableServiceInterface interface {
	Create(ctx context.Context, restaurantID, name string) (*domain.Table, error)
	List(ctx context.Context, restaurantID string) ([]domain.Table, error)
	RegenerateQRCode(ctx context.Context, restaurantID, tableID string) (*domain.Table, error)
	GetQRCode(ctx context.Context, restaurantID, tableID string) ([]byte, error)
}

type CartServiceInterface interface {
	Bind(ctx context.Context, sessionID, token string) (*domain.Cart, error)
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, line domain.OrderLine) (*domain.Cart, error)
	SetQuantity(ctx context.Context, sessionID, menuItemID string, quantity int) (*domain.Cart, error)
	UpdateInstructions(ctx context.Context, sessionID, menuItemID, instructions string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, menuItemID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, token string, req domain.PlaceOrderRequest) (*domain.Order, error)
	CreateManualOrder(ctx context.Context, principal *domain.Principal, restaurantID string, req domain.ManualOrderRequest) (*domain.Order, error)
	ChangeStatus(ctx context.Context, principal *domain.Principal, restaurantID, orderID string, target domain.Status, expectedVersion int) (*domain.Order, error)
	UpdateItem(ctx context.Context, principal *domain.Principal, restaurantID, orderID, itemID string, req domain.ItemUpdateRequest) (*domain.Order, error)
	RemoveItem(ctx context.Context, principal *domain.Principal, restaurantID, orderID, itemID string, expectedVersion int) (*domain.Order, error)
	Get(ctx context.Context, restaurantID, orderID string) (*domain.Order, error)
	ListActive(ctx context.Context, restaurantID string) ([]domain.Order, error)
}

type ViewServiceInterface interface {
	Snapshot(ctx context.Context, restaurantID string, view domain.View) (*domain.ViewSnapshot, error)
	Watch(ctx context.Context, restaurantID string, view domain.View, emit func(*domain.ViewSnapshot) error) error
}

type StaffServiceInterface interface {
	Provision(ctx context.Context, req domain.StaffRequest) (*domain.ProvisionedStaff, error)
	List(ctx context.Context, restaurantID string) ([]domain.User, error)
}

type AnalyticsServiceInterface interface {
	Summary(ctx context.Context, restaurantID string) (*domain.AnalyticsSummary, error)
}
