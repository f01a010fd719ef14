package domain

import "time"

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	RestaurantID string    `json:"restaurant_id"`
	AuthUserID   string    `json:"auth_user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Category struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	CategoryID   string    `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	Available    bool      `json:"available"`
	SoldOut      bool      `json:"sold_out"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Orderable reports whether customers may put the item in an order.
func (m MenuItem) Orderable() bool {
	return m.Available && !m.SoldOut
}

type Table struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Token        string    `json:"token"`
	QRCode       []byte    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Order struct {
	ID                  string      `json:"id"`
	RestaurantID        string      `json:"restaurant_id"`
	TableID             *string     `json:"table_id"`
	TableName           string      `json:"table_name,omitempty"`
	CustomerSession     string      `json:"customer_session"`
	Status              Status      `json:"status"`
	Total               float64     `json:"total"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Version             int         `json:"version"`
	CreatedBy           string      `json:"created_by,omitempty"`
	UpdatedBy           string      `json:"updated_by,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	Items               []OrderItem `json:"items"`
}

// TabKey groups orders on a table or, for tabs without a table, on the
// customer session.
func (o Order) TabKey() string {
	if o.TableID != nil && *o.TableID != "" {
		return *o.TableID
	}
	return o.CustomerSession
}

type OrderItem struct {
	ID                  string  `json:"id"`
	OrderID             string  `json:"order_id"`
	MenuItemID          string  `json:"menu_item_id"`
	MenuItemName        string  `json:"menu_item_name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type StatusHistory struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	OldStatus Status    `json:"old_status"`
	NewStatus Status    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Principal is the authenticated caller. Role is empty for an auth user that
// has neither a staff profile nor a restaurant.
type Principal struct {
	AuthUserID   string `json:"auth_user_id"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	RestaurantID string `json:"restaurant_id"`
}

// InScope reports whether the principal belongs to the given restaurant.
func (p *Principal) InScope(restaurantID string) bool {
	return p != nil && p.RestaurantID != "" && p.RestaurantID == restaurantID
}

type Menu struct {
	Restaurant Restaurant `json:"restaurant"`
	Categories []Category `json:"categories"`
	Items      []MenuItem `json:"items"`
}

type OrderPage struct {
	Table TokenPayload `json:"table"`
	Menu  Menu         `json:"menu"`
}
