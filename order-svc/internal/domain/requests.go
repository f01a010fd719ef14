package domain

import "time"

// TokenPayload is what a table QR code carries. Exp is seconds since epoch.
type TokenPayload struct {
	TableID      string `json:"table_id"`
	RestaurantID string `json:"restaurant_id"`
	TableName    string `json:"table_name"`
	Exp          int64  `json:"exp"`
}

func (p TokenPayload) Expired(now time.Time) bool {
	return p.Exp <= now.Unix()
}

type OrderLine struct {
	MenuItemID          string `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// PlaceOrderRequest is what a customer submits from the table ordering page.
// When Items is empty the cart stored under SessionID is used.
type PlaceOrderRequest struct {
	SessionID           string      `json:"session_id,omitempty"`
	Items               []OrderLine `json:"items"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
}

// ManualOrderRequest is staff-entered: a table order or, without TableID, a tab.
type ManualOrderRequest struct {
	TableID             string      `json:"table_id,omitempty"`
	TabName             string      `json:"tab_name,omitempty"`
	Items               []OrderLine `json:"items"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
}

type StatusChangeRequest struct {
	Status  Status `json:"status"`
	Version int    `json:"version,omitempty"`
}

type ItemUpdateRequest struct {
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
	Version             int    `json:"version,omitempty"`
}

// StatusChange is a compare-and-swap status write.
type StatusChange struct {
	RestaurantID    string
	OrderID         string
	From            Status
	To              Status
	ExpectedVersion int
	ChangedBy       string
}

type StaffRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	RestaurantID string `json:"restaurant_id"`
}

type ProvisionedStaff struct {
	User
	TempPassword string `json:"temp_password"`
	LoginURL     string `json:"login_url"`
}

// ItemEdit is a compare-and-swap write to one order line. Quantity is
// ignored on delete.
type ItemEdit struct {
	RestaurantID        string
	OrderID             string
	ItemID              string
	Quantity            int
	SpecialInstructions string
	ExpectedVersion     int
	ChangedBy           string
}
