package domain

import "time"

const (
	CollectionOrders     = "orders"
	CollectionOrderItems = "order_items"

	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ChangeEvent is the realtime notification fanned out to open views of a
// restaurant. Subscribers refetch on any event; the fields are informative.
type ChangeEvent struct {
	RestaurantID string    `json:"restaurant_id"`
	Collection   string    `json:"collection"`
	Action       string    `json:"action"`
	OrderID      string    `json:"order_id"`
	At           time.Time `json:"at"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is published to kafka for downstream aggregation.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	OldStatus    Status    `json:"old_status,omitempty"`
	NewStatus    Status    `json:"new_status"`
	Total        float64   `json:"total"`
	ChangedBy    string    `json:"changed_by,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
