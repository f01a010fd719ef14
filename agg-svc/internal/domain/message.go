package domain

import "time"

const (
	EventOrderStatusChanged = "order_status_changed"
	StatusCompleted         = "COMPLETED"
)

// OrderEvent is the order lifecycle message order-svc publishes. Only the
// fields the aggregator reads are decoded.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	OldStatus    string    `json:"old_status,omitempty"`
	NewStatus    string    `json:"new_status"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

// Completed reports whether the event closes an order as served.
func (e OrderEvent) Completed() bool {
	return e.Type == EventOrderStatusChanged && e.NewStatus == StatusCompleted
}

// ItemLine is one menu item's share of a completed order.
type ItemLine struct {
	Name     string
	Quantity int
	Revenue  float64
}
