// File: internal/domain/model/order.go
package model

import "encoding/json"

// Order is the read-only order record as served by the order API. Optional
// fields stay strings/numbers as received; rendering decides placeholders.
type Order struct {
	ID              int64       `json:"id"`
	Status          string      `json:"status"`
	TotalAmount     json.Number `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address"`
	CustomerPhone   string      `json:"customer_phone"`
	Notes           string      `json:"notes"`
	CreatedAt       string      `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is either a structured line item or an opaque string coming from
// older API responses. Raw is set when the element was not an object.
type OrderItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`

	Raw string `json:"-"`
}

type orderItemAlias OrderItem

func (it *OrderItem) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*it = OrderItem{Raw: s}
		return nil
	}
	var a orderItemAlias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*it = OrderItem(a)
	return nil
}

// NewOrder is the webhook payload for a freshly placed order. It carries no
// status; the order service assigns one later.
type NewOrder struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	TotalAmount     json.Number `json:"total_amount"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"items"`
}

// Empty reports whether the payload carries nothing identifiable. Such
// payloads are rejected before any dispatch.
func (p NewOrder) Empty() bool {
	return p.ID == 0 && p.OrderNumber == "" && p.CustomerName == "" &&
		p.CustomerPhone == "" && p.DeliveryAddress == "" &&
		p.TotalAmount == "" && p.Notes == "" && len(p.Items) == 0
}

// StatusChange is the webhook payload for an order status transition.
// ChatID is optional; when present the client is notified as well.
type StatusChange struct {
	OrderID   int64  `json:"order_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	ChatID    int64  `json:"chat_id"`
}

func (e StatusChange) Empty() bool {
	return e.OrderID == 0 && e.OldStatus == "" && e.NewStatus == ""
}
