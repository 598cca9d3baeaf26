package model

import "time"

type OrderStatus string

const (
	StatusPendingShipment OrderStatus = "PENDING_SHIPMENT"
	StatusShipped         OrderStatus = "SHIPPED"
	StatusDelivered       OrderStatus = "DELIVERED"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPendingShipment, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Product is catalog reference data; never written through this service.
type Product struct {
	ID        string `json:"id"        db:"id"`
	Name      string `json:"name"      db:"name"`
	UnitPrice int64  `json:"unitPrice" db:"unit_price"` // cents
}

// Order and OrderItem cross the HTTP boundary as-is; the json tags are
// the API's camelCase field names, the db tags the snake_case columns.
type Order struct {
	ID         string      `json:"id"         db:"id"`
	CustomerID string      `json:"customerId" db:"customer_id"`
	Status     OrderStatus `json:"status"     db:"status"`
	CreatedAt  time.Time   `json:"createdAt"  db:"created_at"`
}

// OrderItem is the persisted form of a priced line. UnitPrice is the
// price captured at order-creation time and is never recomputed from
// the catalog afterwards.
type OrderItem struct {
	ID        string `json:"id"        db:"id"`
	OrderID   string `json:"orderId"   db:"order_id"`
	ProductID string `json:"productId" db:"product_id"`
	Quantity  int    `json:"quantity"  db:"quantity"`
	UnitPrice int64  `json:"unitPrice" db:"unit_price"` // cents
}

// ItemRequest is one requested line before pricing.
type ItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PricedItem is an ItemRequest with the catalog unit price attached.
type PricedItem struct {
	ProductID string
	Quantity  int
	UnitPrice int64 // cents
}

type CreateOrderCommand struct {
	CustomerID string        `json:"customerId"`
	Items      []ItemRequest `json:"items"`
}

// StatusUpdate is the result of an order status transition.
type StatusUpdate struct {
	ID     string      `json:"id"`
	Status OrderStatus `json:"status"`
}

// OrderCreatedEvent is the payload published on the order-created topic.
type OrderCreatedEvent struct {
	OrderID string `json:"orderId"`
}
