package models

import "time"

// OrderStatus is the lifecycle label attached to an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"

	// OrderStatusConfirmed is set by the payment-QR flow when the customer
	// confirms the transfer. It is not part of the linear kitchen lifecycle.
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// OrderItem is a single priced line of an order. Immutable after creation.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a customer's submitted purchase request.
type Order struct {
	ID          int64       `json:"id"`
	RequesterID string      `json:"requester_id"`
	UserID      string      `json:"user_id,omitempty"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CreateOrderRequest is the POST /orders payload. Items may arrive unpriced
// ({product_id, quantity} only, as the Mini App sends them); the service
// resolves prices from the catalog and computes the total in that case.
type CreateOrderRequest struct {
	RequesterID string      `json:"requester_id"`
	UserID      string      `json:"user_id,omitempty"`
	UserName    string      `json:"user_name,omitempty"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total,omitempty"`
}

// UpdateOrderStatusRequest is the PATCH /orders/:id/status payload.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// UpdateOrderStatusResponse mirrors the shape the Mini App expects.
type UpdateOrderStatusResponse struct {
	Success bool   `json:"success"`
	Order   *Order `json:"order"`
}
