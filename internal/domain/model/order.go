package model

import "time"

// OrderStatus describes the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order describes a client order tracked by the back office.
type Order struct {
	ID               int64
	Reference        string
	ClientID         int64
	Description      string
	Status           OrderStatus
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	CreatedBy        *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
