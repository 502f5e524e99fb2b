package dto

import "time"

// OrderCreateRequest describes a new order. Dates use YYYY-MM-DD.
type OrderCreateRequest struct {
	ClientID             int64  `json:"client_id" binding:"required"`
	Description          string `json:"description"`
	Status               string `json:"status"`
	OrderDate            string `json:"order_date"`
	ExpectedDeliveryDate string `json:"expected_delivery_date"`
	Comment              string `json:"comment"`
}

// OrderUpdateRequest describes a partial order edit; absent fields
// stay untouched.
type OrderUpdateRequest struct {
	ClientID             *int64  `json:"client_id"`
	Description          *string `json:"description"`
	Status               *string `json:"status"`
	OrderDate            *string `json:"order_date"`
	ExpectedDeliveryDate *string `json:"expected_delivery_date"`
	Comment              string  `json:"comment"`
}

// OrderResponse describes an order record.
type OrderResponse struct {
	ID                   int64     `json:"id"`
	Reference            string    `json:"reference"`
	ClientID             int64     `json:"client_id"`
	Description          string    `json:"description,omitempty"`
	Status               string    `json:"status"`
	OrderDate            string    `json:"order_date"`
	ExpectedDeliveryDate *string   `json:"expected_delivery_date,omitempty"`
	CreatedBy            *int64    `json:"created_by,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// StatusUpdateResponse describes one history ledger entry.
type StatusUpdateResponse struct {
	ID             int64     `json:"id"`
	OrderID        int64     `json:"order_id"`
	PreviousStatus *string   `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Comment        string    `json:"comment,omitempty"`
	CreatedBy      *int64    `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationResponse describes one notification attempt.
type NotificationResponse struct {
	ID             int64     `json:"id"`
	OrderID        int64     `json:"order_id"`
	ClientID       int64     `json:"client_id"`
	Channel        string    `json:"channel"`
	DeliveryStatus string    `json:"delivery_status"`
	Subject        string    `json:"subject"`
	CreatedAt      time.Time `json:"created_at"`
}
