package model

import "time"

// NotificationEvent selects the message template for a dispatch.
type NotificationEvent string

const (
	EventNewOrder     NotificationEvent = "new_order"
	EventStatusChange NotificationEvent = "status_change"
	EventGeneric      NotificationEvent = "generic"
)

// NotificationChannel names the delivery medium.
type NotificationChannel string

const ChannelEmail NotificationChannel = "email"

// DeliveryStatus tracks the outcome of a send attempt.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

// Notification is one persisted notification attempt. The row is
// written with DeliveryPending before the send is tried, so a history
// of attempts survives process crashes.
type Notification struct {
	ID             int64
	OrderID        int64
	ClientID       int64
	Channel        NotificationChannel
	DeliveryStatus DeliveryStatus
	Subject        string
	Body           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
