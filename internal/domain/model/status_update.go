package model

import "time"

// StatusUpdate is one row of the append-only status history ledger.
// PreviousStatus is nil only for the creation event. CreatedBy is nil
// when the change was performed by the client through a flashcode.
type StatusUpdate struct {
	ID             int64
	OrderID        int64
	PreviousStatus *OrderStatus
	NewStatus      OrderStatus
	Comment        string
	CreatedBy      *int64
	CreatedAt      time.Time
}
