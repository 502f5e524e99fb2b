package repository

import (
	"context"

	"github.com/orderdesk/backoffice/internal/domain/model"
)

// NotificationRepository describes persistence of notification attempts.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	UpdateDeliveryStatus(ctx context.Context, id int64, status model.DeliveryStatus) error
	ListByOrder(ctx context.Context, orderID int64) ([]model.Notification, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Notification, error)
	// ListFailed returns the oldest failed attempts for redelivery.
	ListFailed(ctx context.Context, limit int) ([]model.Notification, error)
	CountByStatus(ctx context.Context, status model.DeliveryStatus) (int64, error)
}
