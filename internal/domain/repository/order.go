package repository

import (
	"context"
	"time"

	"github.com/orderdesk/backoffice/internal/domain/model"
)

// OrderFilter narrows order listings and report exports.
type OrderFilter struct {
	ClientID *int64
	Status   *model.OrderStatus
	From     *time.Time
	To       *time.Time
}

// OrderRepository describes persistence operations with orders and
// their status history. Create and Update wrap their multi-statement
// mutations in a single transaction.
type OrderRepository interface {
	// Create inserts the order row together with its bootstrap history
	// row (previous status nil) in one transaction.
	Create(ctx context.Context, order *model.Order, comment string) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByReference(ctx context.Context, reference string) (*model.Order, error)
	// GetWithClient loads the order joined with its owning client.
	GetWithClient(ctx context.Context, id int64) (*model.Order, *model.Client, error)
	// GetForFlashcode loads the order only when it belongs to the
	// client owning the flashcode token. Miss and ownership mismatch
	// are both ErrNotFound.
	GetForFlashcode(ctx context.Context, token string, orderID int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Order, error)
	// Latest returns the most recent orders by order date.
	Latest(ctx context.Context, limit int) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	// Update applies scalar fields and, when history is non-nil,
	// appends the history row inside the same transaction.
	Update(ctx context.Context, order *model.Order, history *model.StatusUpdate) error
	History(ctx context.Context, orderID int64) ([]model.StatusUpdate, error)
	Delete(ctx context.Context, id int64) error
}
