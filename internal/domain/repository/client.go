package repository

import (
	"context"

	"github.com/orderdesk/backoffice/internal/domain/model"
)

// ClientRepository describes persistence operations with clients.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) (*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	// GetByFlashcode is the only lookup the public scan surface uses.
	GetByFlashcode(ctx context.Context, token string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Count(ctx context.Context) (int64, error)
	// Update never touches the flashcode column.
	Update(ctx context.Context, client *model.Client) error
	// Delete fails with ErrConflict while the client still owns orders.
	Delete(ctx context.Context, id int64) error
}
