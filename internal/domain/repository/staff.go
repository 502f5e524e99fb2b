package repository

import (
	"context"

	"github.com/orderdesk/backoffice/internal/domain/model"
)

// StaffRepository describes persistence operations with staff accounts.
type StaffRepository interface {
	Create(ctx context.Context, name, firstName, email, passwordHash string) (*model.Staff, error)
	GetByEmail(ctx context.Context, email string) (*model.Staff, error)
	GetByID(ctx context.Context, id int64) (*model.Staff, error)
}
