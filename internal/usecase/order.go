package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
)

const referencePrefix = "CMD"

// Notifier is the dispatch surface the order workflow triggers after a
// commit. Dispatch failures never undo committed state.
type Notifier interface {
	Dispatch(ctx context.Context, orderID int64, event model.NotificationEvent, extra NotificationExtra) (*DispatchResult, error)
}

// OrderInput carries the fields for a new order.
type OrderInput struct {
	ClientID         int64
	Description      string
	Status           model.OrderStatus
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	CreatedBy        *int64
	Comment          string
}

// OrderUpdate carries a partial staff edit; nil fields stay untouched.
type OrderUpdate struct {
	ClientID         *int64
	Description      *string
	Status           *model.OrderStatus
	OrderDate        *time.Time
	ExpectedDelivery *time.Time
	Comment          string
	UpdatedBy        *int64
}

// OrderUseCase coordinates the order workflow: creation, mutation,
// status history, and post-commit notification dispatch.
type OrderUseCase struct {
	orders   repository.OrderRepository
	clients  repository.ClientRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, clients repository.ClientRepository, notifier Notifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, clients: clients, notifier: notifier, logger: logger}
}

// GenerateReference builds a human-readable unique order reference:
// prefix, date, and a random suffix. Collisions are accepted as
// negligible; the unique constraint still backstops them.
func GenerateReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return referencePrefix + now.Format("20060102") + suffix
}

// Create inserts the order and its bootstrap history row in one
// transaction, then dispatches a new-order notification best-effort.
func (u *OrderUseCase) Create(ctx context.Context, in OrderInput) (*model.Order, error) {
	if in.ClientID <= 0 {
		return nil, domainErrors.ErrValidation
	}
	if in.Status == "" {
		in.Status = model.OrderStatusPending
	}
	if !ValidStatus(in.Status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	if in.OrderDate.IsZero() {
		in.OrderDate = time.Now()
	}

	if _, err := u.clients.GetByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	comment := in.Comment
	if comment == "" {
		comment = "Order created"
	}

	order := &model.Order{
		Reference:        GenerateReference(time.Now()),
		ClientID:         in.ClientID,
		Description:      in.Description,
		Status:           in.Status,
		OrderDate:        in.OrderDate,
		ExpectedDelivery: in.ExpectedDelivery,
		CreatedBy:        in.CreatedBy,
	}

	created, err := u.orders.Create(ctx, order, comment)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, created.ID, model.EventNewOrder, NotificationExtra{NewStatus: created.Status})
	return created, nil
}

// Update applies changed fields and, when the status changed or a
// comment was supplied, appends a history row inside the same
// transaction. A status change triggers a best-effort notification
// after the commit.
func (u *OrderUseCase) Update(ctx context.Context, orderID int64, in OrderUpdate) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	previous := order.Status

	if in.ClientID != nil {
		order.ClientID = *in.ClientID
	}
	if in.Description != nil {
		order.Description = *in.Description
	}
	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return domainErrors.ErrInvalidStatus
		}
		order.Status = *in.Status
	}
	if in.OrderDate != nil {
		order.OrderDate = *in.OrderDate
	}
	if in.ExpectedDelivery != nil {
		order.ExpectedDelivery = in.ExpectedDelivery
	}

	statusChanged := order.Status != previous

	// No history row for a no-op status with no comment, to keep the
	// ledger free of noise.
	var history *model.StatusUpdate
	if statusChanged || in.Comment != "" {
		comment := in.Comment
		if comment == "" {
			comment = "Status updated"
		}
		history = &model.StatusUpdate{
			OrderID:        order.ID,
			PreviousStatus: &previous,
			NewStatus:      order.Status,
			Comment:        comment,
			CreatedBy:      in.UpdatedBy,
		}
	}

	if err := u.orders.Update(ctx, order, history); err != nil {
		return err
	}

	if statusChanged {
		u.notify(ctx, order.ID, model.EventStatusChange, NotificationExtra{NewStatus: order.Status})
	}
	return nil
}

// UpdateViaFlashcode is the only mutation path open to unauthenticated
// clients. Ownership of the order by the token's client is re-verified
// server-side on every call; a mismatch reads as not found.
func (u *OrderUseCase) UpdateViaFlashcode(ctx context.Context, token string, orderID int64, newStatus model.OrderStatus, comment string) error {
	if !ValidStatus(newStatus) {
		return domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetForFlashcode(ctx, token, orderID)
	if err != nil {
		return err
	}

	previous := order.Status
	order.Status = newStatus

	if comment == "" {
		comment = "Updated via flashcode"
	}
	history := &model.StatusUpdate{
		OrderID:        order.ID,
		PreviousStatus: &previous,
		NewStatus:      newStatus,
		Comment:        comment,
		CreatedBy:      nil,
	}

	if err := u.orders.Update(ctx, order, history); err != nil {
		return err
	}

	if newStatus != previous {
		u.notify(ctx, order.ID, model.EventStatusChange, NotificationExtra{NewStatus: newStatus})
	}
	return nil
}

// CreateViaFlashcode registers a client-originated order from the scan
// surface. The order starts pending with no staff author.
func (u *OrderUseCase) CreateViaFlashcode(ctx context.Context, token string, description string, expectedDelivery *time.Time) (*model.Order, error) {
	client, err := u.clients.GetByFlashcode(ctx, token)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, domainErrors.ErrValidation
	}

	return u.Create(ctx, OrderInput{
		ClientID:         client.ID,
		Description:      description,
		Status:           model.OrderStatusPending,
		OrderDate:        time.Now(),
		ExpectedDelivery: expectedDelivery,
	})
}

// Get fetches an order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// GetByReference fetches an order by its public reference.
func (u *OrderUseCase) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	return u.orders.GetByReference(ctx, reference)
}

// List returns orders matching the filter, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// ListByClient returns a client's orders, newest first.
func (u *OrderUseCase) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	return u.orders.ListByClient(ctx, clientID)
}

// History returns the status ledger of an order, newest first.
func (u *OrderUseCase) History(ctx context.Context, orderID int64) ([]model.StatusUpdate, error) {
	return u.orders.History(ctx, orderID)
}

// Delete removes the order; its history rows go with it.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

func (u *OrderUseCase) notify(ctx context.Context, orderID int64, event model.NotificationEvent, extra NotificationExtra) {
	if u.notifier == nil {
		return
	}
	result, err := u.notifier.Dispatch(ctx, orderID, event, extra)
	switch {
	case err != nil:
		u.logger.Error("notification dispatch failed",
			slog.Int64("order_id", orderID),
			slog.String("event", string(event)),
			slog.String("error", err.Error()),
		)
	case !result.Delivered:
		u.logger.Warn("notification not delivered",
			slog.Int64("order_id", orderID),
			slog.String("event", string(event)),
			slog.String("reason", result.Reason),
		)
	}
}
