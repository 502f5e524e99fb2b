package app

import (
	"context"
	"time"

	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	"github.com/orderdesk/backoffice/internal/usecase"
)

// BackofficeFacade aggregates the use cases behind a single surface for
// the HTTP handlers and the redelivery worker.
type BackofficeFacade struct {
	auth          *usecase.AuthUseCase
	clients       *usecase.ClientUseCase
	orders        *usecase.OrderUseCase
	notifications *usecase.NotificationDispatcher
	dashboard     *usecase.DashboardUseCase
}

func NewBackofficeFacade(
	auth *usecase.AuthUseCase,
	clients *usecase.ClientUseCase,
	orders *usecase.OrderUseCase,
	notifications *usecase.NotificationDispatcher,
	dashboard *usecase.DashboardUseCase,
) *BackofficeFacade {
	return &BackofficeFacade{auth: auth, clients: clients, orders: orders, notifications: notifications, dashboard: dashboard}
}

// --- session / access guard ---

func (f *BackofficeFacade) Login(ctx context.Context, email, password string) (*model.Staff, string, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *BackofficeFacade) RegisterStaff(ctx context.Context, name, firstName, email, password string) (*model.Staff, error) {
	return f.auth.Register(ctx, name, firstName, email, password)
}

func (f *BackofficeFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *BackofficeFacade) VerifyCSRF(sessionToken, csrfToken string) bool {
	return f.auth.VerifyCSRF(sessionToken, csrfToken)
}

// --- client registry ---

func (f *BackofficeFacade) CreateClient(ctx context.Context, in usecase.ClientInput) (*model.Client, error) {
	return f.clients.Create(ctx, in)
}

func (f *BackofficeFacade) Clients(ctx context.Context) ([]model.Client, error) {
	return f.clients.List(ctx)
}

func (f *BackofficeFacade) Client(ctx context.Context, id int64) (*model.Client, error) {
	return f.clients.Get(ctx, id)
}

func (f *BackofficeFacade) UpdateClient(ctx context.Context, id int64, in usecase.ClientInput) (*model.Client, error) {
	return f.clients.Update(ctx, id, in)
}

func (f *BackofficeFacade) DeleteClient(ctx context.Context, id int64) error {
	return f.clients.Delete(ctx, id)
}

func (f *BackofficeFacade) ClientFlashcode(ctx context.Context, id int64) (*model.Client, *usecase.Flashcode, error) {
	return f.clients.Flashcode(ctx, id)
}

// --- order workflow ---

func (f *BackofficeFacade) CreateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *BackofficeFacade) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *BackofficeFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *BackofficeFacade) OrderByReference(ctx context.Context, reference string) (*model.Order, error) {
	return f.orders.GetByReference(ctx, reference)
}

func (f *BackofficeFacade) UpdateOrder(ctx context.Context, id int64, in usecase.OrderUpdate) error {
	return f.orders.Update(ctx, id, in)
}

func (f *BackofficeFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *BackofficeFacade) OrderHistory(ctx context.Context, orderID int64) ([]model.StatusUpdate, error) {
	return f.orders.History(ctx, orderID)
}

func (f *BackofficeFacade) OrderNotifications(ctx context.Context, orderID int64) ([]model.Notification, error) {
	return f.notifications.ListByOrder(ctx, orderID)
}

// --- reports ---

func (f *BackofficeFacade) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	return f.dashboard.Stats(ctx)
}

// --- public scan surface ---

func (f *BackofficeFacade) ScanClient(ctx context.Context, token string) (*model.Client, []model.Order, error) {
	client, err := f.clients.FindByFlashcode(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	orders, err := f.orders.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, nil, err
	}
	return client, orders, nil
}

func (f *BackofficeFacade) UpdateOrderViaFlashcode(ctx context.Context, token string, orderID int64, status model.OrderStatus, comment string) error {
	return f.orders.UpdateViaFlashcode(ctx, token, orderID, status, comment)
}

func (f *BackofficeFacade) CreateOrderViaFlashcode(ctx context.Context, token, description string, expectedDelivery *time.Time) (*model.Order, error) {
	return f.orders.CreateViaFlashcode(ctx, token, description, expectedDelivery)
}

// --- redelivery worker surface ---

func (f *BackofficeFacade) FailedNotifications(ctx context.Context, limit int) ([]model.Notification, error) {
	return f.notifications.ListFailed(ctx, limit)
}

func (f *BackofficeFacade) RedeliverNotification(ctx context.Context, n model.Notification) error {
	return f.notifications.Redeliver(ctx, n)
}
