package test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/orderdesk/backoffice/internal/adapter/sendgrid"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	"github.com/orderdesk/backoffice/internal/usecase"
)

// TransportStub records outbound messages instead of sending them.
type TransportStub struct {
	SendFn func(context.Context, sendgrid.Message) (*sendgrid.Receipt, error)
	Sent   []sendgrid.Message
	Calls  atomic.Int64
}

// Send delegates to the provided function or records and succeeds.
func (s *TransportStub) Send(ctx context.Context, msg sendgrid.Message) (*sendgrid.Receipt, error) {
	s.Calls.Add(1)
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	s.Sent = append(s.Sent, msg)
	return &sendgrid.Receipt{MessageID: "stub"}, nil
}

// NotifierStub lets order workflow tests observe dispatches.
type NotifierStub struct {
	DispatchFn func(context.Context, int64, model.NotificationEvent, usecase.NotificationExtra) (*usecase.DispatchResult, error)
	Events     []model.NotificationEvent
}

// Dispatch delegates to the provided function or reports delivery.
func (s *NotifierStub) Dispatch(ctx context.Context, orderID int64, event model.NotificationEvent, extra usecase.NotificationExtra) (*usecase.DispatchResult, error) {
	s.Events = append(s.Events, event)
	if s.DispatchFn != nil {
		return s.DispatchFn(ctx, orderID, event, extra)
	}
	return &usecase.DispatchResult{NotificationID: 1, Delivered: true}, nil
}

// AuthFacadeStub provides controllable behaviour for the session guard.
type AuthFacadeStub struct {
	LoginFn      func(context.Context, string, string) (*model.Staff, string, string, error)
	ParseTokenFn func(string) (int64, error)
	VerifyCSRFFn func(string, string) bool
}

// Login delegates to the provided function or succeeds with fixed tokens.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.Staff, string, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.Staff{ID: 1, Email: email}, "session-token", "csrf-token", nil
}

// ParseToken accepts any token as staff 1 unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// VerifyCSRF accepts any pair unless overridden.
func (s AuthFacadeStub) VerifyCSRF(sessionToken, csrfToken string) bool {
	if s.VerifyCSRFFn != nil {
		return s.VerifyCSRFFn(sessionToken, csrfToken)
	}
	return true
}

// ClientFacadeStub provides controllable behaviour for client endpoints.
type ClientFacadeStub struct {
	CreateFn    func(context.Context, usecase.ClientInput) (*model.Client, error)
	ListFn      func(context.Context) ([]model.Client, error)
	GetFn       func(context.Context, int64) (*model.Client, error)
	UpdateFn    func(context.Context, int64, usecase.ClientInput) (*model.Client, error)
	DeleteFn    func(context.Context, int64) error
	FlashcodeFn func(context.Context, int64) (*model.Client, *usecase.Flashcode, error)
}

func (s ClientFacadeStub) CreateClient(ctx context.Context, in usecase.ClientInput) (*model.Client, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Client{ID: 1, Name: in.Name, Email: in.Email}, nil
}

func (s ClientFacadeStub) Clients(ctx context.Context) ([]model.Client, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Client{{ID: 1}}, nil
}

func (s ClientFacadeStub) Client(ctx context.Context, id int64) (*model.Client, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Client{ID: id}, nil
}

func (s ClientFacadeStub) UpdateClient(ctx context.Context, id int64, in usecase.ClientInput) (*model.Client, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, in)
	}
	return &model.Client{ID: id, Name: in.Name, Email: in.Email}, nil
}

func (s ClientFacadeStub) DeleteClient(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s ClientFacadeStub) ClientFlashcode(ctx context.Context, id int64) (*model.Client, *usecase.Flashcode, error) {
	if s.FlashcodeFn != nil {
		return s.FlashcodeFn(ctx, id)
	}
	return &model.Client{ID: id}, &usecase.Flashcode{Token: "token"}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn         func(context.Context, usecase.OrderInput) (*model.Order, error)
	ListFn           func(context.Context, repository.OrderFilter) ([]model.Order, error)
	GetFn            func(context.Context, int64) (*model.Order, error)
	GetByReferenceFn func(context.Context, string) (*model.Order, error)
	UpdateFn         func(context.Context, int64, usecase.OrderUpdate) error
	DeleteFn         func(context.Context, int64) error
	HistoryFn        func(context.Context, int64) ([]model.StatusUpdate, error)
	NotificationsFn  func(context.Context, int64) ([]model.Notification, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Order{ID: 1, ClientID: in.ClientID, Status: in.Status, OrderDate: in.OrderDate}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending, OrderDate: time.Unix(0, 0)}}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending, OrderDate: time.Unix(0, 0)}, nil
}

func (s OrderFacadeStub) OrderByReference(ctx context.Context, reference string) (*model.Order, error) {
	if s.GetByReferenceFn != nil {
		return s.GetByReferenceFn(ctx, reference)
	}
	return &model.Order{ID: 1, Reference: reference, Status: model.OrderStatusPending, OrderDate: time.Unix(0, 0)}, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, in usecase.OrderUpdate) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, in)
	}
	return nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s OrderFacadeStub) OrderHistory(ctx context.Context, orderID int64) ([]model.StatusUpdate, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, orderID)
	}
	return []model.StatusUpdate{{ID: 1, OrderID: orderID, NewStatus: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) OrderNotifications(ctx context.Context, orderID int64) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx, orderID)
	}
	return []model.Notification{{ID: 1, OrderID: orderID, DeliveryStatus: model.DeliverySent}}, nil
}

// ScanFacadeStub provides controllable behaviour for the public scan surface.
type ScanFacadeStub struct {
	ScanFn         func(context.Context, string) (*model.Client, []model.Order, error)
	UpdateStatusFn func(context.Context, string, int64, model.OrderStatus, string) error
	CreateOrderFn  func(context.Context, string, string, *time.Time) (*model.Order, error)
}

func (s ScanFacadeStub) ScanClient(ctx context.Context, token string) (*model.Client, []model.Order, error) {
	if s.ScanFn != nil {
		return s.ScanFn(ctx, token)
	}
	return &model.Client{ID: 1, FlashcodeID: token}, []model.Order{{ID: 1, OrderDate: time.Unix(0, 0)}}, nil
}

func (s ScanFacadeStub) UpdateOrderViaFlashcode(ctx context.Context, token string, orderID int64, status model.OrderStatus, comment string) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, token, orderID, status, comment)
	}
	return nil
}

func (s ScanFacadeStub) CreateOrderViaFlashcode(ctx context.Context, token, description string, expectedDelivery *time.Time) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, token, description, expectedDelivery)
	}
	return &model.Order{ID: 1, Description: description, OrderDate: time.Unix(0, 0)}, nil
}

// ReportFacadeStub provides controllable behaviour for the dashboard.
type ReportFacadeStub struct {
	StatsFn func(context.Context) (*usecase.DashboardStats, error)
}

func (s ReportFacadeStub) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &usecase.DashboardStats{
		Clients:    1,
		Orders:     1,
		EmailsSent: 1,
		Recent: []usecase.RecentOrder{{
			Order:  model.Order{ID: 1, Status: model.OrderStatusPending, OrderDate: time.Unix(0, 0)},
			Client: model.Client{ID: 1, Name: "Martin", FirstName: "Paul"},
		}},
	}, nil
}

// BackofficeFacadeStub aggregates the facade stubs for router tests.
type BackofficeFacadeStub struct {
	AuthFacadeStub
	ClientFacadeStub
	OrderFacadeStub
	ScanFacadeStub
	ReportFacadeStub
}

// WorkerFacadeStub simulates the redelivery surface.
type WorkerFacadeStub struct {
	FailedFn    func(context.Context, int) ([]model.Notification, error)
	RedeliverFn func(context.Context, model.Notification) error
	Redelivered atomic.Int64
}

func (s *WorkerFacadeStub) FailedNotifications(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.FailedFn != nil {
		return s.FailedFn(ctx, limit)
	}
	return nil, nil
}

func (s *WorkerFacadeStub) RedeliverNotification(ctx context.Context, n model.Notification) error {
	s.Redelivered.Add(1)
	if s.RedeliverFn != nil {
		return s.RedeliverFn(ctx, n)
	}
	return nil
}
