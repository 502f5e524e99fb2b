package handlers

import (
	"context"
	"time"

	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	"github.com/orderdesk/backoffice/internal/usecase"
)

// AuthFacade describes the session guard capabilities handlers rely on.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.Staff, string, string, error)
	ParseToken(token string) (int64, error)
	VerifyCSRF(sessionToken, csrfToken string) bool
}

// ClientFacade encapsulates client registry operations exposed via HTTP.
type ClientFacade interface {
	CreateClient(ctx context.Context, in usecase.ClientInput) (*model.Client, error)
	Clients(ctx context.Context) ([]model.Client, error)
	Client(ctx context.Context, id int64) (*model.Client, error)
	UpdateClient(ctx context.Context, id int64, in usecase.ClientInput) (*model.Client, error)
	DeleteClient(ctx context.Context, id int64) error
	ClientFlashcode(ctx context.Context, id int64) (*model.Client, *usecase.Flashcode, error)
}

// OrderFacade encapsulates order workflow operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error)
	Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	OrderByReference(ctx context.Context, reference string) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, in usecase.OrderUpdate) error
	DeleteOrder(ctx context.Context, id int64) error
	OrderHistory(ctx context.Context, orderID int64) ([]model.StatusUpdate, error)
	OrderNotifications(ctx context.Context, orderID int64) ([]model.Notification, error)
}

// ReportFacade extends order listing with the dashboard statistics.
type ReportFacade interface {
	OrderFacade
	DashboardStats(ctx context.Context) (*usecase.DashboardStats, error)
}

// ScanFacade is the public flashcode surface.
type ScanFacade interface {
	ScanClient(ctx context.Context, token string) (*model.Client, []model.Order, error)
	UpdateOrderViaFlashcode(ctx context.Context, token string, orderID int64, status model.OrderStatus, comment string) error
	CreateOrderViaFlashcode(ctx context.Context, token, description string, expectedDelivery *time.Time) (*model.Order, error)
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	AuthFacade
	ClientFacade
	ReportFacade
	ScanFacade
}
