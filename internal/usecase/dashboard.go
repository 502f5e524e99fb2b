package usecase

import (
	"context"

	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
)

// recentOrdersLimit caps the back-office landing page order list.
const recentOrdersLimit = 5

// DashboardStats aggregates the figures shown on the back-office
// landing page: registry sizes, delivered email count, and the most
// recent orders joined with their owning clients.
type DashboardStats struct {
	Clients    int64
	Orders     int64
	EmailsSent int64
	Recent     []RecentOrder
}

// RecentOrder pairs an order with its owning client for display.
type RecentOrder struct {
	Order  model.Order
	Client model.Client
}

// DashboardUseCase produces the landing page statistics.
type DashboardUseCase struct {
	clients       repository.ClientRepository
	orders        repository.OrderRepository
	notifications repository.NotificationRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(
	clients repository.ClientRepository,
	orders repository.OrderRepository,
	notifications repository.NotificationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, orders: orders, notifications: notifications}
}

// Stats collects the counters and the latest orders. A client deleted
// between the order listing and the join read just drops out of the
// recent list.
func (u *DashboardUseCase) Stats(ctx context.Context) (*DashboardStats, error) {
	clients, err := u.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	sent, err := u.notifications.CountByStatus(ctx, model.DeliverySent)
	if err != nil {
		return nil, err
	}

	latest, err := u.orders.Latest(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	recent := make([]RecentOrder, 0, len(latest))
	for _, order := range latest {
		client, err := u.clients.GetByID(ctx, order.ClientID)
		if err != nil {
			continue
		}
		recent = append(recent, RecentOrder{Order: order, Client: *client})
	}

	return &DashboardStats{
		Clients:    clients,
		Orders:     orders,
		EmailsSent: sent,
		Recent:     recent,
	}, nil
}
