package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/orderdesk/backoffice/internal/adapter/sendgrid"
	"github.com/orderdesk/backoffice/internal/config"
	"github.com/orderdesk/backoffice/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newClientUseCase,
	newNotificationDispatcher,
	func(d *NotificationDispatcher) Notifier { return d },
	NewOrderUseCase,
	NewDashboardUseCase,
)

type clientParams struct {
	fx.In

	Clients repository.ClientRepository
	Config  *config.Config
}

func newClientUseCase(p clientParams) *ClientUseCase {
	return NewClientUseCase(p.Clients, p.Config.AppBaseURL)
}

type dispatcherParams struct {
	fx.In

	Orders        repository.OrderRepository
	Clients       repository.ClientRepository
	Notifications repository.NotificationRepository
	Transport     sendgrid.Transport
	Config        *config.Config
	Logger        *slog.Logger
}

func newNotificationDispatcher(p dispatcherParams) *NotificationDispatcher {
	return NewNotificationDispatcher(p.Orders, p.Clients, p.Notifications, p.Transport, p.Config.AppName, p.Logger)
}
