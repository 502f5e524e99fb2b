package di

import (
	"go.uber.org/fx"

	"github.com/orderdesk/backoffice/internal/adapter/sendgrid"
	"github.com/orderdesk/backoffice/internal/app"
	"github.com/orderdesk/backoffice/internal/config"
	"github.com/orderdesk/backoffice/internal/logger"
	"github.com/orderdesk/backoffice/internal/pkg/auth"
	"github.com/orderdesk/backoffice/internal/server/http/handlers"
	"github.com/orderdesk/backoffice/internal/server/http/router"
	"github.com/orderdesk/backoffice/internal/storage/postgres"
	"github.com/orderdesk/backoffice/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		sendgrid.Module,
		usecase.Module,
		fx.Provide(func(facade *app.BackofficeFacade) handlers.BackofficeFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
