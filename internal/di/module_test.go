package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/orderdesk/backoffice/internal/adapter/sendgrid"
	"github.com/orderdesk/backoffice/internal/app"
	"github.com/orderdesk/backoffice/internal/config"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	"github.com/orderdesk/backoffice/internal/storage/postgres"
	"github.com/orderdesk/backoffice/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		AppName:         "Atelier",
		AppBaseURL:      "https://atelier.example.com",
		MailAPIAddress:  "https://mail.local",
		MailFromEmail:   "orders@atelier.example.com",
		SessionSecret:   "secret",
		SessionTTL:      time.Hour,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	clientRepo := test.NewClientRepositoryStub()

	var facade *app.BackofficeFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.StaffRepository(test.NewStaffRepositoryStub())),
			fx.Replace(repository.ClientRepository(clientRepo)),
			fx.Replace(repository.OrderRepository(test.NewOrderRepositoryStub(clientRepo))),
			fx.Replace(repository.NotificationRepository(test.NewNotificationRepositoryStub())),
			fx.Replace(sendgrid.Transport(&test.TransportStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected backoffice facade instance")
	}
}
