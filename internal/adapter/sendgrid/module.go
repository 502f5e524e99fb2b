package sendgrid

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/orderdesk/backoffice/internal/config"
)

// Module exposes the mail transport implementation to the fx graph.
var Module = fx.Provide(newTransport)

type transportParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newTransport(p transportParams) (Transport, error) {
	return NewHTTPClient(
		p.Config.MailAPIAddress,
		p.Config.MailAPIKey,
		p.Config.MailFromEmail,
		p.Config.MailFromName,
		p.Logger,
	)
}
