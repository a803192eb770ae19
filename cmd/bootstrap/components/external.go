package components

import (
	"lodgekeeper/internal/infra/external"
	"lodgekeeper/internal/pkg/config"
	"lodgekeeper/internal/usecase/shared"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(shared.PaymentProcessor)),
		),
		fx.Annotate(
			NewDirectoryClient,
			fx.As(new(shared.UserDirectory)),
		),
		fx.Annotate(
			external.NewLogNotificationSender,
			fx.As(new(shared.NotificationSender)),
		),
	),
)

func NewGatewayClient(cfg config.Config) *external.GatewayClient {
	return external.NewGatewayClient(cfg.Payment)
}

func NewDirectoryClient(cfg config.Config) *external.DirectoryClient {
	return external.NewDirectoryClient(cfg.Directory)
}
