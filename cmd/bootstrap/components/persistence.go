package components

import (
	"lodgekeeper/internal/infra/db"
	"lodgekeeper/internal/infra/readstore"
	"lodgekeeper/internal/infra/uow"
	"lodgekeeper/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork already returns the shared interface.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
		fx.Annotate(
			readstore.NewPendingRefundReadStore,
			fx.As(new(queries.PendingRefundReadStore)),
		),
		fx.Annotate(
			readstore.NewDoorCodeReadStore,
			fx.As(new(queries.DoorCodeReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
