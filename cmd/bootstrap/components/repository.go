package components

import (
	"booking-core/internal/infra/readstore"
	"booking-core/internal/infra/repository"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(commands.ShopConfigReads)),
			fx.As(new(queries.ShopScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(commands.ReservationReads)),
			fx.As(new(queries.ReservationSnapshotReadStore)),
			fx.As(new(queries.ReservationViewReadStore)),
		),
	),
)
