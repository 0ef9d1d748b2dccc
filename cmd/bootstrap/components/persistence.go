package components

import (
	"parking-core/internal/infra/readstore"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/infra/uow"
	"parking-core/internal/usecase/queries"
	"parking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

// PersistenceModule shares one stateless *sqlc.Queries between the unit of
// work and every read store. Write repositories are created per transaction.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		sqlc.New,
		fx.Annotate(uow.NewPostgresUoW, fx.As(new(shared.UnitOfWork))),
	),
	fx.Provide(
		newUserReadStore,
		newLotReadStore,
		newReservationReadStore,
		newStatsReadStore,
	),
)

func newUserReadStore(q *sqlc.Queries) queries.UserReadStore {
	return readstore.NewUserReadStore(q)
}

func newLotReadStore(q *sqlc.Queries) queries.LotReadStore {
	return readstore.NewLotReadStore(q)
}

func newReservationReadStore(q *sqlc.Queries) queries.ReservationReadStore {
	return readstore.NewReservationReadStore(q)
}

func newStatsReadStore(q *sqlc.Queries) queries.StatsReadStore {
	return readstore.NewStatsReadStore(q)
}
