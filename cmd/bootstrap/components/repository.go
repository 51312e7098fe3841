package components

import (
	repo_impl "roomescape-api/internal/infra/repository"
	"roomescape-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewMemberRepository,
			fx.As(new(usecase.MemberRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewTimeSlotRepository,
			fx.As(new(usecase.TimeSlotRepository)),
		),
		fx.Annotate(
			repo_impl.NewThemeRepository,
			fx.As(new(usecase.ThemeRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
