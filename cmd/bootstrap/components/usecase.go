package components

import (
	"roomescape-api/internal/pkg/clock"
	"roomescape-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewIdentityResolver,
		usecase.NewReservationUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewRankingUseCase,
		usecase.NewTimeSlotUseCase,
		usecase.NewThemeUseCase,
	),
)
