package usecase

import (
	"context"

	"roomescape-api/internal/domain/reservation"
	"roomescape-api/internal/pkg/errs"
	"roomescape-api/internal/usecase/queries"
)

// AvailabilityUseCase reports, for a (date, theme) pair, every slot of the
// time catalog with a booked flag. It is always computed from the store so a
// booking committed a moment ago is visible in the next read.
type AvailabilityUseCase interface {
	ListSlots(ctx context.Context, date reservation.Date, themeID int64) ([]*queries.AvailableSlotView, error)
}

type availabilityUseCaseImpl struct {
	timeRepo        TimeSlotRepository
	reservationRepo ReservationRepository
}

func NewAvailabilityUseCase(timeRepo TimeSlotRepository, reservationRepo ReservationRepository) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		timeRepo:        timeRepo,
		reservationRepo: reservationRepo,
	}
}

func (u *availabilityUseCaseImpl) ListSlots(ctx context.Context, date reservation.Date, themeID int64) ([]*queries.AvailableSlotView, error) {
	// The full catalog, not theme-scoped; FindAll orders by id ascending.
	catalog, err := u.timeRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load time catalog")
	}

	bookedIDs, err := u.reservationRepo.FindTimeIDsByDateAndTheme(ctx, date, themeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked time ids")
	}

	booked := make(map[int64]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	slots := make([]*queries.AvailableSlotView, len(catalog))
	for i, t := range catalog {
		_, taken := booked[t.ID]
		slots[i] = &queries.AvailableSlotView{
			TimeID:  t.ID,
			StartAt: t.StartAt,
			Booked:  taken,
		}
	}

	return slots, nil
}
