package usecase

import (
	"context"
	"errors"

	"roomescape-api/internal/domain/timeslot"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/pkg/errs"
	"roomescape-api/internal/usecase/queries"
)

var (
	ErrInvalidTime   = errors.New("invalid reservation time request")
	ErrDuplicateTime = errors.New("reservation time already exists")
	ErrTimeInUse     = errors.New("reservation time is in use")
)

// TimeSlotRepository is the port for the bookable time catalog. The unique
// index on start_at is the authoritative duplicate guard.
type TimeSlotRepository interface {
	Create(ctx context.Context, t *timeslot.ReservationTime) (int64, error)
	FindAll(ctx context.Context) ([]*queries.TimeSlotView, error)
	FindByID(ctx context.Context, id int64) (*timeslot.ReservationTime, error)
	ExistsByStartAt(ctx context.Context, startAt timeslot.StartAt) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type TimeSlotUseCase interface {
	Create(ctx context.Context, startAt string) (*queries.TimeSlotView, error)
	List(ctx context.Context) ([]*queries.TimeSlotView, error)
	Delete(ctx context.Context, id int64) error
}

type timeSlotUseCaseImpl struct {
	timeRepo        TimeSlotRepository
	reservationRepo ReservationRepository
}

func NewTimeSlotUseCase(timeRepo TimeSlotRepository, reservationRepo ReservationRepository) TimeSlotUseCase {
	return &timeSlotUseCaseImpl{
		timeRepo:        timeRepo,
		reservationRepo: reservationRepo,
	}
}

func (u *timeSlotUseCaseImpl) Create(ctx context.Context, startAt string) (*queries.TimeSlotView, error) {
	at, err := timeslot.NewStartAt(startAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTime)
	}

	// Advisory; the storage unique index decides under concurrency.
	exists, err := u.timeRepo.ExistsByStartAt(ctx, at)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check for duplicate start time")
	}
	if exists {
		return nil, ErrDuplicateTime
	}

	id, err := u.timeRepo.Create(ctx, timeslot.NewReservationTime(at))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateTime
		}
		return nil, errs.Wrap(err, "failed to create reservation time")
	}

	return &queries.TimeSlotView{ID: id, StartAt: at.String()}, nil
}

func (u *timeSlotUseCaseImpl) List(ctx context.Context) ([]*queries.TimeSlotView, error) {
	views, err := u.timeRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservation times")
	}
	return views, nil
}

func (u *timeSlotUseCaseImpl) Delete(ctx context.Context, id int64) error {
	if _, err := u.timeRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTimeNotFound
		}
		return errs.Wrap(err, "failed to find reservation time")
	}

	used, err := u.reservationRepo.ExistsByTimeID(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to check reservation time usage")
	}
	if used {
		return ErrTimeInUse
	}

	if err := u.timeRepo.Delete(ctx, id); err != nil {
		// RESTRICT on the foreign key catches a reservation created between
		// the usage check and the delete.
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrTimeInUse
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTimeNotFound
		}
		return errs.Wrap(err, "failed to delete reservation time")
	}
	return nil
}
