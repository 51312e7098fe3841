package usecase

import (
	"context"
	"errors"

	"roomescape-api/internal/domain/reservation"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/pkg/clock"
	"roomescape-api/internal/pkg/errs"
	"roomescape-api/internal/usecase/queries"
)

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrTimeNotFound         = errors.New("reservation time not found")
	ErrThemeNotFound        = errors.New("theme not found")
	ErrPastReservation      = errors.New("reservation slot is in the past")
	ErrDuplicateReservation = errors.New("reservation already exists for the slot")
	ErrInvalidReservation   = errors.New("invalid reservation request")
)

// ReservationRepository is the write/read port for reservations. The unique
// index on (date, time_id, theme_id) is the authoritative duplicate guard;
// ExistsByTriple is only the user-friendly fast path.
type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*queries.ReservationView, error)
	FindAll(ctx context.Context) ([]*queries.ReservationView, error)
	FindTimeIDsByDateAndTheme(ctx context.Context, date reservation.Date, themeID int64) ([]int64, error)
	ExistsByTriple(ctx context.Context, date reservation.Date, timeID, themeID int64) (bool, error)
	ExistsByTimeID(ctx context.Context, timeID int64) (bool, error)
	ExistsByThemeID(ctx context.Context, themeID int64) (bool, error)
	CountByThemeBetween(ctx context.Context, from, to reservation.Date) ([]queries.ThemeReservationCount, error)
	Delete(ctx context.Context, id int64) error
}

type CreateReservationParams struct {
	Name    string
	Date    reservation.Date
	TimeID  int64
	ThemeID int64
}

type ReservationUseCase interface {
	Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	List(ctx context.Context) ([]*queries.ReservationView, error)
	Delete(ctx context.Context, id int64) error
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	timeRepo        TimeSlotRepository
	themeRepo       ThemeRepository
	clock           clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	timeRepo TimeSlotRepository,
	themeRepo ThemeRepository,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		timeRepo:        timeRepo,
		themeRepo:       themeRepo,
		clock:           clock,
	}
}

func (u *reservationUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	slot, err := u.timeRepo.FindByID(ctx, params.TimeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTimeNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation time")
	}

	th, err := u.themeRepo.FindByID(ctx, params.ThemeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrThemeNotFound
		}
		return nil, errs.Wrap(err, "failed to find theme")
	}

	res, err := reservation.NewReservation(params.Name, params.Date, slot, th)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	if err := res.ValidateNotPast(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrPastReservation)
	}

	// Advisory check for a friendly rejection. Racy by itself: two concurrent
	// callers can both pass it, so the insert below relies on the storage
	// unique index as the real guard.
	exists, err := u.reservationRepo.ExistsByTriple(ctx, params.Date, params.TimeID, params.ThemeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check for duplicate reservation")
	}
	if exists {
		return nil, ErrDuplicateReservation
	}

	id, err := u.reservationRepo.Create(ctx, res)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateReservation
		}
		return nil, errs.Wrap(err, "failed to create reservation")
	}

	return u.reservationRepo.FindByID(ctx, id)
}

func (u *reservationUseCaseImpl) List(ctx context.Context) ([]*queries.ReservationView, error) {
	views, err := u.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return views, nil
}

func (u *reservationUseCaseImpl) Delete(ctx context.Context, id int64) error {
	if err := u.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Wrap(err, "failed to delete reservation")
	}
	return nil
}
