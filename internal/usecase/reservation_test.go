//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"roomescape-api/internal/domain/reservation"
	"roomescape-api/internal/domain/theme"
	"roomescape-api/internal/domain/timeslot"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/pkg/clock"
	"roomescape-api/internal/usecase"
	"roomescape-api/internal/usecase/queries"
	usecasemock "roomescape-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationUseCaseTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockReservationRepo *usecasemock.MockReservationRepository
	mockTimeRepo        *usecasemock.MockTimeSlotRepository
	mockThemeRepo       *usecasemock.MockThemeRepository
	clock               *clock.MockClock
	uc                  usecase.ReservationUseCase
}

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservationRepo = usecasemock.NewMockReservationRepository(s.mockCtrl)
	s.mockTimeRepo = usecasemock.NewMockTimeSlotRepository(s.mockCtrl)
	s.mockThemeRepo = usecasemock.NewMockThemeRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	s.uc = usecase.NewReservationUseCase(s.mockReservationRepo, s.mockTimeRepo, s.mockThemeRepo, s.clock)
}

func (s *ReservationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

func (s *ReservationUseCaseTestSuite) slot(id int64, at string) *timeslot.ReservationTime {
	startAt, err := timeslot.NewStartAt(at)
	s.Require().NoError(err)
	return timeslot.ReconstructReservationTime(id, startAt)
}

func (s *ReservationUseCaseTestSuite) params(date string) usecase.CreateReservationParams {
	d, err := reservation.NewDate(date)
	s.Require().NoError(err)
	return usecase.CreateReservationParams{Name: "mia", Date: d, TimeID: 1, ThemeID: 2}
}

func (s *ReservationUseCaseTestSuite) TestCreate() {
	ctx := context.Background()
	th := theme.ReconstructTheme(2, "Vault", "desc", "https://img.example.com/vault.png")

	s.Run("creates a reservation for a free future slot", func() {
		params := s.params("2026-09-01")
		stored := &queries.ReservationView{
			ID:    10,
			Name:  "mia",
			Date:  "2026-09-01",
			Time:  queries.TimeSlotView{ID: 1, StartAt: "10:00"},
			Theme: queries.ThemeView{ID: 2, Name: "Vault"},
		}

		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).Return(s.slot(1, "10:00"), nil)
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(2)).Return(th, nil)
		s.mockReservationRepo.EXPECT().ExistsByTriple(ctx, params.Date, int64(1), int64(2)).Return(false, nil)
		s.mockReservationRepo.EXPECT().Create(ctx, gomock.Any()).Return(int64(10), nil)
		s.mockReservationRepo.EXPECT().FindByID(ctx, int64(10)).Return(stored, nil)

		view, err := s.uc.Create(ctx, params)
		s.Require().NoError(err)
		s.Equal(stored, view)
	})

	s.Run("unknown time id", func() {
		params := s.params("2026-09-01")
		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).
			Return(nil, infra.WrapRepoErr("reservation time not found", nil, infra.KindNotFound))

		_, err := s.uc.Create(ctx, params)
		s.ErrorIs(err, usecase.ErrTimeNotFound)
	})

	s.Run("unknown theme id", func() {
		params := s.params("2026-09-01")
		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).Return(s.slot(1, "10:00"), nil)
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(2)).
			Return(nil, infra.WrapRepoErr("theme not found", nil, infra.KindNotFound))

		_, err := s.uc.Create(ctx, params)
		s.ErrorIs(err, usecase.ErrThemeNotFound)
	})

	s.Run("slot in the past", func() {
		params := s.params("2026-07-31")
		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).Return(s.slot(1, "10:00"), nil)
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(2)).Return(th, nil)

		_, err := s.uc.Create(ctx, params)
		s.ErrorIs(err, usecase.ErrPastReservation)
	})

	s.Run("slot starting exactly now is accepted", func() {
		params := s.params("2026-08-01")
		stored := &queries.ReservationView{ID: 11}

		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).Return(s.slot(1, "09:00"), nil)
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(2)).Return(th, nil)
		s.mockReservationRepo.EXPECT().ExistsByTriple(ctx, params.Date, int64(1), int64(2)).Return(false, nil)
		s.mockReservationRepo.EXPECT().Create(ctx, gomock.Any()).Return(int64(11), nil)
		s.mockReservationRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)

		view, err := s.uc.Create(ctx, params)
		s.Require().NoError(err)
		s.Equal(stored, view)
	})

	s.Run("blank name", func() {
		params := s.params("2026-09-01")
		params.Name = "  "
		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).Return(s.slot(1, "10:00"), nil)
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(2)).Return(th, nil)

		_, err := s.uc.Create(ctx, params)
		s.ErrorIs(err, usecase.ErrInvalidReservation)
	})

	s.Run("duplicate caught by the advisory check", func() {
		params := s.params("2026-09-01")
		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).Return(s.slot(1, "10:00"), nil)
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(2)).Return(th, nil)
		s.mockReservationRepo.EXPECT().ExistsByTriple(ctx, params.Date, int64(1), int64(2)).Return(true, nil)

		_, err := s.uc.Create(ctx, params)
		s.ErrorIs(err, usecase.ErrDuplicateReservation)
	})

	// The advisory check alone is racy: two callers can both see the slot as
	// free. The insert surfaces the storage unique index violation, which is
	// the authoritative guard.
	s.Run("duplicate caught by the unique index on insert", func() {
		params := s.params("2026-09-01")
		s.mockTimeRepo.EXPECT().FindByID(ctx, int64(1)).Return(s.slot(1, "10:00"), nil)
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(2)).Return(th, nil)
		s.mockReservationRepo.EXPECT().ExistsByTriple(ctx, params.Date, int64(1), int64(2)).Return(false, nil)
		s.mockReservationRepo.EXPECT().Create(ctx, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("duplicate reservation", nil, infra.KindDuplicateKey))

		_, err := s.uc.Create(ctx, params)
		s.ErrorIs(err, usecase.ErrDuplicateReservation)
	})
}

func (s *ReservationUseCaseTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("removes an existing reservation", func() {
		s.mockReservationRepo.EXPECT().Delete(ctx, int64(10)).Return(nil)
		s.NoError(s.uc.Delete(ctx, 10))
	})

	s.Run("unknown id", func() {
		s.mockReservationRepo.EXPECT().Delete(ctx, int64(99)).
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))
		s.ErrorIs(s.uc.Delete(ctx, 99), usecase.ErrReservationNotFound)
	})
}

func (s *ReservationUseCaseTestSuite) TestList() {
	ctx := context.Background()
	views := []*queries.ReservationView{{ID: 1}, {ID: 2}}

	s.mockReservationRepo.EXPECT().FindAll(ctx).Return(views, nil)

	got, err := s.uc.List(ctx)
	s.Require().NoError(err)
	s.Equal(views, got)
}
