//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"roomescape-api/internal/infra"
	"roomescape-api/internal/usecase"
	"roomescape-api/internal/usecase/queries"
	usecasemock "roomescape-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ThemeUseCaseTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockThemeRepo       *usecasemock.MockThemeRepository
	mockReservationRepo *usecasemock.MockReservationRepository
	uc                  usecase.ThemeUseCase
}

func (s *ThemeUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockThemeRepo = usecasemock.NewMockThemeRepository(s.mockCtrl)
	s.mockReservationRepo = usecasemock.NewMockReservationRepository(s.mockCtrl)
	s.uc = usecase.NewThemeUseCase(s.mockThemeRepo, s.mockReservationRepo)
}

func (s *ThemeUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestThemeUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ThemeUseCaseTestSuite))
}

func (s *ThemeUseCaseTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("registers a new theme", func() {
		params := usecase.CreateThemeParams{
			Name:         "Vault",
			Description:  "Crack the vault before dawn",
			ThumbnailURL: "https://img.example.com/vault.png",
		}

		s.mockThemeRepo.EXPECT().Create(ctx, gomock.Any()).Return(int64(3), nil)

		view, err := s.uc.Create(ctx, params)
		s.Require().NoError(err)
		s.Equal(&queries.ThemeView{
			ID:           3,
			Name:         "Vault",
			Description:  "Crack the vault before dawn",
			ThumbnailURL: "https://img.example.com/vault.png",
		}, view)
	})

	s.Run("blank fields", func() {
		for _, params := range []usecase.CreateThemeParams{
			{Name: "", Description: "d", ThumbnailURL: "u"},
			{Name: "n", Description: "", ThumbnailURL: "u"},
			{Name: "n", Description: "d", ThumbnailURL: ""},
		} {
			_, err := s.uc.Create(ctx, params)
			s.ErrorIs(err, usecase.ErrInvalidTheme)
		}
	})
}

func (s *ThemeUseCaseTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("removes an unreferenced theme", func() {
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, nil)
		s.mockReservationRepo.EXPECT().ExistsByThemeID(ctx, int64(3)).Return(false, nil)
		s.mockThemeRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)

		s.NoError(s.uc.Delete(ctx, 3))
	})

	s.Run("unknown id", func() {
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(9)).
			Return(nil, infra.WrapRepoErr("theme not found", nil, infra.KindNotFound))

		s.ErrorIs(s.uc.Delete(ctx, 9), usecase.ErrThemeNotFound)
	})

	s.Run("theme referenced by a reservation", func() {
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, nil)
		s.mockReservationRepo.EXPECT().ExistsByThemeID(ctx, int64(3)).Return(true, nil)

		s.ErrorIs(s.uc.Delete(ctx, 3), usecase.ErrThemeInUse)
	})

	s.Run("reference created between the usage check and the delete", func() {
		s.mockThemeRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, nil)
		s.mockReservationRepo.EXPECT().ExistsByThemeID(ctx, int64(3)).Return(false, nil)
		s.mockThemeRepo.EXPECT().Delete(ctx, int64(3)).
			Return(infra.WrapRepoErr("theme still referenced", nil, infra.KindForeignKeyViolated))

		s.ErrorIs(s.uc.Delete(ctx, 3), usecase.ErrThemeInUse)
	})
}

func (s *ThemeUseCaseTestSuite) TestList() {
	ctx := context.Background()
	views := []*queries.ThemeView{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	s.mockThemeRepo.EXPECT().FindAll(ctx).Return(views, nil)

	got, err := s.uc.List(ctx)
	s.Require().NoError(err)
	s.Equal(views, got)
}
