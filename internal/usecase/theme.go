package usecase

import (
	"context"
	"errors"

	"roomescape-api/internal/domain/theme"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/pkg/errs"
	"roomescape-api/internal/usecase/queries"
)

var (
	ErrInvalidTheme = errors.New("invalid theme request")
	ErrThemeInUse   = errors.New("theme is in use")
)

type ThemeRepository interface {
	Create(ctx context.Context, th *theme.Theme) (int64, error)
	FindAll(ctx context.Context) ([]*queries.ThemeView, error)
	FindByID(ctx context.Context, id int64) (*theme.Theme, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*queries.ThemeView, error)
	Delete(ctx context.Context, id int64) error
}

type CreateThemeParams struct {
	Name         string
	Description  string
	ThumbnailURL string
}

type ThemeUseCase interface {
	Create(ctx context.Context, params CreateThemeParams) (*queries.ThemeView, error)
	List(ctx context.Context) ([]*queries.ThemeView, error)
	Delete(ctx context.Context, id int64) error
}

type themeUseCaseImpl struct {
	themeRepo       ThemeRepository
	reservationRepo ReservationRepository
}

func NewThemeUseCase(themeRepo ThemeRepository, reservationRepo ReservationRepository) ThemeUseCase {
	return &themeUseCaseImpl{
		themeRepo:       themeRepo,
		reservationRepo: reservationRepo,
	}
}

func (u *themeUseCaseImpl) Create(ctx context.Context, params CreateThemeParams) (*queries.ThemeView, error) {
	th, err := theme.NewTheme(params.Name, params.Description, params.ThumbnailURL)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTheme)
	}

	id, err := u.themeRepo.Create(ctx, th)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create theme")
	}

	return &queries.ThemeView{
		ID:           id,
		Name:         th.Name(),
		Description:  th.Description(),
		ThumbnailURL: th.ThumbnailURL(),
	}, nil
}

func (u *themeUseCaseImpl) List(ctx context.Context) ([]*queries.ThemeView, error) {
	views, err := u.themeRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list themes")
	}
	return views, nil
}

func (u *themeUseCaseImpl) Delete(ctx context.Context, id int64) error {
	if _, err := u.themeRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrThemeNotFound
		}
		return errs.Wrap(err, "failed to find theme")
	}

	used, err := u.reservationRepo.ExistsByThemeID(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to check theme usage")
	}
	if used {
		return ErrThemeInUse
	}

	if err := u.themeRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrThemeInUse
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrThemeNotFound
		}
		return errs.Wrap(err, "failed to delete theme")
	}
	return nil
}
