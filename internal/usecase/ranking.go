package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"roomescape-api/internal/domain/reservation"
	"roomescape-api/internal/pkg/errs"
	"roomescape-api/internal/usecase/queries"
)

// Defaults applied by the boundary when the caller omits window or limit:
// the 7 days ending yesterday, top 10 themes.
const (
	DefaultRankingWindowDays = 7
	DefaultRankingLimit      = 10
)

var ErrInvalidRankingWindow = errors.New("invalid ranking window")

// RankingCache is an optional read-through cache for popular-theme results.
// It never returns errors: a miss and a cache failure look the same, and the
// ranking falls through to the store.
type RankingCache interface {
	Get(ctx context.Context, key string) ([]*queries.ThemeView, bool)
	Set(ctx context.Context, key string, themes []*queries.ThemeView)
}

type RankingUseCase interface {
	PopularThemes(ctx context.Context, from, to reservation.Date, limit int) ([]*queries.ThemeView, error)
}

type rankingUseCaseImpl struct {
	reservationRepo ReservationRepository
	themeRepo       ThemeRepository
	cache           RankingCache
}

func NewRankingUseCase(reservationRepo ReservationRepository, themeRepo ThemeRepository, cache RankingCache) RankingUseCase {
	return &rankingUseCaseImpl{
		reservationRepo: reservationRepo,
		themeRepo:       themeRepo,
		cache:           cache,
	}
}

// PopularThemes ranks themes by reservation volume inside the inclusive
// window [from, to]. Ordering is count descending, then theme id ascending;
// themes with zero reservations in the window never appear.
func (u *rankingUseCaseImpl) PopularThemes(ctx context.Context, from, to reservation.Date, limit int) ([]*queries.ThemeView, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) || limit <= 0 {
		return nil, ErrInvalidRankingWindow
	}

	key := fmt.Sprintf("ranking:%s:%s:%d", from, to, limit)
	if themes, ok := u.cache.Get(ctx, key); ok {
		return themes, nil
	}

	counts, err := u.reservationRepo.CountByThemeBetween(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate reservation counts")
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].ThemeID < counts[j].ThemeID
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}

	ids := make([]int64, len(counts))
	for i, c := range counts {
		ids[i] = c.ThemeID
	}

	byID, err := u.themeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load ranked themes")
	}

	themes := make([]*queries.ThemeView, 0, len(counts))
	for _, c := range counts {
		if view, ok := byID[c.ThemeID]; ok {
			themes = append(themes, view)
		}
	}

	u.cache.Set(ctx, key, themes)
	return themes, nil
}

// NopRankingCache disables caching; used when no Redis address is configured
// and in tests.
type NopRankingCache struct{}

func NewNopRankingCache() *NopRankingCache {
	return &NopRankingCache{}
}

func (NopRankingCache) Get(context.Context, string) ([]*queries.ThemeView, bool) { return nil, false }

func (NopRankingCache) Set(context.Context, string, []*queries.ThemeView) {}
