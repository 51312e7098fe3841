package repository

import (
	"context"
	"time"

	"roomescape-api/internal/domain/reservation"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	query, args, err := psql.Insert("reservations").
		Columns("name", "date", "time_id", "theme_id").
		Values(res.Name(), res.Date().Time(), res.Time().ID(), res.Theme().ID()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build reservation insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr("reservation slot already taken", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("referenced time or theme missing", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to insert reservation", err)
	}

	return id, nil
}

const reservationViewColumns = "r.id, r.name, r.date, t.id, t.start_at, th.id, th.name, th.description, th.thumbnail_url"

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	query, args, err := psql.Select(reservationViewColumns).
		From("reservations r").
		Join("reservation_times t ON t.id = r.time_id").
		Join("themes th ON th.id = r.theme_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation select", err)
	}

	view, err := scanReservationView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}

	return view, nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	query, args, err := psql.Select(reservationViewColumns).
		From("reservations r").
		Join("reservation_times t ON t.id = r.time_id").
		Join("themes th ON th.id = r.theme_id").
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation list select", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return views, nil
}

func (r *ReservationRepository) FindTimeIDsByDateAndTheme(ctx context.Context, date reservation.Date, themeID int64) ([]int64, error) {
	query, args, err := psql.Select("time_id").
		From("reservations").
		Where(sq.Eq{"date": date.Time(), "theme_id": themeID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booked time select", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked time ids", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked time id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked time ids", err)
	}

	return ids, nil
}

func (r *ReservationRepository) ExistsByTriple(ctx context.Context, date reservation.Date, timeID, themeID int64) (bool, error) {
	return r.exists(ctx, sq.Eq{"date": date.Time(), "time_id": timeID, "theme_id": themeID})
}

func (r *ReservationRepository) ExistsByTimeID(ctx context.Context, timeID int64) (bool, error) {
	return r.exists(ctx, sq.Eq{"time_id": timeID})
}

func (r *ReservationRepository) ExistsByThemeID(ctx context.Context, themeID int64) (bool, error) {
	return r.exists(ctx, sq.Eq{"theme_id": themeID})
}

func (r *ReservationRepository) exists(ctx context.Context, cond sq.Eq) (bool, error) {
	query, args, err := psql.Select("COUNT(1)").
		From("reservations").
		Where(cond).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build reservation count", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, infra.WrapRepoErr("failed to count reservations", err)
	}

	return count > 0, nil
}

func (r *ReservationRepository) CountByThemeBetween(ctx context.Context, from, to reservation.Date) ([]queries.ThemeReservationCount, error) {
	query, args, err := psql.Select("theme_id", "COUNT(*)").
		From("reservations").
		Where(sq.GtOrEq{"date": from.Time()}).
		Where(sq.LtOrEq{"date": to.Time()}).
		GroupBy("theme_id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build ranking aggregation", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate reservations by theme", err)
	}
	defer rows.Close()

	var counts []queries.ThemeReservationCount
	for rows.Next() {
		var c queries.ThemeReservationCount
		if err := rows.Scan(&c.ThemeID, &c.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan theme count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate theme counts", err)
	}

	return counts, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("reservations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view    queries.ReservationView
		date    time.Time
		startAt pgtype.Time
	)
	err := row.Scan(
		&view.ID, &view.Name, &date,
		&view.Time.ID, &startAt,
		&view.Theme.ID, &view.Theme.Name, &view.Theme.Description, &view.Theme.ThumbnailURL,
	)
	if err != nil {
		return nil, err
	}

	view.Date = reservation.DateFromTime(date).String()
	at, err := startAtFromPgTime(startAt)
	if err != nil {
		return nil, err
	}
	view.Time.StartAt = at.String()

	return &view, nil
}
