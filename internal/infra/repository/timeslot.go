package repository

import (
	"context"

	"roomescape-api/internal/domain/timeslot"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

type TimeSlotRepository struct {
	db DBTX
}

func NewTimeSlotRepository(db DBTX) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) Create(ctx context.Context, t *timeslot.ReservationTime) (int64, error) {
	query, args, err := psql.Insert("reservation_times").
		Columns("start_at").
		Values(pgTimeFromStartAt(t.StartAt())).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build reservation time insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr("start time already exists", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to insert reservation time", err)
	}

	return id, nil
}

func (r *TimeSlotRepository) FindAll(ctx context.Context) ([]*queries.TimeSlotView, error) {
	query, args, err := psql.Select("id", "start_at").
		From("reservation_times").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation time select", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation times", err)
	}
	defer rows.Close()

	var views []*queries.TimeSlotView
	for rows.Next() {
		var (
			view    queries.TimeSlotView
			startAt pgtype.Time
		)
		if err := rows.Scan(&view.ID, &startAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation time row", err)
		}
		at, err := startAtFromPgTime(startAt)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt start_at value", err)
		}
		view.StartAt = at.String()
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation time rows", err)
	}

	return views, nil
}

func (r *TimeSlotRepository) FindByID(ctx context.Context, id int64) (*timeslot.ReservationTime, error) {
	query, args, err := psql.Select("id", "start_at").
		From("reservation_times").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation time select", err)
	}

	var (
		rowID   int64
		startAt pgtype.Time
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&rowID, &startAt); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation time not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation time by id", err)
	}

	at, err := startAtFromPgTime(startAt)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt start_at value", err)
	}

	return timeslot.ReconstructReservationTime(rowID, at), nil
}

func (r *TimeSlotRepository) ExistsByStartAt(ctx context.Context, startAt timeslot.StartAt) (bool, error) {
	query, args, err := psql.Select("COUNT(1)").
		From("reservation_times").
		Where(sq.Eq{"start_at": pgTimeFromStartAt(startAt)}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build reservation time count", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, infra.WrapRepoErr("failed to count reservation times", err)
	}

	return count > 0, nil
}

func (r *TimeSlotRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("reservation_times").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation time delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("reservation time is referenced", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete reservation time", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation time not found", nil, infra.KindNotFound)
	}

	return nil
}
