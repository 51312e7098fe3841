package repository

import (
	"context"
	"errors"

	"roomescape-api/internal/domain/timeslot"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func pgTimeFromStartAt(s timeslot.StartAt) pgtype.Time {
	us := (int64(s.Hour())*3600 + int64(s.Minute())*60 + int64(s.Second())) * 1_000_000
	return pgtype.Time{Microseconds: us, Valid: true}
}

func startAtFromPgTime(t pgtype.Time) (timeslot.StartAt, error) {
	sec := t.Microseconds / 1_000_000
	return timeslot.StartAtOf(int(sec/3600), int(sec/60%60), int(sec%60))
}
