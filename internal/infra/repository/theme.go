package repository

import (
	"context"

	"roomescape-api/internal/domain/theme"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
)

type ThemeRepository struct {
	db DBTX
}

func NewThemeRepository(db DBTX) *ThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) Create(ctx context.Context, th *theme.Theme) (int64, error) {
	query, args, err := psql.Insert("themes").
		Columns("name", "description", "thumbnail_url").
		Values(th.Name(), th.Description(), th.ThumbnailURL()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build theme insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to insert theme", err)
	}

	return id, nil
}

func (r *ThemeRepository) FindAll(ctx context.Context) ([]*queries.ThemeView, error) {
	query, args, err := psql.Select("id", "name", "description", "thumbnail_url").
		From("themes").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build theme select", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list themes", err)
	}
	defer rows.Close()

	var views []*queries.ThemeView
	for rows.Next() {
		var view queries.ThemeView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.ThumbnailURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan theme row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate theme rows", err)
	}

	return views, nil
}

func (r *ThemeRepository) FindByID(ctx context.Context, id int64) (*theme.Theme, error) {
	query, args, err := psql.Select("id", "name", "description", "thumbnail_url").
		From("themes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build theme select", err)
	}

	var (
		rowID                    int64
		name, description, thumb string
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&rowID, &name, &description, &thumb); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("theme not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find theme by id", err)
	}

	return theme.ReconstructTheme(rowID, name, description, thumb), nil
}

func (r *ThemeRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*queries.ThemeView, error) {
	byID := make(map[int64]*queries.ThemeView, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	query, args, err := psql.Select("id", "name", "description", "thumbnail_url").
		From("themes").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build theme select by ids", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find themes by ids", err)
	}
	defer rows.Close()

	for rows.Next() {
		var view queries.ThemeView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.ThumbnailURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan theme row", err)
		}
		byID[view.ID] = &view
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate theme rows", err)
	}

	return byID, nil
}

func (r *ThemeRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("themes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build theme delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("theme is referenced", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete theme", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("theme not found", nil, infra.KindNotFound)
	}

	return nil
}
