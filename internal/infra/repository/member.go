package repository

import (
	"context"

	"roomescape-api/internal/domain/member"
	"roomescape-api/internal/infra"

	sq "github.com/Masterminds/squirrel"
)

type MemberRepository struct {
	db DBTX
}

func NewMemberRepository(db DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email member.Email) (*member.Member, error) {
	return r.findOne(ctx, sq.Eq{"email": email.Value()})
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *MemberRepository) findOne(ctx context.Context, cond sq.Eq) (*member.Member, error) {
	query, args, err := psql.Select("id", "name", "email", "password_hash", "role").
		From("members").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build member select", err)
	}

	var (
		id                         int64
		name, email, hash, roleStr string
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id, &name, &email, &hash, &roleStr); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member", err)
	}

	addr, err := member.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt member email", err)
	}
	role, err := member.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt member role", err)
	}

	return member.ReconstructMember(id, name, addr, hash, role), nil
}
