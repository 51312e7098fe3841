package usecase

import (
	"context"

	"roomescape-api/internal/infra"
	"roomescape-api/internal/pkg/errs"
	"roomescape-api/internal/pkg/jwt"
	"roomescape-api/internal/usecase/queries"
)

// IdentityResolver maps an opaque credential to a member identity for the
// auth middleware. Token format and expiry live in pkg/jwt; role
// authorization is a separate capability check at each admin entry point.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*queries.AuthorizedMemberView, error)
}

type identityResolverImpl struct {
	jwtService *jwt.Service
	memberRepo MemberRepository
}

func NewIdentityResolver(jwtService *jwt.Service, memberRepo MemberRepository) IdentityResolver {
	return &identityResolverImpl{
		jwtService: jwtService,
		memberRepo: memberRepo,
	}
}

func (r *identityResolverImpl) Resolve(ctx context.Context, credential string) (*queries.AuthorizedMemberView, error) {
	claims, err := r.jwtService.ValidateToken(credential)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthorized)
	}

	// The member row is authoritative for the role; a stale token cannot
	// keep privileges a deleted or demoted member no longer has.
	m, err := r.memberRepo.FindByID(ctx, claims.MemberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, errs.Wrap(err, "failed to resolve member identity")
	}

	return toAuthorizedMemberView(m), nil
}
