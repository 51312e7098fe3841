package usecase

import (
	"context"
	"errors"

	"roomescape-api/internal/domain/member"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/pkg/errs"
	"roomescape-api/internal/pkg/jwt"
	"roomescape-api/internal/pkg/password"
	"roomescape-api/internal/usecase/queries"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrUnauthorized       = errors.New("no valid caller identity")
)

type MemberRepository interface {
	FindByEmail(ctx context.Context, email member.Email) (*member.Member, error)
	FindByID(ctx context.Context, id int64) (*member.Member, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedMemberView, error)
	CurrentMember(ctx context.Context, memberID int64) (*queries.AuthorizedMemberView, error)
}

type authUseCaseImpl struct {
	memberRepo MemberRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(memberRepo MemberRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		memberRepo: memberRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedMemberView, error) {
	addr, err := member.NewEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	m, err := a.memberRepo.FindByEmail(ctx, addr)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Wrap(err, "failed to find member by email")
	}

	if err := password.Compare(m.PasswordHash(), plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(m.ID(), m.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, toAuthorizedMemberView(m), nil
}

func (a *authUseCaseImpl) CurrentMember(ctx context.Context, memberID int64) (*queries.AuthorizedMemberView, error) {
	m, err := a.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, errs.Wrap(err, "failed to find member")
	}
	return toAuthorizedMemberView(m), nil
}

func toAuthorizedMemberView(m *member.Member) *queries.AuthorizedMemberView {
	return &queries.AuthorizedMemberView{
		ID:    m.ID(),
		Name:  m.Name(),
		Email: m.Email().Value(),
		Role:  m.Role().String(),
	}
}
