//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"roomescape-api/internal/domain/member"
	"roomescape-api/internal/infra"
	"roomescape-api/internal/pkg/jwt"
	"roomescape-api/internal/pkg/password"
	"roomescape-api/internal/usecase"
	usecasemock "roomescape-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockMemberRepo *usecasemock.MockMemberRepository
	jwtService     *jwt.Service
	uc             usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMemberRepo = usecasemock.NewMockMemberRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.uc = usecase.NewAuthUseCase(s.mockMemberRepo, s.jwtService)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) member(plain string) *member.Member {
	email, err := member.NewEmail("mia@example.com")
	s.Require().NoError(err)
	hash, err := password.Hash(plain)
	s.Require().NoError(err)
	return member.ReconstructMember(5, "mia", email, hash, member.RoleUser)
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("returns a token and member view for valid credentials", func() {
		m := s.member("secret-password")
		s.mockMemberRepo.EXPECT().FindByEmail(ctx, m.Email()).Return(m, nil)

		token, view, err := s.uc.Login(ctx, "mia@example.com", "secret-password")
		s.Require().NoError(err)
		s.NotEmpty(token)
		s.Equal(int64(5), view.ID)
		s.Equal("user", view.Role)

		claims, err := s.jwtService.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(int64(5), claims.MemberID)
	})

	s.Run("malformed email", func() {
		_, _, err := s.uc.Login(ctx, "not-an-email", "secret-password")
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("unknown email", func() {
		s.mockMemberRepo.EXPECT().FindByEmail(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("member not found", nil, infra.KindNotFound))

		_, _, err := s.uc.Login(ctx, "ghost@example.com", "secret-password")
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("wrong password", func() {
		m := s.member("secret-password")
		s.mockMemberRepo.EXPECT().FindByEmail(ctx, m.Email()).Return(m, nil)

		_, _, err := s.uc.Login(ctx, "mia@example.com", "wrong-password")
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})
}

func (s *AuthUseCaseTestSuite) TestCurrentMember() {
	ctx := context.Background()

	s.Run("resolves an existing member", func() {
		m := s.member("secret-password")
		s.mockMemberRepo.EXPECT().FindByID(ctx, int64(5)).Return(m, nil)

		view, err := s.uc.CurrentMember(ctx, 5)
		s.Require().NoError(err)
		s.Equal("mia@example.com", view.Email)
	})

	s.Run("unknown member id", func() {
		s.mockMemberRepo.EXPECT().FindByID(ctx, int64(99)).
			Return(nil, infra.WrapRepoErr("member not found", nil, infra.KindNotFound))

		_, err := s.uc.CurrentMember(ctx, 99)
		s.ErrorIs(err, usecase.ErrMemberNotFound)
	})
}

func TestIdentityResolver(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", time.Hour)

	newResolver := func(t *testing.T) (*usecasemock.MockMemberRepository, usecase.IdentityResolver) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := usecasemock.NewMockMemberRepository(ctrl)
		return repo, usecase.NewIdentityResolver(jwtService, repo)
	}

	t.Run("resolves a valid token to its member", func(t *testing.T) {
		repo, resolver := newResolver(t)

		email, err := member.NewEmail("mia@example.com")
		if err != nil {
			t.Fatal(err)
		}
		m := member.ReconstructMember(5, "mia", email, "hash", member.RoleAdmin)
		token, err := jwtService.GenerateToken(5, member.RoleAdmin)
		if err != nil {
			t.Fatal(err)
		}

		repo.EXPECT().FindByID(ctx, int64(5)).Return(m, nil)

		identity, err := resolver.Resolve(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if identity.ID != 5 || identity.Role != "admin" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, resolver := newResolver(t)

		_, err := resolver.Resolve(ctx, "not-a-token")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("token for a deleted member", func(t *testing.T) {
		repo, resolver := newResolver(t)

		token, err := jwtService.GenerateToken(5, member.RoleUser)
		if err != nil {
			t.Fatal(err)
		}
		repo.EXPECT().FindByID(ctx, int64(5)).
			Return(nil, infra.WrapRepoErr("member not found", nil, infra.KindNotFound))

		_, err = resolver.Resolve(ctx, token)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
