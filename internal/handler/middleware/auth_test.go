//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomescape-api/internal/handler/middleware"
	"roomescape-api/internal/usecase/queries"
	usecasemock "roomescape-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*gin.Engine, *usecasemock.MockIdentityResolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	resolver := usecasemock.NewMockIdentityResolver(ctrl)
	auth := middleware.NewAuthMiddleware(resolver)

	router := gin.New()
	protected := router.Group("", auth.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		id, _ := middleware.GetMemberID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	protected.GET("/admin", auth.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, resolver
}

func perform(router *gin.Engine, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	identity := &queries.AuthorizedMemberView{ID: 5, Name: "mia", Email: "mia@example.com", Role: "user"}

	t.Run("accepts the cookie credential", func(t *testing.T) {
		router, resolver := setupRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), "tok").Return(identity, nil)

		rec := perform(router, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "access_token", Value: "tok"})
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to the bearer header", func(t *testing.T) {
		router, resolver := setupRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), "tok").Return(identity, nil)

		rec := perform(router, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer tok")
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("401 without a credential", func(t *testing.T) {
		router, _ := setupRouter(t)
		rec := perform(router, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("401 when resolution fails", func(t *testing.T) {
		router, resolver := setupRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), "tok").Return(nil, errors.New("expired"))

		rec := perform(router, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer tok")
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	performAdmin := func(router *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("lets an admin through", func(t *testing.T) {
		router, resolver := setupRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), "tok").
			Return(&queries.AuthorizedMemberView{ID: 1, Role: "admin"}, nil)

		assert.Equal(t, http.StatusOK, performAdmin(router).Code)
	})

	t.Run("403 for a regular member", func(t *testing.T) {
		router, resolver := setupRouter(t)
		resolver.EXPECT().Resolve(gomock.Any(), "tok").
			Return(&queries.AuthorizedMemberView{ID: 2, Role: "user"}, nil)

		assert.Equal(t, http.StatusForbidden, performAdmin(router).Code)
	})
}
