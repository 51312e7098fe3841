package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "roomescape-api/internal/handler/dto/request"
	resdto "roomescape-api/internal/handler/dto/response"
	"roomescape-api/internal/handler/httperr"
	"roomescape-api/internal/handler/middleware"
	"roomescape-api/internal/pkg/config"
	"roomescape-api/internal/pkg/cookie"
	"roomescape-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, member, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	expiry, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err != nil {
		expiry = 24 * time.Hour
	}
	cookie.SetTokenCookie(c, h.cfg.Cookie, token, expiry)

	c.JSON(http.StatusOK, resdto.FromAuthorizedMemberView(member))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("member id missing from context"), "Member not authenticated", nil)
		return
	}

	member, err := h.authUseCase.CurrentMember(c.Request.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMemberNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedMemberView(member))
}
