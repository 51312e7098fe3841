package api

import (
	"errors"
	"net/http"
	"strconv"

	"roomescape-api/internal/domain/reservation"
	reqdto "roomescape-api/internal/handler/dto/request"
	resdto "roomescape-api/internal/handler/dto/response"
	"roomescape-api/internal/handler/httperr"
	"roomescape-api/internal/pkg/clock"
	"roomescape-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeUseCase   usecase.ThemeUseCase
	rankingUseCase usecase.RankingUseCase
	clock          clock.Clock
}

func NewThemeHandler(themeUseCase usecase.ThemeUseCase, rankingUseCase usecase.RankingUseCase, clock clock.Clock) *ThemeHandler {
	return &ThemeHandler{
		themeUseCase:   themeUseCase,
		rankingUseCase: rankingUseCase,
		clock:          clock,
	}
}

func (h *ThemeHandler) List(c *gin.Context) {
	views, err := h.themeUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromThemeViews(views))
}

// Popular ranks themes by reservation volume. Without query parameters the
// window is the 7 days ending yesterday and the limit is 10.
func (h *ThemeHandler) Popular(c *gin.Context) {
	to := reservation.DateFromTime(h.clock.Now()).AddDays(-1)
	from := to.AddDays(-(usecase.DefaultRankingWindowDays - 1))
	limit := usecase.DefaultRankingLimit

	var err error
	if s := c.Query("from"); s != "" {
		if from, err = reservation.NewDate(s); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = reservation.NewDate(s); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
			return
		}
	}
	if s := c.Query("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
	}

	views, err := h.rankingUseCase.PopularThemes(c.Request.Context(), from, to, limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRankingWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ranking window", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromThemeViews(views))
}

func (h *ThemeHandler) Create(c *gin.Context) {
	var req reqdto.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.themeUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTheme):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid theme request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromThemeView(view))
}

func (h *ThemeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid theme id", nil)
		return
	}

	if err := h.themeUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrThemeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Theme not found", nil)
		case errors.Is(err, usecase.ErrThemeInUse):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Theme is in use", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
