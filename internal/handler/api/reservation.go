package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "roomescape-api/internal/handler/dto/request"
	resdto "roomescape-api/internal/handler/dto/response"
	"roomescape-api/internal/handler/httperr"
	"roomescape-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{reservationUseCase: reservationUseCase}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	view, err := h.reservationUseCase.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTimeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation time not found", nil)
		case errors.Is(err, usecase.ErrThemeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Theme not found", nil)
		case errors.Is(err, usecase.ErrPastReservation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot reserve a slot in the past", nil)
		case errors.Is(err, usecase.ErrDuplicateReservation):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already reserved", nil)
		case errors.Is(err, usecase.ErrInvalidReservation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.reservationUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	if err := h.reservationUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
