package api

import (
	"errors"
	"net/http"
	"strconv"

	"roomescape-api/internal/domain/reservation"
	reqdto "roomescape-api/internal/handler/dto/request"
	resdto "roomescape-api/internal/handler/dto/response"
	"roomescape-api/internal/handler/httperr"
	"roomescape-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TimeSlotHandler struct {
	timeSlotUseCase     usecase.TimeSlotUseCase
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewTimeSlotHandler(timeSlotUseCase usecase.TimeSlotUseCase, availabilityUseCase usecase.AvailabilityUseCase) *TimeSlotHandler {
	return &TimeSlotHandler{
		timeSlotUseCase:     timeSlotUseCase,
		availabilityUseCase: availabilityUseCase,
	}
}

func (h *TimeSlotHandler) List(c *gin.Context) {
	views, err := h.timeSlotUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimeSlotViews(views))
}

// Available reports every catalog slot for a (date, theme) pair with its
// booked flag.
func (h *TimeSlotHandler) Available(c *gin.Context) {
	date, err := reservation.NewDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	themeID, err := strconv.ParseInt(c.Query("themeId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid theme id", nil)
		return
	}

	slots, err := h.availabilityUseCase.ListSlots(c.Request.Context(), date, themeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableSlotViews(slots))
}

func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.timeSlotUseCase.Create(c.Request.Context(), req.StartAt)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time", nil)
		case errors.Is(err, usecase.ErrDuplicateTime):
			httperr.AbortWithError(c, http.StatusConflict, err, "Start time already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTimeSlotView(view))
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time id", nil)
		return
	}

	if err := h.timeSlotUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTimeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation time not found", nil)
		case errors.Is(err, usecase.ErrTimeInUse):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation time is in use", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
