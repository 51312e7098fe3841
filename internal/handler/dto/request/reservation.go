package request

import (
	"roomescape-api/internal/domain/reservation"
	"roomescape-api/internal/usecase"
)

type CreateReservationRequest struct {
	Name    string `json:"name" binding:"required"`
	Date    string `json:"date" binding:"required"`
	TimeID  int64  `json:"timeId" binding:"required"`
	ThemeID int64  `json:"themeId" binding:"required"`
}

func (r CreateReservationRequest) ToParams() (usecase.CreateReservationParams, error) {
	date, err := reservation.NewDate(r.Date)
	if err != nil {
		return usecase.CreateReservationParams{}, err
	}
	return usecase.CreateReservationParams{
		Name:    r.Name,
		Date:    date,
		TimeID:  r.TimeID,
		ThemeID: r.ThemeID,
	}, nil
}
