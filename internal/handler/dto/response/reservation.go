package response

import "roomescape-api/internal/usecase/queries"

type ReservationResponse struct {
	ID    int64            `json:"id"`
	Name  string           `json:"name"`
	Date  string           `json:"date"`
	Time  TimeSlotResponse `json:"time"`
	Theme ThemeResponse    `json:"theme"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:   v.ID,
		Name: v.Name,
		Date: v.Date,
		Time: TimeSlotResponse{
			ID:      v.Time.ID,
			StartAt: v.Time.StartAt,
		},
		Theme: ThemeResponse{
			ID:          v.Theme.ID,
			Name:        v.Theme.Name,
			Description: v.Theme.Description,
			Thumbnail:   v.Theme.ThumbnailURL,
		},
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
