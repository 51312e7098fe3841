package response

import "roomescape-api/internal/usecase/queries"

type TimeSlotResponse struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

type AvailableSlotResponse struct {
	TimeID  int64  `json:"timeId"`
	StartAt string `json:"startAt"`
	Booked  bool   `json:"alreadyBooked"`
}

func FromTimeSlotView(v *queries.TimeSlotView) *TimeSlotResponse {
	return &TimeSlotResponse{ID: v.ID, StartAt: v.StartAt}
}

func FromTimeSlotViews(views []*queries.TimeSlotView) []*TimeSlotResponse {
	out := make([]*TimeSlotResponse, len(views))
	for i, v := range views {
		out[i] = FromTimeSlotView(v)
	}
	return out
}

func FromAvailableSlotViews(views []*queries.AvailableSlotView) []*AvailableSlotResponse {
	out := make([]*AvailableSlotResponse, len(views))
	for i, v := range views {
		out[i] = &AvailableSlotResponse{
			TimeID:  v.TimeID,
			StartAt: v.StartAt,
			Booked:  v.Booked,
		}
	}
	return out
}
