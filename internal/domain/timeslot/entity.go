// Package timeslot holds the bookable time-of-day catalog.
package timeslot

// ReservationTime is one entry of the slot catalog. The id is assigned at
// persistence; id 0 marks a not-yet-persisted value.
type ReservationTime struct {
	id      int64
	startAt StartAt
}

func NewReservationTime(startAt StartAt) *ReservationTime {
	return &ReservationTime{startAt: startAt}
}

func ReconstructReservationTime(id int64, startAt StartAt) *ReservationTime {
	return &ReservationTime{id: id, startAt: startAt}
}

func (t *ReservationTime) ID() int64        { return t.id }
func (t *ReservationTime) StartAt() StartAt { return t.startAt }
