// Package reservation holds the booking aggregate and its temporal rules.
package reservation

import (
	"errors"
	"strings"
	"time"

	"roomescape-api/internal/domain/theme"
	"roomescape-api/internal/domain/timeslot"
)

var (
	ErrBlankName       = errors.New("reservation name must not be blank")
	ErrMissingDate     = errors.New("reservation date is required")
	ErrMissingTime     = errors.New("reservation time is required")
	ErrMissingTheme    = errors.New("reservation theme is required")
	ErrPastReservation = errors.New("reservation must not be in the past")
)

// Reservation references exactly one ReservationTime and one Theme by
// identity. The id is 0 until persisted.
type Reservation struct {
	id    int64
	name  string
	date  Date
	time  *timeslot.ReservationTime
	theme *theme.Theme
}

func NewReservation(name string, date Date, t *timeslot.ReservationTime, th *theme.Theme) (*Reservation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if t == nil {
		return nil, ErrMissingTime
	}
	if th == nil {
		return nil, ErrMissingTheme
	}
	return &Reservation{
		name:  name,
		date:  date,
		time:  t,
		theme: th,
	}, nil
}

func ReconstructReservation(id int64, name string, date Date, t *timeslot.ReservationTime, th *theme.Theme) *Reservation {
	return &Reservation{
		id:    id,
		name:  name,
		date:  date,
		time:  t,
		theme: th,
	}
}

func (r *Reservation) ID() int64                        { return r.id }
func (r *Reservation) Name() string                     { return r.name }
func (r *Reservation) Date() Date                       { return r.date }
func (r *Reservation) Time() *timeslot.ReservationTime  { return r.time }
func (r *Reservation) Theme() *theme.Theme              { return r.theme }

// At is the instant the reserved slot begins, in now's location.
func (r *Reservation) At(loc *time.Location) time.Time {
	return r.time.StartAt().On(r.date.Year(), r.date.Month(), r.date.Day(), loc)
}

// ValidateNotPast rejects slots strictly before now. A slot starting exactly
// at now is still bookable.
func (r *Reservation) ValidateNotPast(now time.Time) error {
	if r.At(now.Location()).Before(now) {
		return ErrPastReservation
	}
	return nil
}
