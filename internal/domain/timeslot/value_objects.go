package timeslot

import (
	"errors"
	"time"
)

var ErrInvalidStartAt = errors.New("invalid start time")

// StartAt is a time of day with second precision.
type StartAt struct {
	hour int
	min  int
	sec  int
}

// NewStartAt parses "15:04" or "15:04:05".
func NewStartAt(s string) (StartAt, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return StartAt{}, ErrInvalidStartAt
		}
	}
	return StartAt{hour: t.Hour(), min: t.Minute(), sec: t.Second()}, nil
}

func StartAtOf(hour, min, sec int) (StartAt, error) {
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return StartAt{}, ErrInvalidStartAt
	}
	return StartAt{hour: hour, min: min, sec: sec}, nil
}

func (s StartAt) Hour() int   { return s.hour }
func (s StartAt) Minute() int { return s.min }
func (s StartAt) Second() int { return s.sec }

func (s StartAt) String() string {
	if s.sec == 0 {
		return time.Date(0, 1, 1, s.hour, s.min, 0, 0, time.UTC).Format("15:04")
	}
	return time.Date(0, 1, 1, s.hour, s.min, s.sec, 0, time.UTC).Format("15:04:05")
}

// On combines the time of day with a calendar date into an instant.
func (s StartAt) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, s.hour, s.min, s.sec, 0, loc)
}
