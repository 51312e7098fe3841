// Package queries holds the read models returned by the use-case layer.
// Storage keeps normalized foreign keys; these views carry the referenced
// time and theme resolved to full records.
package queries

type TimeSlotView struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

type ThemeView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail"`
}

type ReservationView struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Date  string       `json:"date"`
	Time  TimeSlotView `json:"time"`
	Theme ThemeView    `json:"theme"`
}

// AvailableSlotView is one catalog entry of the availability report.
type AvailableSlotView struct {
	TimeID  int64  `json:"timeId"`
	StartAt string `json:"startAt"`
	Booked  bool   `json:"alreadyBooked"`
}

// ThemeReservationCount is one row of the ranking window aggregation.
type ThemeReservationCount struct {
	ThemeID int64
	Count   int64
}

type AuthorizedMemberView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
