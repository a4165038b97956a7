package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid booking date")
	ErrDateInPast      = errors.New("booking date cannot be in the past")
	ErrInvalidSlotTime = errors.New("invalid slot time")
)

const dateLayout = "2006-01-02"

// BookingDate is a calendar day in the institute's local time ("YYYY-MM-DD").
type BookingDate struct {
	value string
}

func NewBookingDate(s string, now time.Time) (BookingDate, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return BookingDate{}, ErrInvalidDate
	}

	// Compare calendar days in now's location; truncating the instant in
	// UTC would move the boundary by the local offset around midnight.
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	if d.Before(today) {
		return BookingDate{}, ErrDateInPast
	}

	return BookingDate{value: d.Format(dateLayout)}, nil
}

// ReconstructBookingDate skips the past-date check for rows read from storage.
func ReconstructBookingDate(t time.Time) BookingDate {
	return BookingDate{value: t.Format(dateLayout)}
}

func (d BookingDate) String() string { return d.value }

func (d BookingDate) Time() time.Time {
	t, _ := time.Parse(dateLayout, d.value)
	return t
}

func (d BookingDate) IsZero() bool { return d.value == "" }

// SlotTime is a wall-clock time of day ("HH:MM", 24h).
type SlotTime struct {
	value string
}

func NewSlotTime(s string) (SlotTime, error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return SlotTime{}, ErrInvalidSlotTime
	}
	return SlotTime{value: s}, nil
}

func (t SlotTime) String() string { return t.value }

func (t SlotTime) IsZero() bool { return t.value == "" }

// TimeSlot is an ephemeral bookable unit: regenerated per date selection,
// never persisted. Available is advisory display state only; no reservation
// lock is taken when a slot is merely selected.
type TimeSlot struct {
	ID        string
	Date      BookingDate
	Time      SlotTime
	Available bool
}

func slotID(date BookingDate, t SlotTime) string {
	return date.String() + "-" + t.String()
}
