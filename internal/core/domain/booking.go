package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// StatusAll is the pass-through value of the history status filter.
const StatusAll = "all"

// BookingIDPrefix starts every generated booking id.
const BookingIDPrefix = "APSRTC"

// TravelDateLayout is the format of SearchCriteria.Date and TripDetails.Date.
const TravelDateLayout = "2006-01-02"

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

// ParseStatusFilter accepts "all" or one of the booking statuses.
// An empty filter means "all".
func ParseStatusFilter(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == StatusAll {
		return StatusAll, nil
	}
	if !BookingStatus(s).IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, s)
	}
	return s, nil
}

type ContactInfo struct {
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	EmergencyContact string `json:"emergencyContact"`
}

type Passenger struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	Gender string `json:"gender"`
	Seat   string `json:"seat"`
}

// TripDetails is the snapshot of bus and search taken at booking time.
type TripDetails struct {
	Name      string `json:"name"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	From      string `json:"from"`
	To        string `json:"to"`
	Date      string `json:"date"`
}

// TravelDate parses Date in loc. ok is false for malformed dates.
func (t TripDetails) TravelDate(loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(TravelDateLayout, strings.TrimSpace(t.Date), loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// NewBooking is a booking before the store stamps date and status.
type NewBooking struct {
	BookingID   string      `json:"bookingId"`
	ContactInfo ContactInfo `json:"contactInfo"`
	Passengers  []Passenger `json:"passengers"`
	BusDetails  TripDetails `json:"busDetails"`
	TotalAmount int64       `json:"totalAmount"`
}

type BookingRecord struct {
	BookingID   string        `json:"bookingId"`
	ContactInfo ContactInfo   `json:"contactInfo"`
	Passengers  []Passenger   `json:"passengers"`
	BusDetails  TripDetails   `json:"busDetails"`
	TotalAmount int64         `json:"totalAmount"`
	BookingDate time.Time     `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
}

// IsPastTravel reports whether the travel date lies strictly before the
// calendar day of now. Time of day is ignored.
func (b BookingRecord) IsPastTravel(now time.Time) bool {
	travel, ok := b.BusDetails.TravelDate(now.Location())
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return travel.Before(today)
}

// CanCancel: confirmed and not yet travelled.
func (b BookingRecord) CanCancel(now time.Time) bool {
	return b.Status == BookingConfirmed && !b.IsPastTravel(now)
}

// DisplayStatus labels past confirmed trips as completed without touching
// the stored status.
func (b BookingRecord) DisplayStatus(now time.Time) BookingStatus {
	if b.Status == BookingConfirmed && b.IsPastTravel(now) {
		return BookingCompleted
	}
	return b.Status
}

// GenerateBookingID returns the prefix followed by the last 8 digits of
// the Unix millisecond timestamp.
func GenerateBookingID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return BookingIDPrefix + ms
}

// ValidateContact checks presence only.
func ValidateContact(c ContactInfo) error {
	switch {
	case strings.TrimSpace(c.Phone) == "":
		return missing("phone", "Please fill in all contact details: phone is required.")
	case strings.TrimSpace(c.Email) == "":
		return missing("email", "Please fill in all contact details: email is required.")
	case strings.TrimSpace(c.EmergencyContact) == "":
		return missing("emergencyContact", "Please fill in all contact details: emergency contact is required.")
	}
	return nil
}

// ValidatePassengers checks that every passenger has name, age and gender.
func ValidatePassengers(passengers []Passenger) error {
	for i, p := range passengers {
		var field string
		switch {
		case strings.TrimSpace(p.Name) == "":
			field = "name"
		case strings.TrimSpace(p.Age) == "":
			field = "age"
		case strings.TrimSpace(p.Gender) == "":
			field = "gender"
		default:
			continue
		}
		return missing(
			fmt.Sprintf("passengers[%d].%s", i, field),
			fmt.Sprintf("Please fill in all details for passenger %d: %s is required.", i+1, field),
		)
	}
	return nil
}

// AssignSeats pairs passengers with seats. A passenger without a seat
// takes the seat at its index; the result must cover every seat exactly once.
func AssignSeats(passengers []Passenger, seats []string) ([]Passenger, error) {
	if len(passengers) != len(seats) {
		return nil, fmt.Errorf("%w: %d passengers for %d seats", ErrSeatMismatch, len(passengers), len(seats))
	}

	wanted := make(map[string]bool, len(seats))
	for _, s := range seats {
		wanted[s] = false
	}

	out := make([]Passenger, len(passengers))
	for i, p := range passengers {
		if strings.TrimSpace(p.Seat) == "" {
			p.Seat = seats[i]
		}
		used, ok := wanted[p.Seat]
		if !ok {
			return nil, fmt.Errorf("%w: seat %s was not selected", ErrSeatMismatch, p.Seat)
		}
		if used {
			return nil, fmt.Errorf("%w: seat %s assigned twice", ErrSeatMismatch, p.Seat)
		}
		wanted[p.Seat] = true
		out[i] = p
	}
	return out, nil
}
