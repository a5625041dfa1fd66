package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFare(t *testing.T) {
	tests := []struct {
		seats int
		price int64
		base  int64
		total int64
	}{
		{1, 250, 250, 263},
		{2, 250, 500, 525},
		{1, 450, 450, 473},
		{3, 650, 1950, 2048},
		{0, 250, 0, 0},
	}

	for _, tc := range tests {
		base := domain.BaseFare(tc.seats, tc.price)
		assert.Equal(t, tc.base, base)
		assert.Equal(t, tc.total, domain.WithServiceTax(base))

		if tc.total > 0 {
			split := domain.SplitTotal(tc.total)
			assert.Equal(t, tc.base, split.Base, "base for total %d", tc.total)
			assert.Equal(t, tc.total, split.Base+split.Tax)
		}
	}
}

func TestSeatLabelAndToggle(t *testing.T) {
	assert.Equal(t, "1A", domain.SeatLabel(1, 1))
	assert.Equal(t, "10D", domain.SeatLabel(10, 4))

	m := domain.SeatMap{Seats: []domain.Seat{
		{Number: "1A", Available: true},
		{Number: "1B", Available: false},
		{Number: "1C", Available: true},
	}}

	sel, changed := m.Toggle("1C", nil)
	assert.True(t, changed)
	sel, _ = m.Toggle("1A", sel)
	assert.Equal(t, []string{"1C", "1A"}, sel)

	same, changed := m.Toggle("1B", sel)
	assert.False(t, changed)
	assert.Equal(t, sel, same)

	_, changed = m.Toggle("9Z", sel)
	assert.False(t, changed)

	sel, _ = m.Toggle("1C", sel)
	assert.Equal(t, []string{"1A"}, sel)

	marked := m.WithSelection(sel)
	assert.True(t, marked.Seats[0].Selected)
	assert.False(t, marked.Seats[2].Selected)
	assert.False(t, m.Seats[0].Selected, "original map is untouched")
	assert.Equal(t, 2, m.AvailableCount())
}

func TestBookingRecord_StatusRules(t *testing.T) {
	now := time.Date(2024, 12, 20, 23, 59, 0, 0, time.Local)

	tests := []struct {
		name        string
		status      domain.BookingStatus
		date        string
		cancellable bool
		display     domain.BookingStatus
	}{
		{"future confirmed", domain.BookingConfirmed, "2024-12-21", true, domain.BookingConfirmed},
		{"today confirmed", domain.BookingConfirmed, "2024-12-20", true, domain.BookingConfirmed},
		{"past confirmed shows completed", domain.BookingConfirmed, "2024-12-19", false, domain.BookingCompleted},
		{"cancelled", domain.BookingCancelled, "2024-12-21", false, domain.BookingCancelled},
		{"unparseable date is not past", domain.BookingConfirmed, "someday", true, domain.BookingConfirmed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := domain.BookingRecord{Status: tc.status, BusDetails: domain.TripDetails{Date: tc.date}}
			assert.Equal(t, tc.cancellable, r.CanCancel(now))
			assert.Equal(t, tc.display, r.DisplayStatus(now))
		})
	}
}

func TestGenerateBookingID(t *testing.T) {
	id := domain.GenerateBookingID(time.UnixMilli(1734690600123))
	assert.Equal(t, "APSRTC90600123", id)
	assert.Len(t, id, 14)
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]string{
		"":          domain.StatusAll,
		"all":       domain.StatusAll,
		"Confirmed": "confirmed",
		"completed": "completed",
	} {
		got, err := domain.ParseStatusFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseStatusFilter("pending")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestValidation(t *testing.T) {
	err := domain.ValidateContact(domain.ContactInfo{Phone: "1", Email: "a@b.c"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "emergencyContact", ve.Field)

	err = domain.ValidatePassengers([]domain.Passenger{
		{Name: "Ravi", Age: "34", Gender: "male"},
		{Name: "Lakshmi", Gender: "female"},
	})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "passengers[1].age", ve.Field)
	assert.Equal(t, "Please fill in all details for passenger 2: age is required.", err.Error())

	err = domain.SearchCriteria{From: "Hyderabad", Date: "2025-01-01"}.Validate()
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "to", ve.Field)
}

func TestAssignSeats(t *testing.T) {
	seats := []string{"1A", "1B"}

	got, err := domain.AssignSeats([]domain.Passenger{{Name: "A"}, {Name: "B", Seat: "1A"}}, seats)
	assert.ErrorIs(t, err, domain.ErrSeatMismatch, "index fallback collides with explicit seat")
	assert.Nil(t, got)

	_, err = domain.AssignSeats([]domain.Passenger{{Name: "A", Seat: "1B"}, {Name: "B"}}, seats)
	assert.ErrorIs(t, err, domain.ErrSeatMismatch)

	got, err = domain.AssignSeats([]domain.Passenger{{Name: "A"}, {Name: "B"}}, seats)
	require.NoError(t, err)
	assert.Equal(t, "1A", got[0].Seat)
	assert.Equal(t, "1B", got[1].Seat)

	_, err = domain.AssignSeats([]domain.Passenger{{Name: "A"}}, seats)
	assert.ErrorIs(t, err, domain.ErrSeatMismatch)

	_, err = domain.AssignSeats([]domain.Passenger{{Name: "A", Seat: "2C"}, {Name: "B"}}, seats)
	assert.ErrorIs(t, err, domain.ErrSeatMismatch)
}
