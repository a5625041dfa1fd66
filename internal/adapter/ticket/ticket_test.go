package ticket

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() domain.BookingRecord {
	return domain.BookingRecord{
		BookingID: "APSRTC12345678",
		ContactInfo: domain.ContactInfo{
			Phone:            "9876543210",
			Email:            "ravi@example.com",
			EmergencyContact: "9123456780",
		},
		Passengers: []domain.Passenger{
			{Name: "Ravi", Age: "34", Gender: "male", Seat: "1A"},
			{Name: "Lakshmi", Age: "31", Gender: "female", Seat: "1B"},
		},
		BusDetails: domain.TripDetails{
			Name: "APSRTC Express", Departure: "06:00", Arrival: "10:30",
			From: "Hyderabad", To: "Vijayawada", Date: "2025-01-01",
		},
		TotalAmount: 525,
		BookingDate: time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC),
		Status:      domain.BookingConfirmed,
	}
}

func TestText(t *testing.T) {
	txt := Text(sampleBooking(), time.UTC)

	assert.True(t, strings.HasPrefix(txt, "APSRTC E-TICKET\n"))
	assert.Contains(t, txt, "Booking ID: APSRTC12345678\n")
	assert.Contains(t, txt, "Status: CONFIRMED\n")
	assert.Contains(t, txt, "Booking Date: 20/12/2024\n")
	assert.Contains(t, txt, "From: Hyderabad\nTo: Vijayawada\nDate: 2025-01-01\n")
	assert.Contains(t, txt, "1. Ravi (34/male) - Seat 1A\n2. Lakshmi (31/female) - Seat 1B\n")
	assert.Contains(t, txt, "Emergency Contact: 9123456780\n")
	assert.Contains(t, txt, "Total Amount: ₹525\n")
}

func TestRender(t *testing.T) {
	b := sampleBooking()

	doc, err := Render(b, "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "APSRTC-Ticket-APSRTC12345678.txt", doc.Filename)
	assert.Equal(t, Text(b, time.UTC), string(doc.Body))

	doc, err = Render(b, "PDF", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "APSRTC-Ticket-APSRTC12345678.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF-")))

	_, err = Render(b, "docx", time.UTC)
	assert.Error(t, err)
}

func TestBookingDateUsesLocalCalendarDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	b := sampleBooking()
	b.BookingDate = time.Date(2024, 12, 19, 19, 30, 0, 0, time.UTC) // 01:00 IST on the 20th

	assert.Contains(t, Text(b, ist), "Booking Date: 20/12/2024\n")
	assert.Contains(t, Text(b, time.UTC), "Booking Date: 19/12/2024\n")

	doc, err := Render(b, FormatText, ist)
	require.NoError(t, err)
	assert.Contains(t, string(doc.Body), "Booking Date: 20/12/2024\n")
}
