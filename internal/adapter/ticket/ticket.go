package ticket

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
)

const (
	FormatText = "txt"
	FormatPDF  = "pdf"
)

// Document is a rendered ticket ready to be served as a download.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

func Filename(bookingID, format string) string {
	return fmt.Sprintf("APSRTC-Ticket-%s.%s", bookingID, format)
}

// Render produces the ticket in the requested format. Empty format means text.
// The booking date is printed as a calendar day in loc; nil means time.Local.
func Render(b domain.BookingRecord, format string, loc *time.Location) (Document, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return Document{
			Filename:    Filename(b.BookingID, FormatText),
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(Text(b, loc)),
		}, nil
	case FormatPDF:
		body, err := PDF(b, loc)
		if err != nil {
			return Document{}, err
		}
		return Document{
			Filename:    Filename(b.BookingID, FormatPDF),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	default:
		return Document{}, fmt.Errorf("unsupported ticket format %q", format)
	}
}

// PassengerLine formats one passenger as "{i}. {name} ({age}/{gender}) - Seat {seat}".
func PassengerLine(i int, p domain.Passenger) string {
	return fmt.Sprintf("%d. %s (%s/%s) - Seat %s", i, p.Name, p.Age, p.Gender, p.Seat)
}

func bookingDay(b domain.BookingRecord, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return b.BookingDate.In(loc).Format("02/01/2006")
}

func Text(b domain.BookingRecord, loc *time.Location) string {
	var sb strings.Builder

	sb.WriteString("APSRTC E-TICKET\n")
	sb.WriteString("================\n")
	fmt.Fprintf(&sb, "Booking ID: %s\n", b.BookingID)
	fmt.Fprintf(&sb, "Status: %s\n", strings.ToUpper(string(b.Status)))
	fmt.Fprintf(&sb, "Booking Date: %s\n", bookingDay(b, loc))

	sb.WriteString("\nJOURNEY DETAILS:\n")
	fmt.Fprintf(&sb, "From: %s\n", b.BusDetails.From)
	fmt.Fprintf(&sb, "To: %s\n", b.BusDetails.To)
	fmt.Fprintf(&sb, "Date: %s\n", b.BusDetails.Date)
	fmt.Fprintf(&sb, "Bus: %s\n", b.BusDetails.Name)
	fmt.Fprintf(&sb, "Departure: %s\n", b.BusDetails.Departure)
	fmt.Fprintf(&sb, "Arrival: %s\n", b.BusDetails.Arrival)

	sb.WriteString("\nPASSENGERS:\n")
	for i, p := range b.Passengers {
		sb.WriteString(PassengerLine(i+1, p))
		sb.WriteByte('\n')
	}

	sb.WriteString("\nCONTACT DETAILS:\n")
	fmt.Fprintf(&sb, "Phone: %s\n", b.ContactInfo.Phone)
	fmt.Fprintf(&sb, "Email: %s\n", b.ContactInfo.Email)
	fmt.Fprintf(&sb, "Emergency Contact: %s\n", b.ContactInfo.EmergencyContact)

	sb.WriteString("\nPAYMENT:\n")
	fmt.Fprintf(&sb, "Total Amount: ₹%d\n", b.TotalAmount)

	sb.WriteString("\nThank you for choosing APSRTC!\n")
	return sb.String()
}

// PDF renders the same content as Text on one A4 page. Core fonts have no
// rupee glyph, so amounts are written as "Rs.".
func PDF(b domain.BookingRecord, loc *time.Location) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("APSRTC E-Ticket "+b.BookingID, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "APSRTC E-TICKET")
	pdf.Ln(12)

	line := func(s string) {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	heading := func(s string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		line(s)
		pdf.SetFont("Helvetica", "", 12)
	}

	pdf.SetFont("Helvetica", "", 12)
	line("Booking ID   : " + b.BookingID)
	line("Status       : " + strings.ToUpper(string(b.Status)))
	line("Booking Date : " + bookingDay(b, loc))

	heading("JOURNEY DETAILS")
	line(fmt.Sprintf("%s -> %s on %s", b.BusDetails.From, b.BusDetails.To, b.BusDetails.Date))
	line("Bus       : " + b.BusDetails.Name)
	line("Departure : " + b.BusDetails.Departure)
	line("Arrival   : " + b.BusDetails.Arrival)

	heading("PASSENGERS")
	for i, p := range b.Passengers {
		line(PassengerLine(i+1, p))
	}

	heading("CONTACT DETAILS")
	line("Phone             : " + b.ContactInfo.Phone)
	line("Email             : " + b.ContactInfo.Email)
	line("Emergency Contact : " + b.ContactInfo.EmergencyContact)

	fare := domain.SplitTotal(b.TotalAmount)
	heading("PAYMENT")
	line(fmt.Sprintf("Base Fare          : Rs. %d", fare.Base))
	line(fmt.Sprintf("Service Tax (%d%%)  : Rs. %d", domain.ServiceTaxPercent, fare.Tax))
	pdf.SetFont("Helvetica", "B", 12)
	line(fmt.Sprintf("Total Amount       : Rs. %d", b.TotalAmount))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for choosing APSRTC! Please carry a valid photo ID while travelling.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}
