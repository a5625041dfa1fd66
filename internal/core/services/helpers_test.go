package services_test

import (
	"time"

	"github.com/srgjo27/apsrtc_booking/internal/adapter/catalog"
	"github.com/srgjo27/apsrtc_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"github.com/srgjo27/apsrtc_booking/internal/core/services"
	"go.uber.org/zap"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// seqRand replays vals, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func allAvailable() *seqRand {
	return &seqRand{vals: []float64{0.5}}
}

func newTestClock() *fixedClock {
	return &fixedClock{now: time.Date(2024, 12, 20, 10, 30, 0, 0, time.Local)}
}

type wizardFixture struct {
	wizard *services.Wizard
	store  *services.BookingStore
	clock  *fixedClock
}

func newWizardFixture(notifier ports.Notifier, rnd ports.RandomSource) wizardFixture {
	clock := newTestClock()
	store := services.NewBookingStore(memory.NewBlobStore(), clock, zap.NewNop())
	w := services.NewWizard(
		catalog.NewStatic(),
		services.NewSeatMapGenerator(rnd),
		store,
		notifier,
		clock,
		zap.NewNop(),
	)
	return wizardFixture{wizard: w, store: store, clock: clock}
}

func sampleNewBooking(id, date string) domain.NewBooking {
	return domain.NewBooking{
		BookingID: id,
		ContactInfo: domain.ContactInfo{
			Phone: "9876543210", Email: "ravi@example.com", EmergencyContact: "9123456780",
		},
		Passengers: []domain.Passenger{{Name: "Ravi", Age: "34", Gender: "male", Seat: "1A"}},
		BusDetails: domain.TripDetails{
			Name: "APSRTC Express", Departure: "06:00", Arrival: "10:30",
			From: "Hyderabad", To: "Vijayawada", Date: date,
		},
		TotalAmount: 263,
	}
}
