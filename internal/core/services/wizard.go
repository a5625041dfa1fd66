package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"go.uber.org/zap"
)

type ConfirmRequest struct {
	ContactInfo domain.ContactInfo `json:"contact_info"`
	Passengers  []domain.Passenger `json:"passengers"`
}

// Outcome is the wizard state after an action together with the
// notifications the action raised. On error State is the unchanged input.
type Outcome struct {
	State         domain.WizardState    `json:"state"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// Wizard drives the booking flow search → buses → seats → passenger →
// confirmation. It holds no state of its own; every call takes the current
// state and returns the next one.
type Wizard struct {
	catalog  ports.Catalog
	seats    *SeatMapGenerator
	store    *BookingStore
	notifier ports.Notifier
	clock    ports.Clock
	log      *zap.Logger
}

func NewWizard(
	catalog ports.Catalog,
	seats *SeatMapGenerator,
	store *BookingStore,
	notifier ports.Notifier,
	clock ports.Clock,
	log *zap.Logger,
) *Wizard {
	return &Wizard{
		catalog:  catalog,
		seats:    seats,
		store:    store,
		notifier: notifier,
		clock:    clock,
		log:      log,
	}
}

func (w *Wizard) Search(ctx context.Context, s domain.WizardState, c domain.SearchCriteria) (Outcome, error) {
	out := Outcome{State: s}
	if s.Step != domain.StepSearch {
		return out, transitionError(s.Step, "search")
	}
	if err := c.Validate(); err != nil {
		return out, err
	}

	buses := w.catalog.FindBuses(c.From, c.To)
	out.State = applySearch(s, c, buses)

	if len(buses) == 0 {
		w.emit(ctx, &out, domain.Failure(
			"No Buses Found",
			"Sorry, no buses available for this route. Please try a different route.",
		))
		return out, nil
	}

	w.emit(ctx, &out, domain.Info(
		"Buses Found!",
		fmt.Sprintf("Found %d available bus(es) for your route.", len(buses)),
	))
	return out, nil
}

func (w *Wizard) SelectBus(ctx context.Context, s domain.WizardState, busID string) (Outcome, error) {
	out := Outcome{State: s}
	if s.Step != domain.StepBuses {
		return out, transitionError(s.Step, "select a bus")
	}

	var bus *domain.Bus
	for i := range s.Buses {
		if s.Buses[i].ID == busID {
			bus = &s.Buses[i]
			break
		}
	}
	if bus == nil {
		return out, fmt.Errorf("%w: %s", domain.ErrBusNotFound, busID)
	}
	if !bus.Bookable() {
		return out, fmt.Errorf("%w: %s", domain.ErrBusSoldOut, busID)
	}

	seatMap := w.seats.Generate(w.catalog.Layout(bus.Type))
	out.State = applySelectBus(s, *bus, seatMap)
	return out, nil
}

func (w *Wizard) ToggleSeat(_ context.Context, s domain.WizardState, label string) (Outcome, error) {
	out := Outcome{State: s}
	if s.Step != domain.StepSeats || s.SeatMap == nil {
		return out, transitionError(s.Step, "toggle a seat")
	}

	out.State = applyToggleSeat(s, label)
	return out, nil
}

func (w *Wizard) ProceedToPassengers(_ context.Context, s domain.WizardState) (Outcome, error) {
	out := Outcome{State: s}
	if s.Step != domain.StepSeats || s.SelectedBus == nil {
		return out, transitionError(s.Step, "proceed to passenger details")
	}

	next, err := applyProceed(s)
	if err != nil {
		return out, err
	}
	out.State = next
	return out, nil
}

// Confirm validates the passenger payload, persists the booking and moves
// to confirmation. The amount persisted is the total carried from the seat
// step, which already includes service tax.
func (w *Wizard) Confirm(ctx context.Context, s domain.WizardState, req ConfirmRequest) (Outcome, error) {
	out := Outcome{State: s}
	if s.Step != domain.StepPassenger || s.SelectedBus == nil || s.Search == nil {
		return out, transitionError(s.Step, "confirm the booking")
	}

	if err := domain.ValidateContact(req.ContactInfo); err != nil {
		w.emit(ctx, &out, domain.Failure("Missing Contact Information", err.Error()))
		return out, err
	}
	if err := domain.ValidatePassengers(req.Passengers); err != nil {
		w.emit(ctx, &out, domain.Failure("Missing Passenger Information", err.Error()))
		return out, err
	}

	passengers, err := domain.AssignSeats(req.Passengers, s.SelectedSeats)
	if err != nil {
		w.emit(ctx, &out, domain.Failure("Passenger Details Mismatch", err.Error()))
		return out, err
	}

	bookingID := domain.GenerateBookingID(w.clock.Now())
	record, err := w.store.Create(ctx, domain.NewBooking{
		BookingID:   bookingID,
		ContactInfo: req.ContactInfo,
		Passengers:  passengers,
		BusDetails: domain.TripDetails{
			Name:      s.SelectedBus.Name,
			Departure: s.SelectedBus.Departure,
			Arrival:   s.SelectedBus.Arrival,
			From:      s.Search.From,
			To:        s.Search.To,
			Date:      s.Search.Date,
		},
		TotalAmount: s.TotalAmount,
	})
	if err != nil {
		w.log.Error("failed to save booking",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		desc := "We could not save your booking. Please try again."
		if errors.Is(err, domain.ErrDuplicateBookingID) {
			desc = "Another booking was made at the same moment. Please confirm again."
		}
		w.emit(ctx, &out, domain.Failure("Booking Failed", desc))
		return out, err
	}

	out.State = applyConfirm(s, record)
	w.emit(ctx, &out, domain.Info(
		"Booking Confirmed!",
		fmt.Sprintf("Your booking %s has been confirmed successfully.", record.BookingID),
	))
	return out, nil
}

func (w *Wizard) Back(_ context.Context, s domain.WizardState) (Outcome, error) {
	out := Outcome{State: s}
	next, err := applyBack(s)
	if err != nil {
		return out, err
	}
	out.State = next
	return out, nil
}

// Reset discards everything in progress. It is allowed from any step.
func (w *Wizard) Reset(_ context.Context, _ domain.WizardState) (Outcome, error) {
	return Outcome{State: domain.NewWizardState()}, nil
}

// Quote is the passenger step summary for the carried total.
func Quote(s domain.WizardState) domain.FareBreakdown {
	return domain.SplitTotal(s.TotalAmount)
}

func (w *Wizard) emit(ctx context.Context, out *Outcome, n domain.Notification) {
	out.Notifications = append(out.Notifications, n)
	w.notifier.Notify(ctx, n)
}

func transitionError(step domain.Step, action string) error {
	return fmt.Errorf("%w: cannot %s during %s", domain.ErrInvalidTransition, action, step)
}

// Pure transitions. They assume the caller already checked the step.

func applySearch(s domain.WizardState, c domain.SearchCriteria, buses []domain.Bus) domain.WizardState {
	criteria := c
	s.Search = &criteria
	if len(buses) == 0 {
		return s
	}
	s.Buses = buses
	s.Step = domain.StepBuses
	return s
}

func applySelectBus(s domain.WizardState, bus domain.Bus, seatMap domain.SeatMap) domain.WizardState {
	s.SelectedBus = &bus
	s.SeatMap = &seatMap
	s.SelectedSeats = nil
	s.TotalAmount = 0
	s.Step = domain.StepSeats
	return s
}

func applyToggleSeat(s domain.WizardState, label string) domain.WizardState {
	selected, changed := s.SeatMap.Toggle(label, s.SelectedSeats)
	if !changed {
		return s
	}
	seatMap := s.SeatMap.WithSelection(selected)
	s.SeatMap = &seatMap
	s.SelectedSeats = selected
	return s
}

func applyProceed(s domain.WizardState) (domain.WizardState, error) {
	if len(s.SelectedSeats) == 0 {
		return s, domain.ErrNoSeatsSelected
	}
	base := domain.BaseFare(len(s.SelectedSeats), s.SelectedBus.Price)
	s.TotalAmount = domain.WithServiceTax(base)
	s.Step = domain.StepPassenger
	return s, nil
}

func applyConfirm(s domain.WizardState, record domain.BookingRecord) domain.WizardState {
	s.Booking = &record
	s.Step = domain.StepConfirmation
	return s
}

func applyBack(s domain.WizardState) (domain.WizardState, error) {
	switch s.Step {
	case domain.StepSeats:
		s.SelectedBus = nil
		s.SeatMap = nil
		s.SelectedSeats = nil
		s.TotalAmount = 0
		s.Step = domain.StepBuses
		return s, nil
	case domain.StepPassenger:
		s.TotalAmount = 0
		s.Step = domain.StepSeats
		return s, nil
	default:
		return s, transitionError(s.Step, "go back")
	}
}
