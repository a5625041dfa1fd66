package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"go.uber.org/zap"
)

// HistoryEntry is a stored booking as the history view shows it.
type HistoryEntry struct {
	domain.BookingRecord
	DisplayStatus domain.BookingStatus `json:"displayStatus"`
	Cancellable   bool                 `json:"cancellable"`
}

type HistoryPage struct {
	Entries       []HistoryEntry        `json:"bookings"`
	Total         int                   `json:"total"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

type CancelResult struct {
	Entry         *HistoryEntry         `json:"booking,omitempty"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// FilterBookings keeps records whose id, origin, destination or bus name
// contain term (case-insensitive) and whose stored status equals status.
// status must already be normalised by domain.ParseStatusFilter.
func FilterBookings(records []domain.BookingRecord, term, status string) []domain.BookingRecord {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.BookingRecord, 0, len(records))
	for _, r := range records {
		if needle != "" && !matchesTerm(r, needle) {
			continue
		}
		if status != domain.StatusAll && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesTerm(r domain.BookingRecord, needle string) bool {
	for _, field := range []string{r.BookingID, r.BusDetails.From, r.BusDetails.To, r.BusDetails.Name} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

type HistoryService struct {
	store    *BookingStore
	notifier ports.Notifier
	clock    ports.Clock
	log      *zap.Logger
}

func NewHistoryService(store *BookingStore, notifier ports.Notifier, clock ports.Clock, log *zap.Logger) *HistoryService {
	return &HistoryService{
		store:    store,
		notifier: notifier,
		clock:    clock,
		log:      log,
	}
}

func (h *HistoryService) List(ctx context.Context, term, status string) (HistoryPage, error) {
	filter, err := domain.ParseStatusFilter(status)
	if err != nil {
		return HistoryPage{}, err
	}

	page := HistoryPage{Entries: []HistoryEntry{}}

	records, err := h.store.Load(ctx)
	if err != nil {
		h.log.Error("failed to load booking history", zap.Error(err))
		n := domain.Failure("Error loading bookings", "Failed to load your booking history.")
		h.notifier.Notify(ctx, n)
		page.Notifications = append(page.Notifications, n)
		return page, nil
	}

	page.Total = len(records)
	for _, r := range FilterBookings(records, term, filter) {
		page.Entries = append(page.Entries, h.entry(r))
	}
	return page, nil
}

func (h *HistoryService) Get(ctx context.Context, bookingID string) (HistoryEntry, error) {
	r, ok := h.store.FindByID(ctx, bookingID)
	if !ok {
		return HistoryEntry{}, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, bookingID)
	}
	return h.entry(r), nil
}

// Cancel cancels a confirmed booking whose travel date has not passed.
func (h *HistoryService) Cancel(ctx context.Context, bookingID string) (CancelResult, error) {
	var res CancelResult

	r, ok := h.store.FindByID(ctx, bookingID)
	if ok && !r.CanCancel(h.clock.Now()) {
		return res, fmt.Errorf("%w: %s is %s", domain.ErrNotCancellable, bookingID, r.DisplayStatus(h.clock.Now()))
	}

	cancelled := false
	var err error
	if ok {
		cancelled, err = h.store.Cancel(ctx, bookingID)
	}

	if !cancelled {
		h.notify(ctx, &res, domain.Failure("Cancellation Failed", "Failed to cancel the booking. Please try again."))
		if err != nil {
			return res, err
		}
		return res, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, bookingID)
	}

	r.Status = domain.BookingCancelled
	entry := h.entry(r)
	res.Entry = &entry
	h.notify(ctx, &res, domain.Info(
		"Booking Cancelled",
		fmt.Sprintf("Booking %s has been cancelled successfully.", bookingID),
	))
	return res, nil
}

func (h *HistoryService) ClearAll(ctx context.Context) error {
	return h.store.ClearAll(ctx)
}

func (h *HistoryService) entry(r domain.BookingRecord) HistoryEntry {
	now := h.clock.Now()
	return HistoryEntry{
		BookingRecord: r,
		DisplayStatus: r.DisplayStatus(now),
		Cancellable:   r.CanCancel(now),
	}
}

func (h *HistoryService) notify(ctx context.Context, res *CancelResult, n domain.Notification) {
	res.Notifications = append(res.Notifications, n)
	h.notifier.Notify(ctx, n)
}
