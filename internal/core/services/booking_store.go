package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"go.uber.org/zap"
)

// BookingsKey addresses the single document holding every booking.
const BookingsKey = "apsrtc_bookings"

// BookingStore owns the persisted booking collection. The collection is
// stored newest first as one JSON array and every mutation rewrites it.
type BookingStore struct {
	mu    sync.Mutex
	blobs ports.BlobStore
	clock ports.Clock
	log   *zap.Logger
}

func NewBookingStore(blobs ports.BlobStore, clock ports.Clock, log *zap.Logger) *BookingStore {
	return &BookingStore{
		blobs: blobs,
		clock: clock,
		log:   log,
	}
}

// Create stamps the booking confirmed at the current time and prepends it.
func (s *BookingStore) Create(ctx context.Context, b domain.NewBooking) (domain.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return domain.BookingRecord{}, err
	}

	for _, r := range records {
		if r.BookingID == b.BookingID {
			return domain.BookingRecord{}, fmt.Errorf("%w: %s", domain.ErrDuplicateBookingID, b.BookingID)
		}
	}

	record := domain.BookingRecord{
		BookingID:   b.BookingID,
		ContactInfo: b.ContactInfo,
		Passengers:  b.Passengers,
		BusDetails:  b.BusDetails,
		TotalAmount: b.TotalAmount,
		BookingDate: s.clock.Now().UTC(),
		Status:      domain.BookingConfirmed,
	}

	updated := make([]domain.BookingRecord, 0, len(records)+1)
	updated = append(updated, record)
	updated = append(updated, records...)

	if err := s.save(ctx, updated); err != nil {
		return domain.BookingRecord{}, err
	}

	s.log.Info("booking saved",
		zap.String("booking_id", record.BookingID),
		zap.Int("passengers", len(record.Passengers)),
		zap.Int64("total_amount", record.TotalAmount),
	)

	return record, nil
}

// Load returns the stored bookings. A document that fails to parse reads
// as empty; only backend read failures are returned.
func (s *BookingStore) Load(ctx context.Context) ([]domain.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// ListAll is Load with every failure logged and treated as no data.
func (s *BookingStore) ListAll(ctx context.Context) []domain.BookingRecord {
	records, err := s.Load(ctx)
	if err != nil {
		s.log.Error("error retrieving bookings", zap.Error(err))
		return []domain.BookingRecord{}
	}
	return records
}

func (s *BookingStore) FindByID(ctx context.Context, bookingID string) (domain.BookingRecord, bool) {
	for _, r := range s.ListAll(ctx) {
		if r.BookingID == bookingID {
			return r, true
		}
	}
	return domain.BookingRecord{}, false
}

// Cancel marks the booking cancelled. It reports false without writing
// when the id is unknown; the error is set only when reading or writing
// the collection failed.
func (s *BookingStore) Cancel(ctx context.Context, bookingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i := range records {
		if records[i].BookingID == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	records[idx].Status = domain.BookingCancelled
	if err := s.save(ctx, records); err != nil {
		return false, err
	}

	s.log.Info("booking cancelled", zap.String("booking_id", bookingID))
	return true, nil
}

// ClearAll drops the whole collection.
func (s *BookingStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.blobs.Delete(ctx, BookingsKey); err != nil && !errors.Is(err, ports.ErrBlobNotFound) {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}

	s.log.Warn("all bookings cleared")
	return nil
}

func (s *BookingStore) load(ctx context.Context) ([]domain.BookingRecord, error) {
	data, err := s.blobs.Get(ctx, BookingsKey)
	if errors.Is(err, ports.ErrBlobNotFound) {
		return []domain.BookingRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	if len(data) == 0 {
		return []domain.BookingRecord{}, nil
	}

	var records []domain.BookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Error("error parsing stored bookings, treating as empty",
			zap.Error(err),
			zap.Int("size", len(data)),
		)
		return []domain.BookingRecord{}, nil
	}
	if records == nil {
		records = []domain.BookingRecord{}
	}

	return records, nil
}

func (s *BookingStore) save(ctx context.Context, records []domain.BookingRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	if err := s.blobs.Set(ctx, BookingsKey, data); err != nil {
		return fmt.Errorf("failed to write bookings: %w", err)
	}

	return nil
}
