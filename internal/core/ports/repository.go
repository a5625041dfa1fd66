package ports

import (
	"context"
	"errors"
	"time"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
)

// ErrBlobNotFound is returned by BlobStore.Get for a key never written or
// deleted.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore keeps whole documents under string keys. Writes replace the
// previous value.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Catalog interface {
	Cities() []string
	BusTypes() []domain.BusType
	Layout(busType string) domain.SeatLayout
	FindBuses(from, to string) []domain.Bus
	FindBus(busID string) (domain.Bus, bool)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// RandomSource yields floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

type Clock interface {
	Now() time.Time
}
