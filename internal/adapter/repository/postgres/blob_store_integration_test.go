//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/srgjo27/apsrtc_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"github.com/srgjo27/apsrtc_booking/internal/core/services"
	"github.com/srgjo27/apsrtc_booking/internal/platform/database"
)

func TestBlobStore_AgainstPostgres(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "apsrtc_booking",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")
	testcontainers.CleanupContainer(t, container)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := database.NewPostgresDB(database.Config{
		Host:       host,
		Port:       port.Port(),
		User:       "test",
		Password:   "test",
		DBName:     "apsrtc_booking",
		MaxRetries: 10,
		RetryDelay: time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	blobs := postgres.NewBlobStore(db)
	require.NoError(t, blobs.Migrate(ctx))
	require.NoError(t, blobs.Migrate(ctx), "migration must be repeatable")

	_, err = blobs.Get(ctx, services.BookingsKey)
	assert.ErrorIs(t, err, ports.ErrBlobNotFound)

	store := services.NewBookingStore(blobs, services.SystemClock{}, zap.NewNop())
	_, err = store.Create(ctx, domain.NewBooking{
		BookingID:   "APSRTC12345678",
		Passengers:  []domain.Passenger{{Name: "Ravi", Age: "34", Gender: "male", Seat: "1A"}},
		BusDetails:  domain.TripDetails{Name: "APSRTC Express", From: "Hyderabad", To: "Vijayawada", Date: "2099-01-01"},
		TotalAmount: 263,
	})
	require.NoError(t, err)

	ok, err := store.Cancel(ctx, "APSRTC12345678")
	require.NoError(t, err)
	assert.True(t, ok)

	records := store.ListAll(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, domain.BookingCancelled, records[0].Status)

	require.NoError(t, store.ClearAll(ctx))
	assert.Empty(t, store.ListAll(ctx))
}
