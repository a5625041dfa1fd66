package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*BlobStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBlobStore(sqlx.NewDb(db, "postgres")), mock
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	store, mock := newMockStore(t)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).
			WithArgs("apsrtc_bookings").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

		got, err := store.Get(ctx, "apsrtc_bookings")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM kv_store`).
			WithArgs("apsrtc_bookings").
			WillReturnError(sql.ErrNoRows)

		_, err := store.Get(ctx, "apsrtc_bookings")
		assert.ErrorIs(t, err, ports.ErrBlobNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM kv_store`).
			WithArgs("apsrtc_bookings").
			WillReturnError(fmt.Errorf("database error"))

		_, err := store.Get(ctx, "apsrtc_bookings")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ports.ErrBlobNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := context.Background()
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("apsrtc_bookings", []byte(`[{"bookingId":"APSRTC1"}]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(ctx, "apsrtc_bookings", []byte(`[{"bookingId":"APSRTC1"}]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAndMigrate(t *testing.T) {
	ctx := context.Background()
	store, mock := newMockStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_store`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM kv_store WHERE key = \$1`).
		WithArgs("apsrtc_bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Delete(ctx, "apsrtc_bookings"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
