package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/srgjo27/apsrtc_booking/internal/adapter/repository/file"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := file.NewBlobStore(dir)
	require.NoError(t, err)

	_, err = store.Get(ctx, "apsrtc_bookings")
	assert.ErrorIs(t, err, ports.ErrBlobNotFound)

	require.NoError(t, store.Set(ctx, "apsrtc_bookings", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "apsrtc_bookings", []byte(`[{"bookingId":"APSRTC1"}]`)))

	reopened, err := file.NewBlobStore(dir)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, "apsrtc_bookings")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"bookingId":"APSRTC1"}]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "apsrtc_bookings.json", entries[0].Name())
}

func TestBlobStore_Delete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := file.NewBlobStore(filepath.Join(dir, "nested"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "missing"))

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ports.ErrBlobNotFound)
}
