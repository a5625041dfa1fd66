package catalog_test

import (
	"testing"

	"github.com/srgjo27/apsrtc_booking/internal/adapter/catalog"
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBuses_CaseInsensitive(t *testing.T) {
	c := catalog.NewStatic()

	buses := c.FindBuses("hyderabad", "VIJAYAWADA")

	require.Len(t, buses, 2)
	assert.Equal(t, "AP001", buses[0].ID)
	assert.Equal(t, "AP002", buses[1].ID)
}

func TestFindBuses_UnknownRoute(t *testing.T) {
	c := catalog.NewStatic()

	assert.Empty(t, c.FindBuses("Vijayawada", "Hyderabad"))
	assert.Empty(t, c.FindBuses("Atlantis", "Hyderabad"))
}

func TestFindBuses_UnionAcrossRoutes(t *testing.T) {
	c := catalog.NewStaticWith([]domain.Route{
		{ID: 1, From: "A", To: "B", Buses: []domain.Bus{{ID: "X1"}}},
		{ID: 2, From: "C", To: "B", Buses: []domain.Bus{{ID: "X2"}}},
		{ID: 3, From: "a", To: "b", Buses: []domain.Bus{{ID: "X3"}, {ID: "X4"}}},
	}, nil)

	buses := c.FindBuses("A", "B")

	require.Len(t, buses, 3)
	assert.Equal(t, []string{"X1", "X3", "X4"}, []string{buses[0].ID, buses[1].ID, buses[2].ID})
}

func TestLayout_FallsBackToExpress(t *testing.T) {
	c := catalog.NewStatic()

	assert.Equal(t, domain.SeatLayout{Rows: 6, SeatsPerRow: 5, Pattern: "2+1+2"}, c.Layout("sleeper"))
	assert.Equal(t, c.Layout("express"), c.Layout("hovercraft"))
}

func TestFindBus_ReturnsCopy(t *testing.T) {
	c := catalog.NewStatic()

	bus, ok := c.FindBus("AP001")
	require.True(t, ok)
	bus.Amenities[0] = "changed"

	again, _ := c.FindBus("AP001")
	assert.Equal(t, "AC", again.Amenities[0])

	_, ok = c.FindBus("AP999")
	assert.False(t, ok)
}

func TestCities(t *testing.T) {
	c := catalog.NewStatic()

	assert.Len(t, c.Cities(), 25)
	assert.Len(t, c.BusTypes(), 5)
}
