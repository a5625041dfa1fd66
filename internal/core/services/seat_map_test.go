package services_test

import (
	"testing"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Labels(t *testing.T) {
	gen := services.NewSeatMapGenerator(allAvailable())

	m := gen.Generate(domain.SeatLayout{Rows: 10, SeatsPerRow: 4, Pattern: "2+2"})

	require.Len(t, m.Seats, 40)
	labels := make([]string, 0, len(m.Seats))
	for _, s := range m.Seats {
		labels = append(labels, s.Number)
	}
	assert.Equal(t, []string{"1A", "1B", "1C", "1D"}, labels[:4])
	assert.Equal(t, []string{"10A", "10B", "10C", "10D"}, labels[36:])
	assert.Equal(t, 40, m.AvailableCount())
}

func TestGenerate_AvailabilityThreshold(t *testing.T) {
	gen := services.NewSeatMapGenerator(&seqRand{vals: []float64{0.0, 0.29, 0.3, 0.99, 0.31}})

	m := gen.Generate(domain.SeatLayout{Rows: 1, SeatsPerRow: 5, Pattern: "2+1+2"})

	got := []bool{}
	for _, s := range m.Seats {
		got = append(got, s.Available)
	}
	assert.Equal(t, []bool{false, false, false, true, true}, got)
	assert.Equal(t, []string{"1A", "1B", "1C", "1D", "1E"}, []string{
		m.Seats[0].Number, m.Seats[1].Number, m.Seats[2].Number, m.Seats[3].Number, m.Seats[4].Number,
	})
}

func TestGenerate_SeededSourceIsDeterministic(t *testing.T) {
	layout := domain.SeatLayout{Rows: 11, SeatsPerRow: 4}

	a := services.NewSeatMapGenerator(services.NewLockedRand(7)).Generate(layout)
	b := services.NewSeatMapGenerator(services.NewLockedRand(7)).Generate(layout)

	assert.Equal(t, a, b)
}

func TestGenerate_RoughlySeventyPercentAvailable(t *testing.T) {
	gen := services.NewSeatMapGenerator(services.NewLockedRand(2024))
	layout := domain.SeatLayout{Rows: 100, SeatsPerRow: 100}

	m := gen.Generate(layout)

	ratio := float64(m.AvailableCount()) / float64(layout.Capacity())
	assert.InDelta(t, 0.7, ratio, 0.03)
}
