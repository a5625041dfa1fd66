package services

import (
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
)

// OccupiedProbability is the chance that a generated seat shows as taken.
const OccupiedProbability = 0.3

type SeatMapGenerator struct {
	rnd ports.RandomSource
}

func NewSeatMapGenerator(rnd ports.RandomSource) *SeatMapGenerator {
	return &SeatMapGenerator{rnd: rnd}
}

// Generate lays out rows × seatsPerRow seats in row-major order. Each seat
// is available independently with probability 0.7.
func (g *SeatMapGenerator) Generate(layout domain.SeatLayout) domain.SeatMap {
	seats := make([]domain.Seat, 0, layout.Capacity())

	for row := 1; row <= layout.Rows; row++ {
		for col := 1; col <= layout.SeatsPerRow; col++ {
			seats = append(seats, domain.Seat{
				Number:    domain.SeatLabel(row, col),
				Available: g.rnd.Float64() > OccupiedProbability,
			})
		}
	}

	return domain.SeatMap{Layout: layout, Seats: seats}
}
