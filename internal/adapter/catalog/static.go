package catalog

import (
	"strings"

	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
)

// DefaultBusType is used for seat layouts of unknown bus types.
const DefaultBusType = "express"

// Static is the fixed APSRTC inventory. It is read only and safe for
// concurrent use.
type Static struct {
	cities   []string
	busTypes []domain.BusType
	layouts  map[string]domain.SeatLayout
	routes   []domain.Route
}

func NewStatic() *Static {
	return &Static{
		cities:   cities,
		busTypes: busTypes,
		layouts:  seatLayouts,
		routes:   routes,
	}
}

// NewStaticWith builds a catalog over caller-supplied routes and layouts.
func NewStaticWith(routes []domain.Route, layouts map[string]domain.SeatLayout) *Static {
	s := NewStatic()
	s.routes = routes
	if layouts != nil {
		s.layouts = layouts
	}
	return s
}

func (s *Static) Cities() []string {
	out := make([]string, len(s.cities))
	copy(out, s.cities)
	return out
}

func (s *Static) BusTypes() []domain.BusType {
	out := make([]domain.BusType, len(s.busTypes))
	copy(out, s.busTypes)
	return out
}

func (s *Static) Layout(busType string) domain.SeatLayout {
	if l, ok := s.layouts[strings.ToLower(busType)]; ok {
		return l
	}
	return s.layouts[DefaultBusType]
}

// FindBuses returns the buses of every route from origin to destination,
// in catalog order.
func (s *Static) FindBuses(from, to string) []domain.Bus {
	var buses []domain.Bus
	for _, r := range s.routes {
		if !r.Serves(from, to) {
			continue
		}
		for _, b := range r.Buses {
			buses = append(buses, cloneBus(b))
		}
	}
	return buses
}

func (s *Static) FindBus(busID string) (domain.Bus, bool) {
	for _, r := range s.routes {
		for _, b := range r.Buses {
			if b.ID == busID {
				return cloneBus(b), true
			}
		}
	}
	return domain.Bus{}, false
}

func cloneBus(b domain.Bus) domain.Bus {
	b.Amenities = append([]string(nil), b.Amenities...)
	return b
}
