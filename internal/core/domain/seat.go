package domain

import "fmt"

type Seat struct {
	Number    string `json:"number"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

// SeatMap is one generated view of a bus's seats. Availability is fixed
// at generation time; selection lives with the caller.
type SeatMap struct {
	Layout SeatLayout `json:"layout"`
	Seats  []Seat     `json:"seats"`
}

// SeatLabel builds "{row}{letter}" with 1-based row and column.
func SeatLabel(row, column int) string {
	return fmt.Sprintf("%d%c", row, rune('A'+column-1))
}

func (m SeatMap) Find(label string) (Seat, bool) {
	for _, s := range m.Seats {
		if s.Number == label {
			return s, true
		}
	}
	return Seat{}, false
}

// Toggle flips label in selected. Unknown or occupied seats leave the
// selection untouched and report false.
func (m SeatMap) Toggle(label string, selected []string) ([]string, bool) {
	seat, ok := m.Find(label)
	if !ok || !seat.Available {
		return selected, false
	}

	next := make([]string, 0, len(selected)+1)
	removed := false
	for _, s := range selected {
		if s == label {
			removed = true
			continue
		}
		next = append(next, s)
	}
	if !removed {
		next = append(next, label)
	}
	return next, true
}

// WithSelection returns a copy with the Selected flags set from selected.
func (m SeatMap) WithSelection(selected []string) SeatMap {
	picked := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		picked[s] = struct{}{}
	}

	out := SeatMap{Layout: m.Layout, Seats: make([]Seat, len(m.Seats))}
	for i, s := range m.Seats {
		_, s.Selected = picked[s.Number]
		out.Seats[i] = s
	}
	return out
}

func (m SeatMap) AvailableCount() int {
	n := 0
	for _, s := range m.Seats {
		if s.Available {
			n++
		}
	}
	return n
}
