package domain

import "strings"

type BusType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Bus struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Departure      string   `json:"departure"`
	Arrival        string   `json:"arrival"`
	Duration       string   `json:"duration"`
	Price          int64    `json:"price"`
	AvailableSeats int      `json:"availableSeats"`
	TotalSeats     int      `json:"totalSeats"`
	Amenities      []string `json:"amenities"`
}

// Bookable reports whether the catalog still lists free seats for the bus.
// It says nothing about the generated seat map.
func (b Bus) Bookable() bool {
	return b.AvailableSeats > 0
}

type Route struct {
	ID    int    `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Buses []Bus  `json:"buses"`
}

// Serves matches origin and destination case-insensitively.
func (r Route) Serves(from, to string) bool {
	return strings.EqualFold(r.From, from) && strings.EqualFold(r.To, to)
}

type SeatLayout struct {
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seatsPerRow"`
	Pattern     string `json:"layout"`
}

func (l SeatLayout) Capacity() int {
	return l.Rows * l.SeatsPerRow
}

type SearchCriteria struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

func (c SearchCriteria) Validate() error {
	switch {
	case strings.TrimSpace(c.From) == "":
		return missing("from", "please select a departure city")
	case strings.TrimSpace(c.To) == "":
		return missing("to", "please select a destination city")
	case strings.TrimSpace(c.Date) == "":
		return missing("date", "please select a travel date")
	}
	return nil
}
