package catalog

import "github.com/srgjo27/apsrtc_booking/internal/core/domain"

var cities = []string{
	"Hyderabad", "Vijayawada", "Visakhapatnam", "Tirupati", "Guntur",
	"Kakinada", "Nellore", "Kurnool", "Rajahmundry", "Anantapur",
	"Eluru", "Ongole", "Chittoor", "Kadapa", "Vizianagaram",
	"Machilipatnam", "Srikakulam", "Adoni", "Tenali", "Proddatur",
	"Hindupur", "Bhimavaram", "Madanapalle", "Guntakal", "Dharmavaram",
}

var busTypes = []domain.BusType{
	{ID: "express", Name: "Express"},
	{ID: "deluxe", Name: "Deluxe"},
	{ID: "super-deluxe", Name: "Super Deluxe"},
	{ID: "volvo", Name: "Volvo AC"},
	{ID: "sleeper", Name: "Sleeper"},
}

var seatLayouts = map[string]domain.SeatLayout{
	"express":      {Rows: 10, SeatsPerRow: 4, Pattern: "2+2"},
	"deluxe":       {Rows: 9, SeatsPerRow: 4, Pattern: "2+2"},
	"super-deluxe": {Rows: 11, SeatsPerRow: 4, Pattern: "2+2"},
	"volvo":        {Rows: 9, SeatsPerRow: 4, Pattern: "2+2"},
	"sleeper":      {Rows: 6, SeatsPerRow: 5, Pattern: "2+1+2"},
}

var (
	acWifiCharging = []string{"AC", "WiFi", "Charging Point"}
	acCharging     = []string{"AC", "Charging Point"}
	acWifi         = []string{"AC", "WiFi"}
	volvoAmenities = []string{"AC", "WiFi", "Entertainment", "Snacks"}
	blanket        = []string{"AC", "WiFi", "Charging Point", "Blanket"}
)

var routes = []domain.Route{
	{ID: 1, From: "Hyderabad", To: "Vijayawada", Buses: []domain.Bus{
		{ID: "AP001", Name: "APSRTC Express", Type: "express", Departure: "06:00", Arrival: "10:30", Duration: "4h 30m", Price: 250, AvailableSeats: 23, TotalSeats: 40, Amenities: acWifiCharging},
		{ID: "AP002", Name: "APSRTC Volvo", Type: "volvo", Departure: "08:15", Arrival: "12:45", Duration: "4h 30m", Price: 450, AvailableSeats: 12, TotalSeats: 35, Amenities: []string{"AC", "WiFi", "Charging Point", "Entertainment", "Snacks"}},
	}},
	{ID: 2, From: "Hyderabad", To: "Visakhapatnam", Buses: []domain.Bus{
		{ID: "AP003", Name: "APSRTC Super Deluxe", Type: "super-deluxe", Departure: "22:00", Arrival: "08:30", Duration: "10h 30m", Price: 650, AvailableSeats: 18, TotalSeats: 45, Amenities: blanket},
	}},
	{ID: 3, From: "Vijayawada", To: "Tirupati", Buses: []domain.Bus{
		{ID: "AP004", Name: "APSRTC Express", Type: "express", Departure: "05:30", Arrival: "11:00", Duration: "5h 30m", Price: 300, AvailableSeats: 28, TotalSeats: 40, Amenities: acCharging},
	}},
	{ID: 4, From: "Tirupati", To: "Chennai", Buses: []domain.Bus{
		{ID: "AP005", Name: "APSRTC Deluxe", Type: "deluxe", Departure: "14:00", Arrival: "17:30", Duration: "3h 30m", Price: 200, AvailableSeats: 15, TotalSeats: 35, Amenities: acWifi},
	}},
	{ID: 5, From: "Guntur", To: "Hyderabad", Buses: []domain.Bus{
		{ID: "AP006", Name: "APSRTC Express", Type: "express", Departure: "07:15", Arrival: "11:45", Duration: "4h 30m", Price: 280, AvailableSeats: 22, TotalSeats: 40, Amenities: acCharging},
	}},
	{ID: 6, From: "Kakinada", To: "Hyderabad", Buses: []domain.Bus{
		{ID: "AP007", Name: "APSRTC Super Deluxe", Type: "super-deluxe", Departure: "21:30", Arrival: "07:00", Duration: "9h 30m", Price: 550, AvailableSeats: 16, TotalSeats: 45, Amenities: blanket},
	}},
	{ID: 7, From: "Nellore", To: "Bangalore", Buses: []domain.Bus{
		{ID: "AP008", Name: "APSRTC Volvo", Type: "volvo", Departure: "23:00", Arrival: "05:30", Duration: "6h 30m", Price: 480, AvailableSeats: 20, TotalSeats: 35, Amenities: volvoAmenities},
	}},
	{ID: 8, From: "Kurnool", To: "Hyderabad", Buses: []domain.Bus{
		{ID: "AP009", Name: "APSRTC Express", Type: "express", Departure: "06:45", Arrival: "11:15", Duration: "4h 30m", Price: 320, AvailableSeats: 25, TotalSeats: 40, Amenities: acCharging},
	}},
	{ID: 9, From: "Rajahmundry", To: "Vijayawada", Buses: []domain.Bus{
		{ID: "AP010", Name: "APSRTC Deluxe", Type: "deluxe", Departure: "08:00", Arrival: "11:30", Duration: "3h 30m", Price: 180, AvailableSeats: 30, TotalSeats: 35, Amenities: acWifi},
	}},
	{ID: 10, From: "Anantapur", To: "Bangalore", Buses: []domain.Bus{
		{ID: "AP011", Name: "APSRTC Express", Type: "express", Departure: "15:30", Arrival: "19:00", Duration: "3h 30m", Price: 220, AvailableSeats: 18, TotalSeats: 40, Amenities: acCharging},
	}},
	{ID: 11, From: "Eluru", To: "Hyderabad", Buses: []domain.Bus{
		{ID: "AP012", Name: "APSRTC Super Deluxe", Type: "super-deluxe", Departure: "22:15", Arrival: "05:45", Duration: "7h 30m", Price: 420, AvailableSeats: 14, TotalSeats: 45, Amenities: blanket},
	}},
	{ID: 12, From: "Ongole", To: "Chennai", Buses: []domain.Bus{
		{ID: "AP013", Name: "APSRTC Volvo", Type: "volvo", Departure: "20:00", Arrival: "02:30", Duration: "6h 30m", Price: 390, AvailableSeats: 22, TotalSeats: 35, Amenities: volvoAmenities},
	}},
	{ID: 13, From: "Chittoor", To: "Tirupati", Buses: []domain.Bus{
		{ID: "AP014", Name: "APSRTC Express", Type: "express", Departure: "09:30", Arrival: "10:30", Duration: "1h 00m", Price: 80, AvailableSeats: 35, TotalSeats: 40, Amenities: []string{"Charging Point"}},
	}},
	{ID: 14, From: "Kadapa", To: "Hyderabad", Buses: []domain.Bus{
		{ID: "AP015", Name: "APSRTC Deluxe", Type: "deluxe", Departure: "21:00", Arrival: "05:30", Duration: "8h 30m", Price: 380, AvailableSeats: 19, TotalSeats: 35, Amenities: acWifiCharging},
	}},
	{ID: 15, From: "Vizianagaram", To: "Visakhapatnam", Buses: []domain.Bus{
		{ID: "AP016", Name: "APSRTC Express", Type: "express", Departure: "07:00", Arrival: "09:00", Duration: "2h 00m", Price: 120, AvailableSeats: 28, TotalSeats: 40, Amenities: acCharging},
	}},
	{ID: 16, From: "Machilipatnam", To: "Vijayawada", Buses: []domain.Bus{
		{ID: "AP017", Name: "APSRTC Express", Type: "express", Departure: "06:15", Arrival: "08:15", Duration: "2h 00m", Price: 100, AvailableSeats: 32, TotalSeats: 40, Amenities: acCharging},
	}},
	{ID: 17, From: "Srikakulam", To: "Visakhapatnam", Buses: []domain.Bus{
		{ID: "AP018", Name: "APSRTC Super Deluxe", Type: "super-deluxe", Departure: "14:30", Arrival: "18:00", Duration: "3h 30m", Price: 250, AvailableSeats: 21, TotalSeats: 45, Amenities: acWifiCharging},
	}},
	{ID: 18, From: "Tenali", To: "Hyderabad", Buses: []domain.Bus{
		{ID: "AP019", Name: "APSRTC Volvo", Type: "volvo", Departure: "23:30", Arrival: "04:00", Duration: "4h 30m", Price: 420, AvailableSeats: 17, TotalSeats: 35, Amenities: volvoAmenities},
	}},
	{ID: 19, From: "Bhimavaram", To: "Hyderabad", Buses: []domain.Bus{
		{ID: "AP020", Name: "APSRTC Express", Type: "express", Departure: "20:45", Arrival: "04:15", Duration: "7h 30m", Price: 350, AvailableSeats: 24, TotalSeats: 40, Amenities: acCharging},
	}},
	{ID: 20, From: "Guntakal", To: "Bangalore", Buses: []domain.Bus{
		{ID: "AP021", Name: "APSRTC Sleeper", Type: "sleeper", Departure: "22:30", Arrival: "06:00", Duration: "7h 30m", Price: 520, AvailableSeats: 12, TotalSeats: 30, Amenities: []string{"AC", "WiFi", "Charging Point", "Blanket", "Pillow"}},
	}},
}
