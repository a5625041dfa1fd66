package domain

type Step string

const (
	StepSearch       Step = "search"
	StepBuses        Step = "buses"
	StepSeats        Step = "seats"
	StepPassenger    Step = "passenger"
	StepConfirmation Step = "confirmation"
)

// WizardState is the in-progress, uncommitted booking of one user.
type WizardState struct {
	Step          Step            `json:"step"`
	Search        *SearchCriteria `json:"search,omitempty"`
	Buses         []Bus           `json:"buses,omitempty"`
	SelectedBus   *Bus            `json:"selectedBus,omitempty"`
	SeatMap       *SeatMap        `json:"seatMap,omitempty"`
	SelectedSeats []string        `json:"selectedSeats,omitempty"`
	TotalAmount   int64           `json:"totalAmount"`
	Booking       *BookingRecord  `json:"booking,omitempty"`
}

func NewWizardState() WizardState {
	return WizardState{Step: StepSearch}
}
