package domain

// ServiceTaxPercent is applied once when seats are carried into the
// passenger step.
const ServiceTaxPercent = 5

// BaseFare is seats × price per seat, in whole rupees.
func BaseFare(seatCount int, pricePerSeat int64) int64 {
	if seatCount <= 0 || pricePerSeat <= 0 {
		return 0
	}
	return int64(seatCount) * pricePerSeat
}

// WithServiceTax returns round-half-up(base × 1.05).
func WithServiceTax(base int64) int64 {
	if base <= 0 {
		return 0
	}
	return (base*(100+ServiceTaxPercent) + 50) / 100
}

type FareBreakdown struct {
	Base  int64 `json:"base"`
	Tax   int64 `json:"tax"`
	Total int64 `json:"total"`
}

// SplitTotal recovers base and tax from a tax-inclusive total.
func SplitTotal(total int64) FareBreakdown {
	if total <= 0 {
		return FareBreakdown{}
	}
	base := (total*100*2 + (100 + ServiceTaxPercent)) / (2 * (100 + ServiceTaxPercent))
	return FareBreakdown{Base: base, Tax: total - base, Total: total}
}
