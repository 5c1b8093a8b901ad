package catalog

import "math"

// DefaultInterestRate is the annual financing rate applied when the caller
// does not supply one.
const DefaultInterestRate = 12.5

// EMIQuote is the result of an equated-monthly-installment calculation.
type EMIQuote struct {
	MonthlyEMI    float64 `json:"monthly_emi"`
	TotalAmount   float64 `json:"total_amount"`
	TotalInterest float64 `json:"total_interest"`
	Principal     float64 `json:"principal"`
	DownPayment   float64 `json:"down_payment"`
}

// CalculateEMI computes the monthly installment for financing a bike.
// A zero monthly rate degrades to straight division of the principal.
func CalculateEMI(price, downPayment float64, tenureMonths int, annualRate float64) EMIQuote {
	principal := price - downPayment
	monthlyRate := annualRate / (12 * 100)

	var emi float64
	if monthlyRate == 0 {
		emi = principal / float64(tenureMonths)
	} else {
		factor := math.Pow(1+monthlyRate, float64(tenureMonths))
		emi = principal * monthlyRate * factor / (factor - 1)
	}

	totalAmount := emi * float64(tenureMonths)

	return EMIQuote{
		MonthlyEMI:    round2(emi),
		TotalAmount:   round2(totalAmount),
		TotalInterest: round2(totalAmount - principal),
		Principal:     principal,
		DownPayment:   downPayment,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
