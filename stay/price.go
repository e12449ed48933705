package stay

import "github.com/shopspring/decimal"

// ParseAmount parses a decimal currency amount in major units.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// ExtraCharge is an ad-hoc line added by staff on top of the room rate,
// e.g. minibar or late checkout. Amounts are major currency units.
type ExtraCharge struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Quote is the priced breakdown of a stay. All amounts are exact decimals;
// nothing here has passed through binary floating point.
type Quote struct {
	Nights      int             `json:"nights"`
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	ExtraAmount decimal.Decimal `json:"extraAmount"`
	Total       decimal.Decimal `json:"total"`
}

// GuestTotal is the guest-facing figure, rounded to whole currency units.
func (q Quote) GuestTotal() decimal.Decimal {
	return q.Total.Round(0)
}

// InvoiceTotal is the canonical stored amount, two decimal places.
func (q Quote) InvoiceTotal() decimal.Decimal {
	return q.Total.Round(2)
}

// PriceStay computes nights × rate plus the sum of extra charges. nights
// must already be validated (≥ 1). It fails with ErrNegativeCharge if any
// extra charge carries a negative amount.
func PriceStay(pricePerNight decimal.Decimal, nights int, charges []ExtraCharge) (Quote, error) {
	base := pricePerNight.Mul(decimal.NewFromInt(int64(nights)))
	extra := decimal.Zero
	for _, c := range charges {
		if c.Amount.IsNegative() {
			return Quote{}, ErrNegativeCharge
		}
		extra = extra.Add(c.Amount)
	}
	return Quote{
		Nights:      nights,
		BaseAmount:  base,
		ExtraAmount: extra,
		Total:       base.Add(extra),
	}, nil
}
