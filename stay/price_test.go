package stay

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPriceStay(t *testing.T) {
	tests := []struct {
		name      string
		rate      string
		nights    int
		charges   []ExtraCharge
		wantBase  string
		wantExtra string
		wantTotal string
	}{
		{
			name: "two nights no extras",
			rate: "100", nights: 2,
			wantBase: "200", wantExtra: "0", wantTotal: "200",
		},
		{
			name: "three nights with minibar",
			rate: "80", nights: 3,
			charges:  []ExtraCharge{{Description: "Minibar", Amount: dec("25")}},
			wantBase: "240", wantExtra: "25", wantTotal: "265",
		},
		{
			name: "multiple charges sum exactly",
			rate: "99.99", nights: 3,
			charges: []ExtraCharge{
				{Description: "Late checkout", Amount: dec("19.50")},
				{Description: "Breakfast", Amount: dec("12.75")},
				{Description: "Parking", Amount: dec("0.01")},
			},
			wantBase: "299.97", wantExtra: "32.26", wantTotal: "332.23",
		},
		{
			name: "fractional rate accumulates without drift",
			rate: "0.10", nights: 30,
			wantBase: "3", wantExtra: "0", wantTotal: "3",
		},
		{
			name: "zero-amount charge allowed",
			rate: "50", nights: 1,
			charges:  []ExtraCharge{{Description: "Comp upgrade", Amount: dec("0")}},
			wantBase: "50", wantExtra: "0", wantTotal: "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := PriceStay(dec(tt.rate), tt.nights, tt.charges)
			if err != nil {
				t.Fatalf("PriceStay: %v", err)
			}
			if !quote.BaseAmount.Equal(dec(tt.wantBase)) {
				t.Errorf("BaseAmount = %s, want %s", quote.BaseAmount, tt.wantBase)
			}
			if !quote.ExtraAmount.Equal(dec(tt.wantExtra)) {
				t.Errorf("ExtraAmount = %s, want %s", quote.ExtraAmount, tt.wantExtra)
			}
			if !quote.Total.Equal(dec(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", quote.Total, tt.wantTotal)
			}
			if quote.Nights != tt.nights {
				t.Errorf("Nights = %d, want %d", quote.Nights, tt.nights)
			}
		})
	}
}

func TestPriceStayRejectsNegativeCharge(t *testing.T) {
	_, err := PriceStay(dec("100"), 2, []ExtraCharge{
		{Description: "Refund", Amount: dec("-10")},
	})
	if !errors.Is(err, ErrNegativeCharge) {
		t.Fatalf("got %v, want ErrNegativeCharge", err)
	}
}

func TestPriceLinearInNights(t *testing.T) {
	rate := dec("123.45")
	for nights := 1; nights <= 14; nights++ {
		quote, err := PriceStay(rate, nights, nil)
		if err != nil {
			t.Fatalf("nights=%d: %v", nights, err)
		}
		want := rate.Mul(decimal.NewFromInt(int64(nights)))
		if !quote.Total.Equal(want) {
			t.Errorf("nights=%d: total %s, want %s", nights, quote.Total, want)
		}
	}
}

func TestExtraChargeAddsExactly(t *testing.T) {
	base, err := PriceStay(dec("80"), 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	withCharge, err := PriceStay(dec("80"), 3, []ExtraCharge{
		{Description: "Minibar", Amount: dec("25")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := withCharge.Total.Sub(base.Total); !diff.Equal(dec("25")) {
		t.Errorf("charge of 25 changed total by %s", diff)
	}
}

func TestQuoteRounding(t *testing.T) {
	quote, err := PriceStay(dec("33.335"), 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	// exact total 100.005; invoice keeps 2 dp, guest display rounds to whole units
	if got := quote.InvoiceTotal(); !got.Equal(dec("100.01")) {
		t.Errorf("InvoiceTotal = %s, want 100.01", got)
	}
	if got := quote.GuestTotal(); !got.Equal(dec("100")) {
		t.Errorf("GuestTotal = %s, want 100", got)
	}
}
