package services

import (
	"errors"
	"testing"

	"moonlight-backend/models"
	"moonlight-backend/stay"
)

func TestBuildInvoiceLines(t *testing.T) {
	room := models.Room{RoomNumber: "204", PricePerNight: dec("80.00")}
	booking := models.Booking{Nights: 3}
	charges := []stay.ExtraCharge{
		{Description: "Minibar", Amount: dec("25")},
		{Description: "Late checkout", Amount: dec("19.50")},
	}

	items, quote, err := BuildInvoiceLines(booking, room, charges)
	if err != nil {
		t.Fatalf("BuildInvoiceLines: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].Quantity != 3 || !items[0].Amount.Equal(dec("240")) {
		t.Errorf("room line = %+v, want qty 3 amount 240", items[0])
	}
	if items[1].Description != "Minibar" || !items[1].Amount.Equal(dec("25")) {
		t.Errorf("minibar line = %+v", items[1])
	}
	if items[2].Description != "Late checkout" || !items[2].Amount.Equal(dec("19.50")) {
		t.Errorf("late checkout line = %+v", items[2])
	}

	if !quote.BaseAmount.Equal(dec("240")) {
		t.Errorf("BaseAmount = %s, want 240", quote.BaseAmount)
	}
	if !quote.InvoiceTotal().Equal(dec("284.50")) {
		t.Errorf("InvoiceTotal = %s, want 284.50", quote.InvoiceTotal())
	}

	// line items must reconcile to the invoice total
	sum := dec("0")
	for _, item := range items {
		sum = sum.Add(item.Amount)
	}
	if !sum.Equal(quote.Total) {
		t.Errorf("line sum %s != quote total %s", sum, quote.Total)
	}
}

func TestBuildInvoiceLinesNoCharges(t *testing.T) {
	room := models.Room{RoomNumber: "101", PricePerNight: dec("100")}
	booking := models.Booking{Nights: 2}

	items, quote, err := BuildInvoiceLines(booking, room, nil)
	if err != nil {
		t.Fatalf("BuildInvoiceLines: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !quote.InvoiceTotal().Equal(dec("200.00")) {
		t.Errorf("InvoiceTotal = %s, want 200.00", quote.InvoiceTotal())
	}
}

func TestBuildInvoiceLinesRejectsNegativeCharge(t *testing.T) {
	room := models.Room{RoomNumber: "101", PricePerNight: dec("100")}
	booking := models.Booking{Nights: 2}

	_, _, err := BuildInvoiceLines(booking, room, []stay.ExtraCharge{
		{Description: "Discount", Amount: dec("-5")},
	})
	if !errors.Is(err, stay.ErrNegativeCharge) {
		t.Fatalf("got %v, want ErrNegativeCharge", err)
	}
}
