package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moonlight-backend/models"
	"moonlight-backend/stay"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarizeRevenue(t *testing.T) {
	from := stay.Date{Year: 2024, Month: time.June, Day: 1}
	to := stay.Date{Year: 2024, Month: time.July, Day: 1}

	invoices := []models.Invoice{
		{Status: models.InvoiceStatusIssued, IssueDate: day(2024, time.June, 10), Total: dec("200.00")},
		{Status: models.InvoiceStatusPaid, IssueDate: day(2024, time.June, 10), Total: dec("99.99")},
		{Status: models.InvoiceStatusPaid, IssueDate: day(2024, time.June, 12), Total: dec("150.01")},
		// ignored: draft, void, no issue date, outside window
		{Status: models.InvoiceStatusDraft, IssueDate: day(2024, time.June, 11), Total: dec("500")},
		{Status: models.InvoiceStatusVoid, IssueDate: day(2024, time.June, 11), Total: dec("500")},
		{Status: models.InvoiceStatusIssued, Total: dec("500")},
		{Status: models.InvoiceStatusIssued, IssueDate: day(2024, time.July, 1), Total: dec("500")},
		{Status: models.InvoiceStatusIssued, IssueDate: day(2024, time.May, 31), Total: dec("500")},
	}

	summary := SummarizeRevenue(invoices, from, to)

	if !summary.Total.Equal(dec("450.00")) {
		t.Errorf("Total = %s, want 450.00", summary.Total)
	}
	if len(summary.Days) != 2 {
		t.Fatalf("got %d day rows, want 2: %+v", len(summary.Days), summary.Days)
	}
	if summary.Days[0].Day != "2024-06-10" || !summary.Days[0].Amount.Equal(dec("299.99")) || summary.Days[0].Invoices != 2 {
		t.Errorf("day[0] = %+v, want 2024-06-10 / 299.99 / 2", summary.Days[0])
	}
	if summary.Days[1].Day != "2024-06-12" || !summary.Days[1].Amount.Equal(dec("150.01")) {
		t.Errorf("day[1] = %+v, want 2024-06-12 / 150.01", summary.Days[1])
	}
}

func TestSummarizeRevenueEmpty(t *testing.T) {
	from := stay.Date{Year: 2024, Month: time.June, Day: 1}
	to := stay.Date{Year: 2024, Month: time.June, Day: 30}
	summary := SummarizeRevenue(nil, from, to)
	if !summary.Total.IsZero() || len(summary.Days) != 0 {
		t.Errorf("empty input should yield zero summary, got %+v", summary)
	}
}

func stayBooking(checkIn, checkOut string, status stay.BookingStatus) stay.Booking {
	ci, err := stay.ParseDate(checkIn)
	if err != nil {
		panic(err)
	}
	co, err := stay.ParseDate(checkOut)
	if err != nil {
		panic(err)
	}
	return stay.Booking{CheckIn: ci, CheckOut: co, Status: status}
}

func TestComputeOccupancy(t *testing.T) {
	from := stay.Date{Year: 2024, Month: time.June, Day: 1}
	to := stay.Date{Year: 2024, Month: time.June, Day: 11} // 10 nights

	bookings := []stay.Booking{
		stayBooking("2024-06-01", "2024-06-04", stay.StatusCheckedOut), // 3 nights
		stayBooking("2024-06-05", "2024-06-08", stay.StatusConfirmed),  // 3 nights
		stayBooking("2024-05-28", "2024-06-03", stay.StatusCheckedIn),  // clipped to 2
		stayBooking("2024-06-09", "2024-06-20", stay.StatusPending),    // clipped to 2
		stayBooking("2024-06-02", "2024-06-06", stay.StatusCancelled),  // ignored
		stayBooking("2024-07-01", "2024-07-05", stay.StatusConfirmed),  // outside window
	}

	report, err := ComputeOccupancy(bookings, 2, from, to)
	if err != nil {
		t.Fatalf("ComputeOccupancy: %v", err)
	}
	if report.OccupiedNights != 10 {
		t.Errorf("OccupiedNights = %d, want 10", report.OccupiedNights)
	}
	if report.AvailableNights != 20 {
		t.Errorf("AvailableNights = %d, want 20", report.AvailableNights)
	}
	if !report.Rate.Equal(dec("0.5")) {
		t.Errorf("Rate = %s, want 0.5", report.Rate)
	}
}

func TestComputeOccupancyNoRooms(t *testing.T) {
	from := stay.Date{Year: 2024, Month: time.June, Day: 1}
	to := stay.Date{Year: 2024, Month: time.June, Day: 2}
	report, err := ComputeOccupancy(nil, 0, from, to)
	if err != nil {
		t.Fatalf("ComputeOccupancy: %v", err)
	}
	if !report.Rate.IsZero() {
		t.Errorf("Rate with zero rooms = %s, want 0", report.Rate)
	}
}

func TestComputeOccupancyEmptyWindow(t *testing.T) {
	d := stay.Date{Year: 2024, Month: time.June, Day: 1}
	if _, err := ComputeOccupancy(nil, 1, d, d); err != ErrEmptyWindow {
		t.Fatalf("got %v, want ErrEmptyWindow", err)
	}
}

func TestBookingBreakdown(t *testing.T) {
	bookings := []models.Booking{
		{Status: string(stay.StatusPending)},
		{Status: string(stay.StatusConfirmed)},
		{Status: string(stay.StatusConfirmed)},
		{Status: string(stay.StatusCancelled)},
	}
	got := BookingBreakdown(bookings)
	want := map[string]int{"pending": 1, "confirmed": 2, "cancelled": 1}
	for status, count := range want {
		if got[status] != count {
			t.Errorf("breakdown[%s] = %d, want %d", status, got[status], count)
		}
	}
	if len(got) != len(want) {
		t.Errorf("breakdown has %d statuses, want %d: %+v", len(got), len(want), got)
	}
}
