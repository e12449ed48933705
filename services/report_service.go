package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moonlight-backend/models"
	"moonlight-backend/stay"
)

var ErrEmptyWindow = errors.New("report window must span at least one day")

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// RevenueRow is one day of billed revenue.
type RevenueRow struct {
	Day      string          `json:"day"`
	Amount   decimal.Decimal `json:"amount"`
	Invoices int             `json:"invoices"`
}

// RevenueSummary totals issued and paid invoices over a window.
type RevenueSummary struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Total decimal.Decimal `json:"total"`
	Days  []RevenueRow    `json:"days"`
}

// SummarizeRevenue groups invoices by issue date and sums with exact decimal
// arithmetic. Pure over the supplied rows; draft and void invoices are
// ignored, as are invoices without an issue date.
func SummarizeRevenue(invoices []models.Invoice, from, to stay.Date) RevenueSummary {
	byDay := map[string]*RevenueRow{}
	total := decimal.Zero

	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusIssued && inv.Status != models.InvoiceStatusPaid {
			continue
		}
		if inv.IssueDate == nil {
			continue
		}
		day := stay.DateOf(*inv.IssueDate)
		if day.Before(from) || !day.Before(to) {
			continue
		}

		key := day.String()
		row, ok := byDay[key]
		if !ok {
			row = &RevenueRow{Day: key, Amount: decimal.Zero}
			byDay[key] = row
		}
		row.Amount = row.Amount.Add(inv.Total)
		row.Invoices++
		total = total.Add(inv.Total)
	}

	days := make([]RevenueRow, 0, len(byDay))
	for _, row := range byDay {
		days = append(days, *row)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	return RevenueSummary{From: from.String(), To: to.String(), Total: total, Days: days}
}

// OccupancyReport relates occupied room-nights to the room-nights on offer
// over a half-open window.
type OccupancyReport struct {
	From            string          `json:"from"`
	To              string          `json:"to"`
	RoomCount       int             `json:"roomCount"`
	OccupiedNights  int             `json:"occupiedNights"`
	AvailableNights int             `json:"availableNights"`
	Rate            decimal.Decimal `json:"rate"` // 0..1, 4 dp
}

// ComputeOccupancy clips each blocking booking to [from, to) and counts the
// nights. Pure; fails with ErrEmptyWindow when to is not after from.
func ComputeOccupancy(bookings []stay.Booking, roomCount int, from, to stay.Date) (OccupancyReport, error) {
	windowNights, err := stay.DaysBetween(from, to)
	if err != nil {
		return OccupancyReport{}, ErrEmptyWindow
	}

	occupied := 0
	for _, b := range bookings {
		if !b.Status.Blocks() && b.Status != stay.StatusCheckedOut {
			// cancelled stays never happened; checked-out stays still count
			// as occupancy for the nights they covered
			continue
		}
		start, end := b.CheckIn, b.CheckOut
		if start.Before(from) {
			start = from
		}
		if to.Before(end) {
			end = to
		}
		if !end.After(start) {
			continue
		}
		nights, err := stay.DaysBetween(start, end)
		if err != nil {
			continue
		}
		occupied += nights
	}

	available := roomCount * windowNights
	rate := decimal.Zero
	if available > 0 {
		rate = decimal.NewFromInt(int64(occupied)).
			Div(decimal.NewFromInt(int64(available))).
			Round(4)
	}

	return OccupancyReport{
		From:            from.String(),
		To:              to.String(),
		RoomCount:       roomCount,
		OccupiedNights:  occupied,
		AvailableNights: available,
		Rate:            rate,
	}, nil
}

// BookingBreakdown counts bookings per status.
func BookingBreakdown(bookings []models.Booking) map[string]int {
	out := map[string]int{}
	for _, b := range bookings {
		out[b.Status]++
	}
	return out
}

func (s *ReportService) Revenue(from, to stay.Date) (RevenueSummary, error) {
	if !to.After(from) {
		return RevenueSummary{}, ErrEmptyWindow
	}
	var invoices []models.Invoice
	err := s.DB.
		Where("status IN ? AND issue_date >= ? AND issue_date < ?",
			[]string{models.InvoiceStatusIssued, models.InvoiceStatusPaid},
			from.Time(time.UTC), to.Time(time.UTC)).
		Find(&invoices).Error
	if err != nil {
		return RevenueSummary{}, fmt.Errorf("failed to load invoices: %w", err)
	}
	return SummarizeRevenue(invoices, from, to), nil
}

func (s *ReportService) Occupancy(from, to stay.Date) (OccupancyReport, error) {
	if !to.After(from) {
		return OccupancyReport{}, ErrEmptyWindow
	}

	var roomCount int64
	if err := s.DB.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return OccupancyReport{}, fmt.Errorf("failed to count rooms: %w", err)
	}

	var bookings []models.Booking
	err := s.DB.
		Where("status <> ? AND check_out_date > ? AND check_in_date < ?",
			string(stay.StatusCancelled), from.Time(time.UTC), to.Time(time.UTC)).
		Find(&bookings).Error
	if err != nil {
		return OccupancyReport{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	return ComputeOccupancy(toStayBookings(bookings), int(roomCount), from, to)
}

func (s *ReportService) Bookings(from, to stay.Date) (map[string]int, error) {
	if !to.After(from) {
		return nil, ErrEmptyWindow
	}
	var bookings []models.Booking
	err := s.DB.
		Where("check_out_date > ? AND check_in_date < ?", from.Time(time.UTC), to.Time(time.UTC)).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return BookingBreakdown(bookings), nil
}
