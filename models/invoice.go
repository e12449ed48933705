package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Invoice lifecycle. Draft invoices can still be regenerated; issued and
// paid are terminal apart from void.
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	InvoiceNumber string `gorm:"column:invoice_number;uniqueIndex;size:32" json:"invoiceNumber"`
	BookingID     uint   `gorm:"index;column:booking_id" json:"bookingId"`

	IssueDate *time.Time `gorm:"column:issue_date;type:date" json:"issueDate,omitempty"`
	PaidAt    *time.Time `gorm:"column:paid_at" json:"paidAt,omitempty"`

	Status   string          `gorm:"size:32;default:draft" json:"status"`
	Subtotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	// raw extra-charge input as submitted by staff, kept for audit
	ExtraCharges datatypes.JSON `gorm:"column:extra_charges" json:"extraCharges,omitempty"`

	Items   []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
	Booking Booking       `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}

type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"index;column:invoice_id" json:"invoiceId"`

	Description string          `gorm:"size:255" json:"description"`
	Quantity    int             `gorm:"default:1" json:"quantity"`
	UnitAmount  decimal.Decimal `gorm:"column:unit_amount;type:decimal(10,2)" json:"unitAmount"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
}
