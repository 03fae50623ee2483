package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BusinessType classifies the tenant's line of business. It decides which
// booking fields the UI shows, but the engine itself only reads it for
// diagnostics.
type BusinessType string

const (
	BusinessTypeSalon       BusinessType = "salon"
	BusinessTypeHomeService BusinessType = "home_service"
	BusinessTypeRestaurant  BusinessType = "restaurant"
	BusinessTypeHotel       BusinessType = "hotel"
)

// IsValid checks if the BusinessType is a valid enum value
func (bt BusinessType) IsValid() bool {
	switch bt {
	case BusinessTypeSalon, BusinessTypeHomeService, BusinessTypeRestaurant, BusinessTypeHotel:
		return true
	}
	return false
}

// PricingMode selects which arithmetic branch prices a line item
type PricingMode string

const (
	PricingModeFixed   PricingMode = "fixed"
	PricingModeHourly  PricingMode = "hourly"
	PricingModeDaily   PricingMode = "daily"
	PricingModePackage PricingMode = "package"
)

// IsValid checks if the PricingMode is a valid enum value
func (pm PricingMode) IsValid() bool {
	switch pm {
	case PricingModeFixed, PricingModeHourly, PricingModeDaily, PricingModePackage:
		return true
	}
	return false
}

// Service represents a bookable service in the catalog. All monetary amounts
// are stored in minor currency units (cents/øre).
type Service struct {
	BaseModel
	Name            string      `gorm:"type:varchar(200);not null;index"`
	Description     string      `gorm:"type:text"`
	Category        string      `gorm:"type:varchar(100);index"`
	UnitPrice       int64       `gorm:"not null;default:0;column:unit_price"`
	DurationMinutes int         `gorm:"not null;default:0;column:duration_minutes"`
	PricingMode     PricingMode `gorm:"type:varchar(20);not null;default:'fixed';column:pricing_mode"`
	HourlyRate      int64       `gorm:"not null;default:0;column:hourly_rate"`
	DailyRate       int64       `gorm:"not null;default:0;column:daily_rate"`
	IsActive        bool        `gorm:"not null;default:true;column:is_active;index"`
}

// StaffMember represents a bookable member of the roster. The engine never
// mutates staff, it only reads them and caches display names on assignments.
type StaffMember struct {
	BaseModel
	FirstName string         `gorm:"type:varchar(100);not null;column:first_name"`
	LastName  string         `gorm:"type:varchar(100);not null;column:last_name"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex"`
	Phone     string         `gorm:"type:varchar(50)"`
	Role      string         `gorm:"type:varchar(100)"`
	Skills    pq.StringArray `gorm:"type:text[]"`
	IsActive  bool           `gorm:"not null;default:true;column:is_active;index"`
}

// FullName returns the staff member's display name
func (s *StaffMember) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Client is a person the tenant has quoted or booked before. A quote for an
// existing client references this row; a quote for a new client carries the
// typed-in details inline and a row is created at submission.
type Client struct {
	BaseModel
	FirstName string `gorm:"type:varchar(100);not null;column:first_name"`
	LastName  string `gorm:"type:varchar(100);not null;column:last_name"`
	Email     string `gorm:"type:varchar(255);index"`
	Phone     string `gorm:"type:varchar(50);index"`
	Notes     string `gorm:"type:text"`
}

// FullName returns the client's display name
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// QuoteStatus represents the lifecycle state of a submitted quote
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusDeclined  QuoteStatus = "declined"
	QuoteStatusExpired   QuoteStatus = "expired"
)

// IsValid checks if the QuoteStatus is a valid enum value
func (qs QuoteStatus) IsValid() bool {
	switch qs {
	case QuoteStatusPending, QuoteStatusConfirmed, QuoteStatusDeclined, QuoteStatusExpired:
		return true
	}
	return false
}

// DiscountMode represents how a booking-level discount is applied
type DiscountMode string

const (
	DiscountModeNone       DiscountMode = "none"
	DiscountModePercentage DiscountMode = "percentage"
	DiscountModeFixed      DiscountMode = "fixed_amount"
)

// IsValid checks if the DiscountMode is a valid enum value
func (dm DiscountMode) IsValid() bool {
	switch dm {
	case DiscountModeNone, DiscountModePercentage, DiscountModeFixed:
		return true
	}
	return false
}

// ClientKind distinguishes a quote for an existing client from one typed in
// free-form for a new client.
type ClientKind string

const (
	ClientKindExisting ClientKind = "existing"
	ClientKindNew      ClientKind = "new"
)

// Quote is a submitted, persisted quote. The engine computes the totals
// columns, but once stored this row is the authority of record.
//
// Dates are stored as "2006-01-02" strings and times of day as "15:04"
// strings, matching the wire format the engine computes with.
type Quote struct {
	BaseModel
	QuoteNumber  string      `gorm:"type:varchar(50);unique;index;column:quote_number"`
	Status       QuoteStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	BusinessType BusinessType `gorm:"type:varchar(20);not null;column:business_type"`
	PricingMode  PricingMode `gorm:"type:varchar(20);not null;column:pricing_mode"`

	StartDate       string `gorm:"type:varchar(10);not null;column:start_date"`
	StartTime       string `gorm:"type:varchar(5);column:start_time"`
	EndDate         string `gorm:"type:varchar(10);column:end_date"`
	EndTime         string `gorm:"type:varchar(5);column:end_time"`
	OnSite          bool   `gorm:"not null;default:false;column:on_site"`
	TravelFee       int64  `gorm:"not null;default:0;column:travel_fee"`
	RequestedAgents int    `gorm:"not null;default:0;column:requested_agents"`

	ClientKind      ClientKind `gorm:"type:varchar(20);not null;default:'existing';column:client_kind"`
	ClientID        *uuid.UUID `gorm:"type:uuid;index;column:client_id"`
	ClientFirstName string     `gorm:"type:varchar(100);column:client_first_name"`
	ClientLastName  string     `gorm:"type:varchar(100);column:client_last_name"`
	ClientPhone     string     `gorm:"type:varchar(50);column:client_phone"`
	ClientEmail     string     `gorm:"type:varchar(255);column:client_email"`

	DiscountMode   DiscountMode `gorm:"type:varchar(20);not null;default:'none';column:discount_mode"`
	DiscountValue  int64        `gorm:"not null;default:0;column:discount_value"`
	DiscountReason string       `gorm:"type:varchar(500);column:discount_reason"`

	Subtotal             int64   `gorm:"not null;default:0"`
	DurationTotalMinutes int     `gorm:"not null;default:0;column:duration_total_minutes"`
	TravelFeeAmount      int64   `gorm:"not null;default:0;column:travel_fee_amount"`
	DiscountAmount       int64   `gorm:"not null;default:0;column:discount_amount"`
	NetAmount            int64   `gorm:"not null;default:0;column:net_amount"`
	TaxRate              float64 `gorm:"type:decimal(5,4);not null;default:0.20;column:tax_rate"`
	TaxAmount            int64   `gorm:"not null;default:0;column:tax_amount"`
	GrandTotal           int64   `gorm:"not null;default:0;column:grand_total"`

	ValidUntil *time.Time `gorm:"type:date;column:valid_until"`
	Notes      string     `gorm:"type:text"`

	LineItems   []QuoteLineItem   `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	Attachments []QuoteAttachment `gorm:"foreignKey:QuoteID"`
}

// QuoteLineItem is one selected service within a quote, at a given quantity,
// with the pricing fields snapshotted from the catalog at selection time so
// later catalog edits never alter a stored quote.
type QuoteLineItem struct {
	BaseModel
	QuoteID         uuid.UUID   `gorm:"type:uuid;not null;index;column:quote_id"`
	ServiceID       uuid.UUID   `gorm:"type:uuid;not null;index;column:service_id"`
	ServiceName     string      `gorm:"type:varchar(200);not null;column:service_name"`
	UnitPrice       int64       `gorm:"not null;default:0;column:unit_price"`
	DurationMinutes int         `gorm:"not null;default:0;column:duration_minutes"`
	PricingMode     PricingMode `gorm:"type:varchar(20);not null;column:pricing_mode"`
	HourlyRate      int64       `gorm:"not null;default:0;column:hourly_rate"`
	DailyRate       int64       `gorm:"not null;default:0;column:daily_rate"`
	Quantity        int         `gorm:"not null;default:1"`
	Amount          int64       `gorm:"not null;default:0"`
	Position        int         `gorm:"not null;default:0"`

	Assignments []QuoteAssignment `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

// QuoteAssignment binds one unit of a line item's quantity to an optional
// staff member and optional time window. StaffName is cached from the roster
// at assignment time.
type QuoteAssignment struct {
	BaseModel
	LineItemID uuid.UUID  `gorm:"type:uuid;not null;index;column:line_item_id"`
	UnitIndex  int        `gorm:"not null;default:0;column:unit_index"`
	StaffID    *uuid.UUID `gorm:"type:uuid;index;column:staff_id"`
	StaffName  string     `gorm:"type:varchar(200);column:staff_name"`
	StartTime  string     `gorm:"type:varchar(5);column:start_time"`
	EndTime    string     `gorm:"type:varchar(5);column:end_time"`
}

// NumberSequence hands out quote numbers per year. Rows are locked on
// increment so two concurrent submissions never share a number.
type NumberSequence struct {
	Year         int `gorm:"primaryKey"`
	LastSequence int `gorm:"not null;default:0;column:last_sequence"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// QuoteAttachment represents a file uploaded against a submitted quote
// (site photos, floor plans, written specs).
type QuoteAttachment struct {
	BaseModel
	QuoteID     uuid.UUID `gorm:"type:uuid;not null;index;column:quote_id"`
	Filename    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null;column:content_type"`
	Size        int64     `gorm:"not null"`
	StoragePath string    `gorm:"type:varchar(500);not null;unique;column:storage_path"`
}
