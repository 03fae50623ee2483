// Package quote implements the quote and resource-assignment engine: the
// pricing arithmetic, the per-unit staff assignment ledger and the session
// orchestration used by both the booking-creation and sales-pipeline flows.
//
// The package is a pure computation layer. It reads a service catalog and a
// staff roster, consults an availability oracle through the Gate interface,
// and produces totals and a submission payload. It never touches storage.
package quote

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bookwell/booking-api/internal/domain"
)

// Engine errors
var (
	// ErrServiceNotFound is returned when a service id is not in the catalog
	ErrServiceNotFound = errors.New("service not found in catalog")

	// ErrLineItemNotFound is returned when a ledger operation targets a
	// service with no line item in the quote
	ErrLineItemNotFound = errors.New("line item not found")

	// ErrUnitIndexOutOfRange is returned when an assignment update targets a
	// unit index outside the line item's quantity
	ErrUnitIndexOutOfRange = errors.New("assignment unit index out of range")

	// ErrStaffNotFound is returned when a staff id is not in the roster
	ErrStaffNotFound = errors.New("staff member not found in roster")
)

// Config carries the tenant-level pricing regime. It is passed explicitly to
// the session and the calculator instead of being read from ambient state.
type Config struct {
	Mode         domain.PricingMode
	TaxRate      float64
	BusinessType domain.BusinessType
}

// DefaultTaxRate is the flat rate applied when Config.TaxRate is zero.
const DefaultTaxRate = 0.20

// LineItem is one selected service at a given quantity. The pricing fields
// are snapshotted from the catalog when the service is first added, so
// catalog edits never retroactively change an open quote.
type LineItem struct {
	ServiceID       uuid.UUID
	Name            string
	UnitPrice       int64
	DurationMinutes int
	PricingMode     domain.PricingMode
	HourlyRate      int64
	DailyRate       int64
	Quantity        int
	Assignments     []Assignment
}

// Assignment binds one unit of a line item's quantity to an optional staff
// member and an optional time window. The staff display name is cached from
// the roster so the payload carries it without another lookup.
type Assignment struct {
	UnitIndex int
	StaffID   *uuid.UUID
	StaffName string
	StartTime string
	EndTime   string

	// endEdited is set once the end time has been typed directly; after
	// that, start-time edits stop recomputing the end.
	endEdited bool
}

// HasWindow reports whether both start and end time are set
func (a *Assignment) HasWindow() bool {
	return a.StartTime != "" && a.EndTime != ""
}

// Booking holds the booking-level scheduling fields. Dates use the
// "2006-01-02" format and times of day "15:04". TravelFee is entered in
// major currency units and converted to minor units by the calculator.
type Booking struct {
	StartDate       string
	StartTime       string
	EndDate         string
	EndTime         string
	OnSite          bool
	TravelFee       int64
	RequestedAgents int
}

// Discount applies once at the booking level. For percentage mode Value is
// the percentage, for fixed mode Value is a major-unit amount. Non-positive
// values mean no discount; they are never an error.
type Discount struct {
	Mode   domain.DiscountMode
	Value  int64
	Reason string
}

// LineTotal is the priced amount of a single line item
type LineTotal struct {
	ServiceID uuid.UUID
	Amount    int64
}

// Totals is the derived monetary and duration summary of a quote. It is
// recomputed from the current line items and booking fields on every read
// and is never stored by the engine. All amounts are minor currency units.
type Totals struct {
	Subtotal             int64       `json:"subtotal"`
	DurationTotalMinutes int         `json:"durationTotalMinutes"`
	TravelFee            int64       `json:"travelFee"`
	DiscountAmount       int64       `json:"discountAmount"`
	NetAmount            int64       `json:"netAmount"`
	TaxRate              float64     `json:"taxRate"`
	TaxAmount            int64       `json:"taxAmount"`
	GrandTotal           int64       `json:"grandTotal"`
	AgentCount           int         `json:"agentCount"`
	DayCount             int         `json:"dayCount"`
	AvgHoursPerAgent     float64     `json:"avgHoursPerAgent"`
	Lines                []LineTotal `json:"-"`

	// NeedsTimeEntry lists hourly-mode services with at least one unit
	// missing a complete time window. Those units price at zero; the UI is
	// expected to flag them rather than the calculator rejecting the quote.
	NeedsTimeEntry []uuid.UUID `json:"needsTimeEntry,omitempty"`
}

// BusyStaff is a roster member that cannot take the requested window,
// annotated with the oracle's reason (conflicting booking, not on shift).
type BusyStaff struct {
	domain.StaffMember
	Reason string `json:"reason"`
}

// Partition is the advisory available/busy split returned by the
// availability oracle for a requested window.
type Partition struct {
	Available []domain.StaffMember `json:"available"`
	Busy      []BusyStaff          `json:"busy"`
}

// Gate is the consumed availability-oracle contract. Implementations query
// an external scheduling service; the session treats any error as
// "whole roster available" (fail-open) and never blocks a mutation on it.
type Gate interface {
	Query(ctx context.Context, date, startTime string, durationMinutes int) (*Partition, error)
}
