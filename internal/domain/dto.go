package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses. All monetary amounts are minor currency units.

type ServiceDTO struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Category        string      `json:"category,omitempty"`
	UnitPrice       int64       `json:"unitPrice"`
	DurationMinutes int         `json:"durationMinutes"`
	PricingMode     PricingMode `json:"pricingMode"`
	HourlyRate      int64       `json:"hourlyRate"`
	DailyRate       int64       `json:"dailyRate"`
	IsActive        bool        `json:"isActive"`
	CreatedAt       string      `json:"createdAt"` // ISO 8601
	UpdatedAt       string      `json:"updatedAt"` // ISO 8601
}

type StaffMemberDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"` // ISO 8601
}

// BusyStaffDTO is a roster member the availability oracle reports as unable
// to take the requested window.
type BusyStaffDTO struct {
	StaffMemberDTO
	Reason string `json:"reason,omitempty"`
}

// AvailabilityDTO is the advisory available/busy roster split for the
// session's current booking window.
type AvailabilityDTO struct {
	Available []StaffMemberDTO `json:"available"`
	Busy      []BusyStaffDTO   `json:"busy"`
}

type ClientDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt string    `json:"createdAt"` // ISO 8601
}

type AssignmentDTO struct {
	UnitIndex int        `json:"unitIndex"`
	StaffID   *uuid.UUID `json:"staffId,omitempty"`
	StaffName string     `json:"staffName,omitempty"`
	StartTime string     `json:"startTime,omitempty"`
	EndTime   string     `json:"endTime,omitempty"`
}

type LineItemDTO struct {
	ServiceID       uuid.UUID       `json:"serviceId"`
	Name            string          `json:"name"`
	UnitPrice       int64           `json:"unitPrice"`
	DurationMinutes int             `json:"durationMinutes"`
	PricingMode     PricingMode     `json:"pricingMode"`
	HourlyRate      int64           `json:"hourlyRate"`
	DailyRate       int64           `json:"dailyRate"`
	Quantity        int             `json:"quantity"`
	Amount          int64           `json:"amount"`
	Assignments     []AssignmentDTO `json:"assignments"`
}

type BookingDTO struct {
	StartDate       string `json:"startDate,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	OnSite          bool   `json:"onSite"`
	TravelFee       int64  `json:"travelFee"`
	RequestedAgents int    `json:"requestedAgents,omitempty"`
}

type DiscountDTO struct {
	Mode   DiscountMode `json:"mode"`
	Value  int64        `json:"value"`
	Reason string       `json:"reason,omitempty"`
}

type TotalsDTO struct {
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
	NeedsTimeEntry       []uuid.UUID `json:"needsTimeEntry,omitempty"`
}

type SessionClientDTO struct {
	Kind      ClientKind `json:"kind"`
	ClientID  *uuid.UUID `json:"clientId,omitempty"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
}

// SessionDTO is the full state of an in-progress quote session
type SessionDTO struct {
	ID        uuid.UUID        `json:"id"`
	LineItems []LineItemDTO    `json:"lineItems"`
	Booking   BookingDTO       `json:"booking"`
	Discount  DiscountDTO      `json:"discount"`
	Client    SessionClientDTO `json:"client"`
	Totals    TotalsDTO        `json:"totals"`
}

type QuoteAssignmentDTO struct {
	ID        uuid.UUID  `json:"id"`
	UnitIndex int        `json:"unitIndex"`
	StaffID   *uuid.UUID `json:"staffId,omitempty"`
	StaffName string     `json:"staffName,omitempty"`
	StartTime string     `json:"startTime,omitempty"`
	EndTime   string     `json:"endTime,omitempty"`
}

type QuoteLineItemDTO struct {
	ID              uuid.UUID            `json:"id"`
	ServiceID       uuid.UUID            `json:"serviceId"`
	ServiceName     string               `json:"serviceName"`
	UnitPrice       int64                `json:"unitPrice"`
	DurationMinutes int                  `json:"durationMinutes"`
	PricingMode     PricingMode          `json:"pricingMode"`
	HourlyRate      int64                `json:"hourlyRate"`
	DailyRate       int64                `json:"dailyRate"`
	Quantity        int                  `json:"quantity"`
	Amount          int64                `json:"amount"`
	Position        int                  `json:"position"`
	Assignments     []QuoteAssignmentDTO `json:"assignments"`
}

type QuoteAttachmentDTO struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   string    `json:"createdAt"` // ISO 8601
}

type QuoteDTO struct {
	ID           uuid.UUID    `json:"id"`
	QuoteNumber  string       `json:"quoteNumber"`
	Status       QuoteStatus  `json:"status"`
	BusinessType BusinessType `json:"businessType"`
	PricingMode  PricingMode  `json:"pricingMode"`

	StartDate       string `json:"startDate"`
	StartTime       string `json:"startTime,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	OnSite          bool   `json:"onSite"`
	RequestedAgents int    `json:"requestedAgents,omitempty"`

	ClientKind      ClientKind `json:"clientKind"`
	ClientID        *uuid.UUID `json:"clientId,omitempty"`
	ClientName      string     `json:"clientName,omitempty"`
	ClientPhone     string     `json:"clientPhone,omitempty"`
	ClientEmail     string     `json:"clientEmail,omitempty"`

	DiscountMode   DiscountMode `json:"discountMode"`
	DiscountValue  int64        `json:"discountValue"`
	DiscountReason string       `json:"discountReason,omitempty"`

	Subtotal             int64   `json:"subtotal"`
	DurationTotalMinutes int     `json:"durationTotalMinutes"`
	TravelFeeAmount      int64   `json:"travelFeeAmount"`
	DiscountAmount       int64   `json:"discountAmount"`
	NetAmount            int64   `json:"netAmount"`
	TaxRate              float64 `json:"taxRate"`
	TaxAmount            int64   `json:"taxAmount"`
	GrandTotal           int64   `json:"grandTotal"`

	ValidUntil  string               `json:"validUntil,omitempty"` // ISO 8601 date
	Notes       string               `json:"notes,omitempty"`
	LineItems   []QuoteLineItemDTO   `json:"lineItems,omitempty"`
	Attachments []QuoteAttachmentDTO `json:"attachments,omitempty"`
	CreatedAt   string               `json:"createdAt"` // ISO 8601
	UpdatedAt   string               `json:"updatedAt"` // ISO 8601
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// API Response wrapper
type APIResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
}

// Request DTOs

type CreateServiceRequest struct {
	Name            string      `json:"name" validate:"required,max=200"`
	Description     string      `json:"description,omitempty" validate:"max=2000"`
	Category        string      `json:"category,omitempty" validate:"max=100"`
	UnitPrice       int64       `json:"unitPrice" validate:"gte=0"`
	DurationMinutes int         `json:"durationMinutes" validate:"gte=0"`
	PricingMode     PricingMode `json:"pricingMode,omitempty"`
	HourlyRate      int64       `json:"hourlyRate" validate:"gte=0"`
	DailyRate       int64       `json:"dailyRate" validate:"gte=0"`
	IsActive        *bool       `json:"isActive,omitempty"`
}

type UpdateServiceRequest struct {
	Name            string      `json:"name" validate:"required,max=200"`
	Description     string      `json:"description,omitempty" validate:"max=2000"`
	Category        string      `json:"category,omitempty" validate:"max=100"`
	UnitPrice       int64       `json:"unitPrice" validate:"gte=0"`
	DurationMinutes int         `json:"durationMinutes" validate:"gte=0"`
	PricingMode     PricingMode `json:"pricingMode" validate:"required"`
	HourlyRate      int64       `json:"hourlyRate" validate:"gte=0"`
	DailyRate       int64       `json:"dailyRate" validate:"gte=0"`
	IsActive        bool        `json:"isActive"`
}

type CreateStaffRequest struct {
	FirstName string   `json:"firstName" validate:"required,max=100"`
	LastName  string   `json:"lastName" validate:"required,max=100"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string   `json:"phone,omitempty" validate:"max=50"`
	Role      string   `json:"role,omitempty" validate:"max=100"`
	Skills    []string `json:"skills,omitempty"`
}

type UpdateStaffRequest struct {
	FirstName string   `json:"firstName" validate:"required,max=100"`
	LastName  string   `json:"lastName" validate:"required,max=100"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string   `json:"phone,omitempty" validate:"max=50"`
	Role      string   `json:"role,omitempty" validate:"max=100"`
	Skills    []string `json:"skills,omitempty"`
	IsActive  bool     `json:"isActive"`
}

type CreateClientRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"max=50"`
	Notes     string `json:"notes,omitempty" validate:"max=2000"`
}

// CreateSessionRequest opens a new quote session. Pricing fields are
// optional; unset fields fall back to the tenant defaults from config.
type CreateSessionRequest struct {
	PricingMode  PricingMode  `json:"pricingMode,omitempty"`
	BusinessType BusinessType `json:"businessType,omitempty"`
}

type AddLineItemRequest struct {
	ServiceID uuid.UUID `json:"serviceId" validate:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type AssignStaffRequest struct {
	UnitIndex int        `json:"unitIndex" validate:"gte=0"`
	StaffID   *uuid.UUID `json:"staffId,omitempty"`
}

type SetAssignmentTimeRequest struct {
	UnitIndex int    `json:"unitIndex" validate:"gte=0"`
	Time      string `json:"time" validate:"required,max=5"`
}

// UpdateBookingRequest patches booking fields. Nil pointers leave the
// current value untouched.
type UpdateBookingRequest struct {
	StartDate       *string `json:"startDate,omitempty" validate:"omitempty,max=10"`
	StartTime       *string `json:"startTime,omitempty" validate:"omitempty,max=5"`
	EndDate         *string `json:"endDate,omitempty" validate:"omitempty,max=10"`
	EndTime         *string `json:"endTime,omitempty" validate:"omitempty,max=5"`
	OnSite          *bool   `json:"onSite,omitempty"`
	TravelFee       *int64  `json:"travelFee,omitempty" validate:"omitempty,gte=0"`
	RequestedAgents *int    `json:"requestedAgents,omitempty" validate:"omitempty,gte=0"`
}

type SetDiscountRequest struct {
	Mode   DiscountMode `json:"mode" validate:"required"`
	Value  int64        `json:"value"`
	Reason string       `json:"reason,omitempty" validate:"max=500"`
}

type SetSessionClientRequest struct {
	Kind      ClientKind `json:"kind" validate:"required,oneof=existing new"`
	ClientID  *uuid.UUID `json:"clientId,omitempty"`
	FirstName string     `json:"firstName,omitempty" validate:"max=100"`
	LastName  string     `json:"lastName,omitempty" validate:"max=100"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string     `json:"phone,omitempty" validate:"max=50"`
}

// SubmitQuoteRequest finalizes a session into a persisted quote
type SubmitQuoteRequest struct {
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

type UpdateQuoteStatusRequest struct {
	Status QuoteStatus `json:"status" validate:"required"`
}
