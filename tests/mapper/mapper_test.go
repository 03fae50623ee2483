package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/mapper"
	"github.com/bookwell/booking-api/internal/quote"
)

func TestToServiceDTO(t *testing.T) {
	svc := &domain.Service{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		},
		Name:            "Haircut",
		Category:        "Hair",
		UnitPrice:       6000,
		DurationMinutes: 45,
		PricingMode:     domain.PricingModeFixed,
		IsActive:        true,
	}

	dto := mapper.ToServiceDTO(svc)
	assert.Equal(t, svc.ID, dto.ID)
	assert.Equal(t, "Haircut", dto.Name)
	assert.Equal(t, int64(6000), dto.UnitPrice)
	assert.Equal(t, "2026-03-01T12:00:00Z", dto.CreatedAt)
}

func TestToStaffMemberDTO_FullName(t *testing.T) {
	staff := &domain.StaffMember{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FirstName: "Nora",
		LastName:  "Berg",
		Skills:    pq.StringArray{"coloring"},
		IsActive:  true,
	}

	dto := mapper.ToStaffMemberDTO(staff)
	assert.Equal(t, "Nora Berg", dto.FullName)
	assert.Equal(t, []string{"coloring"}, dto.Skills)
}

func TestToAvailabilityDTO(t *testing.T) {
	available := domain.StaffMember{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FirstName: "Nora", LastName: "Berg", IsActive: true,
	}
	busy := domain.StaffMember{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FirstName: "Jonas", LastName: "Lien", IsActive: true,
	}

	dto := mapper.ToAvailabilityDTO(quote.Partition{
		Available: []domain.StaffMember{available},
		Busy: []quote.BusyStaff{
			{StaffMember: busy, Reason: "conflicting booking"},
		},
	})

	require.Len(t, dto.Available, 1)
	assert.Equal(t, "Nora Berg", dto.Available[0].FullName)
	require.Len(t, dto.Busy, 1)
	assert.Equal(t, "Jonas Lien", dto.Busy[0].FullName)
	assert.Equal(t, "conflicting booking", dto.Busy[0].Reason)
}

func TestToSessionDTO_MapsLineAmounts(t *testing.T) {
	sessionID := uuid.New()
	serviceID := uuid.New()

	lines := []quote.LineItem{
		{
			ServiceID:       serviceID,
			Name:            "Haircut",
			UnitPrice:       6000,
			DurationMinutes: 45,
			PricingMode:     domain.PricingModeFixed,
			Quantity:        2,
			Assignments: []quote.Assignment{
				{UnitIndex: 0, StartTime: "10:00", EndTime: "10:45"},
				{UnitIndex: 1},
			},
		},
	}
	totals := quote.Totals{
		Subtotal:   12000,
		NetAmount:  12000,
		TaxRate:    0.20,
		TaxAmount:  2400,
		GrandTotal: 14400,
		Lines: []quote.LineTotal{
			{ServiceID: serviceID, Amount: 12000},
		},
	}

	dto := mapper.ToSessionDTO(sessionID, lines, quote.Booking{StartDate: "2026-09-01"},
		quote.Discount{Mode: domain.DiscountModeNone}, quote.ClientSelection{Kind: domain.ClientKindExisting}, totals)

	assert.Equal(t, sessionID, dto.ID)
	require.Len(t, dto.LineItems, 1)
	assert.Equal(t, int64(12000), dto.LineItems[0].Amount)
	require.Len(t, dto.LineItems[0].Assignments, 2)
	assert.Equal(t, "10:45", dto.LineItems[0].Assignments[0].EndTime)
	assert.Equal(t, "2026-09-01", dto.Booking.StartDate)
	assert.Equal(t, int64(14400), dto.Totals.GrandTotal)
}

func TestToQuoteDTO(t *testing.T) {
	validUntil := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	staffID := uuid.New()
	q := &domain.Quote{
		BaseModel:       domain.BaseModel{ID: uuid.New()},
		QuoteNumber:     "Q-2026-00007",
		Status:          domain.QuoteStatusPending,
		PricingMode:     domain.PricingModeFixed,
		StartDate:       "2026-09-01",
		ClientKind:      domain.ClientKindExisting,
		ClientFirstName: "Mari",
		ClientLastName:  "Holm",
		GrandTotal:      14400,
		ValidUntil:      &validUntil,
		LineItems: []domain.QuoteLineItem{
			{
				ServiceName: "Haircut",
				Quantity:    2,
				Amount:      12000,
				Assignments: []domain.QuoteAssignment{
					{UnitIndex: 0, StaffID: &staffID, StaffName: "Nora Berg"},
				},
			},
		},
	}

	dto := mapper.ToQuoteDTO(q)
	assert.Equal(t, "Q-2026-00007", dto.QuoteNumber)
	assert.Equal(t, "Mari Holm", dto.ClientName)
	assert.Equal(t, "2026-10-01", dto.ValidUntil)
	require.Len(t, dto.LineItems, 1)
	require.Len(t, dto.LineItems[0].Assignments, 1)
	assert.Equal(t, "Nora Berg", dto.LineItems[0].Assignments[0].StaffName)
}

func TestToQuoteDTO_NoClientName(t *testing.T) {
	q := &domain.Quote{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		QuoteNumber: "Q-2026-00008",
		Status:      domain.QuoteStatusPending,
	}

	dto := mapper.ToQuoteDTO(q)
	assert.Empty(t, dto.ClientName)
	assert.Empty(t, dto.ValidUntil)
	assert.Empty(t, dto.LineItems)
}
