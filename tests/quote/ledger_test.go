package quote_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/quote"
)

func newHaircut() domain.Service {
	return domain.Service{
		BaseModel:       domain.BaseModel{ID: uuid.New()},
		Name:            "Haircut",
		UnitPrice:       6000,
		DurationMinutes: 45,
		PricingMode:     domain.PricingModeFixed,
		IsActive:        true,
	}
}

func newCleaning() domain.Service {
	return domain.Service{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Name:        "Deep-clean visit",
		PricingMode: domain.PricingModeHourly,
		HourlyRate:  2000,
		IsActive:    true,
	}
}

// assertLedgerInvariant checks that every line item carries exactly one
// assignment per unit of quantity, with sequential unit indices.
func assertLedgerInvariant(t *testing.T, items []quote.LineItem) {
	t.Helper()
	for _, item := range items {
		require.Equal(t, item.Quantity, len(item.Assignments),
			"line %s: assignments must match quantity", item.Name)
		for i, a := range item.Assignments {
			assert.Equal(t, i, a.UnitIndex)
		}
	}
}

func TestLedger_AddService(t *testing.T) {
	var l quote.Ledger
	svc := newHaircut()

	l.AddService(svc)

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, svc.ID, items[0].ServiceID)
	assert.Equal(t, svc.Name, items[0].Name)
	assert.Equal(t, svc.UnitPrice, items[0].UnitPrice)
	assert.Equal(t, 1, items[0].Quantity)
	assertLedgerInvariant(t, items)
}

func TestLedger_AddServiceTwiceIncrementsQuantity(t *testing.T) {
	var l quote.Ledger
	svc := newHaircut()

	l.AddService(svc)
	l.AddService(svc)

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assertLedgerInvariant(t, items)
}

func TestLedger_RemoveService(t *testing.T) {
	var l quote.Ledger
	svc := newHaircut()
	other := newCleaning()

	l.AddService(svc)
	l.AddService(other)
	l.AddService(svc)

	assert.True(t, l.RemoveService(svc.ID))
	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, other.ID, items[0].ServiceID)

	assert.False(t, l.RemoveService(svc.ID), "removing twice reports false")
	assertLedgerInvariant(t, l.Items())
}

func TestLedger_SetQuantity(t *testing.T) {
	var l quote.Ledger
	svc := newHaircut()
	l.AddService(svc)

	t.Run("grow appends empty assignments", func(t *testing.T) {
		err := l.SetQuantity(svc.ID, 4)
		require.NoError(t, err)
		assertLedgerInvariant(t, l.Items())
	})

	t.Run("shrink truncates from the tail", func(t *testing.T) {
		// mark the first unit so we can verify it survives the shrink
		require.NoError(t, l.SetAssignmentStart(svc.ID, 0, "10:00"))

		err := l.SetQuantity(svc.ID, 2)
		require.NoError(t, err)

		items := l.Items()
		assertLedgerInvariant(t, items)
		assert.Equal(t, "10:00", items[0].Assignments[0].StartTime)
	})

	t.Run("below one removes the line item", func(t *testing.T) {
		err := l.SetQuantity(svc.ID, 0)
		require.NoError(t, err)
		assert.True(t, l.IsEmpty())
	})

	t.Run("unknown service", func(t *testing.T) {
		err := l.SetQuantity(uuid.New(), 2)
		assert.ErrorIs(t, err, quote.ErrLineItemNotFound)
	})
}

func TestLedger_AssignStaff(t *testing.T) {
	var l quote.Ledger
	svc := newCleaning()
	l.AddService(svc)
	require.NoError(t, l.SetQuantity(svc.ID, 2))

	staff := &domain.StaffMember{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FirstName: "Ida",
		LastName:  "Strand",
		IsActive:  true,
	}

	err := l.AssignStaff(svc.ID, 1, staff)
	require.NoError(t, err)

	items := l.Items()
	a := items[0].Assignments[1]
	require.NotNil(t, a.StaffID)
	assert.Equal(t, staff.ID, *a.StaffID)
	assert.Equal(t, "Ida Strand", a.StaffName)

	t.Run("nil staff clears the binding", func(t *testing.T) {
		require.NoError(t, l.AssignStaff(svc.ID, 1, nil))
		a := l.Items()[0].Assignments[1]
		assert.Nil(t, a.StaffID)
		assert.Equal(t, "", a.StaffName)
	})

	t.Run("unit index out of range", func(t *testing.T) {
		err := l.AssignStaff(svc.ID, 5, staff)
		assert.ErrorIs(t, err, quote.ErrUnitIndexOutOfRange)
	})
}

func TestLedger_StartTimeDerivesEnd(t *testing.T) {
	var l quote.Ledger
	svc := newHaircut() // 45 minute duration
	l.AddService(svc)

	require.NoError(t, l.SetAssignmentStart(svc.ID, 0, "10:00"))
	a := l.Items()[0].Assignments[0]
	assert.Equal(t, "10:00", a.StartTime)
	assert.Equal(t, "10:45", a.EndTime)

	// A later start edit keeps deriving the end
	require.NoError(t, l.SetAssignmentStart(svc.ID, 0, "13:00"))
	a = l.Items()[0].Assignments[0]
	assert.Equal(t, "13:45", a.EndTime)
}

func TestLedger_EditedEndStopsDerivation(t *testing.T) {
	var l quote.Ledger
	svc := newHaircut()
	l.AddService(svc)

	require.NoError(t, l.SetAssignmentStart(svc.ID, 0, "10:00"))
	require.NoError(t, l.SetAssignmentEnd(svc.ID, 0, "12:00"))

	// After a direct end edit, start changes leave the end alone
	require.NoError(t, l.SetAssignmentStart(svc.ID, 0, "09:00"))
	a := l.Items()[0].Assignments[0]
	assert.Equal(t, "09:00", a.StartTime)
	assert.Equal(t, "12:00", a.EndTime)
}

func TestLedger_TotalDurationMinutes(t *testing.T) {
	var l quote.Ledger

	assert.Equal(t, 60, l.TotalDurationMinutes(), "empty ledger falls back to one hour")

	svc := newHaircut()
	l.AddService(svc)
	require.NoError(t, l.SetQuantity(svc.ID, 3))
	assert.Equal(t, 135, l.TotalDurationMinutes())
}
