package quote

import (
	"github.com/google/uuid"

	"github.com/bookwell/booking-api/internal/domain"
)

// defaultQueryDurationMinutes is the duration sent to the availability
// oracle when the quote has no line items yet.
const defaultQueryDurationMinutes = 60

// Ledger owns the line items of one quote and keeps each line's assignment
// list in lockstep with its quantity: exactly one assignment per unit,
// after every operation.
type Ledger struct {
	items []LineItem
}

// Items returns the current line items. The slice is shared with the
// ledger; callers that hold on to it must copy.
func (l *Ledger) Items() []LineItem {
	return l.items
}

// Snapshot returns a deep copy of the line items, each with its own
// assignment slice. The result stays valid across later mutations.
func (l *Ledger) Snapshot() []LineItem {
	items := make([]LineItem, len(l.items))
	copy(items, l.items)
	for i := range items {
		assignments := make([]Assignment, len(items[i].Assignments))
		copy(assignments, items[i].Assignments)
		items[i].Assignments = assignments
	}
	return items
}

// IsEmpty reports whether the ledger has no line items
func (l *Ledger) IsEmpty() bool {
	return len(l.items) == 0
}

// AddService adds one unit of a service. An existing line item for the
// service gains one quantity and one fresh assignment; otherwise a new line
// item is created with the pricing fields snapshotted from the catalog
// entry and a single empty assignment.
func (l *Ledger) AddService(svc domain.Service) {
	if item := l.find(svc.ID); item != nil {
		item.Quantity++
		item.Assignments = append(item.Assignments, Assignment{UnitIndex: len(item.Assignments)})
		return
	}

	l.items = append(l.items, LineItem{
		ServiceID:       svc.ID,
		Name:            svc.Name,
		UnitPrice:       svc.UnitPrice,
		DurationMinutes: svc.DurationMinutes,
		PricingMode:     svc.PricingMode,
		HourlyRate:      svc.HourlyRate,
		DailyRate:       svc.DailyRate,
		Quantity:        1,
		Assignments:     []Assignment{{UnitIndex: 0}},
	})
}

// RemoveService deletes the service's line item and all of its assignments.
// Returns false when the service has no line item.
func (l *Ledger) RemoveService(serviceID uuid.UUID) bool {
	for i := range l.items {
		if l.items[i].ServiceID == serviceID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity resizes a line item to n units. n < 1 removes the line item
// entirely. Growing appends empty assignments with fresh sequential
// indices; shrinking truncates from the tail.
func (l *Ledger) SetQuantity(serviceID uuid.UUID, n int) error {
	if n < 1 {
		if !l.RemoveService(serviceID) {
			return ErrLineItemNotFound
		}
		return nil
	}

	item := l.find(serviceID)
	if item == nil {
		return ErrLineItemNotFound
	}

	for len(item.Assignments) < n {
		item.Assignments = append(item.Assignments, Assignment{UnitIndex: len(item.Assignments)})
	}
	item.Assignments = item.Assignments[:n]
	item.Quantity = n
	return nil
}

// AssignStaff binds a staff member to one unit, caching the display name,
// or clears the binding when staff is nil.
func (l *Ledger) AssignStaff(serviceID uuid.UUID, unitIndex int, staff *domain.StaffMember) error {
	a, err := l.assignment(serviceID, unitIndex)
	if err != nil {
		return err
	}

	if staff == nil {
		a.StaffID = nil
		a.StaffName = ""
		return nil
	}

	id := staff.ID
	a.StaffID = &id
	a.StaffName = staff.FullName()
	return nil
}

// SetAssignmentStart sets one unit's start time. When the line item's
// snapshotted duration is known, the end time is derived from it unless the
// end has already been edited directly.
func (l *Ledger) SetAssignmentStart(serviceID uuid.UUID, unitIndex int, start string) error {
	item := l.find(serviceID)
	if item == nil {
		return ErrLineItemNotFound
	}
	if unitIndex < 0 || unitIndex >= len(item.Assignments) {
		return ErrUnitIndexOutOfRange
	}

	a := &item.Assignments[unitIndex]
	a.StartTime = start
	if item.DurationMinutes > 0 && !a.endEdited {
		a.EndTime = EndTimeFromStart(start, item.DurationMinutes)
	}
	return nil
}

// SetAssignmentEnd sets one unit's end time directly. From then on, start
// edits no longer recompute the end for that unit.
func (l *Ledger) SetAssignmentEnd(serviceID uuid.UUID, unitIndex int, end string) error {
	a, err := l.assignment(serviceID, unitIndex)
	if err != nil {
		return err
	}
	a.EndTime = end
	a.endEdited = true
	return nil
}

// TotalDurationMinutes is the aggregate scheduled duration across all line
// items (duration × quantity), used when re-querying the availability
// oracle. An empty ledger falls back to a one-hour window.
func (l *Ledger) TotalDurationMinutes() int {
	if len(l.items) == 0 {
		return defaultQueryDurationMinutes
	}
	total := 0
	for i := range l.items {
		total += l.items[i].DurationMinutes * l.items[i].Quantity
	}
	return total
}

func (l *Ledger) find(serviceID uuid.UUID) *LineItem {
	for i := range l.items {
		if l.items[i].ServiceID == serviceID {
			return &l.items[i]
		}
	}
	return nil
}

func (l *Ledger) assignment(serviceID uuid.UUID, unitIndex int) (*Assignment, error) {
	item := l.find(serviceID)
	if item == nil {
		return nil, ErrLineItemNotFound
	}
	if unitIndex < 0 || unitIndex >= len(item.Assignments) {
		return nil, ErrUnitIndexOutOfRange
	}
	return &item.Assignments[unitIndex], nil
}
