package quote

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookwell/booking-api/internal/domain"
)

// ClientSelection is the quote's client: either a reference to an existing
// client record or free-form details typed in for a new one.
type ClientSelection struct {
	Kind      domain.ClientKind
	ClientID  *uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Payload is the submission snapshot handed to the persistence sink. It
// carries everything a submitted quote needs, so the sink never reaches back
// into the session.
type Payload struct {
	Lines    []LineItem
	Booking  Booking
	Discount Discount
	Client   ClientSelection
	Totals   Totals
	Config   Config
}

// Session is one in-progress quote. It owns the assignment ledger, the
// booking and discount fields and the client selection, prices itself on
// read, and keeps an advisory availability partition fresh in the
// background.
//
// All methods are safe for concurrent use. Mutations take the lock, apply,
// and where the aggregate duration or the booking date/time changed, fire an
// asynchronous gate query; a stale response (one whose sequence number no
// longer matches) is discarded, so the partition always reflects the latest
// mutation.
type Session struct {
	mu sync.Mutex

	id       uuid.UUID
	cfg      Config
	ledger   Ledger
	booking  Booking
	discount Discount
	client   ClientSelection

	catalog map[uuid.UUID]domain.Service
	roster  []domain.StaffMember
	gate    Gate
	logger  *zap.Logger

	partition Partition
	querySeq  uint64

	createdAt    time.Time
	lastActivity time.Time
}

// NewSession builds a session over the given catalog and roster. Inactive
// services and staff are filtered out up front; the gate may be nil, in
// which case the whole roster is always reported available.
func NewSession(cfg Config, catalog []domain.Service, roster []domain.StaffMember, gate Gate, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	services := make(map[uuid.UUID]domain.Service, len(catalog))
	for _, svc := range catalog {
		if svc.IsActive {
			services[svc.ID] = svc
		}
	}

	active := make([]domain.StaffMember, 0, len(roster))
	for _, sm := range roster {
		if sm.IsActive {
			active = append(active, sm)
		}
	}

	now := time.Now()
	s := &Session{
		id:           uuid.New(),
		cfg:          cfg,
		client:       ClientSelection{Kind: domain.ClientKindExisting},
		catalog:      services,
		roster:       active,
		gate:         gate,
		logger:       logger,
		createdAt:    now,
		lastActivity: now,
	}
	s.partition = s.fullRoster()
	return s
}

// ID returns the session's identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config returns the pricing configuration the session was created with
func (s *Session) Config() Config {
	return s.cfg
}

// LastActivity returns the time of the most recent mutation or read,
// used by the idle sweep.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// AddService adds one unit of the given catalog service to the ledger
func (s *Session) AddService(serviceID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.catalog[serviceID]
	if !ok {
		return ErrServiceNotFound
	}
	s.ledger.AddService(svc)
	s.refreshAvailability()
	return nil
}

// RemoveService removes a line item entirely, regardless of quantity
func (s *Session) RemoveService(serviceID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.RemoveService(serviceID) {
		return ErrLineItemNotFound
	}
	s.refreshAvailability()
	return nil
}

// SetQuantity sets a line item's quantity, removing the line when n < 1
func (s *Session) SetQuantity(serviceID uuid.UUID, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.SetQuantity(serviceID, n); err != nil {
		return err
	}
	s.refreshAvailability()
	return nil
}

// AssignStaff binds one unit of a line item to a roster member, or clears
// the binding when staffID is nil.
func (s *Session) AssignStaff(serviceID uuid.UUID, unitIndex int, staffID *uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var staff *domain.StaffMember
	if staffID != nil {
		sm := s.rosterMember(*staffID)
		if sm == nil {
			return ErrStaffNotFound
		}
		staff = sm
	}
	s.lastActivity = time.Now()
	return s.ledger.AssignStaff(serviceID, unitIndex, staff)
}

// SetAssignmentStart sets a unit's start time; the end time follows the
// service duration until it has been edited directly.
func (s *Session) SetAssignmentStart(serviceID uuid.UUID, unitIndex int, start string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = time.Now()
	return s.ledger.SetAssignmentStart(serviceID, unitIndex, start)
}

// SetAssignmentEnd sets a unit's end time directly
func (s *Session) SetAssignmentEnd(serviceID uuid.UUID, unitIndex int, end string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = time.Now()
	return s.ledger.SetAssignmentEnd(serviceID, unitIndex, end)
}

// SetStartDate sets the booking's start date ("2006-01-02")
func (s *Session) SetStartDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking.StartDate = date
	s.refreshAvailability()
}

// SetStartTime sets the booking's start time of day ("15:04")
func (s *Session) SetStartTime(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking.StartTime = t
	s.refreshAvailability()
}

// SetEndDate sets the booking's end date, which drives the day count in
// hourly and daily modes.
func (s *Session) SetEndDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking.EndDate = date
	s.lastActivity = time.Now()
}

// SetEndTime sets the booking's end time of day
func (s *Session) SetEndTime(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking.EndTime = t
	s.lastActivity = time.Now()
}

// SetOnSite toggles the on-site flag and sets the travel fee in major
// currency units. The fee only counts while on-site is true.
func (s *Session) SetOnSite(onSite bool, travelFee int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking.OnSite = onSite
	s.booking.TravelFee = travelFee
	s.lastActivity = time.Now()
}

// SetRequestedAgents records how many agents the client asked for
func (s *Session) SetRequestedAgents(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking.RequestedAgents = n
	s.lastActivity = time.Now()
}

// SetDiscount replaces the booking-level discount
func (s *Session) SetDiscount(d Discount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount = d
	s.lastActivity = time.Now()
}

// SetClient replaces the client selection
func (s *Session) SetClient(c ClientSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = c
	s.lastActivity = time.Now()
}

// Booking returns a copy of the current booking fields
func (s *Session) Booking() Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booking
}

// Discount returns a copy of the current discount
func (s *Session) Discount() Discount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount
}

// Client returns a copy of the current client selection
func (s *Session) Client() ClientSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// Items returns a deep copy of the current line items; the result does
// not observe mutations made after the call.
func (s *Session) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}

// Totals recomputes and returns the current totals. The session holds no
// cached totals; pricing is cheap and recompute-on-read keeps every edit
// path consistent.
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()
	return ComputeTotals(s.ledger.Items(), s.booking, s.discount, s.cfg)
}

// Availability returns the latest advisory partition. It may lag the most
// recent mutation until the in-flight gate query lands.
func (s *Session) Availability() Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.partition
}

// Validate checks whether the session can be submitted. All failures are
// collected into a single ValidationError so the caller can show the full
// list at once; nil means the session is submittable.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	verr := &domain.ValidationError{}

	if s.ledger.IsEmpty() {
		verr.Add("at least one service must be selected")
	}
	if s.booking.StartDate == "" {
		verr.Add("booking start date is required")
	}

	switch s.cfg.Mode {
	case domain.PricingModeHourly:
		if !s.hasTimedAssignment() {
			verr.Add("at least one staff assignment needs a start and end time")
		}
	case domain.PricingModeDaily:
		// daily mode needs no time of day
	default:
		if s.booking.StartTime == "" {
			verr.Add("booking start time is required")
		}
	}

	if s.client.Kind == domain.ClientKindNew {
		if s.client.FirstName == "" {
			verr.Add("client first name is required")
		}
		if s.client.LastName == "" {
			verr.Add("client last name is required")
		}
		if s.client.Phone == "" {
			verr.Add("client phone number is required")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// Payload snapshots the session for the submission sink. It does not
// validate; callers run Validate first.
func (s *Session) Payload() Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.ledger.Snapshot()
	return Payload{
		Lines:    lines,
		Booking:  s.booking,
		Discount: s.discount,
		Client:   s.client,
		Totals:   ComputeTotals(lines, s.booking, s.discount, s.cfg),
		Config:   s.cfg,
	}
}

// Reset clears every quote-specific field back to a fresh session. The
// catalog, roster and configuration stay.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = Ledger{}
	s.booking = Booking{}
	s.discount = Discount{}
	s.client = ClientSelection{Kind: domain.ClientKindExisting}
	s.querySeq++
	s.partition = s.fullRoster()
	s.lastActivity = time.Now()
}

// refreshAvailability fires an asynchronous gate query for the current
// booking window. Caller must hold s.mu.
//
// Availability is advisory: when no gate is configured, the booking window
// is incomplete, or the query fails, the whole roster is reported available
// rather than blocking the quote (fail-open). Responses that arrive after a
// newer query was issued are dropped.
func (s *Session) refreshAvailability() {
	s.lastActivity = time.Now()
	s.querySeq++
	seq := s.querySeq

	if s.gate == nil || s.booking.StartDate == "" || s.booking.StartTime == "" {
		s.partition = s.fullRoster()
		return
	}

	date := s.booking.StartDate
	start := s.booking.StartTime
	duration := s.ledger.TotalDurationMinutes()

	go func() {
		partition, err := s.gate.Query(context.Background(), date, start, duration)

		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.querySeq {
			return
		}
		if err != nil || partition == nil {
			if err != nil {
				s.logger.Warn("availability query failed, treating whole roster as available",
					zap.String("date", date),
					zap.String("startTime", start),
					zap.Error(err))
			}
			s.partition = s.fullRoster()
			return
		}
		s.partition = *partition
	}()
}

// fullRoster is the fail-open partition: everyone available, nobody busy
func (s *Session) fullRoster() Partition {
	available := make([]domain.StaffMember, len(s.roster))
	copy(available, s.roster)
	return Partition{Available: available, Busy: []BusyStaff{}}
}

// hasTimedAssignment reports whether any unit has a complete time window.
// Caller must hold s.mu.
func (s *Session) hasTimedAssignment() bool {
	for _, line := range s.ledger.Items() {
		for _, a := range line.Assignments {
			if a.HasWindow() {
				return true
			}
		}
	}
	return false
}

// rosterMember finds an active roster member by id. Caller must hold s.mu.
func (s *Session) rosterMember(id uuid.UUID) *domain.StaffMember {
	for i := range s.roster {
		if s.roster[i].ID == id {
			return &s.roster[i]
		}
	}
	return nil
}
