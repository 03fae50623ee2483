package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/config"
	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/mapper"
	"github.com/bookwell/booking-api/internal/quote"
	"github.com/bookwell/booking-api/internal/repository"
)

// SessionService owns the in-memory store of open quote sessions. Sessions
// live only in this process; an idle session is swept after the configured
// TTL and a swept or submitted session id simply stops resolving.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*quote.Session

	catalogRepo *repository.CatalogRepository
	staffRepo   *repository.StaffRepository
	clientRepo  *repository.ClientRepository
	gate        quote.Gate
	cfg         *config.Config
	logger      *zap.Logger
}

func NewSessionService(
	catalogRepo *repository.CatalogRepository,
	staffRepo *repository.StaffRepository,
	clientRepo *repository.ClientRepository,
	gate quote.Gate,
	cfg *config.Config,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessions:    make(map[uuid.UUID]*quote.Session),
		catalogRepo: catalogRepo,
		staffRepo:   staffRepo,
		clientRepo:  clientRepo,
		gate:        gate,
		cfg:         cfg,
		logger:      logger,
	}
}

// Create opens a new quote session seeded with the active catalog and
// roster. Request fields override the tenant's configured pricing defaults.
func (s *SessionService) Create(ctx context.Context, req *domain.CreateSessionRequest) (*domain.SessionDTO, error) {
	catalog, err := s.catalogRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	roster, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	engineCfg := quote.Config{
		Mode:         domain.PricingMode(s.cfg.Pricing.Mode),
		TaxRate:      s.cfg.Pricing.TaxRate,
		BusinessType: domain.BusinessType(s.cfg.Pricing.BusinessType),
	}
	if req != nil && req.PricingMode != "" {
		if !req.PricingMode.IsValid() {
			return nil, fmt.Errorf("%w: invalid pricing mode %q", ErrInvalidInput, req.PricingMode)
		}
		engineCfg.Mode = req.PricingMode
	}
	if req != nil && req.BusinessType != "" {
		if !req.BusinessType.IsValid() {
			return nil, fmt.Errorf("%w: invalid business type %q", ErrInvalidInput, req.BusinessType)
		}
		engineCfg.BusinessType = req.BusinessType
	}

	session := quote.NewSession(engineCfg, catalog, roster, s.gate, s.logger)

	s.mu.Lock()
	if s.cfg.Session.MaxSessions > 0 && len(s.sessions) >= s.cfg.Session.MaxSessions {
		s.mu.Unlock()
		return nil, ErrSessionLimit
	}
	s.sessions[session.ID()] = session
	openCount := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("quote session created",
		zap.String("session_id", session.ID().String()),
		zap.String("pricing_mode", string(engineCfg.Mode)),
		zap.Int("open_sessions", openCount),
	)

	dto := s.toDTO(session)
	return &dto, nil
}

// Get resolves a session by id
func (s *SessionService) Get(id uuid.UUID) (*quote.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// GetDTO returns the full session view
func (s *SessionService) GetDTO(id uuid.UUID) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(session)
	return &dto, nil
}

// AddLineItem adds one unit of a catalog service to the session
func (s *SessionService) AddLineItem(id uuid.UUID, req *domain.AddLineItemRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.AddService(req.ServiceID); err != nil {
		return nil, err
	}
	dto := s.toDTO(session)
	return &dto, nil
}

// RemoveLineItem removes a line item entirely
func (s *SessionService) RemoveLineItem(id, serviceID uuid.UUID) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.RemoveService(serviceID); err != nil {
		return nil, err
	}
	dto := s.toDTO(session)
	return &dto, nil
}

// SetQuantity sets a line item's quantity
func (s *SessionService) SetQuantity(id, serviceID uuid.UUID, req *domain.SetQuantityRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.SetQuantity(serviceID, req.Quantity); err != nil {
		return nil, err
	}
	dto := s.toDTO(session)
	return &dto, nil
}

// AssignStaff binds or clears a unit's staff member
func (s *SessionService) AssignStaff(id, serviceID uuid.UUID, req *domain.AssignStaffRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.AssignStaff(serviceID, req.UnitIndex, req.StaffID); err != nil {
		return nil, err
	}
	dto := s.toDTO(session)
	return &dto, nil
}

// SetAssignmentStart sets a unit's start time
func (s *SessionService) SetAssignmentStart(id, serviceID uuid.UUID, req *domain.SetAssignmentTimeRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.SetAssignmentStart(serviceID, req.UnitIndex, req.Time); err != nil {
		return nil, err
	}
	dto := s.toDTO(session)
	return &dto, nil
}

// SetAssignmentEnd sets a unit's end time
func (s *SessionService) SetAssignmentEnd(id, serviceID uuid.UUID, req *domain.SetAssignmentTimeRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := session.SetAssignmentEnd(serviceID, req.UnitIndex, req.Time); err != nil {
		return nil, err
	}
	dto := s.toDTO(session)
	return &dto, nil
}

// UpdateBooking patches the booking fields; nil pointers are left untouched
func (s *SessionService) UpdateBooking(id uuid.UUID, req *domain.UpdateBookingRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		session.SetStartDate(*req.StartDate)
	}
	if req.StartTime != nil {
		session.SetStartTime(*req.StartTime)
	}
	if req.EndDate != nil {
		session.SetEndDate(*req.EndDate)
	}
	if req.EndTime != nil {
		session.SetEndTime(*req.EndTime)
	}
	if req.OnSite != nil || req.TravelFee != nil {
		booking := session.Booking()
		onSite := booking.OnSite
		travelFee := booking.TravelFee
		if req.OnSite != nil {
			onSite = *req.OnSite
		}
		if req.TravelFee != nil {
			travelFee = *req.TravelFee
		}
		session.SetOnSite(onSite, travelFee)
	}
	if req.RequestedAgents != nil {
		session.SetRequestedAgents(*req.RequestedAgents)
	}

	dto := s.toDTO(session)
	return &dto, nil
}

// SetDiscount replaces the session's discount
func (s *SessionService) SetDiscount(id uuid.UUID, req *domain.SetDiscountRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !req.Mode.IsValid() {
		return nil, fmt.Errorf("%w: invalid discount mode %q", ErrInvalidInput, req.Mode)
	}
	session.SetDiscount(quote.Discount{
		Mode:   req.Mode,
		Value:  req.Value,
		Reason: req.Reason,
	})
	dto := s.toDTO(session)
	return &dto, nil
}

// SetClient replaces the session's client selection. An existing-client
// selection is checked against the client table.
func (s *SessionService) SetClient(ctx context.Context, id uuid.UUID, req *domain.SetSessionClientRequest) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	selection := quote.ClientSelection{
		Kind:      req.Kind,
		ClientID:  req.ClientID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if req.Kind == domain.ClientKindExisting && req.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get client: %w", err)
		}
		selection.FirstName = client.FirstName
		selection.LastName = client.LastName
		selection.Email = client.Email
		selection.Phone = client.Phone
	}

	session.SetClient(selection)
	dto := s.toDTO(session)
	return &dto, nil
}

// Availability returns the session's advisory roster partition
func (s *SessionService) Availability(id uuid.UUID) (*domain.AvailabilityDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToAvailabilityDTO(session.Availability())
	return &dto, nil
}

// Totals returns the session's recomputed totals
func (s *SessionService) Totals(id uuid.UUID) (*domain.TotalsDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTotalsDTO(session.Totals())
	return &dto, nil
}

// Reset clears a session back to an empty quote, keeping it open
func (s *SessionService) Reset(id uuid.UUID) (*domain.SessionDTO, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	session.Reset()
	dto := s.toDTO(session)
	return &dto, nil
}

// Cancel discards a session
func (s *SessionService) Cancel(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.logger.Info("quote session cancelled", zap.String("session_id", id.String()))
	return nil
}

// Remove drops a session from the store after submission
func (s *SessionService) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// SweepIdle removes sessions whose last activity is older than the TTL.
// Returns the number of sessions swept; run from the cron scheduler.
func (s *SessionService) SweepIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, session := range s.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(s.sessions, id)
			swept++
		}
	}
	if swept > 0 {
		s.logger.Info("swept idle quote sessions",
			zap.Int("swept", swept),
			zap.Int("remaining", len(s.sessions)),
		)
	}
	return swept
}

// OpenCount reports how many sessions are currently open
func (s *SessionService) OpenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) toDTO(session *quote.Session) domain.SessionDTO {
	return mapper.ToSessionDTO(
		session.ID(),
		session.Items(),
		session.Booking(),
		session.Discount(),
		session.Client(),
		session.Totals(),
	)
}
