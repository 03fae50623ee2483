package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/mapper"
	"github.com/bookwell/booking-api/internal/repository"
	"github.com/bookwell/booking-api/internal/storage"
)

// quoteValidityDays is how long a submitted quote stays open before the
// nightly job expires it
const quoteValidityDays = 30

// QuoteService turns validated sessions into persisted quotes and manages
// them afterwards. The stored row is the authority of record; the engine's
// totals are advisory until they land here.
type QuoteService struct {
	quoteRepo      *repository.QuoteRepository
	clientRepo     *repository.ClientRepository
	attachmentRepo *repository.AttachmentRepository
	sessions       *SessionService
	storage        storage.Storage
	logger         *zap.Logger
}

func NewQuoteService(
	quoteRepo *repository.QuoteRepository,
	clientRepo *repository.ClientRepository,
	attachmentRepo *repository.AttachmentRepository,
	sessions *SessionService,
	store storage.Storage,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		quoteRepo:      quoteRepo,
		clientRepo:     clientRepo,
		attachmentRepo: attachmentRepo,
		sessions:       sessions,
		storage:        store,
		logger:         logger,
	}
}

// Submit validates the session, persists it as a pending quote and drops
// the session from the store. Validation failures come back as a
// *domain.ValidationError listing every missing field at once.
func (s *QuoteService) Submit(ctx context.Context, sessionID uuid.UUID, req *domain.SubmitQuoteRequest) (*domain.QuoteDTO, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	payload := session.Payload()

	// A quote for a brand-new client creates the client record first so
	// the quote can reference it.
	clientID := payload.Client.ClientID
	if payload.Client.Kind == domain.ClientKindNew {
		client := &domain.Client{
			FirstName: payload.Client.FirstName,
			LastName:  payload.Client.LastName,
			Email:     payload.Client.Email,
			Phone:     payload.Client.Phone,
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}
		clientID = &client.ID
	}

	quoteNumber, err := s.quoteRepo.NextQuoteNumber(ctx, time.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("failed to allocate quote number: %w", err)
	}

	validUntil := time.Now().AddDate(0, 0, quoteValidityDays)

	q := &domain.Quote{
		QuoteNumber:  quoteNumber,
		Status:       domain.QuoteStatusPending,
		BusinessType: payload.Config.BusinessType,
		PricingMode:  payload.Config.Mode,

		StartDate:       payload.Booking.StartDate,
		StartTime:       payload.Booking.StartTime,
		EndDate:         payload.Booking.EndDate,
		EndTime:         payload.Booking.EndTime,
		OnSite:          payload.Booking.OnSite,
		TravelFee:       payload.Booking.TravelFee,
		RequestedAgents: payload.Booking.RequestedAgents,

		ClientKind:      payload.Client.Kind,
		ClientID:        clientID,
		ClientFirstName: payload.Client.FirstName,
		ClientLastName:  payload.Client.LastName,
		ClientPhone:     payload.Client.Phone,
		ClientEmail:     payload.Client.Email,

		DiscountMode:   payload.Discount.Mode,
		DiscountValue:  payload.Discount.Value,
		DiscountReason: payload.Discount.Reason,

		Subtotal:             payload.Totals.Subtotal,
		DurationTotalMinutes: payload.Totals.DurationTotalMinutes,
		TravelFeeAmount:      payload.Totals.TravelFee,
		DiscountAmount:       payload.Totals.DiscountAmount,
		NetAmount:            payload.Totals.NetAmount,
		TaxRate:              payload.Totals.TaxRate,
		TaxAmount:            payload.Totals.TaxAmount,
		GrandTotal:           payload.Totals.GrandTotal,

		ValidUntil: &validUntil,
		Notes:      req.Notes,
	}
	if q.DiscountMode == "" {
		q.DiscountMode = domain.DiscountModeNone
	}

	lineAmounts := make(map[uuid.UUID]int64, len(payload.Totals.Lines))
	for _, lt := range payload.Totals.Lines {
		lineAmounts[lt.ServiceID] = lt.Amount
	}

	for i, line := range payload.Lines {
		item := domain.QuoteLineItem{
			ServiceID:       line.ServiceID,
			ServiceName:     line.Name,
			UnitPrice:       line.UnitPrice,
			DurationMinutes: line.DurationMinutes,
			PricingMode:     line.PricingMode,
			HourlyRate:      line.HourlyRate,
			DailyRate:       line.DailyRate,
			Quantity:        line.Quantity,
			Amount:          lineAmounts[line.ServiceID],
			Position:        i,
		}
		for _, a := range line.Assignments {
			item.Assignments = append(item.Assignments, domain.QuoteAssignment{
				UnitIndex: a.UnitIndex,
				StaffID:   a.StaffID,
				StaffName: a.StaffName,
				StartTime: a.StartTime,
				EndTime:   a.EndTime,
			})
		}
		q.LineItems = append(q.LineItems, item)
	}

	if err := s.quoteRepo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to persist quote: %w", err)
	}

	s.sessions.Remove(sessionID)

	s.logger.Info("quote submitted",
		zap.String("quote_id", q.ID.String()),
		zap.String("quote_number", q.QuoteNumber),
		zap.Int64("grand_total", q.GrandTotal),
		zap.Int("line_items", len(q.LineItems)),
	)

	dto := mapper.ToQuoteDTO(q)
	return &dto, nil
}

// GetByID returns a stored quote with its lines, assignments and attachments
func (s *QuoteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuoteDTO, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	dto := mapper.ToQuoteDTO(q)
	return &dto, nil
}

// List returns a page of stored quotes
func (s *QuoteService) List(ctx context.Context, page, pageSize int, status *domain.QuoteStatus, clientID *uuid.UUID) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	quotes, total, err := s.quoteRepo.List(ctx, page, pageSize, status, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	dtos := make([]domain.QuoteDTO, 0, len(quotes))
	for i := range quotes {
		dtos = append(dtos, mapper.ToQuoteDTO(&quotes[i]))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus moves a pending quote to confirmed or declined
func (s *QuoteService) UpdateStatus(ctx context.Context, id uuid.UUID, req *domain.UpdateQuoteStatusRequest) (*domain.QuoteDTO, error) {
	if req.Status != domain.QuoteStatusConfirmed && req.Status != domain.QuoteStatusDeclined {
		return nil, fmt.Errorf("%w: status must be confirmed or declined", ErrInvalidInput)
	}

	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if q.Status != domain.QuoteStatusPending {
		return nil, ErrQuoteNotPending
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	s.logger.Info("quote status changed",
		zap.String("quote_id", id.String()),
		zap.String("status", string(req.Status)),
	)

	q.Status = req.Status
	dto := mapper.ToQuoteDTO(q)
	return &dto, nil
}

// ExpireQuotes marks pending quotes past their validity window as expired.
// Returns the number of quotes expired; run from the cron scheduler.
func (s *QuoteService) ExpireQuotes(ctx context.Context) (int64, error) {
	expired, err := s.quoteRepo.ExpirePending(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire quotes: %w", err)
	}
	if expired > 0 {
		s.logger.Info("expired stale quotes", zap.Int64("count", expired))
	}
	return expired, nil
}

// UploadAttachment stores a file against a quote
func (s *QuoteService) UploadAttachment(ctx context.Context, quoteID uuid.UUID, filename, contentType string, data io.Reader) (*domain.QuoteAttachmentDTO, error) {
	if _, err := s.quoteRepo.GetByID(ctx, quoteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	storagePath, size, err := s.storage.Upload(ctx, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	attachment := &domain.QuoteAttachment{
		QuoteID:     quoteID,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		StoragePath: storagePath,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// best effort cleanup of the stored blob
		_ = s.storage.Delete(ctx, storagePath)
		return nil, fmt.Errorf("failed to save attachment record: %w", err)
	}

	s.logger.Info("attachment uploaded",
		zap.String("quote_id", quoteID.String()),
		zap.String("attachment_id", attachment.ID.String()),
		zap.String("filename", filename),
		zap.Int64("size", size),
	)

	dto := mapper.ToQuoteAttachmentDTO(attachment)
	return &dto, nil
}

// DownloadAttachment streams a stored attachment
func (s *QuoteService) DownloadAttachment(ctx context.Context, attachmentID uuid.UUID) (*domain.QuoteAttachment, io.ReadCloser, error) {
	attachment, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	reader, err := s.storage.Download(ctx, attachment.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return attachment, reader, nil
}

// DeleteAttachment removes an attachment record and its stored file
func (s *QuoteService) DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get attachment: %w", err)
	}

	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment record: %w", err)
	}
	if err := s.storage.Delete(ctx, attachment.StoragePath); err != nil {
		s.logger.Warn("failed to delete stored attachment file",
			zap.Error(err),
			zap.String("storage_path", attachment.StoragePath),
		)
	}
	return nil
}
