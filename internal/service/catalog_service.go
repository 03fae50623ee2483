package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/mapper"
	"github.com/bookwell/booking-api/internal/repository"
)

type CatalogService struct {
	catalogRepo *repository.CatalogRepository
	logger      *zap.Logger
}

func NewCatalogService(catalogRepo *repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Create adds a new service to the catalog
func (s *CatalogService) Create(ctx context.Context, req *domain.CreateServiceRequest) (*domain.ServiceDTO, error) {
	mode := req.PricingMode
	if mode == "" {
		mode = domain.PricingModeFixed
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: invalid pricing mode %q", ErrInvalidInput, req.PricingMode)
	}

	svc := &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		UnitPrice:       req.UnitPrice,
		DurationMinutes: req.DurationMinutes,
		PricingMode:     mode,
		HourlyRate:      req.HourlyRate,
		DailyRate:       req.DailyRate,
		IsActive:        true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.catalogRepo.Create(ctx, svc); err != nil {
		s.logger.Error("failed to create service", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.logger.Info("service created",
		zap.String("service_id", svc.ID.String()),
		zap.String("name", svc.Name),
		zap.String("pricing_mode", string(svc.PricingMode)),
	)

	dto := mapper.ToServiceDTO(svc)
	return &dto, nil
}

// GetByID returns one catalog service
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceDTO, error) {
	svc, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	dto := mapper.ToServiceDTO(svc)
	return &dto, nil
}

// Update replaces a catalog service's fields
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceRequest) (*domain.ServiceDTO, error) {
	if !req.PricingMode.IsValid() {
		return nil, fmt.Errorf("%w: invalid pricing mode %q", ErrInvalidInput, req.PricingMode)
	}

	svc, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Category = req.Category
	svc.UnitPrice = req.UnitPrice
	svc.DurationMinutes = req.DurationMinutes
	svc.PricingMode = req.PricingMode
	svc.HourlyRate = req.HourlyRate
	svc.DailyRate = req.DailyRate
	svc.IsActive = req.IsActive

	if err := s.catalogRepo.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	dto := mapper.ToServiceDTO(svc)
	return &dto, nil
}

// Delete removes a catalog service. Quotes keep their snapshotted pricing,
// so deleting a service never alters existing quotes.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.catalogRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get service: %w", err)
	}
	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	s.logger.Info("service deleted", zap.String("service_id", id.String()))
	return nil
}

// List returns a page of catalog services
func (s *CatalogService) List(ctx context.Context, page, pageSize int, activeOnly bool, category string) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	services, total, err := s.catalogRepo.List(ctx, page, pageSize, activeOnly, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	dtos := make([]domain.ServiceDTO, 0, len(services))
	for i := range services {
		dtos = append(dtos, mapper.ToServiceDTO(&services[i]))
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
