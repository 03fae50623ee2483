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

type StaffService struct {
	staffRepo *repository.StaffRepository
	logger    *zap.Logger
}

func NewStaffService(staffRepo *repository.StaffRepository, logger *zap.Logger) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Create adds a new roster member
func (s *StaffService) Create(ctx context.Context, req *domain.CreateStaffRequest) (*domain.StaffMemberDTO, error) {
	staff := &domain.StaffMember{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Skills:    req.Skills,
		IsActive:  true,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		s.logger.Error("failed to create staff member", zap.Error(err))
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	s.logger.Info("staff member created",
		zap.String("staff_id", staff.ID.String()),
		zap.String("name", staff.FullName()),
	)

	dto := mapper.ToStaffMemberDTO(staff)
	return &dto, nil
}

// GetByID returns one roster member
func (s *StaffService) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMemberDTO, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	dto := mapper.ToStaffMemberDTO(staff)
	return &dto, nil
}

// Update replaces a roster member's fields
func (s *StaffService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateStaffRequest) (*domain.StaffMemberDTO, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	staff.FirstName = req.FirstName
	staff.LastName = req.LastName
	staff.Email = req.Email
	staff.Phone = req.Phone
	staff.Role = req.Role
	staff.Skills = req.Skills
	staff.IsActive = req.IsActive

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	dto := mapper.ToStaffMemberDTO(staff)
	return &dto, nil
}

// Delete removes a roster member. Assignments on stored quotes keep the
// cached display name.
func (s *StaffService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.staffRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get staff member: %w", err)
	}
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	s.logger.Info("staff member deleted", zap.String("staff_id", id.String()))
	return nil
}

// List returns a page of roster members
func (s *StaffService) List(ctx context.Context, page, pageSize int, activeOnly bool, role string) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	staff, total, err := s.staffRepo.List(ctx, page, pageSize, activeOnly, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	dtos := make([]domain.StaffMemberDTO, 0, len(staff))
	for i := range staff {
		dtos = append(dtos, mapper.ToStaffMemberDTO(&staff[i]))
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
