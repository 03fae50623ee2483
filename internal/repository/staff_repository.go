package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error) {
	var staff domain.StaffMember
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) Update(ctx context.Context, staff *domain.StaffMember) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *StaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.StaffMember{}, "id = ?", id).Error
}

func (r *StaffRepository) List(ctx context.Context, page, pageSize int, activeOnly bool, role string) ([]domain.StaffMember, int64, error) {
	var staff []domain.StaffMember
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.StaffMember{})

	if activeOnly {
		query = query.Scopes(ActiveOnly)
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(page, pageSize)).Order("last_name ASC, first_name ASC").Find(&staff).Error

	return staff, total, err
}

// ListActive returns the full active roster without paging, for seeding a
// quote session.
func (r *StaffRepository) ListActive(ctx context.Context) ([]domain.StaffMember, error) {
	var staff []domain.StaffMember
	err := r.db.WithContext(ctx).
		Scopes(ActiveOnly).
		Order("last_name ASC, first_name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) Search(ctx context.Context, searchQuery string, limit int) ([]domain.StaffMember, error) {
	var staff []domain.StaffMember
	searchPattern := "%" + strings.ToLower(searchQuery) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", searchPattern, searchPattern).
		Limit(limit).
		Find(&staff).Error
	return staff, err
}
