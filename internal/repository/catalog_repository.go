package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, svc *domain.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *CatalogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	var svc domain.Service
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogRepository) Update(ctx context.Context, svc *domain.Service) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *CatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Service{}, "id = ?", id).Error
}

func (r *CatalogRepository) List(ctx context.Context, page, pageSize int, activeOnly bool, category string) ([]domain.Service, int64, error) {
	var services []domain.Service
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Service{})

	if activeOnly {
		query = query.Scopes(ActiveOnly)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(page, pageSize)).Order("name ASC").Find(&services).Error

	return services, total, err
}

// ListActive returns the full active catalog without paging, for seeding a
// quote session.
func (r *CatalogRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Scopes(ActiveOnly).
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (r *CatalogRepository) Search(ctx context.Context, searchQuery string, limit int) ([]domain.Service, error) {
	var services []domain.Service
	searchPattern := "%" + strings.ToLower(searchQuery) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", searchPattern).
		Limit(limit).
		Find(&services).Error
	return services, err
}
