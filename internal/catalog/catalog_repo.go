package catalog

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *LaundryService) error
	FindByID(ctx context.Context, id string) (*LaundryService, error)
	FindAll(ctx context.Context) ([]LaundryService, error)
	FindAllActive(ctx context.Context) ([]LaundryService, error)
	FindRecent(ctx context.Context, limit int) ([]LaundryService, error)
	Update(ctx context.Context, s *LaundryService) error
	Delete(ctx context.Context, id string) error
	CountReferencingOrders(ctx context.Context, serviceID string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, s *LaundryService) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LaundryService, error) {
	var s LaundryService
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context) ([]LaundryService, error) {
	var services []LaundryService
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]LaundryService, error) {
	var services []LaundryService
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]LaundryService, error) {
	var services []LaundryService
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&services).Error
	return services, err
}

func (r *repository) Update(ctx context.Context, s *LaundryService) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LaundryService{}, "id = ?", id).Error
}

func (r *repository) CountReferencingOrders(ctx context.Context, serviceID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("service_orders").
		Where("service_id = ?", serviceID).
		Count(&count).Error
	return count, err
}
