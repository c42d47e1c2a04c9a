package role

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByName(ctx context.Context, name Name) (*Role, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, r *Role) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByName(ctx context.Context, name Name) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "name = ?", string(name)).Error
	return &role, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Role{}).Count(&count).Error
	return count, err
}

func (r *repository) Create(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}
