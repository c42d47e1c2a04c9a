package order

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	FindAllByUser(ctx context.Context, userID string) ([]Order, error)
	Update(ctx context.Context, o *Order) error
	OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
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

func (r *repository) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Service").
		First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repository) FindAll(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).
		Preload("Service").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *repository) Update(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Order{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	return count > 0, err
}
