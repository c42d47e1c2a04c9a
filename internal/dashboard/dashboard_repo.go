package dashboard

import (
	"context"

	"go-laundry/internal/catalog"
	"go-laundry/internal/order"
	"go-laundry/internal/user"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	CountServices(ctx context.Context) (int64, error)
	CountActiveServices(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context, statuses ...order.Status) (int64, error)
	SumOrderRevenue(ctx context.Context, statuses ...order.Status) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountServices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.LaundryService{}).Count(&count).Error
	return count, err
}

func (r *repository) CountActiveServices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalog.LaundryService{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&user.User{}).Count(&count).Error
	return count, err
}

func (r *repository) CountOrders(ctx context.Context, statuses ...order.Status) (int64, error) {
	q := r.db.WithContext(ctx).Model(&order.Order{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statusStrings(statuses))
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

// SumOrderRevenue sums total_price in SQL so the result stays decimal-exact.
// An empty match sums to zero via COALESCE.
func (r *repository) SumOrderRevenue(ctx context.Context, statuses ...order.Status) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Select("COALESCE(SUM(total_price), 0)")
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statusStrings(statuses))
	}

	var sum decimal.Decimal
	err := q.Row().Scan(&sum)
	return sum, err
}

func statusStrings(statuses []order.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
