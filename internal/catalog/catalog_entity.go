package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LaundryService struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"column:name;type:varchar(100);not null"`
	Description string          `gorm:"column:description;type:text;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	Unit        string          `gorm:"column:unit;type:varchar(20);not null"`
	Duration    string          `gorm:"column:duration;type:varchar(50)"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(500)"`
	IsActive    bool            `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (LaundryService) TableName() string {
	return "laundry_services"
}
