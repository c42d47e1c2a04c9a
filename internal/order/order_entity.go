package order

import (
	"time"

	"go-laundry/internal/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the order lifecycle label. Forward chain:
// pending -> processing -> ready -> delivered; cancelled is terminal and
// reachable by the owning customer only while pending.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber string          `gorm:"column:order_number;type:varchar(50);not null;uniqueIndex:uq_service_orders_order_number"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(10,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:decimal(12,2);not null"`
	Status      Status          `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`

	Notes           string `gorm:"column:notes;type:text"`
	PickupAddress   string `gorm:"column:pickup_address;type:text;not null"`
	DeliveryAddress string `gorm:"column:delivery_address;type:text;not null"`

	OrderDate     time.Time  `gorm:"column:order_date;autoCreateTime"`
	CompletedDate *time.Time `gorm:"column:completed_date"`

	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	ServiceID uuid.UUID `gorm:"column:service_id;type:uuid;not null;index"`

	Service *catalog.LaundryService `gorm:"foreignKey:ServiceID;references:ID"`
}

func (Order) TableName() string {
	return "service_orders"
}
