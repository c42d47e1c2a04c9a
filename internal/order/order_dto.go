package order

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	ServiceID       string          `json:"service_id" binding:"required,uuid"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes"`
	PickupAddress   string          `json:"pickup_address"`
	DeliveryAddress string          `json:"delivery_address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderResponse struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	ServiceID       string          `json:"service_id"`
	ServiceName     string          `json:"service_name,omitempty"`
	UserID          string          `json:"user_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	PickupAddress   string          `json:"pickup_address"`
	DeliveryAddress string          `json:"delivery_address"`
	OrderDate       string          `json:"order_date"`
	CompletedDate   *string         `json:"completed_date,omitempty"`
}
