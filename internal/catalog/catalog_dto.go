package catalog

import "github.com/shopspring/decimal"

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit" binding:"required"`
	Duration    string          `json:"duration"`
	ImageURL    string          `json:"image_url"`
}

// UpdateServiceRequest is a full overwrite: every field is applied as sent,
// including IsActive, mirroring the admin form's checkbox semantics.
type UpdateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit" binding:"required"`
	Duration    string          `json:"duration"`
	ImageURL    string          `json:"image_url"`
	IsActive    bool            `json:"is_active"`
}

type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Duration    string          `json:"duration,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
}
