package dashboard

import (
	"go-laundry/internal/catalog"

	"github.com/shopspring/decimal"
)

// StatsResponse mirrors the staff dashboard: counts, exact revenue totals,
// and per-bucket breakdowns. "Completed" combines ready and delivered.
type StatsResponse struct {
	TotalServices  int64 `json:"total_services"`
	ActiveServices int64 `json:"active_services"`
	TotalUsers     int64 `json:"total_users"`
	TotalOrders    int64 `json:"total_orders"`

	TotalRevenue decimal.Decimal `json:"total_revenue"`

	PendingOrders    int64 `json:"pending_orders"`
	ProcessingOrders int64 `json:"processing_orders"`
	CompletedOrders  int64 `json:"completed_orders"`

	PendingRevenue    decimal.Decimal `json:"pending_revenue"`
	ProcessingRevenue decimal.Decimal `json:"processing_revenue"`
	CompletedRevenue  decimal.Decimal `json:"completed_revenue"`

	RecentServices []catalog.ServiceResponse `json:"recent_services"`
}
