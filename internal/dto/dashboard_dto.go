package dto

import "github.com/shopspring/decimal"

// SalesPoint is one day of the 30-day sales chart.
type SalesPoint struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Sales decimal.Decimal `json:"sales"`
}

// BestSellingEntry aggregates one product's sales across all bills.
type BestSellingEntry struct {
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// DashboardStats is the full payload of GET /api/dashboard/stats.
// Computed fresh on every request — no caching or pre-aggregation.
type DashboardStats struct {
	TotalProducts       int64              `json:"totalProducts"`
	LowStockCount       int                `json:"lowStockCount"`
	LowStockProducts    []ProductResponse  `json:"lowStockProducts"`
	TodaySales          decimal.Decimal    `json:"todaySales"`
	MonthlySales        decimal.Decimal    `json:"monthlySales"`
	SalesChart          []SalesPoint       `json:"salesChart"`
	BestSelling         []BestSellingEntry `json:"bestSelling"`
	TotalCustomers      int64              `json:"totalCustomers"`
	TotalPendingCredit  decimal.Decimal    `json:"totalPendingCredit"`
	PendingCreditsCount int64              `json:"pendingCreditsCount"`
}
