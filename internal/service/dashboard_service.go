package service

import (
	"context"
	"time"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

const (
	salesChartDays  = 30
	bestSellerLimit = 5
)

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	billRepo     repository.BillRepository
	creditRepo   repository.CreditRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	billRepo repository.BillRepository,
	creditRepo repository.CreditRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		billRepo:     billRepo,
		creditRepo:   creditRepo,
	}
}

// Stats computes the full dashboard payload fresh from the database.
// Day boundaries use the server's local midnight.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = totalProducts

	lowStock, err := s.productRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)
	stats.LowStockProducts = make([]dto.ProductResponse, 0, len(lowStock))
	for i := range lowStock {
		stats.LowStockProducts = append(stats.LowStockProducts, *ProductToResponse(&lowStock[i]))
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todaySales, err := s.billRepo.SumFinalAmountSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	stats.TodaySales = todaySales

	monthlySales, err := s.billRepo.SumFinalAmountSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	stats.MonthlySales = monthlySales

	// 30-day chart, oldest day first, zero-filled for days without sales
	stats.SalesChart = make([]dto.SalesPoint, 0, salesChartDays)
	for i := salesChartDays - 1; i >= 0; i-- {
		dayStart := midnight.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)
		total, err := s.billRepo.SumFinalAmountBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		stats.SalesChart = append(stats.SalesChart, dto.SalesPoint{
			Date:  dayStart.Format("2006-01-02"),
			Sales: total,
		})
	}

	best, err := s.billRepo.BestSelling(ctx, bestSellerLimit)
	if err != nil {
		return nil, err
	}
	stats.BestSelling = make([]dto.BestSellingEntry, 0, len(best))
	for _, row := range best {
		stats.BestSelling = append(stats.BestSelling, dto.BestSellingEntry{
			ProductID:     row.ProductID.String(),
			Name:          row.Name,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue,
		})
	}

	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = totalCustomers

	pendingTotal, pendingCount, err := s.creditRepo.PendingTotals(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalPendingCredit = pendingTotal
	stats.PendingCreditsCount = pendingCount

	return stats, nil
}
