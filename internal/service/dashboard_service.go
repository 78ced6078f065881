package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the summary block behind the dashboard view.
// Totals always cover the full collections.
type DashboardStats struct {
	TotalProducts int             `json:"totalProducts"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	Categories    int             `json:"categories"`
	Suppliers     int             `json:"suppliers"`
	LowStock      int             `json:"lowStock"`
	RecentLogs    int             `json:"recentLogs"`
}

// DashboardService computes read-only summary statistics.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	stockLogRepo repository.StockLogRepository
	now          func() time.Time
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(productRepo repository.ProductRepository, stockLogRepo repository.StockLogRepository) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		stockLogRepo: stockLogRepo,
		now:          time.Now,
	}
}

// Stats aggregates the whole products and stock_logs collections per
// call. O(collection size); acceptable at current volumes.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	agg, err := s.productRepo.Aggregates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate products: %w", err)
	}

	// Last 7 days, inclusive of today.
	cutoff := s.now().AddDate(0, 0, -7)
	recent, err := s.stockLogRepo.CountSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent logs: %w", err)
	}

	return &DashboardStats{
		TotalProducts: agg.TotalProducts,
		TotalValue:    agg.TotalValue,
		Categories:    agg.Categories,
		Suppliers:     agg.Suppliers,
		LowStock:      agg.LowStockCount,
		RecentLogs:    recent,
	}, nil
}
