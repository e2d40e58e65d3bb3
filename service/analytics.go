package service

import (
	"context"

	"github.com/mytheresa/go-catalog-service/models"
)

// AnalyticsService exposes the catalog summaries. Each summary is one read
// statement, so no transaction is opened.
type AnalyticsService struct {
	analytics AnalyticsStore
}

func NewAnalyticsService(analytics AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

func (s *AnalyticsService) AvgPriceByDepartment(ctx context.Context) ([]models.DepartmentAvgPrice, error) {
	return s.analytics.AvgPriceByDepartment(ctx)
}

func (s *AnalyticsService) TotalStockByCategory(ctx context.Context) ([]models.CategoryStock, error) {
	return s.analytics.TotalStockByCategory(ctx)
}

func (s *AnalyticsService) CountByDepartment(ctx context.Context) ([]models.DepartmentProductCount, error) {
	return s.analytics.CountByDepartment(ctx)
}

func (s *AnalyticsService) TotalValueByDepartment(ctx context.Context) ([]models.DepartmentInventoryValue, error) {
	return s.analytics.TotalValueByDepartment(ctx)
}
