package models

import (
	"context"

	trmgorm "github.com/avito-tech/go-transaction-manager/drivers/gorm/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// moneyPlaces is the scale of money columns and of money aggregates.
const moneyPlaces = 2

// Aggregate rows. Groups without products are not reported.

type DepartmentAvgPrice struct {
	DepartmentID   uint
	DepartmentName string
	AvgPrice       decimal.Decimal
}

type CategoryStock struct {
	CategoryID     uint
	CategoryName   string
	DepartmentID   uint
	DepartmentName string
	TotalStock     int64
}

type DepartmentProductCount struct {
	DepartmentID   uint
	DepartmentName string
	ProductCount   int64
}

type DepartmentInventoryValue struct {
	DepartmentID   uint
	DepartmentName string
	TotalValue     decimal.Decimal
}

// AnalyticsRepository runs grouped aggregate queries over the catalog.
// Each method is a single statement joining products to their category and department.
type AnalyticsRepository struct {
	db     *gorm.DB
	getter *trmgorm.CtxGetter
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, getter: trmgorm.DefaultCtxGetter}
}

func (r *AnalyticsRepository) products(ctx context.Context) *gorm.DB {
	return r.getter.DefaultTrOrDB(ctx, r.db).WithContext(ctx).
		Table("products").
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN departments ON departments.id = categories.department_id")
}

func (r *AnalyticsRepository) AvgPriceByDepartment(ctx context.Context) ([]DepartmentAvgPrice, error) {
	rows := []DepartmentAvgPrice{}
	err := r.products(ctx).
		Select("departments.id AS department_id, departments.name AS department_name, AVG(products.price) AS avg_price").
		Group("departments.id, departments.name").
		Order("departments.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("analytics.avg_price_by_department", "analytics", err)
	}

	for i := range rows {
		rows[i].AvgPrice = rows[i].AvgPrice.Round(moneyPlaces)
	}
	return rows, nil
}

func (r *AnalyticsRepository) TotalStockByCategory(ctx context.Context) ([]CategoryStock, error) {
	rows := []CategoryStock{}
	err := r.products(ctx).
		Select("categories.id AS category_id, categories.name AS category_name, " +
			"departments.id AS department_id, departments.name AS department_name, " +
			"SUM(products.stock) AS total_stock").
		Group("categories.id, categories.name, departments.id, departments.name").
		Order("categories.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("analytics.total_stock_by_category", "analytics", err)
	}
	return rows, nil
}

func (r *AnalyticsRepository) CountByDepartment(ctx context.Context) ([]DepartmentProductCount, error) {
	rows := []DepartmentProductCount{}
	err := r.products(ctx).
		Select("departments.id AS department_id, departments.name AS department_name, COUNT(products.id) AS product_count").
		Group("departments.id, departments.name").
		Order("departments.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("analytics.count_by_department", "analytics", err)
	}
	return rows, nil
}

// TotalValueByDepartment sums price * stock. The multiplication and the sum
// happen on numeric columns in the store, so no float rounding is involved.
func (r *AnalyticsRepository) TotalValueByDepartment(ctx context.Context) ([]DepartmentInventoryValue, error) {
	rows := []DepartmentInventoryValue{}
	err := r.products(ctx).
		Select("departments.id AS department_id, departments.name AS department_name, SUM(products.price * products.stock) AS total_value").
		Group("departments.id, departments.name").
		Order("departments.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("analytics.total_value_by_department", "analytics", err)
	}

	for i := range rows {
		rows[i].TotalValue = rows[i].TotalValue.Round(moneyPlaces)
	}
	return rows, nil
}
