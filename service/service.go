// Package service holds the catalog use cases. Each write runs inside one
// transaction opened through the transaction manager; repositories pick it
// up from the context.
package service

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"github.com/mytheresa/go-catalog-service/models"
)

const (
	entityDepartment = "department"
	entityCategory   = "category"
	entityProduct    = "product"
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoWithSettings(ctx context.Context, s trm.Settings, fn func(ctx context.Context) error) error
}

type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uint) (*models.Department, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, page models.Page) ([]models.Department, int64, error)
	Update(ctx context.Context, id uint, changes models.DepartmentChanges) (*models.Department, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, departmentID *uint, page models.Page) ([]models.Category, int64, error)
	Update(ctx context.Context, id uint, changes models.CategoryChanges) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, q models.ProductQuery) ([]models.Product, int64, error)
	Update(ctx context.Context, id uint, changes models.ProductChanges) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

type AnalyticsStore interface {
	AvgPriceByDepartment(ctx context.Context) ([]models.DepartmentAvgPrice, error)
	TotalStockByCategory(ctx context.Context) ([]models.CategoryStock, error)
	CountByDepartment(ctx context.Context) ([]models.DepartmentProductCount, error)
	TotalValueByDepartment(ctx context.Context) ([]models.DepartmentInventoryValue, error)
}

// ListResult is one page of rows together with the size of the full result set.
type ListResult[T any] struct {
	Items []T
	Total int64
	Page  models.Page
}

// requireParent fails with a foreign key violation when the referenced row is missing.
func requireParent(ctx context.Context, exists func(context.Context, uint) (bool, error), entity, field string, id uint) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return models.MissingParent(entity, field, id)
	}
	return nil
}

// requireScope fails with not found when the row a listing is scoped to is missing.
func requireScope(ctx context.Context, exists func(context.Context, uint) (bool, error), entity string, id uint) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return models.NotFound(entity, id)
	}
	return nil
}
