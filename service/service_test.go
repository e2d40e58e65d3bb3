package service

import (
	"context"
	"testing"

	trmgorm "github.com/avito-tech/go-transaction-manager/drivers/gorm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/database/dbtest"
	"github.com/mytheresa/go-catalog-service/models"
)

// --- Helpers ---

type fixture struct {
	tx          *recordingTx
	departments *DepartmentService
	categories  *CategoryService
	products    *ProductService
	analytics   *AnalyticsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.Open(t)
	log := zap.NewNop()
	tx := &recordingTx{Manager: manager.Must(trmgorm.NewDefaultFactory(db))}

	departmentRepo := models.NewDepartmentsRepository(db)
	categoryRepo := models.NewCategoriesRepository(db)
	productRepo := models.NewProductsRepository(db)

	return &fixture{
		tx:          tx,
		departments: NewDepartmentService(departmentRepo, tx, log),
		categories:  NewCategoryService(categoryRepo, departmentRepo, tx, log),
		products:    NewProductService(productRepo, categoryRepo, departmentRepo, tx, log),
		analytics:   NewAnalyticsService(models.NewAnalyticsRepository(db)),
	}
}

// recordingTx remembers the settings passed to DoWithSettings.
type recordingTx struct {
	*manager.Manager
	settings []trm.Settings
}

func (r *recordingTx) DoWithSettings(ctx context.Context, s trm.Settings, fn func(ctx context.Context) error) error {
	r.settings = append(r.settings, s)
	return r.Manager.DoWithSettings(ctx, s, fn)
}

func (f *fixture) department(t *testing.T, name string) *models.Department {
	t.Helper()
	d, err := f.departments.Create(context.Background(), CreateDepartmentInput{Name: name})
	require.NoError(t, err)
	return d
}

func (f *fixture) category(t *testing.T, name string, departmentID uint) *models.Category {
	t.Helper()
	c, err := f.categories.Create(context.Background(), CreateCategoryInput{Name: name, DepartmentID: departmentID})
	require.NoError(t, err)
	return c
}

func (f *fixture) product(t *testing.T, name, price string, stock int, categoryID uint) *models.Product {
	t.Helper()
	p, err := f.products.Create(context.Background(), CreateProductInput{
		Name:       name,
		Price:      money(price),
		Stock:      &stock,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return p
}

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ptr[T any](v T) *T {
	return &v
}
