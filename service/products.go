package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/models"
)

type ProductService struct {
	products    ProductStore
	categories  CategoryStore
	departments DepartmentStore
	tx          TxManager
	log         *zap.Logger
}

func NewProductService(products ProductStore, categories CategoryStore, departments DepartmentStore, tx TxManager, log *zap.Logger) *ProductService {
	return &ProductService{
		products:    products,
		categories:  categories,
		departments: departments,
		tx:          tx,
		log:         log.Named("products"),
	}
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if err := validateInput(entityProduct, in); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		CategoryID:  in.CategoryID,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := requireParent(ctx, s.categories.Exists, entityProduct, "category_id", in.CategoryID); err != nil {
			return err
		}
		return s.products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.Uint("id", product.ID),
		zap.String("name", product.Name),
		zap.Uint("category_id", product.CategoryID),
	)
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// List resolves the filters and returns one page of matching products.
// Invalid filters are rejected before any query is issued.
func (s *ProductService) List(ctx context.Context, filters models.ProductFilters) (*ListResult[models.Product], error) {
	q, err := models.ComposeProductQuery(filters)
	if err != nil {
		return nil, err
	}

	items, total, err := s.products.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ListResult[models.Product]{Items: items, Total: total, Page: q.Page}, nil
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID uint, filters models.ProductFilters) (*ListResult[models.Product], error) {
	filters.CategoryID = &categoryID
	return s.listScoped(ctx, filters, func(ctx context.Context) error {
		return requireScope(ctx, s.categories.Exists, entityCategory, categoryID)
	})
}

func (s *ProductService) ListByDepartment(ctx context.Context, departmentID uint, filters models.ProductFilters) (*ListResult[models.Product], error) {
	filters.DepartmentID = &departmentID
	return s.listScoped(ctx, filters, func(ctx context.Context) error {
		return requireScope(ctx, s.departments.Exists, entityDepartment, departmentID)
	})
}

func (s *ProductService) listScoped(ctx context.Context, filters models.ProductFilters, scope func(context.Context) error) (*ListResult[models.Product], error) {
	q, err := models.ComposeProductQuery(filters)
	if err != nil {
		return nil, err
	}

	result := &ListResult[models.Product]{Page: q.Page}
	err = s.tx.DoWithSettings(ctx, models.ReadSnapshot, func(ctx context.Context) error {
		if err := scope(ctx); err != nil {
			return err
		}
		var err error
		result.Items, result.Total, err = s.products.List(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in UpdateProductInput) (*models.Product, error) {
	if err := validateInput(entityProduct, in); err != nil {
		return nil, err
	}

	var product *models.Product
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if in.CategoryID != nil {
			if err := requireParent(ctx, s.categories.Exists, entityProduct, "category_id", *in.CategoryID); err != nil {
				return err
			}
		}
		var err error
		product, err = s.products.Update(ctx, id, models.ProductChanges{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Stock:       in.Stock,
			CategoryID:  in.CategoryID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product updated", zap.Uint("id", id))
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		return s.products.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("product deleted", zap.Uint("id", id))
	return nil
}
