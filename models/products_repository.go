package models

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const entityProduct = "product"

type ProductsRepository struct {
	table table[Product]
}

// ProductChanges lists the columns of a partial update. Nil fields are left unchanged.
type ProductChanges struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *uint
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{table: newTable[Product](db, entityProduct)}
}

func (r *ProductsRepository) Create(ctx context.Context, product *Product) error {
	err := r.table.create(ctx, product)
	if err != nil && isForeignKey(err) {
		return MissingParent(entityProduct, "category_id", product.CategoryID)
	}
	return err
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	return r.table.get(ctx, id)
}

// List executes a composed query and returns the page together with the
// number of products matching the filters.
func (r *ProductsRepository) List(ctx context.Context, q ProductQuery) ([]Product, int64, error) {
	return r.table.list(ctx, q.Page, q.Filter, q.Order)
}

func (r *ProductsRepository) Update(ctx context.Context, id uint, changes ProductChanges) (*Product, error) {
	fields := map[string]any{}
	if changes.Name != nil {
		fields["name"] = *changes.Name
	}
	if changes.Description != nil {
		fields["description"] = *changes.Description
	}
	if changes.Price != nil {
		fields["price"] = *changes.Price
	}
	if changes.Stock != nil {
		fields["stock"] = *changes.Stock
	}
	if changes.CategoryID != nil {
		fields["category_id"] = *changes.CategoryID
	}

	product, err := r.table.update(ctx, id, fields)
	if err != nil && isForeignKey(err) && changes.CategoryID != nil {
		return nil, MissingParent(entityProduct, "category_id", *changes.CategoryID)
	}
	return product, err
}

func (r *ProductsRepository) Delete(ctx context.Context, id uint) error {
	return r.table.delete(ctx, id)
}
