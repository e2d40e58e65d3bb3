package models

import (
	"context"

	"gorm.io/gorm"
)

const entityCategory = "category"

type CategoriesRepository struct {
	table table[Category]
}

// CategoryChanges lists the columns of a partial update. Nil fields are left unchanged.
type CategoryChanges struct {
	Name         *string
	DepartmentID *uint
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{table: newTable[Category](db, entityCategory)}
}

func (r *CategoriesRepository) Create(ctx context.Context, category *Category) error {
	err := r.table.create(ctx, category)
	switch {
	case err == nil:
		return nil
	case isDuplicate(err):
		return DuplicateName(entityCategory, category.Name)
	case isForeignKey(err):
		return MissingParent(entityCategory, "department_id", category.DepartmentID)
	}
	return err
}

func (r *CategoriesRepository) GetByID(ctx context.Context, id uint) (*Category, error) {
	return r.table.get(ctx, id)
}

func (r *CategoriesRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.table.exists(ctx, id)
}

// List pages over all categories, or over one department's when departmentID is set.
func (r *CategoriesRepository) List(ctx context.Context, departmentID *uint, page Page) ([]Category, int64, error) {
	filter := noFilter
	if departmentID != nil {
		filter = func(db *gorm.DB) *gorm.DB {
			return db.Where("department_id = ?", *departmentID)
		}
	}
	return r.table.list(ctx, page, filter, orderByID)
}

func (r *CategoriesRepository) Update(ctx context.Context, id uint, changes CategoryChanges) (*Category, error) {
	fields := map[string]any{}
	if changes.Name != nil {
		fields["name"] = *changes.Name
	}
	if changes.DepartmentID != nil {
		fields["department_id"] = *changes.DepartmentID
	}

	category, err := r.table.update(ctx, id, fields)
	switch {
	case err == nil:
		return category, nil
	case isDuplicate(err) && changes.Name != nil:
		return nil, DuplicateName(entityCategory, *changes.Name)
	case isForeignKey(err) && changes.DepartmentID != nil:
		return nil, MissingParent(entityCategory, "department_id", *changes.DepartmentID)
	}
	return nil, err
}

// Delete removes the category and, through the foreign key cascade, its products.
func (r *CategoriesRepository) Delete(ctx context.Context, id uint) error {
	return r.table.delete(ctx, id)
}
