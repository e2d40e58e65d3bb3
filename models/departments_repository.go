package models

import (
	"context"

	"gorm.io/gorm"
)

const entityDepartment = "department"

type DepartmentsRepository struct {
	table table[Department]
}

// DepartmentChanges lists the columns of a partial update. Nil fields are left unchanged.
type DepartmentChanges struct {
	Name *string
}

func NewDepartmentsRepository(db *gorm.DB) *DepartmentsRepository {
	return &DepartmentsRepository{table: newTable[Department](db, entityDepartment)}
}

func (r *DepartmentsRepository) Create(ctx context.Context, department *Department) error {
	if err := r.table.create(ctx, department); err != nil {
		if isDuplicate(err) {
			return DuplicateName(entityDepartment, department.Name)
		}
		return err
	}
	return nil
}

func (r *DepartmentsRepository) GetByID(ctx context.Context, id uint) (*Department, error) {
	return r.table.get(ctx, id)
}

func (r *DepartmentsRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.table.exists(ctx, id)
}

func (r *DepartmentsRepository) List(ctx context.Context, page Page) ([]Department, int64, error) {
	return r.table.list(ctx, page, noFilter, orderByID)
}

func (r *DepartmentsRepository) Update(ctx context.Context, id uint, changes DepartmentChanges) (*Department, error) {
	fields := map[string]any{}
	if changes.Name != nil {
		fields["name"] = *changes.Name
	}

	department, err := r.table.update(ctx, id, fields)
	if err != nil && isDuplicate(err) {
		return nil, DuplicateName(entityDepartment, *changes.Name)
	}
	return department, err
}

// Delete removes the department. Its categories and their products are
// removed by the ON DELETE CASCADE foreign keys in the same statement.
func (r *DepartmentsRepository) Delete(ctx context.Context, id uint) error {
	return r.table.delete(ctx, id)
}
