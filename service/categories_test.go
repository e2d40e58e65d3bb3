package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/go-catalog-service/models"
)

func TestCategoryService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.department(t, "Men")
	women := f.department(t, "Women")
	f.category(t, "Shirts", men.ID)

	testCases := []struct {
		name      string
		input     CreateCategoryInput
		wantErr   error
		wantField string
	}{
		{name: "Same name in another department", input: CreateCategoryInput{Name: "Shirts", DepartmentID: women.ID}},
		{name: "Duplicate within department", input: CreateCategoryInput{Name: "Shirts", DepartmentID: men.ID}, wantErr: models.ErrDuplicateName, wantField: "name"},
		{name: "Unknown department", input: CreateCategoryInput{Name: "Hats", DepartmentID: 999}, wantErr: models.ErrForeignKeyViolation, wantField: "department_id"},
		{name: "Missing department id", input: CreateCategoryInput{Name: "Hats"}, wantErr: models.ErrValidation, wantField: "department_id"},
		{name: "Blank name", input: CreateCategoryInput{Name: "", DepartmentID: men.ID}, wantErr: models.ErrValidation, wantField: "name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category, err := f.categories.Create(ctx, tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				var domainErr *models.Error
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tc.wantField, domainErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input.Name, category.Name)
			assert.Equal(t, tc.input.DepartmentID, category.DepartmentID)
		})
	}
}

func TestCategoryService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.department(t, "Men")
	women := f.department(t, "Women")
	shirts := f.category(t, "Shirts", men.ID)
	f.category(t, "Shirts", women.ID)

	t.Run("Move onto a department with the same name", func(t *testing.T) {
		_, err := f.categories.Update(ctx, shirts.ID, UpdateCategoryInput{DepartmentID: &women.ID})
		assert.ErrorIs(t, err, models.ErrDuplicateName)
	})

	t.Run("Move to an unknown department", func(t *testing.T) {
		_, err := f.categories.Update(ctx, shirts.ID, UpdateCategoryInput{DepartmentID: ptr(uint(999))})
		assert.ErrorIs(t, err, models.ErrForeignKeyViolation)
	})

	t.Run("Rename keeps the department", func(t *testing.T) {
		updated, err := f.categories.Update(ctx, shirts.ID, UpdateCategoryInput{Name: ptr("Polos")})
		require.NoError(t, err)
		assert.Equal(t, "Polos", updated.Name)
		assert.Equal(t, men.ID, updated.DepartmentID)
	})

	t.Run("Missing category", func(t *testing.T) {
		_, err := f.categories.Update(ctx, 999, UpdateCategoryInput{Name: ptr("Hats")})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestCategoryService_ListByDepartment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.department(t, "Men")
	women := f.department(t, "Women")
	empty := f.department(t, "Kids")
	f.category(t, "Shirts", men.ID)
	f.category(t, "Shoes", men.ID)
	f.category(t, "Dresses", women.ID)

	list, err := f.categories.ListByDepartment(ctx, men.ID, models.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)
	require.Len(t, f.tx.settings, 1)
	assert.Equal(t, models.ReadSnapshot, f.tx.settings[0])
	for _, c := range list.Items {
		assert.Equal(t, men.ID, c.DepartmentID)
	}

	list, err = f.categories.ListByDepartment(ctx, empty.ID, models.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
	assert.Empty(t, list.Items)

	_, err = f.categories.ListByDepartment(ctx, 999, models.PageRequest{})
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := f.categories.List(ctx, models.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
}

func TestCategoryService_DeleteCascadesToProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	men := f.department(t, "Men")
	shirts := f.category(t, "Shirts", men.ID)
	p := f.product(t, "Cotton Shirt", "59.90", 20, shirts.ID)

	require.NoError(t, f.categories.Delete(ctx, shirts.ID))

	_, err := f.products.Get(ctx, p.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = f.departments.Get(ctx, men.ID)
	assert.NoError(t, err)
}
