package service

import "github.com/shopspring/decimal"

// Write payloads. Pointer fields of the update inputs are optional; a nil
// field leaves the stored column unchanged.

type CreateDepartmentInput struct {
	Name string `json:"name" validate:"notblank,max=50"`
}

type UpdateDepartmentInput struct {
	Name *string `json:"name" validate:"omitnil,notblank,max=50"`
}

type CreateCategoryInput struct {
	Name         string `json:"name" validate:"notblank,max=50"`
	DepartmentID uint   `json:"department_id" validate:"required"`
}

type UpdateCategoryInput struct {
	Name         *string `json:"name" validate:"omitnil,notblank,max=50"`
	DepartmentID *uint   `json:"department_id" validate:"omitnil,gt=0"`
}

type CreateProductInput struct {
	Name        string           `json:"name" validate:"notblank,max=100"`
	Description *string          `json:"description" validate:"omitnil,max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required,money"`
	Stock       *int             `json:"stock" validate:"omitnil,gte=0,lte=2147483647"`
	CategoryID  uint             `json:"category_id" validate:"required"`
}

type UpdateProductInput struct {
	Name        *string          `json:"name" validate:"omitnil,notblank,max=100"`
	Description *string          `json:"description" validate:"omitnil,max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"omitnil,money"`
	Stock       *int             `json:"stock" validate:"omitnil,gte=0,lte=2147483647"`
	CategoryID  *uint            `json:"category_id" validate:"omitnil,gt=0"`
}
