package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/models"
)

type CategoryService struct {
	categories  CategoryStore
	departments DepartmentStore
	tx          TxManager
	log         *zap.Logger
}

func NewCategoryService(categories CategoryStore, departments DepartmentStore, tx TxManager, log *zap.Logger) *CategoryService {
	return &CategoryService{
		categories:  categories,
		departments: departments,
		tx:          tx,
		log:         log.Named("categories"),
	}
}

func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := validateInput(entityCategory, in); err != nil {
		return nil, err
	}

	category := &models.Category{Name: in.Name, DepartmentID: in.DepartmentID}
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := requireParent(ctx, s.departments.Exists, entityCategory, "department_id", in.DepartmentID); err != nil {
			return err
		}
		return s.categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("category created",
		zap.Uint("id", category.ID),
		zap.String("name", category.Name),
		zap.Uint("department_id", category.DepartmentID),
	)
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, req models.PageRequest) (*ListResult[models.Category], error) {
	page, err := models.ComposePage(req)
	if err != nil {
		return nil, err
	}

	items, total, err := s.categories.List(ctx, nil, page)
	if err != nil {
		return nil, err
	}
	return &ListResult[models.Category]{Items: items, Total: total, Page: page}, nil
}

// ListByDepartment lists the categories of one department. A missing
// department is reported as not found rather than as an empty page.
func (s *CategoryService) ListByDepartment(ctx context.Context, departmentID uint, req models.PageRequest) (*ListResult[models.Category], error) {
	page, err := models.ComposePage(req)
	if err != nil {
		return nil, err
	}

	result := &ListResult[models.Category]{Page: page}
	err = s.tx.DoWithSettings(ctx, models.ReadSnapshot, func(ctx context.Context) error {
		if err := requireScope(ctx, s.departments.Exists, entityDepartment, departmentID); err != nil {
			return err
		}
		var err error
		result.Items, result.Total, err = s.categories.List(ctx, &departmentID, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in UpdateCategoryInput) (*models.Category, error) {
	if err := validateInput(entityCategory, in); err != nil {
		return nil, err
	}

	var category *models.Category
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if in.DepartmentID != nil {
			if err := requireParent(ctx, s.departments.Exists, entityCategory, "department_id", *in.DepartmentID); err != nil {
				return err
			}
		}
		var err error
		category, err = s.categories.Update(ctx, id, models.CategoryChanges{
			Name:         in.Name,
			DepartmentID: in.DepartmentID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("category updated", zap.Uint("id", id))
	return category, nil
}

// Delete removes the category and its products.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		return s.categories.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("category deleted", zap.Uint("id", id))
	return nil
}
