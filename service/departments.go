package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/models"
)

type DepartmentService struct {
	departments DepartmentStore
	tx          TxManager
	log         *zap.Logger
}

func NewDepartmentService(departments DepartmentStore, tx TxManager, log *zap.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, tx: tx, log: log.Named("departments")}
}

func (s *DepartmentService) Create(ctx context.Context, in CreateDepartmentInput) (*models.Department, error) {
	if err := validateInput(entityDepartment, in); err != nil {
		return nil, err
	}

	department := &models.Department{Name: in.Name}
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		return s.departments.Create(ctx, department)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("department created", zap.Uint("id", department.ID), zap.String("name", department.Name))
	return department, nil
}

func (s *DepartmentService) Get(ctx context.Context, id uint) (*models.Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context, req models.PageRequest) (*ListResult[models.Department], error) {
	page, err := models.ComposePage(req)
	if err != nil {
		return nil, err
	}

	items, total, err := s.departments.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &ListResult[models.Department]{Items: items, Total: total, Page: page}, nil
}

func (s *DepartmentService) Update(ctx context.Context, id uint, in UpdateDepartmentInput) (*models.Department, error) {
	if err := validateInput(entityDepartment, in); err != nil {
		return nil, err
	}

	var department *models.Department
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		department, err = s.departments.Update(ctx, id, models.DepartmentChanges{Name: in.Name})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("department updated", zap.Uint("id", id))
	return department, nil
}

// Delete removes the department together with its categories and their products.
func (s *DepartmentService) Delete(ctx context.Context, id uint) error {
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		return s.departments.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("department deleted", zap.Uint("id", id))
	return nil
}
