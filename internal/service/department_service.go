package service

import (
	"context"
	"strings"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/policy"
	"github.com/okr-tracker-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	Create(ctx context.Context, actor policy.Actor, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.Department, error)
	List(ctx context.Context, actor policy.Actor) ([]domain.Department, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	SoftDelete(ctx context.Context, actor policy.Actor, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

func (s *departmentService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	if err := policy.CanManageStructure(actor); err != nil {
		return nil, err
	}

	// Организация берётся из контекста актора, не из запроса
	dept := &domain.Department{
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		OrganizationID: actor.OrganizationID,
		IsActive:       true,
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionRead, actor, policy.TargetOrg(dept.OrganizationID)); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) List(ctx context.Context, actor policy.Actor) ([]domain.Department, error) {
	return s.deptRepo.ListByOrganization(ctx, actor.OrganizationID)
}

func (s *departmentService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionUpdate, actor, policy.TargetOrg(dept.OrganizationID)); err != nil {
		return nil, err
	}
	if err := policy.CanManageStructure(actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		dept.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		dept.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) SoftDelete(ctx context.Context, actor policy.Actor, id int64) error {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Decide(policy.ActionDelete, actor, policy.TargetOrg(dept.OrganizationID)); err != nil {
		return err
	}
	if err := policy.CanManageStructure(actor); err != nil {
		return err
	}

	return s.deptRepo.SoftDelete(ctx, id)
}
