package service

import (
	"context"
	"strings"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/policy"
	"github.com/okr-tracker-api/internal/repository"
)

// OrganizationService определяет интерфейс бизнес-логики для организаций
type OrganizationService interface {
	Create(ctx context.Context, actor policy.Actor, req *dto.CreateOrganizationRequest) (*domain.Organization, error)
	GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.Organization, error)
	List(ctx context.Context, actor policy.Actor) ([]domain.Organization, error)
	SoftDelete(ctx context.Context, actor policy.Actor, id int64) error
}

type organizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService создаёт новый экземпляр сервиса
func NewOrganizationService(orgRepo repository.OrganizationRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo}
}

func (s *organizationService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateOrganizationRequest) (*domain.Organization, error) {
	if err := policy.CanCreateOrganization(actor); err != nil {
		return nil, err
	}

	org := &domain.Organization{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Domain:      strings.TrimSpace(req.Domain),
		IsActive:    true,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *organizationService) GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionRead, actor, policy.TargetOrg(org.ID)); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *organizationService) List(ctx context.Context, actor policy.Actor) ([]domain.Organization, error) {
	if err := policy.CanListOrganizations(actor); err != nil {
		return nil, err
	}

	return s.orgRepo.List(ctx)
}

func (s *organizationService) SoftDelete(ctx context.Context, actor policy.Actor, id int64) error {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Decide(policy.ActionDelete, actor, policy.TargetOrg(org.ID)); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	return s.orgRepo.SoftDelete(ctx, id)
}
