package service

import (
	"context"
	"strings"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/policy"
	"github.com/okr-tracker-api/internal/repository"
)

// TeamService определяет интерфейс бизнес-логики для команд
type TeamService interface {
	Create(ctx context.Context, actor policy.Actor, req *dto.CreateTeamRequest) (*domain.Team, error)
	GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.Team, error)
	List(ctx context.Context, actor policy.Actor) ([]domain.Team, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateTeamRequest) (*domain.Team, error)
	SoftDelete(ctx context.Context, actor policy.Actor, id int64) error
}

type teamService struct {
	teamRepo repository.TeamRepository
	deptRepo repository.DepartmentRepository
	userRepo repository.UserRepository
}

// NewTeamService создаёт новый экземпляр сервиса
func NewTeamService(
	teamRepo repository.TeamRepository,
	deptRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		deptRepo: deptRepo,
		userRepo: userRepo,
	}
}

func (s *teamService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateTeamRequest) (*domain.Team, error) {
	if err := policy.CanManageStructure(actor); err != nil {
		return nil, err
	}

	// Подразделение должно существовать в организации актора
	dept, err := s.deptRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept.OrganizationID != actor.OrganizationID {
		return nil, domain.ErrForbidden
	}

	if req.TeamLeadID != nil {
		if err := s.checkTeamLead(ctx, actor, *req.TeamLeadID); err != nil {
			return nil, err
		}
	}

	team := &domain.Team{
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		DepartmentID:   req.DepartmentID,
		OrganizationID: actor.OrganizationID,
		TeamLeadID:     req.TeamLeadID,
		IsActive:       true,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionRead, actor, policy.TargetOrg(team.OrganizationID)); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) List(ctx context.Context, actor policy.Actor) ([]domain.Team, error) {
	return s.teamRepo.ListByOrganization(ctx, actor.OrganizationID)
}

func (s *teamService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateTeamRequest) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionUpdate, actor, policy.TargetOrg(team.OrganizationID)); err != nil {
		return nil, err
	}
	if err := policy.CanManageStructure(actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		team.Description = strings.TrimSpace(*req.Description)
	}
	if req.TeamLeadID != nil {
		if err := s.checkTeamLead(ctx, actor, *req.TeamLeadID); err != nil {
			return nil, err
		}
		team.TeamLeadID = req.TeamLeadID
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) SoftDelete(ctx context.Context, actor policy.Actor, id int64) error {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Decide(policy.ActionDelete, actor, policy.TargetOrg(team.OrganizationID)); err != nil {
		return err
	}
	if err := policy.CanManageStructure(actor); err != nil {
		return err
	}

	return s.teamRepo.SoftDelete(ctx, id)
}

func (s *teamService) checkTeamLead(ctx context.Context, actor policy.Actor, leadID int64) error {
	lead, err := s.userRepo.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if lead.OrganizationID != actor.OrganizationID {
		return domain.ErrForbidden
	}
	return nil
}
