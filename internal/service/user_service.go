package service

import (
	"context"
	"strings"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/policy"
	"github.com/okr-tracker-api/internal/repository"
)

// UserService определяет интерфейс бизнес-логики для пользователей
type UserService interface {
	Create(ctx context.Context, actor policy.Actor, req *dto.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.User, error)
	List(ctx context.Context, actor policy.Actor) ([]domain.User, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateUserRequest) (*domain.User, error)
	SoftDelete(ctx context.Context, actor policy.Actor, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
}

// NewUserService создаёт новый экземпляр сервиса
func NewUserService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository) UserService {
	return &userService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

// Create заводит пользователя. Доступно только администратору,
// организация указывается явно: так заполняются новые арендаторы.
func (s *userService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateUserRequest) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.orgRepo.GetByID(ctx, req.OrganizationID); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	role := domain.RoleMember
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !domain.ValidRole(role) {
			return nil, domain.ErrInvalidRole
		}
	}

	user := &domain.User{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          email,
		Role:           role,
		OrganizationID: req.OrganizationID,
		DepartmentID:   req.DepartmentID,
		TeamID:         req.TeamID,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionRead, actor, policy.TargetUser(user)); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) List(ctx context.Context, actor policy.Actor) ([]domain.User, error) {
	return s.userRepo.ListByOrganization(ctx, actor.OrganizationID)
}

func (s *userService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionUpdate, actor, policy.TargetUser(user)); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateEmail
			}
			user.Email = email
		}
	}
	if req.Role != nil {
		// Повышение роли доступно только администратору
		if !actor.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		role := domain.Role(*req.Role)
		if !domain.ValidRole(role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = role
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}
	if req.TeamID != nil {
		user.TeamID = req.TeamID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) SoftDelete(ctx context.Context, actor policy.Actor, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Decide(policy.ActionDelete, actor, policy.TargetUser(user)); err != nil {
		return err
	}

	return s.userRepo.SoftDelete(ctx, id)
}
