package service

import (
	"context"
	"strings"
	"time"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/okr-tracker-api/internal/policy"
	"github.com/okr-tracker-api/internal/repository"
)

// OKRService определяет интерфейс жизненного цикла OKR
type OKRService interface {
	Create(ctx context.Context, actor policy.Actor, req *dto.CreateOKRRequest) (*domain.OKR, error)
	GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.OKR, error)
	List(ctx context.Context, actor policy.Actor, query *dto.OKRListQuery) ([]domain.OKR, error)
	Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateOKRRequest) (*domain.OKR, error)
	UpdateProgress(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateProgressRequest) (*domain.OKR, error)
	AddComment(ctx context.Context, actor policy.Actor, id int64, req *dto.CreateCommentRequest) (*domain.OKR, error)
	SoftDelete(ctx context.Context, actor policy.Actor, id int64) error
}

type okrService struct {
	okrRepo  repository.OKRRepository
	userRepo repository.UserRepository
	teamRepo repository.TeamRepository
	now      func() time.Time
}

// NewOKRService создаёт новый экземпляр сервиса
func NewOKRService(
	okrRepo repository.OKRRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
) OKRService {
	return &okrService{
		okrRepo:  okrRepo,
		userRepo: userRepo,
		teamRepo: teamRepo,
		now:      time.Now,
	}
}

func (s *okrService) Create(ctx context.Context, actor policy.Actor, req *dto.CreateOKRRequest) (*domain.OKR, error) {
	title := strings.TrimSpace(req.Title)
	objective := strings.TrimSpace(req.Objective)

	keyResults, err := buildKeyResults(req.KeyResults, true)
	if err != nil {
		return nil, err
	}

	assignment, err := s.resolveAssignment(ctx, actor, &req.AssignedTo)
	if err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidDueDate
	}

	startDate := s.now()
	if req.StartDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidDueDate
		}
		startDate = parsed
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.OKRPriority(req.Priority)
		if !domain.ValidPriority(priority) {
			return nil, domain.ErrInvalidPriority
		}
	}

	// Контекст назначившего берётся из актора, не из запроса
	okr := &domain.OKR{
		Title:          title,
		Objective:      objective,
		KeyResults:     keyResults,
		AssignedTo:     assignment,
		AssignedByID:   actor.ID,
		OrganizationID: actor.OrganizationID,
		DepartmentID:   actor.DepartmentID,
		TeamID:         actor.TeamID,
		Status:         domain.StatusDraft,
		Priority:       priority,
		StartDate:      startDate,
		DueDate:        dueDate,
		IsActive:       true,
	}

	if err := s.okrRepo.Create(ctx, okr); err != nil {
		return nil, err
	}

	return s.okrRepo.GetByID(ctx, okr.ID)
}

// GetByID возвращает OKR по идентификатору; мягко удалённые записи
// не скрываются при прямом доступе, фильтруются только списки.
func (s *okrService) GetByID(ctx context.Context, actor policy.Actor, id int64) (*domain.OKR, error) {
	okr, err := s.okrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionRead, actor, policy.TargetOKR(okr)); err != nil {
		return nil, err
	}

	return okr, nil
}

func (s *okrService) List(ctx context.Context, actor policy.Actor, query *dto.OKRListQuery) ([]domain.OKR, error) {
	filter := repository.OKRFilter{
		Status:   domain.OKRStatus(query.Status),
		Priority: domain.OKRPriority(query.Priority),
	}

	switch query.AssignedTo {
	case "me":
		filter.AssignedUserID = &actor.ID
	case "team":
		// Фильтр по команде имеет смысл только при наличии команды
		if actor.TeamID == nil {
			return []domain.OKR{}, nil
		}
		filter.AssignedTeamID = actor.TeamID
	}

	return s.okrRepo.ListByOrganization(ctx, actor.OrganizationID, filter)
}

func (s *okrService) Update(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateOKRRequest) (*domain.OKR, error) {
	okr, err := s.okrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionUpdate, actor, policy.TargetOKR(okr)); err != nil {
		return nil, err
	}

	keyResults, err := buildKeyResults(req.KeyResults, true)
	if err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidDueDate
	}

	okr.Title = strings.TrimSpace(req.Title)
	okr.Objective = strings.TrimSpace(req.Objective)
	okr.KeyResults = keyResults
	okr.DueDate = dueDate

	// Назначение заменяется только если передано
	if req.AssignedTo != nil {
		assignment, err := s.resolveAssignment(ctx, actor, req.AssignedTo)
		if err != nil {
			return nil, err
		}
		okr.AssignedTo = assignment
	}

	// Приоритет сохраняет прежнее значение, если не передан
	if req.Priority != "" {
		priority := domain.OKRPriority(req.Priority)
		if !domain.ValidPriority(priority) {
			return nil, domain.ErrInvalidPriority
		}
		okr.Priority = priority
	}

	if req.Status != "" {
		status := domain.OKRStatus(req.Status)
		if !domain.ValidStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		// Дата завершения ставится один раз, при переходе в completed,
		// и не очищается при последующих переходах
		if status == domain.StatusCompleted && okr.Status != domain.StatusCompleted {
			completedAt := s.now()
			okr.CompletedAt = &completedAt
		}
		okr.Status = status
	}

	if err := s.okrRepo.Update(ctx, okr); err != nil {
		return nil, err
	}

	return s.okrRepo.GetByID(ctx, okr.ID)
}

// UpdateProgress заменяет массив ключевых результатов целиком,
// не затрагивая остальные поля OKR
func (s *okrService) UpdateProgress(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateProgressRequest) (*domain.OKR, error) {
	okr, err := s.okrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionUpdateProgress, actor, policy.TargetOKR(okr)); err != nil {
		return nil, err
	}

	keyResults, err := buildKeyResults(req.KeyResults, false)
	if err != nil {
		return nil, err
	}

	if err := s.okrRepo.ReplaceKeyResults(ctx, id, keyResults); err != nil {
		return nil, err
	}

	return s.okrRepo.GetByID(ctx, id)
}

func (s *okrService) AddComment(ctx context.Context, actor policy.Actor, id int64, req *dto.CreateCommentRequest) (*domain.OKR, error) {
	okr, err := s.okrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Decide(policy.ActionComment, actor, policy.TargetOKR(okr)); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, domain.ErrEmptyCommentText
	}

	comment := &domain.Comment{
		OKRID:     id,
		UserID:    actor.ID,
		Text:      text,
		CreatedAt: s.now(),
	}

	if err := s.okrRepo.AppendComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.okrRepo.GetByID(ctx, id)
}

func (s *okrService) SoftDelete(ctx context.Context, actor policy.Actor, id int64) error {
	okr, err := s.okrRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Decide(policy.ActionDelete, actor, policy.TargetOKR(okr)); err != nil {
		return err
	}

	return s.okrRepo.SoftDelete(ctx, id)
}

// resolveAssignment проверяет, что заполнена ровно одна ветка
// назначения и что цель существует в организации актора
func (s *okrService) resolveAssignment(ctx context.Context, actor policy.Actor, input *dto.AssignmentInput) (domain.Assignment, error) {
	switch domain.AssignmentType(input.Type) {
	case domain.AssignmentUser:
		if input.UserID == nil || input.TeamID != nil {
			return domain.Assignment{}, domain.ErrInvalidAssignment
		}
		user, err := s.userRepo.GetByID(ctx, *input.UserID)
		if err != nil {
			return domain.Assignment{}, domain.ErrAssigneeNotFound
		}
		if user.OrganizationID != actor.OrganizationID {
			return domain.Assignment{}, domain.ErrForbidden
		}
		return domain.NewUserAssignment(user.ID), nil

	case domain.AssignmentTeam:
		if input.TeamID == nil || input.UserID != nil {
			return domain.Assignment{}, domain.ErrInvalidAssignment
		}
		team, err := s.teamRepo.GetByID(ctx, *input.TeamID)
		if err != nil {
			return domain.Assignment{}, domain.ErrAssigneeNotFound
		}
		if team.OrganizationID != actor.OrganizationID {
			return domain.Assignment{}, domain.ErrForbidden
		}
		return domain.NewTeamAssignment(team.ID), nil
	}

	return domain.Assignment{}, domain.ErrInvalidAssignment
}

// buildKeyResults переводит ключевые результаты запроса в доменные.
// requireOne включает обязательный минимум при создании и полном
// обновлении; прогресс-обновление принимает массив любой длины.
func buildKeyResults(inputs []dto.KeyResultInput, requireOne bool) ([]domain.KeyResult, error) {
	if requireOne && len(inputs) == 0 {
		return nil, domain.ErrNoKeyResults
	}

	keyResults := make([]domain.KeyResult, 0, len(inputs))
	for _, in := range inputs {
		description := strings.TrimSpace(in.Description)
		if description == "" {
			return nil, domain.ErrEmptyKeyResult
		}
		if in.Progress < 0 || in.Progress > 100 {
			return nil, domain.ErrInvalidKeyResults
		}
		keyResults = append(keyResults, domain.KeyResult{
			Description: description,
			Target:      strings.TrimSpace(in.Target),
			Progress:    in.Progress,
		})
	}

	return keyResults, nil
}
