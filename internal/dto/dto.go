package dto

import (
	"time"

	"github.com/okr-tracker-api/internal/domain"
)

// CreateOrganizationRequest - запрос на создание организации
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Domain      string `json:"domain" validate:"max=200"`
}

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateDepartmentRequest - запрос на обновление подразделения
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// CreateTeamRequest - запрос на создание команды
type CreateTeamRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	DepartmentID int64  `json:"department_id" validate:"required,min=1"`
	TeamLeadID   *int64 `json:"team_lead_id" validate:"omitempty,min=1"`
}

// UpdateTeamRequest - запрос на обновление команды
type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	TeamLeadID  *int64  `json:"team_lead_id" validate:"omitempty,min=1"`
}

// CreateUserRequest - запрос на создание пользователя
type CreateUserRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=1,max=200"`
	LastName       string `json:"last_name" validate:"required,min=1,max=200"`
	Email          string `json:"email" validate:"required,email,max=200"`
	Role           string `json:"role" validate:"omitempty,oneof=admin team_lead member"`
	OrganizationID int64  `json:"organization_id" validate:"required,min=1"`
	DepartmentID   *int64 `json:"department_id" validate:"omitempty,min=1"`
	TeamID         *int64 `json:"team_id" validate:"omitempty,min=1"`
}

// UpdateUserRequest - запрос на обновление профиля пользователя
type UpdateUserRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1,max=200"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1,max=200"`
	Email        *string `json:"email" validate:"omitempty,email,max=200"`
	Role         *string `json:"role" validate:"omitempty,oneof=admin team_lead member"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,min=1"`
	TeamID       *int64  `json:"team_id" validate:"omitempty,min=1"`
}

// KeyResultInput - ключевой результат в запросе
type KeyResultInput struct {
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Target      string `json:"target" validate:"max=200"`
	Progress    int    `json:"progress" validate:"min=0,max=100"`
}

// AssignmentInput - назначение OKR в запросе, ровно одна из веток
type AssignmentInput struct {
	Type   string `json:"type" validate:"required,oneof=user team"`
	UserID *int64 `json:"user_id" validate:"omitempty,min=1"`
	TeamID *int64 `json:"team_id" validate:"omitempty,min=1"`
}

// CreateOKRRequest - запрос на создание OKR
type CreateOKRRequest struct {
	Title      string           `json:"title" validate:"required,min=1,max=200"`
	Objective  string           `json:"objective" validate:"required,min=1,max=2000"`
	KeyResults []KeyResultInput `json:"key_results" validate:"required,min=1,dive"`
	AssignedTo AssignmentInput  `json:"assigned_to" validate:"required"`
	Priority   string           `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	StartDate  *string          `json:"start_date" validate:"omitempty"`
	DueDate    string           `json:"due_date" validate:"required"`
}

// UpdateOKRRequest - запрос на полное обновление OKR
type UpdateOKRRequest struct {
	Title      string           `json:"title" validate:"required,min=1,max=200"`
	Objective  string           `json:"objective" validate:"required,min=1,max=2000"`
	KeyResults []KeyResultInput `json:"key_results" validate:"required,min=1,dive"`
	AssignedTo *AssignmentInput `json:"assigned_to" validate:"omitempty"`
	Priority   string           `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Status     string           `json:"status" validate:"omitempty,oneof=draft active completed cancelled"`
	DueDate    string           `json:"due_date" validate:"required"`
}

// UpdateProgressRequest - запрос на обновление прогресса: массив
// ключевых результатов заменяется целиком
type UpdateProgressRequest struct {
	KeyResults []KeyResultInput `json:"key_results" validate:"required,dive"`
}

// CreateCommentRequest - запрос на добавление комментария
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=4000"`
}

// OKRListQuery - параметры фильтрации списка OKR
type OKRListQuery struct {
	Status     string `validate:"omitempty,oneof=draft active completed cancelled"`
	Priority   string `validate:"omitempty,oneof=low medium high critical"`
	AssignedTo string `validate:"omitempty,oneof=me team"`
}

// UserProjection - краткое представление пользователя в ответах
type UserProjection struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// KeyResultResponse - ключевой результат в ответе
type KeyResultResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Target      string `json:"target,omitempty"`
	Progress    int    `json:"progress"`
}

// CommentResponse - комментарий в ответе
type CommentResponse struct {
	ID        int64           `json:"id"`
	User      *UserProjection `json:"user,omitempty"`
	UserID    int64           `json:"user_id"`
	Text      string          `json:"text"`
	CreatedAt time.Time       `json:"created_at"`
}

// AssignmentResponse - назначение OKR в ответе
type AssignmentResponse struct {
	Type   string `json:"type"`
	UserID *int64 `json:"user_id,omitempty"`
	TeamID *int64 `json:"team_id,omitempty"`
}

// OKRResponse - ответ с данными OKR; overall_progress всегда
// вычисляется из ключевых результатов
type OKRResponse struct {
	ID              int64               `json:"id"`
	Title           string              `json:"title"`
	Objective       string              `json:"objective"`
	KeyResults      []KeyResultResponse `json:"key_results"`
	OverallProgress int                 `json:"overall_progress"`
	AssignedTo      AssignmentResponse  `json:"assigned_to"`
	AssignedBy      *UserProjection     `json:"assigned_by,omitempty"`
	AssignedByID    int64               `json:"assigned_by_id"`
	OrganizationID  int64               `json:"organization_id"`
	DepartmentID    *int64              `json:"department_id,omitempty"`
	TeamID          *int64              `json:"team_id,omitempty"`
	Status          domain.OKRStatus    `json:"status"`
	Priority        domain.OKRPriority  `json:"priority"`
	StartDate       time.Time           `json:"start_date"`
	DueDate         time.Time           `json:"due_date"`
	CompletedAt     *time.Time          `json:"completed_at"`
	Comments        []CommentResponse   `json:"comments,omitempty"`
	IsActive        bool                `json:"is_active"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
