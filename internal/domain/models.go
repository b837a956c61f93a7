package domain

import (
	"math"
	"time"
)

// Role определяет роль пользователя в организации
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTeamLead Role = "team_lead"
	RoleMember   Role = "member"
)

// OKRStatus определяет статус OKR
type OKRStatus string

const (
	StatusDraft     OKRStatus = "draft"
	StatusActive    OKRStatus = "active"
	StatusCompleted OKRStatus = "completed"
	StatusCancelled OKRStatus = "cancelled"
)

// OKRPriority определяет приоритет OKR
type OKRPriority string

const (
	PriorityLow      OKRPriority = "low"
	PriorityMedium   OKRPriority = "medium"
	PriorityHigh     OKRPriority = "high"
	PriorityCritical OKRPriority = "critical"
)

// Organization представляет организацию — корневую границу арендатора
type Organization struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Domain      string    `json:"domain" gorm:"type:varchar(200)"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Organization) TableName() string {
	return "organizations"
}

// Department представляет подразделение организации
type Department struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"type:varchar(200);not null"`
	Description    string    `json:"description" gorm:"type:text"`
	OrganizationID int64     `json:"organization_id" gorm:"not null;index"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Team представляет команду внутри подразделения
type Team struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"type:varchar(200);not null"`
	Description    string    `json:"description" gorm:"type:text"`
	DepartmentID   int64     `json:"department_id" gorm:"not null;index"`
	OrganizationID int64     `json:"organization_id" gorm:"not null;index"`
	TeamLeadID     *int64    `json:"team_lead_id" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
	TeamLead   *User       `json:"team_lead,omitempty" gorm:"foreignKey:TeamLeadID"`
}

// TableName задаёт имя таблицы для GORM
func (Team) TableName() string {
	return "teams"
}

// User представляет пользователя организации
type User struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName      string    `json:"first_name" gorm:"type:varchar(200);not null"`
	LastName       string    `json:"last_name" gorm:"type:varchar(200);not null"`
	Email          string    `json:"email" gorm:"type:varchar(200);not null;uniqueIndex"`
	Role           Role      `json:"role" gorm:"type:varchar(50);not null;default:member"`
	OrganizationID int64     `json:"organization_id" gorm:"not null;index"`
	DepartmentID   *int64    `json:"department_id" gorm:"index"`
	TeamID         *int64    `json:"team_id" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// AssignmentType определяет вариант назначения OKR
type AssignmentType string

const (
	AssignmentUser AssignmentType = "user"
	AssignmentTeam AssignmentType = "team"
)

// Assignment — размеченное объединение: OKR назначен либо пользователю,
// либо команде, ровно одна ветка заполнена. Создаётся только через
// NewUserAssignment и NewTeamAssignment.
type Assignment struct {
	Type   AssignmentType `json:"type" gorm:"column:assigned_to_type;type:varchar(10);not null"`
	UserID *int64         `json:"user_id,omitempty" gorm:"column:assigned_to_user_id;index"`
	TeamID *int64         `json:"team_id,omitempty" gorm:"column:assigned_to_team_id;index"`
}

// NewUserAssignment создаёт назначение на пользователя
func NewUserAssignment(userID int64) Assignment {
	return Assignment{Type: AssignmentUser, UserID: &userID}
}

// NewTeamAssignment создаёт назначение на команду
func NewTeamAssignment(teamID int64) Assignment {
	return Assignment{Type: AssignmentTeam, TeamID: &teamID}
}

// IsAssignedToUser сообщает, назначен ли OKR указанному пользователю
func (a Assignment) IsAssignedToUser(userID int64) bool {
	return a.Type == AssignmentUser && a.UserID != nil && *a.UserID == userID
}

// IsAssignedToTeam сообщает, назначен ли OKR указанной команде
func (a Assignment) IsAssignedToTeam(teamID int64) bool {
	return a.Type == AssignmentTeam && a.TeamID != nil && *a.TeamID == teamID
}

// KeyResult представляет ключевой результат OKR с прогрессом 0–100
type KeyResult struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OKRID       int64  `json:"okr_id" gorm:"not null;index"`
	Description string `json:"description" gorm:"type:text;not null"`
	Target      string `json:"target" gorm:"type:varchar(200)"`
	Progress    int    `json:"progress" gorm:"not null;default:0"`
	Position    int    `json:"-" gorm:"not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (KeyResult) TableName() string {
	return "key_results"
}

// Comment представляет комментарий к OKR; комментарии только добавляются
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OKRID     int64     `json:"okr_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName задаёт имя таблицы для GORM
func (Comment) TableName() string {
	return "okr_comments"
}

// OKR представляет цель с ключевыми результатами
type OKR struct {
	ID             int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string      `json:"title" gorm:"type:varchar(200);not null"`
	Objective      string      `json:"objective" gorm:"type:text;not null"`
	AssignedTo     Assignment  `json:"assigned_to" gorm:"embedded"`
	AssignedByID   int64       `json:"assigned_by_id" gorm:"not null;index"`
	OrganizationID int64       `json:"organization_id" gorm:"not null;index"`
	DepartmentID   *int64      `json:"department_id" gorm:"index"`
	TeamID         *int64      `json:"team_id" gorm:"index"`
	Status         OKRStatus   `json:"status" gorm:"type:varchar(20);not null;default:draft"`
	Priority       OKRPriority `json:"priority" gorm:"type:varchar(20);not null;default:medium"`
	StartDate      time.Time   `json:"start_date" gorm:"not null"`
	DueDate        time.Time   `json:"due_date" gorm:"not null"`
	CompletedAt    *time.Time  `json:"completed_at"`
	IsActive       bool        `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`

	KeyResults []KeyResult `json:"key_results" gorm:"foreignKey:OKRID;constraint:OnDelete:CASCADE"`
	Comments   []Comment   `json:"comments,omitempty" gorm:"foreignKey:OKRID;constraint:OnDelete:CASCADE"`
	AssignedBy *User       `json:"assigned_by,omitempty" gorm:"foreignKey:AssignedByID"`
}

// TableName задаёт имя таблицы для GORM
func (OKR) TableName() string {
	return "okrs"
}

// OverallProgress возвращает округлённое среднее прогресса ключевых
// результатов, 0 для пустого списка. Значение всегда вычисляется и
// никогда не хранится.
func (o *OKR) OverallProgress() int {
	if len(o.KeyResults) == 0 {
		return 0
	}
	sum := 0
	for _, kr := range o.KeyResults {
		sum += kr.Progress
	}
	return int(math.Round(float64(sum) / float64(len(o.KeyResults))))
}

// ValidRole проверяет, что роль входит в допустимый набор
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleTeamLead, RoleMember:
		return true
	}
	return false
}

// ValidStatus проверяет, что статус входит в допустимый набор
func ValidStatus(s OKRStatus) bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPriority проверяет, что приоритет входит в допустимый набор
func ValidPriority(p OKRPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
