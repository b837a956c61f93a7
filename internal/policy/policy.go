// Package policy содержит чистые функции принятия решений о доступе.
// Никакого ввода-вывода: решение принимается только по данным актора
// и целевой записи. Проверка границы организации всегда выполняется
// первой; запрет по организации перекрывает любое разрешение по роли.
package policy

import "github.com/okr-tracker-api/internal/domain"

// Action определяет проверяемое действие
type Action string

const (
	ActionRead           Action = "read"
	ActionCreate         Action = "create"
	ActionUpdate         Action = "update"
	ActionUpdateProgress Action = "update_progress"
	ActionComment        Action = "comment"
	ActionDelete         Action = "delete"
	ActionList           Action = "list"
)

// Actor — аутентифицированная личность, выполняющая операцию
type Actor struct {
	ID             int64
	Role           domain.Role
	OrganizationID int64
	DepartmentID   *int64
	TeamID         *int64
}

// ActorFromUser строит актора из записи пользователя
func ActorFromUser(u *domain.User) Actor {
	return Actor{
		ID:             u.ID,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
		DepartmentID:   u.DepartmentID,
		TeamID:         u.TeamID,
	}
}

// IsAdmin сообщает, является ли актор администратором
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// Target описывает запись, к которой применяется проверка.
// OrganizationID — граница арендатора записи; OKR и User заполняются
// для правил, зависящих от владения.
type Target struct {
	OrganizationID int64
	OKR            *domain.OKR
	User           *domain.User
}

// TargetOKR строит цель проверки из OKR
func TargetOKR(okr *domain.OKR) Target {
	return Target{OrganizationID: okr.OrganizationID, OKR: okr}
}

// TargetUser строит цель проверки из пользователя
func TargetUser(u *domain.User) Target {
	return Target{OrganizationID: u.OrganizationID, User: u}
}

// TargetOrg строит цель проверки из границы организации
func TargetOrg(orgID int64) Target {
	return Target{OrganizationID: orgID}
}

// Decide принимает решение о доступе: nil — разрешено,
// domain.ErrForbidden — запрещено. Сначала проверяется граница
// организации, затем правило по роли или владению.
func Decide(action Action, actor Actor, target Target) error {
	if target.OrganizationID != actor.OrganizationID {
		return domain.ErrForbidden
	}

	switch {
	case target.OKR != nil:
		return decideOKR(action, actor, target.OKR)
	case target.User != nil:
		return decideUser(action, actor, target.User)
	default:
		// Чтение записей в пределах своей организации
		return nil
	}
}

func decideOKR(action Action, actor Actor, okr *domain.OKR) error {
	switch action {
	case ActionRead, ActionList:
		return nil
	case ActionUpdate, ActionUpdateProgress, ActionComment:
		if actor.IsAdmin() || okr.AssignedByID == actor.ID || okr.AssignedTo.IsAssignedToUser(actor.ID) {
			return nil
		}
	case ActionDelete:
		// Назначенный не может удалить чужой OKR, выданный ему
		if actor.IsAdmin() || okr.AssignedByID == actor.ID {
			return nil
		}
	}
	return domain.ErrForbidden
}

func decideUser(action Action, actor Actor, user *domain.User) error {
	switch action {
	case ActionRead, ActionList:
		return nil
	case ActionUpdate, ActionDelete:
		if actor.IsAdmin() || user.ID == actor.ID {
			return nil
		}
	}
	return domain.ErrForbidden
}

// CanListOrganizations: перечисление всех организаций доступно
// только администратору
func CanListOrganizations(actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

// CanCreateOrganization: создание организации доступно только
// администратору
func CanCreateOrganization(actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

// CanManageStructure: создание и изменение подразделений и команд
// требует роли admin или team_lead
func CanManageStructure(actor Actor) error {
	if actor.Role == domain.RoleAdmin || actor.Role == domain.RoleTeamLead {
		return nil
	}
	return domain.ErrForbidden
}
