package policy

import (
	"testing"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func member(orgID int64) Actor {
	return Actor{ID: 10, Role: domain.RoleMember, OrganizationID: orgID}
}

func admin(orgID int64) Actor {
	return Actor{ID: 1, Role: domain.RoleAdmin, OrganizationID: orgID}
}

func teamLead(orgID int64) Actor {
	return Actor{ID: 5, Role: domain.RoleTeamLead, OrganizationID: orgID}
}

func TestDecide_OrganizationScope(t *testing.T) {
	// Чужая организация запрещена для любой роли и любого действия
	okr := &domain.OKR{OrganizationID: 2, AssignedByID: 1}
	actions := []Action{ActionRead, ActionUpdate, ActionUpdateProgress, ActionComment, ActionDelete}

	for _, action := range actions {
		assert.ErrorIs(t, Decide(action, admin(1), TargetOKR(okr)), domain.ErrForbidden,
			"admin, action %s", action)
		assert.ErrorIs(t, Decide(action, member(1), TargetOKR(okr)), domain.ErrForbidden,
			"member, action %s", action)
	}
}

func TestDecide_OrgScopeOverridesOwnership(t *testing.T) {
	// Владение не спасает, если граница организации нарушена
	actor := member(1)
	okr := &domain.OKR{
		OrganizationID: 2,
		AssignedByID:   actor.ID,
		AssignedTo:     domain.NewUserAssignment(actor.ID),
	}
	assert.ErrorIs(t, Decide(ActionUpdate, actor, TargetOKR(okr)), domain.ErrForbidden)
}

func TestDecide_OKRRead(t *testing.T) {
	okr := &domain.OKR{OrganizationID: 1, AssignedByID: 99}
	assert.NoError(t, Decide(ActionRead, member(1), TargetOKR(okr)))
}

func TestDecide_OKRUpdate(t *testing.T) {
	t.Run("администратор может редактировать любой OKR организации", func(t *testing.T) {
		okr := &domain.OKR{OrganizationID: 1, AssignedByID: 99}
		assert.NoError(t, Decide(ActionUpdate, admin(1), TargetOKR(okr)))
	})

	t.Run("назначивший может редактировать", func(t *testing.T) {
		actor := member(1)
		okr := &domain.OKR{OrganizationID: 1, AssignedByID: actor.ID}
		assert.NoError(t, Decide(ActionUpdate, actor, TargetOKR(okr)))
	})

	t.Run("назначенный пользователь может редактировать", func(t *testing.T) {
		actor := member(1)
		okr := &domain.OKR{
			OrganizationID: 1,
			AssignedByID:   99,
			AssignedTo:     domain.NewUserAssignment(actor.ID),
		}
		assert.NoError(t, Decide(ActionUpdate, actor, TargetOKR(okr)))
	})

	t.Run("назначение на команду не даёт участнику прав на запись", func(t *testing.T) {
		teamID := int64(3)
		actor := Actor{ID: 10, Role: domain.RoleMember, OrganizationID: 1, TeamID: &teamID}
		okr := &domain.OKR{
			OrganizationID: 1,
			AssignedByID:   99,
			AssignedTo:     domain.NewTeamAssignment(teamID),
		}
		assert.ErrorIs(t, Decide(ActionUpdate, actor, TargetOKR(okr)), domain.ErrForbidden)
	})

	t.Run("посторонний участник не может редактировать", func(t *testing.T) {
		okr := &domain.OKR{OrganizationID: 1, AssignedByID: 99}
		assert.ErrorIs(t, Decide(ActionUpdate, member(1), TargetOKR(okr)), domain.ErrForbidden)
	})
}

func TestDecide_OKRProgressAndComment(t *testing.T) {
	actor := member(1)
	okr := &domain.OKR{
		OrganizationID: 1,
		AssignedByID:   99,
		AssignedTo:     domain.NewUserAssignment(actor.ID),
	}

	assert.NoError(t, Decide(ActionUpdateProgress, actor, TargetOKR(okr)))
	assert.NoError(t, Decide(ActionComment, actor, TargetOKR(okr)))
}

func TestDecide_OKRDelete(t *testing.T) {
	t.Run("назначенный не может удалить выданный ему OKR", func(t *testing.T) {
		actor := member(1)
		okr := &domain.OKR{
			OrganizationID: 1,
			AssignedByID:   99,
			AssignedTo:     domain.NewUserAssignment(actor.ID),
		}
		assert.ErrorIs(t, Decide(ActionDelete, actor, TargetOKR(okr)), domain.ErrForbidden)
	})

	t.Run("назначивший может удалить", func(t *testing.T) {
		actor := member(1)
		okr := &domain.OKR{OrganizationID: 1, AssignedByID: actor.ID}
		assert.NoError(t, Decide(ActionDelete, actor, TargetOKR(okr)))
	})

	t.Run("администратор может удалить", func(t *testing.T) {
		okr := &domain.OKR{OrganizationID: 1, AssignedByID: 99}
		assert.NoError(t, Decide(ActionDelete, admin(1), TargetOKR(okr)))
	})
}

func TestDecide_AssignerWhoIsAlsoAssignee(t *testing.T) {
	// Пользователь, сам себе назначивший OKR, сохраняет полные права
	actor := member(1)
	okr := &domain.OKR{
		OrganizationID: 1,
		AssignedByID:   actor.ID,
		AssignedTo:     domain.NewUserAssignment(actor.ID),
	}

	assert.NoError(t, Decide(ActionUpdate, actor, TargetOKR(okr)))
	assert.NoError(t, Decide(ActionUpdateProgress, actor, TargetOKR(okr)))
	assert.NoError(t, Decide(ActionDelete, actor, TargetOKR(okr)))
}

func TestDecide_UserProfile(t *testing.T) {
	target := &domain.User{ID: 10, OrganizationID: 1}

	t.Run("сам пользователь может обновить профиль", func(t *testing.T) {
		actor := Actor{ID: 10, Role: domain.RoleMember, OrganizationID: 1}
		assert.NoError(t, Decide(ActionUpdate, actor, TargetUser(target)))
	})

	t.Run("администратор может обновить профиль", func(t *testing.T) {
		assert.NoError(t, Decide(ActionUpdate, admin(1), TargetUser(target)))
	})

	t.Run("другой участник не может", func(t *testing.T) {
		actor := Actor{ID: 11, Role: domain.RoleMember, OrganizationID: 1}
		assert.ErrorIs(t, Decide(ActionUpdate, actor, TargetUser(target)), domain.ErrForbidden)
	})

	t.Run("team_lead не получает прав на чужой профиль", func(t *testing.T) {
		assert.ErrorIs(t, Decide(ActionUpdate, teamLead(1), TargetUser(target)), domain.ErrForbidden)
	})
}

func TestOrganizationRules(t *testing.T) {
	assert.NoError(t, CanListOrganizations(admin(1)))
	assert.ErrorIs(t, CanListOrganizations(member(1)), domain.ErrForbidden)
	assert.ErrorIs(t, CanListOrganizations(teamLead(1)), domain.ErrForbidden)

	assert.NoError(t, CanCreateOrganization(admin(1)))
	assert.ErrorIs(t, CanCreateOrganization(member(1)), domain.ErrForbidden)
}

func TestStructureRules(t *testing.T) {
	assert.NoError(t, CanManageStructure(admin(1)))
	assert.NoError(t, CanManageStructure(teamLead(1)))
	assert.ErrorIs(t, CanManageStructure(member(1)), domain.ErrForbidden)
}

func TestActorFromUser(t *testing.T) {
	deptID, teamID := int64(4), int64(9)
	user := &domain.User{
		ID:             33,
		Role:           domain.RoleTeamLead,
		OrganizationID: 2,
		DepartmentID:   &deptID,
		TeamID:         &teamID,
	}

	actor := ActorFromUser(user)
	assert.Equal(t, int64(33), actor.ID)
	assert.Equal(t, domain.RoleTeamLead, actor.Role)
	assert.Equal(t, int64(2), actor.OrganizationID)
	assert.Equal(t, &deptID, actor.DepartmentID)
	assert.Equal(t, &teamID, actor.TeamID)
	assert.False(t, actor.IsAdmin())
}
