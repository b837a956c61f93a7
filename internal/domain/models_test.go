package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress []int
		want     int
	}{
		{"без ключевых результатов", nil, 0},
		{"один результат", []int{40}, 40},
		{"среднее без округления", []int{0, 50, 100}, 50},
		{"округление вверх", []int{33, 34}, 34},
		{"округление вниз", []int{33, 33, 34}, 33},
		{"все на нуле", []int{0, 0, 0}, 0},
		{"все завершены", []int{100, 100}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			okr := &OKR{}
			for _, p := range tt.progress {
				okr.KeyResults = append(okr.KeyResults, KeyResult{Progress: p})
			}
			assert.Equal(t, tt.want, okr.OverallProgress())
		})
	}
}

func TestAssignmentConstructors(t *testing.T) {
	t.Run("назначение на пользователя", func(t *testing.T) {
		a := NewUserAssignment(7)
		assert.Equal(t, AssignmentUser, a.Type)
		assert.NotNil(t, a.UserID)
		assert.Nil(t, a.TeamID)
		assert.True(t, a.IsAssignedToUser(7))
		assert.False(t, a.IsAssignedToUser(8))
		assert.False(t, a.IsAssignedToTeam(7))
	})

	t.Run("назначение на команду", func(t *testing.T) {
		a := NewTeamAssignment(3)
		assert.Equal(t, AssignmentTeam, a.Type)
		assert.NotNil(t, a.TeamID)
		assert.Nil(t, a.UserID)
		assert.True(t, a.IsAssignedToTeam(3))
		assert.False(t, a.IsAssignedToUser(3))
	})
}

func TestValidEnums(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleTeamLead))
	assert.True(t, ValidRole(RoleMember))
	assert.False(t, ValidRole(Role("owner")))

	assert.True(t, ValidStatus(StatusDraft))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus(OKRStatus("archived")))

	assert.True(t, ValidPriority(PriorityCritical))
	assert.False(t, ValidPriority(OKRPriority("urgent")))
}
