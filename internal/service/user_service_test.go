package service

import (
	"context"
	"testing"

	"github.com/okr-tracker-api/internal/domain"
	"github.com/okr-tracker-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	t.Run("администратор создаёт пользователя", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		orgRepo := new(MockOrganizationRepository)
		s := NewUserService(userRepo, orgRepo)

		orgRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.Organization{ID: 2}, nil).Once()
		userRepo.On("ExistsByEmail", mock.Anything, "alice@acme.io").Return(false, nil).Once()
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@acme.io" && u.Role == domain.RoleMember && u.OrganizationID == 2
		})).Return(nil).Once()

		user, err := s.Create(context.Background(), adminActor(1, 1), &dto.CreateUserRequest{
			FirstName:      "Alice",
			LastName:       "Smith",
			Email:          "  Alice@Acme.io  ",
			OrganizationID: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@acme.io", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("ошибка: не администратор", func(t *testing.T) {
		s := NewUserService(new(MockUserRepository), new(MockOrganizationRepository))

		_, err := s.Create(context.Background(), memberActor(10, 1), &dto.CreateUserRequest{
			FirstName:      "Bob",
			LastName:       "Jones",
			Email:          "bob@acme.io",
			OrganizationID: 1,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("ошибка: дубликат email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		orgRepo := new(MockOrganizationRepository)
		s := NewUserService(userRepo, orgRepo)

		orgRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Organization{ID: 1}, nil).Once()
		userRepo.On("ExistsByEmail", mock.Anything, "bob@acme.io").Return(true, nil).Once()

		_, err := s.Create(context.Background(), adminActor(1, 1), &dto.CreateUserRequest{
			FirstName:      "Bob",
			LastName:       "Jones",
			Email:          "bob@acme.io",
			OrganizationID: 1,
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("пользователь обновляет свой профиль", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewUserService(userRepo, new(MockOrganizationRepository))

		user := &domain.User{ID: 10, OrganizationID: 1, FirstName: "Old", Role: domain.RoleMember}
		userRepo.On("GetByID", mock.Anything, int64(10)).Return(user, nil).Once()
		userRepo.On("Update", mock.Anything, user).Return(nil).Once()

		name := "New"
		updated, err := s.Update(context.Background(), memberActor(10, 1), 10, &dto.UpdateUserRequest{
			FirstName: &name,
		})

		require.NoError(t, err)
		assert.Equal(t, "New", updated.FirstName)
	})

	t.Run("ошибка: участник не может сменить себе роль", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewUserService(userRepo, new(MockOrganizationRepository))

		user := &domain.User{ID: 10, OrganizationID: 1, Role: domain.RoleMember}
		userRepo.On("GetByID", mock.Anything, int64(10)).Return(user, nil).Once()

		role := "admin"
		_, err := s.Update(context.Background(), memberActor(10, 1), 10, &dto.UpdateUserRequest{
			Role: &role,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: чужой профиль", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewUserService(userRepo, new(MockOrganizationRepository))

		user := &domain.User{ID: 11, OrganizationID: 1}
		userRepo.On("GetByID", mock.Anything, int64(11)).Return(user, nil).Once()

		name := "Eve"
		_, err := s.Update(context.Background(), memberActor(10, 1), 11, &dto.UpdateUserRequest{
			FirstName: &name,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("ошибка: профиль из чужой организации", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewUserService(userRepo, new(MockOrganizationRepository))

		user := &domain.User{ID: 11, OrganizationID: 2}
		userRepo.On("GetByID", mock.Anything, int64(11)).Return(user, nil).Once()

		name := "Eve"
		_, err := s.Update(context.Background(), adminActor(1, 1), 11, &dto.UpdateUserRequest{
			FirstName: &name,
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
