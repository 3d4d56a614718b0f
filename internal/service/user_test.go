package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorp5438/articles-app/internal/domain"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
)

type MockUserStorage struct {
	UsersFunc      func() ([]domain.User, error)
	UserByIdFunc   func(id domain.UserId) (domain.User, error)
	UpdateUserFunc func(user domain.User) error
	DeleteUserFunc func(id domain.UserId) error
}

func (m *MockUserStorage) Users() ([]domain.User, error) {
	if m.UsersFunc != nil {
		return m.UsersFunc()
	}
	return nil, nil
}

func (m *MockUserStorage) UserById(id domain.UserId) (domain.User, error) {
	if m.UserByIdFunc != nil {
		return m.UserByIdFunc(id)
	}
	return domain.User{Id: id, Email: "user@example.com", FullName: "Full Name", Active: true}, nil
}

func (m *MockUserStorage) UpdateUser(user domain.User) error {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(user)
	}
	return nil
}

func (m *MockUserStorage) DeleteUser(id domain.UserId) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(id)
	}
	return nil
}

func TestUserUpdate(t *testing.T) {
	newName := "New Name"
	truth := true

	t.Run("self update of profile fields", func(t *testing.T) {
		storage := &MockUserStorage{}
		var updated domain.User
		storage.UpdateUserFunc = func(user domain.User) error {
			updated = user
			return nil
		}
		service := NewUsers(storage, &MockHasher{})

		err := service.Update(activeUser, activeUser.Id, domain.UserUpdate{FullName: &newName})

		require.NoError(t, err)
		assert.Equal(t, newName, updated.FullName)
	})

	t.Run("password change goes through strength check and hashing", func(t *testing.T) {
		storage := &MockUserStorage{}
		var updated domain.User
		storage.UpdateUserFunc = func(user domain.User) error {
			updated = user
			return nil
		}
		service := NewUsers(storage, &MockHasher{})

		strong := "NewPassword1"
		err := service.Update(activeUser, activeUser.Id, domain.UserUpdate{Password: &strong})
		require.NoError(t, err)
		assert.Equal(t, "hashed_NewPassword1", updated.PassHash)

		weak := "weakpassword"
		err = service.Update(activeUser, activeUser.Id, domain.UserUpdate{Password: &weak})
		require.Error(t, err)
		assert.Equal(t, 400, internal_errors.StatusCode(err))
	})

	t.Run("stranger cannot update someone else", func(t *testing.T) {
		service := NewUsers(&MockUserStorage{}, &MockHasher{})

		err := service.Update(otherUser, activeUser.Id, domain.UserUpdate{FullName: &newName})

		require.Error(t, err)
		assert.Equal(t, 403, internal_errors.StatusCode(err))
		assert.Equal(t, "You don't have permission", err.Error())
	})

	t.Run("staff updates anyone", func(t *testing.T) {
		service := NewUsers(&MockUserStorage{}, &MockHasher{})

		err := service.Update(staffUser, activeUser.Id, domain.UserUpdate{FullName: &newName})

		require.NoError(t, err)
	})

	t.Run("non-staff self update cannot set the staff flag", func(t *testing.T) {
		service := NewUsers(&MockUserStorage{}, &MockHasher{})

		err := service.Update(activeUser, activeUser.Id, domain.UserUpdate{Staff: &truth})

		require.Error(t, err)
		assert.Equal(t, 403, internal_errors.StatusCode(err))
		assert.Equal(t, "Only admin can change staff status", err.Error())
	})

	t.Run("restating the current staff value is not a change", func(t *testing.T) {
		falsehood := false
		service := NewUsers(&MockUserStorage{}, &MockHasher{})

		err := service.Update(activeUser, activeUser.Id, domain.UserUpdate{Staff: &falsehood})

		require.NoError(t, err)
	})

	t.Run("staff grants the staff flag", func(t *testing.T) {
		storage := &MockUserStorage{}
		var updated domain.User
		storage.UpdateUserFunc = func(user domain.User) error {
			updated = user
			return nil
		}
		service := NewUsers(storage, &MockHasher{})

		err := service.Update(staffUser, activeUser.Id, domain.UserUpdate{Staff: &truth})

		require.NoError(t, err)
		assert.True(t, updated.Staff)
	})

	t.Run("missing target is 404 before any permission check", func(t *testing.T) {
		storage := &MockUserStorage{
			UserByIdFunc: func(id domain.UserId) (domain.User, error) {
				return domain.User{}, internal_errors.NotFound("User not found")
			},
		}
		service := NewUsers(storage, &MockHasher{})

		err := service.Update(otherUser, 99, domain.UserUpdate{FullName: &newName})

		require.Error(t, err)
		assert.Equal(t, 404, internal_errors.StatusCode(err))
	})
}

func TestUserDelete(t *testing.T) {
	t.Run("self delete", func(t *testing.T) {
		deleted := domain.UserId(0)
		storage := &MockUserStorage{
			DeleteUserFunc: func(id domain.UserId) error {
				deleted = id
				return nil
			},
		}
		service := NewUsers(storage, &MockHasher{})

		err := service.Delete(activeUser, activeUser.Id)

		require.NoError(t, err)
		assert.Equal(t, activeUser.Id, deleted)
	})

	t.Run("staff deletes anyone", func(t *testing.T) {
		service := NewUsers(&MockUserStorage{}, &MockHasher{})

		err := service.Delete(staffUser, activeUser.Id)

		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		service := NewUsers(&MockUserStorage{}, &MockHasher{})

		err := service.Delete(otherUser, activeUser.Id)

		require.Error(t, err)
		assert.Equal(t, 403, internal_errors.StatusCode(err))
	})
}
