package service

import (
	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/policy"
	"github.com/scorp5438/articles-app/internal/utils/password"
)

type UserService interface {
	List() ([]domain.User, error)
	Update(actor domain.User, id domain.UserId, data domain.UserUpdate) error
	Delete(actor domain.User, id domain.UserId) error
}

type Users struct {
	storage UserStorage
	hasher  Hasher
}

type UserStorage interface {
	Users() ([]domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	UpdateUser(user domain.User) error
	DeleteUser(id domain.UserId) error
}

func NewUsers(storage UserStorage, hasher Hasher) *Users {
	return &Users{storage, hasher}
}

func (s *Users) List() ([]domain.User, error) {
	return s.storage.Users()
}

// Update applies a partial mutation. Order matters and is test-observable:
// existence, then self-or-staff, then the staff-flag guard.
func (s *Users) Update(actor domain.User, id domain.UserId, data domain.UserUpdate) error {
	user, err := s.storage.UserById(id)
	if err != nil {
		return err
	}
	if err := policy.CanModifyUser(actor, id); err != nil {
		return err
	}
	if data.Staff != nil && *data.Staff != user.Staff {
		if err := policy.CanChangeStaff(actor); err != nil {
			return err
		}
		user.Staff = *data.Staff
	}

	if data.FullName != nil {
		user.FullName = *data.FullName
	}
	if data.AvatarUrl != nil {
		user.AvatarUrl = data.AvatarUrl
	}
	if data.Password != nil {
		if err := password.CheckStrength(*data.Password); err != nil {
			return err
		}
		hash, err := s.hasher.Hash(*data.Password)
		if err != nil {
			return err
		}
		user.PassHash = hash
	}

	return s.storage.UpdateUser(user)
}

// Delete removes the account; authored articles and comments survive with a
// null author.
func (s *Users) Delete(actor domain.User, id domain.UserId) error {
	if _, err := s.storage.UserById(id); err != nil {
		return err
	}
	if err := policy.CanModifyUser(actor, id); err != nil {
		return err
	}

	return s.storage.DeleteUser(id)
}
