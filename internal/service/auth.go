package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/scorp5438/articles-app/internal/config"
	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/errors"
	"github.com/scorp5438/articles-app/internal/logger"
	"github.com/scorp5438/articles-app/internal/utils/email"
	"github.com/scorp5438/articles-app/internal/utils/link"
	"github.com/scorp5438/articles-app/internal/utils/password"
)

type AuthService interface {
	Register(data domain.UserCreate) error
	Login(creds domain.Credentials) (string, error)
	Logout(token string) error
	Confirm(linkStr string) error
	RequestLink(actor domain.User) error
}

type Auth struct {
	storage AuthStorage
	mail    email.Sender
	jwt     Jwt
	hasher  Hasher
	cfg     *config.Public
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	User(email domain.Email) (domain.User, error)
	UpdateUser(user domain.User) error
	UserByConfirmationCode(code string) (domain.User, error)
	ActivateByConfirmationCode(code string) (domain.UserId, error)
	SaveToken(token domain.Token) error
	DeleteToken(token string) error
}

type Jwt interface {
	NewToken(subject string) (string, error)
}

type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

func NewAuth(storage AuthStorage, mail email.Sender, jwt Jwt, hasher Hasher, cfg *config.Public) *Auth {
	return &Auth{storage, mail, jwt, hasher, cfg}
}

// Register creates a pending account holding the random part of a fresh
// confirmation link and dispatches the link by email. Email delivery is
// asynchronous: a failure there never rolls back the account.
func (a *Auth) Register(data domain.UserCreate) error {
	addr := strings.ToLower(data.Email)

	if err := email.IsCorrect(addr); err != nil {
		return err
	}
	if err := password.CheckStrength(data.Password); err != nil {
		return err
	}

	passHash, err := a.hasher.Hash(data.Password)
	if err != nil {
		return err
	}

	lnk := link.Generate(a.cfg.LinkTTLHours)
	user := domain.User{
		Email:            addr,
		PassHash:         passHash,
		FullName:         data.FullName,
		AvatarUrl:        data.AvatarUrl,
		ConfirmationCode: &lnk.Random,
	}
	if _, err := a.storage.SaveUser(user); err != nil {
		return err
	}

	a.dispatchConfirmation(user, lnk)
	return nil
}

// Login checks credentials and returns a bearer token registered in the
// active-token store. Unknown email and wrong password collapse into the
// same answer to not leak existing accounts.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	addr := strings.ToLower(creds.Email)

	user, err := a.storage.User(addr)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: 401}
		}
		return "", err
	}

	if !a.hasher.Verify(creds.Password, user.PassHash) {
		logger.Log.Debug("password verification failed", "email", addr)
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: 401}
	}

	token, err := a.jwt.NewToken(user.Email)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	err = a.storage.SaveToken(domain.Token{Token: token, ExpiresAt: time.Now().Add(a.cfg.JwtTTL)})
	if err != nil {
		return "", err
	}

	return token, nil
}

// Logout revokes the token immediately. An unknown token is an error, not a
// silent success.
func (a *Auth) Logout(token string) error {
	return a.storage.DeleteToken(token)
}

// Confirm consumes a confirmation link: unknown code is invalid, elapsed
// embedded TTL is expired, and consumption is atomic so two racing confirms
// with the same link produce exactly one success.
func (a *Auth) Confirm(linkStr string) error {
	lnk, err := link.Parse(linkStr)
	if err != nil {
		return err
	}

	if _, err := a.storage.UserByConfirmationCode(lnk.Random); err != nil {
		if errors.IsNotFound(err) {
			return errors.NotFound("Confirm token invalid")
		}
		return err
	}

	if lnk.ExpiredAt(time.Now()) {
		return errors.Expired("Token expired")
	}

	if _, err := a.storage.ActivateByConfirmationCode(lnk.Random); err != nil {
		return err
	}
	return nil
}

// RequestLink generates a fresh confirmation link for a still-inactive
// account, overwriting any previous code, and dispatches it.
func (a *Auth) RequestLink(actor domain.User) error {
	if actor.Active {
		return errors.Validation("Email already confirmed")
	}

	lnk := link.Generate(a.cfg.LinkTTLHours)
	actor.ConfirmationCode = &lnk.Random
	if err := a.storage.UpdateUser(actor); err != nil {
		return err
	}

	a.dispatchConfirmation(actor, lnk)
	return nil
}

func (a *Auth) dispatchConfirmation(user domain.User, lnk link.Link) {
	confirmationURL := fmt.Sprintf("%s/v1/auth/confirm/%s", a.cfg.BaseURL, lnk.String())
	err := a.mail.Send(user.Email, user.FullName, "Registration confirmation", "reg_confirm", confirmationURL)
	if err != nil {
		logger.Log.Error("failed to enqueue confirmation email", "email", user.Email, "error", err)
	}
}
