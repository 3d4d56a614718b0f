package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/errors"
	"github.com/scorp5438/articles-app/internal/utils"
	internal_jwt "github.com/scorp5438/articles-app/internal/utils/jwt"
)

// Key to store the resolved account in the request context
type key int

const UserClaimsKey key = 0

// TokenStore is the active-token store view the resolver needs.
type TokenStore interface {
	Token(token string) (domain.Token, error)
}

type UserStore interface {
	User(email domain.Email) (domain.User, error)
}

// Auth resolves a bearer token to an account. Resolution order is part of
// the contract: the store lookup runs before cryptographic verification so
// revoked tokens are rejected regardless of their signature.
type Auth struct {
	jwt    internal_jwt.JwtService
	tokens TokenStore
	users  UserStore
}

func NewAuth(jwt internal_jwt.JwtService, tokens TokenStore, users UserStore) *Auth {
	return &Auth{jwt, tokens, users}
}

var errNoToken = errors.Validation("no token") // internal sentinel, never written out

// extractUser resolves the Authorization header to a full account row.
// Every failure past "no header at all" collapses into the same opaque
// unauthorized error.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, errNoToken
	}

	if _, err := a.tokens.Token(tokenString); err != nil {
		return nil, errors.Unauthorized()
	}

	claims, err := a.jwt.DecodeToken(tokenString)
	if err != nil {
		return nil, errors.Unauthorized()
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.Unauthorized()
	}

	user, err := a.users.User(subject)
	if err != nil {
		return nil, errors.Unauthorized()
	}

	return &user, nil
}

// NeedAuth returns middleware that requires a resolvable bearer token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				if err == errNoToken {
					http.Error(w, "Not authenticated", http.StatusUnauthorized)
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the resolved account from the context.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// BearerToken returns the raw token from the Authorization header, or "".
func BearerToken(r *http.Request) string {
	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return token
}
