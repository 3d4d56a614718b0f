package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
	"github.com/scorp5438/articles-app/internal/logger"
)

type JwtService interface {
	NewToken(subject string) (string, error)
	DecodeToken(jwtStr string) (jwt.MapClaims, error)
}

// Jwt signs and verifies HS256 bearer tokens. The secret lives here and is
// never handed to callers.
type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

// NewToken issues a token with the account email as subject and expiry
// derived from the configured ttl.
func (j *Jwt) NewToken(subject string) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = subject
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", internal_errors.Unauthorized()
	}

	return tokenString, nil
}

// DecodeToken verifies the signature, algorithm and expiry. Every failure
// collapses into the same opaque unauthorized error.
func (j *Jwt) DecodeToken(jwtStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, internal_errors.Unauthorized()
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token decode failed", "error", err)
		return nil, internal_errors.Unauthorized()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, internal_errors.Unauthorized()
	}

	return claims, nil
}
