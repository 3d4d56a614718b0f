// Package password wraps bcrypt hashing. The cost parameter is embedded in
// every produced hash, so raising the cost keeps existing hashes verifiable.
package password

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/scorp5438/articles-app/internal/errors"
	"github.com/scorp5438/articles-app/internal/logger"
)

// At least 8 characters with a lowercase letter, an uppercase letter and a
// digit. Checked piecewise because Go regexp has no lookahead.
var (
	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`\d`)
)

const DefaultCost = bcrypt.DefaultCost

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(hash), nil
}

// Verify fails closed: a mismatch and a malformed stored hash both report
// false.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// CheckStrength enforces the registration password policy.
func CheckStrength(plain string) error {
	if len(plain) < 8 || !hasLower.MatchString(plain) || !hasUpper.MatchString(plain) || !hasDigit.MatchString(plain) {
		return errors.Validation("Password must be at least 8 characters with an uppercase letter, a lowercase letter and a digit")
	}
	return nil
}
