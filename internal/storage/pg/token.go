package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/scorp5438/articles-app/internal/domain"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
	"github.com/scorp5438/articles-app/internal/logger"
)

// SaveToken records a freshly issued bearer token in the active-token
// store. A duplicate token string is a caller bug, reported as Conflict.
func (s *Storage) SaveToken(token domain.Token) error {
	ctx, cancel := opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO tokens(token, expires_at) VALUES($1, $2)",
			token.Token, token.ExpiresAt)
		if err != nil {
			if isUniqueViolation(err) {
				return internal_errors.Conflict("token already exist")
			}
			return fmt.Errorf("failed to insert token: %w", err)
		}
		return nil
	})
}

// Token looks up a bearer token in the active-token store. Rows past their
// expiry are treated as absent even before the GC sweeps them.
func (s *Storage) Token(tokenStr string) (domain.Token, error) {
	var token domain.Token
	err := s.db.QueryRow(
		"SELECT token, expires_at FROM tokens WHERE token = $1 AND expires_at > now()",
		tokenStr).Scan(&token.Token, &token.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Token{}, internal_errors.NotFound("token not found")
		}
		return domain.Token{}, fmt.Errorf("failed to query token: %w", err)
	}
	return token, nil
}

// DeleteToken revokes a bearer token. Deleting an unknown token is an
// error: it signals a caller bug, not a condition to ignore silently.
func (s *Storage) DeleteToken(tokenStr string) error {
	ctx, cancel := opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM tokens WHERE token = $1", tokenStr)
		if err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows: %w", err)
		}
		if affected == 0 {
			return internal_errors.Validation("token not found")
		}
		return nil
	})
}

// DeleteExpiredTokens removes rows whose expiry has passed and returns how
// many were swept.
func (s *Storage) DeleteExpiredTokens() (int64, error) {
	result, err := s.db.Exec("DELETE FROM tokens WHERE expires_at <= now()")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return result.RowsAffected()
}

// StartPeriodicTokenCleanup sweeps expired tokens in the background until
// ctx is cancelled.
func (s *Storage) StartPeriodicTokenCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				swept, err := s.DeleteExpiredTokens()
				if err != nil {
					logger.Log.Error("token cleanup failed", "error", err)
					continue
				}
				if swept > 0 {
					logger.Log.Info("swept expired tokens", "count", swept)
				}
			case <-ctx.Done():
				logger.Log.Info("token cleanup shutting down")
				return
			}
		}
	}()
}
