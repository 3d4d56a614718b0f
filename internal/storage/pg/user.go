package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/scorp5438/articles-app/internal/domain"
	internal_errors "github.com/scorp5438/articles-app/internal/errors"
)

const uniqueViolation = "23505"

const userColumns = "id, email, password_hash, full_name, is_active, is_staff, avatar_url, created_at, confirmation_code"

// =========================================================================
// Public Methods (satisfy the service storage interfaces)
// =========================================================================

// SaveUser inserts a new account. A duplicate email surfaces as a Conflict
// with the stable detail the API exposes.
func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	ctx, cancel := opContext()
	defer cancel()

	var id domain.UserId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveUser(tx, user)
		return err
	})
	return id, err
}

// User fetches an account by email.
func (s *Storage) User(email domain.Email) (domain.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

// UserById fetches an account by its identifier.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

// Users returns all accounts ordered by id.
func (s *Storage) Users() ([]domain.User, error) {
	rows, err := s.db.Query("SELECT " + userColumns + " FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := s.scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUser writes back the mutable columns of an account.
func (s *Storage) UpdateUser(user domain.User) error {
	ctx, cancel := opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			UPDATE users
			SET password_hash = $1, full_name = $2, is_active = $3, is_staff = $4, avatar_url = $5, confirmation_code = $6
			WHERE id = $7`,
			user.PassHash, user.FullName, user.Active, user.Staff, user.AvatarUrl, user.ConfirmationCode, user.Id,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return internal_errors.Conflict("Confirmation code already in use")
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return requireAffected(result, "User not found")
	})
}

// DeleteUser removes an account. Foreign keys null out authored articles
// and comments, so the content survives the author.
func (s *Storage) DeleteUser(id domain.UserId) error {
	ctx, cancel := opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM users WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return requireAffected(result, "User not found")
	})
}

// UserByConfirmationCode finds the pending account holding the given code.
func (s *Storage) UserByConfirmationCode(code string) (domain.User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE confirmation_code = $1", code))
}

// ActivateByConfirmationCode flips the account holding code to active and
// clears the code in one conditional statement. Of two racing confirms with
// the same code exactly one sees an affected row; the loser gets NotFound.
func (s *Storage) ActivateByConfirmationCode(code string) (domain.UserId, error) {
	ctx, cancel := opContext()
	defer cancel()

	var id domain.UserId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow(`
			UPDATE users
			SET is_active = TRUE, confirmation_code = NULL
			WHERE confirmation_code = $1
			RETURNING id`, code).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("Confirm token invalid")
		}
		if err != nil {
			return fmt.Errorf("failed to consume confirmation code: %w", err)
		}
		return nil
	})
	return id, err
}

// =========================================================================
// Internal helpers
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := q.QueryRow(`
		INSERT INTO users(email, password_hash, full_name, is_active, is_staff, avatar_url, confirmation_code)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		user.Email, user.PassHash, user.FullName, user.Active, user.Staff, user.AvatarUrl, user.ConfirmationCode,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return -1, internal_errors.Conflict("Email already registered")
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *Storage) scanUser(row *sql.Row) (domain.User, error) {
	user, err := s.scanUserFrom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, internal_errors.NotFound("User not found")
	}
	return user, err
}

func (s *Storage) scanUserRows(rows *sql.Rows) (domain.User, error) {
	return s.scanUserFrom(rows)
}

func (s *Storage) scanUserFrom(row rowScanner) (domain.User, error) {
	var user domain.User
	var avatar sql.NullString
	var code sql.NullString
	err := row.Scan(&user.Id, &user.Email, &user.PassHash, &user.FullName,
		&user.Active, &user.Staff, &avatar, &user.CreatedAt, &code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	if avatar.Valid {
		user.AvatarUrl = &avatar.String
	}
	if code.Valid {
		user.ConfirmationCode = &code.String
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func requireAffected(result sql.Result, notFoundMsg string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound(notFoundMsg)
	}
	return nil
}
