package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

// UpsertUser inserts the user or refreshes its mutable fields on conflict.
// Role is persisted as given; the caller decides owner promotion.
func (s *Store) UpsertUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, login_method, role, password_hash, created_at, last_signed_in)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    login_method = EXCLUDED.login_method,
		    role = EXCLUDED.role,
		    password_hash = EXCLUDED.password_hash,
		    last_signed_in = NOW()
	`
	_, err := s.DB.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.LoginMethod, user.Role, user.PasswordHash)
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, name, email, login_method, role, password_hash, created_at, last_signed_in FROM users WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, login_method, role, password_hash, created_at, last_signed_in FROM users WHERE LOWER(email) = LOWER($1)`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email))
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.LoginMethod, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.LastSignedIn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) TouchLastSignedIn(ctx context.Context, id string) error {
	_, err := s.DB.ExecContext(ctx, `UPDATE users SET last_signed_in = NOW() WHERE id = $1`, id)
	return err
}
