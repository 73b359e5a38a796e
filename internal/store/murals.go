package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

func (s *Store) CreateMuralRequest(ctx context.Context, m *models.MuralRequest) error {
	query := `
		INSERT INTO mural_requests
			(id, name, email, phone, location, wall_size, wall_condition, theme, inspiration, timeline, budget, additional_notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
	`
	_, err := s.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.Location, m.WallSize, m.WallCondition,
		m.Theme, m.Inspiration, m.Timeline, m.Budget, m.AdditionalNotes, m.Status)
	return err
}

func (s *Store) GetMuralRequestByID(ctx context.Context, id string) (*models.MuralRequest, error) {
	query := `
		SELECT id, name, email, phone, location, wall_size, wall_condition, theme, inspiration, timeline, budget, additional_notes, status, created_at
		FROM mural_requests
		WHERE id = $1
	`
	var m models.MuralRequest
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Location, &m.WallSize, &m.WallCondition,
		&m.Theme, &m.Inspiration, &m.Timeline, &m.Budget, &m.AdditionalNotes, &m.Status, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
