package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

func (s *Store) ListWorkshops(ctx context.Context) ([]models.Workshop, error) {
	query := `
		SELECT id, title, description, date, time, location, price, capacity, image_url, created_at
		FROM workshops
		ORDER BY date DESC
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workshops []models.Workshop
	for rows.Next() {
		var w models.Workshop
		if err := rows.Scan(&w.ID, &w.Title, &w.Description, &w.Date, &w.Time, &w.Location, &w.Price, &w.Capacity, &w.ImageURL, &w.CreatedAt); err != nil {
			return nil, err
		}
		workshops = append(workshops, w)
	}
	return workshops, rows.Err()
}

func (s *Store) GetWorkshopByID(ctx context.Context, id string) (*models.Workshop, error) {
	query := `
		SELECT id, title, description, date, time, location, price, capacity, image_url, created_at
		FROM workshops
		WHERE id = $1
	`
	var w models.Workshop
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Title, &w.Description, &w.Date, &w.Time, &w.Location, &w.Price, &w.Capacity, &w.ImageURL, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWorkshop is used by the seed CLI; workshops have no public mutation.
func (s *Store) CreateWorkshop(ctx context.Context, w *models.Workshop) error {
	query := `
		INSERT INTO workshops (id, title, description, date, time, location, price, capacity, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err := s.DB.ExecContext(ctx, query, w.ID, w.Title, w.Description, w.Date, w.Time, w.Location, w.Price, w.Capacity, w.ImageURL)
	return err
}
