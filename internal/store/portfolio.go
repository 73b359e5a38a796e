package store

import (
	"context"
	"encoding/json"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

// ListPortfolioItems returns the showcase, optionally filtered by category.
func (s *Store) ListPortfolioItems(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	query := `
		SELECT id, title, description, category, image_url, image_urls, created_at
		FROM portfolio_items
		ORDER BY created_at DESC
	`
	args := []any{}
	if category != "" {
		query = `
			SELECT id, title, description, category, image_url, image_urls, created_at
			FROM portfolio_items
			WHERE category = $1
			ORDER BY created_at DESC
		`
		args = append(args, category)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PortfolioItem
	for rows.Next() {
		var item models.PortfolioItem
		var urls []byte
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Category, &item.ImageURL, &urls, &item.CreatedAt); err != nil {
			return nil, err
		}
		if len(urls) > 0 {
			if err := json.Unmarshal(urls, &item.ImageURLs); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreatePortfolioItem is used by the seed CLI; the portfolio has no mutation API.
func (s *Store) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	urls, err := json.Marshal(urlsOrEmpty(item.ImageURLs))
	if err != nil {
		return err
	}
	query := `
		INSERT INTO portfolio_items (id, title, description, category, image_url, image_urls, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err = s.DB.ExecContext(ctx, query, item.ID, item.Title, item.Description, item.Category, item.ImageURL, urls)
	return err
}
