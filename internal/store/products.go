package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

const productColumns = `id, name, description, category, price, stock, image_url, image_urls, is_one_of_one, created_at`

// ListProducts returns every product, or only those matching category when it
// is non-empty.
func (s *Store) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	args := []any{}
	if category != "" {
		query = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at DESC`
		args = append(args, category)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *Store) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	urls, err := json.Marshal(urlsOrEmpty(p.ImageURLs))
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, name, description, category, price, stock, image_url, image_urls, is_one_of_one, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err = s.DB.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Category, p.Price, p.Stock, p.ImageURL, urls, p.IsOneOfOne)
	return err
}

// ProductUpdate carries the fields of a partial update. Nil pointers are left
// untouched in storage.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
	ImageURL    *string
	IsOneOfOne  *bool
}

// UpdateProduct applies only the fields set in upd. An update with no fields
// is a no-op that still verifies the row exists.
func (s *Store) UpdateProduct(ctx context.Context, id string, upd ProductUpdate) error {
	var set []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.Stock != nil {
		add("stock", *upd.Stock)
	}
	if upd.ImageURL != nil {
		add("image_url", *upd.ImageURL)
	}
	if upd.IsOneOfOne != nil {
		add("is_one_of_one", *upd.IsOneOfOne)
	}

	if len(set) == 0 {
		_, err := s.GetProductByID(ctx, id)
		return err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args))
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateProductImage(ctx context.Context, id, imageURL string) error {
	res, err := s.DB.ExecContext(ctx, `UPDATE products SET image_url = $1 WHERE id = $2`, imageURL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementProductStock reduces stock after a completed checkout, flooring at
// zero. One-of-one products simply hit zero and stay there.
func (s *Store) DecrementProductStock(ctx context.Context, id string, quantity int) error {
	res, err := s.DB.ExecContext(ctx, `UPDATE products SET stock = GREATEST(stock - $1, 0) WHERE id = $2`, quantity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var urls []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Stock, &p.ImageURL, &urls, &p.IsOneOfOne, &p.CreatedAt); err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		if err := json.Unmarshal(urls, &p.ImageURLs); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func urlsOrEmpty(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
