package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

func (s *Store) CreateTicket(ctx context.Context, t *models.WorkshopTicket) error {
	query := `
		INSERT INTO workshop_tickets (id, workshop_id, user_id, email, name, quantity, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := s.DB.ExecContext(ctx, query, t.ID, t.WorkshopID, t.UserID, t.Email, t.Name, t.Quantity, t.TotalPrice, t.Status)
	return err
}

func (s *Store) ListTickets(ctx context.Context) ([]models.WorkshopTicket, error) {
	query := `
		SELECT id, workshop_id, user_id, email, name, quantity, total_price, status, created_at
		FROM workshop_tickets
		ORDER BY created_at DESC
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.WorkshopTicket
	for rows.Next() {
		var t models.WorkshopTicket
		if err := rows.Scan(&t.ID, &t.WorkshopID, &t.UserID, &t.Email, &t.Name, &t.Quantity, &t.TotalPrice, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (s *Store) GetTicketByID(ctx context.Context, id string) (*models.WorkshopTicket, error) {
	query := `
		SELECT id, workshop_id, user_id, email, name, quantity, total_price, status, created_at
		FROM workshop_tickets
		WHERE id = $1
	`
	var t models.WorkshopTicket
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.WorkshopID, &t.UserID, &t.Email, &t.Name, &t.Quantity, &t.TotalPrice, &t.Status, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) UpdateTicketStatus(ctx context.Context, id, status string) error {
	res, err := s.DB.ExecContext(ctx, `UPDATE workshop_tickets SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTicket(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM workshop_tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
