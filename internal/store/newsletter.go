package store

import (
	"context"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

// SubscribeNewsletter inserts a subscription row. A second subscribe for the
// same email hits the unique index and comes back as ErrDuplicate.
func (s *Store) SubscribeNewsletter(ctx context.Context, sub *models.NewsletterSubscription) error {
	query := `
		INSERT INTO newsletter_subscriptions (id, email, name, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := s.DB.ExecContext(ctx, query, sub.ID, sub.Email, sub.Name, sub.Status)
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *Store) CountNewsletterSubscriptions(ctx context.Context, email string) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM newsletter_subscriptions WHERE email = $1`, email).Scan(&count)
	return count, err
}
