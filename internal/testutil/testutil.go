// Package testutil holds shared helpers for tests that need a real Postgres
// database. Set TEST_DATABASE_URL to run them; they skip otherwise.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

// SetupTestDB opens the test database, resets every table and recreates the
// schema. Tests are skipped when TEST_DATABASE_URL is not set.
func SetupTestDB(t *testing.T) *store.Store {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	db, err := store.NewStore(url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean slate before each test
	_, err = db.DB.Exec(`
		DROP TABLE IF EXISTS cart_items CASCADE;
		DROP TABLE IF EXISTS orders CASCADE;
		DROP TABLE IF EXISTS newsletter_subscriptions CASCADE;
		DROP TABLE IF EXISTS mural_requests CASCADE;
		DROP TABLE IF EXISTS portfolio_items CASCADE;
		DROP TABLE IF EXISTS products CASCADE;
		DROP TABLE IF EXISTS workshop_tickets CASCADE;
		DROP TABLE IF EXISTS workshops CASCADE;
		DROP TABLE IF EXISTS users CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
