package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

var (
	name     string
	email    string
	password string
	role     string
)

var rootCmd = &cobra.Command{
	Use:   "sbctl",
	Short: "Operator tooling for the Scale Breakers site",
}

var addUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Create or update a user with a password login",
	RunE: func(cmd *cobra.Command, args []string) error {
		if email == "" || password == "" {
			return fmt.Errorf("email and password are required")
		}
		if role != models.RoleUser && role != models.RoleAdmin {
			return fmt.Errorf("role must be %q or %q", models.RoleUser, models.RoleAdmin)
		}

		db, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user := &models.User{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			LoginMethod:  "password",
			Role:         role,
			PasswordHash: string(hash),
		}
		if existing, err := db.GetUserByEmail(cmd.Context(), email); err == nil {
			user.ID = existing.ID
		}
		if err := db.UpsertUser(cmd.Context(), user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Printf("User %q created with role %q.\n", email, role)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the portfolio, shop and workshop tables with starter content",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		for _, item := range seedPortfolio {
			item.ID = uuid.NewString()
			if err := db.CreatePortfolioItem(cmd.Context(), &item); err != nil {
				fmt.Printf("skipped portfolio item %q: %v\n", item.Title, err)
				continue
			}
			fmt.Printf("added portfolio item %q\n", item.Title)
		}

		for _, product := range seedProducts {
			product.ID = uuid.NewString()
			if err := db.CreateProduct(cmd.Context(), &product); err != nil {
				fmt.Printf("skipped product %q: %v\n", product.Name, err)
				continue
			}
			fmt.Printf("added product %q\n", product.Name)
		}

		for i, workshop := range seedWorkshops {
			workshop.ID = uuid.NewString()
			workshop.Date = nextFortnightlyDate(i)
			if err := db.CreateWorkshop(cmd.Context(), &workshop); err != nil {
				fmt.Printf("skipped workshop %q: %v\n", workshop.Title, err)
				continue
			}
			fmt.Printf("added workshop %q\n", workshop.Title)
		}

		return nil
	},
}

func openStore(ctx context.Context) (*store.Store, error) {
	godotenv.Load()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := store.NewStore(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.CreateSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

// nextFortnightlyDate spaces seeded workshops two weeks apart starting a week
// from now.
func nextFortnightlyDate(i int) time.Time {
	return time.Now().AddDate(0, 0, 7+14*i).Truncate(24 * time.Hour)
}

func init() {
	addUserCmd.Flags().StringVar(&name, "name", "", "Display name")
	addUserCmd.Flags().StringVar(&email, "email", "", "Email address (login identifier)")
	addUserCmd.Flags().StringVar(&password, "password", "", "Password")
	addUserCmd.Flags().StringVar(&role, "role", models.RoleUser, "Role: user or admin")

	rootCmd.AddCommand(addUserCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
