package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/contactscalebreakers-dev/website.supabase/internal/config"
	"github.com/contactscalebreakers-dev/website.supabase/internal/email"
	"github.com/contactscalebreakers-dev/website.supabase/internal/handlers"
	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/payments"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := store.NewStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.CreateSchema(context.Background()); err != nil {
		slog.Error("Failed to create schema", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	mailer, err := email.NewMailer(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
		From:     cfg.EmailFrom,
	})
	if err != nil {
		slog.Error("Failed to initialize mailer", "error", err)
		os.Exit(1)
	}

	stripeClient := payments.New(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	auth := &handlers.Auth{Store: db, SessionStore: sessionStore}
	authHandler := &handlers.AuthHandler{Store: db, SessionStore: sessionStore, Auth: auth, OwnerEmail: cfg.OwnerEmail}
	workshopHandler := &handlers.WorkshopHandler{Store: db, Mailer: mailer}
	productHandler := &handlers.ProductHandler{Store: db, UploadDir: cfg.UploadDir}
	portfolioHandler := &handlers.PortfolioHandler{Store: db}
	muralHandler := &handlers.MuralHandler{Store: db}
	newsletterHandler := &handlers.NewsletterHandler{Store: db}
	emailHandler := &handlers.EmailHandler{Mailer: mailer, AdminEmail: cfg.AdminEmail}
	paymentHandler := &handlers.PaymentHandler{
		Store:        db,
		Checkout:     stripeClient,
		Webhook:      stripeClient,
		Auth:         auth,
		PublicOrigin: cfg.PublicOrigin,
	}
	bookingHandler := &handlers.BookingHandler{Store: db}

	mux := http.NewServeMux()

	// Static files (uploaded product images)
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate limiter for public form submissions
	rateLimiter := handlers.NewRateLimiter(1 * time.Minute)

	// Auth
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)

	// Workshops
	mux.HandleFunc("GET /api/workshops", workshopHandler.List)
	mux.HandleFunc("GET /api/workshops/{id}", workshopHandler.GetByID)
	mux.HandleFunc("POST /api/workshops/{id}/book", rateLimiter.Middleware(workshopHandler.Book))

	// Products
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("POST /api/products", auth.RequireRole(models.RoleAdmin, productHandler.Create))
	mux.HandleFunc("PATCH /api/products/{id}", auth.RequireRole(models.RoleAdmin, productHandler.Update))
	mux.HandleFunc("DELETE /api/products/{id}", auth.RequireRole(models.RoleAdmin, productHandler.Delete))
	mux.HandleFunc("POST /api/products/{id}/image", auth.RequireRole(models.RoleAdmin, productHandler.UploadImage))

	// Portfolio
	mux.HandleFunc("GET /api/portfolio", portfolioHandler.List)

	// Mural requests & newsletter
	mux.HandleFunc("POST /api/mural-requests", rateLimiter.Middleware(muralHandler.Submit))
	mux.HandleFunc("POST /api/newsletter/subscribe", rateLimiter.Middleware(newsletterHandler.Subscribe))

	// Contact & enquiries
	mux.HandleFunc("POST /api/contact", rateLimiter.Middleware(emailHandler.SendContact))
	mux.HandleFunc("POST /api/enquiries", rateLimiter.Middleware(emailHandler.SendServiceEnquiry))

	// Checkout
	mux.HandleFunc("POST /api/checkout/product", paymentHandler.ProductCheckout)
	mux.HandleFunc("POST /api/checkout/workshop", paymentHandler.WorkshopCheckout)
	mux.HandleFunc("POST /api/checkout/service", paymentHandler.ServiceCheckout)

	// Admin bookings
	mux.HandleFunc("GET /api/admin/bookings", auth.RequireRole(models.RoleAdmin, bookingHandler.List))
	mux.HandleFunc("GET /api/admin/bookings/{id}", auth.RequireRole(models.RoleAdmin, bookingHandler.GetByID))
	mux.HandleFunc("PATCH /api/admin/bookings/{id}/status", auth.RequireRole(models.RoleAdmin, bookingHandler.UpdateStatus))
	mux.HandleFunc("DELETE /api/admin/bookings/{id}", auth.RequireRole(models.RoleAdmin, bookingHandler.Delete))

	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// The Stripe webhook authenticates by signature, not by session, so it
	// sits outside the CSRF wrapper.
	root := http.NewServeMux()
	root.HandleFunc("POST /api/stripe/webhook", paymentHandler.StripeWebhook)
	root.Handle("/", CSRF(mux))

	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(root),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := db.Close(); err != nil {
		slog.Error("Database close failed", "error", err)
	}

	slog.Info("Server exited gracefully.")
}
