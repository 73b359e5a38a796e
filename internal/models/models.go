package models

import (
	"time"
)

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Workshop ticket lifecycle. Tickets are created pending and only an admin
// action (or a completed checkout) moves them forward.
const (
	TicketPending   = "pending"
	TicketConfirmed = "confirmed"
	TicketCancelled = "cancelled"
)

// Mural request lifecycle. Requests enter as "new"; later states are managed
// by the studio out of band.
const (
	MuralNew        = "new"
	MuralReviewed   = "reviewed"
	MuralQuoted     = "quoted"
	MuralInProgress = "in-progress"
	MuralCompleted  = "completed"
)

// Newsletter subscription states.
const (
	NewsletterSubscribed   = "subscribed"
	NewsletterUnsubscribed = "unsubscribed"
)

// ProductCategories are the accepted values for Product.Category.
var ProductCategories = []string{"workshop-ticket", "3d-model", "diorama", "canvas", "mural"}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	LoginMethod  string    `json:"login_method"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

type Workshop struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type WorkshopTicket struct {
	ID         string    `json:"id"`
	WorkshopID string    `json:"workshop_id"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	ImageURLs   []string  `json:"image_urls"`
	IsOneOfOne  bool      `json:"is_one_of_one"`
	CreatedAt   time.Time `json:"created_at"`
}

type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	ImageURLs   []string  `json:"image_urls"`
	CreatedAt   time.Time `json:"created_at"`
}

type MuralRequest struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Location        string    `json:"location"`
	WallSize        string    `json:"wall_size"`
	WallCondition   string    `json:"wall_condition"`
	Theme           string    `json:"theme"`
	Inspiration     string    `json:"inspiration"`
	Timeline        string    `json:"timeline"`
	Budget          string    `json:"budget"`
	AdditionalNotes string    `json:"additional_notes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Order and CartItem back the (not yet exposed) shop checkout history. The
// tables exist so completed Stripe sessions have somewhere to land; no API
// procedure reads or writes them today.
type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidTicketStatus reports whether s is one of the ticket lifecycle states.
func ValidTicketStatus(s string) bool {
	return s == TicketPending || s == TicketConfirmed || s == TicketCancelled
}

// ValidProductCategory reports whether c is an accepted shop category.
func ValidProductCategory(c string) bool {
	for _, v := range ProductCategories {
		if c == v {
			return true
		}
	}
	return false
}
