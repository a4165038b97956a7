package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int       `json:"price_cents"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SlotView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type AppointmentView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	ServiceID       uuid.UUID `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	ServiceCategory string    `json:"service_category"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	TotalPriceCents int       `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListItem struct {
	ID              uuid.UUID `json:"id"`
	ServiceID       uuid.UUID `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	DurationMinutes int       `json:"duration_minutes"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	TotalPriceCents int       `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	IsAdmin       bool      `json:"is_admin"`
	LoyaltyPoints int       `json:"loyalty_points"`
	IsActive      bool      `json:"is_active"`
}

type AdminStatsView struct {
	TodayAppointments     int `json:"today_appointments"`
	CompletedRevenueCents int `json:"completed_revenue_cents"`
	ActiveServices        int `json:"active_services"`
	Clients               int `json:"clients"`
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	RequestHash         string
	Status              string
	ResultAppointmentID *uuid.UUID
	ExpiresAt           time.Time
	CreatedAt           time.Time
}

// FallbackServiceName is rendered for history rows whose service no longer
// exists in the catalog. A missing join degrades the display, never fails it.
const FallbackServiceName = "Prestation indisponible"
