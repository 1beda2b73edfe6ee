package domain

import (
	"time"
)

// Default values applied when a ticket is created.
const (
	DefaultCurrency   = "USD"
	DefaultMaxPerUser = 5
)

// Ticket represents a sellable inventory unit for an event. This service only
// defines the inventory shape; recording sales belongs to the order pipeline.
type Ticket struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Price         float64    `json:"price"`
	Currency      string     `json:"currency"`
	QuantityTotal int        `json:"quantity_total"`
	QuantitySold  int        `json:"quantity_sold"`
	MaxPerUser    *int       `json:"max_per_user"`
	SalesStartAt  time.Time  `json:"sales_start_at"`
	SalesEndAt    *time.Time `json:"sales_end_at"`
	IsActive      *bool      `json:"is_active"`
}

// ApplyDefaults fills in currency, per-user limit, activation flag and sale
// window start for a freshly created ticket.
func (t *Ticket) ApplyDefaults(now time.Time) {
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
	if t.MaxPerUser == nil {
		limit := DefaultMaxPerUser
		t.MaxPerUser = &limit
	}
	if t.IsActive == nil {
		active := true
		t.IsActive = &active
	}
	if t.SalesStartAt.IsZero() {
		t.SalesStartAt = now
	}
}

// Validate checks the ticket invariants.
func (t *Ticket) Validate() error {
	if t.EventID == "" {
		return NewValidationError("event_id", "event id is required")
	}
	if t.Name == "" {
		return NewValidationError("name", "ticket name is required")
	}
	if t.Price < 0 {
		return NewValidationError("price", "price must not be negative")
	}
	if t.QuantityTotal < 0 {
		return NewValidationError("quantity_total", "total quantity must not be negative")
	}
	if t.QuantitySold < 0 {
		return NewValidationError("quantity_sold", "sold quantity must not be negative")
	}
	if t.QuantitySold > t.QuantityTotal {
		return NewValidationError("quantity_sold", "sold quantity must not exceed total quantity")
	}
	if t.MaxPerUser != nil && *t.MaxPerUser <= 0 {
		return NewValidationError("max_per_user", "per-user limit must be positive")
	}
	if t.SalesEndAt != nil && !t.SalesStartAt.IsZero() && t.SalesEndAt.Before(t.SalesStartAt) {
		return NewValidationError("sales_end_at", "sale window must end after it starts")
	}
	return nil
}

// Available returns the number of tickets still available.
func (t *Ticket) Available() int {
	return t.QuantityTotal - t.QuantitySold
}

// OnSale reports whether the ticket can currently be sold.
func (t *Ticket) OnSale(now time.Time) bool {
	if t.IsActive != nil && !*t.IsActive {
		return false
	}
	if t.Available() <= 0 {
		return false
	}
	if now.Before(t.SalesStartAt) {
		return false
	}
	if t.SalesEndAt != nil && now.After(*t.SalesEndAt) {
		return false
	}
	return true
}
