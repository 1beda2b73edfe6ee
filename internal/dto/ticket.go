package dto

import "time"

// UpsertTicketRequest creates a ticket when TicketID is empty and patches the
// existing ticket otherwise. Price accepts both numbers and numeric strings.
// On update, nil pointer fields are left unchanged; an explicit empty string
// clears Description and an explicit zero time clears SalesEndAt.
type UpsertTicketRequest struct {
	TicketID      string     `json:"ticket_id" binding:"omitempty"`
	EventID       string     `json:"event_id" binding:"omitempty"`
	Name          string     `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string    `json:"description" binding:"omitempty,max=2000"`
	Price         *Money     `json:"price" binding:"omitempty"`
	Currency      string     `json:"currency" binding:"omitempty,len=3"`
	QuantityTotal *int       `json:"quantity_total" binding:"omitempty,gte=0"`
	MaxPerUser    *int       `json:"max_per_user" binding:"omitempty,gt=0"`
	SalesStartAt  *time.Time `json:"sales_start_at" binding:"omitempty"`
	SalesEndAt    *time.Time `json:"sales_end_at" binding:"omitempty"`
	IsActive      *bool      `json:"is_active" binding:"omitempty"`
}

// Validate validates the UpsertTicketRequest.
func (r *UpsertTicketRequest) Validate() (bool, string) {
	if r.TicketID == "" {
		if r.EventID == "" {
			return false, "Event ID is required"
		}
		if r.Name == "" {
			return false, "Ticket name is required"
		}
	}
	if r.Price != nil && *r.Price < 0 {
		return false, "Price must not be negative"
	}
	if r.QuantityTotal != nil && *r.QuantityTotal < 0 {
		return false, "Total quantity must not be negative"
	}
	return true, ""
}
