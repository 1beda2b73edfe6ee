package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

const ticketColumns = `id, event_id, name, COALESCE(description, '') as description, price, currency,
	quantity_total, quantity_sold, max_per_user, sales_start_at, sales_end_at, is_active`

// PostgresTicketRepository implements TicketRepository using PostgreSQL.
type PostgresTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketRepository creates a new PostgresTicketRepository.
func NewPostgresTicketRepository(pool *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{pool: pool}
}

func scanTicketRow(row pgx.Row) (*domain.Ticket, error) {
	t := &domain.Ticket{}
	err := row.Scan(
		&t.ID,
		&t.EventID,
		&t.Name,
		&t.Description,
		&t.Price,
		&t.Currency,
		&t.QuantityTotal,
		&t.QuantitySold,
		&t.MaxPerUser,
		&t.SalesStartAt,
		&t.SalesEndAt,
		&t.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a new ticket.
func (r *PostgresTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `
		INSERT INTO events_tickets (id, event_id, name, description, price, currency,
			quantity_total, quantity_sold, max_per_user, sales_start_at, sales_end_at, is_active)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		t.ID,
		t.EventID,
		t.Name,
		t.Description,
		t.Price,
		t.Currency,
		t.QuantityTotal,
		t.QuantitySold,
		t.MaxPerUser,
		t.SalesStartAt,
		t.SalesEndAt,
		t.IsActive,
	)
	return err
}

// GetByID retrieves a ticket by ID.
func (r *PostgresTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM events_tickets WHERE id = $1`
	return scanTicketRow(r.pool.QueryRow(ctx, query, id))
}

// GetByEventID retrieves all tickets for an event.
func (r *PostgresTicketRepository) GetByEventID(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM events_tickets WHERE event_id = $1 ORDER BY sales_start_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		t, err := scanTicketRow(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Update updates a ticket.
func (r *PostgresTicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	query := `
		UPDATE events_tickets
		SET name = $2, description = NULLIF($3, ''), price = $4, currency = $5,
			quantity_total = $6, quantity_sold = $7, max_per_user = $8,
			sales_start_at = $9, sales_end_at = $10, is_active = $11
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		t.ID,
		t.Name,
		t.Description,
		t.Price,
		t.Currency,
		t.QuantityTotal,
		t.QuantitySold,
		t.MaxPerUser,
		t.SalesStartAt,
		t.SalesEndAt,
		t.IsActive,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "ticket", ID: t.ID}
	}
	return nil
}

// Delete removes a ticket by ID. Callers clear dependent zone references
// first; see ZoneRepository.ClearTicketRefs.
func (r *PostgresTicketRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events_tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "ticket", ID: id}
	}
	return nil
}
