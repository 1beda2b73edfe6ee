package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

const zoneColumns = `id, map_id, ticket_id, element_type, COALESCE(label, '') as label, geometry_data, created_at`

// PostgresZoneRepository implements ZoneRepository using PostgreSQL.
type PostgresZoneRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresZoneRepository creates a new PostgresZoneRepository.
func NewPostgresZoneRepository(pool *pgxpool.Pool) *PostgresZoneRepository {
	return &PostgresZoneRepository{pool: pool}
}

func scanZoneRow(row pgx.Row) (*domain.Zone, error) {
	z := &domain.Zone{}
	var geometry []byte
	err := row.Scan(
		&z.ID,
		&z.MapID,
		&z.TicketID,
		&z.ElementType,
		&z.Label,
		&geometry,
		&z.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(geometry) > 0 {
		if err := json.Unmarshal(geometry, &z.Geometry); err != nil {
			return nil, err
		}
	}
	return z, nil
}

const zoneUpsertQuery = `
	INSERT INTO event_map_zones (id, map_id, ticket_id, element_type, label, geometry_data, created_at)
	VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
	ON CONFLICT (id) DO UPDATE
	SET map_id = EXCLUDED.map_id,
		ticket_id = EXCLUDED.ticket_id,
		element_type = EXCLUDED.element_type,
		label = EXCLUDED.label,
		geometry_data = EXCLUDED.geometry_data
`

// Create inserts a new zone.
func (r *PostgresZoneRepository) Create(ctx context.Context, z *domain.Zone) error {
	geometry, err := json.Marshal(z.Geometry)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, zoneUpsertQuery,
		z.ID, z.MapID, z.TicketID, z.ElementType, z.Label, geometry, z.CreatedAt,
	)
	return err
}

// GetByID retrieves a zone by ID.
func (r *PostgresZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM event_map_zones WHERE id = $1`
	return scanZoneRow(r.pool.QueryRow(ctx, query, id))
}

// GetByMapID retrieves all zones placed on a map in creation order.
func (r *PostgresZoneRepository) GetByMapID(ctx context.Context, mapID string) ([]*domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM event_map_zones WHERE map_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, mapID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []*domain.Zone
	for rows.Next() {
		z, err := scanZoneRow(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

// Update updates a zone.
func (r *PostgresZoneRepository) Update(ctx context.Context, z *domain.Zone) error {
	geometry, err := json.Marshal(z.Geometry)
	if err != nil {
		return err
	}
	query := `
		UPDATE event_map_zones
		SET map_id = $2, ticket_id = $3, element_type = $4, label = NULLIF($5, ''), geometry_data = $6
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, z.ID, z.MapID, z.TicketID, z.ElementType, z.Label, geometry)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "zone", ID: z.ID}
	}
	return nil
}

// Delete removes a zone by ID.
func (r *PostgresZoneRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM event_map_zones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "zone", ID: id}
	}
	return nil
}

// BulkUpsert writes all zones in one batch round-trip and reports a per-row
// outcome list. pgx runs the batch inside an implicit transaction, so one
// failing row rolls back every row that already reported success; when that
// happens, every queued outcome is marked failed.
func (r *PostgresZoneRepository) BulkUpsert(ctx context.Context, zones []*domain.Zone) ([]UpsertOutcome, error) {
	outcomes := make([]UpsertOutcome, len(zones))
	batch := &pgx.Batch{}
	for i, z := range zones {
		outcomes[i].ID = z.ID
		geometry, err := json.Marshal(z.Geometry)
		if err != nil {
			outcomes[i].Err = err
			continue
		}
		batch.Queue(zoneUpsertQuery, z.ID, z.MapID, z.TicketID, z.ElementType, z.Label, geometry, z.CreatedAt)
	}

	results := r.pool.SendBatch(ctx, batch)

	var batchErr error
	for i := range outcomes {
		if outcomes[i].Err != nil {
			continue
		}
		if _, err := results.Exec(); err != nil {
			outcomes[i].Err = err
			if batchErr == nil {
				batchErr = err
			}
		}
	}
	if err := results.Close(); err != nil && batchErr == nil {
		batchErr = err
	}
	markBatchAborted(outcomes, batchErr)
	return outcomes, nil
}

// markBatchAborted fails every outcome still marked successful once the batch
// errors: the implicit transaction rolled those rows back.
func markBatchAborted(outcomes []UpsertOutcome, batchErr error) {
	if batchErr == nil {
		return
	}
	for i := range outcomes {
		if outcomes[i].Err == nil {
			outcomes[i].Err = fmt.Errorf("batch rolled back: %w", batchErr)
		}
	}
}

// ClearTicketRefs nulls ticket_id on every zone referencing the ticket.
// Dependent zones survive ticket deletion; only the binding is removed.
func (r *PostgresZoneRepository) ClearTicketRefs(ctx context.Context, ticketID string) (int, error) {
	result, err := r.pool.Exec(ctx, `UPDATE event_map_zones SET ticket_id = NULL WHERE ticket_id = $1`, ticketID)
	if err != nil {
		return 0, err
	}
	return int(result.RowsAffected()), nil
}
