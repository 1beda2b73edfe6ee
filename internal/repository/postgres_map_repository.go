package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

const mapColumns = `id, event_id, name, COALESCE(background_image_url, '') as background_image_url,
	width, height, config, created_at, updated_at`

// PostgresMapRepository implements MapRepository using PostgreSQL.
type PostgresMapRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMapRepository creates a new PostgresMapRepository.
func NewPostgresMapRepository(pool *pgxpool.Pool) *PostgresMapRepository {
	return &PostgresMapRepository{pool: pool}
}

func (r *PostgresMapRepository) scanMap(row pgx.Row) (*domain.Map, error) {
	m := &domain.Map{}
	var config []byte
	err := row.Scan(
		&m.ID,
		&m.EventID,
		&m.Name,
		&m.BackgroundImageURL,
		&m.Width,
		&m.Height,
		&config,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(config) > 0 {
		if err := json.Unmarshal(config, &m.Config); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Create inserts a new map.
func (r *PostgresMapRepository) Create(ctx context.Context, m *domain.Map) error {
	config, err := json.Marshal(m.Config)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO event_maps (id, event_id, name, background_image_url, width, height, config, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		m.ID,
		m.EventID,
		m.Name,
		m.BackgroundImageURL,
		m.Width,
		m.Height,
		config,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

// GetByID retrieves a map by ID.
func (r *PostgresMapRepository) GetByID(ctx context.Context, id string) (*domain.Map, error) {
	query := `SELECT ` + mapColumns + ` FROM event_maps WHERE id = $1`
	return r.scanMap(r.pool.QueryRow(ctx, query, id))
}

// GetByEventID retrieves the map owned by an event. Each event has at most one
// layout, so the newest row wins if legacy duplicates exist.
func (r *PostgresMapRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Map, error) {
	query := `SELECT ` + mapColumns + ` FROM event_maps WHERE event_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanMap(r.pool.QueryRow(ctx, query, eventID))
}

// Update updates a map.
func (r *PostgresMapRepository) Update(ctx context.Context, m *domain.Map) error {
	config, err := json.Marshal(m.Config)
	if err != nil {
		return err
	}
	m.UpdatedAt = time.Now()
	query := `
		UPDATE event_maps
		SET name = $2, background_image_url = NULLIF($3, ''), width = $4, height = $5, config = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		m.ID,
		m.Name,
		m.BackgroundImageURL,
		m.Width,
		m.Height,
		config,
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "map", ID: m.ID}
	}
	return nil
}

// Delete removes a map by ID.
func (r *PostgresMapRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM event_maps WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "map", ID: id}
	}
	return nil
}
