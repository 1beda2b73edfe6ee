package database

import (
	"context"
	"os"
	"testing"
	"time"
)

// requireIntegration skips unless a live database is opted in via env.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}
}

func testConfig() *PostgresConfig {
	cfg := DefaultPostgresConfig()
	if host := os.Getenv("TEST_POSTGRES_HOST"); host != "" {
		cfg.Host = host
	}
	if user := os.Getenv("TEST_POSTGRES_USER"); user != "" {
		cfg.User = user
	}
	if password := os.Getenv("TEST_POSTGRES_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if dbname := os.Getenv("TEST_POSTGRES_DATABASE"); dbname != "" {
		cfg.Database = dbname
	}
	return cfg
}

func connect(t *testing.T) *PostgresDB {
	t.Helper()
	db, err := NewPostgres(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Database != "event_layouts" {
		t.Errorf("expected database 'event_layouts', got %q", cfg.Database)
	}
	if cfg.MaxConns != 25 || cfg.MinConns != 5 {
		t.Errorf("unexpected pool sizing: max=%d min=%d", cfg.MaxConns, cfg.MinConns)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.MaxRetries)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  PostgresConfig
		want string
	}{
		{
			name: "local defaults",
			cfg: PostgresConfig{
				Host: "localhost", Port: 5432,
				User: "postgres", Password: "postgres",
				Database: "event_layouts", SSLMode: "disable",
			},
			want: "host=localhost port=5432 user=postgres password=postgres dbname=event_layouts sslmode=disable",
		},
		{
			name: "remote with ssl",
			cfg: PostgresConfig{
				Host: "db.internal", Port: 5433,
				User: "designer", Password: "s3cret",
				Database: "layouts", SSLMode: "require",
			},
			want: "host=db.internal port=5433 user=designer password=s3cret dbname=layouts sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DSN(); got != tt.want {
				t.Errorf("DSN mismatch:\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestNewPostgres_Unreachable(t *testing.T) {
	cfg := &PostgresConfig{
		Host:           "invalid-host-that-does-not-exist",
		Port:           9999,
		User:           "nobody",
		Password:       "nobody",
		Database:       "nothing",
		SSLMode:        "disable",
		MaxRetries:     0,
		RetryInterval:  100 * time.Millisecond,
		ConnectTimeout: 1 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := NewPostgres(ctx, cfg); err == nil {
		t.Error("expected error for unreachable host, got nil")
	}
}

func TestPostgres_Connectivity_Integration(t *testing.T) {
	requireIntegration(t)
	db := connect(t)
	ctx := context.Background()

	if err := db.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
	if !db.IsConnected(ctx) {
		t.Error("expected IsConnected to report true")
	}
	if err := db.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}
	if db.Pool() == nil || db.Stats() == nil {
		t.Error("expected pool and stats to be available")
	}
}

func TestPostgres_ZoneRoundTrip_Integration(t *testing.T) {
	requireIntegration(t)
	db := connect(t)
	ctx := context.Background()

	err := db.Exec(ctx, `CREATE TEMP TABLE zone_scratch (
		id TEXT PRIMARY KEY,
		map_id TEXT NOT NULL,
		geometry_data JSONB NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create temp table failed: %v", err)
	}

	geometry := `{"x": 50, "y": 80, "width": 200, "height": 150, "shape": "rect"}`
	if err := db.Exec(ctx, "INSERT INTO zone_scratch (id, map_id, geometry_data) VALUES ($1, $2, $3)",
		"zone-1", "map-1", geometry); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var width int
	err = db.QueryRow(ctx, "SELECT (geometry_data->>'width')::int FROM zone_scratch WHERE id = $1", "zone-1").Scan(&width)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if width != 200 {
		t.Errorf("expected width 200, got %d", width)
	}
}

func TestPostgres_TransactionRollback_Integration(t *testing.T) {
	requireIntegration(t)
	db := connect(t)
	ctx := context.Background()

	if err := db.Exec(ctx, "CREATE TEMP TABLE tx_maps (id TEXT PRIMARY KEY, width INT)"); err != nil {
		t.Fatalf("create temp table failed: %v", err)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	if _, err := tx.Exec(ctx, "INSERT INTO tx_maps (id, width) VALUES ($1, $2)", "map-1", 700); err != nil {
		t.Fatalf("insert in tx failed: %v", err)
	}
	if err := tx.Rollback(ctx); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM tx_maps").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to discard the insert, found %d rows", count)
	}

	tx, err = db.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	if _, err := tx.Exec(ctx, "INSERT INTO tx_maps (id, width) VALUES ($1, $2)", "map-2", 800); err != nil {
		t.Fatalf("insert in tx failed: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	var width int
	if err := db.QueryRow(ctx, "SELECT width FROM tx_maps WHERE id = $1", "map-2").Scan(&width); err != nil {
		t.Fatalf("select after commit failed: %v", err)
	}
	if width != 800 {
		t.Errorf("expected width 800, got %d", width)
	}
}
