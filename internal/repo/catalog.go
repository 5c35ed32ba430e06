// Package repo contains all database access logic for the booking service.
// The only persisted data is the read-only rental catalog; bookings
// themselves live in memory for the duration of a session.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carrental/bookingservice/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepo is the Postgres-backed catalog provider. It satisfies
// catalog.Provider: add-on eligibility is resolved by joining the explicit
// vehicle_tiers table, so unknown or absent vehicle ids resolve to the base
// tier rather than erroring.
type CatalogRepo struct {
	db db
}

// NewCatalogRepo constructs a CatalogRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCatalogRepo(db db) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ListVehicles returns every vehicle type, in catalog id order.
// Database errors are reported as "catalog unavailable": the caller's
// selection state must stay untouched and a retry is expected.
func (r *CatalogRepo) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	const q = `
		SELECT id, name, emoji, cost_per_day_paise
		FROM vehicles
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListVehicles: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Emoji, &v.CostPerDay); err != nil {
			return nil, fmt.Errorf("repo.CatalogRepo.ListVehicles: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListVehicles: rows: %w: %w", domain.ErrCatalogUnavailable, err)
	}

	return vehicles, nil
}

// ListAddons returns the add-ons eligible for the given vehicle, ordered by
// tier (base, then mid, then premium) and display order within a tier.
// A nil id — and any id absent from vehicle_tiers — yields only the base tier.
func (r *CatalogRepo) ListAddons(ctx context.Context, vehicleID *int64) ([]domain.Addon, error) {
	const q = `
		WITH vt AS (
			SELECT tier FROM vehicle_tiers WHERE vehicle_id = @vehicle_id
		)
		SELECT a.id, a.name, a.cost_per_day_paise
		FROM addons a
		WHERE a.tier = 'base'
		   OR (a.tier = 'mid' AND (SELECT tier FROM vt) IN ('mid', 'top'))
		   OR (a.tier = 'premium' AND (SELECT tier FROM vt) = 'top')
		ORDER BY CASE a.tier WHEN 'base' THEN 0 WHEN 'mid' THEN 1 ELSE 2 END,
		         a.display_order`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID})
	if err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListAddons: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var addons []domain.Addon
	for rows.Next() {
		var a domain.Addon
		if err := rows.Scan(&a.ID, &a.Name, &a.CostPerDay); err != nil {
			return nil, fmt.Errorf("repo.CatalogRepo.ListAddons: scan: %w", err)
		}
		addons = append(addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CatalogRepo.ListAddons: rows: %w: %w", domain.ErrCatalogUnavailable, err)
	}

	return addons, nil
}
