// Package catalog provides the read-only vehicle and add-on catalog.
// The booking engine consumes it through the Provider interface; concrete
// providers are the in-memory reference catalog (Static), the Postgres
// repository in internal/repo, and the redis Cache decorator.
package catalog

import (
	"context"

	"github.com/carrental/bookingservice/internal/domain"
)

// Provider is the boundary between the booking core and catalog storage.
// Implementations must be safe for concurrent use.
type Provider interface {
	// ListVehicles returns every vehicle type available for rental.
	// Returns an error wrapping domain.ErrCatalogUnavailable when the
	// catalog cannot be reached; selection state is never affected by that.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)

	// ListAddons returns the add-ons eligible for the given vehicle,
	// in display order. A nil vehicleID (and any unknown id) yields the
	// base tier — unknown identity is "no additional eligibility known",
	// never an error.
	ListAddons(ctx context.Context, vehicleID *int64) ([]domain.Addon, error)
}
