package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/carrental/bookingservice/internal/domain"
)

// ListVehicles handles GET /api/v1/vehicles.
// Returns every vehicle type available for rental.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.catalog.ListVehicles(r.Context())
	if err != nil {
		slog.Error("list vehicles failed", "error", err)
		catalogUnavailable(w)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// ListAddons handles GET /api/v1/addons?vehicleId=.
// With a vehicleId the add-ons are scoped to that vehicle's tier; without
// one only the base tier is returned. Unknown ids also fall back to the
// base tier — the catalog never errors on identity.
func (s *Server) ListAddons(w http.ResponseWriter, r *http.Request) {
	var vehicleID *int64
	if raw := r.URL.Query().Get("vehicleId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			validationError(w, "vehicleId", "vehicleId must be an integer")
			return
		}
		vehicleID = &id
	}

	addons, err := s.catalog.ListAddons(r.Context(), vehicleID)
	if err != nil {
		slog.Error("list addons failed", "error", err)
		catalogUnavailable(w)
		return
	}
	if addons == nil {
		addons = []domain.Addon{}
	}
	writeJSON(w, http.StatusOK, addons)
}
