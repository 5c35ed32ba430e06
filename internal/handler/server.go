// Package handler implements the HTTP handlers for the booking service API.
// All handlers are methods on Server. Methods are split into concern-specific
// files (health.go, catalog.go, booking.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carrental/bookingservice/internal/booking"
	"github.com/carrental/bookingservice/internal/domain"
)

// CatalogProvider defines the catalog operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a failing or canned catalog without a database or redis.
type CatalogProvider interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListAddons(ctx context.Context, vehicleID *int64) ([]domain.Addon, error)
}

// BookingSessions resolves a session id to its live booking session.
type BookingSessions interface {
	Get(id uuid.UUID) *booking.Session
}

// Server implements all API endpoints. Wire it in main.go via Routes().
type Server struct {
	catalog  CatalogProvider
	sessions BookingSessions
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogProvider, sessions BookingSessions) *Server {
	return &Server{catalog: catalog, sessions: sessions}
}

// Routes builds the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vehicles", s.ListVehicles)
		r.Get("/addons", s.ListAddons)

		r.Route("/booking", func(r chi.Router) {
			r.Get("/", s.GetBooking)
			r.Delete("/", s.ResetBooking)
			r.Put("/vehicle", s.SelectVehicle)
			r.Put("/pickup", s.SetPickupDate)
			r.Put("/dropoff", s.SetDropoffDate)
			r.Post("/addons/{addonID}/toggle", s.ToggleAddon)
			r.Post("/confirm", s.ShowConfirmation)
			r.Delete("/confirm", s.HideConfirmation)
		})
	})

	return r
}

// writeJSON serializes v as the response body with the given status code.
// Encoding failures at this point can no longer be reported to the client,
// so they are only logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encoding failed", "error", err)
	}
}
