package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carrental/bookingservice/internal/booking"
	"github.com/carrental/bookingservice/internal/domain"
)

// sessionCookieName identifies the caller's booking session. The system
// models exactly one in-flight booking per session.
const sessionCookieName = "booking_session"

// BookingResponse is the full selection state returned by every booking
// endpoint, so clients always render from one consistent snapshot.
//
// AvailableAddons is null while the add-on catalog for the selected vehicle
// has not loaded yet (AddonsLoaded false) and an empty array when the
// vehicle is known to have no add-ons — clients must not conflate the two.
type BookingResponse struct {
	Vehicle          *domain.Vehicle        `json:"vehicle"`
	Pickup           string                 `json:"pickup"`
	Dropoff          string                 `json:"dropoff"`
	SelectedAddonIDs []int64                `json:"selectedAddonIds"`
	AvailableAddons  []domain.Addon         `json:"availableAddons"`
	AddonsLoaded     bool                   `json:"addonsLoaded"`
	IsValid          bool                   `json:"isValid"`
	Confirming       bool                   `json:"confirming"`
	Summary          *domain.BookingSummary `json:"summary"`
	DateErrors       *booking.DateErrors    `json:"dateErrors,omitempty"`
}

// session resolves the caller's booking session from the session cookie,
// minting a new session id (and setting the cookie) on first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *booking.Session {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return s.sessions.Get(id)
		}
	}

	id := uuid.New()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.sessions.Get(id)
}

// bookingState renders the session snapshot, optionally attaching the
// field errors produced by the transition that just ran.
func bookingState(sess *booking.Session, errs *booking.DateErrors) BookingResponse {
	snap := sess.Snapshot()
	resp := BookingResponse{
		Vehicle:          snap.Vehicle,
		Pickup:           snap.Pickup,
		Dropoff:          snap.Dropoff,
		SelectedAddonIDs: snap.SelectedAddonIDs,
		AvailableAddons:  snap.AvailableAddons,
		AddonsLoaded:     snap.AddonsLoaded,
		IsValid:          snap.Valid,
		Confirming:       snap.Confirming,
		Summary:          snap.Summary,
	}
	if errs != nil && !errs.OK() {
		resp.DateErrors = errs
	}
	return resp
}

// GetBooking handles GET /api/v1/booking.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	writeJSON(w, http.StatusOK, bookingState(sess, nil))
}

// SelectVehicle handles PUT /api/v1/booking/vehicle.
// Looks the id up in the catalog so the selection always holds a real
// vehicle; the add-on rescope fetch starts in the background.
func (s *Server) SelectVehicle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VehicleID int64 `json:"vehicleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body must be JSON with a vehicleId")
		return
	}

	vehicles, err := s.catalog.ListVehicles(r.Context())
	if err != nil {
		catalogUnavailable(w)
		return
	}

	sess := s.session(w, r)
	for _, v := range vehicles {
		if v.ID == body.VehicleID {
			sess.SelectVehicle(v)
			writeJSON(w, http.StatusOK, bookingState(sess, nil))
			return
		}
	}
	notFound(w, "vehicle not found")
}

// SetPickupDate handles PUT /api/v1/booking/pickup.
// A rejected input (well-formed but in the past) returns 422 and leaves the
// state untouched. An accepted input returns 200; if it invalidated the
// existing drop-off, the cleared field is reported in dateErrors.
func (s *Server) SetPickupDate(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeDate(w, r)
	if !ok {
		return
	}

	sess := s.session(w, r)
	errs := sess.SetPickupDate(raw)
	if errs.Pickup != "" {
		validationError(w, "pickup", errs.Pickup)
		return
	}
	writeJSON(w, http.StatusOK, bookingState(sess, &errs))
}

// SetDropoffDate handles PUT /api/v1/booking/dropoff.
func (s *Server) SetDropoffDate(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeDate(w, r)
	if !ok {
		return
	}

	sess := s.session(w, r)
	errs := sess.SetDropoffDate(raw)
	if errs.Dropoff != "" {
		validationError(w, "dropoff", errs.Dropoff)
		return
	}
	writeJSON(w, http.StatusOK, bookingState(sess, &errs))
}

// ToggleAddon handles POST /api/v1/booking/addons/{addonID}/toggle.
// Toggling an id that is not currently available is a no-op, not an error.
func (s *Server) ToggleAddon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "addonID"), 10, 64)
	if err != nil {
		validationError(w, "addonID", "addonID must be an integer")
		return
	}

	sess := s.session(w, r)
	sess.ToggleAddon(id)
	writeJSON(w, http.StatusOK, bookingState(sess, nil))
}

// ShowConfirmation handles POST /api/v1/booking/confirm.
// A no-op while the selection is not yet valid; the returned state carries
// the confirming flag either way.
func (s *Server) ShowConfirmation(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.ShowConfirmation()
	writeJSON(w, http.StatusOK, bookingState(sess, nil))
}

// HideConfirmation handles DELETE /api/v1/booking/confirm.
func (s *Server) HideConfirmation(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.HideConfirmation()
	writeJSON(w, http.StatusOK, bookingState(sess, nil))
}

// ResetBooking handles DELETE /api/v1/booking.
// Clears the selection back to empty; the session itself (and any cached
// catalog data) survives.
func (s *Server) ResetBooking(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Reset()
	writeJSON(w, http.StatusOK, bookingState(sess, nil))
}

// decodeDate extracts the raw date string from a {"date": "..."} body.
// The raw value is passed through unparsed: partial input must reach the
// booking engine so it can treat it as "not yet evaluable".
func decodeDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body must be JSON with a date")
		return "", false
	}
	return body.Date, true
}
