package booking

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/carrental/bookingservice/internal/catalog"
	"github.com/carrental/bookingservice/internal/domain"
)

// addonFetchTimeout bounds the asynchronous add-on rescope triggered by
// SelectVehicle. The fetch outlives the HTTP request that triggered it, so
// it runs under its own background context rather than the request context.
const addonFetchTimeout = 5 * time.Second

// Session is the booking configuration state machine. It exclusively owns
// one in-flight BookingSelection: the selected vehicle, the raw pickup and
// drop-off inputs, the ordered selected add-on ids, the available add-on set
// scoped to the current vehicle, and the confirmation flag.
//
// All state changes go through the transition methods below; derived values
// (validity, summary) are recomputed on every read and never stored.
// A Session is safe for concurrent use, but models a single logical writer:
// the only concurrency is the add-on fetch resolving in the background.
type Session struct {
	mu       sync.Mutex
	provider catalog.Provider
	now      func() time.Time

	vehicle *domain.Vehicle
	// pickup and dropoff hold the raw user input. Partial input is kept
	// verbatim ("not yet evaluable"), so legality is always judged from
	// what the user actually sees in the field.
	pickup  string
	dropoff string
	// selected preserves insertion order for display; ids are unique.
	selected []int64
	// available is the add-on catalog scoped to the current vehicle.
	// addonsLoaded distinguishes "not yet loaded" from "known empty":
	// a failed or outstanding fetch leaves it false, and an empty set with
	// addonsLoaded false must not be read as "vehicle has no add-ons".
	available    []domain.Addon
	addonsLoaded bool
	confirming   bool
}

// NewSession constructs an empty booking session. now supplies the reference
// "today" for date legality; pass time.Now outside tests.
func NewSession(provider catalog.Provider, now func() time.Time) *Session {
	return &Session{provider: provider, now: now}
}

// SelectVehicle sets the selected vehicle and rescopes the rest of the
// selection to it:
//
//   - Dates are cleared only when the vehicle identity actually changes.
//   - Selected add-ons and the available set are cleared on every call,
//     including reselecting the current vehicle, and a fresh add-on fetch
//     is started. The asymmetry with dates mirrors the shipped product
//     behavior; whether a same-vehicle reselect should keep add-ons is
//     pending product clarification.
//
// The add-on fetch completes in the background. Its result is tagged with
// the vehicle identity that triggered it and is discarded if the selection
// has moved on by the time it resolves, so a stale fetch can never populate
// the available set for the wrong vehicle.
func (s *Session) SelectVehicle(v domain.Vehicle) {
	s.mu.Lock()
	if s.vehicle != nil && s.vehicle.ID != v.ID {
		s.pickup = ""
		s.dropoff = ""
	}
	veh := v
	s.vehicle = &veh
	s.selected = nil
	s.available = nil
	s.addonsLoaded = false
	s.mu.Unlock()

	go s.fetchAddons(v.ID)
}

// fetchAddons resolves the add-on set for the given vehicle identity and
// applies it only if that vehicle is still the selected one.
func (s *Session) fetchAddons(vehicleID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), addonFetchTimeout)
	defer cancel()

	addons, err := s.provider.ListAddons(ctx, &vehicleID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vehicle == nil || s.vehicle.ID != vehicleID {
		// Stale result: the user switched vehicles while this fetch was in
		// flight. Discard rather than apply.
		return
	}
	if err != nil {
		// The session stays usable; available add-ons simply remain
		// "not yet loaded" until a later select retries.
		slog.Warn("add-on fetch failed", "vehicle_id", vehicleID, "error", err)
		return
	}
	if addons == nil {
		// Keep "known empty" representable: nil means "not yet loaded".
		addons = []domain.Addon{}
	}
	s.available = addons
	s.addonsLoaded = true
}

// SetPickupDate applies a pickup input. Well-formed input lying in the past
// is rejected with no state change and a pickup field message. Accepted
// input that makes an existing well-formed drop-off illegal (no longer
// strictly later) clears the drop-off and reports a drop-off field message.
func (s *Session) SetPickupDate(raw string) DateErrors {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg := CheckPickup(raw, s.today()); msg != "" {
		return DateErrors{Pickup: msg}
	}
	s.pickup = raw

	var errs DateErrors
	if p, ok := evaluable(raw); ok {
		if d, dok := evaluable(s.dropoff); dok && !d.After(p) {
			s.dropoff = ""
			errs.Dropoff = msgDropoffNotAfterPickup
		}
	}
	return errs
}

// SetDropoffDate applies a drop-off input. Well-formed input in the past or
// not strictly later than a well-formed pickup is rejected with no state
// change and a drop-off field message.
func (s *Session) SetDropoffDate(raw string) DateErrors {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg := CheckDropoff(raw, s.pickup, s.today()); msg != "" {
		return DateErrors{Dropoff: msg}
	}
	s.dropoff = raw
	return DateErrors{}
}

// ToggleAddon adds the id to the selection, or removes it if already
// selected. Ids not present in the currently available set are ignored —
// a toggle for an ineligible or not-yet-loaded add-on is a silent no-op,
// never an error. Reports whether the selection changed.
func (s *Session) ToggleAddon(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.available, func(a domain.Addon) bool { return a.ID == id }) {
		return false
	}
	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
	} else {
		s.selected = append(s.selected, id)
	}
	return true
}

// ShowConfirmation raises the confirmation flag. It succeeds only while the
// validity gate holds; otherwise it is a no-op. Reports whether the flag
// is now set.
func (s *Session) ShowConfirmation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.validLocked() {
		return false
	}
	s.confirming = true
	return true
}

// HideConfirmation lowers the confirmation flag.
func (s *Session) HideConfirmation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirming = false
}

// Reset clears the selection back to empty: vehicle, dates, add-ons, and the
// confirmation flag. The vehicle catalog itself is session-scoped, not
// booking-scoped, so any cached catalog data survives a reset.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicle = nil
	s.pickup = ""
	s.dropoff = ""
	s.selected = nil
	s.available = nil
	s.addonsLoaded = false
	s.confirming = false
}

// Valid is the validity gate: vehicle set, both dates set and well-formed,
// and a positive day span. Add-ons are never required. This predicate alone
// decides whether ShowConfirmation may succeed.
func (s *Session) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validLocked()
}

func (s *Session) validLocked() bool {
	return s.vehicle != nil && Days(s.pickup, s.dropoff) > 0
}

// Summary derives the current cost breakdown. ok is false while the
// selection is not yet computable (no vehicle, incomplete dates).
func (s *Session) Summary() (domain.BookingSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.vehicle, s.pickup, s.dropoff, s.selected, s.available)
}

// Snapshot is an immutable copy of the selection state plus its derived
// values, taken under one lock acquisition so the pieces are consistent
// with each other.
type Snapshot struct {
	Vehicle          *domain.Vehicle
	Pickup           string
	Dropoff          string
	SelectedAddonIDs []int64
	AvailableAddons  []domain.Addon
	AddonsLoaded     bool
	Confirming       bool
	Valid            bool
	Summary          *domain.BookingSummary
}

// Snapshot returns a consistent copy of the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Pickup:           s.pickup,
		Dropoff:          s.dropoff,
		SelectedAddonIDs: slices.Clone(s.selected),
		AvailableAddons:  slices.Clone(s.available),
		AddonsLoaded:     s.addonsLoaded,
		Confirming:       s.confirming,
		Valid:            s.validLocked(),
	}
	if snap.SelectedAddonIDs == nil {
		snap.SelectedAddonIDs = []int64{}
	}
	if s.vehicle != nil {
		veh := *s.vehicle
		snap.Vehicle = &veh
	}
	if sum, ok := Summarize(s.vehicle, s.pickup, s.dropoff, s.selected, s.available); ok {
		snap.Summary = &sum
	}
	return snap
}

// today evaluates the reference date for legality checks in the caller's
// local calendar.
func (s *Session) today() domain.Date {
	return domain.DateOf(s.now())
}
