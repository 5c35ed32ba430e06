// Package booking implements the booking configuration engine: the date
// rules, the selection state machine, the pricing calculator, and the
// validity gate that controls confirmation.
package booking

import "github.com/carrental/bookingservice/internal/domain"

// Field-scoped validation messages. Date rejections are always local and
// recoverable; they never abort the session or block other fields.
const (
	msgPickupInPast          = "pickup date cannot be in the past"
	msgDropoffInPast         = "drop-off date cannot be in the past"
	msgDropoffNotAfterPickup = "drop-off date must be after the pickup date"
)

// DateErrors carries per-field validation messages from a date transition.
// An empty string means the field has no error.
type DateErrors struct {
	Pickup  string `json:"pickup,omitempty"`
	Dropoff string `json:"dropoff,omitempty"`
}

// OK reports whether neither field has an error.
func (e DateErrors) OK() bool {
	return e.Pickup == "" && e.Dropoff == ""
}

// evaluable parses a raw date input. Empty, partial, or malformed input is
// "not yet evaluable": it carries no date value but is not an error either —
// the user may still be typing.
func evaluable(raw string) (domain.Date, bool) {
	if raw == "" {
		return domain.Date{}, false
	}
	d, err := domain.ParseDate(raw)
	return d, err == nil
}

// CheckPickup decides whether a pickup input may be accepted relative to
// today. Returns a field message when the input is well-formed and illegal,
// "" otherwise. Same-day pickup is allowed.
func CheckPickup(raw string, today domain.Date) string {
	d, ok := evaluable(raw)
	if !ok {
		return ""
	}
	if d.Before(today) {
		return msgPickupInPast
	}
	return ""
}

// CheckDropoff decides whether a drop-off input may be accepted relative to
// today and the current pickup input. A well-formed drop-off must be strictly
// later than a well-formed pickup: equal dates are rejected, the minimum
// rental is one full day. When the pickup is not evaluable the ordering rule
// cannot fire yet.
func CheckDropoff(raw, rawPickup string, today domain.Date) string {
	d, ok := evaluable(raw)
	if !ok {
		return ""
	}
	if d.Before(today) {
		return msgDropoffInPast
	}
	if p, pok := evaluable(rawPickup); pok && !d.After(p) {
		return msgDropoffNotAfterPickup
	}
	return ""
}
