// Package domain contains the core data types for the vehicle rental
// booking engine. This package has zero external dependencies and is
// imported by every other internal package (catalog, booking, repo, handler).
package domain

// Vehicle represents a vehicle type available for rental.
// Vehicles are immutable catalog data: fetched once per session and cached,
// never mutated by the booking flow.
type Vehicle struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Emoji      string `json:"emoji"`
	CostPerDay Money  `json:"costPerDay"`
}

// Addon represents an additional service that can be attached to a rental.
// The set of add-ons offered depends on the selected vehicle's tier.
type Addon struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CostPerDay Money  `json:"costPerDay"`
}
