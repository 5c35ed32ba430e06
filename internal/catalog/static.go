package catalog

import (
	"context"

	"github.com/carrental/bookingservice/internal/domain"
)

// Tier is a named grouping of add-on eligibility, keyed off vehicle identity.
// Higher tiers are supersets of lower ones: mid gets everything base gets,
// top gets everything mid gets.
type Tier int

const (
	// TierBase offers only the add-ons every vehicle is eligible for.
	TierBase Tier = iota
	// TierMid adds the mid-tier add-ons on top of base.
	TierMid
	// TierTop adds the premium add-ons on top of mid.
	TierTop
)

// vehicleTiers assigns each vehicle identity its eligibility tier.
// Membership is an explicit business-rule table, deliberately not inferred
// from daily cost. Identities absent from the table resolve to TierBase.
var vehicleTiers = map[int64]Tier{
	1: TierBase, // Sedan
	2: TierMid,  // SUV
	3: TierTop,  // Luxury
	4: TierMid,  // Van
}

// The reference catalog. Display order within each tier is the order below;
// tiers are appended base → mid → premium.
var (
	vehicles = []domain.Vehicle{
		{ID: 1, Name: "Sedan", Emoji: "🚗", CostPerDay: domain.Rupees(2500)},
		{ID: 2, Name: "SUV", Emoji: "🚙", CostPerDay: domain.Rupees(3500)},
		{ID: 3, Name: "Luxury", Emoji: "🏎️", CostPerDay: domain.Rupees(5000)},
		{ID: 4, Name: "Van", Emoji: "🚐", CostPerDay: domain.Rupees(4000)},
	}

	baseAddons = []domain.Addon{
		{ID: 1, Name: "GPS Navigation", CostPerDay: domain.Rupees(200)},
		{ID: 2, Name: "Child Seat", CostPerDay: domain.Rupees(150)},
		{ID: 5, Name: "Insurance", CostPerDay: domain.Rupees(500)},
		{ID: 6, Name: "Roadside Assistance", CostPerDay: domain.Rupees(250)},
	}

	midAddons = []domain.Addon{
		{ID: 3, Name: "WiFi Hotspot", CostPerDay: domain.Rupees(300)},
	}

	premiumAddons = []domain.Addon{
		{ID: 4, Name: "Driver Service", CostPerDay: domain.Rupees(1000)},
		{ID: 7, Name: "Premium Insurance", CostPerDay: domain.Rupees(800)},
		{ID: 8, Name: "Concierge Service", CostPerDay: domain.Rupees(1200)},
		{ID: 9, Name: "Chauffeur Service", CostPerDay: domain.Rupees(1500)},
		{ID: 10, Name: "Premium Sound System", CostPerDay: domain.Rupees(400)},
	}
)

// TierOf resolves a vehicle identity to its eligibility tier.
// A nil or unknown identity is TierBase.
func TierOf(vehicleID *int64) Tier {
	if vehicleID == nil {
		return TierBase
	}
	return vehicleTiers[*vehicleID] // zero value is TierBase
}

// EligibleAddons is the pure eligibility lookup: the ordered add-on set for
// the given vehicle identity. The result is a fresh slice on every call and
// always replaces — never merges with — any previously resolved set.
func EligibleAddons(vehicleID *int64) []domain.Addon {
	tier := TierOf(vehicleID)

	addons := make([]domain.Addon, 0, len(baseAddons)+len(midAddons)+len(premiumAddons))
	addons = append(addons, baseAddons...)
	if tier >= TierMid {
		addons = append(addons, midAddons...)
	}
	if tier >= TierTop {
		addons = append(addons, premiumAddons...)
	}
	return addons
}

// Static is the in-memory reference catalog. It backs deployments without a
// database and is the fallback provider in tests.
type Static struct{}

// NewStatic constructs the in-memory reference catalog provider.
func NewStatic() *Static {
	return &Static{}
}

// ListVehicles returns the reference vehicle list.
func (*Static) ListVehicles(_ context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, len(vehicles))
	copy(out, vehicles)
	return out, nil
}

// ListAddons returns the eligible add-ons for the given vehicle identity.
func (*Static) ListAddons(_ context.Context, vehicleID *int64) ([]domain.Addon, error) {
	return EligibleAddons(vehicleID), nil
}
