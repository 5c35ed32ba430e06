package booking

import "github.com/carrental/bookingservice/internal/domain"

// taxRatePercent is the fixed tax rate applied to the subtotal.
// Not configurable per locale in this version.
const taxRatePercent = 18

// Days returns the rental length in whole calendar days between two raw
// date inputs, rounding fractional spans up. It is 0 when either input is
// missing or malformed, or when the drop-off is not after the pickup.
func Days(rawPickup, rawDropoff string) int {
	p, ok := evaluable(rawPickup)
	if !ok {
		return 0
	}
	d, ok := evaluable(rawDropoff)
	if !ok {
		return 0
	}
	days := p.DaysUntil(d)
	if days < 0 {
		return 0
	}
	return days
}

// Summarize derives the cost breakdown for a selection. It is a pure
// function of the vehicle, the raw date inputs, and the selected add-on ids
// resolved against the currently available add-on set.
//
// The second return value is false when no summary is computable (vehicle
// unset, either date missing or malformed, or a zero-day span) — callers
// must distinguish "not yet computable" from a breakdown that happens to be
// zero. Selected ids that no longer resolve against the available set
// contribute nothing.
func Summarize(vehicle *domain.Vehicle, rawPickup, rawDropoff string, selected []int64, available []domain.Addon) (domain.BookingSummary, bool) {
	if vehicle == nil {
		return domain.BookingSummary{}, false
	}
	days := Days(rawPickup, rawDropoff)
	if days == 0 {
		return domain.BookingSummary{}, false
	}

	byID := make(map[int64]domain.Addon, len(available))
	for _, a := range available {
		byID[a.ID] = a
	}

	// Resolve in selection order so the summary lists add-ons the way the
	// user picked them.
	resolved := make([]domain.Addon, 0, len(selected))
	var addonsCost domain.Money
	for _, id := range selected {
		a, ok := byID[id]
		if !ok {
			continue
		}
		resolved = append(resolved, a)
		addonsCost += a.CostPerDay.Times(days)
	}

	baseCost := vehicle.CostPerDay.Times(days)
	subtotal := baseCost + addonsCost
	tax := subtotal.Percent(taxRatePercent)

	return domain.BookingSummary{
		Vehicle:    *vehicle,
		Days:       days,
		BaseCost:   baseCost,
		AddonsCost: addonsCost,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      subtotal + tax,
		Addons:     resolved,
	}, true
}
