package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrental/bookingservice/internal/catalog"
	"github.com/carrental/bookingservice/internal/domain"
)

func addonIDs(addons []domain.Addon) []int64 {
	ids := make([]int64, len(addons))
	for i, a := range addons {
		ids[i] = a.ID
	}
	return ids
}

func TestStatic_ListVehicles(t *testing.T) {
	vehicles, err := catalog.NewStatic().ListVehicles(context.Background())

	require.NoError(t, err)
	require.Len(t, vehicles, 4)
	assert.Equal(t, "Sedan", vehicles[0].Name)
	assert.Equal(t, domain.Rupees(2500), vehicles[0].CostPerDay)
	assert.Equal(t, "Luxury", vehicles[2].Name)
	assert.Equal(t, domain.Rupees(5000), vehicles[2].CostPerDay)
}

// TestEligibleAddons_Tiers pins the full eligibility table: which add-on ids
// each vehicle identity may select, in display order.
func TestEligibleAddons_Tiers(t *testing.T) {
	base := []int64{1, 2, 5, 6}
	mid := append(append([]int64{}, base...), 3)
	top := append(append([]int64{}, mid...), 4, 7, 8, 9, 10)

	tests := []struct {
		name      string
		vehicleID *int64
		wantIDs   []int64
	}{
		{"no vehicle gets base tier", nil, base},
		{"Sedan is base tier", ptr(int64(1)), base},
		{"SUV is mid tier", ptr(int64(2)), mid},
		{"Van is mid tier", ptr(int64(4)), mid},
		{"Luxury is top tier", ptr(int64(3)), top},
		{"unknown identity falls back to base", ptr(int64(99)), base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.EligibleAddons(tt.vehicleID)
			assert.Equal(t, tt.wantIDs, addonIDs(got))
		})
	}
}

// TestEligibleAddons_FreshSlice verifies each call returns an independent
// slice, so a caller mutating its resolved set cannot corrupt the catalog.
func TestEligibleAddons_FreshSlice(t *testing.T) {
	luxury := int64(3)

	first := catalog.EligibleAddons(&luxury)
	first[0].Name = "mutated"

	second := catalog.EligibleAddons(&luxury)
	assert.Equal(t, "GPS Navigation", second[0].Name)
}

func TestTierOf(t *testing.T) {
	assert.Equal(t, catalog.TierBase, catalog.TierOf(nil))
	assert.Equal(t, catalog.TierBase, catalog.TierOf(ptr(int64(1))))
	assert.Equal(t, catalog.TierMid, catalog.TierOf(ptr(int64(2))))
	assert.Equal(t, catalog.TierTop, catalog.TierOf(ptr(int64(3))))
	assert.Equal(t, catalog.TierBase, catalog.TierOf(ptr(int64(42))))
}

func ptr[T any](v T) *T {
	return &v
}
