package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrental/bookingservice/internal/domain"
	"github.com/carrental/bookingservice/internal/repo"
	"github.com/carrental/bookingservice/testutil"
)

// newCatalogRepo returns a CatalogRepo bound to a transaction that is rolled
// back when the test finishes, so tests can mutate catalog rows freely
// without affecting each other.
func newCatalogRepo(t *testing.T) *repo.CatalogRepo {
	t.Helper()

	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	return repo.NewCatalogRepo(tx)
}

func ptr[T any](v T) *T { return &v }

func TestCatalogRepo_ListVehicles_ReturnsSeededCatalog(t *testing.T) {
	r := newCatalogRepo(t)

	vehicles, err := r.ListVehicles(context.Background())

	require.NoError(t, err)
	require.Len(t, vehicles, 4)
	assert.Equal(t, int64(1), vehicles[0].ID)
	assert.Equal(t, "Sedan", vehicles[0].Name)
	assert.Equal(t, "🚗", vehicles[0].Emoji)
	assert.Equal(t, domain.Rupees(2500), vehicles[0].CostPerDay)
	assert.Equal(t, "Van", vehicles[3].Name)
}

func TestCatalogRepo_ListAddons_NilVehicleGetsBaseTier(t *testing.T) {
	r := newCatalogRepo(t)

	addons, err := r.ListAddons(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, addons, 4)
	names := make([]string, len(addons))
	for i, a := range addons {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"GPS Navigation", "Child Seat", "Insurance", "Roadside Assistance"}, names)
}

func TestCatalogRepo_ListAddons_MidTierVehicleAddsWifi(t *testing.T) {
	r := newCatalogRepo(t)

	addons, err := r.ListAddons(context.Background(), ptr(int64(2)))

	require.NoError(t, err)
	require.Len(t, addons, 5)
	assert.Equal(t, "WiFi Hotspot", addons[4].Name)
}

func TestCatalogRepo_ListAddons_TopTierVehicleGetsEverything(t *testing.T) {
	r := newCatalogRepo(t)

	addons, err := r.ListAddons(context.Background(), ptr(int64(3)))

	require.NoError(t, err)
	require.Len(t, addons, 10)
	// Premium tier rows come last, in display order.
	assert.Equal(t, "Personal Driver", addons[5].Name)
	assert.Equal(t, "Premium Sound System", addons[9].Name)
	assert.Equal(t, domain.Rupees(400), addons[9].CostPerDay)
}

func TestCatalogRepo_ListAddons_UnknownVehicleFallsBackToBase(t *testing.T) {
	r := newCatalogRepo(t)

	addons, err := r.ListAddons(context.Background(), ptr(int64(99)))

	require.NoError(t, err)
	assert.Len(t, addons, 4)
}
