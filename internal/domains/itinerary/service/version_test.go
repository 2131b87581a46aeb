package service_test

import (
	"testing"

	catalogModel "caravan/internal/domains/catalog/model"
	clientModel "caravan/internal/domains/client/model"
	"caravan/internal/domains/itinerary/model"
	"caravan/internal/domains/itinerary/pricing"
	"caravan/internal/domains/itinerary/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWithRoom(offSeason float64) catalogModel.Snapshot {
	return catalogModel.Snapshot{
		Hotels: map[string]catalogModel.Hotel{
			"h1": {ID: "h1"},
		},
		RoomTypes: map[string]catalogModel.RoomType{
			"r1": {ID: "r1", HotelID: "h1", OffSeasonPrice: decimal.NewFromFloat(offSeason)},
		},
	}
}

func versionClient() clientModel.Client {
	return clientModel.Client{ID: "c1", Name: "Asha", NumAdults: 2, NumberOfDays: 1}
}

func hotelPlans() model.DayPlans {
	return model.DayPlans{
		{Day: 1, Hotel: &model.HotelStay{HotelID: "h1", RoomTypeID: "r1"}},
	}
}

func TestBuildNextVersionMonotonicity(t *testing.T) {
	snap := snapshotWithRoom(100)
	margin := decimal.NewFromInt(50)
	rate := decimal.NewFromInt(1)

	first := service.BuildNextVersion(nil, versionClient(), hotelPlans(), margin, rate,
		"sales-1", model.ChangeTypeCreated, "initial quote", snap, pricing.Options{})

	assert.Equal(t, 1, first.Version)
	require.Len(t, first.ChangeLog, 1)
	assert.Equal(t, model.ChangeTypeCreated, first.ChangeLog[0].ChangeType)
	assert.True(t, decimal.NewFromInt(100).Equal(first.TotalBaseCost))
	assert.True(t, decimal.NewFromInt(150).Equal(first.FinalPrice))

	second := service.BuildNextVersion(&first, versionClient(), hotelPlans(), margin, rate,
		"sales-2", model.ChangeTypeGeneralEdit, "tweaked day 1", snap, pricing.Options{})

	assert.Equal(t, 2, second.Version)
	require.Len(t, second.ChangeLog, 2)
	assert.Equal(t, first.ChangeLog[0], second.ChangeLog[0], "first entry must be carried unchanged")
	assert.Equal(t, 2, second.ChangeLog[1].Version)
	assert.Equal(t, "sales-2", second.ChangeLog[1].Actor)
}

func TestBuildNextVersionRepricesAgainstCurrentCatalog(t *testing.T) {
	margin := decimal.Zero
	rate := decimal.NewFromInt(1)

	first := service.BuildNextVersion(nil, versionClient(), hotelPlans(), margin, rate,
		"sales-1", model.ChangeTypeCreated, "initial", snapshotWithRoom(100), pricing.Options{})

	// The room got more expensive; the next version must pick that up even
	// though the day plans did not change.
	second := service.BuildNextVersion(&first, versionClient(), hotelPlans(), margin, rate,
		"sales-1", model.ChangeTypeGeneralEdit, "no-op edit", snapshotWithRoom(150), pricing.Options{})

	assert.True(t, decimal.NewFromInt(150).Equal(second.TotalBaseCost))
}

func TestBuildNextVersionNormalizesDayPlans(t *testing.T) {
	client := versionClient()
	client.NumberOfDays = 3

	built := service.BuildNextVersion(nil, client, hotelPlans(), decimal.Zero, decimal.NewFromInt(1),
		"sales-1", model.ChangeTypeCreated, "initial", snapshotWithRoom(100), pricing.Options{})

	require.Len(t, built.DayPlans, 3)
	assert.Equal(t, 1, built.DayPlans[0].Day)
	assert.Equal(t, 3, built.DayPlans[2].Day)
}

func TestIsStale(t *testing.T) {
	built := service.BuildNextVersion(nil, versionClient(), hotelPlans(), decimal.Zero, decimal.NewFromInt(1),
		"sales-1", model.ChangeTypeCreated, "initial", snapshotWithRoom(100), pricing.Options{})

	stale, fresh := service.IsStale(built, snapshotWithRoom(100), pricing.Options{})
	assert.False(t, stale)
	assert.True(t, decimal.NewFromInt(100).Equal(fresh))

	stale, fresh = service.IsStale(built, snapshotWithRoom(150), pricing.Options{})
	assert.True(t, stale)
	assert.True(t, decimal.NewFromInt(150).Equal(fresh), "recomputed figure is authoritative")
}

func TestIsStaleToleratesSubCentDrift(t *testing.T) {
	built := service.BuildNextVersion(nil, versionClient(), hotelPlans(), decimal.Zero, decimal.NewFromInt(1),
		"sales-1", model.ChangeTypeCreated, "initial", snapshotWithRoom(100), pricing.Options{})

	stale, _ := service.IsStale(built, snapshotWithRoom(100.005), pricing.Options{})
	assert.False(t, stale)

	stale, _ = service.IsStale(built, snapshotWithRoom(100.02), pricing.Options{})
	assert.True(t, stale)
}
