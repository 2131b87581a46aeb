package pricing_test

import (
	"testing"
	"time"

	catalogModel "caravan/internal/domains/catalog/model"
	clientModel "caravan/internal/domains/client/model"
	itineraryModel "caravan/internal/domains/itinerary/model"
	"caravan/internal/domains/itinerary/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &d
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func testOptions() pricing.Options {
	return pricing.Options{
		SelfDriveCarSurcharge:     dec(15),
		SelfDriveScooterSurcharge: dec(5),
	}
}

func seasonalSnapshot() catalogModel.Snapshot {
	return catalogModel.Snapshot{
		Hotels: map[string]catalogModel.Hotel{
			"h1": {ID: "h1", Name: "Seaview", Place: "Panaji"},
		},
		RoomTypes: map[string]catalogModel.RoomType{
			"r1": {
				ID:              "r1",
				HotelID:         "h1",
				OffSeasonPrice:  dec(100),
				SeasonPrice:     dec(200),
				PeakSeasonPrice: dec(300),
			},
		},
	}
}

func oneNightClient(start *time.Time) clientModel.Client {
	return clientModel.Client{
		NumAdults:     1,
		NumberOfDays:  1,
		TripStartDate: start,
	}
}

func oneHotelNight() itineraryModel.DayPlans {
	return itineraryModel.DayPlans{
		{Day: 1, Hotel: &itineraryModel.HotelStay{HotelID: "h1", RoomTypeID: "r1"}},
	}
}

func TestComputeBaseCostDeterminism(t *testing.T) {
	snap := seasonalSnapshot()
	client := oneNightClient(date(2024, time.March, 1))
	plans := oneHotelNight()

	first := pricing.ComputeBaseCost(client, plans, snap, testOptions())

	for range 10 {
		assert.True(t, first.Equal(pricing.ComputeBaseCost(client, plans, snap, testOptions())))
	}
}

func TestSeasonalBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		start *time.Time
		want  decimal.Decimal
	}{
		{name: "peak window opens dec 20", start: date(2024, time.December, 20), want: dec(300)},
		{name: "peak window wraps to jan 5", start: date(2024, time.January, 5), want: dec(300)},
		{name: "dec 19 is off-season", start: date(2024, time.December, 19), want: dec(100)},
		{name: "jan 6 is off-season", start: date(2024, time.January, 6), want: dec(100)},
		{name: "mid july is season", start: date(2024, time.July, 15), want: dec(200)},
		{name: "jul 1 opens season", start: date(2024, time.July, 1), want: dec(200)},
		{name: "aug 31 closes season", start: date(2024, time.August, 31), want: dec(200)},
		{name: "flexible dates price off-season", start: nil, want: dec(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputeBaseCost(oneNightClient(tt.start), oneHotelNight(), seasonalSnapshot(), testOptions())

			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestVehicleTiering(t *testing.T) {
	snap := catalogModel.Snapshot{
		Transportations: []catalogModel.Transportation{
			{ID: "t1", Name: "Innova Cab", Type: catalogModel.TransportationTypeCab},
		},
		Sightseeings: map[string]catalogModel.Sightseeing{
			"s1": {ID: "s1", CabCostUpto6: dec(100), CabCostUpto12: dec(150)},
		},
	}
	plans := itineraryModel.DayPlans{{Day: 1, SightseeingIDs: []string{"s1"}}}

	sixPax := clientModel.Client{NumAdults: 6, NumberOfDays: 1, TransportationMode: "Innova Cab"}
	sevenPax := clientModel.Client{NumAdults: 5, NumChildren: 2, NumberOfDays: 1, TransportationMode: "Innova Cab"}

	assert.True(t, dec(100).Equal(pricing.ComputeBaseCost(sixPax, plans, snap, testOptions())))
	assert.True(t, dec(150).Equal(pricing.ComputeBaseCost(sevenPax, plans, snap, testOptions())))
}

func TestActivityProration(t *testing.T) {
	snap := catalogModel.Snapshot{
		Activities: map[string]catalogModel.Activity{
			"a1": {
				ID: "a1",
				Options: []catalogModel.ActivityOption{
					{ID: "o1", ActivityID: "a1", Cost: dec(50), CostForHowMany: 2},
				},
			},
		},
	}
	plans := itineraryModel.DayPlans{
		{Day: 1, Activities: []itineraryModel.ActivitySelection{{ActivityID: "a1", OptionID: "o1"}}},
	}

	tests := []struct {
		name string
		pax  int
		want decimal.Decimal
	}{
		{name: "five pax pay three groups", pax: 5, want: dec(150)},
		{name: "exact capacity pays once", pax: 2, want: dec(50)},
		{name: "single pax pays once", pax: 1, want: dec(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := clientModel.Client{NumAdults: tt.pax, NumberOfDays: 1}
			got := pricing.ComputeBaseCost(client, plans, snap, testOptions())

			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestDanglingIDsContributeZero(t *testing.T) {
	client := clientModel.Client{NumAdults: 2, NumberOfDays: 2, TransportationMode: "Ghost Cab"}
	plans := itineraryModel.DayPlans{
		{
			Day:            1,
			SightseeingIDs: []string{"gone"},
			Hotel:          &itineraryModel.HotelStay{HotelID: "gone", RoomTypeID: "gone"},
			Activities:     []itineraryModel.ActivitySelection{{ActivityID: "gone", OptionID: "gone"}},
			EntryTicketIDs: []string{"gone"},
			MealIDs:        []string{"gone"},
		},
	}

	got := pricing.ComputeBaseCost(client, plans, catalogModel.Snapshot{}, testOptions())

	assert.True(t, got.IsZero(), "got %s", got)
}

func TestRoomTypeOfDifferentHotelContributesZero(t *testing.T) {
	snap := seasonalSnapshot()
	client := oneNightClient(date(2024, time.March, 1))
	plans := itineraryModel.DayPlans{
		{Day: 1, Hotel: &itineraryModel.HotelStay{HotelID: "other-hotel", RoomTypeID: "r1"}},
	}

	got := pricing.ComputeBaseCost(client, plans, snap, testOptions())

	assert.True(t, got.IsZero(), "got %s", got)
}

func TestBundledTicketsAreNotRepriced(t *testing.T) {
	snap := catalogModel.Snapshot{
		Transportations: []catalogModel.Transportation{
			{ID: "t1", Name: "City Cab", Type: catalogModel.TransportationTypeCab},
		},
		Sightseeings: map[string]catalogModel.Sightseeing{
			"s1": {ID: "s1", CabCostUpto6: dec(40), IncludedTicketIDs: []string{"tk1"}},
		},
		EntryTickets: map[string]catalogModel.EntryTicket{
			"tk1": {ID: "tk1", Cost: dec(10)},
			"tk2": {ID: "tk2", Cost: dec(7)},
		},
	}
	client := clientModel.Client{NumAdults: 2, NumberOfDays: 1, TransportationMode: "City Cab"}
	plans := itineraryModel.DayPlans{
		{Day: 1, SightseeingIDs: []string{"s1"}, EntryTicketIDs: []string{"tk1", "tk2"}},
	}

	// tk1 rides along with the spot; only tk2 is priced: 40 + 7×2.
	got := pricing.ComputeBaseCost(client, plans, snap, testOptions())

	assert.True(t, dec(54).Equal(got), "got %s", got)
}

func TestDayPlansNormalizedToNumberOfDays(t *testing.T) {
	snap := catalogModel.Snapshot{
		Meals: map[string]catalogModel.Meal{
			"m1": {ID: "m1", Cost: dec(10)},
		},
	}
	client := clientModel.Client{NumAdults: 1, NumberOfDays: 1}

	// The second day falls outside the trip and must not be priced.
	plans := itineraryModel.DayPlans{
		{Day: 1, MealIDs: []string{"m1"}},
		{Day: 2, MealIDs: []string{"m1"}},
	}

	got := pricing.ComputeBaseCost(client, plans, snap, testOptions())

	assert.True(t, dec(10).Equal(got), "got %s", got)
}

func TestEndToEndScenario(t *testing.T) {
	snap := catalogModel.Snapshot{
		Hotels: map[string]catalogModel.Hotel{
			"h1": {ID: "h1"},
		},
		RoomTypes: map[string]catalogModel.RoomType{
			"r1": {ID: "r1", HotelID: "h1", OffSeasonPrice: dec(80)},
		},
		Transportations: []catalogModel.Transportation{
			{ID: "t1", Name: "Hatchback", Type: catalogModel.TransportationTypeSelfDriveCar, CostPerDay: dec(20)},
		},
		Sightseeings: map[string]catalogModel.Sightseeing{
			"s1": {ID: "s1"},
		},
		EntryTickets: map[string]catalogModel.EntryTicket{
			"tk1": {ID: "tk1", Cost: dec(10)},
		},
	}

	client := clientModel.Client{
		NumAdults:          2,
		NumberOfDays:       2,
		TransportationMode: "Hatchback",
		TripStartDate:      date(2024, time.March, 10),
	}

	plans := itineraryModel.DayPlans{
		{Day: 1, SightseeingIDs: []string{"s1"}, Hotel: &itineraryModel.HotelStay{HotelID: "h1", RoomTypeID: "r1"}},
		{Day: 2, EntryTicketIDs: []string{"tk1"}},
	}

	// (20×2) + 80 + 15 + (10×2) = 155
	got := pricing.ComputeBaseCost(client, plans, snap, testOptions())

	assert.True(t, dec(155).Equal(got), "got %s", got)
}
