package planner_test

import (
	"testing"

	catalogModel "caravan/internal/domains/catalog/model"
	clientModel "caravan/internal/domains/client/model"
	itineraryModel "caravan/internal/domains/itinerary/model"
	"caravan/internal/domains/itinerary/planner"

	"github.com/stretchr/testify/assert"
)

func plannerSnapshot() catalogModel.Snapshot {
	return catalogModel.Snapshot{
		Transportations: []catalogModel.Transportation{
			{ID: "t1", Name: "City Cab", Type: catalogModel.TransportationTypeCab},
		},
		Sightseeings: map[string]catalogModel.Sightseeing{
			"sA": {ID: "sA", Name: "Aguada Fort", TransportationMode: catalogModel.TransportationTypeCab},
			"sB": {ID: "sB", Name: "Basilica", TransportationMode: catalogModel.TransportationTypeCab},
			"sC": {ID: "sC", Name: "Chapora", TransportationMode: catalogModel.TransportationTypeSelfDriveScooter},
		},
		EntryTickets: map[string]catalogModel.EntryTicket{
			"tkA": {ID: "tkA", Name: "Fort Entry", SightseeingID: "sA"},
			"tkB": {ID: "tkB", Name: "Basilica Entry", SightseeingID: "sB"},
		},
	}
}

func cabClient() clientModel.Client {
	return clientModel.Client{NumAdults: 2, NumberOfDays: 3, TransportationMode: "City Cab"}
}

func spotIDs(spots []catalogModel.Sightseeing) []string {
	ids := make([]string, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}

	return ids
}

func TestEarlierDaysExcludeSpots(t *testing.T) {
	plans := itineraryModel.DayPlans{
		{Day: 1, SightseeingIDs: []string{"sA"}},
		{Day: 2},
	}

	got := planner.AvailableForDay(2, plans, cabClient(), plannerSnapshot())

	assert.NotContains(t, spotIDs(got.Sightseeing), "sA")
	assert.Contains(t, spotIDs(got.Sightseeing), "sB")
}

func TestClearingLaterDayDoesNotFreeEarlierSelections(t *testing.T) {
	// Day 2 was cleared; day 1's spot stays consumed for day 2.
	plans := itineraryModel.DayPlans{
		{Day: 1, SightseeingIDs: []string{"sA"}},
		{Day: 2, SightseeingIDs: nil},
	}

	got := planner.AvailableForDay(2, plans, cabClient(), plannerSnapshot())

	assert.NotContains(t, spotIDs(got.Sightseeing), "sA")
}

func TestTransportationModeFiltersSpots(t *testing.T) {
	got := planner.AvailableForDay(1, nil, cabClient(), plannerSnapshot())

	// The scooter-mode spot never shows for a cab client.
	assert.Equal(t, []string{"sA", "sB"}, spotIDs(got.Sightseeing))
}

func TestUnresolvedModeShowsEverything(t *testing.T) {
	client := cabClient()
	client.TransportationMode = "Teleporter"

	got := planner.AvailableForDay(1, nil, client, plannerSnapshot())

	assert.Len(t, got.Sightseeing, 3)
}

func TestOwnDaySelectionsAreNotExcluded(t *testing.T) {
	plans := itineraryModel.DayPlans{
		{Day: 1, SightseeingIDs: []string{"sA"}},
	}

	got := planner.AvailableForDay(1, plans, cabClient(), plannerSnapshot())

	assert.Contains(t, spotIDs(got.Sightseeing), "sA")
}

func TestTicketCandidatesScopedToSelectedSpots(t *testing.T) {
	plans := itineraryModel.DayPlans{
		{Day: 1, SightseeingIDs: []string{"sA"}},
	}

	got := planner.AvailableForDay(1, plans, cabClient(), plannerSnapshot())

	assert.Len(t, got.EntryTickets, 1)
	assert.Equal(t, "tkA", got.EntryTickets[0].ID)
}

func TestConsumedTicketsAndActivitiesReported(t *testing.T) {
	plans := itineraryModel.DayPlans{
		{
			Day:            1,
			SightseeingIDs: []string{"sA"},
			Activities:     []itineraryModel.ActivitySelection{{ActivityID: "act1", OptionID: "o1"}},
			EntryTicketIDs: []string{"tkA"},
		},
		{Day: 2, SightseeingIDs: []string{"sB"}},
	}

	got := planner.AvailableForDay(2, plans, cabClient(), plannerSnapshot())

	assert.Equal(t, []string{"act1"}, got.ExcludedActivityIDs)
	assert.Equal(t, []string{"tkA"}, got.ExcludedTicketIDs)

	// tkA was consumed on day 1, so day 2 only offers tkB.
	assert.Len(t, got.EntryTickets, 1)
	assert.Equal(t, "tkB", got.EntryTickets[0].ID)
}

func TestStepComplete(t *testing.T) {
	empty := itineraryModel.DayPlan{Day: 1}
	withSpot := itineraryModel.DayPlan{Day: 1, SightseeingIDs: []string{"sA"}}

	assert.False(t, planner.StepComplete(planner.StepSightseeing, empty))
	assert.True(t, planner.StepComplete(planner.StepSightseeing, withSpot))

	for _, step := range []string{planner.StepHotel, planner.StepActivities, planner.StepTickets, planner.StepMeals} {
		assert.True(t, planner.StepComplete(step, empty), step)
	}
}

func TestStepsOrder(t *testing.T) {
	assert.Equal(t,
		[]string{planner.StepSightseeing, planner.StepHotel, planner.StepActivities, planner.StepTickets, planner.StepMeals},
		planner.Steps(),
	)
}
