// Package planner answers "what is still selectable" while an itinerary
// is built day by day. Sightseeing spots, activities and entry tickets
// partition across days; hotels and meals repeat freely. Pure: unknown
// ids simply never appear in a result.
package planner

import (
	"sort"

	catalogModel "caravan/internal/domains/catalog/model"
	clientModel "caravan/internal/domains/client/model"
	itineraryModel "caravan/internal/domains/itinerary/model"
)

// Build steps in fixed order.
const (
	StepSightseeing = "sightseeing"
	StepHotel       = "hotel"
	StepActivities  = "activities"
	StepTickets     = "tickets"
	StepMeals       = "meals"
)

// Steps returns the build order for a day.
func Steps() []string {
	return []string{StepSightseeing, StepHotel, StepActivities, StepTickets, StepMeals}
}

// Availability is the answer for one day under construction.
type Availability struct {
	// Sightseeing candidates matching the client's transportation mode,
	// minus spots consumed on earlier days. Sorted by name.
	Sightseeing []catalogModel.Sightseeing `json:"sightseeing"`
	// Entry tickets scoped to the day's currently selected spots, minus
	// tickets consumed on earlier days. Sorted by name.
	EntryTickets []catalogModel.EntryTicket `json:"entry_tickets"`
	// Ids no longer selectable because an earlier day used them.
	ExcludedActivityIDs []string `json:"excluded_activity_ids"`
	ExcludedTicketIDs   []string `json:"excluded_ticket_ids"`
}

// AvailableForDay computes the candidates for the 1-based dayIndex given
// the itinerary's current day plans. Only days strictly before dayIndex
// exclude items, so clearing and recomputing a later day never frees or
// consumes anything by accident.
func AvailableForDay(dayIndex int, dayPlans itineraryModel.DayPlans, client clientModel.Client, snap catalogModel.Snapshot) Availability {
	usedSpots := map[string]bool{}
	usedActivities := map[string]bool{}
	usedTickets := map[string]bool{}

	for _, plan := range dayPlans {
		if plan.Day >= dayIndex {
			continue
		}

		for _, id := range plan.SightseeingIDs {
			usedSpots[id] = true
		}

		for _, selection := range plan.Activities {
			usedActivities[selection.ActivityID] = true
		}

		for _, id := range plan.EntryTicketIDs {
			usedTickets[id] = true
		}
	}

	availability := Availability{
		ExcludedActivityIDs: sortedKeys(usedActivities),
		ExcludedTicketIDs:   sortedKeys(usedTickets),
	}

	mode, modeKnown := snap.FindTransportationByName(client.TransportationMode)

	for _, spot := range snap.Sightseeings {
		if usedSpots[spot.ID] {
			continue
		}

		if modeKnown && spot.TransportationMode != mode.Type {
			continue
		}

		availability.Sightseeing = append(availability.Sightseeing, spot)
	}

	sort.Slice(availability.Sightseeing, func(i, j int) bool {
		return availability.Sightseeing[i].Name < availability.Sightseeing[j].Name
	})

	selectedSpots := map[string]bool{}

	for _, plan := range dayPlans {
		if plan.Day != dayIndex {
			continue
		}

		for _, id := range plan.SightseeingIDs {
			selectedSpots[id] = true
		}
	}

	for _, ticket := range snap.EntryTickets {
		if usedTickets[ticket.ID] || !selectedSpots[ticket.SightseeingID] {
			continue
		}

		availability.EntryTickets = append(availability.EntryTickets, ticket)
	}

	sort.Slice(availability.EntryTickets, func(i, j int) bool {
		return availability.EntryTickets[i].Name < availability.EntryTickets[j].Name
	})

	return availability
}

// StepComplete reports whether a day's step gates further progress.
// Sightseeing is the only gated step; a day needs at least one spot
// before the rest of the day is built.
func StepComplete(step string, plan itineraryModel.DayPlan) bool {
	if step == StepSightseeing {
		return len(plan.SightseeingIDs) > 0
	}

	return true
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
