// Package pricing computes an itinerary's base cost from catalog data and
// client parameters. It is pure: no I/O, deterministic, and total. An id
// that no longer resolves against the snapshot contributes zero; the
// catalog may have changed since the itinerary was built and pricing must
// never fail because of it.
package pricing

import (
	"time"

	catalogModel "caravan/internal/domains/catalog/model"
	clientModel "caravan/internal/domains/client/model"
	itineraryModel "caravan/internal/domains/itinerary/model"

	"github.com/shopspring/decimal"
)

// Options carries the configured surcharge and currency constants so the
// package itself stays free of configuration lookups.
type Options struct {
	// Flat per-spot amounts standing in for fuel and parking when the
	// party self-drives to a sightseeing spot.
	SelfDriveCarSurcharge     decimal.Decimal
	SelfDriveScooterSurcharge decimal.Decimal
}

// ComputeBaseCost prices the trip. Day plans are normalized to the
// client's number of days before any accumulation, so stray or missing
// trailing days never skew the figure.
func ComputeBaseCost(client clientModel.Client, dayPlans itineraryModel.DayPlans, snap catalogModel.Snapshot, opts Options) decimal.Decimal {
	totalPax := client.TotalPax()
	numberOfDays := client.NumberOfDays
	plans := dayPlans.Normalize(numberOfDays)
	pax := decimal.NewFromInt(int64(totalPax))

	total := decimal.Zero

	// Self-drive vehicles are hired for the whole trip; cab costs are
	// charged per sightseeing spot instead.
	transportation, transportationKnown := snap.FindTransportationByName(client.TransportationMode)
	if transportationKnown && !transportation.IsCab() {
		total = total.Add(transportation.CostPerDay.Mul(decimal.NewFromInt(int64(numberOfDays))))
	}

	// The season is evaluated once from the trip start date, not per
	// calendar day. Flexible-date clients have no start date and price at
	// the off-season rate.
	nightly := func(roomType catalogModel.RoomType) decimal.Decimal {
		return seasonalNightlyPrice(roomType, client.TripStartDate)
	}

	for _, plan := range plans {
		if plan.Hotel != nil {
			if roomType, ok := snap.RoomType(plan.Hotel.HotelID, plan.Hotel.RoomTypeID); ok {
				total = total.Add(nightly(roomType))
			}
		}

		includedTickets := map[string]bool{}

		for _, spotID := range plan.SightseeingIDs {
			spot, ok := snap.Sightseeing(spotID)
			if !ok {
				continue
			}

			for _, ticketID := range spot.IncludedTicketIDs {
				includedTickets[ticketID] = true
			}

			if !transportationKnown {
				continue
			}

			if transportation.IsCab() {
				// Whole-vehicle charge, once per spot, never multiplied
				// by pax.
				total = total.Add(spot.VehicleCostFor(totalPax))

				continue
			}

			switch transportation.Type {
			case catalogModel.TransportationTypeSelfDriveScooter:
				total = total.Add(opts.SelfDriveScooterSurcharge)
			default:
				total = total.Add(opts.SelfDriveCarSurcharge)
			}
		}

		for _, selection := range plan.Activities {
			activity, ok := snap.Activity(selection.ActivityID)
			if !ok {
				continue
			}

			option, ok := activity.Option(selection.OptionID)
			if !ok || option.CostForHowMany < 1 {
				continue
			}

			if option.CostForHowMany >= totalPax {
				total = total.Add(option.Cost)

				continue
			}

			// The party splits into ceil(totalPax / capacity) priced
			// groups.
			groups := (totalPax + option.CostForHowMany - 1) / option.CostForHowMany
			total = total.Add(option.Cost.Mul(decimal.NewFromInt(int64(groups))))
		}

		for _, ticketID := range plan.EntryTicketIDs {
			// Tickets bundled by a selected spot are implied, never
			// re-priced.
			if includedTickets[ticketID] {
				continue
			}

			if ticket, ok := snap.EntryTicket(ticketID); ok {
				total = total.Add(ticket.Cost.Mul(pax))
			}
		}

		for _, mealID := range plan.MealIDs {
			if meal, ok := snap.Meal(mealID); ok {
				total = total.Add(meal.Cost.Mul(pax))
			}
		}
	}

	return total
}

// seasonalNightlyPrice selects the nightly rate by calendar rule: peak is
// Dec 20 through Jan 5 inclusive (wrapping the year boundary), season is
// Jul 1 through Aug 31 inclusive, everything else is off-season.
func seasonalNightlyPrice(roomType catalogModel.RoomType, tripStart *time.Time) decimal.Decimal {
	if tripStart == nil {
		return roomType.OffSeasonPrice
	}

	month := tripStart.Month()
	day := tripStart.Day()

	switch {
	case (month == time.December && day >= 20) || (month == time.January && day <= 5):
		return roomType.PeakSeasonPrice
	case month == time.July || month == time.August:
		return roomType.SeasonPrice
	default:
		return roomType.OffSeasonPrice
	}
}
