package service

import (
	catalogModel "caravan/internal/domains/catalog/model"
	clientModel "caravan/internal/domains/client/model"
	"caravan/internal/domains/itinerary/model"
	"caravan/internal/domains/itinerary/pricing"
	gModel "caravan/shared/model"
	"caravan/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stalenessTolerance is the largest base-cost drift that still counts as
// fresh. Anything beyond a cent of disagreement means the catalog moved.
var stalenessTolerance = decimal.NewFromFloat(0.01)

// BuildNextVersion produces the next immutable itinerary version. The base
// cost is always recomputed against the given snapshot, never copied
// forward, so staleness cannot propagate. The change log is the previous
// log plus exactly one entry; its length therefore always equals the
// version number.
func BuildNextVersion(
	previous *model.Itinerary,
	client clientModel.Client,
	dayPlans model.DayPlans,
	profitMargin, exchangeRate decimal.Decimal,
	actor, changeType, description string,
	snap catalogModel.Snapshot,
	opts pricing.Options,
) model.Itinerary {
	version := 1

	var changeLog model.ChangeLog

	if previous != nil {
		version = previous.Version + 1
		changeLog = append(changeLog, previous.ChangeLog...)
	}

	now := timezone.Now()
	plans := dayPlans.Normalize(client.NumberOfDays)
	baseCost := pricing.ComputeBaseCost(client, plans, snap, opts)

	changeLog = append(changeLog, model.ChangeLogEntry{
		Version:     version,
		ChangeType:  changeType,
		Description: description,
		Timestamp:   now,
		Actor:       actor,
	})

	return model.Itinerary{
		ID:            uuid.NewString(),
		ClientID:      client.ID,
		Client:        model.ClientSnapshot(client),
		Version:       version,
		DayPlans:      plans,
		TotalBaseCost: baseCost,
		ProfitMargin:  profitMargin,
		FinalPrice:    baseCost.Add(profitMargin),
		ExchangeRate:  exchangeRate,
		ChangeLog:     changeLog,
		LastUpdated:   now,
		UpdatedBy:     actor,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// IsStale recomputes the stored itinerary's base cost against the current
// snapshot. The recomputed figure is authoritative; a stored total
// drifting beyond the tolerance must be flagged before it is trusted.
func IsStale(stored model.Itinerary, snap catalogModel.Snapshot, opts pricing.Options) (bool, decimal.Decimal) {
	fresh := pricing.ComputeBaseCost(clientModel.Client(stored.Client), stored.DayPlans, snap, opts)
	stale := fresh.Sub(stored.TotalBaseCost).Abs().GreaterThan(stalenessTolerance)

	return stale, fresh
}
