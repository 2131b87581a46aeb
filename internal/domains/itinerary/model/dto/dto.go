package dto

import (
	"caravan/internal/domains/itinerary/model"

	"github.com/shopspring/decimal"
)

// SaveVersionRequest carries everything a new itinerary version needs
// besides the client, which the service loads itself.
type SaveVersionRequest struct {
	DayPlans     model.DayPlans `json:"day_plans"     validate:"required,min=1"`
	ProfitMargin float64        `json:"profit_margin" validate:"gte=0"`
	ExchangeRate float64        `json:"exchange_rate" validate:"omitempty,gt=0"`
	ChangeType   string         `json:"change_type"   validate:"required,oneof=created general_edit days_modified price_adjusted client_updated"`
	Description  string         `json:"description"   validate:"required,max=500"`
	// BaseVersion is the version the caller edited; 0 means "first".
	BaseVersion int `json:"base_version" validate:"gte=0"`
}

type QuoteRequest struct {
	DayPlans     model.DayPlans `json:"day_plans"     validate:"required,min=1"`
	ProfitMargin float64        `json:"profit_margin" validate:"gte=0"`
}

type QuoteResponse struct {
	TotalBaseCost decimal.Decimal `json:"total_base_cost"`
	FinalPrice    decimal.Decimal `json:"final_price"`
}

// ItineraryResponse decorates a stored version with the live staleness
// verdict. FreshBaseCost and FreshFinalPrice are the authoritative
// figures; when Stale is false they match the stored ones.
type ItineraryResponse struct {
	model.Itinerary
	Stale           bool            `json:"stale"`
	FreshBaseCost   decimal.Decimal `json:"fresh_base_cost"`
	FreshFinalPrice decimal.Decimal `json:"fresh_final_price"`
	ConvertedPrice  decimal.Decimal `json:"converted_price"`
}

func (r *ItineraryResponse) FromModel(itinerary model.Itinerary, stale bool, freshBaseCost decimal.Decimal) {
	r.Itinerary = itinerary
	r.Stale = stale
	r.FreshBaseCost = freshBaseCost
	r.FreshFinalPrice = freshBaseCost.Add(itinerary.ProfitMargin)
	r.ConvertedPrice = itinerary.ConvertedPrice()
}

type GetChangeLogResponse struct {
	Entries model.ChangeLog `json:"entries"`
	Total   int             `json:"total"`
}

func (r *GetChangeLogResponse) FromModel(log model.ChangeLog) {
	r.Entries = log
	r.Total = len(log)
}

type GetVersionsResponse struct {
	Versions []model.Itinerary `json:"versions"`
	Total    int               `json:"total"`
}

func (r *GetVersionsResponse) FromModels(models []model.Itinerary) {
	r.Versions = models
	r.Total = len(models)
}
