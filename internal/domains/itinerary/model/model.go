package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	clientModel "caravan/internal/domains/client/model"
	"caravan/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "itineraries"
	EntityName = "itinerary"

	FieldID       = "id"
	FieldClientID = "client_id"
	FieldVersion  = "version"
)

// ChangeType is a closed set; every persisted version carries exactly one.
const (
	ChangeTypeCreated       = "created"
	ChangeTypeGeneralEdit   = "general_edit"
	ChangeTypeDaysModified  = "days_modified"
	ChangeTypePriceAdjusted = "price_adjusted"
	ChangeTypeClientUpdated = "client_updated"
)

func IsValidChangeType(changeType string) bool {
	switch changeType {
	case ChangeTypeCreated, ChangeTypeGeneralEdit, ChangeTypeDaysModified,
		ChangeTypePriceAdjusted, ChangeTypeClientUpdated:
		return true
	default:
		return false
	}
}

// HotelStay is a day's single hotel selection.
type HotelStay struct {
	Place      string `json:"place"`
	HotelID    string `json:"hotel_id"`
	RoomTypeID string `json:"room_type_id"`
}

// ActivitySelection pairs an activity with the chosen pricing option.
type ActivitySelection struct {
	ActivityID string `json:"activity_id"`
	OptionID   string `json:"option_id"`
}

// DayPlan is one calendar day of selections. Day indexes are 1-based and
// contiguous across an itinerary.
type DayPlan struct {
	Day            int                 `json:"day"`
	SightseeingIDs []string            `json:"sightseeing_ids"`
	Hotel          *HotelStay          `json:"hotel,omitempty"`
	Activities     []ActivitySelection `json:"activities"`
	EntryTicketIDs []string            `json:"entry_ticket_ids"`
	MealIDs        []string            `json:"meal_ids"`
}

// DayPlans persists as a JSONB column.
type DayPlans []DayPlan

func (d DayPlans) Value() (driver.Value, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal day plans: %w", err)
	}

	return payload, nil
}

func (d *DayPlans) Scan(src any) error {
	return scanJSON(src, d, "day plans")
}

// Normalize returns plans cut or zero-padded to exactly numberOfDays
// entries with contiguous 1-based day indexes. Pricing and availability
// both run on normalized plans.
func (d DayPlans) Normalize(numberOfDays int) DayPlans {
	if numberOfDays < 0 {
		numberOfDays = 0
	}

	out := make(DayPlans, numberOfDays)

	for i := range out {
		if i < len(d) {
			out[i] = d[i]
		}

		out[i].Day = i + 1
	}

	return out
}

// ChangeLogEntry records one version transition.
type ChangeLogEntry struct {
	Version     int       `json:"version"`
	ChangeType  string    `json:"change_type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"actor"`
}

// ChangeLog persists as a JSONB column; it is append-only and its length
// always equals the itinerary version.
type ChangeLog []ChangeLogEntry

func (c ChangeLog) Value() (driver.Value, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal change log: %w", err)
	}

	return payload, nil
}

func (c *ChangeLog) Scan(src any) error {
	return scanJSON(src, c, "change log")
}

// ClientSnapshot freezes the client parameters an itinerary version was
// priced against. Persists as a JSONB column.
type ClientSnapshot clientModel.Client

func (c ClientSnapshot) Value() (driver.Value, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal client snapshot: %w", err)
	}

	return payload, nil
}

func (c *ClientSnapshot) Scan(src any) error {
	return scanJSON(src, c, "client snapshot")
}

func scanJSON(src, dst any, what string) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		if err := json.Unmarshal(value, dst); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", what, err)
		}

		return nil
	case string:
		if err := json.Unmarshal([]byte(value), dst); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", what, err)
		}

		return nil
	default:
		return fmt.Errorf("unsupported source type %T for %s", src, what)
	}
}

// Itinerary is one immutable priced version of a client's trip. A client
// has many rows, one per version; the largest version is the current one.
type Itinerary struct {
	ID            string          `db:"id"              json:"id"`
	ClientID      string          `db:"client_id"       json:"client_id"`
	Client        ClientSnapshot  `db:"client_snapshot" json:"client"`
	Version       int             `db:"version"         json:"version"`
	DayPlans      DayPlans        `db:"day_plans"       json:"day_plans"`
	TotalBaseCost decimal.Decimal `db:"total_base_cost" json:"total_base_cost"`
	ProfitMargin  decimal.Decimal `db:"profit_margin"   json:"profit_margin"`
	FinalPrice    decimal.Decimal `db:"final_price"     json:"final_price"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"   json:"exchange_rate"`
	ChangeLog     ChangeLog       `db:"change_log"      json:"change_log"`
	LastUpdated   time.Time       `db:"last_updated"    json:"last_updated"`
	UpdatedBy     string          `db:"updated_by"      json:"updated_by"`
	model.Metadata
}

// ConvertedPrice is the secondary-currency display figure.
func (i Itinerary) ConvertedPrice() decimal.Decimal {
	if i.ExchangeRate.IsZero() {
		return decimal.Zero
	}

	return i.FinalPrice.Div(i.ExchangeRate).Round(2)
}
