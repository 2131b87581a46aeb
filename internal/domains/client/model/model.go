package model

import (
	"math"
	"time"

	"caravan/shared/model"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID                 = "id"
	FieldName               = "name"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldFollowUpStatus     = "follow_up_status"
	FieldTransportationMode = "transportation_mode"
)

// Client carries the trip-level parameters the pricing engine reads.
// Either the concrete date pair or the flexible month is meaningful,
// selected by IsFlexible; the two are mutually exclusive.
type Client struct {
	ID                 string     `db:"id"                  json:"id"`
	Name               string     `db:"name"                json:"name"`
	Email              string     `db:"email"               json:"email"`
	Phone              string     `db:"phone"               json:"phone"`
	NumAdults          int        `db:"num_adults"          json:"num_adults"`
	NumChildren        int        `db:"num_children"        json:"num_children"`
	IsFlexible         bool       `db:"is_flexible"         json:"is_flexible"`
	TripStartDate      *time.Time `db:"trip_start_date"     json:"trip_start_date"`
	TripEndDate        *time.Time `db:"trip_end_date"       json:"trip_end_date"`
	FlexibleMonth      string     `db:"flexible_month"      json:"flexible_month"`
	NumberOfDays       int        `db:"number_of_days"      json:"number_of_days"`
	TransportationMode string     `db:"transportation_mode" json:"transportation_mode"`
	FollowUpStatus     string     `db:"follow_up_status"    json:"follow_up_status"`
	model.Metadata
}

func (c Client) TotalPax() int {
	return c.NumAdults + c.NumChildren
}

// DerivedDays returns the trip length in days. With concrete dates the span
// is inclusive of both endpoints; flexible-date clients keep whatever
// NumberOfDays was entered for them.
func (c Client) DerivedDays() int {
	if c.IsFlexible || c.TripStartDate == nil || c.TripEndDate == nil {
		return c.NumberOfDays
	}

	span := c.TripEndDate.Sub(*c.TripStartDate)
	if span < 0 {
		return c.NumberOfDays
	}

	return int(math.Ceil(span.Hours()/24)) + 1
}

const (
	FollowUpRecordTableName  = "follow_up_records"
	FollowUpRecordEntityName = "follow_up_record"

	FieldFollowUpRecordID       = "id"
	FieldFollowUpRecordClientID = "client_id"
)

// FollowUpRecord is one appended entry of the sales-pipeline audit trail.
// Records are immutable once written.
type FollowUpRecord struct {
	ID             string     `db:"id"                json:"id"`
	ClientID       string     `db:"client_id"         json:"client_id"`
	Status         string     `db:"status"            json:"status"`
	Remarks        string     `db:"remarks"           json:"remarks"`
	NextFollowUpAt *time.Time `db:"next_follow_up_at" json:"next_follow_up_at"`
	model.Metadata
}
