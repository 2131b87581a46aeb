package model

import (
	"strings"

	"caravan/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	HotelTableName  = "hotels"
	HotelEntityName = "hotel"

	FieldHotelID    = "id"
	FieldHotelName  = "name"
	FieldHotelPlace = "place"
	FieldHotelStars = "stars"
)

type Hotel struct {
	ID    string `db:"id"    json:"id"`
	Name  string `db:"name"  json:"name"`
	Place string `db:"place" json:"place"`
	Stars int    `db:"stars" json:"stars"`
	model.Metadata
}

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	FieldRoomTypeID      = "id"
	FieldRoomTypeHotelID = "hotel_id"
	FieldRoomTypeName    = "name"
)

// RoomType belongs to exactly one hotel and carries the three seasonal
// nightly rates the pricing engine selects between.
type RoomType struct {
	ID              string          `db:"id"                json:"id"`
	HotelID         string          `db:"hotel_id"          json:"hotel_id"`
	Name            string          `db:"name"              json:"name"`
	OffSeasonPrice  decimal.Decimal `db:"off_season_price"  json:"off_season_price"`
	SeasonPrice     decimal.Decimal `db:"season_price"      json:"season_price"`
	PeakSeasonPrice decimal.Decimal `db:"peak_season_price" json:"peak_season_price"`
	model.Metadata
}

const (
	TransportationTableName  = "transportations"
	TransportationEntityName = "transportation"

	FieldTransportationID   = "id"
	FieldTransportationName = "name"
	FieldTransportationType = "type"
)

const (
	TransportationTypeCab              = "cab"
	TransportationTypeSelfDriveCar     = "self-drive-car"
	TransportationTypeSelfDriveScooter = "self-drive-scooter"
)

type Transportation struct {
	ID         string          `db:"id"           json:"id"`
	Name       string          `db:"name"         json:"name"`
	Type       string          `db:"type"         json:"type"`
	CostPerDay decimal.Decimal `db:"cost_per_day" json:"cost_per_day"`
	model.Metadata
}

// IsCab reports whether this mode is chauffeured; cab itineraries charge
// per sightseeing spot instead of a flat per-day line.
func (t Transportation) IsCab() bool {
	return t.Type == TransportationTypeCab
}

const (
	SightseeingTableName  = "sightseeings"
	SightseeingEntityName = "sightseeing"

	FieldSightseeingID                 = "id"
	FieldSightseeingName               = "name"
	FieldSightseeingArea               = "area"
	FieldSightseeingTransportationMode = "transportation_mode"
)

// Sightseeing declares whole-vehicle cab costs per occupancy tier. A tier
// price of zero means the operator has no vehicle of that class.
type Sightseeing struct {
	ID                 string          `db:"id"                  json:"id"`
	Name               string          `db:"name"                json:"name"`
	Area               string          `db:"area"                json:"area"`
	TransportationMode string          `db:"transportation_mode" json:"transportation_mode"`
	CabCostUpto6       decimal.Decimal `db:"cab_cost_upto_6"     json:"cab_cost_upto_6"`
	CabCostUpto12      decimal.Decimal `db:"cab_cost_upto_12"    json:"cab_cost_upto_12"`
	CabCostUpto27      decimal.Decimal `db:"cab_cost_upto_27"    json:"cab_cost_upto_27"`
	CabCostUpto32      decimal.Decimal `db:"cab_cost_upto_32"    json:"cab_cost_upto_32"`
	CabCostLarger      decimal.Decimal `db:"cab_cost_larger"     json:"cab_cost_larger"`
	IncludedTicketIDs  pq.StringArray  `db:"included_ticket_ids" json:"included_ticket_ids"`
	model.Metadata
}

// VehicleCostFor returns the whole-vehicle charge for the cheapest vehicle
// class that seats the whole party. Parties beyond the largest declared
// tier are charged the largest tier.
func (s Sightseeing) VehicleCostFor(totalPax int) decimal.Decimal {
	switch {
	case totalPax <= 6:
		return s.CabCostUpto6
	case totalPax <= 12:
		return s.CabCostUpto12
	case totalPax <= 27:
		return s.CabCostUpto27
	case totalPax <= 32:
		return s.CabCostUpto32
	default:
		return s.CabCostLarger
	}
}

const (
	ActivityTableName  = "activities"
	ActivityEntityName = "activity"

	FieldActivityID   = "id"
	FieldActivityName = "name"
)

type Activity struct {
	ID   string `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
	Area string `db:"area" json:"area"`
	model.Metadata

	Options []ActivityOption `json:"options"`
}

func (a Activity) Option(optionID string) (ActivityOption, bool) {
	for _, opt := range a.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}

	return ActivityOption{}, false
}

const (
	ActivityOptionTableName  = "activity_options"
	ActivityOptionEntityName = "activity_option"

	FieldActivityOptionID         = "id"
	FieldActivityOptionActivityID = "activity_id"
)

// ActivityOption states how many people its flat cost covers.
type ActivityOption struct {
	ID             string          `db:"id"                json:"id"`
	ActivityID     string          `db:"activity_id"       json:"activity_id"`
	Name           string          `db:"name"              json:"name"`
	Cost           decimal.Decimal `db:"cost"              json:"cost"`
	CostForHowMany int             `db:"cost_for_how_many" json:"cost_for_how_many"`
	model.Metadata
}

const (
	EntryTicketTableName  = "entry_tickets"
	EntryTicketEntityName = "entry_ticket"

	FieldEntryTicketID            = "id"
	FieldEntryTicketSightseeingID = "sightseeing_id"
)

// EntryTicket keeps split adult/child costs on the entity even though the
// accumulation uses the blended Cost field; see the pricing package.
type EntryTicket struct {
	ID            string          `db:"id"             json:"id"`
	Name          string          `db:"name"           json:"name"`
	SightseeingID string          `db:"sightseeing_id" json:"sightseeing_id"`
	Cost          decimal.Decimal `db:"cost"           json:"cost"`
	AdultCost     decimal.Decimal `db:"adult_cost"     json:"adult_cost"`
	ChildCost     decimal.Decimal `db:"child_cost"     json:"child_cost"`
	model.Metadata
}

const (
	MealTableName  = "meals"
	MealEntityName = "meal"

	FieldMealID   = "id"
	FieldMealName = "name"
)

type Meal struct {
	ID   string          `db:"id"   json:"id"`
	Name string          `db:"name" json:"name"`
	Area string          `db:"area" json:"area"`
	Type string          `db:"type" json:"type"`
	Cost decimal.Decimal `db:"cost" json:"cost"`
	model.Metadata
}

// Snapshot is a point-in-time, in-memory view of the whole catalog. The
// pricing engine and day planner only ever read from a snapshot, so a
// single computation always sees consistent reference data. Lookups are
// total: unknown ids report absence instead of erroring.
type Snapshot struct {
	Hotels          map[string]Hotel       `json:"hotels"`
	RoomTypes       map[string]RoomType    `json:"room_types"`
	Transportations []Transportation       `json:"transportations"`
	Sightseeings    map[string]Sightseeing `json:"sightseeings"`
	Activities      map[string]Activity    `json:"activities"`
	EntryTickets    map[string]EntryTicket `json:"entry_tickets"`
	Meals           map[string]Meal        `json:"meals"`
}

func (s Snapshot) Hotel(id string) (Hotel, bool) {
	h, ok := s.Hotels[id]

	return h, ok
}

func (s Snapshot) RoomType(hotelID, roomTypeID string) (RoomType, bool) {
	rt, ok := s.RoomTypes[roomTypeID]
	if !ok || rt.HotelID != hotelID {
		return RoomType{}, false
	}

	return rt, true
}

func (s Snapshot) Sightseeing(id string) (Sightseeing, bool) {
	spot, ok := s.Sightseeings[id]

	return spot, ok
}

func (s Snapshot) Activity(id string) (Activity, bool) {
	act, ok := s.Activities[id]

	return act, ok
}

func (s Snapshot) EntryTicket(id string) (EntryTicket, bool) {
	ticket, ok := s.EntryTickets[id]

	return ticket, ok
}

func (s Snapshot) Meal(id string) (Meal, bool) {
	meal, ok := s.Meals[id]

	return meal, ok
}

// FindTransportationByName resolves a client's free-form transportation
// mode label against the catalog by exact, case-insensitive name match.
func (s Snapshot) FindTransportationByName(name string) (Transportation, bool) {
	for _, tr := range s.Transportations {
		if strings.EqualFold(tr.Name, name) {
			return tr, true
		}
	}

	return Transportation{}, false
}
