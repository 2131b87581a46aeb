package dto

import (
	"caravan/internal/domains/catalog/model"
	"caravan/shared"
	gModel "caravan/shared/model"
	"caravan/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func metadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type CreateHotelRequest struct {
	Name  string `json:"name"  validate:"required,max=150"`
	Place string `json:"place" validate:"required,max=100"`
	Stars int    `json:"stars" validate:"omitempty,gte=1,lte=7"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Place:    c.Place,
		Stars:    c.Stars,
		Metadata: metadata(user),
	}
}

type UpdateHotelRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=150"`
	Place string `db:"place" json:"place" validate:"omitempty,max=100"`
	Stars int    `db:"stars" json:"stars" validate:"omitempty,gte=1,lte=7"`
}

type CreateRoomTypeRequest struct {
	HotelID         string  `json:"hotel_id"          validate:"required,uuid"`
	Name            string  `json:"name"              validate:"required,max=100"`
	OffSeasonPrice  float64 `json:"off_season_price"  validate:"gte=0"`
	SeasonPrice     float64 `json:"season_price"      validate:"gte=0"`
	PeakSeasonPrice float64 `json:"peak_season_price" validate:"gte=0"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:              uuid.NewString(),
		HotelID:         c.HotelID,
		Name:            c.Name,
		OffSeasonPrice:  decimal.NewFromFloat(c.OffSeasonPrice),
		SeasonPrice:     decimal.NewFromFloat(c.SeasonPrice),
		PeakSeasonPrice: decimal.NewFromFloat(c.PeakSeasonPrice),
		Metadata:        metadata(user),
	}
}

type CreateTransportationRequest struct {
	Name       string  `json:"name"         validate:"required,max=100"`
	Type       string  `json:"type"         validate:"required,oneof=cab self-drive-car self-drive-scooter"`
	CostPerDay float64 `json:"cost_per_day" validate:"gte=0"`
}

func (c *CreateTransportationRequest) ToModel(user string) model.Transportation {
	return model.Transportation{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Type:       c.Type,
		CostPerDay: decimal.NewFromFloat(c.CostPerDay),
		Metadata:   metadata(user),
	}
}

type CreateSightseeingRequest struct {
	Name               string   `json:"name"                validate:"required,max=150"`
	Area               string   `json:"area"                validate:"omitempty,max=100"`
	TransportationMode string   `json:"transportation_mode" validate:"required,oneof=cab self-drive-car self-drive-scooter"`
	CabCostUpto6       float64  `json:"cab_cost_upto_6"     validate:"gte=0"`
	CabCostUpto12      float64  `json:"cab_cost_upto_12"    validate:"gte=0"`
	CabCostUpto27      float64  `json:"cab_cost_upto_27"    validate:"gte=0"`
	CabCostUpto32      float64  `json:"cab_cost_upto_32"    validate:"gte=0"`
	CabCostLarger      float64  `json:"cab_cost_larger"     validate:"gte=0"`
	IncludedTicketIDs  []string `json:"included_ticket_ids" validate:"omitempty,dive,uuid"`
}

func (c *CreateSightseeingRequest) ToModel(user string) model.Sightseeing {
	return model.Sightseeing{
		ID:                 uuid.NewString(),
		Name:               c.Name,
		Area:               c.Area,
		TransportationMode: c.TransportationMode,
		CabCostUpto6:       decimal.NewFromFloat(c.CabCostUpto6),
		CabCostUpto12:      decimal.NewFromFloat(c.CabCostUpto12),
		CabCostUpto27:      decimal.NewFromFloat(c.CabCostUpto27),
		CabCostUpto32:      decimal.NewFromFloat(c.CabCostUpto32),
		CabCostLarger:      decimal.NewFromFloat(c.CabCostLarger),
		IncludedTicketIDs:  c.IncludedTicketIDs,
		Metadata:           metadata(user),
	}
}

type ActivityOptionRequest struct {
	Name           string  `json:"name"              validate:"required,max=150"`
	Cost           float64 `json:"cost"              validate:"gte=0"`
	CostForHowMany int     `json:"cost_for_how_many" validate:"required,gte=1"`
}

type CreateActivityRequest struct {
	Name    string                  `json:"name"    validate:"required,max=150"`
	Area    string                  `json:"area"    validate:"omitempty,max=100"`
	Options []ActivityOptionRequest `json:"options" validate:"required,min=1,dive"`
}

func (c *CreateActivityRequest) ToModel(user string) model.Activity {
	activity := model.Activity{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Area:     c.Area,
		Metadata: metadata(user),
	}

	for _, opt := range c.Options {
		activity.Options = append(activity.Options, model.ActivityOption{
			ID:             uuid.NewString(),
			ActivityID:     activity.ID,
			Name:           opt.Name,
			Cost:           decimal.NewFromFloat(opt.Cost),
			CostForHowMany: opt.CostForHowMany,
			Metadata:       metadata(user),
		})
	}

	return activity
}

type CreateEntryTicketRequest struct {
	Name          string  `json:"name"           validate:"required,max=150"`
	SightseeingID string  `json:"sightseeing_id" validate:"required,uuid"`
	Cost          float64 `json:"cost"           validate:"gte=0"`
	AdultCost     float64 `json:"adult_cost"     validate:"gte=0"`
	ChildCost     float64 `json:"child_cost"     validate:"gte=0"`
}

func (c *CreateEntryTicketRequest) ToModel(user string) model.EntryTicket {
	return model.EntryTicket{
		ID:            uuid.NewString(),
		Name:          c.Name,
		SightseeingID: c.SightseeingID,
		Cost:          decimal.NewFromFloat(c.Cost),
		AdultCost:     decimal.NewFromFloat(c.AdultCost),
		ChildCost:     decimal.NewFromFloat(c.ChildCost),
		Metadata:      metadata(user),
	}
}

type CreateMealRequest struct {
	Name string  `json:"name" validate:"required,max=150"`
	Area string  `json:"area" validate:"omitempty,max=100"`
	Type string  `json:"type" validate:"omitempty,oneof=breakfast lunch dinner"`
	Cost float64 `json:"cost" validate:"gte=0"`
}

func (c *CreateMealRequest) ToModel(user string) model.Meal {
	return model.Meal{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Area:     c.Area,
		Type:     c.Type,
		Cost:     decimal.NewFromFloat(c.Cost),
		Metadata: metadata(user),
	}
}

type UpdateRoomTypeRequest struct {
	Name            string  `db:"name"              json:"name"              validate:"omitempty,max=100"`
	OffSeasonPrice  float64 `db:"off_season_price"  json:"off_season_price"  validate:"omitempty,gte=0"`
	SeasonPrice     float64 `db:"season_price"      json:"season_price"      validate:"omitempty,gte=0"`
	PeakSeasonPrice float64 `db:"peak_season_price" json:"peak_season_price" validate:"omitempty,gte=0"`
}

type UpdateTransportationRequest struct {
	Name       string  `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Type       string  `db:"type"         json:"type"         validate:"omitempty,oneof=cab self-drive-car self-drive-scooter"`
	CostPerDay float64 `db:"cost_per_day" json:"cost_per_day" validate:"omitempty,gte=0"`
}

type UpdateSightseeingRequest struct {
	Name               string  `db:"name"                json:"name"                validate:"omitempty,max=150"`
	Area               string  `db:"area"                json:"area"                validate:"omitempty,max=100"`
	TransportationMode string  `db:"transportation_mode" json:"transportation_mode" validate:"omitempty,oneof=cab self-drive-car self-drive-scooter"`
	CabCostUpto6       float64 `db:"cab_cost_upto_6"     json:"cab_cost_upto_6"     validate:"omitempty,gte=0"`
	CabCostUpto12      float64 `db:"cab_cost_upto_12"    json:"cab_cost_upto_12"    validate:"omitempty,gte=0"`
	CabCostUpto27      float64 `db:"cab_cost_upto_27"    json:"cab_cost_upto_27"    validate:"omitempty,gte=0"`
	CabCostUpto32      float64 `db:"cab_cost_upto_32"    json:"cab_cost_upto_32"    validate:"omitempty,gte=0"`
	CabCostLarger      float64 `db:"cab_cost_larger"     json:"cab_cost_larger"     validate:"omitempty,gte=0"`
}

type UpdateEntryTicketRequest struct {
	Name       string  `db:"name"       json:"name"       validate:"omitempty,max=150"`
	Cost       float64 `db:"cost"       json:"cost"       validate:"omitempty,gte=0"`
	AdultCost  float64 `db:"adult_cost" json:"adult_cost" validate:"omitempty,gte=0"`
	ChildCost  float64 `db:"child_cost" json:"child_cost" validate:"omitempty,gte=0"`
}

type UpdateMealRequest struct {
	Name string  `db:"name" json:"name" validate:"omitempty,max=150"`
	Area string  `db:"area" json:"area" validate:"omitempty,max=100"`
	Type string  `db:"type" json:"type" validate:"omitempty,oneof=breakfast lunch dinner"`
	Cost float64 `db:"cost" json:"cost" validate:"omitempty,gte=0"`
}

// UpdateActivityRequest replaces the option list wholesale when Options is
// present; partial option edits are not supported.
type UpdateActivityRequest struct {
	Name    string                  `db:"name" json:"name"    validate:"omitempty,max=150"`
	Area    string                  `db:"area" json:"area"    validate:"omitempty,max=100"`
	Options []ActivityOptionRequest `json:"options"           validate:"omitempty,min=1,dive"`
}

type GetHotelsResponse struct {
	Hotels    []model.Hotel `json:"hotels"`
	Total     int           `json:"total"`
	TotalPage int           `json:"total_page"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, total, limit int) {
	r.Hotels = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

type GetRoomTypesResponse struct {
	RoomTypes []model.RoomType `json:"room_types"`
	Total     int              `json:"total"`
	TotalPage int              `json:"total_page"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, total, limit int) {
	r.RoomTypes = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

type GetTransportationsResponse struct {
	Transportations []model.Transportation `json:"transportations"`
	Total           int                    `json:"total"`
	TotalPage       int                    `json:"total_page"`
}

func (r *GetTransportationsResponse) FromModels(models []model.Transportation, total, limit int) {
	r.Transportations = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

type GetSightseeingsResponse struct {
	Sightseeings []model.Sightseeing `json:"sightseeings"`
	Total        int                 `json:"total"`
	TotalPage    int                 `json:"total_page"`
}

func (r *GetSightseeingsResponse) FromModels(models []model.Sightseeing, total, limit int) {
	r.Sightseeings = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

type GetActivitiesResponse struct {
	Activities []model.Activity `json:"activities"`
	Total      int              `json:"total"`
	TotalPage  int              `json:"total_page"`
}

func (r *GetActivitiesResponse) FromModels(models []model.Activity, total, limit int) {
	r.Activities = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

type GetEntryTicketsResponse struct {
	EntryTickets []model.EntryTicket `json:"entry_tickets"`
	Total        int                 `json:"total"`
	TotalPage    int                 `json:"total_page"`
}

func (r *GetEntryTicketsResponse) FromModels(models []model.EntryTicket, total, limit int) {
	r.EntryTickets = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

type GetMealsResponse struct {
	Meals     []model.Meal `json:"meals"`
	Total     int          `json:"total"`
	TotalPage int          `json:"total_page"`
}

func (r *GetMealsResponse) FromModels(models []model.Meal, total, limit int) {
	r.Meals = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

type SnapshotResponse struct {
	Hotels          int `json:"hotels"`
	RoomTypes       int `json:"room_types"`
	Transportations int `json:"transportations"`
	Sightseeings    int `json:"sightseeings"`
	Activities      int `json:"activities"`
	EntryTickets    int `json:"entry_tickets"`
	Meals           int `json:"meals"`
}

func (r *SnapshotResponse) FromSnapshot(snap model.Snapshot) {
	r.Hotels = len(snap.Hotels)
	r.RoomTypes = len(snap.RoomTypes)
	r.Transportations = len(snap.Transportations)
	r.Sightseeings = len(snap.Sightseeings)
	r.Activities = len(snap.Activities)
	r.EntryTickets = len(snap.EntryTickets)
	r.Meals = len(snap.Meals)
}
