package dto

import (
	"fmt"
	"time"

	"caravan/internal/domains/client/followup"
	"caravan/internal/domains/client/model"
	"caravan/shared"
	"caravan/shared/constant"
	gModel "caravan/shared/model"
	"caravan/shared/timezone"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	Name               string `json:"name"                validate:"required,max=150"`
	Email              string `json:"email"               validate:"omitempty,email"`
	Phone              string `json:"phone"               validate:"required,max=30"`
	NumAdults          int    `json:"num_adults"          validate:"required,gte=1"`
	NumChildren        int    `json:"num_children"        validate:"gte=0"`
	IsFlexible         bool   `json:"is_flexible"`
	TripStartDate      string `json:"trip_start_date"     validate:"required_if=IsFlexible false"`
	TripEndDate        string `json:"trip_end_date"       validate:"required_if=IsFlexible false"`
	FlexibleMonth      string `json:"flexible_month"      validate:"required_if=IsFlexible true"`
	NumberOfDays       int    `json:"number_of_days"      validate:"omitempty,gte=1"`
	TransportationMode string `json:"transportation_mode" validate:"required,max=100"`
}

func (c *CreateClientRequest) ToModel(user string) (model.Client, error) {
	client := model.Client{
		ID:                 uuid.NewString(),
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		NumAdults:          c.NumAdults,
		NumChildren:        c.NumChildren,
		IsFlexible:         c.IsFlexible,
		FlexibleMonth:      c.FlexibleMonth,
		NumberOfDays:       c.NumberOfDays,
		TransportationMode: c.TransportationMode,
		FollowUpStatus:     followup.Initial(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if !c.IsFlexible {
		start, err := time.Parse(constant.DateOnlyFormat, c.TripStartDate)
		if err != nil {
			return client, fmt.Errorf("invalid trip start date: %w", err)
		}

		end, err := time.Parse(constant.DateOnlyFormat, c.TripEndDate)
		if err != nil {
			return client, fmt.Errorf("invalid trip end date: %w", err)
		}

		if end.Before(start) {
			return client, fmt.Errorf("trip end date %s is before start date %s", c.TripEndDate, c.TripStartDate)
		}

		client.TripStartDate = &start
		client.TripEndDate = &end
		client.FlexibleMonth = constant.Empty
		client.NumberOfDays = client.DerivedDays()
	}

	if client.NumberOfDays < 1 {
		client.NumberOfDays = 1
	}

	return client, nil
}

// UpdateClientRequest: db-tagged fields flow through the shared field
// transformer; dates and the flexibility toggle are parsed by the service
// because they interact (concrete dates re-derive number_of_days).
type UpdateClientRequest struct {
	Name               string `db:"name"                json:"name"                validate:"omitempty,max=150"`
	Email              string `db:"email"               json:"email"               validate:"omitempty,email"`
	Phone              string `db:"phone"               json:"phone"               validate:"omitempty,max=30"`
	NumAdults          int    `db:"num_adults"          json:"num_adults"          validate:"omitempty,gte=1"`
	NumChildren        int    `db:"num_children"        json:"num_children"        validate:"omitempty,gte=0"`
	FlexibleMonth      string `db:"flexible_month"      json:"flexible_month"      validate:"omitempty,max=20"`
	NumberOfDays       int    `db:"number_of_days"      json:"number_of_days"      validate:"omitempty,gte=1"`
	TransportationMode string `db:"transportation_mode" json:"transportation_mode" validate:"omitempty,max=100"`

	IsFlexible    *bool  `json:"is_flexible"`
	TripStartDate string `json:"trip_start_date"`
	TripEndDate   string `json:"trip_end_date"`
}

func (c UpdateClientRequest) Empty() bool {
	return c.Name == constant.Empty &&
		c.Email == constant.Empty &&
		c.Phone == constant.Empty &&
		c.NumAdults == 0 &&
		c.NumChildren == 0 &&
		c.FlexibleMonth == constant.Empty &&
		c.NumberOfDays == 0 &&
		c.TransportationMode == constant.Empty &&
		c.IsFlexible == nil &&
		c.TripStartDate == constant.Empty &&
		c.TripEndDate == constant.Empty
}

// RecordFollowUpRequest moves a client to the next pipeline stage. Date and
// time travel separately and are combined by ToModel.
type RecordFollowUpRequest struct {
	Status           string `json:"status"              validate:"required"`
	Remarks          string `json:"remarks"             validate:"required"`
	NextFollowUpDate string `json:"next_follow_up_date" validate:"omitempty"`
	NextFollowUpTime string `json:"next_follow_up_time" validate:"omitempty"`
}

func (r *RecordFollowUpRequest) ToModel(clientID, user string) (model.FollowUpRecord, error) {
	record := model.FollowUpRecord{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Status:   r.Status,
		Remarks:  r.Remarks,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if r.NextFollowUpDate != constant.Empty {
		layout := constant.DateOnlyFormat
		raw := r.NextFollowUpDate

		if r.NextFollowUpTime != constant.Empty {
			layout = constant.DateOnlyFormat + " " + constant.TimeOnlyFormat
			raw = r.NextFollowUpDate + " " + r.NextFollowUpTime
		}

		at, err := timezone.Parse(layout, raw)
		if err != nil {
			return record, fmt.Errorf("invalid next follow-up schedule: %w", err)
		}

		record.NextFollowUpAt = &at
	}

	return record, nil
}

type GetClientsResponse struct {
	Clients   []model.Client `json:"clients"`
	Total     int            `json:"total"`
	TotalPage int            `json:"total_page"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, total, limit int) {
	r.Clients = models
	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}

// ClientResponse decorates the stored client with the legal next pipeline
// stages so the caller does not re-encode the transition table.
type ClientResponse struct {
	model.Client
	NextStatuses []string `json:"next_statuses"`
}

func (r *ClientResponse) FromModel(client model.Client) {
	r.Client = client
	r.NextStatuses = followup.NextStatuses(client.FollowUpStatus)
}

type GetFollowUpsResponse struct {
	Records []model.FollowUpRecord `json:"records"`
	Total   int                    `json:"total"`
}

func (r *GetFollowUpsResponse) FromModels(models []model.FollowUpRecord) {
	r.Records = models
	r.Total = len(models)
}
