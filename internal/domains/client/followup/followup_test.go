package followup_test

import (
	"testing"
	"time"

	"caravan/internal/domains/client/followup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	assert.Equal(t, followup.StatusItineraryCreated, followup.Initial())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, followup.IsTerminal(followup.StatusDead))
	assert.True(t, followup.IsTerminal(followup.StatusAdvancePaidConfirmed))

	assert.False(t, followup.IsTerminal(followup.StatusItineraryCreated))
	assert.False(t, followup.IsTerminal(followup.StatusFourthFollowUp))
	assert.False(t, followup.IsTerminal("nonsense"))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{name: "created to sent", from: followup.StatusItineraryCreated, to: followup.StatusItinerarySent, allowed: true},
		{name: "created to dead", from: followup.StatusItineraryCreated, to: followup.StatusDead, allowed: true},
		{name: "created cannot skip to follow-up", from: followup.StatusItineraryCreated, to: followup.StatusFirstFollowUp, allowed: false},
		{name: "sent to first follow-up", from: followup.StatusItinerarySent, to: followup.StatusFirstFollowUp, allowed: true},
		{name: "sent directly to advance", from: followup.StatusItinerarySent, to: followup.StatusAdvancePaidConfirmed, allowed: true},
		{name: "follow-ups advance in order", from: followup.StatusFirstFollowUp, to: followup.StatusSecondFollowUp, allowed: true},
		{name: "follow-ups cannot skip", from: followup.StatusFirstFollowUp, to: followup.StatusThirdFollowUp, allowed: false},
		{name: "follow-up detour to edit", from: followup.StatusThirdFollowUp, to: followup.StatusItineraryEdited, allowed: true},
		{name: "fourth has no fifth", from: followup.StatusFourthFollowUp, to: followup.StatusFirstFollowUp, allowed: false},
		{name: "fourth to dead", from: followup.StatusFourthFollowUp, to: followup.StatusDead, allowed: true},
		{name: "edited to updated sent", from: followup.StatusItineraryEdited, to: followup.StatusUpdatedItinerarySent, allowed: true},
		{name: "edited cannot confirm directly", from: followup.StatusItineraryEdited, to: followup.StatusAdvancePaidConfirmed, allowed: false},
		{name: "updated sent restarts follow-ups", from: followup.StatusUpdatedItinerarySent, to: followup.StatusFirstFollowUp, allowed: true},
		{name: "dead is terminal", from: followup.StatusDead, to: followup.StatusItinerarySent, allowed: false},
		{name: "advance is terminal", from: followup.StatusAdvancePaidConfirmed, to: followup.StatusDead, allowed: false},
		{name: "unknown source", from: "nonsense", to: followup.StatusDead, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, followup.CanTransition(tt.from, tt.to))
		})
	}
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t,
		[]string{followup.StatusItinerarySent, followup.StatusDead},
		followup.NextStatuses(followup.StatusItineraryCreated),
	)

	assert.Nil(t, followup.NextStatuses(followup.StatusDead))
	assert.Nil(t, followup.NextStatuses("nonsense"))
}

func TestValidate(t *testing.T) {
	when := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		from           string
		to             string
		remarks        string
		nextFollowUpAt *time.Time
		wantErr        error
	}{
		{
			name:           "valid non-terminal transition",
			from:           followup.StatusItinerarySent,
			to:             followup.StatusFirstFollowUp,
			remarks:        "called, asked to ring back next week",
			nextFollowUpAt: &when,
		},
		{
			name:    "terminal transition needs no schedule",
			from:    followup.StatusFourthFollowUp,
			to:      followup.StatusDead,
			remarks: "stopped answering",
		},
		{
			name:    "unknown source status",
			from:    "limbo",
			to:      followup.StatusDead,
			remarks: "whatever",
			wantErr: followup.ErrUnknownStatus,
		},
		{
			name:    "unknown target status",
			from:    followup.StatusItinerarySent,
			to:      "limbo",
			remarks: "whatever",
			wantErr: followup.ErrUnknownStatus,
		},
		{
			name:    "illegal transition",
			from:    followup.StatusItineraryCreated,
			to:      followup.StatusAdvancePaidConfirmed,
			remarks: "paid before we even sent it",
			wantErr: followup.ErrInvalidTransition,
		},
		{
			name:           "blank remarks rejected",
			from:           followup.StatusItinerarySent,
			to:             followup.StatusFirstFollowUp,
			remarks:        "   ",
			nextFollowUpAt: &when,
			wantErr:        followup.ErrRemarksRequired,
		},
		{
			name:    "non-terminal transition without schedule",
			from:    followup.StatusItinerarySent,
			to:      followup.StatusFirstFollowUp,
			remarks: "called",
			wantErr: followup.ErrNextFollowUpRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := followup.Validate(tt.from, tt.to, tt.remarks, tt.nextFollowUpAt)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
