// Package followup defines the sales-pipeline state machine. It is pure:
// the transition table is data, validation has no I/O, and callers decide
// what to persist.
package followup

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StatusItineraryCreated     = "itinerary-created"
	StatusItinerarySent        = "itinerary-sent"
	StatusFirstFollowUp        = "1st-follow-up"
	StatusSecondFollowUp       = "2nd-follow-up"
	StatusThirdFollowUp        = "3rd-follow-up"
	StatusFourthFollowUp       = "4th-follow-up"
	StatusItineraryEdited      = "itinerary-edited"
	StatusUpdatedItinerarySent = "updated-itinerary-sent"
	StatusAdvancePaidConfirmed = "advance-paid-confirmed"
	StatusDead                 = "dead"
)

var (
	ErrUnknownStatus        = errors.New("unknown follow-up status")
	ErrInvalidTransition    = errors.New("invalid follow-up transition")
	ErrRemarksRequired      = errors.New("remarks are required")
	ErrNextFollowUpRequired = errors.New("next follow-up date and time are required")
)

// transitions lists the legal next statuses per current status. From the
// numbered follow-up stages the pipeline may only advance, die, or detour
// through an itinerary edit. Terminal statuses map to nothing.
var transitions = map[string][]string{
	StatusItineraryCreated: {StatusItinerarySent, StatusDead},
	StatusItinerarySent:    {StatusFirstFollowUp, StatusAdvancePaidConfirmed, StatusDead, StatusItineraryEdited},
	StatusFirstFollowUp:    {StatusSecondFollowUp, StatusAdvancePaidConfirmed, StatusDead, StatusItineraryEdited},
	StatusSecondFollowUp:   {StatusThirdFollowUp, StatusAdvancePaidConfirmed, StatusDead, StatusItineraryEdited},
	StatusThirdFollowUp:    {StatusFourthFollowUp, StatusAdvancePaidConfirmed, StatusDead, StatusItineraryEdited},
	StatusFourthFollowUp:   {StatusAdvancePaidConfirmed, StatusDead, StatusItineraryEdited},
	StatusItineraryEdited:  {StatusUpdatedItinerarySent, StatusDead},
	StatusUpdatedItinerarySent: {
		StatusFirstFollowUp, StatusAdvancePaidConfirmed, StatusDead, StatusItineraryEdited,
	},
	StatusAdvancePaidConfirmed: {},
	StatusDead:                 {},
}

// Initial is the status assigned when a client enters the pipeline.
func Initial() string {
	return StatusItineraryCreated
}

func IsKnown(status string) bool {
	_, ok := transitions[status]

	return ok
}

func IsTerminal(status string) bool {
	next, ok := transitions[status]

	return ok && len(next) == 0
}

func CanTransition(from, to string) bool {
	for _, candidate := range transitions[from] {
		if candidate == to {
			return true
		}
	}

	return false
}

// NextStatuses returns the legal next statuses from the given one, in
// pipeline order. Unknown and terminal statuses yield nil.
func NextStatuses(from string) []string {
	next := transitions[from]
	if len(next) == 0 {
		return nil
	}

	out := make([]string, len(next))
	copy(out, next)

	return out
}

// Validate checks a proposed transition. Remarks are required on every
// transition; a scheduled next follow-up is required unless the target
// status is terminal.
func Validate(from, to, remarks string, nextFollowUpAt *time.Time) error {
	if !IsKnown(from) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, from)
	}

	if !IsKnown(to) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}

	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, from, to)
	}

	if strings.TrimSpace(remarks) == "" {
		return ErrRemarksRequired
	}

	if !IsTerminal(to) && nextFollowUpAt == nil {
		return ErrNextFollowUpRequired
	}

	return nil
}
