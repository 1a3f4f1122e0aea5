package booking

import (
	"fmt"
	"strings"

	"barberhub/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
	StatusNoShow    Status = "NO_SHOW"
)

func Parse(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled, StatusNoShow:
		return Status(s), true
	}
	return "", false
}

// Terminal statuses accept no further transition, from anyone.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// operatorTargets is the barber-side state machine.
var operatorTargets = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCanceled},
}

func AllowedTargets(from Status) []Status {
	return operatorTargets[from]
}

func CanTransition(from, to Status) bool {
	for _, t := range operatorTargets[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

// ValidateClientCancel guards the client cancel path: anything still
// open can be cancelled, finalized bookings cannot.
func ValidateClientCancel(from Status) error {
	if from.Terminal() {
		return httperr.ForbiddenError(
			"booking_finalized",
			"This booking is already finalized and can no longer be cancelled.",
		)
	}
	return nil
}

// ValidateOperatorTransition guards the barber status-change path.
func ValidateOperatorTransition(from, to Status) error {
	if from.Terminal() {
		return httperr.ForbiddenError(
			"booking_finalized",
			"This booking is already finalized and can no longer be modified.",
		)
	}
	if !CanTransition(from, to) {
		targets := AllowedTargets(from)
		names := make([]string, len(targets))
		for i, t := range targets {
			names[i] = string(t)
		}
		return httperr.ValidationError(
			"invalid_status_transition",
			fmt.Sprintf("From status %s you can only move to %s.", from, strings.Join(names, " or ")),
		)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
