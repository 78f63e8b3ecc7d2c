package domain

import (
	"fmt"

	"github.com/teachertube/backend/internal/catalog/models"
)

// CanTransition reports whether a request may move from one status to another.
// pending is the only non-terminal state; approved and declined are terminal.
func CanTransition(from, to models.RequestStatus) bool {
	switch from {
	case models.PendingStatus:
		return to == models.ApprovedStatus || to == models.DeclinedStatus
	case models.ApprovedStatus:
		return false
	case models.DeclinedStatus:
		return false
	default:
		return false
	}
}

func ValidateTransition(from, to models.RequestStatus) error {
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid transition: %s -> %s", from, to)
	}
	return nil
}

// IsTerminal reports whether no further transition is defined from the status.
func IsTerminal(s models.RequestStatus) bool {
	return s == models.ApprovedStatus || s == models.DeclinedStatus
}
