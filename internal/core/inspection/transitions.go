// Package inspection contains the pure business logic for the inspection
// lifecycle. This is part of the functional core - no I/O, only pure functions.
package inspection

import "time"

// Status represents the lifecycle state of an inspection.
type Status string

const (
	// StatusOpen marks an inspection still being filled in.
	StatusOpen Status = "ABIERTA"
	// StatusClosed is terminal; there is no reopen transition.
	StatusClosed Status = "CERRADA"
)

// Kind distinguishes workshop intake from workshop release inspections.
type Kind string

const (
	// KindIntake is performed when the truck enters the workshop.
	KindIntake Kind = "RECEPCION"
	// KindRelease is performed when the truck leaves, linked to its intake.
	KindRelease Kind = "ENTREGA"
)

// InitialStatus returns the status for a newly created inspection.
func InitialStatus() Status {
	return StatusOpen
}

// CloseDecision is the outcome of evaluating a close request.
// Incomplete is an expected outcome, not an error: the caller prompts the
// inspector to finish answering instead of failing.
type CloseDecision struct {
	Complete bool
	ClosedAt *time.Time
}

// DecideClose evaluates completeness and, when complete, produces the closure
// timestamp. Callers pass the current time to keep this testable.
func DecideClose(answered, applicable int, now time.Time) CloseDecision {
	if answered < applicable {
		return CloseDecision{Complete: false}
	}
	return CloseDecision{Complete: true, ClosedAt: &now}
}
