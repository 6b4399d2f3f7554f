package inspection

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// CreateReleaseContext provides context for release-inspection guards.
type CreateReleaseContext struct {
	PriorID     string
	PriorExists bool
	PriorKind   Kind
}

// CanCreateRelease evaluates whether a release inspection can be opened.
// Rules:
// - The prior inspection must exist
// - The prior inspection must be an intake (RECEPCION)
func CanCreateRelease(ctx CreateReleaseContext) GuardResult {
	if !ctx.PriorExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("inspection %s not found", ctx.PriorID),
		}
	}

	if ctx.PriorKind != KindIntake {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("inspection %s is not an intake inspection (kind: %s)", ctx.PriorID, ctx.PriorKind),
		}
	}

	return GuardResult{Allowed: true}
}

// CloseContext provides context for closure guards.
type CloseContext struct {
	InspectionID string
	Status       Status
}

// CanClose evaluates whether an inspection may be closed at all.
// Completeness is decided separately by DecideClose; this guard only
// rejects operations on already-closed inspections.
func CanClose(ctx CloseContext) GuardResult {
	if ctx.Status != StatusOpen {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("inspection %s is already closed", ctx.InspectionID),
		}
	}

	return GuardResult{Allowed: true}
}
