// Package answer contains the pure business logic for inspection answers.
// Guards are pure functions that evaluate preconditions without side effects.
package answer

import (
	"fmt"
	"strings"
)

// Status represents the recorded outcome for one question.
type Status string

const (
	// StatusPass marks a conforming answer.
	StatusPass Status = "CONFORME"
	// StatusFail marks a non-conforming answer.
	StatusFail Status = "NO_CONFORME"
)

// KnownStatus reports whether s is a recognized answer status.
func KnownStatus(s Status) bool {
	return s == StatusPass || s == StatusFail
}

// RemediationKind classifies the follow-up for a failed answer.
type RemediationKind string

const (
	// RemediationImmediate means a ticket is raised for immediate action.
	RemediationImmediate RemediationKind = "INMEDIATO"
	// RemediationScheduled means a work order is scheduled.
	RemediationScheduled RemediationKind = "PROGRAMADO"
)

// KnownRemediation reports whether k is one of the two remediation kinds.
func KnownRemediation(k RemediationKind) bool {
	return k == RemediationImmediate || k == RemediationScheduled
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// FailContext provides context for fail-answer guards.
type FailContext struct {
	Comments    string
	Remediation RemediationKind
	TicketRef   string
}

// CanRecordFail evaluates whether a non-conforming answer is complete.
// Rules:
// - Comments must be non-blank
// - Remediation kind must be INMEDIATO or PROGRAMADO
// - Ticket or work-order reference must be non-blank
func CanRecordFail(ctx FailContext) GuardResult {
	if strings.TrimSpace(ctx.Comments) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "comments are required for a non-conforming answer",
		}
	}

	if !KnownRemediation(ctx.Remediation) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("remediation kind must be %s or %s", RemediationImmediate, RemediationScheduled),
		}
	}

	if strings.TrimSpace(ctx.TicketRef) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "a ticket or work-order reference is required for a non-conforming answer",
		}
	}

	return GuardResult{Allowed: true}
}

// Valid reports whether a stored answer is internally consistent: pass
// answers always are, fail answers only with the full remediation fields.
func Valid(status Status, comments string, remediation RemediationKind, ticketRef string) bool {
	if status == StatusPass {
		return true
	}
	if status != StatusFail {
		return false
	}
	return CanRecordFail(FailContext{
		Comments:    comments,
		Remediation: remediation,
		TicketRef:   ticketRef,
	}).Allowed
}
