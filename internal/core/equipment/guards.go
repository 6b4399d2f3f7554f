// Package equipment contains the pure business logic for equipment records.
// Guards are pure functions that evaluate preconditions without side effects.
package equipment

import "fmt"

// Model identifies a CAEX model.
type Model string

const (
	// Model797F is the Caterpillar 797F haul truck.
	Model797F Model = "797F"
	// Model798AC is the Caterpillar 798AC haul truck.
	Model798AC Model = "798AC"
)

// Models lists the known models in display order.
func Models() []Model {
	return []Model{Model797F, Model798AC}
}

// KnownModel reports whether m is one of the supported models.
func KnownModel(m Model) bool {
	return m == Model797F || m == Model798AC
}

// ValidIdentifier reports whether a fleet number falls inside the range
// assigned to the model: 797F owns 301-339 plus 365 and 366, 798AC owns
// 340-352.
func ValidIdentifier(m Model, number int) bool {
	switch m {
	case Model797F:
		return (number >= 301 && number <= 339) || number == 365 || number == 366
	case Model798AC:
		return number >= 340 && number <= 352
	}
	return false
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// RegisterContext provides context for equipment registration guards.
type RegisterContext struct {
	Model        Model
	Number       int
	NumberExists bool
}

// CanRegister evaluates whether an equipment record can be registered.
// Rules:
// - Model must be known
// - Fleet number must be inside the model's assigned range
// - No other record may hold the same fleet number
func CanRegister(ctx RegisterContext) GuardResult {
	if !KnownModel(ctx.Model) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown model %q (expected 797F or 798AC)", ctx.Model),
		}
	}

	if !ValidIdentifier(ctx.Model, ctx.Number) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("fleet number %d is not valid for model %s", ctx.Number, ctx.Model),
		}
	}

	if ctx.NumberExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("a CAEX with fleet number %d already exists", ctx.Number),
		}
	}

	return GuardResult{Allowed: true}
}
