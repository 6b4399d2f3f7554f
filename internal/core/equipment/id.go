package equipment

import "fmt"

// FormatID returns the record ID for a fleet number, e.g. "CAEX-341".
// The fleet number is the natural key, so the ID is derived rather than
// sequence-allocated.
func FormatID(number int) string {
	return fmt.Sprintf("CAEX-%d", number)
}
