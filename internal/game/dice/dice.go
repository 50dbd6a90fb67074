// Package dice provides the randomness abstraction used to seed character
// status values.
package dice

import "fmt"

// Source is the randomness provider for status rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RangeResult holds the audit trail for a single inclusive range roll.
//
// Postcondition: Min <= Value <= Max.
type RangeResult struct {
	Min   int
	Max   int
	Value int
}

// String returns a human-readable audit string in the format:
//
//	"[5,10] → 7"
func (r RangeResult) String() string {
	return fmt.Sprintf("[%d,%d] → %d", r.Min, r.Max, r.Value)
}
