package character

import "github.com/google/uuid"

// State is the extrinsic, per-encounter status counter paired with a shared
// Character.
//
// Invariant: after any Decrease, Value() >= 0.
// A State is not safe for concurrent use.
type State struct {
	id    string
	value int
}

// NewState returns a State holding initial. initial may be <= 0, yielding an
// already defeated State.
//
// Postcondition: ID() is a fresh UUID.
func NewState(initial int) *State {
	return &State{id: uuid.NewString(), value: initial}
}

// ID returns the opaque instance identifier used for log correlation.
func (s *State) ID() string {
	return s.id
}

// Value returns the current status number.
func (s *State) Value() int {
	return s.value
}

// Decrease lowers the value by amount, flooring at zero.
//
// Postcondition: Value() == max(old-amount, 0).
func (s *State) Decrease(amount int) {
	s.value = max(s.value-amount, 0)
}

// Increase raises the value by amount. No upper bound applies.
func (s *State) Increase(amount int) {
	s.value += amount
}

// IsDefeated reports whether the value is zero or below.
func (s *State) IsDefeated() bool {
	return s.value <= 0
}
