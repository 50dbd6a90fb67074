// Package character implements shared character kinds (flyweights), their
// extrinsic status counters, and the registry that hands them out.
package character

import "fmt"

// DefaultMaxExchanges bounds the strikes resolved by one Attack call when a
// Registry is built without WithMaxExchanges.
const DefaultMaxExchanges = 16

// Character is a shared, immutable character kind. Per-encounter status is
// always supplied by the caller as a *State.
//
// The interface is sealed: the only implementations are *Hero and *Enemy.
type Character interface {
	// Name returns the display name.
	Name() string
	// Kind returns the variant.
	Kind() Kind
	// Attack resolves an attack on opponent. Refusals narrate and return
	// without mutating either state.
	Attack(opponent Character, self, opp *State)
	// ReceiveAttack applies amount as damage to self.
	ReceiveAttack(amount int, self *State)

	// strike performs this character's half of an exchange and reports
	// whether opponent answers with its own strike.
	strike(opponent Character, self, opp *State) bool
}

var (
	_ Character = (*Hero)(nil)
	_ Character = (*Enemy)(nil)
)

// base carries the intrinsic data shared by every variant.
type base struct {
	name         string
	kind         Kind
	narrator     Narrator
	maxExchanges int
}

func (b *base) Name() string { return b.name }

func (b *base) Kind() Kind { return b.kind }

func (b *base) narrate(format string, args ...any) {
	b.narrator.Narrate(fmt.Sprintf(format, args...))
}

// ReceiveAttack is the non-hero policy: a defeated state is left untouched.
func (b *base) ReceiveAttack(amount int, self *State) {
	if self.IsDefeated() {
		b.narrate("%s has already been defeated and cannot fight.", b.name)
		return
	}

	self.Decrease(amount)

	if self.IsDefeated() {
		b.narrate("%s has been defeated.", b.name)
	} else {
		b.narrate("%s now has a status number of %d", b.name, self.Value())
	}
}

// canAttack narrates and returns false when self is defeated.
func (b *base) canAttack(self *State) bool {
	if self.IsDefeated() {
		b.narrate("%s is defeated and cannot attack.", b.name)
		return false
	}
	return true
}
