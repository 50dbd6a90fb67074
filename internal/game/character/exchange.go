package character

// resolve runs an exchange as a bounded loop of strikes. After each strike
// that hands over, attacker and defender swap roles.
//
// Postcondition: at most limit strikes are performed.
func resolve(attacker, defender Character, aState, dState *State, limit int, narrator Narrator) {
	for i := 0; i < limit; i++ {
		if !attacker.strike(defender, aState, dState) {
			return
		}
		if aState.IsDefeated() || dState.IsDefeated() {
			return
		}
		attacker, defender = defender, attacker
		aState, dState = dState, aState
	}
	narrator.Narrate("The exchange between " + attacker.Name() + " and " + defender.Name() + " is called off.")
}
