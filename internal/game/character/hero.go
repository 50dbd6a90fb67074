package character

// Hero is the single player-side kind. It absorbs a defeated opponent's
// pre-attack status and provokes retaliation from survivors.
type Hero struct {
	base
}

func newHero(name string, narrator Narrator, maxExchanges int) *Hero {
	return &Hero{base: base{name: name, kind: KindHero, narrator: narrator, maxExchanges: maxExchanges}}
}

// Attack strikes opponent with the hero's current value. A surviving
// opponent strikes back within the same call.
//
// Postcondition: if opponent ends defeated by the hero's strike, self gains
// opponent's value from before the strike.
func (h *Hero) Attack(opponent Character, self, opp *State) {
	resolve(h, opponent, self, opp, h.maxExchanges, h.narrator)
}

// ReceiveAttack always applies the damage, even to a defeated hero.
func (h *Hero) ReceiveAttack(amount int, self *State) {
	self.Decrease(amount)

	if self.IsDefeated() {
		h.narrate("%s has been defeated. You Died.", h.name)
	} else {
		h.narrate("%s now has a status number of %d.", h.name, self.Value())
	}
}

func (h *Hero) strike(opponent Character, self, opp *State) bool {
	if self.IsDefeated() {
		h.narrate("%s has been defeated and cannot attack.", h.name)
		return false
	}

	before := opp.Value()

	h.narrate("%s attacks %s with status number %d.", h.name, opponent.Name(), self.Value())
	opponent.ReceiveAttack(self.Value(), opp)

	if opp.IsDefeated() {
		h.narrate("%s defeated %s.", h.name, opponent.Name())
		self.Increase(before)
		h.narrate("%s's status number increases to %d after defeating %s.", h.name, self.Value(), opponent.Name())
		return false
	}
	return true
}
