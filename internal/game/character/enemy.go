package character

// Enemy implements the Grunt, Elite and Boss kinds. They share one policy:
// only a Hero may be attacked, and every attack is a single trade of blows.
type Enemy struct {
	base
}

func newEnemy(name string, kind Kind, narrator Narrator, maxExchanges int) *Enemy {
	return &Enemy{base: base{name: name, kind: kind, narrator: narrator, maxExchanges: maxExchanges}}
}

// Attack trades blows with a Hero opponent: the opponent takes self's value,
// then self takes the opponent's remaining value. Any other opponent is
// refused.
func (e *Enemy) Attack(opponent Character, self, opp *State) {
	resolve(e, opponent, self, opp, e.maxExchanges, e.narrator)
}

// title is the display form used in attack lines, e.g. "Grunt the Grunt" or "Boss Boss".
func (e *Enemy) title() string {
	if e.kind == KindBoss {
		return "Boss " + e.name
	}
	return e.name + " the " + e.kind.String()
}

func (e *Enemy) strike(opponent Character, self, opp *State) bool {
	if !e.canAttack(self) {
		return false
	}

	if opponent.Kind() != KindHero {
		e.narrate("%s can only attack the Hero.", e.title())
		return false
	}

	e.narrate("%s attacks %s with status number %d.", e.title(), opponent.Name(), self.Value())
	opponent.ReceiveAttack(self.Value(), opp)
	e.ReceiveAttack(opp.Value(), self)
	return false
}
