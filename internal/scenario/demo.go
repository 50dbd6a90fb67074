// Package scenario drives the scripted encounter between the Hero and the
// enemy kinds handed out by a character.Registry.
package scenario

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/flyweight/internal/game/character"
)

// Combatant pairs a shared Character with its extrinsic State.
type Combatant struct {
	Character character.Character
	State     *character.State
}

// Display returns the status line for c, e.g. "Grunt (Grunt) has a status number of 7.".
func Display(c Combatant) string {
	return fmt.Sprintf("%s (%s) has a status number of %d.", c.Character.Name(), c.Character.Kind(), c.State.Value())
}

// Demo runs the fixed demo script.
type Demo struct {
	registry *character.Registry
	narrator character.Narrator
	logger   *zap.Logger
}

// NewDemo creates a Demo.
//
// Precondition: registry, narrator and logger must be non-nil. narrator should
// be the same Narrator the registry's characters report to.
func NewDemo(registry *character.Registry, narrator character.Narrator, logger *zap.Logger) *Demo {
	return &Demo{registry: registry, narrator: narrator, logger: logger}
}

type step struct {
	header   string
	attacker Combatant
	opponent Combatant
}

// Run builds the Hero, Grunt, Elite and Boss, seeds one state each (two for
// the Grunt), and plays the scripted attacks.
//
// Postcondition: Returns the roster in display order (Hero, Grunt 1,
// Grunt 2, Elite, Boss) with final states, or the first registry error.
func (d *Demo) Run() ([]Combatant, error) {
	start := time.Now()

	chars := make(map[string]character.Character, 4)
	for _, label := range []string{"Hero", "Grunt", "Elite", "Boss"} {
		c, err := d.registry.GetOrCreate(label)
		if err != nil {
			return nil, fmt.Errorf("scenario: creating %s: %w", label, err)
		}
		chars[label] = c
	}

	var roster []Combatant
	for _, label := range []string{"Hero", "Grunt", "Grunt", "Elite", "Boss"} {
		s, err := d.registry.CreateState(label)
		if err != nil {
			return nil, fmt.Errorf("scenario: seeding %s: %w", label, err)
		}
		roster = append(roster, Combatant{Character: chars[label], State: s})
	}
	hero, grunt1, grunt2, elite, boss := roster[0], roster[1], roster[2], roster[3], roster[4]

	d.displayAll(roster)

	steps := []step{
		{"Hero attacks Grunt 1:", hero, grunt1},
		{"Grunt 1 attacks Hero:", grunt1, hero},
		{"Hero attacks Grunt 2:", hero, grunt2},
		{"Hero attacks Elite:", hero, elite},
		{"Elite attacks Hero:", elite, hero},
		{"Hero attacks Boss:", hero, boss},
		{"Boss attacks Hero:", boss, hero},
	}
	for _, st := range steps {
		d.narrator.Narrate("")
		d.narrator.Narrate(st.header)
		st.attacker.Character.Attack(st.opponent.Character, st.attacker.State, st.opponent.State)
	}

	d.displayAll(roster)

	d.logger.Info("scenario complete",
		zap.Int("hero_status", hero.State.Value()),
		zap.Bool("hero_defeated", hero.State.IsDefeated()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return roster, nil
}

func (d *Demo) displayAll(roster []Combatant) {
	for _, c := range roster {
		d.narrator.Narrate(Display(c))
	}
}
