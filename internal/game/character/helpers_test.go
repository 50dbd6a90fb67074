package character_test

import (
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/flyweight/internal/game/character"
	"github.com/cory-johannsen/flyweight/internal/game/dice"
)

// tb is satisfied by both *testing.T and *rapid.T.
type tb interface {
	Helper()
	require.TestingT
}

// transcript collects narration lines.
type transcript struct {
	lines []string
}

func (tr *transcript) Narrate(msg string) { tr.lines = append(tr.lines, msg) }

func newRegistry(t tb, src dice.Source, opts ...character.Option) (*character.Registry, *transcript) {
	t.Helper()
	tr := &transcript{}
	opts = append([]character.Option{character.WithNarrator(tr)}, opts...)
	reg, err := character.NewRegistry(src, zap.NewNop(), opts...)
	require.NoError(t, err)
	return reg, tr
}

func mustGet(t tb, reg *character.Registry, label string) character.Character {
	t.Helper()
	c, err := reg.GetOrCreate(label)
	require.NoError(t, err)
	return c
}
