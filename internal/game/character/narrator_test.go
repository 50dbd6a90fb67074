package character_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/flyweight/internal/game/character"
)

func TestWriterNarrator(t *testing.T) {
	var buf bytes.Buffer
	n := character.NewWriterNarrator(&buf)
	n.Narrate("Hero defeated Grunt.")
	n.Narrate("")
	assert.Equal(t, "Hero defeated Grunt.\n\n", buf.String())
}

func TestLogNarrator_SkipsBlankLines(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	n := character.NewLogNarrator(zap.New(core))
	n.Narrate("")
	n.Narrate("Grunt has been defeated.")

	entries := logs.FilterMessage("narration").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "Grunt has been defeated.", entries[0].ContextMap()["line"])
	}
}

func TestMultiNarrator_FansOut(t *testing.T) {
	a, b := &transcript{}, &transcript{}
	character.MultiNarrator(a, b, character.Discard).Narrate("line")
	assert.Equal(t, []string{"line"}, a.lines)
	assert.Equal(t, []string{"line"}, b.lines)
}
