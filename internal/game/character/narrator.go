package character

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Narrator receives the human-readable lines produced during an encounter.
type Narrator interface {
	Narrate(msg string)
}

// NarratorFunc adapts a function into a Narrator.
type NarratorFunc func(msg string)

// Narrate calls f(msg).
func (f NarratorFunc) Narrate(msg string) { f(msg) }

type writerNarrator struct {
	w io.Writer
}

// NewWriterNarrator returns a Narrator that writes each line to w.
//
// Precondition: w must be non-nil.
func NewWriterNarrator(w io.Writer) Narrator {
	return &writerNarrator{w: w}
}

func (n *writerNarrator) Narrate(msg string) {
	fmt.Fprintln(n.w, msg)
}

type logNarrator struct {
	logger *zap.Logger
}

// NewLogNarrator returns a Narrator that records each non-empty line at debug level.
//
// Precondition: logger must be non-nil.
func NewLogNarrator(logger *zap.Logger) Narrator {
	return &logNarrator{logger: logger}
}

func (n *logNarrator) Narrate(msg string) {
	if msg == "" {
		return
	}
	n.logger.Debug("narration", zap.String("line", msg))
}

// MultiNarrator fans each line out to every narrator in order.
func MultiNarrator(narrators ...Narrator) Narrator {
	return NarratorFunc(func(msg string) {
		for _, n := range narrators {
			n.Narrate(msg)
		}
	})
}

// Discard is a Narrator that drops every line.
var Discard Narrator = NarratorFunc(func(string) {})
