package character

import "errors"

var (
	// ErrDuplicateHero is returned when a second Hero is requested from a Registry.
	ErrDuplicateHero = errors.New("a Hero has already been created")
	// ErrUnknownKind is returned for a kind label outside Hero, Grunt, Elite and Boss.
	ErrUnknownKind = errors.New("unknown character kind")
)
