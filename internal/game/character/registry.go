package character

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/flyweight/internal/game/dice"
)

// Registry hands out one shared Character per kind and manufactures fresh
// States seeded from each kind's profile.
// All methods are safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	kinds    map[Kind]Character
	profiles map[Kind]*Profile

	roller       *dice.Roller
	narrator     Narrator
	logger       *zap.Logger
	maxExchanges int
}

// Option configures a Registry.
type Option func(*Registry)

// WithProfiles replaces the built-in profiles.
func WithProfiles(profiles map[Kind]*Profile) Option {
	return func(r *Registry) { r.profiles = profiles }
}

// WithNarrator sets the Narrator shared by every Character the Registry builds.
func WithNarrator(n Narrator) Option {
	return func(r *Registry) { r.narrator = n }
}

// WithMaxExchanges caps the strikes resolved by a single Attack.
func WithMaxExchanges(n int) Option {
	return func(r *Registry) { r.maxExchanges = n }
}

// NewRegistry creates an empty Registry drawing state values from src.
//
// Precondition: src and logger must be non-nil.
// Postcondition: Returns a Registry with a profile for every kind, or an error.
func NewRegistry(src dice.Source, logger *zap.Logger, opts ...Option) (*Registry, error) {
	r := &Registry{
		kinds:        make(map[Kind]Character),
		roller:       dice.NewLoggedRoller(src, logger),
		narrator:     Discard,
		logger:       logger,
		maxExchanges: DefaultMaxExchanges,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.profiles == nil {
		r.profiles = DefaultProfiles()
	}

	for _, k := range Kinds() {
		p, ok := r.profiles[k]
		if !ok {
			return nil, fmt.Errorf("character: NewRegistry: no profile for %s", k)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("character: NewRegistry: %w", err)
		}
	}
	if r.maxExchanges < 1 {
		return nil, fmt.Errorf("character: NewRegistry: max exchanges must be >= 1, got %d", r.maxExchanges)
	}
	return r, nil
}

// GetOrCreate returns the shared Character for label, building it on first request.
//
// Postcondition: repeated calls for Grunt, Elite or Boss return the identical
// instance. Returns an error wrapping ErrDuplicateHero when label is "Hero" and
// a Hero already exists, or ErrUnknownKind for an unrecognized label.
func (r *Registry) GetOrCreate(label string) (Character, error) {
	kind, err := ParseKind(label)
	if err != nil {
		r.logger.Warn("rejected character request", zap.String("kind", label), zap.Error(err))
		return nil, fmt.Errorf("character: Registry.GetOrCreate: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.kinds[kind]; ok {
		if kind == KindHero {
			r.logger.Warn("rejected character request", zap.String("kind", label), zap.Error(ErrDuplicateHero))
			return nil, fmt.Errorf("character: Registry.GetOrCreate: %w", ErrDuplicateHero)
		}
		return c, nil
	}

	name := r.profiles[kind].Name
	var c Character
	if kind == KindHero {
		c = newHero(name, r.narrator, r.maxExchanges)
	} else {
		c = newEnemy(name, kind, r.narrator, r.maxExchanges)
	}
	r.kinds[kind] = c

	r.logger.Debug("character created",
		zap.String("kind", kind.String()),
		zap.String("name", name),
	)
	return c, nil
}

// CreateState returns a new State for label seeded from its profile's range.
// States are never cached.
//
// Postcondition: Returns a State whose value lies in the kind's inclusive
// status range, or an error wrapping ErrUnknownKind.
func (r *Registry) CreateState(label string) (*State, error) {
	kind, err := ParseKind(label)
	if err != nil {
		return nil, fmt.Errorf("character: Registry.CreateState: cannot find status for %q: %w", label, err)
	}

	p := r.profiles[kind]
	roll, err := r.roller.Between(p.Status.Min, p.Status.Max)
	if err != nil {
		return nil, fmt.Errorf("character: Registry.CreateState: %w", err)
	}

	s := NewState(roll.Value)
	r.logger.Debug("state created",
		zap.String("kind", kind.String()),
		zap.String("state_id", s.ID()),
		zap.Int("value", s.Value()),
	)
	return s, nil
}

// Profile returns the profile backing kind.
//
// Postcondition: ok is true iff kind is known.
func (r *Registry) Profile(kind Kind) (*Profile, bool) {
	p, ok := r.profiles[kind]
	return p, ok
}
