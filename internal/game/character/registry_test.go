package character_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/flyweight/internal/game/character"
	"github.com/cory-johannsen/flyweight/internal/game/dice"
)

func TestRegistry_HeroStateIsTwenty(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewCryptoSource())
	for i := 0; i < 10; i++ {
		s, err := reg.CreateState("Hero")
		require.NoError(t, err)
		assert.Equal(t, 20, s.Value())
	}
}

func TestProperty_Registry_CreateStateInRange(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewCryptoSource())
	ranges := map[string][2]int{
		"Hero":  {20, 20},
		"Grunt": {5, 10},
		"Elite": {18, 30},
		"Boss":  {45, 70},
	}
	rapid.Check(t, func(rt *rapid.T) {
		label := rapid.SampledFrom([]string{"Hero", "Grunt", "Elite", "Boss"}).Draw(rt, "kind")
		s, err := reg.CreateState(label)
		require.NoError(rt, err)
		r := ranges[label]
		assert.GreaterOrEqual(rt, s.Value(), r[0])
		assert.LessOrEqual(rt, s.Value(), r[1])
	})
}

func TestRegistry_CreateStateRangeEndpoints(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewFixedSource(0))
	for label, want := range map[string]int{"Grunt": 5, "Elite": 18, "Boss": 45} {
		s, err := reg.CreateState(label)
		require.NoError(t, err)
		assert.Equal(t, want, s.Value(), label)
	}

	reg, _ = newRegistry(t, dice.NewFixedSource(1000))
	// 1000 % 6 == 4, 1000 % 13 == 12, 1000 % 26 == 12
	for label, want := range map[string]int{"Grunt": 9, "Elite": 30, "Boss": 57} {
		s, err := reg.CreateState(label)
		require.NoError(t, err)
		assert.Equal(t, want, s.Value(), label)
	}
}

func TestRegistry_CreateStateAlwaysFresh(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewFixedSource(0))
	a, err := reg.CreateState("Grunt")
	require.NoError(t, err)
	b, err := reg.CreateState("Grunt")
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	a.Decrease(100)
	assert.Equal(t, 5, b.Value(), "states must be independent")
}

func TestRegistry_DuplicateHero(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewCryptoSource())
	hero, err := reg.GetOrCreate("Hero")
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, character.KindHero, hero.Kind())

	_, err = reg.GetOrCreate("Hero")
	assert.ErrorIs(t, err, character.ErrDuplicateHero)
}

func TestRegistry_HeroPerRegistry(t *testing.T) {
	a, _ := newRegistry(t, dice.NewCryptoSource())
	b, _ := newRegistry(t, dice.NewCryptoSource())
	mustGet(t, a, "Hero")
	mustGet(t, b, "Hero")
}

func TestRegistry_EnemiesShared(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewCryptoSource())
	for _, label := range []string{"Grunt", "Elite", "Boss"} {
		first := mustGet(t, reg, label)
		second := mustGet(t, reg, label)
		assert.Same(t, first, second, label)
		assert.Equal(t, label, first.Name())
		assert.Equal(t, label, first.Kind().String())
	}
}

func TestRegistry_UnknownKind(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewCryptoSource())
	_, err := reg.GetOrCreate("Unknown")
	assert.ErrorIs(t, err, character.ErrUnknownKind)

	_, err = reg.CreateState("Unknown")
	assert.ErrorIs(t, err, character.ErrUnknownKind)
}

func TestRegistry_UnknownKindDoesNotCache(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewCryptoSource())
	_, err := reg.GetOrCreate("Dragon")
	require.Error(t, err)
	_, err = reg.GetOrCreate("Dragon")
	assert.ErrorIs(t, err, character.ErrUnknownKind)
}

func TestRegistry_LogsRejections(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg, err := character.NewRegistry(dice.NewCryptoSource(), zap.New(core))
	require.NoError(t, err)

	_, err = reg.GetOrCreate("Hero")
	require.NoError(t, err)
	_, err = reg.GetOrCreate("Hero")
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("character created").Len())
	rejected := logs.FilterMessage("rejected character request").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "Hero", rejected[0].ContextMap()["kind"])
}

func TestRegistry_ConcurrentFirstAccess(t *testing.T) {
	reg, _ := newRegistry(t, dice.NewCryptoSource())

	const workers = 32
	got := make([]character.Character, workers)
	heroes := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := reg.GetOrCreate("Boss")
			if err == nil {
				got[i] = c
			}
			_, heroes[i] = reg.GetOrCreate("Hero")
		}(i)
	}
	wg.Wait()

	for _, c := range got {
		assert.Same(t, got[0], c)
	}
	created := 0
	for _, err := range heroes {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, character.ErrDuplicateHero)
		}
	}
	assert.Equal(t, 1, created, "exactly one Hero may be created")
}

func TestRegistry_CustomProfiles(t *testing.T) {
	profiles, err := character.LoadProfilesFromBytes([]byte(customProfiles))
	require.NoError(t, err)
	reg, _ := newRegistry(t, dice.NewFixedSource(0), character.WithProfiles(profiles))

	hero := mustGet(t, reg, "Hero")
	assert.Equal(t, "Aria", hero.Name())
	s, err := reg.CreateState("Hero")
	require.NoError(t, err)
	assert.Equal(t, 30, s.Value())

	p, ok := reg.Profile(character.KindBoss)
	require.True(t, ok)
	assert.Equal(t, "Warden", p.Name)
}

func TestNewRegistry_MissingProfile(t *testing.T) {
	profiles := character.DefaultProfiles()
	delete(profiles, character.KindElite)
	_, err := character.NewRegistry(dice.NewCryptoSource(), zap.NewNop(), character.WithProfiles(profiles))
	assert.Error(t, err)
}

func TestNewRegistry_RangeTooWide(t *testing.T) {
	profiles := character.DefaultProfiles()
	profiles[character.KindGrunt].Status = character.StatusRange{Min: 0, Max: math.MaxInt}
	_, err := character.NewRegistry(dice.NewCryptoSource(), zap.NewNop(), character.WithProfiles(profiles))
	assert.Error(t, err)
}

func TestRegistry_CreateStateRangeTooWide(t *testing.T) {
	profiles := character.DefaultProfiles()
	reg, _ := newRegistry(t, dice.NewCryptoSource(), character.WithProfiles(profiles))
	// Profiles are shared by pointer; widen one after construction.
	profiles[character.KindGrunt].Status = character.StatusRange{Min: math.MinInt, Max: 0}

	var err error
	assert.NotPanics(t, func() { _, err = reg.CreateState("Grunt") })
	assert.Error(t, err)
}

func TestNewRegistry_InvalidMaxExchanges(t *testing.T) {
	_, err := character.NewRegistry(dice.NewCryptoSource(), zap.NewNop(), character.WithMaxExchanges(0))
	assert.Error(t, err)
}
