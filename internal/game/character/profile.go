package character

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed kinds.yaml
var defaultProfilesYAML []byte

// StatusRange is an inclusive range of initial status values.
type StatusRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Profile holds the per-kind data a Registry needs to build characters and
// seed their states.
type Profile struct {
	Kind Kind `yaml:"kind"`
	// Name is the display name; empty defaults to the kind label.
	Name   string      `yaml:"name"`
	Status StatusRange `yaml:"status"`
}

// Validate checks that the profile satisfies basic invariants.
//
// Precondition: p must not be nil.
// Postcondition: Returns nil iff Kind is known, Status.Min <= Status.Max, and
// the range width fits in an int.
func (p *Profile) Validate() error {
	if _, ok := kindLabels[p.Kind]; !ok {
		return fmt.Errorf("profile: kind must be one of Hero, Grunt, Elite, Boss")
	}
	if p.Status.Min > p.Status.Max {
		return fmt.Errorf("profile %s: status.min %d exceeds status.max %d", p.Kind, p.Status.Min, p.Status.Max)
	}
	if p.Status.Max-p.Status.Min+1 <= 0 {
		return fmt.Errorf("profile %s: status range [%d,%d] too wide", p.Kind, p.Status.Min, p.Status.Max)
	}
	return nil
}

type profileFile struct {
	Kinds []*Profile `yaml:"kinds"`
}

// LoadProfilesFromBytes parses and validates a profile set from raw YAML.
//
// Postcondition: Returns exactly one profile per kind, with Name defaulted,
// or an error on parse failure, validation failure, a duplicate or a missing kind.
func LoadProfilesFromBytes(data []byte) (map[Kind]*Profile, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}

	out := make(map[Kind]*Profile, len(f.Kinds))
	for _, p := range f.Kinds {
		if p == nil {
			return nil, fmt.Errorf("profile: empty entry")
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := out[p.Kind]; dup {
			return nil, fmt.Errorf("profile %s: defined more than once", p.Kind)
		}
		if p.Name == "" {
			p.Name = p.Kind.String()
		}
		out[p.Kind] = p
	}
	for _, k := range Kinds() {
		if _, ok := out[k]; !ok {
			return nil, fmt.Errorf("profile %s: missing", k)
		}
	}
	return out, nil
}

// LoadProfiles reads a profile set from the YAML file at path.
//
// Precondition: path must be a readable file.
func LoadProfiles(path string) (map[Kind]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles %q: %w", path, err)
	}
	profiles, err := LoadProfilesFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return profiles, nil
}

// DefaultProfiles returns the built-in profiles: Hero 20, Grunt 5-10,
// Elite 18-30, Boss 45-70.
func DefaultProfiles() map[Kind]*Profile {
	profiles, err := LoadProfilesFromBytes(defaultProfilesYAML)
	if err != nil {
		panic("character: built-in profiles invalid: " + err.Error())
	}
	return profiles
}
