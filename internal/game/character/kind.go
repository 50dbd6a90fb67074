package character

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies one of the four character variants.
type Kind int

const (
	KindHero Kind = iota + 1
	KindGrunt
	KindElite
	KindBoss
)

var kindLabels = map[Kind]string{
	KindHero:  "Hero",
	KindGrunt: "Grunt",
	KindElite: "Elite",
	KindBoss:  "Boss",
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindHero, KindGrunt, KindElite, KindBoss}
}

// String returns the kind's label, e.g. "Grunt".
func (k Kind) String() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a label to its Kind. Labels are case sensitive.
//
// Postcondition: Returns an error wrapping ErrUnknownKind if label is not a known kind.
func ParseKind(label string) (Kind, error) {
	for k, l := range kindLabels {
		if l == label {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, label)
}

// UnmarshalYAML decodes a kind label.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var label string
	if err := node.Decode(&label); err != nil {
		return err
	}
	parsed, err := ParseKind(label)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes the kind as its label.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
