package descriptor

import (
	"fmt"
	"strings"
)

// Kind tags a descriptor as a genuine component or as one of the synthetic
// macro kinds. The zero value is KindComponent.
type Kind int

const (
	// KindComponent marks a descriptor discovered from a component definition.
	KindComponent Kind = iota
	// KindBind marks the synthetic two-way binding macro.
	KindBind

	kindCount
)

var kindNames = [...]string{
	KindComponent: "Component",
	KindBind:      "Bind",
}

// String returns the canonical kind name.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// Special reports whether k is a synthetic macro kind.
func (k Kind) Special() bool { return k != KindComponent }

// ParseKind resolves a kind from its canonical name, ignoring case.
func ParseKind(raw string) (Kind, error) {
	trimmed := strings.TrimSpace(raw)
	for idx, name := range kindNames {
		if strings.EqualFold(name, trimmed) {
			return Kind(idx), nil
		}
	}
	return 0, fmt.Errorf("descriptor: unknown kind %q", raw)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("descriptor: unknown kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// NameComparison selects how a required attribute name is compared with the
// attribute names present on an element.
type NameComparison int

const (
	// ExactMatch requires the full attribute name to match.
	ExactMatch NameComparison = iota
	// PrefixMatch requires the attribute name to start with the required name
	// and carry at least one more character.
	PrefixMatch
)

// String returns the canonical comparison name.
func (c NameComparison) String() string {
	switch c {
	case ExactMatch:
		return "ExactMatch"
	case PrefixMatch:
		return "PrefixMatch"
	default:
		return fmt.Sprintf("NameComparison(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c NameComparison) MarshalText() ([]byte, error) {
	switch c {
	case ExactMatch, PrefixMatch:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("descriptor: unknown name comparison %d", int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *NameComparison) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "exactmatch", "exact":
		*c = ExactMatch
	case "prefixmatch", "prefix":
		*c = PrefixMatch
	default:
		return fmt.Errorf("descriptor: unknown name comparison %q", string(text))
	}
	return nil
}
