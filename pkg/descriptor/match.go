package descriptor

import (
	"fmt"
	"strings"
)

// Attribute is one name/value pair written on a markup element. Value holds the
// raw expression text.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Element is the view of a markup element the matcher needs: its tag name and
// attributes in source order.
type Element struct {
	TagName    string      `json:"tagName" yaml:"tagName"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// MatchOption tunes name comparison. Markup names compare case-insensitively
// unless WithCaseSensitive is supplied.
type MatchOption func(*matchConfig)

type matchConfig struct {
	caseSensitive bool
}

// WithCaseSensitive compares tag and attribute names byte for byte.
func WithCaseSensitive() MatchOption {
	return func(cfg *matchConfig) {
		cfg.caseSensitive = true
	}
}

func newMatchConfig(opts []MatchOption) matchConfig {
	var cfg matchConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

func (cfg matchConfig) equal(a, b string) bool {
	if cfg.caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func (cfg matchConfig) hasPrefix(name, prefix string) bool {
	if len(name) < len(prefix) {
		return false
	}
	return cfg.equal(name[:len(prefix)], prefix)
}

// Matches reports whether the attribute name satisfies the requirement.
// PrefixMatch never accepts the bare prefix itself.
func (a RequiredAttribute) Matches(name string, opts ...MatchOption) bool {
	return a.matches(name, newMatchConfig(opts))
}

func (a RequiredAttribute) matches(name string, cfg matchConfig) bool {
	switch a.Comparison {
	case PrefixMatch:
		return len(name) > len(a.Name) && cfg.hasPrefix(name, a.Name)
	default:
		return cfg.equal(name, a.Name)
	}
}

// Matches reports whether el satisfies the rule: the tag pattern matches and
// every required attribute is present.
func (r TagMatchingRule) Matches(el Element, opts ...MatchOption) bool {
	return r.matches(el, newMatchConfig(opts))
}

func (r TagMatchingRule) matches(el Element, cfg matchConfig) bool {
	if r.TagName != AnyTag && !cfg.equal(r.TagName, el.TagName) {
		return false
	}
	for _, required := range r.Attributes {
		found := false
		for _, attr := range el.Attributes {
			if required.matches(attr.Name, cfg) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Match reports whether any of the descriptor's rules applies to el.
func Match(d *Descriptor, el Element, opts ...MatchOption) (bool, error) {
	if d == nil {
		return false, fmt.Errorf("%w: descriptor is nil", ErrInvalidArgument)
	}
	return d.matches(el, newMatchConfig(opts)), nil
}

func (d *Descriptor) matches(el Element, cfg matchConfig) bool {
	for _, rule := range d.TagMatchingRules {
		if rule.matches(el, cfg) {
			return true
		}
	}
	return false
}
