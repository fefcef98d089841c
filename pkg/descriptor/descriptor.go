package descriptor

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AnyTag is the tag-name pattern that matches every element.
const AnyTag = "*"

// BindAttributePrefix is the attribute-name prefix recognised by the two-way
// binding macro.
const BindAttributePrefix = "bind-"

// Metadata keys carried by published descriptors. The values are hints for
// downstream stages; Kind remains the authoritative classification.
const (
	MetadataSpecialKind   = "bindgen.special-kind"
	MetadataRuntimeHelper = "bindgen.runtime-helper"
	MetadataComponentType = "bindgen.component-type"
)

// Descriptor describes where a component or macro applies during compilation
// and how markup attributes bind to it.
type Descriptor struct {
	Kind             Kind              `json:"kind" yaml:"kind"`
	Name             string            `json:"name" yaml:"name"`
	DisplayName      string            `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Documentation    string            `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	TagMatchingRules []TagMatchingRule `json:"tagMatchingRules" yaml:"tagMatchingRules"`
	BoundAttributes  []BoundAttribute  `json:"boundAttributes,omitempty" yaml:"boundAttributes,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// TagMatchingRule pairs a tag-name pattern with the attributes an element must
// carry for the rule to apply.
type TagMatchingRule struct {
	TagName    string              `json:"tagName" yaml:"tagName"`
	Attributes []RequiredAttribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// RequiredAttribute names an attribute that must be present on a matching
// element.
type RequiredAttribute struct {
	Name       string         `json:"name" yaml:"name"`
	Comparison NameComparison `json:"comparison" yaml:"comparison"`
}

// BoundAttribute declares an attribute the descriptor binds, with its declared
// value type.
type BoundAttribute struct {
	Name          string             `json:"name" yaml:"name"`
	TypeName      string             `json:"typeName" yaml:"typeName"`
	Documentation string             `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Dictionary    *DictionaryCapture `json:"dictionary,omitempty" yaml:"dictionary,omitempty"`
}

// DictionaryCapture turns every markup attribute whose name starts with Prefix
// into one entry of a logical map keyed by the remainder of the name.
type DictionaryCapture struct {
	Prefix    string `json:"prefix" yaml:"prefix"`
	ValueType string `json:"valueType" yaml:"valueType"`
}

// IsDictionary reports whether the attribute captures a prefixed attribute
// family.
func (b BoundAttribute) IsDictionary() bool { return b.Dictionary != nil }

// Clone returns a deep copy of the descriptor.
func (d Descriptor) Clone() Descriptor {
	clone := d
	clone.TagMatchingRules = nil
	if d.TagMatchingRules != nil {
		clone.TagMatchingRules = make([]TagMatchingRule, len(d.TagMatchingRules))
		for idx, rule := range d.TagMatchingRules {
			clone.TagMatchingRules[idx] = TagMatchingRule{
				TagName:    rule.TagName,
				Attributes: slices.Clone(rule.Attributes),
			}
		}
	}
	clone.BoundAttributes = nil
	if d.BoundAttributes != nil {
		clone.BoundAttributes = make([]BoundAttribute, len(d.BoundAttributes))
		for idx, attr := range d.BoundAttributes {
			if attr.Dictionary != nil {
				dict := *attr.Dictionary
				attr.Dictionary = &dict
			}
			clone.BoundAttributes[idx] = attr
		}
	}
	clone.Metadata = maps.Clone(d.Metadata)
	return clone
}

// Validate checks the structural invariants every published descriptor must
// satisfy. Failures wrap ErrInvalidDescriptor.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: descriptor is nil", ErrInvalidArgument)
	}
	if !d.Kind.Valid() {
		return invalidf("unknown kind %d", int(d.Kind))
	}
	if strings.TrimSpace(d.Name) == "" {
		return invalidf("name is required")
	}
	if len(d.TagMatchingRules) == 0 {
		return invalidf("%q requires at least one tag matching rule", d.Name)
	}
	for idx, rule := range d.TagMatchingRules {
		if strings.TrimSpace(rule.TagName) == "" {
			return invalidf("%q rule %d has an empty tag name", d.Name, idx)
		}
		for _, attr := range rule.Attributes {
			if strings.TrimSpace(attr.Name) == "" {
				return invalidf("%q rule %d has an empty required attribute", d.Name, idx)
			}
		}
	}
	for _, attr := range d.BoundAttributes {
		if strings.TrimSpace(attr.Name) == "" {
			return invalidf("%q has an unnamed bound attribute", d.Name)
		}
		if attr.Dictionary != nil && attr.Dictionary.Prefix == "" {
			return invalidf("%q bound attribute %q has an empty dictionary prefix", d.Name, attr.Name)
		}
	}

	special := d.Metadata[MetadataSpecialKind]
	switch {
	case !d.Kind.Special() && special != "":
		return invalidf("component %q carries special kind %q", d.Name, special)
	case d.Kind.Special() && special != "" && special != d.Kind.String():
		return invalidf("%q metadata kind %q disagrees with %s", d.Name, special, d.Kind)
	}

	if d.Kind == KindBind {
		var captures []BoundAttribute
		for _, attr := range d.BoundAttributes {
			if attr.IsDictionary() {
				captures = append(captures, attr)
			}
		}
		if len(captures) != 1 || captures[0].Dictionary.Prefix != BindAttributePrefix {
			return invalidf("bind descriptor %q requires exactly one %q dictionary attribute", d.Name, BindAttributePrefix)
		}
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDescriptor, fmt.Sprintf(format, args...))
}
