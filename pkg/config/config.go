package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// MaxComponentOrder is the highest order a component provider may run at. The
// bind provider runs at MaxComponentOrder+1, so every valid configuration keeps
// component discovery ahead of it.
const MaxComponentOrder = 999

// DefaultComponentOrder is the order used when a configuration does not set one.
const DefaultComponentOrder = 0

// ErrInvalidConfig wraps configuration validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the compiler configuration for one compilation pass.
type Config struct {
	// ComponentOrder positions the component provider in the pipeline.
	ComponentOrder int `json:"componentOrder" yaml:"componentOrder"`
	// CaseSensitive switches tag and attribute matching from HTML's
	// case-insensitive rules to byte comparison.
	CaseSensitive bool `json:"caseSensitive" yaml:"caseSensitive"`
	// Components lists the component definitions to publish.
	Components []ComponentDefinition `json:"components" yaml:"components"`
}

// ComponentDefinition describes a component whose descriptor the component
// provider publishes.
type ComponentDefinition struct {
	Name          string               `json:"name" yaml:"name"`
	TagName       string               `json:"tagName,omitempty" yaml:"tagName,omitempty"`
	Documentation string               `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Properties    []PropertyDefinition `json:"properties,omitempty" yaml:"properties,omitempty"`
	// Source records the document the definition was loaded from.
	Source string `json:"-" yaml:"-"`
}

// PropertyDefinition is one bindable component property.
type PropertyDefinition struct {
	Name          string `json:"name" yaml:"name"`
	Type          string `json:"type" yaml:"type"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Default returns an empty configuration with default settings.
func Default() *Config {
	return &Config{ComponentOrder: DefaultComponentOrder}
}

// Tag returns the tag name the component is matched on, defaulting to its
// name.
func (d ComponentDefinition) Tag() string {
	if tag := strings.TrimSpace(d.TagName); tag != "" {
		return tag
	}
	return strings.TrimSpace(d.Name)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Components = nil
	if c.Components != nil {
		clone.Components = make([]ComponentDefinition, len(c.Components))
		for idx, def := range c.Components {
			def.Properties = slices.Clone(def.Properties)
			clone.Components[idx] = def
		}
	}
	return &clone
}

// Validate checks the configuration. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfig)
	}
	if c.ComponentOrder > MaxComponentOrder {
		return fmt.Errorf("%w: component order %d exceeds %d", ErrInvalidConfig, c.ComponentOrder, MaxComponentOrder)
	}

	seen := make(map[string]string, len(c.Components))
	for idx, def := range c.Components {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf("%w: component %d%s has no name", ErrInvalidConfig, idx, sourceSuffix(def.Source))
		}
		key := strings.ToLower(name)
		if previous, exists := seen[key]; exists {
			return fmt.Errorf("%w: duplicate component %q%s (first defined%s)",
				ErrInvalidConfig, name, sourceSuffix(def.Source), sourceSuffix(previous))
		}
		seen[key] = def.Source

		props := make(map[string]struct{}, len(def.Properties))
		for _, prop := range def.Properties {
			propName := strings.TrimSpace(prop.Name)
			if propName == "" {
				return fmt.Errorf("%w: component %q has an unnamed property", ErrInvalidConfig, name)
			}
			if _, exists := props[propName]; exists {
				return fmt.Errorf("%w: component %q defines property %q twice", ErrInvalidConfig, name, propName)
			}
			props[propName] = struct{}{}
		}
	}
	return nil
}

func sourceSuffix(source string) string {
	if source == "" {
		return ""
	}
	return " in " + source
}
