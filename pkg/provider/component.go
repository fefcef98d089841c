package provider

import (
	"fmt"

	"github.com/goliatone/go-bindgen/pkg/config"
	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

// ComponentOption customises the component provider.
type ComponentOption func(*ComponentProvider)

// WithComponentOrder sets the provider order. Values above
// config.MaxComponentOrder are clamped so the provider always runs before
// BindProvider. The value is fixed once the provider is constructed.
func WithComponentOrder(order int) ComponentOption {
	return func(p *ComponentProvider) {
		p.order = min(order, config.MaxComponentOrder)
	}
}

// ComponentProvider publishes one component descriptor per component
// definition in the pass configuration. It does not infer bind pairs.
type ComponentProvider struct {
	order int
}

// NewComponentProvider constructs the provider at OrderComponent unless
// overridden.
func NewComponentProvider(options ...ComponentOption) *ComponentProvider {
	p := &ComponentProvider{order: OrderComponent}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Name returns "component".
func (p *ComponentProvider) Name() string { return "component" }

// Order returns the configured order.
func (p *ComponentProvider) Order() int { return p.order }

// Execute appends a descriptor for every configured component. A nil Config
// publishes nothing.
func (p *ComponentProvider) Execute(ctx *Context) error {
	if ctx == nil {
		return fmt.Errorf("%w: provider context is nil", ErrInvalidArgument)
	}
	if ctx.Results == nil {
		return fmt.Errorf("%w: provider results are nil", ErrInvalidArgument)
	}
	if ctx.Config == nil {
		return nil
	}

	built := make([]descriptor.Descriptor, 0, len(ctx.Config.Components))
	for _, def := range ctx.Config.Components {
		d := ComponentDescriptor(def)
		if err := d.Validate(); err != nil {
			return fmt.Errorf("component %q: %w", def.Name, err)
		}
		built = append(built, d)
	}
	for _, d := range built {
		if err := ctx.Results.Append(d); err != nil {
			return err
		}
	}
	return nil
}

// ComponentDescriptor builds the descriptor for a component definition.
func ComponentDescriptor(def config.ComponentDefinition) descriptor.Descriptor {
	d := descriptor.Descriptor{
		Kind:          descriptor.KindComponent,
		Name:          def.Name,
		DisplayName:   def.Name,
		Documentation: def.Documentation,
		TagMatchingRules: []descriptor.TagMatchingRule{{
			TagName: def.Tag(),
		}},
		Metadata: map[string]string{
			descriptor.MetadataComponentType: def.Name,
		},
	}
	for _, prop := range def.Properties {
		d.BoundAttributes = append(d.BoundAttributes, descriptor.BoundAttribute{
			Name:          prop.Name,
			TypeName:      prop.Type,
			Documentation: prop.Documentation,
		})
	}
	return d
}
