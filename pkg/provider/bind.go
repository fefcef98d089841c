package provider

import (
	"fmt"

	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

const (
	// BindDescriptorName names the generic bind macro descriptor.
	BindDescriptorName = "Bind"
	// BindRuntimeHelper names the runtime helper the code generator calls to
	// perform the value/change-handler pairing.
	BindRuntimeHelper = "runtime.BindMethods"
	// BindTypeName is the declared type of the captured dictionary.
	BindTypeName = "map[string]any"
	// BindValueType is the declared type of each captured entry.
	BindValueType = "any"
)

const bindDocumentation = "Binds a value and its change handler. Every bind-prefixed attribute is " +
	"captured as a dictionary entry keyed by the text after the prefix; the " +
	"lowering stage chooses the attribute pair for the element or component."

// BindProvider publishes the generic two-way binding macro descriptor.
type BindProvider struct{}

// NewBindProvider constructs the bind provider.
func NewBindProvider() *BindProvider {
	return &BindProvider{}
}

// Name returns "bind".
func (p *BindProvider) Name() string { return "bind" }

// Order returns OrderBind.
func (p *BindProvider) Order() int { return OrderBind }

// Execute appends one bind descriptor to ctx.Results. It does not deduplicate:
// running it twice in a pass publishes two descriptors.
func (p *BindProvider) Execute(ctx *Context) error {
	if ctx == nil {
		return fmt.Errorf("%w: provider context is nil", ErrInvalidArgument)
	}
	if ctx.Results == nil {
		return fmt.Errorf("%w: provider results are nil", ErrInvalidArgument)
	}
	return ctx.Results.Append(BindDescriptor())
}

// BindDescriptor builds the descriptor BindProvider publishes.
//
// The rule matches any tag carrying an attribute that starts with "bind-" and
// is longer than it; a bare "bind" attribute is not matched. The single bound
// attribute captures every "bind-<suffix>" attribute into a map keyed by
// suffix with the expression text as value.
func BindDescriptor() descriptor.Descriptor {
	return descriptor.Descriptor{
		Kind:          descriptor.KindBind,
		Name:          BindDescriptorName,
		DisplayName:   BindDescriptorName,
		Documentation: bindDocumentation,
		TagMatchingRules: []descriptor.TagMatchingRule{{
			TagName: descriptor.AnyTag,
			Attributes: []descriptor.RequiredAttribute{{
				Name:       descriptor.BindAttributePrefix,
				Comparison: descriptor.PrefixMatch,
			}},
		}},
		BoundAttributes: []descriptor.BoundAttribute{{
			Name:          BindDescriptorName,
			TypeName:      BindTypeName,
			Documentation: bindDocumentation,
			Dictionary: &descriptor.DictionaryCapture{
				Prefix:    descriptor.BindAttributePrefix,
				ValueType: BindValueType,
			},
		}},
		Metadata: map[string]string{
			descriptor.MetadataSpecialKind:   descriptor.KindBind.String(),
			descriptor.MetadataRuntimeHelper: BindRuntimeHelper,
		},
	}
}
