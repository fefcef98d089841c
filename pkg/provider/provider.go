package provider

import (
	"github.com/goliatone/go-bindgen/pkg/config"
	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

// Provider orders.
const (
	// OrderComponent is the default order of the component provider.
	OrderComponent = config.DefaultComponentOrder
	// OrderBind is the fixed order of the bind provider; it is strictly greater
	// than any order a valid configuration can give the component provider.
	OrderBind = config.MaxComponentOrder + 1
)

// ErrInvalidArgument is returned when a required reference is nil.
var ErrInvalidArgument = descriptor.ErrInvalidArgument

// Context is handed to each provider during a pass.
type Context struct {
	// Results is the append-only collection shared by every provider.
	Results *descriptor.Results
	// Config is the compiler configuration for the pass.
	Config *config.Config
}

// Provider publishes descriptors into the pass results.
type Provider interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Order positions the provider in the pipeline; lower runs first.
	Order() int
	// Execute appends the provider's descriptors to ctx.Results.
	Execute(ctx *Context) error
}

// Func adapts a function into a Provider.
type Func struct {
	ProviderName  string
	ProviderOrder int
	Fn            func(*Context) error
}

// Name returns the provider name.
func (f Func) Name() string { return f.ProviderName }

// Order returns the provider order.
func (f Func) Order() int { return f.ProviderOrder }

// Execute calls the wrapped function.
func (f Func) Execute(ctx *Context) error {
	if f.Fn == nil {
		return nil
	}
	return f.Fn(ctx)
}
