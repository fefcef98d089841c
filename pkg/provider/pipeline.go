package provider

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-bindgen/pkg/config"
	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithLogger traces provider execution to logger. Pipelines are silent by
// default.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

type entry struct {
	provider Provider
	name     string
	order    int
	seq      int
}

// Pipeline runs registered providers in ascending order. Orders are captured
// at registration, so a provider cannot move itself once registered.
type Pipeline struct {
	mu      sync.RWMutex
	entries []entry
	logger  *log.Logger
}

// NewPipeline constructs an empty pipeline.
func NewPipeline(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// DefaultPipeline registers the component provider, positioned by
// cfg.ComponentOrder, and the bind provider. cfg must be valid.
func DefaultPipeline(cfg *config.Config, options ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is nil", ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("provider: %w", err)
	}
	p := NewPipeline(options...)
	if err := p.Register(
		NewComponentProvider(WithComponentOrder(cfg.ComponentOrder)),
		NewBindProvider(),
	); err != nil {
		return nil, err
	}
	return p, nil
}

// Register adds providers to the pipeline. Names must be non-empty and unique.
func (p *Pipeline) Register(providers ...Provider) error {
	if p == nil {
		return fmt.Errorf("%w: pipeline is nil", ErrInvalidArgument)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, provider := range providers {
		if provider == nil {
			return fmt.Errorf("%w: provider is nil", ErrInvalidArgument)
		}
		name := strings.TrimSpace(provider.Name())
		if name == "" {
			return errors.New("provider: provider name is required")
		}
		for _, existing := range p.entries {
			if existing.name == name {
				return fmt.Errorf("provider: %q already registered", name)
			}
		}
		p.entries = append(p.entries, entry{
			provider: provider,
			name:     name,
			order:    provider.Order(),
			seq:      len(p.entries),
		})
	}
	return nil
}

// Providers returns the registered providers in execution order.
func (p *Pipeline) Providers() []Provider {
	entries := p.sorted()
	out := make([]Provider, len(entries))
	for idx, e := range entries {
		out[idx] = e.provider
	}
	return out
}

func (p *Pipeline) sorted() []entry {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	entries := append([]entry(nil), p.entries...)
	p.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].order == entries[j].order {
			return entries[i].seq < entries[j].seq
		}
		return entries[i].order < entries[j].order
	})
	return entries
}

// Run executes one compilation pass: it creates a fresh Results collection and
// invokes every provider once, in order. The first provider error aborts the
// pass. Cancellation is checked between providers.
func (p *Pipeline) Run(ctx context.Context, cfg *config.Config) (*descriptor.Results, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: context is required", ErrInvalidArgument)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: pipeline is nil", ErrInvalidArgument)
	}

	results := descriptor.NewResults()
	pass := &Context{Results: results, Config: cfg}

	for _, e := range p.sorted() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("provider: pass cancelled before %q: %w", e.name, err)
		}
		before := results.Len()
		if err := e.provider.Execute(pass); err != nil {
			return nil, fmt.Errorf("provider: %q: %w", e.name, err)
		}
		p.logf("provider %s (order %d) published %d descriptor(s)", e.name, e.order, results.Len()-before)
	}
	return results, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Printf(format, args...)
}
