package provider_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/goliatone/go-bindgen/pkg/config"
	"github.com/goliatone/go-bindgen/pkg/descriptor"
	"github.com/goliatone/go-bindgen/pkg/provider"
	"github.com/goliatone/go-bindgen/pkg/testsupport"
)

func TestComponentProvider_OrderClamped(t *testing.T) {
	p := provider.NewComponentProvider(provider.WithComponentOrder(2000))
	if p.Order() != config.MaxComponentOrder {
		t.Fatalf("expected order clamped to %d, got %d", config.MaxComponentOrder, p.Order())
	}

	pipeline := provider.NewPipeline()
	if err := pipeline.Register(provider.NewBindProvider()); err != nil {
		t.Fatalf("register bind: %v", err)
	}
	if err := pipeline.Register(p); err != nil {
		t.Fatalf("register component: %v", err)
	}
	providers := pipeline.Providers()
	if len(providers) != 2 || providers[0].Name() != "component" || providers[1].Name() != "bind" {
		t.Fatalf("expected component before bind, got %v", providers)
	}
}

func TestOrder_BindRunsAfterComponents(t *testing.T) {
	if provider.OrderBind <= provider.OrderComponent {
		t.Fatalf("bind order %d must exceed component order %d", provider.OrderBind, provider.OrderComponent)
	}
	rapid.Check(t, func(t *rapid.T) {
		cfg := &config.Config{ComponentOrder: rapid.IntRange(math.MinInt32, config.MaxComponentOrder).Draw(t, "order")}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
		component := provider.NewComponentProvider(provider.WithComponentOrder(cfg.ComponentOrder))
		if provider.NewBindProvider().Order() <= component.Order() {
			t.Fatalf("bind order %d not after component order %d", provider.OrderBind, component.Order())
		}
	})
}

func TestPipeline_OrdersProviders(t *testing.T) {
	var calls []string
	record := func(name string, order int) provider.Provider {
		return provider.Func{
			ProviderName:  name,
			ProviderOrder: order,
			Fn: func(*provider.Context) error {
				calls = append(calls, name)
				return nil
			},
		}
	}

	p := provider.NewPipeline()
	if err := p.Register(
		record("late", 50),
		record("first-tie", 10),
		record("early", -5),
		record("second-tie", 10),
	); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := p.Run(testsupport.Context(), config.Default()); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "early,first-tie,second-tie,late"
	if got := strings.Join(calls, ","); got != want {
		t.Fatalf("execution order: want %s, got %s", want, got)
	}
}

func TestPipeline_RegisterErrors(t *testing.T) {
	p := provider.NewPipeline()
	if err := p.Register(nil); !errors.Is(err, provider.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := p.Register(provider.Func{ProviderName: " "}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := p.Register(provider.NewBindProvider()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := p.Register(provider.NewBindProvider()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestDefaultPipeline_Run(t *testing.T) {
	cfg := &config.Config{
		ComponentOrder: 25,
		Components: []config.ComponentDefinition{
			{Name: "Counter", Properties: []config.PropertyDefinition{
				{Name: "Value", Type: "int"},
				{Name: "ValueChanged", Type: "func(int)"},
			}},
			{Name: "Toggle", TagName: "x-toggle"},
		},
	}

	var logs bytes.Buffer
	p, err := provider.DefaultPipeline(cfg, provider.WithLogger(log.New(&logs, "", 0)))
	if err != nil {
		t.Fatalf("default pipeline: %v", err)
	}

	providers := p.Providers()
	if len(providers) != 2 || providers[0].Name() != "component" || providers[1].Name() != "bind" {
		t.Fatalf("unexpected provider order: %v", providers)
	}

	results, err := p.Run(testsupport.Context(), cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var kinds []string
	for _, d := range results.All() {
		kinds = append(kinds, d.Name+":"+d.Kind.String())
	}
	want := "Counter:Component,Toggle:Component,Bind:Bind"
	if got := strings.Join(kinds, ","); got != want {
		t.Fatalf("results: want %s, got %s", want, got)
	}

	matches := results.Matching(descriptor.Element{
		TagName:    "counter",
		Attributes: []descriptor.Attribute{{Name: "bind-Value", Value: "@count"}},
	})
	if len(matches) != 2 || matches[0].Name != "Counter" || matches[1].Name != "Bind" {
		t.Fatalf("expected component then bind match, got %+v", matches)
	}

	if !strings.Contains(logs.String(), "provider component (order 25) published 2 descriptor(s)") ||
		!strings.Contains(logs.String(), "provider bind (order 1000) published 1 descriptor(s)") {
		t.Fatalf("unexpected log output:\n%s", logs.String())
	}
}

func TestDefaultPipeline_InvalidConfig(t *testing.T) {
	if _, err := provider.DefaultPipeline(nil); !errors.Is(err, provider.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	_, err := provider.DefaultPipeline(&config.Config{ComponentOrder: provider.OrderBind})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPipeline_RunFreshResultsPerPass(t *testing.T) {
	p, err := provider.DefaultPipeline(config.Default())
	if err != nil {
		t.Fatalf("default pipeline: %v", err)
	}
	first, err := p.Run(testsupport.Context(), config.Default())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := p.Run(testsupport.Context(), config.Default())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first == second || first.Len() != 1 || second.Len() != 1 {
		t.Fatalf("expected independent single-entry passes, got %d and %d", first.Len(), second.Len())
	}
}

func TestPipeline_RunErrors(t *testing.T) {
	boom := errors.New("boom")
	p := provider.NewPipeline()
	if err := p.Register(
		provider.Func{ProviderName: "failing", ProviderOrder: 1, Fn: func(*provider.Context) error { return boom }},
		provider.NewBindProvider(),
	); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := p.Run(testsupport.Context(), nil); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}

	var nilCtx context.Context
	if _, err := p.Run(nilCtx, nil); !errors.Is(err, provider.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	cancelled, cancel := context.WithCancel(testsupport.Context())
	cancel()
	if _, err := p.Run(cancelled, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestComponentProvider(t *testing.T) {
	ctx := &provider.Context{
		Results: descriptor.NewResults(),
		Config: &config.Config{Components: []config.ComponentDefinition{
			{Name: "Counter", Documentation: "Counts.", Properties: []config.PropertyDefinition{{Name: "Value", Type: "int"}}},
		}},
	}
	if err := provider.NewComponentProvider().Execute(ctx); err != nil {
		t.Fatalf("execute: %v", err)
	}
	d, ok := ctx.Results.At(0)
	if !ok {
		t.Fatalf("no descriptor published")
	}
	if isComponent, _ := descriptor.IsComponent(&d); !isComponent {
		t.Fatalf("expected component descriptor, got %v", d.Kind)
	}
	if d.TagMatchingRules[0].TagName != "Counter" || d.BoundAttributes[0].TypeName != "int" {
		t.Fatalf("unexpected descriptor: %+v", d)
	}
	if d.Metadata[descriptor.MetadataComponentType] != "Counter" {
		t.Fatalf("component type metadata missing: %v", d.Metadata)
	}

	if err := provider.NewComponentProvider().Execute(&provider.Context{Results: descriptor.NewResults()}); err != nil {
		t.Fatalf("nil config should publish nothing: %v", err)
	}
	if err := provider.NewComponentProvider().Execute(nil); !errors.Is(err, provider.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestComponentProvider_InvalidDefinitionAppendsNothing(t *testing.T) {
	ctx := &provider.Context{
		Results: descriptor.NewResults(),
		Config: &config.Config{Components: []config.ComponentDefinition{
			{Name: "Counter"},
			{Name: ""},
		}},
	}
	if err := provider.NewComponentProvider().Execute(ctx); !errors.Is(err, descriptor.ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
	if ctx.Results.Len() != 0 {
		t.Fatalf("partial results published: %d", ctx.Results.Len())
	}
}
