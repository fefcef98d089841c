package descriptor

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func element(tag string, names ...string) Element {
	el := Element{TagName: tag}
	for _, name := range names {
		el.Attributes = append(el.Attributes, Attribute{Name: name, Value: "@" + name})
	}
	return el
}

func TestMatch_BindRule(t *testing.T) {
	d := bindFixture()

	cases := []struct {
		name string
		el   Element
		opts []MatchOption
		want bool
	}{
		{name: "bind-value on input", el: element("input", "type", "bind-value"), want: true},
		{name: "bind-value-changed on div", el: element("div", "bind-value-changed"), want: true},
		{name: "custom element", el: element("MyCounter", "bind-Count"), want: true},
		{name: "bare bind", el: element("input", "bind"), want: false},
		{name: "bare prefix", el: element("input", "bind-"), want: false},
		{name: "no attributes", el: element("input"), want: false},
		{name: "unrelated attribute", el: element("input", "value", "onchange"), want: false},
		{name: "upper case prefix", el: element("input", "BIND-value"), want: true},
		{
			name: "upper case prefix case sensitive",
			el:   element("input", "BIND-value"),
			opts: []MatchOption{WithCaseSensitive()},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Match(&d, tc.el, tc.opts...)
			if err != nil {
				t.Fatalf("match: %v", err)
			}
			if got != tc.want {
				t.Fatalf("match %+v: want %v, got %v", tc.el, tc.want, got)
			}
		})
	}
}

func TestMatch_AnyTagProperty(t *testing.T) {
	d := bindFixture()
	rapid.Check(t, func(t *rapid.T) {
		tag := rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9-]{0,15}`).Draw(t, "tag")
		suffix := rapid.StringMatching(`[a-z][a-z-]{0,15}`).Draw(t, "suffix")

		got, err := Match(&d, element(tag, "class", BindAttributePrefix+suffix), WithCaseSensitive())
		if err != nil {
			t.Fatalf("match: %v", err)
		}
		if !got {
			t.Fatalf("expected %q on <%s> to match", BindAttributePrefix+suffix, tag)
		}
	})
}

func TestMatch_TagAndAttributes(t *testing.T) {
	rule := TagMatchingRule{
		TagName: "Counter",
		Attributes: []RequiredAttribute{
			{Name: "Value"},
			{Name: "on-", Comparison: PrefixMatch},
		},
	}

	if !rule.Matches(element("counter", "value", "on-change")) {
		t.Fatalf("expected case-insensitive tag and attribute match")
	}
	if rule.Matches(element("counter", "value", "on-change"), WithCaseSensitive()) {
		t.Fatalf("expected case-sensitive comparison to reject lower-case names")
	}
	if rule.Matches(element("Counter", "Value")) {
		t.Fatalf("expected missing prefixed attribute to reject the element")
	}
	if rule.Matches(element("Other", "Value", "on-change")) {
		t.Fatalf("expected tag mismatch to reject the element")
	}
}

func TestMatch_AnyRuleApplies(t *testing.T) {
	d := componentFixture("Counter")
	d.TagMatchingRules = append(d.TagMatchingRules, TagMatchingRule{TagName: "x-counter"})

	ok, err := Match(&d, element("x-counter"))
	if err != nil || !ok {
		t.Fatalf("expected second rule to match, got %v (err=%v)", ok, err)
	}
}

func TestMatch_NilDescriptor(t *testing.T) {
	if _, err := Match(nil, element("input")); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRequiredAttribute_Exact(t *testing.T) {
	attr := RequiredAttribute{Name: "bind"}
	if !attr.Matches("bind") || !attr.Matches("Bind") {
		t.Fatalf("expected exact match regardless of case")
	}
	if attr.Matches("bind-value") {
		t.Fatalf("exact match must not accept longer names")
	}
}
