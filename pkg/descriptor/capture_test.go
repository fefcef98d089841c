package descriptor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCapture_BindDictionary(t *testing.T) {
	d := bindFixture()
	el := Element{
		TagName: "input",
		Attributes: []Attribute{
			{Name: "type", Value: "text"},
			{Name: "bind-value", Value: "@x"},
			{Name: "bind-value-changed", Value: "@setX"},
			{Name: "bind", Value: "@ignored"},
			{Name: "bind-", Value: "@ignored"},
		},
	}

	got := d.BoundAttributes[0].Capture(el)
	want := map[string]string{"value": "@x", "value-changed": "@setX"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("capture mismatch (-want +got):\n%s", diff)
	}
}

func TestCapture_FirstOccurrenceWins(t *testing.T) {
	attr := bindFixture().BoundAttributes[0]
	el := Element{
		TagName: "input",
		Attributes: []Attribute{
			{Name: "bind-value", Value: "@first"},
			{Name: "bind-value", Value: "@second"},
		},
	}
	if got := attr.Capture(el)["value"]; got != "@first" {
		t.Fatalf("want @first, got %q", got)
	}
}

func TestCapture_CaseHandling(t *testing.T) {
	attr := bindFixture().BoundAttributes[0]
	el := Element{TagName: "input", Attributes: []Attribute{{Name: "Bind-Value", Value: "@x"}}}

	if diff := cmp.Diff(map[string]string{"Value": "@x"}, attr.Capture(el)); diff != "" {
		t.Fatalf("case-insensitive capture mismatch (-want +got):\n%s", diff)
	}
	if got := attr.Capture(el, WithCaseSensitive()); len(got) != 0 {
		t.Fatalf("case-sensitive capture should be empty, got %v", got)
	}
}

func TestCapture_NonDictionary(t *testing.T) {
	attr := BoundAttribute{Name: "Value", TypeName: "string"}
	if got := attr.Capture(element("input", "bind-value")); got != nil {
		t.Fatalf("expected nil capture for plain attribute, got %v", got)
	}
}

func TestCaptureAll(t *testing.T) {
	d := bindFixture()
	d.BoundAttributes = append(d.BoundAttributes, BoundAttribute{Name: "Plain", TypeName: "string"})

	got, err := CaptureAll(&d, Element{
		TagName:    "input",
		Attributes: []Attribute{{Name: "bind-checked", Value: "@done"}},
	})
	if err != nil {
		t.Fatalf("capture all: %v", err)
	}
	want := map[string]map[string]string{"Bind": {"checked": "@done"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("capture all mismatch (-want +got):\n%s", diff)
	}

	if _, err := CaptureAll(nil, Element{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
