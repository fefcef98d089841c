package report

import (
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

// catalogView is converted to a template context through JSON, so numbers are
// passed as strings to keep them printed as integers.
func catalogView(descriptors []descriptor.Descriptor) map[string]any {
	items := make([]map[string]any, 0, len(descriptors))
	for _, d := range descriptors {
		items = append(items, descriptorView(d))
	}
	return map[string]any{
		"descriptors": items,
		"count":       strconv.Itoa(len(items)),
	}
}

func descriptorView(d descriptor.Descriptor) map[string]any {
	rules := make([]map[string]any, 0, len(d.TagMatchingRules))
	for _, rule := range d.TagMatchingRules {
		attrs := make([]string, 0, len(rule.Attributes))
		for _, attr := range rule.Attributes {
			attrs = append(attrs, requiredAttributeLabel(attr))
		}
		rules = append(rules, map[string]any{
			"tag":        rule.TagName,
			"attributes": attrs,
		})
	}

	bound := make([]map[string]any, 0, len(d.BoundAttributes))
	for _, attr := range d.BoundAttributes {
		entry := map[string]any{
			"name": attr.Name,
			"type": attr.TypeName,
		}
		if attr.Dictionary != nil {
			entry["prefix"] = attr.Dictionary.Prefix
			entry["value_type"] = attr.Dictionary.ValueType
		}
		bound = append(bound, entry)
	}

	keys := make([]string, 0, len(d.Metadata))
	for key := range d.Metadata {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	metadata := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		metadata = append(metadata, map[string]any{"key": key, "value": d.Metadata[key]})
	}

	name := d.DisplayName
	if strings.TrimSpace(name) == "" {
		name = d.Name
	}
	return map[string]any{
		"name":          name,
		"kind":          d.Kind.String(),
		"kind_class":    strings.ToLower(d.Kind.String()),
		"documentation": strings.TrimSpace(d.Documentation),
		"rules":         rules,
		"bound":         bound,
		"metadata":      metadata,
	}
}

func requiredAttributeLabel(attr descriptor.RequiredAttribute) string {
	if attr.Comparison == descriptor.PrefixMatch {
		return attr.Name + "*"
	}
	return attr.Name
}
