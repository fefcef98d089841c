package descriptor

import "fmt"

// Capture collects the element attributes claimed by a dictionary-capturing
// bound attribute, keyed by the name remainder after the prefix. Attributes
// equal to the bare prefix are skipped and the first occurrence of a key wins.
// Capture returns nil when the attribute is not a dictionary.
func (b BoundAttribute) Capture(el Element, opts ...MatchOption) map[string]string {
	if b.Dictionary == nil {
		return nil
	}
	cfg := newMatchConfig(opts)
	prefix := b.Dictionary.Prefix
	out := make(map[string]string)
	for _, attr := range el.Attributes {
		if len(attr.Name) <= len(prefix) || !cfg.hasPrefix(attr.Name, prefix) {
			continue
		}
		key := attr.Name[len(prefix):]
		if _, exists := out[key]; exists {
			continue
		}
		out[key] = attr.Value
	}
	return out
}

// CaptureAll runs Capture for every dictionary attribute on d, keyed by bound
// attribute name. Non-dictionary attributes are omitted.
func CaptureAll(d *Descriptor, el Element, opts ...MatchOption) (map[string]map[string]string, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: descriptor is nil", ErrInvalidArgument)
	}
	out := make(map[string]map[string]string)
	for _, attr := range d.BoundAttributes {
		if !attr.IsDictionary() {
			continue
		}
		out[attr.Name] = attr.Capture(el, opts...)
	}
	return out, nil
}
