package descriptor

import "fmt"

// IsBind reports whether d describes the two-way binding macro.
func IsBind(d *Descriptor) (bool, error) {
	if d == nil {
		return false, fmt.Errorf("%w: descriptor is nil", ErrInvalidArgument)
	}
	return d.Kind == KindBind, nil
}

// IsComponent reports whether d describes a genuine component, i.e. no
// synthetic macro kind is set.
func IsComponent(d *Descriptor) (bool, error) {
	if d == nil {
		return false, fmt.Errorf("%w: descriptor is nil", ErrInvalidArgument)
	}
	return !d.Kind.Special(), nil
}
