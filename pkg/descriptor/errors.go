package descriptor

import "errors"

var (
	// ErrInvalidArgument signals a caller contract violation such as a nil
	// descriptor, context, or collection.
	ErrInvalidArgument = errors.New("descriptor: invalid argument")
	// ErrInvalidDescriptor is returned when a descriptor breaks one of its
	// structural invariants.
	ErrInvalidDescriptor = errors.New("descriptor: invalid descriptor")
)
