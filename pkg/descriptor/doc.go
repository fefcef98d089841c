// Package descriptor defines the metadata records a template compiler pass
// publishes so later lowering stages can recognise markup constructs. A
// Descriptor says where it applies (TagMatchingRules) and how attributes are
// bound (BoundAttributes). Kind separates genuine components from synthetic
// macros such as the two-way "bind-" macro; IsBind and IsComponent classify a
// descriptor without re-deriving provider logic.
//
// Descriptors are published into a Results collection that is append-only for
// the lifetime of one compilation pass. Entries are cloned on the way in and on
// the way out so published records cannot be mutated by readers.
package descriptor
