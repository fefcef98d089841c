// Package provider runs descriptor providers for one compilation pass. A
// Pipeline orders providers by ascending Order (ties keep registration order),
// hands each one the shared append-only Results collection exactly once, and
// returns the collection for the lowering stage.
//
// Two providers ship with the package. ComponentProvider publishes component
// descriptors from configuration. BindProvider publishes the generic two-way
// binding macro descriptor, matching any element that carries a "bind-"
// prefixed attribute and capturing each such attribute as a dictionary entry.
// Element- or component-specific bind inference is left to later stages.
package provider
