package descriptor

import (
	"fmt"
	"sync"
)

// Results is the append-only descriptor collection shared by every provider
// during one compilation pass. Entries keep their publication order, which
// downstream stages use for tie-breaking (first registered wins). Results is
// safe for concurrent use, but a pass is expected to append from one goroutine.
type Results struct {
	mu    sync.RWMutex
	items []Descriptor
}

// NewResults creates an empty collection for a new pass.
func NewResults() *Results {
	return &Results{}
}

// Append validates d and stores a copy of it. Nothing is stored when
// validation fails.
func (r *Results) Append(d Descriptor) error {
	if r == nil {
		return fmt.Errorf("%w: results collection is nil", ErrInvalidArgument)
	}
	if err := d.Validate(); err != nil {
		return err
	}
	clone := d.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, clone)
	return nil
}

// Len returns the number of published descriptors.
func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// At returns a copy of the descriptor at idx.
func (r *Results) At(idx int) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx < 0 || idx >= len(r.items) {
		return Descriptor{}, false
	}
	return r.items[idx].Clone(), true
}

// All returns copies of every descriptor in publication order.
func (r *Results) All() []Descriptor {
	return r.Filter(nil)
}

// Filter returns copies of the descriptors accepted by keep, in publication
// order. A nil keep accepts everything.
func (r *Results) Filter(keep func(Descriptor) bool) []Descriptor {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	snapshot := make([]Descriptor, 0, len(r.items))
	for _, item := range r.items {
		snapshot = append(snapshot, item.Clone())
	}
	r.mu.RUnlock()

	// keep runs unlocked so it may call back into r.
	if keep == nil {
		return snapshot
	}
	out := snapshot[:0]
	for _, item := range snapshot {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// OfKind returns the descriptors tagged with kind.
func (r *Results) OfKind(kind Kind) []Descriptor {
	return r.Filter(func(d Descriptor) bool { return d.Kind == kind })
}

// Matching returns the descriptors that apply to el, in publication order.
func (r *Results) Matching(el Element, opts ...MatchOption) []Descriptor {
	cfg := newMatchConfig(opts)
	return r.Filter(func(d Descriptor) bool { return d.matches(el, cfg) })
}
