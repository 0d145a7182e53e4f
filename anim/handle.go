package anim

// ComponentKind is the closed set of component types this module routes on.
// Dispatch is by enum, not by hashed type name - the full set is known at
// compile time.
type ComponentKind uint8

const (
	KindInvalid ComponentKind = iota
	KindRenderable
	KindAnimable
)

// String returns the kind's registered name.
func (k ComponentKind) String() string {
	switch k {
	case KindRenderable:
		return "renderable"
	case KindAnimable:
		return "animable"
	default:
		return "invalid"
	}
}

// ComponentOwner is implemented by scenes that own component tables.
type ComponentOwner interface {
	// OwnsKind reports whether this owner manages components of the given kind.
	OwnsKind(kind ComponentKind) bool
}

// Handle addresses one component inside its owning scene. Index is the
// component's stable slot index; it is never compacted, only freed and
// reused. Gen is the slot's generation at handle creation time - owners
// validate it on access so a handle that outlived its slot addresses
// nothing instead of silently aliasing the slot's next occupant.
type Handle struct {
	Entity Entity
	Kind   ComponentKind
	Owner  ComponentOwner
	Index  int
	Gen    uint32
}

// InvalidHandle is returned by lookups that find nothing.
var InvalidHandle = Handle{Kind: KindInvalid, Index: -1}

// IsValid reports whether the handle was produced by a successful create or
// lookup. It does not prove the slot is still live; owners check Gen for that.
func (h Handle) IsValid() bool {
	return h.Index >= 0 && h.Kind != KindInvalid && h.Owner != nil
}
