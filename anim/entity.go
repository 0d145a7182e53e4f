package anim

// Entity identifies an object inside a Universe. The raw index is the
// persisted identity; the universe pointer binds it to a live scene graph.
type Entity struct {
	Index    int32
	Universe *Universe
}

// InvalidEntity is the zero-value-adjacent sentinel for "no entity".
var InvalidEntity = Entity{Index: -1}

// IsValid reports whether the entity refers to a live universe slot.
func (e Entity) IsValid() bool {
	return e.Index >= 0 && e.Universe != nil
}

// Equal compares entities by raw index within the same universe.
func (e Entity) Equal(other Entity) bool {
	return e.Index == other.Index && e.Universe == other.Universe
}
