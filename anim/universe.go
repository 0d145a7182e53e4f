package anim

import (
	"github.com/kamstrup/intmap"
)

// ComponentObserver receives component-created notifications from a Universe.
// Observers are invoked synchronously on the simulation thread, in
// registration order.
type ComponentObserver interface {
	ComponentCreated(h Handle)
}

// Universe is the scene-graph substrate: it allocates entities and keeps the
// entity-component association table that scenes register their components
// in. It is single-threaded, like everything else in this module.
type Universe struct {
	next      int32
	freeList  []int32
	alive     map[int32]struct{}
	byKind    *intmap.Map[uint64, Handle]
	observers []ComponentObserver
}

// NewUniverse creates an empty universe.
func NewUniverse() *Universe {
	return &Universe{
		alive:  make(map[int32]struct{}),
		byKind: intmap.New[uint64, Handle](64),
	}
}

func assocKey(entity int32, kind ComponentKind) uint64 {
	return uint64(uint32(entity))<<8 | uint64(kind)
}

// CreateEntity allocates an entity, reusing a freed index when one exists.
func (u *Universe) CreateEntity() Entity {
	var idx int32
	if n := len(u.freeList); n > 0 {
		idx = u.freeList[n-1]
		u.freeList = u.freeList[:n-1]
	} else {
		idx = u.next
		u.next++
	}
	u.alive[idx] = struct{}{}
	return Entity{Index: idx, Universe: u}
}

// DestroyEntity frees the entity's index and drops its component
// associations. Scenes own their component slots and are responsible for
// destroying them first.
func (u *Universe) DestroyEntity(e Entity) {
	if _, ok := u.alive[e.Index]; !ok {
		return
	}
	delete(u.alive, e.Index)
	u.freeList = append(u.freeList, e.Index)
	for kind := KindRenderable; kind <= KindAnimable; kind++ {
		u.byKind.Del(assocKey(e.Index, kind))
	}
}

// IsAlive reports whether the entity index is currently allocated.
func (u *Universe) IsAlive(e Entity) bool {
	_, ok := u.alive[e.Index]
	return ok
}

// Rebind returns an entity handle for a raw persisted index, bound to this
// universe. The index is registered as alive if it was not already, and is
// withdrawn from the free list so CreateEntity cannot reissue it.
func (u *Universe) Rebind(index int32) Entity {
	if _, ok := u.alive[index]; !ok {
		u.alive[index] = struct{}{}
		if index >= u.next {
			u.next = index + 1
		}
		for i, free := range u.freeList {
			if free == index {
				u.freeList = append(u.freeList[:i], u.freeList[i+1:]...)
				break
			}
		}
	}
	return Entity{Index: index, Universe: u}
}

// AddComponent records the entity-component association and returns the
// component handle. It does not fire the component-created notification;
// owners decide when (and whether) to notify, so deserialization can
// re-register slots silently.
func (u *Universe) AddComponent(e Entity, kind ComponentKind, owner ComponentOwner, index int, gen uint32) Handle {
	h := Handle{Entity: e, Kind: kind, Owner: owner, Index: index, Gen: gen}
	u.byKind.Put(assocKey(e.Index, kind), h)
	return h
}

// DestroyComponent drops the entity-component association for the handle.
func (u *Universe) DestroyComponent(h Handle) {
	if !h.IsValid() {
		return
	}
	u.byKind.Del(assocKey(h.Entity.Index, h.Kind))
}

// Component returns the registered handle for an entity-kind pair, or
// InvalidHandle.
func (u *Universe) Component(e Entity, kind ComponentKind) Handle {
	if h, ok := u.byKind.Get(assocKey(e.Index, kind)); ok {
		return h
	}
	return InvalidHandle
}

// AddObserver subscribes to component-created notifications.
func (u *Universe) AddObserver(o ComponentObserver) {
	u.observers = append(u.observers, o)
}

// RemoveObserver unsubscribes a previously added observer.
func (u *Universe) RemoveObserver(o ComponentObserver) {
	for i, existing := range u.observers {
		if existing == o {
			u.observers = append(u.observers[:i], u.observers[i+1:]...)
			return
		}
	}
}

// NotifyComponentCreated delivers the handle to every observer.
func (u *Universe) NotifyComponentCreated(h Handle) {
	for _, o := range u.observers {
		o.ComponentCreated(h)
	}
}
