package anim

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// RenderableOwner is the boundary the animation scene sees of the renderer:
// it resolves an entity to its renderable binding and hands out the
// skeleton and pose buffer behind a binding.
type RenderableOwner interface {
	Renderable(e Entity) Handle
	Pose(h Handle) *Pose
	Skeleton(h Handle) *Skeleton
}

type renderable struct {
	entity   Entity
	skeleton *Skeleton
	pose     *Pose
	free     bool
	gen      uint32
}

// RenderScene owns the renderable bindings for a universe: one skeleton and
// pose buffer per entity that has a renderable. Slots follow the same
// discipline as the animation table - indices are stable, freed slots are
// reused, never compacted.
type RenderScene struct {
	universe    *Universe
	renderables []renderable
	byEntity    *intmap.Map[int32, int]
}

// NewRenderScene creates an empty render scene bound to the universe.
func NewRenderScene(u *Universe) *RenderScene {
	return &RenderScene{
		universe: u,
		byEntity: intmap.New[int32, int](64),
	}
}

// OwnsKind reports whether the scene manages the component kind.
func (rs *RenderScene) OwnsKind(kind ComponentKind) bool {
	return kind == KindRenderable
}

// CreateRenderable allocates a renderable binding for the entity with the
// given skeleton, registers it with the universe, and fires the
// component-created notification that late-binding animation slots listen
// for.
func (rs *RenderScene) CreateRenderable(e Entity, skeleton *Skeleton) Handle {
	idx := -1
	for i := range rs.renderables {
		if rs.renderables[i].free {
			idx = i
			break
		}
	}
	if idx < 0 {
		rs.renderables = append(rs.renderables, renderable{})
		idx = len(rs.renderables) - 1
	}
	r := &rs.renderables[idx]
	r.entity = e
	r.skeleton = skeleton
	r.pose = NewPose(skeleton)
	r.free = false

	rs.byEntity.Put(e.Index, idx)
	h := rs.universe.AddComponent(e, KindRenderable, rs, idx, r.gen)
	rs.universe.NotifyComponentCreated(h)
	return h
}

// DestroyRenderable frees the binding's slot and drops the universe
// association. The slot index stays valid for other live handles.
func (rs *RenderScene) DestroyRenderable(h Handle) {
	r := rs.slot(h)
	if r == nil {
		return
	}
	r.free = true
	r.gen++
	rs.byEntity.Del(h.Entity.Index)
	rs.universe.DestroyComponent(h)
}

// Renderable returns the binding handle for the entity, or InvalidHandle.
func (rs *RenderScene) Renderable(e Entity) Handle {
	idx, ok := rs.byEntity.Get(e.Index)
	if !ok {
		return InvalidHandle
	}
	r := &rs.renderables[idx]
	if r.free {
		return InvalidHandle
	}
	return Handle{Entity: e, Kind: KindRenderable, Owner: rs, Index: idx, Gen: r.gen}
}

// Pose returns the pose buffer behind a binding, or nil for a stale handle.
func (rs *RenderScene) Pose(h Handle) *Pose {
	if r := rs.slot(h); r != nil {
		return r.pose
	}
	return nil
}

// Skeleton returns the skeleton behind a binding, or nil for a stale handle.
func (rs *RenderScene) Skeleton(h Handle) *Skeleton {
	if r := rs.slot(h); r != nil {
		return r.skeleton
	}
	return nil
}

// Renderables iterates over the live bindings as (index, entity) pairs.
func (rs *RenderScene) Renderables() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		for i := range rs.renderables {
			if rs.renderables[i].free {
				continue
			}
			if !yield(i, rs.renderables[i].entity) {
				return
			}
		}
	}
}

func (rs *RenderScene) slot(h Handle) *renderable {
	if !h.IsValid() || h.Kind != KindRenderable || h.Index >= len(rs.renderables) {
		return nil
	}
	r := &rs.renderables[h.Index]
	if r.free || r.gen != h.Gen {
		return nil
	}
	return r
}
