package anim

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// animable is one slot in the animation table: the playback state for one
// entity. Slot indices are stable handles - a destroyed slot is marked free
// and reused, never compacted away.
type animable struct {
	entity      Entity
	clip        *Clip
	renderable  Handle
	time        float32
	autoAdvance bool
	free        bool
	gen         uint32
}

// AnimationScene owns the animation slot table for one universe: slot
// lifecycle, per-tick playback, and serialization. All operations run on
// the single simulation thread.
type AnimationScene struct {
	system      *AnimationSystem
	universe    *Universe
	resources   *ResourceManager
	renderables RenderableOwner
	sampler     PoseSampler
	slots       []animable
	byEntity    *intmap.Map[int32, int]
}

// NewAnimationScene creates a scene and subscribes it to the universe's
// component-created notifications so renderable bindings resolve regardless
// of creation order. Call Close to unsubscribe when tearing the scene down.
func NewAnimationScene(system *AnimationSystem, u *Universe, renderables RenderableOwner) *AnimationScene {
	s := &AnimationScene{
		system:      system,
		universe:    u,
		resources:   system.Resources(),
		renderables: renderables,
		sampler:     system.Sampler(),
		byEntity:    intmap.New[int32, int](64),
	}
	u.AddObserver(s)
	return s
}

// Close unsubscribes the scene from the universe.
func (s *AnimationScene) Close() {
	s.universe.RemoveObserver(s)
}

// OwnsKind reports whether the scene manages the component kind.
func (s *AnimationScene) OwnsKind(kind ComponentKind) bool {
	return kind == KindAnimable
}

// System returns the plugin that created this scene.
func (s *AnimationScene) System() *AnimationSystem { return s.system }

// Universe returns the scene's universe.
func (s *AnimationScene) Universe() *Universe { return s.universe }

// CreateAnimable allocates an animation slot for the entity, reusing the
// first free slot or appending a new one. The slot starts auto-advancing at
// time zero with no clip. If the entity already has a renderable its
// binding is resolved immediately; otherwise it stays invalid until the
// renderable's creation notification arrives. Creating a second slot for a
// live entity returns the existing handle.
func (s *AnimationScene) CreateAnimable(e Entity) Handle {
	if existing := s.Animable(e); existing.IsValid() {
		return existing
	}

	idx := -1
	for i := range s.slots {
		if s.slots[i].free {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.slots = append(s.slots, animable{})
		idx = len(s.slots) - 1
	}
	slot := &s.slots[idx]
	slot.entity = e
	slot.clip = nil
	slot.renderable = s.renderables.Renderable(e)
	slot.time = 0
	slot.autoAdvance = true
	slot.free = false

	s.byEntity.Put(e.Index, idx)
	h := s.universe.AddComponent(e, KindAnimable, s, idx, slot.gen)
	s.universe.NotifyComponentCreated(h)
	return h
}

// DestroyComponent marks the slot free and drops the universe association.
// The table is not compacted, so other live handles keep their indices; the
// freed slot's generation advances so handles to it go stale instead of
// aliasing the next occupant.
func (s *AnimationScene) DestroyComponent(h Handle) {
	slot := s.slot(h)
	if slot == nil {
		return
	}
	s.resources.Release(slot.clip)
	slot.clip = nil
	slot.free = true
	slot.gen++
	s.byEntity.Del(h.Entity.Index)
	s.universe.DestroyComponent(h)
}

// Animable returns the live slot handle for the entity, or InvalidHandle.
func (s *AnimationScene) Animable(e Entity) Handle {
	idx, ok := s.byEntity.Get(e.Index)
	if !ok {
		return InvalidHandle
	}
	slot := &s.slots[idx]
	if slot.free {
		return InvalidHandle
	}
	return Handle{Entity: e, Kind: KindAnimable, Owner: s, Index: idx, Gen: slot.gen}
}

// Assign resolves the clip path through the resource manager and assigns
// the result to the slot. The request never blocks; readiness is polled at
// update time. Assigning always restarts playback: time resets to zero and
// auto-advance turns on, whatever the prior state. An empty path clears the
// clip.
func (s *AnimationScene) Assign(h Handle, path string) {
	slot := s.slot(h)
	if slot == nil {
		return
	}
	s.resources.Release(slot.clip)
	slot.clip = s.resources.Request(ResourceAnimation, path)
	slot.time = 0
	slot.autoAdvance = true
}

// SetManual switches the slot between externally driven time (manual
// scrubbing) and per-tick auto-advance.
func (s *AnimationScene) SetManual(h Handle, manual bool) {
	if slot := s.slot(h); slot != nil {
		slot.autoAdvance = !manual
	}
}

// IsManual reports whether the slot's time is externally driven.
func (s *AnimationScene) IsManual(h Handle) bool {
	if slot := s.slot(h); slot != nil {
		return !slot.autoAdvance
	}
	return false
}

// Time returns the slot's current playback position in seconds.
func (s *AnimationScene) Time(h Handle) float32 {
	if slot := s.slot(h); slot != nil {
		return slot.time
	}
	return 0
}

// SetTime scrubs the slot to an arbitrary time. No clamping: manual control
// owns the value.
func (s *AnimationScene) SetTime(h Handle, t float32) {
	if slot := s.slot(h); slot != nil {
		slot.time = t
	}
}

// SetFrame positions the slot at a discrete frame using the clip's playback
// rate: time = length * frame / fps. No-op without a ready clip.
func (s *AnimationScene) SetFrame(h Handle, frame int) {
	slot := s.slot(h)
	if slot == nil || slot.clip == nil || !slot.clip.IsReady() {
		return
	}
	if fps := slot.clip.FPS(); fps > 0 {
		slot.time = slot.clip.Length() * float32(frame) / fps
	}
}

// SetAnimationFrame positions the slot at a discrete frame using the clip's
// total frame count: time = length * frame / frameCount. No-op without a
// ready clip. Kept distinct from SetFrame - the two rate bases serve
// different callers.
func (s *AnimationScene) SetAnimationFrame(h Handle, frame int) {
	slot := s.slot(h)
	if slot == nil || slot.clip == nil || !slot.clip.IsReady() {
		return
	}
	if count := slot.clip.FrameCount(); count > 0 {
		slot.time = slot.clip.Length() * float32(frame) / float32(count)
	}
}

// FrameCount returns the assigned clip's frame count, or -1 when the slot
// has no ready clip.
func (s *AnimationScene) FrameCount(h Handle) int {
	slot := s.slot(h)
	if slot == nil || slot.clip == nil || !slot.clip.IsReady() {
		return -1
	}
	return slot.clip.FrameCount()
}

// Preview returns the slot's clip path, or "" when no clip is assigned.
// This is the getter behind the editor's preview property.
func (s *AnimationScene) Preview(h Handle) string {
	slot := s.slot(h)
	if slot == nil || slot.clip == nil {
		return ""
	}
	return slot.clip.Path()
}

// SetPreview assigns a clip by path. Setter behind the editor's preview
// property.
func (s *AnimationScene) SetPreview(h Handle, path string) {
	s.Assign(h, path)
}

// RenderableBinding returns the slot's resolved renderable binding, or
// InvalidHandle while unresolved.
func (s *AnimationScene) RenderableBinding(h Handle) Handle {
	if slot := s.slot(h); slot != nil {
		return slot.renderable
	}
	return InvalidHandle
}

// ComponentCreated reacts to renderable creation: a slot created before its
// entity's renderable picks the binding up here, so the two creation events
// need no ordering between them.
func (s *AnimationScene) ComponentCreated(h Handle) {
	if h.Kind != KindRenderable {
		return
	}
	idx, ok := s.byEntity.Get(h.Entity.Index)
	if !ok {
		return
	}
	slot := &s.slots[idx]
	if !slot.free && !slot.renderable.IsValid() {
		slot.renderable = h
	}
}

// SlotInfo is a read-only snapshot of one table slot, free or live.
type SlotInfo struct {
	Entity      Entity
	ClipPath    string
	ClipReady   bool
	Time        float32
	AutoAdvance bool
	Free        bool
}

// SlotCount returns the table size, counting free slots.
func (s *AnimationScene) SlotCount() int { return len(s.slots) }

// Slots iterates over every table slot as (index, snapshot) pairs. Tooling
// uses this; the hot path does not.
func (s *AnimationScene) Slots() iter.Seq2[int, SlotInfo] {
	return func(yield func(int, SlotInfo) bool) {
		for i := range s.slots {
			slot := &s.slots[i]
			info := SlotInfo{
				Entity:      slot.entity,
				Time:        slot.time,
				AutoAdvance: slot.autoAdvance,
				Free:        slot.free,
			}
			if slot.clip != nil {
				info.ClipPath = slot.clip.Path()
				info.ClipReady = slot.clip.IsReady()
			}
			if !yield(i, info) {
				return
			}
		}
	}
}

// slot validates a handle against the table: kind, bounds, liveness, and
// generation. Stale handles resolve to nil and every operation treats that
// as a no-op.
func (s *AnimationScene) slot(h Handle) *animable {
	if !h.IsValid() || h.Kind != KindAnimable || h.Index >= len(s.slots) {
		return nil
	}
	slot := &s.slots[h.Index]
	if slot.free || slot.gen != h.Gen {
		return nil
	}
	return slot
}
