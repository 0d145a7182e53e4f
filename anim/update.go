package anim

import "math"

// Update advances the table by dt seconds. For every live slot with a ready
// clip: sample the pose into the renderer's buffer when the binding is
// valid, then advance time if the slot auto-advances, wrapping into
// [0, length). Slots whose clip is still loading are skipped whole - no
// pose write, no time advance - and retried implicitly next tick. The scan
// touches every slot, so update cost is bounded by table size, not live
// count.
func (s *AnimationScene) Update(dt float32) {
	for i := range s.slots {
		slot := &s.slots[i]
		if slot.free || slot.clip == nil || !slot.clip.IsReady() {
			continue
		}
		if slot.renderable.IsValid() {
			if pose := s.renderables.Pose(slot.renderable); pose != nil {
				s.sampler.Sample(slot.clip, slot.time, s.renderables.Skeleton(slot.renderable), pose)
			}
		}
		if slot.autoAdvance {
			slot.time = wrapTime(slot.time+dt, slot.clip.Length())
		}
	}
}

// wrapTime reduces t into [0, length). Remainder instead of a subtraction
// loop: same result for all finite inputs, bounded cost for pathological
// dt, and a boundary-exact t maps to 0 rather than sticking at length.
func wrapTime(t, length float32) float32 {
	if length <= 0 {
		return 0
	}
	if t >= 0 && t < length {
		return t
	}
	m := math.Mod(float64(t), float64(length))
	if m < 0 {
		m += float64(length)
	}
	return float32(m)
}
