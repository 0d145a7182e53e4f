package anim_test

import (
	"fmt"

	"github.com/plus3/animkit/anim"
)

// fakeSource serves clip data from memory. Paths without an entry fail to
// load; readiness is controlled by when the test drains the manager queue.
type fakeSource struct {
	clips map[string]*anim.ClipData
}

func newFakeSource() *fakeSource {
	return &fakeSource{clips: make(map[string]*anim.ClipData)}
}

func (s *fakeSource) add(path string, length, fps float32) {
	s.clips[path] = &anim.ClipData{
		Length:     length,
		FPS:        fps,
		FrameCount: int(length * fps),
		Tracks: []anim.BoneTrack{
			{
				Bone: "root",
				Keys: []anim.Keyframe{
					{Time: 0, Translation: [3]float32{0, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}},
					{Time: length, Translation: [3]float32{1, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}},
				},
			},
		},
	}
}

func (s *fakeSource) LoadClip(path string) (*anim.ClipData, error) {
	data, ok := s.clips[path]
	if !ok {
		return nil, fmt.Errorf("no clip %q", path)
	}
	return data, nil
}

// countingSampler records every Sample call.
type countingSampler struct {
	calls int
	times []float32
}

func (cs *countingSampler) Sample(clip *anim.Clip, t float32, skeleton *anim.Skeleton, pose *anim.Pose) {
	cs.calls++
	cs.times = append(cs.times, t)
}

// rig wires up a universe, render scene, resource manager, and animation
// scene the way a host engine would.
type rig struct {
	universe *anim.Universe
	render   *anim.RenderScene
	source   *fakeSource
	system   *anim.AnimationSystem
	scene    *anim.AnimationScene
}

func newRig() *rig {
	source := newFakeSource()
	source.add("walk.anim", 2.0, 30)
	source.add("idle.anim", 4.0, 24)

	universe := anim.NewUniverse()
	render := anim.NewRenderScene(universe)
	system := anim.NewAnimationSystem(anim.NewResourceManager(source))
	scene := system.CreateScene(universe, render)

	return &rig{
		universe: universe,
		render:   render,
		source:   source,
		system:   system,
		scene:    scene,
	}
}

func testSkeleton() *anim.Skeleton {
	return &anim.Skeleton{
		Bones:   []string{"root", "spine", "head"},
		Parents: []int32{-1, 0, 1},
	}
}

// spawnAnimated creates an entity with both a renderable and an animation
// slot, with the clip already loaded and ready.
func (r *rig) spawnAnimated(path string) anim.Handle {
	e := r.universe.CreateEntity()
	r.render.CreateRenderable(e, testSkeleton())
	h := r.scene.CreateAnimable(e)
	r.scene.Assign(h, path)
	r.system.Resources().ProcessQueue()
	return h
}
