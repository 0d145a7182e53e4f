package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/animkit/anim"
)

func readyClip(t *testing.T, data *anim.ClipData) *anim.Clip {
	t.Helper()
	source := newFakeSource()
	source.clips["clip.anim"] = data
	rm := anim.NewResourceManager(source)
	clip := rm.Request(anim.ResourceAnimation, "clip.anim")
	rm.ProcessQueue()
	require.True(t, clip.IsReady())
	return clip
}

func TestNewPoseIdentity(t *testing.T) {
	pose := anim.NewPose(testSkeleton())

	require.Len(t, pose.Translations, 3)
	require.Len(t, pose.Rotations, 3)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, pose.Rotations[0])
}

func TestLinearSamplerInterpolates(t *testing.T) {
	clip := readyClip(t, &anim.ClipData{
		Length: 2.0,
		FPS:    30,
		Tracks: []anim.BoneTrack{
			{
				Bone: "root",
				Keys: []anim.Keyframe{
					{Time: 0, Translation: [3]float32{0, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}},
					{Time: 2, Translation: [3]float32{4, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}},
				},
			},
		},
	})

	skeleton := testSkeleton()
	pose := anim.NewPose(skeleton)
	anim.LinearSampler{}.Sample(clip, 0.5, skeleton, pose)

	assert.InDelta(t, 1.0, pose.Translations[0][0], 1e-5)
}

func TestLinearSamplerClampsOutsideKeyRange(t *testing.T) {
	clip := readyClip(t, &anim.ClipData{
		Length: 2.0,
		FPS:    30,
		Tracks: []anim.BoneTrack{
			{
				Bone: "root",
				Keys: []anim.Keyframe{
					{Time: 0.5, Translation: [3]float32{1, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}},
					{Time: 1.5, Translation: [3]float32{3, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}},
				},
			},
		},
	})

	skeleton := testSkeleton()
	pose := anim.NewPose(skeleton)

	anim.LinearSampler{}.Sample(clip, 0, skeleton, pose)
	assert.Equal(t, float32(1), pose.Translations[0][0])

	anim.LinearSampler{}.Sample(clip, 2.0, skeleton, pose)
	assert.Equal(t, float32(3), pose.Translations[0][0])
}

func TestLinearSamplerIgnoresUnknownBones(t *testing.T) {
	clip := readyClip(t, &anim.ClipData{
		Length: 1.0,
		FPS:    30,
		Tracks: []anim.BoneTrack{
			{Bone: "tail", Keys: []anim.Keyframe{{Time: 0, Translation: [3]float32{9, 9, 9}}}},
		},
	})

	skeleton := testSkeleton()
	pose := anim.NewPose(skeleton)
	anim.LinearSampler{}.Sample(clip, 0.5, skeleton, pose)

	for _, tr := range pose.Translations {
		assert.Equal(t, [3]float32{0, 0, 0}, tr)
	}
}

func TestLinearSamplerNormalizesRotation(t *testing.T) {
	clip := readyClip(t, &anim.ClipData{
		Length: 1.0,
		FPS:    30,
		Tracks: []anim.BoneTrack{
			{
				Bone: "root",
				Keys: []anim.Keyframe{
					{Time: 0, Rotation: [4]float32{1, 0, 0, 0}},
					{Time: 1, Rotation: [4]float32{0, 0, 0, 1}},
				},
			},
		},
	})

	skeleton := testSkeleton()
	pose := anim.NewPose(skeleton)
	anim.LinearSampler{}.Sample(clip, 0.5, skeleton, pose)

	q := pose.Rotations[0]
	norm := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	assert.InDelta(t, 1.0, norm, 1e-5)
}
