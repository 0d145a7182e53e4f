package anim

import "math"

// Skeleton describes the bone set of a renderable model.
type Skeleton struct {
	Bones   []string
	Parents []int32
}

// BoneCount returns the number of bones.
func (s *Skeleton) BoneCount() int { return len(s.Bones) }

// Pose holds one transform per skeleton bone. It is owned by the render
// scene and mutated in place by the sampler during the animation update
// pass; the animation core assumes exclusive write access for the duration
// of that pass.
type Pose struct {
	Translations [][3]float32
	Rotations    [][4]float32
}

// NewPose allocates an identity pose sized for the skeleton.
func NewPose(skeleton *Skeleton) *Pose {
	n := skeleton.BoneCount()
	p := &Pose{
		Translations: make([][3]float32, n),
		Rotations:    make([][4]float32, n),
	}
	for i := range p.Rotations {
		p.Rotations[i][3] = 1
	}
	return p
}

// PoseSampler computes a pose from a clip at a point in time. The animation
// scene treats it as a black box.
type PoseSampler interface {
	Sample(clip *Clip, t float32, skeleton *Skeleton, pose *Pose)
}

// LinearSampler is the default PoseSampler: it matches clip tracks to
// skeleton bones by name and interpolates between the two bracketing
// keyframes. Rotations use normalized lerp.
type LinearSampler struct{}

func (LinearSampler) Sample(clip *Clip, t float32, skeleton *Skeleton, pose *Pose) {
	for _, track := range clip.Tracks() {
		bone := -1
		for i, name := range skeleton.Bones {
			if name == track.Bone {
				bone = i
				break
			}
		}
		if bone < 0 || bone >= len(pose.Translations) || len(track.Keys) == 0 {
			continue
		}
		pose.Translations[bone], pose.Rotations[bone] = sampleTrack(track.Keys, t)
	}
}

func sampleTrack(keys []Keyframe, t float32) ([3]float32, [4]float32) {
	if t <= keys[0].Time {
		return keys[0].Translation, keys[0].Rotation
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Translation, last.Rotation
	}
	hi := 1
	for hi < len(keys) && keys[hi].Time < t {
		hi++
	}
	a, b := keys[hi-1], keys[hi]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Translation, b.Rotation
	}
	f := (t - a.Time) / span

	var tr [3]float32
	for i := 0; i < 3; i++ {
		tr[i] = a.Translation[i] + (b.Translation[i]-a.Translation[i])*f
	}
	var rot [4]float32
	for i := 0; i < 4; i++ {
		rot[i] = a.Rotation[i] + (b.Rotation[i]-a.Rotation[i])*f
	}
	if n := rot[0]*rot[0] + rot[1]*rot[1] + rot[2]*rot[2] + rot[3]*rot[3]; n > 0 {
		inv := 1 / float32(math.Sqrt(float64(n)))
		for i := range rot {
			rot[i] *= inv
		}
	}
	return tr, rot
}
