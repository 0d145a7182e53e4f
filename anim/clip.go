package anim

// ResourceState tracks where a resource is in its load lifecycle.
type ResourceState uint8

const (
	ResourcePending ResourceState = iota
	ResourceReady
	ResourceFailed
)

// Keyframe is one sampled point on a bone track.
type Keyframe struct {
	Time        float32
	Translation [3]float32
	Rotation    [4]float32
}

// BoneTrack is the keyframe curve for a single named bone.
type BoneTrack struct {
	Bone string
	Keys []Keyframe
}

// Clip is an animation asset: a fixed-length, fixed-rate set of bone tracks.
// Clips are cached and reference-counted by the ResourceManager; slots hold
// non-owning references and poll IsReady instead of waiting.
type Clip struct {
	path       string
	state      ResourceState
	refs       int
	length     float32
	fps        float32
	frameCount int
	tracks     []BoneTrack
	loadErr    error
}

// Path returns the resource path the clip was requested under.
func (c *Clip) Path() string { return c.path }

// IsReady reports whether the clip's data has finished loading.
func (c *Clip) IsReady() bool { return c.state == ResourceReady }

// State returns the clip's load state.
func (c *Clip) State() ResourceState { return c.state }

// LoadError returns the error that failed the load, if any.
func (c *Clip) LoadError() error { return c.loadErr }

// Length returns the clip duration in seconds. Zero until ready.
func (c *Clip) Length() float32 { return c.length }

// FPS returns the clip's playback rate in frames per second. Zero until ready.
func (c *Clip) FPS() float32 { return c.fps }

// FrameCount returns the clip's total frame count. Zero until ready.
func (c *Clip) FrameCount() int { return c.frameCount }

// Tracks returns the clip's bone tracks. Nil until ready.
func (c *Clip) Tracks() []BoneTrack { return c.tracks }

// Refs returns the manager-side reference count.
func (c *Clip) Refs() int { return c.refs }
