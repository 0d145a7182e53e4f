package anim

// ResourceKind is the closed set of resource types the manager serves.
type ResourceKind uint8

const (
	ResourceAnimation ResourceKind = iota + 1
)

// ClipData is the decoded payload a ClipSource produces for one clip.
type ClipData struct {
	Length     float32
	FPS        float32
	FrameCount int
	Tracks     []BoneTrack
}

// ClipSource produces clip data for a path. Sources run on the simulation
// thread when the manager drains its load queue; a source that fronts slow
// storage should do its own prefetching.
type ClipSource interface {
	LoadClip(path string) (*ClipData, error)
}

// ResourceManager caches clips by path and owns their lifetime. Request
// never blocks: it returns a pending clip immediately and the actual load
// happens when ProcessQueue drains the queue, so callers poll readiness
// frame by frame instead of waiting.
type ResourceManager struct {
	source ClipSource
	clips  map[string]*Clip
	queue  []*Clip
}

// NewResourceManager creates a manager that loads clip data from source.
func NewResourceManager(source ClipSource) *ResourceManager {
	return &ResourceManager{
		source: source,
		clips:  make(map[string]*Clip),
	}
}

// Request returns the clip cached under path, loading it lazily. The first
// request for a path enqueues a load and returns a clip in the pending
// state. Unknown kinds and empty paths return nil.
func (rm *ResourceManager) Request(kind ResourceKind, path string) *Clip {
	if kind != ResourceAnimation || path == "" {
		return nil
	}
	if clip, ok := rm.clips[path]; ok {
		clip.refs++
		return clip
	}
	clip := &Clip{path: path, refs: 1}
	rm.clips[path] = clip
	rm.queue = append(rm.queue, clip)
	return clip
}

// ProcessQueue drains the pending load queue, resolving each clip to ready
// or failed. Returns the number of clips that became ready. Call once per
// tick from the simulation thread.
func (rm *ResourceManager) ProcessQueue() int {
	if len(rm.queue) == 0 {
		return 0
	}
	loaded := 0
	for _, clip := range rm.queue {
		data, err := rm.source.LoadClip(clip.path)
		if err != nil {
			clip.state = ResourceFailed
			clip.loadErr = err
			continue
		}
		clip.length = data.Length
		clip.fps = data.FPS
		clip.frameCount = data.FrameCount
		if clip.frameCount == 0 && data.FPS > 0 {
			clip.frameCount = int(data.Length * data.FPS)
		}
		clip.tracks = data.Tracks
		clip.state = ResourceReady
		loaded++
	}
	rm.queue = rm.queue[:0]
	return loaded
}

// Release decrements a clip's reference count. The clip stays cached at
// zero references; Purge evicts unreferenced entries.
func (rm *ResourceManager) Release(clip *Clip) {
	if clip == nil || clip.refs == 0 {
		return
	}
	clip.refs--
}

// Purge evicts every cached clip with no remaining references and returns
// how many were evicted. Pending clips are never evicted.
func (rm *ResourceManager) Purge() int {
	evicted := 0
	for path, clip := range rm.clips {
		if clip.refs == 0 && clip.state != ResourcePending {
			delete(rm.clips, path)
			evicted++
		}
	}
	return evicted
}

// Lookup returns the cached clip for path without loading or retaining it.
func (rm *ResourceManager) Lookup(path string) *Clip {
	return rm.clips[path]
}
