package anim

// AnimationSystem is the plugin-level object: it owns the resource manager
// and the pose sampler, and stamps out scenes per universe.
type AnimationSystem struct {
	resources *ResourceManager
	sampler   PoseSampler
}

// NewAnimationSystem creates the plugin around a resource manager. The
// default pose sampler is LinearSampler; SetSampler overrides it before any
// scene is created.
func NewAnimationSystem(resources *ResourceManager) *AnimationSystem {
	return &AnimationSystem{
		resources: resources,
		sampler:   LinearSampler{},
	}
}

// Name returns the plugin name.
func (p *AnimationSystem) Name() string { return "animation" }

// Resources returns the plugin's resource manager.
func (p *AnimationSystem) Resources() *ResourceManager { return p.resources }

// Sampler returns the pose sampler scenes are created with.
func (p *AnimationSystem) Sampler() PoseSampler { return p.sampler }

// SetSampler replaces the pose sampler used by scenes created afterwards.
func (p *AnimationSystem) SetSampler(sampler PoseSampler) {
	p.sampler = sampler
}

// CreateScene creates an animation scene for the universe.
func (p *AnimationSystem) CreateScene(u *Universe, renderables RenderableOwner) *AnimationScene {
	return NewAnimationScene(p, u, renderables)
}

// DestroyScene tears a scene down, unsubscribing it from its universe.
func (p *AnimationSystem) DestroyScene(s *AnimationScene) {
	s.Close()
}

// FileProperty is one editor-visible string property on a component kind,
// backed by getter/setter callbacks.
type FileProperty struct {
	Name   string
	Filter string
	Get    func(h Handle) string
	Set    func(h Handle, value string)
}

// PropertyRegistry maps component kinds to their editor properties.
type PropertyRegistry struct {
	byKind map[ComponentKind][]FileProperty
}

// NewPropertyRegistry creates an empty registry.
func NewPropertyRegistry() *PropertyRegistry {
	return &PropertyRegistry{byKind: make(map[ComponentKind][]FileProperty)}
}

// Register adds a property under the component kind.
func (r *PropertyRegistry) Register(kind ComponentKind, prop FileProperty) {
	r.byKind[kind] = append(r.byKind[kind], prop)
}

// Properties returns the properties registered for the kind.
func (r *PropertyRegistry) Properties(kind ComponentKind) []FileProperty {
	return r.byKind[kind]
}

// RegisterProperties publishes the animable "preview" property: reading it
// returns the slot's clip path, writing it assigns a clip by path (which
// restarts playback).
func (p *AnimationSystem) RegisterProperties(reg *PropertyRegistry, scene *AnimationScene) {
	reg.Register(KindAnimable, FileProperty{
		Name:   "preview",
		Filter: "Animation (*.anim)",
		Get:    scene.Preview,
		Set:    scene.SetPreview,
	})
}
