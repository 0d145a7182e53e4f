// Package inspector provides Dear ImGui tooling for animation scenes: a
// slot browser, a per-slot inspector driven by the editor property surface,
// and a playback stats window.
package inspector

import (
	"github.com/plus3/animkit/anim"
)

type SlotBrowser struct {
	selectedEntity  int32
	hasSelection    bool
	filterText      string
	maxSlotsPerPage int
	currentPage     int
}

type SlotInspector struct {
	pathEdits map[string]string
}

type PlaybackStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// Inspector bundles the three windows over one scene.
type Inspector struct {
	Browser  SlotBrowser
	Slot     SlotInspector
	Stats    PlaybackStats
	scene    *anim.AnimationScene
	registry *anim.PropertyRegistry
	driver   *anim.Driver
}

// New creates an inspector over the scene. registry supplies the editable
// properties shown per slot (nil hides them); driver supplies update timing
// for the stats window (nil hides the table).
func New(scene *anim.AnimationScene, registry *anim.PropertyRegistry, driver *anim.Driver) *Inspector {
	return &Inspector{
		Browser:  NewSlotBrowser(100),
		Slot:     NewSlotInspector(),
		Stats:    NewPlaybackStats(120),
		scene:    scene,
		registry: registry,
		driver:   driver,
	}
}

// Render draws all windows. Call between the backend's NewFrame and Render.
func (in *Inspector) Render(deltaTime float32) {
	in.Browser.Render(in.scene)
	in.Slot.Render(in.scene, in.registry, in.Browser.Selected(in.scene))
	in.Stats.Render(in.scene, in.driver, deltaTime)
}
