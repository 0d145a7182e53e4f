// Package ebiten hosts the animation inspector inside an Ebiten game loop
// through the Dear ImGui Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/animkit/anim"
	"github.com/plus3/animkit/anim/inspector"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Host is an ebiten.Game that ticks an animation driver and draws the
// inspector overlay each frame. Embed or compose it into a larger game; a
// standalone tool can hand it straight to ebiten.RunGame.
type Host struct {
	Backend   ImguiBackend
	Inspector *inspector.Inspector
	Driver    *anim.Driver

	// Draw callback for the frame's game content, drawn under the overlay.
	DrawWorld func(screen *ebiten.Image)

	tickSeconds float32
}

// NewHost creates a host ticking the driver at a fixed step.
func NewHost(backend ImguiBackend, ins *inspector.Inspector, driver *anim.Driver, tickSeconds float32) *Host {
	return &Host{
		Backend:     backend,
		Inspector:   ins,
		Driver:      driver,
		tickSeconds: tickSeconds,
	}
}

func (h *Host) Update() error {
	h.Backend.BeginFrame()
	if h.Driver != nil {
		h.Driver.Once(h.tickSeconds)
	}
	h.Inspector.Render(h.tickSeconds)
	h.Backend.EndFrame()
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.DrawWorld != nil {
		h.DrawWorld(screen)
	}
	h.Backend.Draw(screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
