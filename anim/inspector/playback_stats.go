package inspector

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/animkit/anim"
)

func NewPlaybackStats(historyFrames int) PlaybackStats {
	return PlaybackStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PlaybackStats) Render(scene *anim.AnimationScene, driver *anim.Driver, deltaTime float32) {
	if !imgui.BeginV("Playback Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	live, free, pending := 0, 0, 0
	for _, info := range scene.Slots() {
		switch {
		case info.Free:
			free++
		default:
			live++
			if info.ClipPath != "" && !info.ClipReady {
				pending++
			}
		}
	}

	imgui.Text(fmt.Sprintf("Table Size: %d", scene.SlotCount()))
	imgui.Text(fmt.Sprintf("Live Slots: %d", live))
	imgui.Text(fmt.Sprintf("Free Slots: %d", free))
	imgui.Text(fmt.Sprintf("Clips Loading: %d", pending))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if driver == nil {
		imgui.End()
		return
	}

	if imgui.TreeNodeStr("Updater Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("UpdaterTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Updater")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Runs")
			imgui.TableHeadersRow()

			for _, u := range driver.GetStats().Updaters {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(u.Name)
				imgui.TableNextColumn()
				imgui.Text(u.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(u.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", u.ExecutionCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
