package inspector

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/animkit/anim"
)

func NewSlotInspector() SlotInspector {
	return SlotInspector{pathEdits: make(map[string]string)}
}

func (si *SlotInspector) Render(scene *anim.AnimationScene, registry *anim.PropertyRegistry, h anim.Handle) {
	if !imgui.BeginV("Slot Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !h.IsValid() {
		imgui.Text("No slot selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d", h.Entity.Index))
	imgui.Text(fmt.Sprintf("Slot: %d", h.Index))
	imgui.Separator()

	if registry != nil {
		for _, prop := range registry.Properties(anim.KindAnimable) {
			si.renderFileProperty(prop, h)
		}
		imgui.Separator()
	}

	manual := scene.IsManual(h)
	if imgui.Checkbox("Manual", &manual) {
		scene.SetManual(h, manual)
	}

	frameCount := scene.FrameCount(h)
	if frameCount < 0 {
		imgui.Text("Frames: <no clip>")
		imgui.End()
		return
	}
	imgui.Text(fmt.Sprintf("Frames: %d", frameCount))

	length := clipLength(scene, h)
	t := scene.Time(h)
	imgui.SetNextItemWidth(200)
	if imgui.SliderFloat("Time", &t, 0, length) {
		scene.SetTime(h, t)
	}

	frame := 0
	if length > 0 {
		frame = int(t / length * float32(frameCount))
	}
	imgui.Text(fmt.Sprintf("Frame: %d", frame))
	imgui.SameLine()
	if imgui.Button("Prev Frame") && frame > 0 {
		scene.SetAnimationFrame(h, frame-1)
	}
	imgui.SameLine()
	if imgui.Button("Next Frame") && frame < frameCount-1 {
		scene.SetAnimationFrame(h, frame+1)
	}

	imgui.End()
}

func (si *SlotInspector) renderFileProperty(prop anim.FileProperty, h anim.Handle) {
	key := fmt.Sprintf("%d:%s", h.Index, prop.Name)
	edit, ok := si.pathEdits[key]
	if !ok {
		edit = prop.Get(h)
	}

	imgui.Text(fmt.Sprintf("%s:", prop.Name))
	imgui.SameLine()
	imgui.SetNextItemWidth(200)
	if imgui.InputTextWithHint(fmt.Sprintf("##%s", prop.Name), prop.Filter, &edit, imgui.InputTextFlagsNone, nil) {
		si.pathEdits[key] = edit
	}
	imgui.SameLine()
	if imgui.Button("Apply##" + prop.Name) {
		prop.Set(h, edit)
		delete(si.pathEdits, key)
	}
}

func clipLength(scene *anim.AnimationScene, h anim.Handle) float32 {
	path := scene.Preview(h)
	if path == "" {
		return 0
	}
	clip := scene.System().Resources().Lookup(path)
	if clip == nil {
		return 0
	}
	return clip.Length()
}
