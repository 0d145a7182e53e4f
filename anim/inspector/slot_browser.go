package inspector

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/animkit/anim"
)

type slotRow struct {
	index int
	info  anim.SlotInfo
}

func NewSlotBrowser(maxSlotsPerPage int) SlotBrowser {
	return SlotBrowser{maxSlotsPerPage: maxSlotsPerPage}
}

// Selected resolves the browser's selection to a live handle, or
// InvalidHandle when nothing (or a since-destroyed slot) is selected.
func (sb *SlotBrowser) Selected(scene *anim.AnimationScene) anim.Handle {
	if !sb.hasSelection {
		return anim.InvalidHandle
	}
	return scene.Animable(anim.Entity{Index: sb.selectedEntity, Universe: scene.Universe()})
}

func (sb *SlotBrowser) Render(scene *anim.AnimationScene) {
	if !imgui.BeginV("Slot Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter by clip path...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}

	rows := sb.collectRows(scene)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SlotTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Clip")
		imgui.TableSetupColumn("Time")
		imgui.TableSetupColumn("Mode")
		imgui.TableHeadersRow()

		startIdx := sb.currentPage * sb.maxSlotsPerPage
		endIdx := startIdx + sb.maxSlotsPerPage
		if endIdx > len(rows) {
			endIdx = len(rows)
		}

		for i := startIdx; i < endIdx; i++ {
			row := rows[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sb.hasSelection && sb.selectedEntity == row.info.Entity.Index && !row.info.Free
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.index), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				if !row.info.Free {
					sb.selectedEntity = row.info.Entity.Index
					sb.hasSelection = true
				}
			}

			imgui.TableNextColumn()
			if row.info.Free {
				imgui.Text("-")
			} else {
				imgui.Text(fmt.Sprintf("%d", row.info.Entity.Index))
			}

			imgui.TableNextColumn()
			imgui.Text(clipLabel(row.info))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", row.info.Time))

			imgui.TableNextColumn()
			imgui.Text(modeLabel(row.info))
		}

		imgui.EndTable()
	}

	if len(rows) > sb.maxSlotsPerPage {
		totalPages := (len(rows) + sb.maxSlotsPerPage - 1) / sb.maxSlotsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d slots)", sb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d slots", len(rows)))
	}

	imgui.End()
}

func (sb *SlotBrowser) collectRows(scene *anim.AnimationScene) []slotRow {
	rows := make([]slotRow, 0, scene.SlotCount())
	for i, info := range scene.Slots() {
		if sb.filterText != "" && !strings.Contains(info.ClipPath, sb.filterText) {
			continue
		}
		rows = append(rows, slotRow{index: i, info: info})
	}
	return rows
}

func clipLabel(info anim.SlotInfo) string {
	if info.ClipPath == "" {
		return "<none>"
	}
	if !info.ClipReady {
		return info.ClipPath + " (loading)"
	}
	return info.ClipPath
}

func modeLabel(info anim.SlotInfo) string {
	switch {
	case info.Free:
		return "free"
	case info.AutoAdvance:
		return "auto"
	default:
		return "manual"
	}
}
