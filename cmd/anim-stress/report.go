package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/animkit/anim"
)

// Report collects the soak's configuration and outcome. Update timing comes
// straight from the driver's per-updater stats rather than a second set of
// hand-kept samples.
type Report struct {
	// Configuration
	Duration time.Duration
	Slots    int
	Clips    int
	Bones    int

	// Results
	TotalTime      time.Duration
	Update         anim.UpdaterStats
	BlobBytes      int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

const reportTemplate = `
# Animation Stress Report

## Configuration
- Run Duration:       {{.Duration}}
- Animation Slots:    {{.Slots}}
- Distinct Clips:     {{.Clips}}
- Bones per Skeleton: {{.Bones}}

## Playback
- Updates Executed: {{.Update.ExecutionCount}}
- Wall Time:        {{.TotalTime}}
- Time in Updates:  {{.Update.TotalDuration}}
- Update Duration:  avg {{.Update.AvgDuration}} / min {{.Update.MinDuration}} / max {{.Update.MaxDuration}} / last {{.Update.LastDuration}}
- Serialized Blob:  {{.BlobBytes}} bytes

## Memory (raw bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Sys Memory:  {{.MemStatsStart.Sys}} -> {{.MemStatsEnd.Sys}} (delta {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}})
- GC Cycles:   {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pauses
- Total GC Pause: {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 { return int64(a) - int64(b) },
		"usub": func(a, b uint32) uint32 { return a - b },
		"ns":   func(ns uint64) string { return time.Duration(ns).String() },
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
