package anim

import (
	"context"
	"time"
)

// Updater is anything driven once per simulation tick with the elapsed
// seconds. AnimationScene implements it.
type Updater interface {
	Update(dt float32)
}

// UpdaterFunc adapts a function to the Updater interface.
type UpdaterFunc func(dt float32)

func (f UpdaterFunc) Update(dt float32) { f(dt) }

// DriverStats aggregates execution statistics across all updaters.
type DriverStats struct {
	UpdaterCount    int
	TotalExecutions int64
	Updaters        []UpdaterStats
}

// UpdaterStats holds execution statistics for a single updater.
type UpdaterStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type updaterStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Driver ticks registered updaters in registration order, timing each one.
type Driver struct {
	updaters []Updater
	stats    []*updaterStatsInternal
}

// NewDriver creates an empty driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Register adds an updater under a display name for stats reporting.
func (d *Driver) Register(name string, u Updater) {
	d.updaters = append(d.updaters, u)
	d.stats = append(d.stats, &updaterStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once ticks every updater with the given delta time.
func (d *Driver) Once(dt float32) {
	for i, u := range d.updaters {
		start := time.Now()
		u.Update(dt)
		duration := time.Since(start)

		stats := d.stats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Run ticks every updater repeatedly at the given interval until the
// context is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			d.Once(float32(dt))
		}
	}
}

// GetStats returns statistics about updater execution.
func (d *Driver) GetStats() *DriverStats {
	stats := &DriverStats{
		UpdaterCount: len(d.updaters),
		Updaters:     make([]UpdaterStats, len(d.stats)),
	}

	var totalExecs int64
	for i, internal := range d.stats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Updaters[i] = UpdaterStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
