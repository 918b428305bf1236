// package profiler accumulates render-hook frame timings and periodically
// logs throughput and memory statistics.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks per-frame render durations for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	minFrame       time.Duration
	maxFrame       time.Duration
	totalFrame     time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Observe records the duration of one rendered frame.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: frame min/avg/max ms, effective FPS, heap usage.
//
// Parameters:
//   - frameTime: how long the frame took to render
//
// Returns:
//   - bool: true if stats were logged this call, false otherwise
func (p *Profiler) Observe(frameTime time.Duration) bool {
	if p.frameCount == 0 || frameTime < p.minFrame {
		p.minFrame = frameTime
	}
	if frameTime > p.maxFrame {
		p.maxFrame = frameTime
	}
	p.totalFrame += frameTime
	p.frameCount++

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	avg := p.totalFrame / time.Duration(p.frameCount)
	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024

	log.Printf("[Profiler] Frame: %.2f/%.2f/%.2f ms (min/avg/max) | FPS: %.2f | Heap: %.2f MB",
		durationMs(p.minFrame), durationMs(avg), durationMs(p.maxFrame), fps, allocMB)

	p.frameCount = 0
	p.minFrame = 0
	p.maxFrame = 0
	p.totalFrame = 0
	p.lastTime = currentTime
	return true
}

// Stats returns the min, average, and max frame duration of the current
// accumulation window.
//
// Returns:
//   - time.Duration: shortest frame observed
//   - time.Duration: average frame duration
//   - time.Duration: longest frame observed
func (p *Profiler) Stats() (time.Duration, time.Duration, time.Duration) {
	if p.frameCount == 0 {
		return 0, 0, 0
	}
	return p.minFrame, p.totalFrame / time.Duration(p.frameCount), p.maxFrame
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
