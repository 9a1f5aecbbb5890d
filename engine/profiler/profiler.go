package profiler

import (
	"log"
	"math"
	"runtime"
	"time"
)

// Stats is one reporting window of frame statistics.
type Stats struct {
	FPS          float64
	MinFrameMs   float64
	MaxFrameMs   float64
	AvgFrameMs   float64
	HeapMB       float64
	AllocRateMB  float64
	GCCount      uint32
	LastPauseUs  uint64
	SystemMB     float64
	FrameSamples int
}

// Profiler tracks frame rate, frame time and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	frameSum       float64
	frameMin       float64
	frameMax       float64
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
	last           Stats

	now    func() time.Time
	report func(Stats)
}

// NewProfiler creates a new Profiler that reports once per interval.
// A non-positive interval falls back to 1 second.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	p := &Profiler{
		updateInterval: interval,
		now:            time.Now,
		report:         logStats,
	}
	p.lastTime = p.now()
	p.resetWindow()
	return p
}

// Tick should be called once per frame with that frame's delta time in seconds.
// Reports statistics when the update interval has elapsed.
//
// Parameters:
//   - frameTime: the frame's delta time in seconds
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick(frameTime float32) bool {
	ms := float64(frameTime) * 1000
	p.frameCount++
	p.frameSum += ms
	p.frameMin = math.Min(p.frameMin, ms)
	p.frameMax = math.Max(p.frameMax, ms)

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	s := Stats{
		FPS:          float64(p.frameCount) / elapsed.Seconds(),
		MinFrameMs:   p.frameMin,
		MaxFrameMs:   p.frameMax,
		AvgFrameMs:   p.frameSum / float64(p.frameCount),
		HeapMB:       float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:  float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:      p.memStats.NumGC,
		SystemMB:     float64(p.memStats.Sys) / 1024 / 1024,
		FrameSamples: p.frameCount,
	}
	if s.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000
	}

	p.report(s)
	p.last = s
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.resetWindow()
	return true
}

// Last returns the most recently reported statistics.
//
// Returns:
//   - Stats: the last report, zero before the first one
func (p *Profiler) Last() Stats {
	return p.last
}

func (p *Profiler) resetWindow() {
	p.frameCount = 0
	p.frameSum = 0
	p.frameMin = math.Inf(1)
	p.frameMax = 0
}

func logStats(s Stats) {
	log.Printf("[Profiler] FPS: %.2f | Frame: %.2f ms (min %.2f, max %.2f) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs) | Sys: %.2f MB",
		s.FPS, s.AvgFrameMs, s.MinFrameMs, s.MaxFrameMs, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.SystemMB)
}
