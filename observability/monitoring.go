// Package observability tracks dispatch counters and process
// self-stats for the debug endpoint.
package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// MonitoringStats is the snapshot served at /debug/stats.
type MonitoringStats struct {
	// --- DISPATCH METRICS ---
	Dispatched     uint64 `json:"dispatched"`
	Failed         uint64 `json:"failed"`
	Published      uint64 `json:"published"`
	PublishDropped uint64 `json:"publish_dropped"`

	// --- SYSTEM METRICS ---
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	RssMb      uint64  `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
	Goroutines int     `json:"goroutines"`
	UptimeSec  int64   `json:"uptime_sec"`
}

// MonitoringManager aggregates real-time telemetry.
type MonitoringManager struct {
	log     *slog.Logger
	started time.Time
	proc    *process.Process

	dispatched     uint64
	failed         uint64
	published      uint64
	publishDropped uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	// Self-inspection may be unavailable on some platforms; the
	// counters still work without it.
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process self-stats unavailable", "err", err)
		proc = nil
	}
	return &MonitoringManager{log: log, started: time.Now(), proc: proc}
}

func (mm *MonitoringManager) IncrDispatched() {
	atomic.AddUint64(&mm.dispatched, 1)
}

func (mm *MonitoringManager) IncrFailed() {
	atomic.AddUint64(&mm.failed, 1)
}

func (mm *MonitoringManager) IncrPublished() {
	atomic.AddUint64(&mm.published, 1)
}

func (mm *MonitoringManager) IncrPublishDropped() {
	atomic.AddUint64(&mm.publishDropped, 1)
}

// Snapshot collects counters plus memory and process stats.
func (mm *MonitoringManager) Snapshot() MonitoringStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := MonitoringStats{
		Dispatched:     atomic.LoadUint64(&mm.dispatched),
		Failed:         atomic.LoadUint64(&mm.failed),
		Published:      atomic.LoadUint64(&mm.published),
		PublishDropped: atomic.LoadUint64(&mm.publishDropped),
		AllocMemMb:     mem.Alloc / 1024 / 1024,
		NumGC:          mem.NumGC,
		Goroutines:     runtime.NumGoroutine(),
		UptimeSec:      int64(time.Since(mm.started).Seconds()),
	}

	if mm.proc != nil {
		if memInfo, err := mm.proc.MemoryInfo(); err == nil {
			stats.RssMb = memInfo.RSS / 1024 / 1024
		}
		if cpu, err := mm.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}
	return stats
}
