package meter

import (
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// ReportSummary logs the final counters with elapsed wall time and a host
// snapshot. Snapshot failures are tolerated; counters still get reported.
func (m *Meter) ReportSummary() {
	m.mutex.Lock()
	counts := make(map[string]int64, len(m.counts))
	for name, v := range m.counts {
		counts[name] = v
	}
	elapsed := time.Since(m.startTime)
	m.mutex.Unlock()

	kv := []interface{}{
		"component", m.componentMetadata,
		"event", "ReportSummary",
		"elapsed", elapsed,
	}
	for name, v := range counts {
		kv = append(kv, name, v)
	}

	cpuPercentages, err := cpu.Percent(time.Millisecond*500, false)
	if err == nil && len(cpuPercentages) > 0 {
		kv = append(kv, "cpu_percent", cpuPercentages[0])
	}
	if memStats, err := mem.VirtualMemory(); err == nil {
		kv = append(kv, "mem_used_percent", memStats.UsedPercent)
	}

	m.NotifyLoggers(types.InfoLevel, "Run summary", kv...)
}
