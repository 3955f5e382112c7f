package stream

import (
	"sync"
	"time"

	"github.com/wenjunnutter/hailort/internal/status"
)

// LatencyMeter accumulates hardware latency samples for one network.
type LatencyMeter struct {
	mu    sync.Mutex
	sum   time.Duration
	count uint32
}

// NewLatencyMeter creates an empty meter.
func NewLatencyMeter() *LatencyMeter {
	return &LatencyMeter{}
}

// Add records one completed-transfer latency sample.
func (m *LatencyMeter) Add(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sum += d
	m.count++
}

// Latency returns the mean measured latency. With no samples it is
// NOT_AVAILABLE. When clear is set, a successful read zeroes the meter.
func (m *LatencyMeter) Latency(clear bool) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count == 0 {
		return 0, status.New(status.NotAvailable, "no latency measurement available")
	}
	avg := m.sum / time.Duration(m.count)
	if clear {
		m.sum = 0
		m.count = 0
	}
	return avg, nil
}
