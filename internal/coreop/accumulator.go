package coreop

import "sync"

// Accumulator collects wall-time data points for one operation kind, such
// as activation or deactivation duration.
type Accumulator struct {
	name string

	mu    sync.Mutex
	count uint64
	sum   float64
	min   float64
	max   float64
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator(name string) *Accumulator {
	return &Accumulator{name: name}
}

// Name returns the accumulator name.
func (a *Accumulator) Name() string { return a.name }

// Add records one data point.
func (a *Accumulator) Add(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.count == 0 || value < a.min {
		a.min = value
	}
	if a.count == 0 || value > a.max {
		a.max = value
	}
	a.count++
	a.sum += value
}

// Count returns the number of recorded data points.
func (a *Accumulator) Count() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Mean returns the average of the recorded data points, zero when empty.
func (a *Accumulator) Mean() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}
