package geom

import (
	"log/slog"
	"math"
	"sync"
)

// Thresholds used by SamePointMayWarn.
const (
	// DifferentPointDist: farther apart than this the points are different.
	DifferentPointDist = 1e-2

	// SuspectPointDist: between this and DifferentPointDist the comparison
	// is unreliable and reported as a *PrecisionError.
	SuspectPointDist = 1e-3

	// DriftWarnDist: the first "same" comparison above this distance warns
	// that precision errors are building up.
	DriftWarnDist = 1e-6
)

// PrecisionMonitor records the worst discrepancy seen among points that
// were judged equal. It is safe for concurrent use.
type PrecisionMonitor struct {
	mu       sync.Mutex
	worst    float64
	warnings int
	log      *slog.Logger
}

// NewPrecisionMonitor returns a monitor that warns through l
// (slog.Default() when l is nil).
func NewPrecisionMonitor(l *slog.Logger) *PrecisionMonitor {
	if l == nil {
		l = slog.Default()
	}
	return &PrecisionMonitor{log: l}
}

// Observe classifies a distance between two points expected to coincide.
// It returns false when they are clearly different and a *PrecisionError
// when d falls in the unreliable band. Otherwise it records d and returns
// true, warning once when the drift first exceeds DriftWarnDist.
func (m *PrecisionMonitor) Observe(d float64) (bool, error) {
	if d > DifferentPointDist || math.IsNaN(d) {
		return false, nil
	}
	if d > SuspectPointDist {
		return false, &PrecisionError{Distance: d}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > DriftWarnDist && m.worst <= DriftWarnDist {
		m.warnings++
		m.log.Warn("precision errors are building up", "distance", d)
	}
	if d > m.worst {
		m.worst = d
	}
	return true, nil
}

// Worst is the largest discrepancy recorded so far.
func (m *PrecisionMonitor) Worst() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.worst
}

// Warnings counts the "building up" warnings issued.
func (m *PrecisionMonitor) Warnings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.warnings
}

// Reset clears the statistics.
func (m *PrecisionMonitor) Reset() {
	m.mu.Lock()
	m.worst, m.warnings = 0, 0
	m.mu.Unlock()
}

// SamePointMayWarn reports whether a and b are the same point, recording
// the discrepancy in g's monitor. A distance in the unreliable band is
// returned as a *PrecisionError (errors.Is(err, ErrPrecision) holds).
func (g *Geometry) SamePointMayWarn(a, b Point) (bool, error) {
	return g.monitor.Observe(g.Hdist(a, b))
}
