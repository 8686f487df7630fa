// Package diag holds the process-global diagnostic toggles and
// counters a solve reads during search: the node counter, the
// pruning/TT/rank-skip disable switches, the perf-report switch, and
// the xray-log line limit. Every toggle here is read-only during
// search except Nodes, a plain counter meant only for diagnostics —
// races on it affect only the reported number, not the search result.
package diag

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Flags holds the process-wide debug switches. The zero value is the
// fully-optimized default: all pruning enabled, no perf report.
type Flags struct {
	DisablePruning  bool
	DisableTT       bool
	DisableRankSkip bool
	PerfReport      bool
	XrayLogLimit    int
}

// Default is the global flag set every solve reads from unless the
// caller substitutes its own (used by tests to isolate toggles).
var Default = &Flags{}

// Counters tracks per-solve diagnostics. A solve owns one Counters
// value; it is not shared across concurrent solves even though the
// Flags above are process-global.
type Counters struct {
	Nodes int64

	start    time.Time
	xrayLeft int
}

// NewCounters returns a fresh Counters with the xray-log budget taken
// from f.
func NewCounters(f *Flags) *Counters {
	return &Counters{xrayLeft: f.XrayLogLimit}
}

// Start marks the beginning of a solve, for perf-report timing.
func (c *Counters) Start() {
	c.start = time.Now()
}

// Node increments the node counter. Called once per search() entry.
func (c *Counters) Node() {
	c.Nodes++
}

// AllowXray reports whether another xray-log line may be emitted, and
// decrements the remaining budget if so.
func (c *Counters) AllowXray() bool {
	if c.xrayLeft <= 0 {
		return false
	}
	c.xrayLeft--
	return true
}

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// ReportPerf emits the "[PERF] iterations=<n>, time=<s>, ns/iter=<r>"
// line to logger if f.PerfReport is set.
func (c *Counters) ReportPerf(f *Flags, out *log.Logger) {
	if !f.PerfReport {
		return
	}
	l := out
	if l == nil {
		l = logger
	}
	elapsed := time.Since(c.start)
	var perIter float64
	if c.Nodes > 0 {
		perIter = float64(elapsed.Nanoseconds()) / float64(c.Nodes)
	}
	l.Printf("[PERF] iterations=%d, time=%s, ns/iter=%.1f", c.Nodes, elapsed, perIter)
}
