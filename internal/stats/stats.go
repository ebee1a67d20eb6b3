// Package stats provides usage accounting for Scout tool invocations.
package stats

import (
	"sync"
	"time"
)

// Collector tracks per-operation request counts and API usage credits.
// Safe for concurrent use; a nil Collector discards everything.
type Collector struct {
	mu        sync.Mutex
	startTime time.Time
	ops       map[string]*opCounters
}

type opCounters struct {
	requests int64
	errors   int64
	credits  float64
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		ops:       make(map[string]*opCounters),
	}
}

// OpStats represents accumulated counters for one operation.
type OpStats struct {
	Requests int64   `json:"requests"`
	Errors   int64   `json:"errors"`
	Credits  float64 `json:"credits"`
}

// Stats represents collector state at a point in time.
type Stats struct {
	Uptime     string             `json:"uptime"`
	Requests   int64              `json:"requests"`
	Errors     int64              `json:"errors"`
	Credits    float64            `json:"credits"`
	Operations map[string]OpStats `json:"operations"`
}

// Record accounts one invocation of an operation. The usage map is the raw
// result's usage field when the service reported one; its credits value is
// accumulated when present.
func (c *Collector) Record(op string, usage map[string]any, err error) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	counters, ok := c.ops[op]
	if !ok {
		counters = &opCounters{}
		c.ops[op] = counters
	}

	counters.requests++
	if err != nil {
		counters.errors++
	}
	if usage != nil {
		if credits, ok := usage["credits"].(float64); ok {
			counters.credits += credits
		}
	}
}

// Snapshot returns current statistics.
func (c *Collector) Snapshot() Stats {
	if c == nil {
		return Stats{Operations: map[string]OpStats{}}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{
		Uptime:     time.Since(c.startTime).Round(time.Second).String(),
		Operations: make(map[string]OpStats, len(c.ops)),
	}
	for op, counters := range c.ops {
		stats.Requests += counters.requests
		stats.Errors += counters.errors
		stats.Credits += counters.credits
		stats.Operations[op] = OpStats{
			Requests: counters.requests,
			Errors:   counters.errors,
			Credits:  counters.credits,
		}
	}
	return stats
}

// Usage extracts the usage field from a raw result, if any.
func Usage(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}
	usage, _ := raw["usage"].(map[string]any)
	return usage
}
