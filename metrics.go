package wlru

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    hitCounter  prometheus.Counter
//	    putHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGet(hit bool, duration time.Duration) {
//	    if hit {
//	        p.hitCounter.Inc()
//	    }
//	    // ... record duration, etc.
//	}
type MetricsCollector interface {
	// RecordGet is called after each get operation.
	// hit reports whether the key was present, duration is the time taken.
	RecordGet(hit bool, duration time.Duration)

	// RecordPut is called after each put operation.
	// evicted is the number of entries evicted to admit the new one,
	// duration is the total time taken, err is nil if successful.
	RecordPut(evicted int, duration time.Duration, err error)

	// RecordRemove is called after each remove operation.
	RecordRemove(found bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGet(bool, time.Duration)       {}
func (NoopMetricsCollector) RecordPut(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(bool, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GetCount      atomic.Int64
	GetHits       atomic.Int64
	GetTotalNanos atomic.Int64
	PutCount      atomic.Int64
	PutErrors     atomic.Int64
	PutEvictions  atomic.Int64
	PutTotalNanos atomic.Int64
	RemoveCount   atomic.Int64
	RemoveFound   atomic.Int64
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(hit bool, duration time.Duration) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.GetHits.Add(1)
	}
}

// RecordPut implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPut(evicted int, duration time.Duration, err error) {
	b.PutCount.Add(1)
	b.PutEvictions.Add(int64(evicted))
	b.PutTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PutErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(found bool, duration time.Duration) {
	b.RemoveCount.Add(1)
	if found {
		b.RemoveFound.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	GetCount     int64
	GetHits      int64
	GetAvgNanos  int64
	PutCount     int64
	PutErrors    int64
	PutEvictions int64
	PutAvgNanos  int64
	RemoveCount  int64
	RemoveFound  int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GetCount:     b.GetCount.Load(),
		GetHits:      b.GetHits.Load(),
		GetAvgNanos:  avgNanos(b.GetTotalNanos.Load(), b.GetCount.Load()),
		PutCount:     b.PutCount.Load(),
		PutErrors:    b.PutErrors.Load(),
		PutEvictions: b.PutEvictions.Load(),
		PutAvgNanos:  avgNanos(b.PutTotalNanos.Load(), b.PutCount.Load()),
		RemoveCount:  b.RemoveCount.Load(),
		RemoveFound:  b.RemoveFound.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
