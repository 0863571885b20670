package picdesk

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each load. items is the resulting item
	// count, dropped the number of sources that could not be materialized.
	RecordLoad(items, dropped, sections int, duration time.Duration, err error)

	// RecordInsert is called after each insert operation.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each remove operation with the number
	// of items removed.
	RecordRemove(count int, duration time.Duration, err error)

	// RecordMove is called after each move operation.
	RecordMove(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordInsert(time.Duration, error)              {}
func (NoopMetricsCollector) RecordRemove(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordMove(time.Duration, error)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadDropped    atomic.Int64
	LoadTotalNanos atomic.Int64
	InsertCount    atomic.Int64
	InsertErrors   atomic.Int64
	RemoveCount    atomic.Int64
	RemoveItems    atomic.Int64
	RemoveErrors   atomic.Int64
	MoveCount      atomic.Int64
	MoveErrors     atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(items, dropped, sections int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadDropped.Add(int64(dropped))
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(count int, duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	b.RemoveItems.Add(int64(count))
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordMove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMove(duration time.Duration, err error) {
	b.MoveCount.Add(1)
	if err != nil {
		b.MoveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadDropped:  b.LoadDropped.Load(),
		LoadAvgNanos: b.getAvgLoadNanos(),
		InsertCount:  b.InsertCount.Load(),
		InsertErrors: b.InsertErrors.Load(),
		RemoveCount:  b.RemoveCount.Load(),
		RemoveItems:  b.RemoveItems.Load(),
		RemoveErrors: b.RemoveErrors.Load(),
		MoveCount:    b.MoveCount.Load(),
		MoveErrors:   b.MoveErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount    int64
	LoadErrors   int64
	LoadDropped  int64
	LoadAvgNanos int64
	InsertCount  int64
	InsertErrors int64
	RemoveCount  int64
	RemoveItems  int64
	RemoveErrors int64
	MoveCount    int64
	MoveErrors   int64
}
