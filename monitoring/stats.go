// Package monitoring provides optional instrumentation hooks for queue
// activity: a Stats collector backed by a metrics registry, and a JSON line
// logger. Queues work without either; attach a Stats to observe usage.
package monitoring

import (
	"github.com/davidvella/refq/metrics"
)

// Stats receives queue activity events.
type Stats interface {
	RecordInsert(priority float64)
	RecordExtract(priority float64)
	RecordRemoval(priority float64)
	RecordPriorityChange(from, to float64)
	SetSize(size, distinct int)
}

// stats collects queue statistics into a metrics registry.
type stats struct {
	registry *metrics.Registry
	logger   Logger
}

func NewStats(registry *metrics.Registry, logger Logger) Stats {
	registry.Register(metrics.Metric{
		Name:        "inserts_total",
		Kind:        metrics.Counter,
		Description: "Total number of entries inserted",
	})

	registry.Register(metrics.Metric{
		Name:        "extracts_total",
		Kind:        metrics.Counter,
		Description: "Total number of entries dequeued from the root",
	})

	registry.Register(metrics.Metric{
		Name:        "removals_total",
		Kind:        metrics.Counter,
		Description: "Total number of entries removed by handle or position",
	})

	registry.Register(metrics.Metric{
		Name:        "priority_changes_total",
		Kind:        metrics.Counter,
		Description: "Total number of in-place priority changes",
	})

	registry.Register(metrics.Metric{
		Name:        "queue_size",
		Kind:        metrics.Gauge,
		Description: "Number of live entries",
	})

	registry.Register(metrics.Metric{
		Name:        "distinct_priorities",
		Kind:        metrics.Gauge,
		Description: "Number of distinct priorities with live entries",
	})

	return &stats{
		registry: registry,
		logger:   logger,
	}
}

func (s *stats) RecordInsert(priority float64) {
	s.registry.Add("inserts_total", 1)
	s.log("insert", map[string]interface{}{"priority": priority})
}

func (s *stats) RecordExtract(priority float64) {
	s.registry.Add("extracts_total", 1)
	s.log("extract", map[string]interface{}{"priority": priority})
}

func (s *stats) RecordRemoval(priority float64) {
	s.registry.Add("removals_total", 1)
	s.log("removal", map[string]interface{}{"priority": priority})
}

func (s *stats) RecordPriorityChange(from, to float64) {
	s.registry.Add("priority_changes_total", 1)
	s.log("priority_change", map[string]interface{}{"from": from, "to": to})
}

func (s *stats) SetSize(size, distinct int) {
	s.registry.Set("queue_size", float64(size))
	s.registry.Set("distinct_priorities", float64(distinct))
}

func (s *stats) log(eventType string, details map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Log(DEBUG, eventType, "queue event", details)
}
