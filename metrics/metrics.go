package metrics

import (
	"sync"
	"time"
)

// Kind represents the different kinds of metrics.
type Kind int

const (
	Counter Kind = iota
	Gauge
)

// Metric describes a single registered metric.
type Metric struct {
	Name        string
	Kind        Kind
	Description string
}

// Value is the current reading of a metric.
type Value struct {
	Value     float64
	UpdatedAt time.Time
}

// Registry stores and manages metrics. A Registry may be shared by several
// queues, so it guards its state with a lock even though each queue itself
// is single-threaded.
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]Metric
	values  map[string]Value
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]Value),
	}
}

// Register adds a metric definition. Re-registering a name overwrites its
// description but keeps the recorded value.
func (r *Registry) Register(m Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[m.Name] = m
}

// Add increments a counter by delta.
func (r *Registry) Add(name string, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[name]
	r.values[name] = Value{Value: v.Value + delta, UpdatedAt: time.Now()}
}

// Set records the current value of a gauge.
func (r *Registry) Set(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = Value{Value: value, UpdatedAt: time.Now()}
}

// Value returns the current reading of the named metric.
func (r *Registry) Value(name string) (Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[name]
	return v, ok
}

// Each calls fn for every registered metric and its current reading.
func (r *Registry) Each(fn func(m Metric, v Value)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, m := range r.metrics {
		fn(m, r.values[name])
	}
}
