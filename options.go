package refq

import (
	"github.com/davidvella/refq/monitoring"
)

// options defines all configuration options for a queue.
type options struct {
	stats monitoring.Stats // Optional activity collector
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithStats attaches a stats collector that receives an event for every
// insert, extract, removal and priority change.
func WithStats(stats monitoring.Stats) Option {
	return func(o *options) {
		o.stats = stats
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stats: nil,
	}
}
