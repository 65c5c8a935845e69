// Package metrics defines the sinks that record balancing observations.
// Sinks like PromSink and InfluxSink record status passes and indicator
// changes and can be combined with NewMultiSink. The factory returns a
// MultiSink automatically when multiple sinks are configured.
package metrics
