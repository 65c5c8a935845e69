// Package events defines the balancing events emitted on the event bus.
//
// Available event types:
//   - PhaseEvent: a scenario phase started
//   - StatusEvent: a status pass over the units completed
//   - IndicatorEvent: the lit indicator changed
package events
