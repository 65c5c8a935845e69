package metrics

import "github.com/kilianp07/zoa/core/events"

// Sink records status passes for observability purposes.
type Sink interface {
	RecordStatus(ev events.StatusEvent) error
}

// IndicatorRecorder records indicator changes.
type IndicatorRecorder interface {
	RecordIndicator(ev events.IndicatorEvent) error
}

// PhaseRecorder records scenario phase transitions.
type PhaseRecorder interface {
	RecordPhase(ev events.PhaseEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordStatus(events.StatusEvent) error       { return nil }
func (NopSink) RecordIndicator(events.IndicatorEvent) error { return nil }
func (NopSink) RecordPhase(events.PhaseEvent) error         { return nil }

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordStatus forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordStatus(ev events.StatusEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordStatus(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordIndicator forwards indicator changes to sinks supporting them.
func (m *MultiSink) RecordIndicator(ev events.IndicatorEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(IndicatorRecorder); ok {
			if err := rec.RecordIndicator(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordPhase forwards phase transitions to sinks supporting them.
func (m *MultiSink) RecordPhase(ev events.PhaseEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(PhaseRecorder); ok {
			if err := rec.RecordPhase(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close releases every sink that holds a connection.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
