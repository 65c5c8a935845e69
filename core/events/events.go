package events

import (
	"time"

	"github.com/kilianp07/zoa/core/balance"
	"github.com/kilianp07/zoa/core/model"
)

// PhaseEvent is published when the runner enters a scenario phase.
type PhaseEvent struct {
	RunID    string
	Scenario string
	Phase    int
	Time     time.Time
}

// StatusEvent is published after every status pass.
type StatusEvent struct {
	RunID    string
	Scenario string
	Status   balance.Status
	Time     time.Time
}

// IndicatorEvent is published when a panel is asked to light an indicator.
type IndicatorEvent struct {
	RunID     string
	Scenario  string
	Indicator model.Indicator
	SolarUsed bool
	Time      time.Time
}
