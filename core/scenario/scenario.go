// Package scenario holds the built-in balancing scenarios and the runner
// that plays them against the units, a report writer and an indicator panel.
package scenario

import (
	"fmt"
	"time"

	"github.com/kilianp07/zoa/core/model"
)

// Default hold durations between demo steps.
const (
	StepHold  = 3 * time.Second
	SolarHold = 2 * time.Second
)

// Phase is one step of a scenario. Actions are applied in field order:
// announce, overwrite supplies, inject, report, select and show the
// indicator, hold.
type Phase struct {
	Announce string
	Supplies *[model.NumUnits]float64
	Inject   bool
	Report   bool
	Solar    bool
	Label    string
	Expect   model.Indicator
	Hold     time.Duration
}

// Scenario is a named, numbered sequence of phases.
type Scenario struct {
	Number int
	Name   string
	Title  string
	Phases []Phase
}

func supplies(machining, air, welding, testing float64) *[model.NumUnits]float64 {
	return &[model.NumUnits]float64{machining, air, welding, testing}
}

// Builtin returns the four demo scenarios in execution order.
func Builtin() []Scenario {
	return []Scenario{
		{
			Number: 1,
			Name:   "balanced",
			Title:  "Balanced Condition",
			Phases: []Phase{{
				Supplies: supplies(150, 120, 100, 160),
				Report:   true,
				Label:    "Balanced condition:",
				Expect:   model.IndicatorBalanced,
				Hold:     StepHold,
			}},
		},
		{
			Number: 2,
			Name:   "surplus",
			Title:  "Surplus Condition",
			Phases: []Phase{{
				Supplies: supplies(200, 120, 100, 160),
				Report:   true,
				Label:    "Surplus condition:",
				Expect:   model.IndicatorSurplus,
				Hold:     StepHold,
			}},
		},
		{
			Number: 3,
			Name:   "deficit-injection",
			Title:  "Deficit Condition (Before Injection)",
			Phases: []Phase{
				{
					Supplies: supplies(150, 100, 80, 150),
					Report:   true,
					Label:    "Deficit condition:",
					Expect:   model.IndicatorDeficit,
					Hold:     StepHold,
				},
				{
					Announce: "Injecting stored surplus energy to balance the system...",
					Inject:   true,
					Report:   true,
					Label:    "After injection: Balanced condition ->",
					Expect:   model.IndicatorBalanced,
					Hold:     StepHold,
				},
			},
		},
		{
			Number: 4,
			Name:   "solar-injection",
			Title:  "Extra Deficit Requiring Solar Injection",
			Phases: []Phase{
				{
					Supplies: supplies(140, 110, 90, 150),
					Report:   true,
					Label:    "Extra deficit condition:",
					Expect:   model.IndicatorDeficit,
					Hold:     StepHold,
				},
				{
					Announce: "Using solar power to inject energy and balance the system...",
					Solar:    true,
					Label:    "Solar energy injection in progress:",
					Expect:   model.IndicatorSolar,
					Hold:     SolarHold,
				},
				{
					Inject: true,
					Report: true,
					Label:  "After solar injection: Balanced condition ->",
					Expect: model.IndicatorBalanced,
					Hold:   StepHold,
				},
			},
		},
	}
}

// Names returns the built-in scenario names in execution order.
func Names() []string {
	all := Builtin()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Select returns the named built-in scenarios in the requested order. No
// names selects all of them.
func Select(names ...string) ([]Scenario, error) {
	all := Builtin()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	out := make([]Scenario, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (known: %v)", n, Names())
		}
		out = append(out, s)
	}
	return out, nil
}
