package balance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/zoa/core/model"
)

// Status is the result of a status pass over the units.
type Status struct {
	Units        model.Units
	TotalSurplus float64 // sum of positive nets
	TotalDeficit float64 // sum of absolute negative nets
}

// Compute recomputes net = supply - demand on every unit in place and
// returns a snapshot of the units with the aggregated totals. A zero net
// contributes to neither total.
func Compute(units *model.Units) Status {
	surplus := make([]float64, 0, model.NumUnits)
	deficit := make([]float64, 0, model.NumUnits)
	for i := range units {
		net := units[i].ComputeNet()
		switch {
		case net > 0:
			surplus = append(surplus, net)
		case net < 0:
			deficit = append(deficit, -net)
		}
	}
	return Status{
		Units:        *units,
		TotalSurplus: floats.Sum(surplus),
		TotalDeficit: floats.Sum(deficit),
	}
}

// Net returns the aggregate balance; positive means surplus.
func (s Status) Net() float64 {
	return s.TotalSurplus - s.TotalDeficit
}

// Indicator returns the indicator for this status when no solar injection
// is in progress.
func (s Status) Indicator() model.Indicator {
	return Select(s.TotalSurplus, s.TotalDeficit, false)
}
