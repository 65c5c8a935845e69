package balance

import "github.com/kilianp07/zoa/core/model"

// Select maps the aggregate totals to the indicator to light. Solar
// injection overrides the comparison.
func Select(totalSurplus, totalDeficit float64, solarUsed bool) model.Indicator {
	switch {
	case solarUsed:
		return model.IndicatorSolar
	case totalSurplus > totalDeficit:
		return model.IndicatorSurplus
	case totalSurplus < totalDeficit:
		return model.IndicatorDeficit
	default:
		return model.IndicatorBalanced
	}
}
