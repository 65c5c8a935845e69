package model

// Indicator identifies one of the four mutually exclusive status outputs.
type Indicator int

const (
	IndicatorSurplus Indicator = iota
	IndicatorDeficit
	IndicatorBalanced
	IndicatorSolar
)

// NumIndicators is the number of status outputs.
const NumIndicators = 4

// Indicators lists all indicators in output order.
var Indicators = [NumIndicators]Indicator{
	IndicatorSurplus,
	IndicatorDeficit,
	IndicatorBalanced,
	IndicatorSolar,
}

// String returns a human-readable representation of the indicator.
func (i Indicator) String() string {
	switch i {
	case IndicatorSurplus:
		return "surplus"
	case IndicatorDeficit:
		return "deficit"
	case IndicatorBalanced:
		return "balanced"
	case IndicatorSolar:
		return "solar"
	default:
		return "unknown"
	}
}

// Color is the LED colour wired to the indicator.
func (i Indicator) Color() string {
	switch i {
	case IndicatorSurplus:
		return "green"
	case IndicatorDeficit:
		return "red"
	case IndicatorBalanced:
		return "white"
	case IndicatorSolar:
		return "yellow"
	default:
		return "unknown"
	}
}

// DefaultPin returns the digital output the indicator is wired to on the
// reference board.
func (i Indicator) DefaultPin() int {
	switch i {
	case IndicatorSurplus:
		return 2
	case IndicatorDeficit:
		return 3
	case IndicatorBalanced:
		return 4
	case IndicatorSolar:
		return 5
	default:
		return -1
	}
}

// Valid reports whether i is one of the known indicators.
func (i Indicator) Valid() bool {
	return i >= IndicatorSurplus && i <= IndicatorSolar
}

// ParseIndicator maps a name or colour to an Indicator.
func ParseIndicator(s string) (Indicator, bool) {
	for _, ind := range Indicators {
		if s == ind.String() || s == ind.Color() {
			return ind, true
		}
	}
	return 0, false
}

// IndicatorStates holds the on/off level of every output, indexed by Indicator.
type IndicatorStates [NumIndicators]bool

// StatesFor returns the output vector with only ind lit.
func StatesFor(ind Indicator) IndicatorStates {
	var s IndicatorStates
	if ind.Valid() {
		s[ind] = true
	}
	return s
}

// Active returns the indicators that are lit.
func (s IndicatorStates) Active() []Indicator {
	var out []Indicator
	for _, ind := range Indicators {
		if s[ind] {
			out = append(out, ind)
		}
	}
	return out
}
