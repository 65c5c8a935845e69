// Package balance contains the two pure operations of the balancing demo:
// Compute refreshes every unit's net value and aggregates the site totals,
// and Select maps those totals to the single indicator that must be lit.
package balance
