// Package report renders the human-readable status stream.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kilianp07/zoa/core/balance"
	"github.com/kilianp07/zoa/core/model"
)

const (
	unitHeader = "----- Unit Data -----"
	unitFooter = "---------------------"
)

// Writer prints banners, status tables and indicator lines.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Banner prints "==== title ====". A leading blank line is added when
// spaced is true.
func (r *Writer) Banner(title string, spaced bool) error {
	prefix := ""
	if spaced {
		prefix = "\n"
	}
	_, err := fmt.Fprintf(r.w, "%s==== %s ====\n", prefix, title)
	return err
}

// Scenario prints the scenario heading.
func (r *Writer) Scenario(number int, title string) error {
	_, err := fmt.Fprintf(r.w, "\n=== Scenario %d: %s ===\n", number, title)
	return err
}

// Announce prints an action line.
func (r *Writer) Announce(msg string) error {
	_, err := fmt.Fprintf(r.w, "\n>>> %s\n", msg)
	return err
}

// Indicator prints "<label> <Colour> LED ON".
func (r *Writer) Indicator(label string, ind model.Indicator) error {
	_, err := fmt.Fprintf(r.w, "%s %s LED ON\n", label, capitalize(ind.Color()))
	return err
}

// Status prints every unit followed by the totals.
func (r *Writer) Status(st balance.Status) error {
	var b strings.Builder
	b.WriteString(unitHeader + "\n")
	for _, u := range st.Units {
		fmt.Fprintf(&b, "%s | Supply: %.2f W, Demand: %.2f W, Net: %.2f\n", u.Name, u.Supply, u.Demand, u.Net)
	}
	fmt.Fprintf(&b, "Total Surplus: %.2f\n", st.TotalSurplus)
	fmt.Fprintf(&b, "Total Deficit: %.2f\n", st.TotalDeficit)
	b.WriteString(unitFooter + "\n")
	_, err := io.WriteString(r.w, b.String())
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
