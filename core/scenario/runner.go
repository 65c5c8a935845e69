package scenario

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/zoa/core/balance"
	"github.com/kilianp07/zoa/core/events"
	"github.com/kilianp07/zoa/core/indicator"
	"github.com/kilianp07/zoa/core/logger"
	"github.com/kilianp07/zoa/core/model"
	"github.com/kilianp07/zoa/core/report"
	"github.com/kilianp07/zoa/internal/eventbus"
)

// PhaseResult records what a phase displayed.
type PhaseResult struct {
	Scenario     string
	Phase        int
	Expected     model.Indicator
	Observed     model.Indicator
	TotalSurplus float64
	TotalDeficit float64
}

// Match reports whether the observed indicator is the expected one.
func (p PhaseResult) Match() bool { return p.Expected == p.Observed }

// Summary is the outcome of a run.
type Summary struct {
	RunID      string
	Results    []PhaseResult
	Mismatches int
}

// OK reports whether every phase lit its expected indicator.
func (s Summary) OK() bool { return s.Mismatches == 0 }

// Option configures a Runner.
type Option func(*Runner)

// WithBus publishes phase, status and indicator events on bus.
func WithBus(bus eventbus.EventBus) Option {
	return func(r *Runner) { r.bus = bus }
}

// WithLogger sets the runner logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithPacingScale multiplies every hold. Zero disables waiting.
func WithPacingScale(scale float64) Option {
	return func(r *Runner) { r.scale = scale }
}

// WithSleep replaces the context aware sleep used for holds.
func WithSleep(fn func(context.Context, time.Duration) error) Option {
	return func(r *Runner) { r.sleep = fn }
}

// Runner plays scenarios sequentially.
type Runner struct {
	units  *model.Units
	panel  indicator.Panel
	report *report.Writer
	bus    eventbus.EventBus
	log    logger.Logger
	scale  float64
	sleep  func(context.Context, time.Duration) error
	now    func() time.Time
}

// NewRunner returns a runner mutating units in place, printing to out and
// driving panel.
func NewRunner(units *model.Units, panel indicator.Panel, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		units:  units,
		panel:  panel,
		report: report.NewWriter(out),
		log:    logger.NopLogger{},
		scale:  1,
		sleep:  sleepCtx,
		now:    time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	if r.panel == nil {
		r.panel = indicator.NopPanel{}
	}
	return r
}

// Run prints the process banners and plays every scenario in order. It
// stops at the first output error or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	r.log.Infof("run %s: %d scenario(s)", sum.RunID, len(scenarios))
	if err := r.report.Banner("ZOA Balancing Process", false); err != nil {
		return sum, fmt.Errorf("write report: %w", err)
	}
	for _, sc := range scenarios {
		if err := r.runScenario(ctx, sc, &sum); err != nil {
			return sum, err
		}
	}
	if err := r.report.Banner("End of Process", true); err != nil {
		return sum, fmt.Errorf("write report: %w", err)
	}
	r.log.Infof("run %s finished with %d mismatch(es)", sum.RunID, sum.Mismatches)
	return sum, nil
}

func (r *Runner) runScenario(ctx context.Context, sc Scenario, sum *Summary) error {
	if err := r.report.Scenario(sc.Number, sc.Title); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for i, ph := range sc.Phases {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.runPhase(ctx, sc, i, ph, sum.RunID)
		if err != nil {
			return fmt.Errorf("scenario %s phase %d: %w", sc.Name, i, err)
		}
		sum.Results = append(sum.Results, res)
		if !res.Match() {
			sum.Mismatches++
			r.log.Warnf("scenario %s phase %d: expected %s indicator, got %s", sc.Name, i, res.Expected, res.Observed)
		}
	}
	return nil
}

func (r *Runner) runPhase(ctx context.Context, sc Scenario, idx int, ph Phase, runID string) (PhaseResult, error) {
	r.publish(events.PhaseEvent{RunID: runID, Scenario: sc.Name, Phase: idx, Time: r.now()})
	if ph.Announce != "" {
		if err := r.report.Announce(ph.Announce); err != nil {
			return PhaseResult{}, err
		}
	}
	if ph.Supplies != nil {
		r.units.SetSupplies(*ph.Supplies)
	}
	if ph.Inject {
		r.units.Inject()
	}
	st := balance.Compute(r.units)
	if ph.Report {
		if err := r.report.Status(st); err != nil {
			return PhaseResult{}, err
		}
		r.publish(events.StatusEvent{RunID: runID, Scenario: sc.Name, Status: st, Time: r.now()})
		r.log.Debugw("status", map[string]any{
			"scenario": sc.Name,
			"surplus":  st.TotalSurplus,
			"deficit":  st.TotalDeficit,
		})
	}

	ind := balance.Select(st.TotalSurplus, st.TotalDeficit, ph.Solar)
	if err := r.panel.Show(ctx, ind); err != nil {
		return PhaseResult{}, fmt.Errorf("show indicator: %w", err)
	}
	r.publish(events.IndicatorEvent{RunID: runID, Scenario: sc.Name, Indicator: ind, SolarUsed: ph.Solar, Time: r.now()})
	if ph.Label != "" {
		if err := r.report.Indicator(ph.Label, ind); err != nil {
			return PhaseResult{}, err
		}
	}

	res := PhaseResult{
		Scenario:     sc.Name,
		Phase:        idx,
		Expected:     ph.Expect,
		Observed:     ind,
		TotalSurplus: st.TotalSurplus,
		TotalDeficit: st.TotalDeficit,
	}
	if err := r.sleep(ctx, time.Duration(float64(ph.Hold)*r.scale)); err != nil {
		return res, err
	}
	return res, nil
}

func (r *Runner) publish(ev eventbus.Event) {
	if r.bus != nil {
		r.bus.Publish(ev)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
