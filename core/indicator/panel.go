package indicator

import (
	"context"
	"errors"

	"github.com/kilianp07/zoa/core/factory"
	"github.com/kilianp07/zoa/core/model"
)

// Panel drives the four status outputs. Show clears every output before
// lighting ind, so exactly one indicator is on after it returns.
type Panel interface {
	Show(ctx context.Context, ind model.Indicator) error
	Close() error
}

// StateReader is implemented by panels that can report their current outputs.
type StateReader interface {
	States() model.IndicatorStates
}

// NopPanel discards indicator changes.
type NopPanel struct{}

func (NopPanel) Show(context.Context, model.Indicator) error { return nil }
func (NopPanel) Close() error                                { return nil }

// MultiPanel fans indicator changes out to several panels.
type MultiPanel struct {
	Panels []Panel
}

// NewMultiPanel creates a MultiPanel with the provided panels.
func NewMultiPanel(panels ...Panel) *MultiPanel {
	return &MultiPanel{Panels: panels}
}

// Show forwards to all panels, returning the first error encountered.
func (m *MultiPanel) Show(ctx context.Context, ind model.Indicator) error {
	for _, p := range m.Panels {
		if err := p.Show(ctx, ind); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every panel and joins their errors.
func (m *MultiPanel) Close() error {
	var errs []error
	for _, p := range m.Panels {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var panelRegistry = factory.NewRegistry[Panel]()

// RegisterPanel adds a panel factory identified by name.
func RegisterPanel(name string, f factory.Factory[Panel]) error {
	return panelRegistry.Register(name, f)
}

// PanelTypes lists the registered panel backends.
func PanelTypes() []string { return panelRegistry.Names() }

// NewPanel creates a Panel from the provided configuration. Several
// configurations are combined into a MultiPanel.
func NewPanel(cfgs []factory.ModuleConfig) (Panel, error) {
	if len(cfgs) == 0 {
		return NopPanel{}, nil
	}
	if len(cfgs) == 1 {
		return panelRegistry.Create(cfgs[0])
	}
	panels := make([]Panel, 0, len(cfgs))
	for _, c := range cfgs {
		p, err := panelRegistry.Create(c)
		if err != nil {
			_ = NewMultiPanel(panels...).Close()
			return nil, err
		}
		panels = append(panels, p)
	}
	return NewMultiPanel(panels...), nil
}
