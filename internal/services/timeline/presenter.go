// Package timeline derives the display view of an application's progress
// through the pipeline. It is a read-side projection and never modifies the
// application it is given.
package timeline

import (
	"ats/internal/domain"
	"ats/internal/services/history"
)

type Presenter struct {
	catalog *domain.Catalog
}

func New(catalog *domain.Catalog) *Presenter {
	return &Presenter{catalog: catalog}
}

// Build returns the ordered stages to show for app.
//
// On the main path it shows the initial stages, everything before the
// current stage, the current stage and the next stage by order. A hired
// application shows its whole path plus the final stages. When the current
// stage is a negative outcome the path actually travelled is shown, followed
// by the outcome as the active, terminal row. Final outcomes include every
// final-category stage either way.
func (p *Presenter) Build(app *domain.Application) ([]domain.TimelineEntry, error) {
	current, err := p.catalog.Definition(app.Stage)
	if err != nil {
		return nil, err
	}
	if current.Negative {
		return p.negativePath(app, current), nil
	}

	var out []domain.TimelineEntry
	for _, d := range p.catalog.Definitions() {
		if !p.onPath(d, current) {
			continue
		}
		out = append(out, p.entry(app, d, d.Order < current.Order))
	}
	return out, nil
}

func (p *Presenter) onPath(d, current domain.StageDefinition) bool {
	if d.Stage == current.Stage {
		return true
	}
	switch current.Category {
	case domain.CategoryFinal:
		return d.Order <= current.Order || d.Category == domain.CategoryFinal
	case domain.CategoryInitial, domain.CategoryContact, domain.CategoryInterview, domain.CategoryOffer:
		if d.Negative {
			return false
		}
		return d.Category == domain.CategoryInitial || d.Order < current.Order || d.Order == current.Order+1
	default:
		return false
	}
}

// negativePath shows the main-path stages up to the furthest one the history
// reached, any other negative stages passed through, and then the current
// outcome. A final-category outcome also lists the other final stages, so a
// discarded application still shows where hired would have been.
func (p *Presenter) negativePath(app *domain.Application, current domain.StageDefinition) []domain.TimelineEntry {
	reached := 0
	visited := make(map[domain.Stage]bool)
	note := func(s domain.Stage) {
		d, err := p.catalog.Definition(s)
		if err != nil || s == current.Stage {
			return
		}
		if d.Negative {
			visited[s] = true
			return
		}
		reached = d.Order
	}
	for _, t := range app.Transitions {
		if t.FromStage != nil {
			note(*t.FromStage)
		}
		note(t.ToStage)
	}

	var out []domain.TimelineEntry
	for _, d := range p.catalog.Definitions() {
		if d.Negative {
			continue
		}
		if d.Category == domain.CategoryFinal {
			if current.Category == domain.CategoryFinal {
				out = append(out, p.entry(app, d, false))
			}
			continue
		}
		if d.Category == domain.CategoryInitial || d.Order <= reached {
			out = append(out, p.entry(app, d, d.Order <= reached))
		}
	}
	for _, d := range p.catalog.Definitions() {
		if visited[d.Stage] {
			out = append(out, p.entry(app, d, true))
		}
	}
	return append(out, p.entry(app, current, false))
}

func (p *Presenter) entry(app *domain.Application, d domain.StageDefinition, completed bool) domain.TimelineEntry {
	active := d.Stage == app.Stage
	return domain.TimelineEntry{
		Stage:       d.Stage,
		Label:       d.Label,
		Category:    d.Category,
		Order:       d.Order,
		IsCompleted: completed && !active,
		IsActive:    active,
		IsTerminal:  d.Category == domain.CategoryFinal || (active && d.Negative),
		Transition:  history.Latest(app.Transitions, d.Stage),
	}
}
