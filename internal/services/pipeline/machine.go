// Package pipeline is the single gate through which an application's stage
// changes. It checks every move against an injected catalog and transition
// table and applies the hire guard before anything is mutated.
package pipeline

import (
	"errors"
	"strings"

	"ats/internal/domain"
	"ats/internal/services/history"
)

type Machine struct {
	catalog  *domain.Catalog
	table    *domain.TransitionTable
	recorder *history.Recorder
}

func New(catalog *domain.Catalog, table *domain.TransitionTable, recorder *history.Recorder) *Machine {
	return &Machine{catalog: catalog, table: table, recorder: recorder}
}

func (m *Machine) Catalog() *domain.Catalog { return m.catalog }

func (m *Machine) Table() *domain.TransitionTable { return m.table }

// Transition moves app to the requested stage and returns the new record.
//
// Requesting the current stage is an annotation: with notes a record with
// from == to is appended, without notes nothing happens and (nil, nil) is
// returned. Any other move must be in the transition table, and hired is
// additionally only reachable from offer_accepted. All checks run before app
// is touched, so a failed call leaves it unchanged.
func (m *Machine) Transition(app *domain.Application, to domain.Stage, actor, notes string) (*domain.StageTransition, error) {
	if app == nil {
		return nil, errors.New("pipeline: nil application")
	}
	if strings.TrimSpace(actor) == "" {
		return nil, &domain.ValidationError{Field: "actor", Message: "actor is required"}
	}
	if !m.catalog.Contains(to) {
		return nil, &domain.UnknownStageError{Value: to.String()}
	}
	from := app.Stage
	notes = strings.TrimSpace(notes)

	if to == from {
		if notes == "" {
			return nil, nil
		}
		rec := m.recorder.Record(app, &from, to, actor, notes)
		app.UpdatedAt = rec.CreatedAt
		return &rec, nil
	}
	if !m.table.IsAllowed(from, to) {
		return nil, m.invalid(from, to)
	}
	if to == domain.StageHired && from != domain.StageOfferAccepted {
		return nil, m.invalid(from, to)
	}

	rec := m.recorder.Record(app, &from, to, actor, notes)
	app.Stage = to
	app.UpdatedAt = rec.CreatedAt
	settle(app, rec)
	return &rec, nil
}

func (m *Machine) invalid(from, to domain.Stage) error {
	return &domain.InvalidTransitionError{From: from, To: to, Allowed: m.table.AllowedNextStages(from)}
}

// settle records the outcome of a terminal stage.
func settle(app *domain.Application, rec domain.StageTransition) {
	var outcome domain.DecisionOutcome
	switch rec.ToStage {
	case domain.StageHired:
		app.Status = domain.StatusHired
		outcome = domain.OutcomeHired
	case domain.StageDiscarded:
		app.Status = domain.StatusRejected
		outcome = domain.OutcomeRejected
	default:
		return
	}
	app.Decision = &domain.ApplicationDecision{
		Outcome:   outcome,
		Reason:    rec.Notes,
		DecidedBy: rec.Actor,
		DecidedAt: rec.CreatedAt,
	}
}
