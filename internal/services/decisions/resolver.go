// Package decisions turns a consultant's continue/discard call into a
// concrete pipeline stage. Resolution is pure; Apply hands the result to the
// state machine so adjacency rules always apply.
package decisions

import (
	"strings"

	"ats/internal/domain"
)

// Transitioner is the part of the state machine the resolver drives.
type Transitioner interface {
	Transition(app *domain.Application, to domain.Stage, actor, notes string) (*domain.StageTransition, error)
}

type Resolution struct {
	TargetStage               domain.Stage
	RequiresContactCollection bool
	MissingFields             []string
	notes                     string
}

type Resolver struct {
	machine Transitioner
}

func New(machine Transitioner) *Resolver {
	return &Resolver{machine: machine}
}

// Resolve picks the target stage for a decision. Discarding needs a reason.
// Continuing goes to contacted when email and phone are both on file and to
// contact_pending otherwise, flagging that the caller must collect them.
func (r *Resolver) Resolve(app *domain.Application, d domain.ConsultantDecision, contact domain.ContactInfo) (Resolution, error) {
	if app == nil {
		return Resolution{}, &domain.ValidationError{Field: "application", Message: "application is required"}
	}
	reason := strings.TrimSpace(d.Reason)
	switch domain.DecisionKind(strings.ToLower(strings.TrimSpace(string(d.Decision)))) {
	case domain.DecisionDiscard:
		if reason == "" {
			return Resolution{}, &domain.ValidationError{Field: "reason", Message: "a reason is required to discard a candidate"}
		}
		return Resolution{TargetStage: domain.StageDiscarded, notes: reason}, nil
	case domain.DecisionContinue:
		missing := MissingContactFields(contact)
		if len(missing) > 0 {
			return Resolution{
				TargetStage:               domain.StageContactPending,
				RequiresContactCollection: true,
				MissingFields:             missing,
				notes:                     reason,
			}, nil
		}
		return Resolution{TargetStage: domain.StageContacted, notes: reason}, nil
	default:
		return Resolution{}, &domain.ValidationError{Field: "decision", Message: "decision must be continue or discard"}
	}
}

// Apply resolves the decision and performs the transition. It returns
// immediately when contact details are missing; collecting them is up to the
// caller.
func (r *Resolver) Apply(app *domain.Application, d domain.ConsultantDecision, contact domain.ContactInfo, actor string) (Resolution, *domain.StageTransition, error) {
	res, err := r.Resolve(app, d, contact)
	if err != nil {
		return Resolution{}, nil, err
	}
	rec, err := r.machine.Transition(app, res.TargetStage, actor, res.notes)
	if err != nil {
		return Resolution{}, nil, err
	}
	return res, rec, nil
}
