package domain

import "fmt"

// TransitionTable holds, for each stage, the stages reachable in one step.
type TransitionTable struct {
	next map[Stage][]Stage
}

// DefaultTransitionTable returns the adjacency of the standard pipeline.
func DefaultTransitionTable() *TransitionTable {
	return NewTransitionTable(map[Stage][]Stage{
		StageSourcing:           {StageShortlist, StageDiscarded},
		StageShortlist:          {StageTerna, StageDiscarded},
		StageTerna:              {StageContactPending, StageDiscarded},
		StageContactPending:     {StageContacted, StageDiscarded},
		StageContacted:          {StageInterested, StageNotInterested, StageNoResponse, StageDiscarded},
		StageInterested:         {StageInterviewScheduled, StageDiscarded},
		StageNotInterested:      {StageDiscarded},
		StageNoResponse:         {StageDiscarded},
		StageInterviewScheduled: {StageInterviewDone, StageDiscarded},
		StageInterviewDone:      {StageOfferSent, StageDiscarded},
		StageOfferSent:          {StageOfferAccepted, StageOfferRejected, StageDiscarded},
		StageOfferAccepted:      {StageHired},
		StageOfferRejected:      {StageDiscarded},
		StageHired:              {},
		StageDiscarded:          {},
	})
}

// NewTransitionTable copies edges, dropping duplicate targets and self loops.
func NewTransitionTable(edges map[Stage][]Stage) *TransitionTable {
	next := make(map[Stage][]Stage, len(edges))
	for from, targets := range edges {
		seen := make(map[Stage]bool, len(targets))
		list := make([]Stage, 0, len(targets))
		for _, to := range targets {
			if to == from || seen[to] {
				continue
			}
			seen[to] = true
			list = append(list, to)
		}
		next[from] = list
	}
	return &TransitionTable{next: next}
}

// AllowedNextStages returns the one-step targets of from, in table order.
func (t *TransitionTable) AllowedNextStages(from Stage) []Stage {
	targets := t.next[from]
	out := make([]Stage, len(targets))
	copy(out, targets)
	return out
}

// IsAllowed reports whether from -> to is a legal single step. Staying on the
// same stage is always allowed.
func (t *TransitionTable) IsAllowed(from, to Stage) bool {
	if from == to {
		return true
	}
	for _, s := range t.next[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no stage can be reached from s.
func (t *TransitionTable) IsTerminal(s Stage) bool {
	return len(t.next[s]) == 0
}

// Validate checks the table against a catalog: every referenced stage must be
// in the catalog, hired and discarded must be dead ends, and every other
// catalog stage must lead somewhere.
func (t *TransitionTable) Validate(c *Catalog) error {
	for from, targets := range t.next {
		if !c.Contains(from) {
			return fmt.Errorf("transition table: %w", &UnknownStageError{Value: from.String()})
		}
		for _, to := range targets {
			if !c.Contains(to) {
				return fmt.Errorf("transition table: %s -> %w", from, &UnknownStageError{Value: to.String()})
			}
		}
	}
	for _, s := range c.Stages() {
		terminal := t.IsTerminal(s)
		switch s {
		case StageHired, StageDiscarded:
			if !terminal {
				return fmt.Errorf("transition table: %s must be terminal", s)
			}
		default:
			if terminal {
				return fmt.Errorf("transition table: %s has no outgoing transitions", s)
			}
		}
	}
	return nil
}
