package domain

import (
	"strings"
	"time"
)

// Core domain models. HTTP shapes are generated into internal/api;
// keep these decoupled from transport concerns.

// Status tracks the application's lifecycle, independently of its stage.
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusWithdrawn Status = "withdrawn"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
)

// IsClosed reports whether the status was set by a terminal stage.
func (s Status) IsClosed() bool {
	return s == StatusHired || s == StatusRejected
}

func ParseStatus(value string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(value)))
	switch st {
	case StatusActive, StatusOnHold, StatusWithdrawn, StatusHired, StatusRejected:
		return st, nil
	}
	return "", &ValidationError{Field: "status", Message: "status must be active, on_hold, withdrawn, hired or rejected"}
}

// Application is one candidate's journey through one job's pipeline.
// Stage only changes through the pipeline state machine.
type Application struct {
	ID          string               `json:"id"`
	CandidateID string               `json:"candidate_id"`
	JobID       string               `json:"job_id"`
	Stage       Stage                `json:"stage"`
	Status      Status               `json:"status"`
	Version     int64                `json:"version"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Transitions []StageTransition    `json:"transitions"`
	Decision    *ApplicationDecision `json:"decision,omitempty"`
}

// NewApplication returns an application at the initial stage.
func NewApplication(id, candidateID, jobID string, now time.Time) Application {
	now = now.UTC()
	return Application{
		ID:          id,
		CandidateID: candidateID,
		JobID:       jobID,
		Stage:       InitialStage,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		Transitions: []StageTransition{},
	}
}

// Clone returns a deep copy that shares no slices or pointers with a.
func (a Application) Clone() Application {
	out := a
	out.Transitions = make([]StageTransition, len(a.Transitions))
	for i, t := range a.Transitions {
		out.Transitions[i] = t.clone()
	}
	if a.Decision != nil {
		d := *a.Decision
		out.Decision = &d
	}
	return out
}

// StageTransition is an immutable audit record of one stage change.
// FromStage is nil only for the first record of an imported history.
type StageTransition struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	FromStage     *Stage    `json:"from_stage"`
	ToStage       Stage     `json:"to_stage"`
	Actor         string    `json:"actor"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (t StageTransition) clone() StageTransition {
	if t.FromStage != nil {
		from := *t.FromStage
		t.FromStage = &from
	}
	return t
}

type DecisionOutcome string

const (
	OutcomeHired    DecisionOutcome = "hired"
	OutcomeRejected DecisionOutcome = "rejected"
)

// ApplicationDecision records how an application ended.
type ApplicationDecision struct {
	Outcome   DecisionOutcome `json:"outcome"`
	Reason    string          `json:"reason,omitempty"`
	DecidedBy string          `json:"decided_by"`
	DecidedAt time.Time       `json:"decided_at"`
}

type DecisionKind string

const (
	DecisionContinue DecisionKind = "continue"
	DecisionDiscard  DecisionKind = "discard"
)

// ConsultantDecision is a recruiter's advance-or-discard call. It drives a
// transition and is not stored on its own.
type ConsultantDecision struct {
	Decision DecisionKind
	Reason   string
}

// ContactInfo is the slice of candidate data the pipeline needs to decide
// whether a candidate can be contacted.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Merge returns c with the non-blank fields of update applied on top.
func (c ContactInfo) Merge(update ContactInfo) ContactInfo {
	if v := strings.TrimSpace(update.Email); v != "" {
		c.Email = v
	}
	if v := strings.TrimSpace(update.Phone); v != "" {
		c.Phone = v
	}
	return c
}

// TimelineEntry is one row of the display view of an application's path.
type TimelineEntry struct {
	Stage       Stage            `json:"stage"`
	Label       string           `json:"label"`
	Category    Category         `json:"category"`
	Order       int              `json:"order"`
	IsCompleted bool             `json:"is_completed"`
	IsActive    bool             `json:"is_active"`
	IsTerminal  bool             `json:"is_terminal"`
	Transition  *StageTransition `json:"transition,omitempty"`
}
