package ports

import (
	"context"

	"ats/internal/domain"
)

// TransitionResult is the outcome of a stage change. Transition is nil when
// the request was a silent no-op.
type TransitionResult struct {
	Application *domain.Application
	Transition  *domain.StageTransition
}

// DecisionResult extends TransitionResult with the contact-collection flag
// the UI needs to prompt for missing details.
type DecisionResult struct {
	TransitionResult
	RequiresContactCollection bool
	MissingFields             []string
}

// Applications is the use-case surface the HTTP adapter drives.
type Applications interface {
	Create(ctx context.Context, candidateID, jobID string) (*domain.Application, error)
	Get(ctx context.Context, id string) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	ChangeStage(ctx context.Context, id string, to domain.Stage, actor, notes string) (*TransitionResult, error)
	ChangeContactStatus(ctx context.Context, id string, to domain.Stage, actor, notes string) (*TransitionResult, error)
	ApplyDecision(ctx context.Context, id string, decision domain.ConsultantDecision, actor string) (*DecisionResult, error)
	UpdateContactInfo(ctx context.Context, id string, info domain.ContactInfo, actor string) (*DecisionResult, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, actor string) (*domain.Application, error)
	Timeline(ctx context.Context, id string) ([]domain.TimelineEntry, error)
}
