package ports

import (
	"context"

	"ats/internal/domain"
)

// ApplicationRepository persists applications together with their history.
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) error
	// Get returns the application with its full transition history and
	// decision. Missing applications yield domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Application, error)
	// ListByJob returns a job's applications without transition history.
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	// Commit atomically stores app's stage, status and decision, appends the
	// given transitions and queues one stage event per transition. It fails
	// with *domain.ConcurrentModificationError unless the stored version still
	// equals expectedVersion, and sets app.Version to the new version.
	Commit(ctx context.Context, app *domain.Application, expectedVersion int64, appended []domain.StageTransition) error
}

// CandidateDirectory is the narrow view of the candidate store the pipeline
// uses to decide whether a candidate can be contacted.
type CandidateDirectory interface {
	ContactInfo(ctx context.Context, candidateID string) (domain.ContactInfo, error)
	// UpdateContactInfo overwrites the non-empty fields of info and returns
	// the merged contact details.
	UpdateContactInfo(ctx context.Context, candidateID string, info domain.ContactInfo) (domain.ContactInfo, error)
}
