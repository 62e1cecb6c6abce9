package applications

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats/internal/domain"
	"ats/internal/ports"
	"ats/internal/services/decisions"
	"ats/internal/services/pipeline"
	"ats/internal/services/timeline"
)

// contactStatuses are the stages the contact-status endpoint may set.
var contactStatuses = map[domain.Stage]bool{
	domain.StageContacted:     true,
	domain.StageInterested:    true,
	domain.StageNotInterested: true,
	domain.StageNoResponse:    true,
}

type Service struct {
	repo       ports.ApplicationRepository
	candidates ports.CandidateDirectory
	machine    *pipeline.Machine
	resolver   *decisions.Resolver
	presenter  *timeline.Presenter
	logger     *slog.Logger
	now        func() time.Time
	afterStage []func(context.Context)
}

type Option func(*Service)

// WithAfterCommit registers fn to run once a stage change has been
// committed. Hooks run synchronously on the caller's goroutine.
func WithAfterCommit(fn func(ctx context.Context)) Option {
	return func(s *Service) {
		s.afterStage = append(s.afterStage, fn)
	}
}

func New(repo ports.ApplicationRepository, candidates ports.CandidateDirectory, machine *pipeline.Machine, presenter *timeline.Presenter, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:       repo,
		candidates: candidates,
		machine:    machine,
		resolver:   decisions.New(machine),
		presenter:  presenter,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.Applications = (*Service)(nil)

func (s *Service) Create(ctx context.Context, candidateID, jobID string) (*domain.Application, error) {
	candidateID = strings.TrimSpace(candidateID)
	jobID = strings.TrimSpace(jobID)
	if candidateID == "" {
		return nil, &domain.ValidationError{Field: "candidate_id", Message: "candidate_id is required"}
	}
	if jobID == "" {
		return nil, &domain.ValidationError{Field: "job_id", Message: "job_id is required"}
	}
	app := domain.NewApplication(uuid.NewString(), candidateID, jobID, s.now())
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	s.logger.Info("application created",
		slog.String("application_id", app.ID),
		slog.String("candidate_id", candidateID),
		slog.String("job_id", jobID))
	return &app, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Application, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, &domain.ValidationError{Field: "job_id", Message: "job_id is required"}
	}
	return s.repo.ListByJob(ctx, jobID)
}

// ChangeStage moves an application to the requested stage.
func (s *Service) ChangeStage(ctx context.Context, id string, to domain.Stage, actor, notes string) (*ports.TransitionResult, error) {
	return s.mutate(ctx, id, func(app *domain.Application) (*domain.StageTransition, error) {
		return s.machine.Transition(app, to, actor, notes)
	})
}

// ChangeContactStatus is ChangeStage restricted to the contact outcomes.
func (s *Service) ChangeContactStatus(ctx context.Context, id string, to domain.Stage, actor, notes string) (*ports.TransitionResult, error) {
	if !contactStatuses[to] {
		return nil, &domain.ValidationError{Field: "stage", Message: "stage must be contacted, interested, not_interested or no_response"}
	}
	return s.ChangeStage(ctx, id, to, actor, notes)
}

// ApplyDecision resolves a consultant decision against the candidate's
// current contact details and applies the resulting transition.
func (s *Service) ApplyDecision(ctx context.Context, id string, decision domain.ConsultantDecision, actor string) (*ports.DecisionResult, error) {
	var res decisions.Resolution
	result, err := s.mutate(ctx, id, func(app *domain.Application) (*domain.StageTransition, error) {
		contact, err := s.candidates.ContactInfo(ctx, app.CandidateID)
		if err != nil {
			return nil, err
		}
		var rec *domain.StageTransition
		res, rec, err = s.resolver.Apply(app, decision, contact, actor)
		return rec, err
	})
	if err != nil {
		return nil, err
	}
	return &ports.DecisionResult{
		TransitionResult:          *result,
		RequiresContactCollection: res.RequiresContactCollection,
		MissingFields:             res.MissingFields,
	}, nil
}

// UpdateContactInfo stores newly collected contact details and, once they
// are complete, moves an application waiting at contact_pending on to
// contacted. The details are written only after the stage change commits,
// so a conflicting writer leaves the candidate untouched.
func (s *Service) UpdateContactInfo(ctx context.Context, id string, info domain.ContactInfo, actor string) (*ports.DecisionResult, error) {
	info.Email = strings.TrimSpace(info.Email)
	info.Phone = strings.TrimSpace(info.Phone)
	if info.Email == "" && info.Phone == "" {
		return nil, &domain.ValidationError{Field: "contact", Message: "email or phone is required"}
	}
	if strings.TrimSpace(actor) == "" {
		return nil, &domain.ValidationError{Field: "actor", Message: "actor is required"}
	}
	var missing []string
	result, err := s.mutate(ctx, id, func(app *domain.Application) (*domain.StageTransition, error) {
		current, err := s.candidates.ContactInfo(ctx, app.CandidateID)
		if err != nil {
			return nil, err
		}
		missing = decisions.MissingContactFields(current.Merge(info))
		if len(missing) > 0 || app.Stage != domain.StageContactPending {
			return nil, nil
		}
		return s.machine.Transition(app, domain.StageContacted, actor, "contact details completed")
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.candidates.UpdateContactInfo(ctx, result.Application.CandidateID, info); err != nil {
		return nil, err
	}
	return &ports.DecisionResult{
		TransitionResult:          *result,
		RequiresContactCollection: len(missing) > 0,
		MissingFields:             missing,
	}, nil
}

// UpdateStatus changes the lifecycle status. Hired and rejected are set by
// terminal stages only, and a closed application keeps its status.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status, actor string) (*domain.Application, error) {
	switch status {
	case domain.StatusActive, domain.StatusOnHold, domain.StatusWithdrawn:
	default:
		return nil, &domain.ValidationError{Field: "status", Message: "status must be active, on_hold or withdrawn"}
	}
	if strings.TrimSpace(actor) == "" {
		return nil, &domain.ValidationError{Field: "actor", Message: "actor is required"}
	}
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status.IsClosed() {
		return nil, &domain.ValidationError{Field: "status", Message: "application is closed as " + string(app.Status)}
	}
	if app.Status == status {
		return app, nil
	}
	expected := app.Version
	app.Status = status
	app.UpdatedAt = s.now().UTC()
	if err := s.repo.Commit(ctx, app, expected, nil); err != nil {
		return nil, err
	}
	s.logger.Info("application status changed",
		slog.String("application_id", app.ID),
		slog.String("status", string(status)),
		slog.String("actor", actor))
	return app, nil
}

func (s *Service) Timeline(ctx context.Context, id string) ([]domain.TimelineEntry, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.presenter.Build(app)
}

// mutate loads the application, lets fn change it in memory and commits the
// result against the loaded version. A conflicting writer makes the commit
// fail with *domain.ConcurrentModificationError; nothing is retried here.
func (s *Service) mutate(ctx context.Context, id string, fn func(*domain.Application) (*domain.StageTransition, error)) (*ports.TransitionResult, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	expected := app.Version
	before := len(app.Transitions)

	rec, err := fn(app)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &ports.TransitionResult{Application: app}, nil
	}
	if err := s.repo.Commit(ctx, app, expected, app.Transitions[before:]); err != nil {
		return nil, err
	}

	from := ""
	if rec.FromStage != nil {
		from = rec.FromStage.String()
	}
	s.logger.Info("application stage changed",
		slog.String("application_id", app.ID),
		slog.String("from", from),
		slog.String("to", rec.ToStage.String()),
		slog.String("actor", rec.Actor))
	for _, hook := range s.afterStage {
		hook(ctx)
	}
	return &ports.TransitionResult{Application: app, Transition: rec}, nil
}
