package memory

import (
	"context"
	"fmt"
	"sync"

	"ats/internal/domain"
)

type applicationEntry struct {
	mu  sync.Mutex
	app domain.Application
}

func (s *Store) Create(ctx context.Context, app domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.applications[app.ID]; exists {
		return fmt.Errorf("application %q already exists", app.ID)
	}
	s.applications[app.ID] = &applicationEntry{app: app.Clone()}
	s.order = append(s.order, app.ID)
	return nil
}

// Get returns a deep copy that is safe to mutate.
func (s *Store) Get(ctx context.Context, id string) (*domain.Application, error) {
	entry, ok := s.entry(id)
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	app := entry.app.Clone()
	return &app, nil
}

func (s *Store) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	s.mu.RLock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	s.mu.RUnlock()

	var out []domain.Application
	for _, id := range ids {
		entry, _ := s.entry(id)
		entry.mu.Lock()
		if entry.app.JobID == jobID {
			app := entry.app.Clone()
			app.Transitions = nil
			out = append(out, app)
		}
		entry.mu.Unlock()
	}
	return out, nil
}

func (s *Store) Commit(ctx context.Context, app *domain.Application, expectedVersion int64, appended []domain.StageTransition) error {
	entry, ok := s.entry(app.ID)
	if !ok {
		return fmt.Errorf("application %s: %w", app.ID, domain.ErrNotFound)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.app.Version != expectedVersion {
		return &domain.ConcurrentModificationError{ApplicationID: app.ID, ExpectedVersion: expectedVersion}
	}
	next := entry.app.Clone()
	next.Transitions = append(next.Transitions, appended...)
	next.Stage = app.Stage
	next.Status = app.Status
	next.UpdatedAt = app.UpdatedAt
	if app.Decision != nil {
		d := *app.Decision
		next.Decision = &d
	}
	next.Version = expectedVersion + 1
	entry.app = next.Clone()
	app.Version = next.Version

	s.enqueue(app.ID, appended)
	return nil
}

func (s *Store) entry(id string) (*applicationEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.applications[id]
	return e, ok
}
