package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ats/internal/domain"
	"ats/internal/ports"
)

type eventStatus string

const (
	eventQueued      eventStatus = "queued"
	eventDispatching eventStatus = "dispatching"
	eventDelivered   eventStatus = "delivered"
	eventFailed      eventStatus = "failed"
)

type eventEntry struct {
	event     ports.StageEvent
	status    eventStatus
	lastError string
}

func (s *Store) enqueue(applicationID string, transitions []domain.StageTransition) {
	if len(transitions) == 0 {
		return
	}
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	for _, t := range transitions {
		var from *domain.Stage
		if t.FromStage != nil {
			f := *t.FromStage
			from = &f
		}
		s.events = append(s.events, &eventEntry{
			status: eventQueued,
			event: ports.StageEvent{
				ID:            uuid.NewString(),
				ApplicationID: applicationID,
				TransitionID:  t.ID,
				FromStage:     from,
				ToStage:       t.ToStage,
				Actor:         t.Actor,
				Notes:         t.Notes,
				OccurredAt:    t.CreatedAt,
			},
		})
	}
}

// ClaimNext hands out the oldest queued event and marks it dispatching.
func (s *Store) ClaimNext(ctx context.Context) (ports.StageEvent, bool, error) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	for _, e := range s.events {
		if e.status != eventQueued {
			continue
		}
		e.status = eventDispatching
		e.event.Attempts++
		return e.event, true, nil
	}
	return ports.StageEvent{}, false, nil
}

func (s *Store) MarkDelivered(ctx context.Context, eventID string) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	e, err := s.findEvent(eventID)
	if err != nil {
		return err
	}
	e.status = eventDelivered
	return nil
}

// MarkFailed requeues the event until it has used up its attempts.
func (s *Store) MarkFailed(ctx context.Context, eventID string, reason string) error {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	e, err := s.findEvent(eventID)
	if err != nil {
		return err
	}
	e.lastError = reason
	if e.event.Attempts >= ports.MaxEventAttempts {
		e.status = eventFailed
	} else {
		e.status = eventQueued
	}
	return nil
}

// PendingEvents counts events not yet delivered or given up on.
func (s *Store) PendingEvents() int {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	n := 0
	for _, e := range s.events {
		if e.status == eventQueued || e.status == eventDispatching {
			n++
		}
	}
	return n
}

func (s *Store) findEvent(id string) (*eventEntry, error) {
	for _, e := range s.events {
		if e.event.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
}
