package ports

import (
	"context"
	"time"

	"ats/internal/domain"
)

// StageEvent is an outbox entry written in the same commit as a transition.
type StageEvent struct {
	ID            string
	ApplicationID string
	TransitionID  string
	FromStage     *domain.Stage
	ToStage       domain.Stage
	Actor         string
	Notes         string
	OccurredAt    time.Time
	Attempts      int
}

// EventQueue supports claiming and settling queued stage events.
type EventQueue interface {
	ClaimNext(ctx context.Context) (event StageEvent, found bool, err error)
	MarkDelivered(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID string, reason string) error
}

// Notifier delivers stage events to whatever messaging channel is configured.
type Notifier interface {
	Notify(ctx context.Context, event StageEvent) error
}

// MaxEventAttempts bounds redelivery of a failing event.
const MaxEventAttempts = 5
