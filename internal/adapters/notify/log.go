// Package notify holds Notifier adapters for stage events.
package notify

import (
	"context"
	"log/slog"

	"ats/internal/ports"
)

// EventStageChanged is the event name carried by every stage notification.
const EventStageChanged = "pipeline.stage_changed"

// LogNotifier writes each event to the structured log. It stands in for
// mail or chat delivery, which live outside this service.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, event ports.StageEvent) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	from := ""
	if event.FromStage != nil {
		from = event.FromStage.String()
	}
	logger.InfoContext(ctx, EventStageChanged,
		slog.String("event_id", event.ID),
		slog.String("application_id", event.ApplicationID),
		slog.String("transition_id", event.TransitionID),
		slog.String("from", from),
		slog.String("to", event.ToStage.String()),
		slog.String("actor", event.Actor),
		slog.Time("occurred_at", event.OccurredAt),
		slog.Int("attempt", event.Attempts))
	return nil
}

var _ ports.Notifier = LogNotifier{}
