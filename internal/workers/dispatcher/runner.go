// Package dispatcher drains the stage event outbox into a Notifier.
package dispatcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ats/internal/ports"
)

// Run starts worker goroutines that claim events and deliver them. It blocks
// until ctx is done and every worker has returned.
func Run(ctx context.Context, queue ports.EventQueue, notifier ports.Notifier, concurrency int, pollInterval time.Duration, logger *slog.Logger) error {
	if concurrency < 1 {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	events := make(chan ports.StageEvent, concurrency)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for ev := range events {
				// Settle with a fresh context so shutdown does not strand a
				// claimed event in the dispatching state.
				deliver(context.WithoutCancel(ctx), queue, notifier, ev, logger.With(slog.Int("worker", idx)))
			}
		}(i)
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	defer wg.Wait()
	defer close(events)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for {
				ev, found, err := queue.ClaimNext(ctx)
				if err != nil {
					if ctx.Err() == nil {
						logger.Error("event claim failed", slog.String("error", err.Error()))
					}
					break
				}
				if !found {
					break
				}
				events <- ev
			}
		}
	}
}

// DispatchPending delivers queued events on the calling goroutine until the
// queue is empty and returns how many were claimed.
func DispatchPending(ctx context.Context, queue ports.EventQueue, notifier ports.Notifier, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	n := 0
	for {
		ev, found, err := queue.ClaimNext(ctx)
		if err != nil {
			return n, err
		}
		if !found {
			return n, nil
		}
		n++
		deliver(ctx, queue, notifier, ev, logger)
	}
}

func deliver(ctx context.Context, queue ports.EventQueue, notifier ports.Notifier, ev ports.StageEvent, logger *slog.Logger) {
	if err := notifier.Notify(ctx, ev); err != nil {
		logger.Warn("event delivery failed",
			slog.String("event_id", ev.ID),
			slog.Int("attempt", ev.Attempts),
			slog.String("error", err.Error()))
		if err := queue.MarkFailed(ctx, ev.ID, err.Error()); err != nil {
			logger.Error("mark event failed", slog.String("event_id", ev.ID), slog.String("error", err.Error()))
		}
		return
	}
	if err := queue.MarkDelivered(ctx, ev.ID); err != nil {
		logger.Error("mark event delivered", slog.String("event_id", ev.ID), slog.String("error", err.Error()))
	}
}
