package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"ats/internal/domain"
	"ats/internal/ports"
)

// ClaimNext selects the oldest queued event using SKIP LOCKED and marks it
// dispatching, so several workers can drain the outbox side by side.
func (db *DB) ClaimNext(ctx context.Context) (event ports.StageEvent, found bool, err error) {
	err = db.withTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var from *string
		var to string
		err := tx.QueryRow(ctx, `
			SELECT id, application_id, transition_id, from_stage, to_stage, actor, notes, occurred_at, attempts
			FROM pipeline_events
			WHERE status = 'queued'
			ORDER BY queued_at
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		`).Scan(&event.ID, &event.ApplicationID, &event.TransitionID, &from, &to, &event.Actor, &event.Notes, &event.OccurredAt, &event.Attempts)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("claim event: %w", err)
		}
		if event.FromStage, err = parseOptionalStage(from); err != nil {
			return err
		}
		if event.ToStage, err = domain.ParseStage(to); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE pipeline_events SET status = 'dispatching', dispatched_at = now(), attempts = attempts + 1 WHERE id = $1
		`, event.ID); err != nil {
			return fmt.Errorf("mark dispatching: %w", err)
		}
		event.Attempts++
		found = true
		return nil
	})
	if err != nil {
		return ports.StageEvent{}, false, err
	}
	return event, found, nil
}

func (db *DB) MarkDelivered(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `UPDATE pipeline_events SET status = 'delivered' WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}

// MarkFailed requeues the event until it has used up its attempts.
func (db *DB) MarkFailed(ctx context.Context, eventID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
		UPDATE pipeline_events
		SET status = CASE WHEN attempts >= $3 THEN 'failed' ELSE 'queued' END,
		    last_error = $2
		WHERE id = $1
	`, eventID, reason, ports.MaxEventAttempts)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}
