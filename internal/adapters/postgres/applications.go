package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ats/internal/domain"
)

func (db *DB) Create(ctx context.Context, app domain.Application) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO applications (id, candidate_id, job_id, stage, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, app.ID, app.CandidateID, app.JobID, app.Stage.String(), string(app.Status), app.Version, app.CreatedAt, app.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("application %q already exists", app.ID)
	}
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// Get reads the application row and its history in one repeatable-read
// transaction, so a concurrent Commit is seen either fully or not at all.
func (db *DB) Get(ctx context.Context, id string) (*domain.Application, error) {
	var app *domain.Application
	err := db.withTx(ctx, snapshotRead, func(tx pgx.Tx) error {
		var err error
		if app, err = getApplication(ctx, tx, id); err != nil {
			return err
		}
		app.Transitions, err = transitions(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func getApplication(ctx context.Context, tx pgx.Tx, id string) (*domain.Application, error) {
	var (
		app                        domain.Application
		stage, status              string
		outcome, reason, decidedBy *string
		decidedAt                  *time.Time
	)
	err := tx.QueryRow(ctx, `
		SELECT a.id, a.candidate_id, a.job_id, a.stage, a.status, a.version, a.created_at, a.updated_at,
		       d.outcome, d.reason, d.decided_by, d.decided_at
		FROM applications a
		LEFT JOIN application_decisions d ON d.application_id = a.id
		WHERE a.id = $1
	`, id).Scan(&app.ID, &app.CandidateID, &app.JobID, &stage, &status, &app.Version, &app.CreatedAt, &app.UpdatedAt,
		&outcome, &reason, &decidedBy, &decidedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select application: %w", err)
	}
	if app.Stage, err = domain.ParseStage(stage); err != nil {
		return nil, fmt.Errorf("application %s: %w", id, err)
	}
	app.Status = domain.Status(status)
	if outcome != nil {
		app.Decision = &domain.ApplicationDecision{
			Outcome:   domain.DecisionOutcome(*outcome),
			Reason:    deref(reason),
			DecidedBy: deref(decidedBy),
			DecidedAt: decidedAt.UTC(),
		}
	}
	return &app, nil
}

func transitions(ctx context.Context, tx pgx.Tx, applicationID string) ([]domain.StageTransition, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, application_id, from_stage, to_stage, actor, notes, created_at
		FROM stage_transitions
		WHERE application_id = $1
		ORDER BY created_at, seq
	`, applicationID)
	if err != nil {
		return nil, fmt.Errorf("select transitions: %w", err)
	}
	defer rows.Close()

	out := []domain.StageTransition{}
	for rows.Next() {
		var (
			t    domain.StageTransition
			from *string
			to   string
		)
		if err := rows.Scan(&t.ID, &t.ApplicationID, &from, &to, &t.Actor, &t.Notes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		if t.FromStage, err = parseOptionalStage(from); err != nil {
			return nil, err
		}
		if t.ToStage, err = domain.ParseStage(to); err != nil {
			return nil, err
		}
		t.CreatedAt = t.CreatedAt.UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListByJob returns the job's applications oldest first, without history.
func (db *DB) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT a.id, a.candidate_id, a.job_id, a.stage, a.status, a.version, a.created_at, a.updated_at,
		       d.outcome, d.reason, d.decided_by, d.decided_at
		FROM applications a
		LEFT JOIN application_decisions d ON d.application_id = a.id
		WHERE a.job_id = $1
		ORDER BY a.created_at, a.id
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		var (
			app                        domain.Application
			stage, status              string
			outcome, reason, decidedBy *string
			decidedAt                  *time.Time
		)
		if err := rows.Scan(&app.ID, &app.CandidateID, &app.JobID, &stage, &status, &app.Version, &app.CreatedAt, &app.UpdatedAt,
			&outcome, &reason, &decidedBy, &decidedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		if app.Stage, err = domain.ParseStage(stage); err != nil {
			return nil, err
		}
		app.Status = domain.Status(status)
		if outcome != nil {
			app.Decision = &domain.ApplicationDecision{
				Outcome:   domain.DecisionOutcome(*outcome),
				Reason:    deref(reason),
				DecidedBy: deref(decidedBy),
				DecidedAt: decidedAt.UTC(),
			}
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// Commit locks the application row, checks the version and writes the new
// state, its transitions and their outbox events in one transaction.
func (db *DB) Commit(ctx context.Context, app *domain.Application, expectedVersion int64, appended []domain.StageTransition) error {
	next := expectedVersion + 1
	err := db.withTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var current int64
		err := tx.QueryRow(ctx, `SELECT version FROM applications WHERE id = $1 FOR UPDATE`, app.ID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("application %s: %w", app.ID, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lock application: %w", err)
		}
		if current != expectedVersion {
			return &domain.ConcurrentModificationError{ApplicationID: app.ID, ExpectedVersion: expectedVersion}
		}

		if _, err := tx.Exec(ctx, `
			UPDATE applications SET stage = $2, status = $3, updated_at = $4, version = $5 WHERE id = $1
		`, app.ID, app.Stage.String(), string(app.Status), app.UpdatedAt, next); err != nil {
			return fmt.Errorf("update application: %w", err)
		}

		for _, t := range appended {
			from := optionalStage(t.FromStage)
			if _, err := tx.Exec(ctx, `
				INSERT INTO stage_transitions (id, application_id, from_stage, to_stage, actor, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, t.ID, app.ID, from, t.ToStage.String(), t.Actor, t.Notes, t.CreatedAt); err != nil {
				return fmt.Errorf("insert transition: %w", err)
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO pipeline_events (id, application_id, transition_id, from_stage, to_stage, actor, notes, occurred_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, uuid.NewString(), app.ID, t.ID, from, t.ToStage.String(), t.Actor, t.Notes, t.CreatedAt); err != nil {
				return fmt.Errorf("queue event: %w", err)
			}
		}

		if d := app.Decision; d != nil {
			if _, err := tx.Exec(ctx, `
				INSERT INTO application_decisions (application_id, outcome, reason, decided_by, decided_at)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (application_id) DO UPDATE
				SET outcome = EXCLUDED.outcome, reason = EXCLUDED.reason,
				    decided_by = EXCLUDED.decided_by, decided_at = EXCLUDED.decided_at
			`, app.ID, string(d.Outcome), d.Reason, d.DecidedBy, d.DecidedAt); err != nil {
				return fmt.Errorf("upsert decision: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	app.Version = next
	return nil
}

func optionalStage(s *domain.Stage) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

func parseOptionalStage(v *string) (*domain.Stage, error) {
	if v == nil {
		return nil, nil
	}
	s, err := domain.ParseStage(*v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
