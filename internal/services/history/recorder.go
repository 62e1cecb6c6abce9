package history

import (
	"time"

	"github.com/google/uuid"

	"ats/internal/domain"
)

// Recorder appends audit records to an application's history. It trusts its
// caller: the state machine has already validated the move.
type Recorder struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Recorder)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithIDs replaces the record id generator.
func WithIDs(newID func() string) Option {
	return func(r *Recorder) { r.newID = newID }
}

func New(opts ...Option) *Recorder {
	r := &Recorder{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record builds an immutable transition, appends it to app.Transitions and
// returns it. Existing records are never touched.
func (r *Recorder) Record(app *domain.Application, from *domain.Stage, to domain.Stage, actor, notes string) domain.StageTransition {
	var fromCopy *domain.Stage
	if from != nil {
		f := *from
		fromCopy = &f
	}
	rec := domain.StageTransition{
		ID:            r.newID(),
		ApplicationID: app.ID,
		FromStage:     fromCopy,
		ToStage:       to,
		Actor:         actor,
		Notes:         notes,
		CreatedAt:     r.now().UTC(),
	}
	app.Transitions = append(app.Transitions, rec)
	return rec
}

// Latest returns the most recent record that moved into stage, or nil.
func Latest(transitions []domain.StageTransition, stage domain.Stage) *domain.StageTransition {
	for i := len(transitions) - 1; i >= 0; i-- {
		if transitions[i].ToStage == stage {
			rec := transitions[i]
			return &rec
		}
	}
	return nil
}
