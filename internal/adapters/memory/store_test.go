package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/domain"
	"ats/internal/ports"
)

func seed(t *testing.T, s *Store, id, jobID string) *domain.Application {
	t.Helper()
	app := domain.NewApplication(id, "cand-"+id, jobID, time.Now())
	require.NoError(t, s.Create(context.Background(), app))
	got, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	return got
}

func transition(appID string, from, to domain.Stage) domain.StageTransition {
	return domain.StageTransition{ID: appID + "-" + to.String(), ApplicationID: appID, FromStage: &from, ToStage: to, Actor: "u", CreatedAt: time.Now().UTC()}
}

func TestStore_CreateDuplicate(t *testing.T) {
	s := NewStore()
	seed(t, s, "a1", "j1")
	err := s.Create(context.Background(), domain.NewApplication("a1", "c", "j", time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStore_GetMissing(t *testing.T) {
	_, err := NewStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	app := seed(t, s, "a1", "j1")
	app.Stage = domain.StageHired
	app.Transitions = append(app.Transitions, transition("a1", domain.StageSourcing, domain.StageShortlist))

	again, err := s.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageSourcing, again.Stage)
	assert.Empty(t, again.Transitions)
}

func TestStore_CommitBumpsVersionAndQueuesEvents(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	app := seed(t, s, "a1", "j1")

	rec := transition("a1", domain.StageSourcing, domain.StageShortlist)
	app.Transitions = append(app.Transitions, rec)
	app.Stage = domain.StageShortlist
	require.NoError(t, s.Commit(ctx, app, 0, []domain.StageTransition{rec}))
	assert.Equal(t, int64(1), app.Version)

	stored, err := s.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageShortlist, stored.Stage)
	assert.Equal(t, int64(1), stored.Version)
	require.Len(t, stored.Transitions, 1)
	assert.Equal(t, rec.ID, stored.Transitions[0].ID)

	assert.Equal(t, 1, s.PendingEvents())
	ev, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec.ID, ev.TransitionID)
	assert.Equal(t, domain.StageShortlist, ev.ToStage)
	assert.Equal(t, 1, ev.Attempts)
}

func TestStore_CommitRejectsStaleVersion(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	first := seed(t, s, "a1", "j1")
	second, err := s.Get(ctx, "a1")
	require.NoError(t, err)

	first.Stage = domain.StageShortlist
	require.NoError(t, s.Commit(ctx, first, 0, []domain.StageTransition{transition("a1", domain.StageSourcing, domain.StageShortlist)}))

	second.Stage = domain.StageDiscarded
	err = s.Commit(ctx, second, 0, []domain.StageTransition{transition("a1", domain.StageSourcing, domain.StageDiscarded)})
	var conflict *domain.ConcurrentModificationError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "a1", conflict.ApplicationID)
	assert.Equal(t, int64(0), conflict.ExpectedVersion)

	stored, err := s.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageShortlist, stored.Stage)
	assert.Len(t, stored.Transitions, 1)
	assert.Equal(t, 1, s.PendingEvents(), "the losing commit must not queue events")
}

func TestStore_ListByJob(t *testing.T) {
	s := NewStore()
	seed(t, s, "a1", "j1")
	seed(t, s, "a2", "j2")
	seed(t, s, "a3", "j1")

	apps, err := s.ListByJob(context.Background(), "j1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "a1", apps[0].ID)
	assert.Equal(t, "a3", apps[1].ID)
}

func TestStore_EventRetries(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	app := seed(t, s, "a1", "j1")
	app.Stage = domain.StageShortlist
	require.NoError(t, s.Commit(ctx, app, 0, []domain.StageTransition{transition("a1", domain.StageSourcing, domain.StageShortlist)}))

	for i := 1; i <= ports.MaxEventAttempts; i++ {
		ev, found, err := s.ClaimNext(ctx)
		require.NoError(t, err)
		require.True(t, found, "attempt %d", i)
		assert.Equal(t, i, ev.Attempts)
		require.NoError(t, s.MarkFailed(ctx, ev.ID, "smtp down"))
	}
	_, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, s.PendingEvents())
}

func TestStore_ContactInfoMerges(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.PutCandidate("c1", domain.ContactInfo{Phone: "555"})

	merged, err := s.UpdateContactInfo(ctx, "c1", domain.ContactInfo{Email: " ana@example.com "})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactInfo{Email: "ana@example.com", Phone: "555"}, merged)

	got, err := s.ContactInfo(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, domain.ContactInfo{}, got)
}
