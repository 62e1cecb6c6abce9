package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecorder_AppendsUTCRecord(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
	r := New(WithClock(fixedClock(at)), WithIDs(func() string { return "rec-1" }))

	app := domain.NewApplication("app-1", "cand-1", "job-1", at)
	from := domain.StageSourcing
	rec := r.Record(&app, &from, domain.StageShortlist, "consultant-7", "strong profile")

	require.Len(t, app.Transitions, 1)
	assert.Equal(t, rec, app.Transitions[0])
	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, "app-1", rec.ApplicationID)
	require.NotNil(t, rec.FromStage)
	assert.Equal(t, domain.StageSourcing, *rec.FromStage)
	assert.Equal(t, domain.StageShortlist, rec.ToStage)
	assert.Equal(t, "consultant-7", rec.Actor)
	assert.Equal(t, "strong profile", rec.Notes)
	assert.Equal(t, time.UTC, rec.CreatedAt.Location())
	assert.True(t, rec.CreatedAt.Equal(at))
}

func TestRecorder_DoesNotAliasFromStage(t *testing.T) {
	r := New()
	app := domain.NewApplication("app-1", "cand-1", "job-1", time.Now())
	from := domain.StageSourcing
	rec := r.Record(&app, &from, domain.StageShortlist, "u", "")

	from = domain.StageTerna
	assert.Equal(t, domain.StageSourcing, *rec.FromStage)
	assert.Equal(t, domain.StageSourcing, *app.Transitions[0].FromStage)
}

func TestRecorder_NilFromStage(t *testing.T) {
	r := New()
	app := domain.NewApplication("app-1", "cand-1", "job-1", time.Now())
	rec := r.Record(&app, nil, domain.StageSourcing, "importer", "")
	assert.Nil(t, rec.FromStage)
	assert.NotEmpty(t, rec.ID)
}

func TestRecorder_NeverRewritesHistory(t *testing.T) {
	r := New()
	app := domain.NewApplication("app-1", "cand-1", "job-1", time.Now())
	s1, s2 := domain.StageSourcing, domain.StageShortlist
	first := r.Record(&app, &s1, domain.StageShortlist, "u", "one")
	r.Record(&app, &s2, domain.StageTerna, "u", "two")

	require.Len(t, app.Transitions, 2)
	assert.Equal(t, first, app.Transitions[0])
}

func TestLatest(t *testing.T) {
	r := New()
	app := domain.NewApplication("app-1", "cand-1", "job-1", time.Now())
	s := domain.StageContacted
	r.Record(&app, &s, domain.StageContacted, "u", "first note")
	r.Record(&app, &s, domain.StageContacted, "u", "second note")

	got := Latest(app.Transitions, domain.StageContacted)
	require.NotNil(t, got)
	assert.Equal(t, "second note", got.Notes)
	assert.Nil(t, Latest(app.Transitions, domain.StageHired))
}
