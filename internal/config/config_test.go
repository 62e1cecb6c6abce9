package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/domain"
	"ats/internal/services/history"
	"ats/internal/services/pipeline"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("EVENT_WORKERS", "")
	t.Setenv("EVENT_POLL_INTERVAL", "")
	t.Setenv("MUTATION_RATE_LIMIT", "")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 1, cfg.EventWorkers)
	assert.Equal(t, 500*time.Millisecond, cfg.EventPollInterval)
	assert.Equal(t, 60, cfg.MutationRateLimit)
	assert.True(t, cfg.MigrateOnStart)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ats")
	t.Setenv("EVENT_WORKERS", "4")
	t.Setenv("EVENT_POLL_INTERVAL", "2s")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("MUTATION_RATE_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.EventWorkers)
	assert.Equal(t, 2*time.Second, cfg.EventPollInterval)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, 30*time.Second, cfg.MutationRateWindow)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ats")
	t.Setenv("EVENT_WORKERS", "many")
	t.Setenv("EVENT_POLL_INTERVAL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVENT_WORKERS")
	assert.Contains(t, err.Error(), "EVENT_POLL_INTERVAL")
}

const smallTemplate = `
name: agency
stages:
  - {stage: sourcing, label: Sourced, order: 1, category: initial}
  - {stage: shortlist, order: 2, category: initial}
  - {stage: hired, label: Hired, order: 3, category: final}
  - {stage: discarded, label: Out, order: 99, category: final, negative: true}
transitions:
  sourcing: [shortlist, discarded]
  shortlist: [hired, discarded]
`

func TestParsePipelineTemplate(t *testing.T) {
	catalog, table, err := ParsePipelineTemplate([]byte(smallTemplate))
	require.NoError(t, err)

	assert.Equal(t, []domain.Stage{domain.StageSourcing, domain.StageShortlist, domain.StageHired, domain.StageDiscarded}, catalog.Stages())
	label, err := catalog.Label(domain.StageShortlist)
	require.NoError(t, err)
	assert.Equal(t, "shortlist", label)
	assert.False(t, catalog.Contains(domain.StageTerna))

	assert.True(t, table.IsAllowed(domain.StageShortlist, domain.StageHired))
	assert.True(t, table.IsTerminal(domain.StageHired))
}

func TestParsePipelineTemplate_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown stage":    "stages: [{stage: lunch, order: 1, category: initial}]",
		"unknown category": "stages: [{stage: sourcing, order: 1, category: misc}]",
		"missing hired": `
stages:
  - {stage: sourcing, order: 1, category: initial}
  - {stage: discarded, order: 2, category: final}
transitions:
  sourcing: [discarded]
`,
		"dead end": `
stages:
  - {stage: sourcing, order: 1, category: initial}
  - {stage: hired, order: 2, category: final}
  - {stage: discarded, order: 3, category: final}
transitions: {}
`,
		"not yaml": "stages: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := ParsePipelineTemplate([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadPipelineTemplate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallTemplate), 0o600))
	catalog, _, err := LoadPipelineTemplate(path)
	require.NoError(t, err)
	assert.Len(t, catalog.Stages(), 4)

	_, _, err = LoadPipelineTemplate(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPermissiveTemplate_AllowsDiscardAfterAcceptance(t *testing.T) {
	catalog, table, err := LoadPipelineTemplate(filepath.Join("..", "..", "configs", "pipeline-permissive.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCatalog().Definitions(), catalog.Definitions())

	base := domain.DefaultTransitionTable()
	for _, s := range catalog.Stages() {
		if s == domain.StageOfferAccepted {
			continue
		}
		assert.Equal(t, base.AllowedNextStages(s), table.AllowedNextStages(s), s.String())
	}
	assert.False(t, base.IsAllowed(domain.StageOfferAccepted, domain.StageDiscarded))
	assert.Equal(t, []domain.Stage{domain.StageHired, domain.StageDiscarded}, table.AllowedNextStages(domain.StageOfferAccepted))

	machine := pipeline.New(catalog, table, history.New())
	app := domain.NewApplication("app-1", "cand-1", "job-1", time.Now())
	app.Stage = domain.StageOfferAccepted
	rec, err := machine.Transition(&app, domain.StageDiscarded, "consultant-1", "background check failed")
	require.NoError(t, err)
	assert.Equal(t, domain.StageDiscarded, rec.ToStage)
	assert.Equal(t, domain.StatusRejected, app.Status)
}
