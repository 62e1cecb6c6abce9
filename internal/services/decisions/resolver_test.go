package decisions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats/internal/domain"
	"ats/internal/services/history"
	"ats/internal/services/pipeline"
)

func newResolver() *Resolver {
	return New(pipeline.New(domain.DefaultCatalog(), domain.DefaultTransitionTable(), history.New()))
}

func appAt(stage domain.Stage) *domain.Application {
	app := domain.NewApplication("app-1", "cand-1", "job-1", time.Now())
	app.Stage = stage
	return &app
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		decision domain.ConsultantDecision
		contact  domain.ContactInfo
		want     domain.Stage
		collect  bool
		missing  []string
	}{
		{
			name:     "continue without email",
			decision: domain.ConsultantDecision{Decision: domain.DecisionContinue},
			contact:  domain.ContactInfo{Phone: "555"},
			want:     domain.StageContactPending,
			collect:  true,
			missing:  []string{FieldEmail},
		},
		{
			name:     "continue without phone",
			decision: domain.ConsultantDecision{Decision: domain.DecisionContinue},
			contact:  domain.ContactInfo{Email: "a@b.com"},
			want:     domain.StageContactPending,
			collect:  true,
			missing:  []string{FieldPhone},
		},
		{
			name:     "continue without anything",
			decision: domain.ConsultantDecision{Decision: domain.DecisionContinue},
			want:     domain.StageContactPending,
			collect:  true,
			missing:  []string{FieldEmail, FieldPhone},
		},
		{
			name:     "continue with full contact",
			decision: domain.ConsultantDecision{Decision: domain.DecisionContinue},
			contact:  domain.ContactInfo{Email: "a@b.com", Phone: "555"},
			want:     domain.StageContacted,
		},
		{
			name:     "continue with unusable email",
			decision: domain.ConsultantDecision{Decision: domain.DecisionContinue},
			contact:  domain.ContactInfo{Email: "someone@localhost", Phone: "555"},
			want:     domain.StageContactPending,
			collect:  true,
			missing:  []string{FieldEmail},
		},
		{
			name:     "discard with reason",
			decision: domain.ConsultantDecision{Decision: domain.DecisionDiscard, Reason: "no visa"},
			want:     domain.StageDiscarded,
		},
	}
	r := newResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(appAt(domain.StageTerna), tt.decision, tt.contact)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.TargetStage)
			assert.Equal(t, tt.collect, res.RequiresContactCollection)
			assert.Equal(t, tt.missing, res.MissingFields)
		})
	}
}

func TestResolve_DiscardNeedsReason(t *testing.T) {
	r := newResolver()
	for _, reason := range []string{"", "   "} {
		_, err := r.Resolve(appAt(domain.StageTerna), domain.ConsultantDecision{Decision: domain.DecisionDiscard, Reason: reason}, domain.ContactInfo{})
		var validation *domain.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "reason", validation.Field)
	}
}

func TestResolve_UnknownDecision(t *testing.T) {
	_, err := newResolver().Resolve(appAt(domain.StageTerna), domain.ConsultantDecision{Decision: "maybe"}, domain.ContactInfo{})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "decision", validation.Field)
}

func TestResolve_DoesNotTouchApplication(t *testing.T) {
	app := appAt(domain.StageContactPending)
	_, err := newResolver().Resolve(app, domain.ConsultantDecision{Decision: domain.DecisionContinue}, domain.ContactInfo{Email: "x@y.com", Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StageContactPending, app.Stage)
	assert.Empty(t, app.Transitions)
}

func TestApply_DelegatesToStateMachine(t *testing.T) {
	r := newResolver()
	app := appAt(domain.StageContactPending)

	res, rec, err := r.Apply(app, domain.ConsultantDecision{Decision: domain.DecisionContinue}, domain.ContactInfo{Email: "x@y.com", Phone: "1"}, "consultant-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageContacted, res.TargetStage)
	require.NotNil(t, rec)
	assert.Equal(t, domain.StageContacted, app.Stage)
	assert.Equal(t, domain.StageContactPending, *rec.FromStage)
}

func TestApply_DiscardReasonBecomesNotes(t *testing.T) {
	r := newResolver()
	app := appAt(domain.StageShortlist)

	_, rec, err := r.Apply(app, domain.ConsultantDecision{Decision: domain.DecisionDiscard, Reason: "over budget"}, domain.ContactInfo{}, "consultant-1")
	require.NoError(t, err)
	assert.Equal(t, "over budget", rec.Notes)
	require.NotNil(t, app.Decision)
	assert.Equal(t, "over budget", app.Decision.Reason)
}

func TestApply_RespectsAdjacency(t *testing.T) {
	r := newResolver()
	// sourcing cannot jump straight to contacted.
	app := appAt(domain.StageSourcing)
	_, rec, err := r.Apply(app, domain.ConsultantDecision{Decision: domain.DecisionContinue}, domain.ContactInfo{Email: "x@y.com", Phone: "1"}, "consultant-1")

	var invalid *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Nil(t, rec)
	assert.Equal(t, domain.StageSourcing, app.Stage)
	assert.Empty(t, app.Transitions)
}

func TestApply_ValidationHappensBeforeTransition(t *testing.T) {
	r := newResolver()
	app := appAt(domain.StageTerna)
	_, _, err := r.Apply(app, domain.ConsultantDecision{Decision: domain.DecisionDiscard}, domain.ContactInfo{}, "consultant-1")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, domain.StageTerna, app.Stage)
	assert.Empty(t, app.Transitions)
}

func TestMissingContactFields(t *testing.T) {
	assert.Empty(t, MissingContactFields(domain.ContactInfo{Email: "Ana.Perez@Example.co.uk", Phone: "+34 600 000 000"}))
	assert.Equal(t, []string{FieldEmail}, MissingContactFields(domain.ContactInfo{Email: "no-at-sign", Phone: "1"}))
	assert.Equal(t, []string{FieldEmail}, MissingContactFields(domain.ContactInfo{Email: "@example.com", Phone: "1"}))
	assert.Equal(t, []string{FieldEmail}, MissingContactFields(domain.ContactInfo{Email: "me@", Phone: "1"}))
	assert.False(t, IsContactComplete(domain.ContactInfo{Email: "a@b.com", Phone: "  "}))
	assert.True(t, IsContactComplete(domain.ContactInfo{Email: "a@b.com", Phone: "555"}))
}
