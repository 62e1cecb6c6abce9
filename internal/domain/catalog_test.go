package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_OrderAndCategories(t *testing.T) {
	c := DefaultCatalog()

	want := []struct {
		stage    string
		order    int
		category Category
	}{
		{"sourcing", 1, CategoryInitial},
		{"shortlist", 2, CategoryInitial},
		{"terna", 3, CategoryInitial},
		{"contact_pending", 4, CategoryContact},
		{"contacted", 5, CategoryContact},
		{"interested", 6, CategoryContact},
		{"interview_scheduled", 7, CategoryInterview},
		{"interview_done", 8, CategoryInterview},
		{"offer_sent", 9, CategoryOffer},
		{"offer_accepted", 10, CategoryOffer},
		{"hired", 11, CategoryFinal},
		{"offer_rejected", 96, CategoryOffer},
		{"not_interested", 97, CategoryContact},
		{"no_response", 98, CategoryContact},
		{"discarded", 99, CategoryFinal},
	}

	stages := c.Stages()
	require.Len(t, stages, len(want))
	for i, w := range want {
		assert.Equal(t, w.stage, stages[i].String(), "position %d", i)

		order, err := c.Order(stages[i])
		require.NoError(t, err)
		assert.Equal(t, w.order, order, w.stage)

		cat, err := c.Category(stages[i])
		require.NoError(t, err)
		assert.Equal(t, w.category, cat, w.stage)

		label, err := c.Label(stages[i])
		require.NoError(t, err)
		assert.NotEmpty(t, label)
	}
}

func TestCatalog_UnknownStage(t *testing.T) {
	c := DefaultCatalog()

	_, err := c.Label(StageUnknown)
	var unknown *UnknownStageError
	require.ErrorAs(t, err, &unknown)

	_, err = c.Parse("onboarding")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "onboarding", unknown.Value)
}

func TestCatalog_ParseRequiresExactSymbol(t *testing.T) {
	s, err := DefaultCatalog().Parse("offer_sent")
	require.NoError(t, err)
	assert.Equal(t, StageOfferSent, s)

	for _, value := range []string{"  Offer_Sent ", "Hired", "HIRED", " hired", "hired\n"} {
		_, err := DefaultCatalog().Parse(value)
		var unknown *UnknownStageError
		require.ErrorAs(t, err, &unknown, value)
		assert.Equal(t, value, unknown.Value)
	}
}

func TestNewCatalog_StableForTies(t *testing.T) {
	c, err := NewCatalog([]StageDefinition{
		{Stage: StageDiscarded, Order: 5, Category: CategoryFinal, Negative: true},
		{Stage: StageSourcing, Order: 1, Category: CategoryInitial},
		{Stage: StageHired, Order: 5, Category: CategoryFinal},
	})
	require.NoError(t, err)
	assert.Equal(t, []Stage{StageSourcing, StageDiscarded, StageHired}, c.Stages())

	label, err := c.Label(StageHired)
	require.NoError(t, err)
	assert.Equal(t, "hired", label, "blank labels fall back to the stage symbol")
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		defs []StageDefinition
	}{
		{"empty", nil},
		{"duplicate", []StageDefinition{
			{Stage: StageSourcing, Order: 1, Category: CategoryInitial},
			{Stage: StageSourcing, Order: 2, Category: CategoryInitial},
			{Stage: StageHired, Order: 3, Category: CategoryFinal},
			{Stage: StageDiscarded, Order: 4, Category: CategoryFinal},
		}},
		{"missing category", []StageDefinition{
			{Stage: StageSourcing, Order: 1},
			{Stage: StageHired, Order: 3, Category: CategoryFinal},
			{Stage: StageDiscarded, Order: 4, Category: CategoryFinal},
		}},
		{"missing discarded", []StageDefinition{
			{Stage: StageSourcing, Order: 1, Category: CategoryInitial},
			{Stage: StageHired, Order: 3, Category: CategoryFinal},
		}},
		{"unknown stage", []StageDefinition{
			{Stage: Stage(200), Order: 1, Category: CategoryInitial},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.defs)
			assert.Error(t, err)
		})
	}
}

func TestStage_JSONUsesSymbols(t *testing.T) {
	type payload struct {
		Stage Stage `json:"stage"`
	}
	b, err := json.Marshal(payload{Stage: StageInterviewScheduled})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stage":"interview_scheduled"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"stage":"no_response"}`), &p))
	assert.Equal(t, StageNoResponse, p.Stage)

	err = json.Unmarshal([]byte(`{"stage":"bogus"}`), &p)
	require.Error(t, err)
}

func TestAllStages_CoversEveryName(t *testing.T) {
	all := AllStages()
	assert.Len(t, all, 15)
	for _, s := range all {
		parsed, err := ParseStage(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}
