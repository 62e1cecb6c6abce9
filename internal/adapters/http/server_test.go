package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ats/internal/adapters/memory"
	"ats/internal/domain"
	"ats/internal/ratelimit"
	"ats/internal/services/applications"
	"ats/internal/services/history"
	"ats/internal/services/pipeline"
	"ats/internal/services/timeline"
)

type fixture struct {
	srv   *httptest.Server
	store *memory.Store
}

func newFixture(t *testing.T, limiter ratelimit.Limiter) *fixture {
	t.Helper()
	return newFixtureWithTable(t, limiter, domain.DefaultTransitionTable())
}

func newFixtureWithTable(t *testing.T, limiter ratelimit.Limiter, table *domain.TransitionTable) *fixture {
	t.Helper()
	store := memory.NewStore()
	catalog := domain.DefaultCatalog()
	machine := pipeline.New(catalog, table, history.New())
	svc := applications.New(store, store, machine, timeline.New(catalog), nil)
	srv := httptest.NewServer(New(svc, machine, limiter, nil).Routes())
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, store: store}
}

func (f *fixture) do(t *testing.T, method, path, actor string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, f.srv.URL+path, rd)
	require.NoError(t, err)
	if actor != "" {
		req.Header.Set(ActorHeader, actor)
	}
	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (f *fixture) create(t *testing.T) string {
	t.Helper()
	resp, body := f.do(t, http.MethodPost, "/applications", "u1", map[string]string{"candidate_id": "cand-1", "job_id": "job-1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var app struct {
		ID    string `json:"id"`
		Stage string `json:"stage"`
	}
	require.NoError(t, json.Unmarshal(body, &app))
	assert.Equal(t, "sourcing", app.Stage)
	return app.ID
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, nil)
	resp, body := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestOpenAPI(t *testing.T) {
	f := newFixture(t, nil)
	resp, body := f.do(t, http.MethodGet, "/openapi.yaml", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/applications/{id}/stage")
}

func TestMutationsRequireActor(t *testing.T) {
	f := newFixture(t, nil)
	resp, body := f.do(t, http.MethodPost, "/applications", "", map[string]string{"candidate_id": "c", "job_id": "j"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"X-Actor-ID header is required"}`, string(body))

	id := f.create(t)
	req, err := http.NewRequest(http.MethodPatch, f.srv.URL+"/applications/"+id+"/stage", strings.NewReader(`{"stage":"shortlist"}`))
	require.NoError(t, err)
	req.Header.Set(ActorHeader, "   ")
	blank, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	blank.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, blank.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/applications/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var app struct {
		Stage string `json:"stage"`
	}
	require.NoError(t, json.Unmarshal(body, &app))
	assert.Equal(t, "sourcing", app.Stage)
}

func TestMalformedBody(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	req, err := http.NewRequest(http.MethodPatch, f.srv.URL+"/applications/"+id+"/stage", strings.NewReader(`{"stage":`))
	require.NoError(t, err)
	req.Header.Set(ActorHeader, "u1")
	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(extract(t, body, "error")), "can't decode JSON body")
}

func TestChangeStage(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)

	resp, body := f.do(t, http.MethodPatch, "/applications/"+id+"/stage", "u1", map[string]string{"stage": "shortlist", "notes": "strong cv"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out struct {
		Application struct {
			Stage   string `json:"stage"`
			Version int    `json:"version"`
		} `json:"application"`
		Transition struct {
			FromStage string `json:"from_stage"`
			ToStage   string `json:"to_stage"`
			Actor     string `json:"actor"`
		} `json:"transition"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "shortlist", out.Application.Stage)
	assert.Equal(t, 1, out.Application.Version)
	assert.Equal(t, "sourcing", out.Transition.FromStage)
	assert.Equal(t, "shortlist", out.Transition.ToStage)
	assert.Equal(t, "u1", out.Transition.Actor)
}

func TestChangeStage_Errors(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)

	resp, _ := f.do(t, http.MethodPatch, "/applications/"+id+"/stage", "u1", map[string]string{"stage": "lunch"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := f.do(t, http.MethodPatch, "/applications/"+id+"/stage", "u1", map[string]string{"stage": "hired"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.JSONEq(t, `["shortlist","discarded"]`, string(extract(t, body, "allowed_stages")))

	resp, _ = f.do(t, http.MethodPatch, "/applications/missing/stage", "u1", map[string]string{"stage": "shortlist"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPatch, "/applications/"+id+"/stage", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTerminalStageReportsNoAllowedStages(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	resp, _ := f.do(t, http.MethodPatch, "/applications/"+id+"/stage", "u1", map[string]string{"stage": "discarded", "notes": "no fit"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := f.do(t, http.MethodPatch, "/applications/"+id+"/stage", "u1", map[string]string{"stage": "shortlist"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(extract(t, body, "allowed_stages")))
}

func TestConsultantDecisionAndContactInfo(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	for _, stage := range []string{"shortlist", "terna"} {
		resp, _ := f.do(t, http.MethodPatch, "/applications/"+id+"/stage", "u1", map[string]string{"stage": stage})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := f.do(t, http.MethodPatch, "/applications/"+id+"/consultant-decision", "u1", map[string]string{"decision": "continue"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `true`, string(extract(t, body, "requires_contact_collection")))
	assert.JSONEq(t, `["email","phone"]`, string(extract(t, body, "missing_fields")))

	resp, body = f.do(t, http.MethodPatch, "/applications/"+id+"/contact-info", "u1", map[string]string{"email": "ana@example.com", "phone": "+39 02 123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `false`, string(extract(t, body, "requires_contact_collection")))
	assert.Contains(t, string(extract(t, body, "application")), `"stage":"contacted"`)

	resp, _ = f.do(t, http.MethodPatch, "/applications/"+id+"/consultant-decision", "u1", map[string]string{"decision": "discard"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContactStatus(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)
	resp, _ := f.do(t, http.MethodPatch, "/applications/"+id+"/contact-status", "u1", map[string]string{"stage": "offer_sent"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPatch, "/applications/"+id+"/contact-status", "u1", map[string]string{"stage": "interested"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateStatusAndTimeline(t *testing.T) {
	f := newFixture(t, nil)
	id := f.create(t)

	resp, body := f.do(t, http.MethodPatch, "/applications/"+id+"/status", "u1", map[string]string{"status": "on_hold"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"status":"on_hold"`)

	resp, _ = f.do(t, http.MethodPatch, "/applications/"+id+"/status", "u1", map[string]string{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/applications/"+id+"/timeline", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []struct {
		Stage    string `json:"stage"`
		IsActive bool   `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(body, &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "sourcing", entries[0].Stage)
	assert.True(t, entries[0].IsActive)

	resp, _ = f.do(t, http.MethodGet, "/applications/missing/timeline", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListApplications(t *testing.T) {
	f := newFixture(t, nil)
	f.create(t)
	f.create(t)

	resp, body := f.do(t, http.MethodGet, "/applications?job_id=job-1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var apps []map[string]any
	require.NoError(t, json.Unmarshal(body, &apps))
	assert.Len(t, apps, 2)

	resp, _ = f.do(t, http.MethodGet, "/applications", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/applications?job_id=other", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestListStages(t *testing.T) {
	f := newFixture(t, nil)
	resp, body := f.do(t, http.MethodGet, "/pipeline/stages", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stages []struct {
		Stage             string   `json:"stage"`
		Category          string   `json:"category"`
		AllowedNextStages []string `json:"allowed_next_stages"`
	}
	require.NoError(t, json.Unmarshal(body, &stages))
	require.Len(t, stages, 15)
	assert.Equal(t, "sourcing", stages[0].Stage)
	assert.Equal(t, "initial", stages[0].Category)
	assert.Equal(t, []string{"shortlist", "discarded"}, stages[0].AllowedNextStages)
	assert.Equal(t, "hired", stages[10].Stage)
	assert.NotNil(t, stages[10].AllowedNextStages)
	assert.Empty(t, stages[10].AllowedNextStages)
}

func TestListStagesReflectsMachineTable(t *testing.T) {
	edges := make(map[domain.Stage][]domain.Stage)
	base := domain.DefaultTransitionTable()
	for _, s := range domain.DefaultCatalog().Stages() {
		edges[s] = base.AllowedNextStages(s)
	}
	edges[domain.StageOfferAccepted] = []domain.Stage{domain.StageHired, domain.StageDiscarded}
	f := newFixtureWithTable(t, nil, domain.NewTransitionTable(edges))

	resp, body := f.do(t, http.MethodGet, "/pipeline/stages", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stages []struct {
		Stage             string   `json:"stage"`
		AllowedNextStages []string `json:"allowed_next_stages"`
	}
	require.NoError(t, json.Unmarshal(body, &stages))
	for _, s := range stages {
		if s.Stage == "offer_accepted" {
			assert.Equal(t, []string{"hired", "discarded"}, s.AllowedNextStages)
			return
		}
	}
	t.Fatal("offer_accepted missing from catalog")
}

func TestExportPipeline(t *testing.T) {
	f := newFixture(t, nil)
	f.create(t)

	resp, body := f.do(t, http.MethodGet, "/jobs/job-1/pipeline.xlsx", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "job-1-pipeline.xlsx")

	wb, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows("Pipeline")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRateLimit(t *testing.T) {
	f := newFixture(t, ratelimit.NewMemoryLimiter(1, time.Minute))
	f.create(t)
	resp, _ := f.do(t, http.MethodPost, "/applications", "u1", map[string]string{"candidate_id": "c", "job_id": "j"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/applications", "u2", map[string]string{"candidate_id": "c", "job_id": "j"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func extract(t *testing.T, body []byte, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))
	v, ok := m[key]
	require.True(t, ok, "missing %q in %s", key, body)
	return v
}
