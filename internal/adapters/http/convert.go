package httpadapter

import (
	"ats/internal/api"
	"ats/internal/domain"
	"ats/internal/ports"
)

func toAPIStage(s domain.Stage) api.Stage {
	return api.Stage(s.String())
}

// toAPIStages never returns nil so empty lists encode as [].
func toAPIStages(stages []domain.Stage) []api.Stage {
	out := make([]api.Stage, len(stages))
	for i, s := range stages {
		out[i] = toAPIStage(s)
	}
	return out
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func toAPITransition(t *domain.StageTransition) *api.StageTransition {
	if t == nil {
		return nil
	}
	out := &api.StageTransition{
		Id:            t.ID,
		ApplicationId: t.ApplicationID,
		ToStage:       toAPIStage(t.ToStage),
		Actor:         t.Actor,
		Notes:         optional(t.Notes),
		CreatedAt:     t.CreatedAt,
	}
	if t.FromStage != nil {
		from := toAPIStage(*t.FromStage)
		out.FromStage = &from
	}
	return out
}

func toAPIApplication(app *domain.Application) api.Application {
	transitions := make([]api.StageTransition, len(app.Transitions))
	for i := range app.Transitions {
		transitions[i] = *toAPITransition(&app.Transitions[i])
	}
	out := api.Application{
		Id:          app.ID,
		CandidateId: app.CandidateID,
		JobId:       app.JobID,
		Stage:       toAPIStage(app.Stage),
		Status:      api.ApplicationStatus(app.Status),
		Version:     app.Version,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
		Transitions: &transitions,
	}
	if d := app.Decision; d != nil {
		out.Decision = &api.ApplicationDecision{
			Outcome:   api.ApplicationDecisionOutcome(d.Outcome),
			Reason:    optional(d.Reason),
			DecidedBy: d.DecidedBy,
			DecidedAt: d.DecidedAt,
		}
	}
	return out
}

func toAPIApplications(apps []domain.Application) []api.Application {
	out := make([]api.Application, len(apps))
	for i := range apps {
		out[i] = toAPIApplication(&apps[i])
	}
	return out
}

func toAPITransitionResult(res *ports.TransitionResult) api.TransitionResult {
	return api.TransitionResult{
		Application: toAPIApplication(res.Application),
		Transition:  toAPITransition(res.Transition),
	}
}

func toAPIDecisionResult(res *ports.DecisionResult) api.DecisionResult {
	missing := res.MissingFields
	if missing == nil {
		missing = []string{}
	}
	return api.DecisionResult{
		Application:               toAPIApplication(res.Application),
		Transition:                toAPITransition(res.Transition),
		RequiresContactCollection: res.RequiresContactCollection,
		MissingFields:             missing,
	}
}

func toAPITimeline(entries []domain.TimelineEntry) []api.TimelineEntry {
	out := make([]api.TimelineEntry, len(entries))
	for i, e := range entries {
		out[i] = api.TimelineEntry{
			Stage:       toAPIStage(e.Stage),
			Label:       e.Label,
			Category:    api.Category(e.Category.String()),
			Order:       e.Order,
			IsCompleted: e.IsCompleted,
			IsActive:    e.IsActive,
			IsTerminal:  e.IsTerminal,
			Transition:  toAPITransition(e.Transition),
		}
	}
	return out
}

func toAPIStageInfo(d domain.StageDefinition, next []domain.Stage) api.StageInfo {
	return api.StageInfo{
		Stage:             toAPIStage(d.Stage),
		Label:             d.Label,
		Order:             d.Order,
		Category:          api.Category(d.Category.String()),
		Negative:          d.Negative,
		AllowedNextStages: toAPIStages(next),
	}
}
