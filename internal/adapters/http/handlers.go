package httpadapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"ats/internal/api"
	"ats/internal/domain"
	"ats/internal/export"
)

func actorOf(raw string) (string, error) {
	actor := strings.TrimSpace(raw)
	if actor == "" {
		return "", errMissingActor
	}
	return actor, nil
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) ListStages(ctx context.Context, _ api.ListStagesRequestObject) (api.ListStagesResponseObject, error) {
	defs := s.catalog.Definitions()
	out := make(api.ListStages200JSONResponse, len(defs))
	for i, d := range defs {
		out[i] = toAPIStageInfo(d, s.table.AllowedNextStages(d.Stage))
	}
	return out, nil
}

func (s *Server) ListApplications(ctx context.Context, req api.ListApplicationsRequestObject) (api.ListApplicationsResponseObject, error) {
	apps, err := s.apps.ListByJob(ctx, req.Params.JobId)
	if err != nil {
		return nil, err
	}
	return api.ListApplications200JSONResponse(toAPIApplications(apps)), nil
}

func (s *Server) CreateApplication(ctx context.Context, req api.CreateApplicationRequestObject) (api.CreateApplicationResponseObject, error) {
	if _, err := actorOf(req.Params.XActorID); err != nil {
		return nil, err
	}
	app, err := s.apps.Create(ctx, req.Body.CandidateId, req.Body.JobId)
	if err != nil {
		return nil, err
	}
	return api.CreateApplication201JSONResponse(toAPIApplication(app)), nil
}

func (s *Server) GetApplication(ctx context.Context, req api.GetApplicationRequestObject) (api.GetApplicationResponseObject, error) {
	app, err := s.apps.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetApplication200JSONResponse(toAPIApplication(app)), nil
}

func (s *Server) GetTimeline(ctx context.Context, req api.GetTimelineRequestObject) (api.GetTimelineResponseObject, error) {
	entries, err := s.apps.Timeline(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetTimeline200JSONResponse(toAPITimeline(entries)), nil
}

func (s *Server) ChangeStage(ctx context.Context, req api.ChangeStageRequestObject) (api.ChangeStageResponseObject, error) {
	actor, err := actorOf(req.Params.XActorID)
	if err != nil {
		return nil, err
	}
	to, err := s.catalog.Parse(string(req.Body.Stage))
	if err != nil {
		return nil, err
	}
	res, err := s.apps.ChangeStage(ctx, req.Id, to, actor, deref(req.Body.Notes))
	if err != nil {
		return nil, err
	}
	return api.ChangeStage200JSONResponse(toAPITransitionResult(res)), nil
}

func (s *Server) ChangeContactStatus(ctx context.Context, req api.ChangeContactStatusRequestObject) (api.ChangeContactStatusResponseObject, error) {
	actor, err := actorOf(req.Params.XActorID)
	if err != nil {
		return nil, err
	}
	to, err := s.catalog.Parse(string(req.Body.Stage))
	if err != nil {
		return nil, err
	}
	res, err := s.apps.ChangeContactStatus(ctx, req.Id, to, actor, deref(req.Body.Notes))
	if err != nil {
		return nil, err
	}
	return api.ChangeContactStatus200JSONResponse(toAPITransitionResult(res)), nil
}

func (s *Server) ApplyConsultantDecision(ctx context.Context, req api.ApplyConsultantDecisionRequestObject) (api.ApplyConsultantDecisionResponseObject, error) {
	actor, err := actorOf(req.Params.XActorID)
	if err != nil {
		return nil, err
	}
	decision := domain.ConsultantDecision{
		Decision: domain.DecisionKind(req.Body.Decision),
		Reason:   deref(req.Body.Reason),
	}
	res, err := s.apps.ApplyDecision(ctx, req.Id, decision, actor)
	if err != nil {
		return nil, err
	}
	return api.ApplyConsultantDecision200JSONResponse(toAPIDecisionResult(res)), nil
}

func (s *Server) UpdateContactInfo(ctx context.Context, req api.UpdateContactInfoRequestObject) (api.UpdateContactInfoResponseObject, error) {
	actor, err := actorOf(req.Params.XActorID)
	if err != nil {
		return nil, err
	}
	info := domain.ContactInfo{Email: deref(req.Body.Email), Phone: deref(req.Body.Phone)}
	res, err := s.apps.UpdateContactInfo(ctx, req.Id, info, actor)
	if err != nil {
		return nil, err
	}
	return api.UpdateContactInfo200JSONResponse(toAPIDecisionResult(res)), nil
}

func (s *Server) UpdateStatus(ctx context.Context, req api.UpdateStatusRequestObject) (api.UpdateStatusResponseObject, error) {
	actor, err := actorOf(req.Params.XActorID)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(string(req.Body.Status))
	if err != nil {
		return nil, err
	}
	app, err := s.apps.UpdateStatus(ctx, req.Id, status, actor)
	if err != nil {
		return nil, err
	}
	return api.UpdateStatus200JSONResponse(toAPIApplication(app)), nil
}

func (s *Server) ExportPipeline(ctx context.Context, req api.ExportPipelineRequestObject) (api.ExportPipelineResponseObject, error) {
	apps, err := s.apps.ListByJob(ctx, req.JobId)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.WritePipeline(&buf, req.JobId, apps, s.catalog); err != nil {
		return nil, err
	}
	return api.ExportPipeline200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
		Headers: api.ExportPipeline200ResponseHeaders{
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", req.JobId+"-pipeline.xlsx"),
		},
	}, nil
}
