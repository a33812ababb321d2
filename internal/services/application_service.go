package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/storage"
	"github.com/talentflow/talentflow/internal/utils"
)

type ApplicationService interface {
	List(ctx context.Context, jobID string, stage models.Stage) ([]models.ApplicationDetail, error)
	Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error)
	SetStage(ctx context.Context, id string, stage models.Stage, actorID string) (*models.Application, error)
}

// Document is an uploaded file accompanying a public submission. Validation
// of extension, size, and content type happens at the HTTP boundary; here
// the stream is only stored.
type Document struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

type SubmitApplicationInput struct {
	Name        string
	Email       string
	Phone       string
	JobID       string
	Resume      *Document
	CoverLetter *Document
}

type applicationService struct {
	applications pgrepo.ApplicationRepository
	jobs         pgrepo.JobRepository
	uploader     storage.Uploader
	audit        *Auditor
}

func NewApplicationService(applications pgrepo.ApplicationRepository, jobs pgrepo.JobRepository, uploader storage.Uploader, audit *Auditor) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs, uploader: uploader, audit: audit}
}

func (s *applicationService) List(ctx context.Context, jobID string, stage models.Stage) ([]models.ApplicationDetail, error) {
	const op = "ApplicationService.List"

	if stage != "" && !stage.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid stage filter", nil)
	}

	out, err := s.applications.List(ctx, jobID, stage)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return out, nil
}

func (s *applicationService) Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	if in.Name == "" || in.Email == "" || in.JobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email, and job_id are required", nil)
	}

	// A closed job still accepts submissions; only existence is checked.
	if _, err := s.jobs.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up job", err)
	}

	// Store files before any row is written; a failed upload fails the
	// whole submission.
	resumePath, err := s.store(ctx, "resumes", in.Resume)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to store resume", err)
	}
	coverPath, err := s.store(ctx, "cover-letters", in.CoverLetter)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to store cover letter", err)
	}

	now := time.Now().UTC()
	cand := &models.Candidate{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		ResumeFilePath:  resumePath,
		CoverLetterPath: coverPath,
		CreatedAt:       now,
	}
	app := &models.Application{
		ID:          uuid.NewString(),
		JobID:       in.JobID,
		Stage:       models.StageApplied,
		AppliedDate: now,
		UpdatedAt:   now,
	}

	if err := s.applications.CreateWithCandidate(ctx, cand, app); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}

	// TODO: send confirmation email once the notification hook lands.

	s.audit.record(ctx, models.AuditEntityApplication, app.ID, models.AuditActionSubmitted, cand.ID, map[string]any{
		"job_id": in.JobID,
	})
	return app, nil
}

func (s *applicationService) SetStage(ctx context.Context, id string, stage models.Stage, actorID string) (*models.Application, error) {
	const op = "ApplicationService.SetStage"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "application id is required", nil)
	}
	if !stage.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid stage", nil)
	}

	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}

	if !app.Stage.CanTransitionTo(stage) {
		return nil, utils.E(utils.CodeInvalidTransition, op,
			fmt.Sprintf("cannot move application from %q to %q", app.Stage, stage), nil)
	}

	from := app.Stage
	updated, err := s.applications.UpdateStage(ctx, id, stage, time.Now().UTC())
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update stage", err)
	}

	s.audit.record(ctx, models.AuditEntityApplication, id, models.AuditActionStageChanged, actorID, map[string]any{
		"from": string(from),
		"to":   string(stage),
	})
	return updated, nil
}

func (s *applicationService) store(ctx context.Context, prefix string, doc *Document) (string, error) {
	if doc == nil {
		return "", nil
	}
	if s.uploader == nil {
		return "", errors.New("uploader is not configured")
	}

	name := strings.ReplaceAll(filepath.Base(doc.FileName), " ", "_")
	objectName := fmt.Sprintf("%s/%d-%s-%s", prefix, time.Now().UnixMilli(), uuid.NewString(), name)
	return s.uploader.Upload(ctx, objectName, doc.ContentType, doc.Reader)
}
