package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/utils"
)

type InterviewService interface {
	Schedule(ctx context.Context, in ScheduleInterviewInput) (*models.InterviewSchedule, error)
	ListByApplication(ctx context.Context, applicationID string) ([]models.InterviewSchedule, error)
	Bypass(ctx context.Context, interviewID, actorID, reason string) (*models.InterviewSchedule, error)
}

type ScheduleInterviewInput struct {
	ApplicationID string
	InterviewType string
	InterviewerID string
	ScheduledDate time.Time
	Notes         string
}

type interviewService struct {
	interviews   pgrepo.InterviewRepository
	applications pgrepo.ApplicationRepository
	audit        *Auditor
}

func NewInterviewService(interviews pgrepo.InterviewRepository, applications pgrepo.ApplicationRepository, audit *Auditor) InterviewService {
	return &interviewService{interviews: interviews, applications: applications, audit: audit}
}

// Schedule records one interview round. It never touches the application's
// stage; moving to "Interview Scheduled" stays an explicit stage update.
func (s *interviewService) Schedule(ctx context.Context, in ScheduleInterviewInput) (*models.InterviewSchedule, error) {
	const op = "InterviewService.Schedule"

	if in.ApplicationID == "" || in.InterviewType == "" || in.InterviewerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "application_id, interview_type, and interviewer_id are required", nil)
	}
	if in.ScheduledDate.IsZero() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "scheduled_date is required", nil)
	}

	if _, err := s.applications.GetByID(ctx, in.ApplicationID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up application", err)
	}

	row := &models.InterviewSchedule{
		ID:            uuid.NewString(),
		ApplicationID: in.ApplicationID,
		InterviewType: in.InterviewType,
		InterviewerID: in.InterviewerID,
		ScheduledDate: in.ScheduledDate,
		Notes:         in.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.interviews.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to schedule interview", err)
	}

	// TODO: notify interviewer and candidate via the email hook.

	return row, nil
}

func (s *interviewService) ListByApplication(ctx context.Context, applicationID string) ([]models.InterviewSchedule, error) {
	const op = "InterviewService.ListByApplication"

	if applicationID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "application_id is required", nil)
	}

	out, err := s.interviews.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return out, nil
}

// Bypass annotates the interview row with the latest skip; re-invocation
// overwrites the annotation, while every call leaves an audit event behind.
func (s *interviewService) Bypass(ctx context.Context, interviewID, actorID, reason string) (*models.InterviewSchedule, error) {
	const op = "InterviewService.Bypass"

	if interviewID == "" || reason == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "interview id and reason are required", nil)
	}

	row, err := s.interviews.Bypass(ctx, interviewID, actorID, reason)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to bypass interview", err)
	}

	s.audit.record(ctx, models.AuditEntityInterview, interviewID, models.AuditActionBypassed, actorID, map[string]any{
		"reason": reason,
	})
	return row, nil
}
