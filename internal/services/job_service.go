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

type JobService interface {
	List(ctx context.Context, status models.JobStatus, department string) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, in CreateJobInput) (*models.Job, error)
	Update(ctx context.Context, id string, in UpdateJobInput) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type CreateJobInput struct {
	Title       string
	Department  string
	Description string
	Status      models.JobStatus
	CreatedBy   string
}

type UpdateJobInput struct {
	Title       string
	Department  string
	Description string
	Status      models.JobStatus
}

type jobService struct {
	jobs pgrepo.JobRepository
}

func NewJobService(jobs pgrepo.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) List(ctx context.Context, status models.JobStatus, department string) ([]models.Job, error) {
	const op = "JobService.List"

	if status != "" && !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status filter", nil)
	}

	out, err := s.jobs.List(ctx, status, department)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return out, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*models.Job, error) {
	const op = "JobService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}

	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	return j, nil
}

func (s *jobService) Create(ctx context.Context, in CreateJobInput) (*models.Job, error) {
	const op = "JobService.Create"

	if in.Title == "" || in.Department == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title and department are required", nil)
	}
	if in.Status == "" {
		in.Status = models.JobOpen
	}
	if !in.Status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job status", nil)
	}

	now := time.Now().UTC()
	j := &models.Job{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Department:  in.Department,
		Description: in.Description,
		Status:      in.Status,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobs.Insert(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}
	return j, nil
}

func (s *jobService) Update(ctx context.Context, id string, in UpdateJobInput) (*models.Job, error) {
	const op = "JobService.Update"

	if in.Title == "" || in.Department == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title and department are required", nil)
	}
	if !in.Status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid job status", nil)
	}

	j, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	j.Title = in.Title
	j.Department = in.Department
	j.Description = in.Description
	j.Status = in.Status
	j.UpdatedAt = time.Now().UTC()

	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	return j, nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	const op = "JobService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}
	return nil
}
