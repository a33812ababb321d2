package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	List(ctx context.Context, jobID string, stage models.Stage) ([]models.ApplicationDetail, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	// CreateWithCandidate inserts the candidate and its application in one
	// transaction; both commit or neither does.
	CreateWithCandidate(ctx context.Context, cand *models.Candidate, app *models.Application) error
	UpdateStage(ctx context.Context, id string, stage models.Stage, at time.Time) (*models.Application, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) List(ctx context.Context, jobID string, stage models.Stage) ([]models.ApplicationDetail, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("applications.*, candidates.name AS candidate_name, candidates.email AS candidate_email, candidates.phone AS candidate_phone, jobs.title AS job_title, jobs.department AS department").
		Joins("JOIN candidates ON candidates.id = applications.candidate_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id")

	if jobID != "" {
		q = q.Where("applications.job_id = ?", jobID)
	}
	if stage != "" {
		q = q.Where("applications.stage = ?", stage)
	}

	var out []models.ApplicationDetail
	err := q.Order("applications.applied_date DESC").Scan(&out).Error
	return out, err
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) CreateWithCandidate(ctx context.Context, cand *models.Candidate, app *models.Application) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cand).Error; err != nil {
			return err
		}
		app.CandidateID = cand.ID
		return tx.Create(app).Error
	})
}

func (r *applicationRepo) UpdateStage(ctx context.Context, id string, stage models.Stage, at time.Time) (*models.Application, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"stage": stage, "updated_at": at})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
