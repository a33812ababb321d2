package postgres

import (
	"context"
	"errors"

	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/gorm"
)

type JobRepository interface {
	List(ctx context.Context, status models.JobStatus, department string) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Insert(ctx context.Context, j *models.Job) error
	Update(ctx context.Context, j *models.Job) error
	Delete(ctx context.Context, id string) error
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) List(ctx context.Context, status models.JobStatus, department string) ([]models.Job, error) {
	q := r.db.WithContext(ctx).Model(&models.Job{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if department != "" {
		q = q.Where("department = ?", department)
	}

	var out []models.Job
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) Insert(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) Update(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
