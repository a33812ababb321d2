package postgres

import (
	"context"
	"errors"

	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/utils"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Insert(ctx context.Context, s *models.InterviewSchedule) error
	GetByID(ctx context.Context, id string) (*models.InterviewSchedule, error)
	ListByApplication(ctx context.Context, applicationID string) ([]models.InterviewSchedule, error)
	// Bypass overwrites any prior bypass annotation on the row; history is
	// preserved in the audit trail, not here.
	Bypass(ctx context.Context, id, byUserID, reason string) (*models.InterviewSchedule, error)
}

type interviewRepo struct {
	db *gorm.DB
}

func NewInterviewRepo(db *gorm.DB) InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) Insert(ctx context.Context, s *models.InterviewSchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*models.InterviewSchedule, error) {
	var s models.InterviewSchedule
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *interviewRepo) ListByApplication(ctx context.Context, applicationID string) ([]models.InterviewSchedule, error) {
	var out []models.InterviewSchedule
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("scheduled_date").
		Find(&out).Error
	return out, err
}

func (r *interviewRepo) Bypass(ctx context.Context, id, byUserID, reason string) (*models.InterviewSchedule, error) {
	res := r.db.WithContext(ctx).
		Model(&models.InterviewSchedule{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"bypass_logged": true,
			"bypass_by":     byUserID,
			"bypass_reason": reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
